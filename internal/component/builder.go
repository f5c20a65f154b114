package component

// Fluent construction API. Every method returns a modified copy; the
// receiver is never mutated, so partially-built nodes can be shared freely.

// NewText builds a text node.
func NewText(text string) *Node {
	t := text
	return &Node{Type: ContentText, Text: &t}
}

// NewTranslatable builds a translatable node with optional format arguments.
func NewTranslatable(key string, with ...Component) *Node {
	k := key
	return &Node{Type: ContentTranslatable, Translate: &k, With: with}
}

// NewKeybind builds a keybind node.
func NewKeybind(key string) *Node {
	k := key
	return &Node{Type: ContentKeybind, Keybind: &k}
}

// NewScore builds a scoreboard-reference node.
func NewScore(name, objective string) *Node {
	return &Node{Type: ContentScore, Score: &Score{Name: name, Objective: objective}}
}

// NewSelector builds an entity-selector node.
func NewSelector(pattern string) *Node {
	p := pattern
	return &Node{Type: ContentSelector, Selector: &p}
}

func (n *Node) clone() *Node {
	out := *n
	out.Style = n.Style.Clone()
	out.With = append([]Component(nil), n.With...)
	out.Extra = append([]Component(nil), n.Extra...)
	return &out
}

// WithColor returns a copy with the color set.
func (n *Node) WithColor(c Color) *Node {
	out := n.clone()
	out.Style.Color = &c
	return out
}

// WithFont returns a copy with the font set.
func (n *Node) WithFont(font string) *Node {
	out := n.clone()
	out.Style.Font = &font
	return out
}

// WithDecoration returns a copy with one decoration set to an explicit
// state.
func (n *Node) WithDecoration(d Decoration, state bool) *Node {
	out := n.clone()
	out.Style.SetDecoration(d, state)
	return out
}

// WithStyle returns a copy with the whole style replaced.
func (n *Node) WithStyle(s Style) *Node {
	out := n.clone()
	out.Style = s.Clone()
	return out
}

// MergeStyle returns a copy with s applied as a fallback: attributes the
// node already sets are kept, everything else is filled in from s.
func (n *Node) MergeStyle(s Style) *Node {
	out := n.clone()
	out.Style = Inherit(s, n.Style)
	return out
}

// WithShadow returns a copy with the shadow color set.
func (n *Node) WithShadow(sc ShadowColor) *Node {
	out := n.clone()
	out.Style.Shadow = &sc
	return out
}

// WithInsertion returns a copy with the shift-click insertion text set.
func (n *Node) WithInsertion(text string) *Node {
	out := n.clone()
	out.Style.Insertion = &text
	return out
}

// WithClick returns a copy with the click event set.
func (n *Node) WithClick(ev ClickEvent) *Node {
	out := n.clone()
	out.Style.Click = &ev
	return out
}

// WithHover returns a copy with the hover event set.
func (n *Node) WithHover(ev HoverEvent) *Node {
	out := n.clone()
	out.Style.Hover = &ev
	return out
}

// WithSeparator returns a copy with the list separator set (selector and
// NBT payloads).
func (n *Node) WithSeparator(sep Component) *Node {
	out := n.clone()
	out.Separator = sep
	return out
}

// Append returns a copy with one more child.
func (n *Node) Append(c Component) *Node {
	out := n.clone()
	out.Extra = append(out.Extra, c)
	return out
}

// AppendNewline returns a copy with a newline text child appended.
func (n *Node) AppendNewline() *Node {
	return n.Append(NewText("\n"))
}

// AppendSpace returns a copy with a space text child appended.
func (n *Node) AppendSpace() *Node {
	return n.Append(NewText(" "))
}

// WithExtra returns a copy with the children replaced.
func (n *Node) WithExtra(children ...Component) *Node {
	out := n.clone()
	out.Extra = children
	return out
}
