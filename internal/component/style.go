package component

// Decoration is one of the five boolean text decorations.
type Decoration int

const (
	Bold Decoration = iota
	Italic
	Underlined
	Strikethrough
	Obfuscated
)

// Decorations lists all decorations in serialization order.
var Decorations = [...]Decoration{Bold, Italic, Underlined, Strikethrough, Obfuscated}

func (d Decoration) String() string {
	switch d {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underlined:
		return "underlined"
	case Strikethrough:
		return "strikethrough"
	case Obfuscated:
		return "obfuscated"
	default:
		return "unknown"
	}
}

// Style is the set of inheritable formatting attributes. A nil field means
// "inherit", not "false" or "none".
type Style struct {
	Color         *Color
	Font          *string
	Bold          *bool
	Italic        *bool
	Underlined    *bool
	Strikethrough *bool
	Obfuscated    *bool
	Shadow        *ShadowColor
	Insertion     *string
	Click         *ClickEvent
	Hover         *HoverEvent
}

// Clone returns a snapshot with fresh pointers, so mutating the copy never
// writes through to the original.
func (s Style) Clone() Style {
	out := Style{}
	if s.Color != nil {
		c := *s.Color
		out.Color = &c
	}
	if s.Font != nil {
		f := *s.Font
		out.Font = &f
	}
	for _, d := range Decorations {
		if v := s.Decoration(d); v != nil {
			out.SetDecoration(d, *v)
		}
	}
	if s.Shadow != nil {
		sc := *s.Shadow
		out.Shadow = &sc
	}
	if s.Insertion != nil {
		i := *s.Insertion
		out.Insertion = &i
	}
	if s.Click != nil {
		ce := *s.Click
		out.Click = &ce
	}
	if s.Hover != nil {
		he := *s.Hover
		out.Hover = &he
	}
	return out
}

// Decoration returns the tri-state value of one decoration.
func (s Style) Decoration(d Decoration) *bool {
	switch d {
	case Bold:
		return s.Bold
	case Italic:
		return s.Italic
	case Underlined:
		return s.Underlined
	case Strikethrough:
		return s.Strikethrough
	case Obfuscated:
		return s.Obfuscated
	default:
		return nil
	}
}

// SetDecoration sets one decoration to an explicit value.
func (s *Style) SetDecoration(d Decoration, v bool) {
	val := v
	switch d {
	case Bold:
		s.Bold = &val
	case Italic:
		s.Italic = &val
	case Underlined:
		s.Underlined = &val
	case Strikethrough:
		s.Strikethrough = &val
	case Obfuscated:
		s.Obfuscated = &val
	}
}

// IsEmpty reports whether no attribute is set.
func (s Style) IsEmpty() bool {
	return s.Color == nil && s.Font == nil &&
		s.Bold == nil && s.Italic == nil && s.Underlined == nil &&
		s.Strikethrough == nil && s.Obfuscated == nil &&
		s.Shadow == nil && s.Insertion == nil && s.Click == nil && s.Hover == nil
}

// Inherit resolves a child style against its parent: fields the child sets
// win, everything else is inherited. The result shares no pointers with
// either input.
func Inherit(parent, child Style) Style {
	out := parent.Clone()
	c := child.Clone()
	if c.Color != nil {
		out.Color = c.Color
	}
	if c.Font != nil {
		out.Font = c.Font
	}
	for _, d := range Decorations {
		if v := c.Decoration(d); v != nil {
			out.SetDecoration(d, *v)
		}
	}
	if c.Shadow != nil {
		out.Shadow = c.Shadow
	}
	if c.Insertion != nil {
		out.Insertion = c.Insertion
	}
	if c.Click != nil {
		out.Click = c.Click
	}
	if c.Hover != nil {
		out.Hover = c.Hover
	}
	return out
}
