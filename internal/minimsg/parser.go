package minimsg

import (
	"github.com/zjrosen/minemsg/internal/component"
)

// explicitClosers are the closing-tag names that always pop one style
// frame, and error when only the default frame is left. Any other closing
// name pops leniently: only when there is something above the default.
var explicitClosers = map[string]bool{
	"bold": true, "b": true,
	"italic": true, "i": true, "em": true,
	"underlined": true, "u": true,
	"strikethrough": true, "st": true,
	"obfuscated": true, "obf": true,
	"color": true, "colour": true, "c": true,
	"click": true,
	"hover": true,
	"insert": true, "insertion": true,
}

// decorationTags maps opening-tag names to the decoration they enable.
var decorationTags = map[string]component.Decoration{
	"bold": component.Bold, "b": component.Bold,
	"italic": component.Italic, "i": component.Italic, "em": component.Italic,
	"underlined": component.Underlined, "u": component.Underlined,
	"strikethrough": component.Strikethrough, "st": component.Strikethrough,
	"obfuscated": component.Obfuscated, "obf": component.Obfuscated,
}

// parser holds the state of one parse call: scan position, style stack,
// and the accumulated top-level parts. Nothing is shared across calls.
type parser struct {
	lex   *lexer
	opts  Options
	stack styleStack
	parts []component.Component
}

// Parse converts markup to a component tree with default options.
func Parse(input string) (component.Component, error) {
	return ParseWithOptions(input, Options{})
}

// ParseWithOptions converts markup to a component tree. A single top-level
// run is returned directly; multiple runs are wrapped in a List preserving
// encounter order. Any syntax error aborts the parse with no partial
// result.
func ParseWithOptions(input string, opts Options) (component.Component, error) {
	p := &parser{
		lex:   &lexer{input: input},
		opts:  opts,
		stack: newStyleStack(),
	}
	return p.parse()
}

func (p *parser) parse() (component.Component, error) {
	for !p.lex.eof() {
		switch {
		case p.lex.peek() == '<':
			if err := p.parseTag(); err != nil {
				return nil, err
			}
		case p.opts.LegacyColors && p.lex.peek() == '&':
			p.parseLegacyCode()
		default:
			p.parseText()
		}
	}

	if len(p.parts) == 1 {
		return p.parts[0], nil
	}
	return component.List(p.parts), nil
}

// parseText consumes a maximal literal run and emits it as one component
// carrying the current ambient style. Runs are never merged.
func (p *parser) parseText() {
	start := p.lex.pos
	for !p.lex.eof() {
		c := p.lex.peek()
		if c == '<' || (p.opts.LegacyColors && c == '&') {
			break
		}
		p.lex.pos++
	}
	if start < p.lex.pos {
		p.emitText(p.lex.input[start:p.lex.pos])
	}
}

// emitText appends a text node styled with the current ambient style.
func (p *parser) emitText(text string) {
	t := text
	p.parts = append(p.parts, &component.Node{
		Type:  component.ContentText,
		Text:  &t,
		Style: p.stack.current().Clone(),
	})
}

func (p *parser) parseTag() error {
	tagStart := p.lex.pos
	p.lex.pos++ // consume '<'
	t, err := p.lex.readTag()
	if err != nil {
		return err
	}
	if t.closing {
		return p.closeTag(t, tagStart)
	}
	return p.openTag(t)
}

func (p *parser) openTag(t tag) error {
	switch t.name {
	case "color", "colour", "c":
		if len(t.args) == 0 {
			p.unknownTag(t)
			return nil
		}
		if col, ok := component.ParseColor(t.args[0]); ok {
			p.pushColor(col)
		}

	case "bold", "b", "italic", "i", "em", "underlined", "u",
		"strikethrough", "st", "obfuscated", "obf":
		d := decorationTags[t.name]
		p.stack.push(func(s *component.Style) { s.SetDecoration(d, true) })

	case "reset":
		p.stack.reset()

	case "click":
		if len(t.args) < 2 {
			p.unknownTag(t)
			return nil
		}
		value := t.args[1]
		var ev component.ClickEvent
		switch t.args[0] {
		case "run_command":
			ev = component.RunCommand(value)
		case "suggest_command":
			ev = component.SuggestCommand(value)
		case "open_url":
			ev = component.OpenURL(value)
		case "copy_to_clipboard":
			ev = component.CopyToClipboard(value)
		default:
			// Unrecognized click actions are consumed silently.
			return nil
		}
		p.stack.push(func(s *component.Style) { s.Click = &ev })

	case "hover":
		if len(t.args) == 0 {
			p.unknownTag(t)
			return nil
		}
		if t.args[0] == "show_text" && len(t.args) >= 2 {
			// The hover text is itself markup; parse it with a fresh
			// parser sharing this one's options.
			sub, err := ParseWithOptions(t.args[1], p.opts)
			if err != nil {
				return err
			}
			ev := component.ShowText(sub)
			p.stack.push(func(s *component.Style) { s.Hover = &ev })
		}
		// Other hover actions exist in the data model but have no markup
		// form; the tag is consumed without effect.

	case "newline", "br":
		p.emitText("\n")

	case "insert", "insertion":
		if len(t.args) == 0 {
			p.unknownTag(t)
			return nil
		}
		ins := t.args[0]
		p.stack.push(func(s *component.Style) { s.Insertion = &ins })

	default:
		if n, ok := component.ParseNamedColor(t.name); ok {
			p.pushColor(component.Named(n))
			return nil
		}
		p.unknownTag(t)
	}
	return nil
}

// unknownTag degrades an unrecognized opening tag: self-closing tags become
// a visually inert empty text component, everything else is re-emitted as
// its reconstructed source text, both at the ambient style.
func (p *parser) unknownTag(t tag) {
	if t.selfClosing {
		p.emitText("")
		return
	}
	p.emitText(t.source())
}

func (p *parser) pushColor(c component.Color) {
	p.stack.push(func(s *component.Style) { s.Color = &c })
}

// closeTag pops the top style frame. Explicitly-recognized stacking names
// must have a frame to pop; unrecognized names are forgiven.
func (p *parser) closeTag(t tag, tagStart int) error {
	if explicitClosers[t.name] {
		if !p.stack.pop() {
			return &SyntaxError{Pos: tagStart, Msg: "unbalanced closing tag </" + t.name + ">"}
		}
		return nil
	}
	p.stack.pop()
	return nil
}

// legacyColors maps &x color codes to named colors.
var legacyColors = map[byte]component.NamedColor{
	'0': component.Black, '1': component.DarkBlue, '2': component.DarkGreen,
	'3': component.DarkAqua, '4': component.DarkRed, '5': component.DarkPurple,
	'6': component.Gold, '7': component.Gray, '8': component.DarkGray,
	'9': component.Blue, 'a': component.Green, 'b': component.Aqua,
	'c': component.Red, 'd': component.LightPurple, 'e': component.Yellow,
	'f': component.White,
}

// legacyDecorations maps &x formatting codes to decorations.
var legacyDecorations = map[byte]component.Decoration{
	'k': component.Obfuscated,
	'l': component.Bold,
	'm': component.Strikethrough,
	'n': component.Underlined,
	'o': component.Italic,
}

// parseLegacyCode consumes one two-character &x code. A color code resets
// the stack and starts a fresh colored frame, matching how legacy codes
// discard prior formatting; unknown codes fall back to literal text.
func (p *parser) parseLegacyCode() {
	if p.lex.pos+1 >= len(p.lex.input) {
		p.lex.pos++
		p.emitText("&")
		return
	}
	code := lowerByte(p.lex.input[p.lex.pos+1])
	p.lex.pos += 2

	if n, ok := legacyColors[code]; ok {
		p.stack.reset()
		p.pushColor(component.Named(n))
		return
	}
	if d, ok := legacyDecorations[code]; ok {
		p.stack.push(func(s *component.Style) { s.SetDecoration(d, true) })
		return
	}
	if code == 'r' {
		p.stack.reset()
		return
	}
	p.emitText(p.lex.input[p.lex.pos-2 : p.lex.pos])
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
