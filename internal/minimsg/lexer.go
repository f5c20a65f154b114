package minimsg

import (
	"fmt"
	"strings"
)

// lexer scans tag structure out of raw markup. It is byte-indexed; every
// byte it branches on is ASCII, so multi-byte runes pass through literal
// runs and arguments untouched.
type lexer struct {
	input string
	pos   int
}

// tag is one scanned <...> construct.
type tag struct {
	name        string
	args        []string
	closing     bool
	selfClosing bool
}

// source reconstructs the tag as it would have been written with unquoted
// colon-separated arguments. Used when an unknown tag degrades to literal
// text.
func (t tag) source() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(t.name)
	for _, arg := range t.args {
		sb.WriteByte(':')
		sb.WriteString(arg)
	}
	if t.selfClosing {
		sb.WriteByte('/')
	}
	sb.WriteByte('>')
	return sb.String()
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.input)
}

// peek returns the current byte, or 0 at end of input.
func (l *lexer) peek() byte {
	if l.eof() {
		return 0
	}
	return l.input[l.pos]
}

func (l *lexer) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: l.pos, Msg: fmt.Sprintf(format, args...)}
}

// readTag scans a full tag. The caller has already consumed the opening
// '<'.
func (l *lexer) readTag() (tag, error) {
	var t tag
	if l.peek() == '/' {
		l.pos++
		t.closing = true
	}

	name, err := l.readTagName()
	if err != nil {
		return tag{}, err
	}
	t.name = name

	if t.closing {
		// Closing tags may carry arguments, since serialized hex colors
		// close as </color:#RRGGBB>. They are scanned and ignored.
		for {
			l.skipSeparators()
			switch l.peek() {
			case '>':
				l.pos++
				return t, nil
			case '/', 0:
				return tag{}, l.errorf("expected '>'")
			}
			arg, err := l.readArgument()
			if err != nil {
				return tag{}, err
			}
			t.args = append(t.args, arg)
		}
	}

	for {
		l.skipSeparators()
		switch l.peek() {
		case '>':
			l.pos++
			return t, nil
		case '/':
			l.pos++
			t.selfClosing = true
			if err := l.expect('>'); err != nil {
				return tag{}, err
			}
			return t, nil
		case 0:
			return tag{}, l.errorf("expected '>'")
		}
		arg, err := l.readArgument()
		if err != nil {
			return tag{}, err
		}
		t.args = append(t.args, arg)
	}
}

// readTagName reads one or more of [A-Za-z0-9_-], folded to lowercase.
func (l *lexer) readTagName() (string, error) {
	start := l.pos
	for !l.eof() && isNameByte(l.input[l.pos]) {
		l.pos++
	}
	if start == l.pos {
		return "", l.errorf("expected tag name")
	}
	return strings.ToLower(l.input[start:l.pos]), nil
}

// readArgument reads a quoted or unquoted argument. Unquoted arguments may
// be empty; that is not an error.
func (l *lexer) readArgument() (string, error) {
	if c := l.peek(); c == '\'' || c == '"' {
		return l.readQuoted(c)
	}
	return l.readUnquoted(), nil
}

// readQuoted reads a string delimited by the given quote byte. A backslash
// escapes the following byte, including the quote itself.
func (l *lexer) readQuoted(quote byte) (string, error) {
	l.pos++ // opening quote
	var sb strings.Builder
	escaped := false
	for !l.eof() {
		c := l.input[l.pos]
		switch {
		case escaped:
			sb.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == quote:
			l.pos++
			return sb.String(), nil
		default:
			sb.WriteByte(c)
		}
		l.pos++
	}
	return "", l.errorf("unterminated quoted string")
}

// readUnquoted reads up to the next ':', '>', '/', or whitespace.
func (l *lexer) readUnquoted() string {
	start := l.pos
	for !l.eof() {
		c := l.input[l.pos]
		if c == ':' || c == '>' || c == '/' || isSpaceByte(c) {
			break
		}
		l.pos++
	}
	return l.input[start:l.pos]
}

// skipSeparators advances past any run of ':' separators and whitespace.
// Extra separators are never an error.
func (l *lexer) skipSeparators() {
	for !l.eof() {
		c := l.input[l.pos]
		if c != ':' && !isSpaceByte(c) {
			return
		}
		l.pos++
	}
}

func (l *lexer) expect(c byte) error {
	if l.peek() != c {
		return l.errorf("expected %q", string(c))
	}
	l.pos++
	return nil
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_' || c == '-'
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
