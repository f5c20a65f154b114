package minimsg

import (
	"strings"

	"github.com/zjrosen/minemsg/internal/component"
)

// Serialize emits markup reproducing a tree's supported styling: color and
// the five boolean decorations. Each node opens only the tags that change
// something relative to the ambient style and closes them in reverse
// order, so the output is always balanced and never re-opens an effect
// that is already active.
//
// Font, shadow color, insertion, click and hover actions, and decorations
// transitioning to an explicit false are not serialized.
func Serialize(c component.Component) string {
	s := &serializer{}
	s.component(c)
	return s.sb.String()
}

type serializer struct {
	sb      strings.Builder
	ambient component.Style
}

func (s *serializer) component(c component.Component) {
	switch v := c.(type) {
	case component.Text:
		s.text(string(v))
	case component.List:
		// Each sibling serializes against the same pre-list ambient;
		// nodes restore it themselves.
		for _, child := range v {
			s.component(child)
		}
	case *component.Node:
		s.node(v)
	}
}

func (s *serializer) node(n *component.Node) {
	changes := s.styleChanges(n.Style)
	for _, change := range changes {
		s.sb.WriteByte('<')
		s.sb.WriteString(change)
		s.sb.WriteByte('>')
	}

	prev := s.ambient
	s.ambient = component.Inherit(prev, n.Style)

	if n.Text != nil {
		s.text(*n.Text)
	}
	for _, child := range n.Extra {
		s.component(child)
	}

	for i := len(changes) - 1; i >= 0; i-- {
		s.sb.WriteString("</")
		s.sb.WriteString(changes[i])
		s.sb.WriteByte('>')
	}
	s.ambient = prev
}

// styleChanges computes the tag names this node's style needs relative to
// the ambient style: color first, if set and different, then each
// decoration on a not-true to true transition.
func (s *serializer) styleChanges(st component.Style) []string {
	var changes []string
	if st.Color != nil && (s.ambient.Color == nil || !s.ambient.Color.Equal(*st.Color)) {
		if named, ok := st.Color.CanonicalNamed(); ok {
			changes = append(changes, named.String())
		} else {
			changes = append(changes, "color:"+st.Color.Hex())
		}
	}
	for _, d := range component.Decorations {
		v := st.Decoration(d)
		if v != nil && *v && !isTrue(s.ambient.Decoration(d)) {
			changes = append(changes, d.String())
		}
	}
	return changes
}

// text copies a leaf verbatim, escaping the three markup metacharacters.
// The parser does not unescape these on input; escaping is deliberately
// one-directional.
func (s *serializer) text(t string) {
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case '<':
			s.sb.WriteString("&lt;")
		case '>':
			s.sb.WriteString("&gt;")
		case '&':
			s.sb.WriteString("&amp;")
		default:
			s.sb.WriteByte(t[i])
		}
	}
}

func isTrue(v *bool) bool {
	return v != nil && *v
}
