package minimsg

import "github.com/zjrosen/minemsg/internal/component"

// styleStack threads inherited formatting through nested tags. The bottom
// frame is always the all-unset default and is never popped; push clones
// the top frame before mutating it, so earlier frames stay untouched.
type styleStack []component.Style

func newStyleStack() styleStack {
	return styleStack{{}}
}

func (s styleStack) current() component.Style {
	return s[len(s)-1]
}

// push clones the current frame, applies mutate to the clone, and makes it
// the new top.
func (s *styleStack) push(mutate func(*component.Style)) {
	frame := s.current().Clone()
	mutate(&frame)
	*s = append(*s, frame)
}

// pop removes the top frame. It reports false when only the default frame
// remains, in which case nothing is removed.
func (s *styleStack) pop() bool {
	if len(*s) <= 1 {
		return false
	}
	*s = (*s)[:len(*s)-1]
	return true
}

// reset pops every frame above the default.
func (s *styleStack) reset() {
	*s = (*s)[:1]
}
