// Package minimsg converts between component trees and the tag-based chat
// markup format: "<red>hi <bold>there</bold></red>" and friends.
//
// Parsing is a single left-to-right pass driven by a style stack; styled
// tags push a frame on open and pop it on close, and every literal run is
// emitted as one component carrying the ambient style in effect at that
// point. Serialization walks a tree against an ambient style and emits the
// minimal tag set for the supported attributes (color and the five
// decorations).
package minimsg

import "fmt"

// Options configures parsing.
type Options struct {
	// Strict is reserved for a mode that requires every styled tag to be
	// closed. It is carried through configuration but not enforced yet.
	Strict bool

	// LegacyColors enables recognition of two-character &x color and
	// formatting codes inside literal text.
	LegacyColors bool
}

// SyntaxError is the one error kind parsing can produce. Any syntax error
// aborts the whole parse; no partial tree is returned.
type SyntaxError struct {
	Pos int // byte offset at which the error was detected
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}
