// Package render previews component trees as ANSI-styled terminal text.
package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"github.com/zjrosen/minemsg/internal/component"
)

// Options controls the preview output.
type Options struct {
	// Width wraps the output at the given column; 0 disables wrapping.
	Width int

	// Profile is the color capability to render with, e.g.
	// termenv.TrueColor or termenv.Ascii.
	Profile termenv.Profile
}

// Render flattens the tree into styled leaf runs and renders each with its
// effective inherited style. Colors map through their canonical hex
// values; obfuscated text renders as blinking, the closest ANSI effect.
// open_url click actions become OSC 8 hyperlinks.
func Render(c component.Component, opts Options) string {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(opts.Profile)

	var out string
	for _, leaf := range component.Flatten(c) {
		out += renderLeaf(r, leaf)
	}
	if opts.Width > 0 {
		out = wordwrap.String(out, opts.Width)
	}
	return out
}

func renderLeaf(r *lipgloss.Renderer, leaf component.Leaf) string {
	st := r.NewStyle()
	eff := leaf.Style
	if eff.Color != nil {
		st = st.Foreground(lipgloss.Color(eff.Color.Hex()))
	}
	if isTrue(eff.Bold) {
		st = st.Bold(true)
	}
	if isTrue(eff.Italic) {
		st = st.Italic(true)
	}
	if isTrue(eff.Underlined) {
		st = st.Underline(true)
	}
	if isTrue(eff.Strikethrough) {
		st = st.Strikethrough(true)
	}
	if isTrue(eff.Obfuscated) {
		st = st.Blink(true)
	}

	out := st.Render(leaf.Text)
	if eff.Click != nil && eff.Click.Action == component.ClickOpenURL && r.ColorProfile() != termenv.Ascii {
		out = termenv.Hyperlink(eff.Click.Value, out)
	}
	return out
}

func isTrue(v *bool) bool {
	return v != nil && *v
}
