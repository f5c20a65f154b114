// Package presentation handles CLI output formatting.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zjrosen/minemsg/internal/component"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatComponent writes a component tree as indented JSON
func (f *Formatter) FormatComponent(c component.Component) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(c)
}

// FormatComponentCompact writes a component tree as single-line JSON
func (f *Formatter) FormatComponentCompact(c component.Component) error {
	encoder := json.NewEncoder(f.writer)
	return encoder.Encode(c)
}

// FormatText writes a plain line of output
func (f *Formatter) FormatText(s string) error {
	_, err := fmt.Fprintln(f.writer, s)
	return err
}
