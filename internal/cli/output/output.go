// Package output provides mode-aware rendering for CLI commands.
// Auto mode picks styled text on a terminal and Markdown when piped,
// so scripted consumers get stable, fence-friendly output.
package output

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Mode selects the rendering style.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes command output to the configured sinks.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
}

// NewRenderer creates a renderer. An empty or unknown mode behaves as
// ModeAuto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON:
	default:
		mode = ModeAuto
	}
	return &Renderer{out: out, errOut: errOut, mode: mode}
}

// EffectiveMode resolves ModeAuto against the output environment:
// styled text on a terminal, Markdown when piped.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.IsTerminal() {
		return ModeText
	}
	return ModeMarkdown
}

// IsTerminal reports whether the output sink is attached to a terminal
// that supports styling. Non-file sinks (buffers, pipes) report false.
func (r *Renderer) IsTerminal() bool {
	f, ok := r.out.(termenv.File)
	if !ok {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// Writer returns the standard output sink.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the error output sink.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Println writes a line to standard output.
func (r *Renderer) Println(args ...any) {
	_, _ = fmt.Fprintln(r.out, args...)
}

// Printf writes formatted text to standard output.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
