package output

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRenderer_ModeNormalization(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want Mode
	}{
		{"text stays text", ModeText, ModeText},
		{"markdown stays markdown", ModeMarkdown, ModeMarkdown},
		{"json stays json", ModeJSON, ModeJSON},
		{"auto resolves to markdown off-terminal", ModeAuto, ModeMarkdown},
		{"empty resolves to markdown off-terminal", Mode(""), ModeMarkdown},
		{"unknown resolves to markdown off-terminal", Mode("yaml"), ModeMarkdown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(io.Discard, io.Discard, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestRenderer_AutoResolutionBySink(t *testing.T) {
	// A byte buffer is not a terminal, so auto falls back to markdown
	// for stable piped output. An explicit mode is never overridden.
	piped := NewRenderer(new(bytes.Buffer), io.Discard, ModeAuto)
	assert.Equal(t, ModeMarkdown, piped.EffectiveMode())

	forced := NewRenderer(new(bytes.Buffer), io.Discard, ModeText)
	assert.Equal(t, ModeText, forced.EffectiveMode())
}

func TestRenderer_Writers(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeText)

	r.Println("hello")
	r.Printf("%d sorts\n", 61)

	assert.Equal(t, "hello\n61 sorts\n", out.String())
	assert.Empty(t, errOut.String())
	assert.Same(t, &out, r.Writer())
	assert.Same(t, &errOut, r.ErrWriter())
}

func TestRenderer_IsTerminal_Buffer(t *testing.T) {
	r := NewRenderer(new(bytes.Buffer), io.Discard, ModeAuto)
	assert.False(t, r.IsTerminal(), "buffers are not terminals")
}
