package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Metadata(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "nlsupper", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"generate", "sorts", "chars", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_GenerateEndToEnd(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"generate"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "set serveroutput on;\n"))
	assert.True(t, strings.HasSuffix(out, "END;\n"))
	assert.Contains(t, out, "dbms_output.put_line('//   - U+0069');")
}

func TestRootCmd_Version(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "nlsupper")
}
