// Package commands tests for CLI command creation and execution.
package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/nlsupper/internal/cli/config"
	"github.com/leapstack-labs/nlsupper/internal/cli/output"
	"github.com/leapstack-labs/nlsupper/internal/nls"
	"github.com/leapstack-labs/nlsupper/internal/testutil"
)

// runWithRenderer executes cmd with a renderer of the given mode stored
// in its context, the way the root command does for --output.
func runWithRenderer(t *testing.T, cmd *cobra.Command, mode output.Mode) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))

	r := output.NewRenderer(buf, io.Discard, mode)
	ctx := context.WithValue(context.Background(), RendererKey{}, r)
	require.NoError(t, cmd.ExecuteContext(ctx))
	return buf
}

func TestNewGenerateCommand(t *testing.T) {
	cmd := NewGenerateCommand()

	assert.Equal(t, "generate", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"out", "package"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewSortsCommand(t *testing.T) {
	cmd := NewSortsCommand()

	assert.Equal(t, "sorts", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewCharsCommand(t *testing.T) {
	cmd := NewCharsCommand()

	assert.Equal(t, "chars", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestGenerateCommand_Stdout(t *testing.T) {
	cmd := NewGenerateCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "set serveroutput on;\n"))
	assert.Contains(t, out, "BEGIN")
	assert.True(t, strings.HasSuffix(out, "END;\n"))
	assert.Contains(t, out, "dbms_output.put_line('package i18n');")
}

func TestGenerateCommand_LogsSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.sql")

	cmd := NewGenerateCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--out", path})

	ctx := context.WithValue(context.Background(), config.LoggerKey(), testutil.NewTestLogger(t))
	require.NoError(t, cmd.ExecuteContext(ctx))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestGenerateCommand_OutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.sql")

	cmd := NewGenerateCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--out", path, "--package", "oraupper"})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dbms_output.put_line('package oraupper');")
}

func TestGenerateCommand_OutFileUnwritable(t *testing.T) {
	cmd := NewGenerateCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--out", filepath.Join(t.TempDir(), "missing", "probe.sql")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestSortsCommand_PipedMarkdown(t *testing.T) {
	// No renderer in context and a buffer sink: auto resolves to the
	// Markdown table, the piped form.
	cmd := NewSortsCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "| GERMAN |")
	assert.Contains(t, out, "ESPERANTO (baseline)")
	assert.Contains(t, out, "61 sorts")
	assert.NotContains(t, out, "│", "piped output should not use box drawing")
}

func TestSortsCommand_Text(t *testing.T) {
	buf := runWithRenderer(t, NewSortsCommand(), output.ModeText)

	out := buf.String()
	assert.Contains(t, out, "GERMAN")
	assert.Contains(t, out, "│", "text mode renders the styled table")
	assert.NotContains(t, out, "| GERMAN |")
}

func TestCharsCommand_PipedMarkdown(t *testing.T) {
	cmd := NewCharsCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "U+0069")
	assert.Contains(t, out, "U+00df")
	assert.Contains(t, out, "Turkic casing rules")
	assert.Contains(t, out, "16 probe characters")
	assert.NotContains(t, out, "│", "piped output should not use box drawing")
}

func TestCharsCommand_Text(t *testing.T) {
	buf := runWithRenderer(t, NewCharsCommand(), output.ModeText)

	out := buf.String()
	assert.Contains(t, out, "U+03ce")
	assert.Contains(t, out, "strips the tonos")
	assert.Contains(t, out, "│", "text mode renders the styled table")
}

func TestSortsCommand_JSON(t *testing.T) {
	buf := runWithRenderer(t, NewSortsCommand(), output.ModeJSON)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	assert.Len(t, rows, len(nls.All()))

	byName := make(map[string]map[string]any)
	for _, row := range rows {
		byName[row["name"].(string)] = row
	}
	assert.Equal(t, "de", byName["GERMAN"]["lang"])
	assert.Equal(t, true, byName["ESPERANTO"]["baseline"])
}

func TestCharsCommand_JSON(t *testing.T) {
	buf := runWithRenderer(t, NewCharsCommand(), output.ModeJSON)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, len(nls.TestChars()))
	assert.Equal(t, "i", rows[0]["char"])
	assert.Equal(t, "0069", rows[0]["codepoint"])
	assert.Contains(t, rows[0]["note"], "Turkic")
}
