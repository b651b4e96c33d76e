package commands

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/nlsupper/internal/cli/output"
	"github.com/leapstack-labs/nlsupper/internal/nls"
	"github.com/leapstack-labs/nlsupper/internal/plsql"
)

// NewCharsCommand creates the chars command.
func NewCharsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chars",
		Short: "List the probe characters",
		Long: `List the characters the probe script tests against every non-baseline
linguistic sort. These are codepoints known to upper-case differently
across locales or between Oracle and the application side. Each entry
carries a note on why its upper-casing is locale-sensitive.

Output adapts to environment:
  - Terminal: styled table
  - Piped/Scripted: Markdown table
  - JSON with --output json`,
		Example: `  # List probe characters
  nlsupper chars

  # List probe characters as JSON
  nlsupper chars --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChars(cmd)
		},
	}

	return cmd
}

// charRow is the JSON output row for the chars command.
type charRow struct {
	Char      string `json:"char"`
	Codepoint string `json:"codepoint"`
	Note      string `json:"note,omitempty"`
}

func runChars(cmd *cobra.Command) error {
	r := GetRenderer(cmd)
	chars := nls.TestChars()
	mode := r.EffectiveMode()

	if mode == output.ModeJSON {
		rows := make([]charRow, 0, len(chars))
		for _, c := range chars {
			rows = append(rows, charRow{
				Char:      string(c),
				Codepoint: plsql.HexCodePoint(c),
				Note:      nls.CharNote(c),
			})
		}
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(table.Row{"Char", "Codepoint", "Unistr", "Notes"})

	for _, c := range chars {
		t.AppendRow(table.Row{string(c), "U+" + plsql.HexCodePoint(c), plsql.Unistr(c), nls.CharNote(c)})
	}

	if mode == output.ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.SetStyle(table.StyleLight)
		t.Render()
	}

	r.Printf("\n%d probe characters\n", len(chars))
	return nil
}
