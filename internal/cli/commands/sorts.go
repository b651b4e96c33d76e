package commands

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/nlsupper/internal/cli/output"
	"github.com/leapstack-labs/nlsupper/internal/nls"
)

// NewSortsCommand creates the sorts command.
func NewSortsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sorts",
		Short: "List the supported linguistic sorts",
		Long: `List every linguistic sort the probe script covers, with its Oracle
upper-casing expression and language code. The entry marked as baseline
is the control: no exceptions are probed for it.

Output adapts to environment:
  - Terminal: styled table
  - Piped/Scripted: Markdown table
  - JSON with --output json`,
		Example: `  # List sorts as a table
  nlsupper sorts

  # List sorts as JSON
  nlsupper sorts --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSorts(cmd)
		},
	}

	return cmd
}

// sortRow is the JSON output row for the sorts command.
type sortRow struct {
	Name     string `json:"name"`
	Format   string `json:"format"`
	Lang     string `json:"lang"`
	Baseline bool   `json:"baseline,omitempty"`
}

func runSorts(cmd *cobra.Command) error {
	r := GetRenderer(cmd)
	mode := r.EffectiveMode()

	if mode == output.ModeJSON {
		rows := make([]sortRow, 0, len(nls.All()))
		for _, s := range nls.All() {
			rows = append(rows, sortRow{
				Name:     s.Name,
				Format:   s.Format,
				Lang:     s.Lang,
				Baseline: s.Baseline(),
			})
		}
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(table.Row{"#", "Name", "Expression", "Lang"})

	for i, s := range nls.All() {
		name := s.Name
		if s.Baseline() {
			name += " (baseline)"
		}
		t.AppendRow(table.Row{i + 1, name, s.Format, s.Lang})
	}

	if mode == output.ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.SetStyle(table.StyleLight)
		t.Render()
	}

	r.Printf("\n%d sorts, baseline %s\n", len(nls.All()), nls.BaselineName)
	return nil
}
