package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/nlsupper/internal/cli/config"
	"github.com/leapstack-labs/nlsupper/internal/gen"
)

// GenerateOptions holds options for the generate command.
type GenerateOptions struct {
	Out     string // Output file path; empty writes to stdout.
	Package string // Package clause for the emitted Go source.
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the Oracle probe script",
		Long: `Generate the PL/SQL probe script for all linguistic sorts.

Run the script in the target Oracle database under SQL*Plus; its
dbms_output is Go source for the lookup table of upper-casing
exceptions, ready to paste into the consuming package. The script only
emits comparisons - the database itself is the oracle for whether its
upper-casing diverges.`,
		Example: `  # Write the probe script to stdout
  nlsupper generate

  # Write to a file, emitting package oraupper
  nlsupper generate --out probe.sql --package oraupper`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Out, "out", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Package name for the emitted Go source")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *GenerateOptions) error {
	cfg := GetConfig(cmd)
	logger := config.GetLogger(cmd.Context())

	out := cfg.Out
	if opts.Out != "" {
		out = opts.Out
	}
	pkg := cfg.Package
	if opts.Package != "" {
		pkg = opts.Package
	}

	g := gen.New()
	if pkg != "" {
		g.Package = pkg
	}

	logger.Debug("generating probe script",
		"sorts", len(g.Sorts), "chars", len(g.Chars), "package", g.Package)

	if out == "" {
		return g.Generate(cmd.OutOrStdout())
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := g.Generate(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", out, err)
	}

	logger.Info("probe script written", "path", out)
	return nil
}
