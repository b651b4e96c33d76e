// Package commands implements the nlsupper CLI commands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/nlsupper/internal/cli/config"
	"github.com/leapstack-labs/nlsupper/internal/cli/output"
)

// ConfigKey is the context key under which the root command stores the
// loaded configuration.
type ConfigKey struct{}

// RendererKey is the context key under which the root command stores the
// output renderer.
type RendererKey struct{}

// GetConfig retrieves the config from the command context, falling back
// to defaults when the root command has not stored one (tests exercise
// commands directly).
func GetConfig(cmd *cobra.Command) *config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if c, ok := ctx.Value(ConfigKey{}).(*config.Config); ok {
			return c
		}
	}
	return &config.Config{
		Package:      config.DefaultPackage,
		OutputFormat: config.DefaultOutput,
	}
}

// GetRenderer retrieves the renderer from the command context, creating
// one over the command's own streams when absent.
func GetRenderer(cmd *cobra.Command) *output.Renderer {
	if ctx := cmd.Context(); ctx != nil {
		if r, ok := ctx.Value(RendererKey{}).(*output.Renderer); ok {
			return r
		}
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeAuto)
}
