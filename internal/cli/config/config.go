// Package config provides configuration management for the nlsupper CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Out is the path the probe script is written to; empty means stdout.
	Out string `koanf:"out"`

	// Package is the package clause for the Go source the script prints.
	Package string `koanf:"package"`

	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultPackage = "i18n"
	DefaultOutput  = "auto"
)
