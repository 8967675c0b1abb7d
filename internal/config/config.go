// Package config provides configuration loading, parsing, and
// validation for folnorm.
package config

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/mo"

	"github.com/folnorm/folnorm/internal/precommit"
	"github.com/folnorm/folnorm/internal/rewrite"
)

// Log level constants.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Output format constants for normalized clauses.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the complete folnorm configuration.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" toml:"logging"`
	Normalize NormalizeConfig `yaml:"normalize" toml:"normalize"`
	Hooks     HooksConfig     `yaml:"hooks" toml:"hooks"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{}
}

// NormalizeConfig controls the rewrite pipeline.
type NormalizeConfig struct {
	// Steps lists the rewrite steps to run, in order. Empty selects
	// the full clausal-form sequence.
	Steps []string `yaml:"steps" toml:"steps"`

	// Format selects the output encoding: text (default) or json.
	Format string `yaml:"format" toml:"format"`
}

// GetEffectiveSteps returns the configured steps with default fallback.
func (n *NormalizeConfig) GetEffectiveSteps() []string {
	if len(n.Steps) == 0 {
		return rewrite.DefaultSteps
	}
	return n.Steps
}

// GetEffectiveFormat returns the output format with default fallback.
func (n *NormalizeConfig) GetEffectiveFormat() string {
	if n.Format == "" {
		return FormatText
	}
	return n.Format
}

// HooksConfig controls the `hooks lint` command.
type HooksConfig struct {
	// ConfigPath overrides the hook declaration file to lint.
	// Default: ./.pre-commit-config.yaml.
	ConfigPath string `yaml:"config_path" toml:"config_path"`
}

// GetConfigPathOption returns the configured path as an Option.
// Returns None when the default location should be used.
func (h *HooksConfig) GetConfigPathOption() mo.Option[string] {
	if h.ConfigPath == "" {
		return mo.None[string]()
	}
	return mo.Some(h.ConfigPath)
}

// GetEffectivePath returns the hook declaration path with default
// fallback.
func (h *HooksConfig) GetEffectivePath() string {
	return h.GetConfigPathOption().OrElse(precommit.ConfigFileName)
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // json, console, pretty
	Output string `yaml:"output" toml:"output"` // stdout, stderr, or file path
	Pretty bool   `yaml:"pretty" toml:"pretty"` // force colored console output
}

// ParseLevel converts the configured log level to zerolog.Level.
// Returns zerolog.InfoLevel if the level string is invalid.
func (l *LoggingConfig) ParseLevel() zerolog.Level {
	switch strings.ToLower(l.Level) {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
