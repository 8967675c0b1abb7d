package config

import (
	"github.com/folnorm/folnorm/internal/pkg/validation"
	"github.com/folnorm/folnorm/internal/rewrite"
)

// Valid logging levels.
var validLogLevels = map[string]bool{
	"":         true, // Empty defaults to info
	LevelDebug: true,
	LevelInfo:  true,
	LevelWarn:  true,
	LevelError: true,
}

// Valid logging formats.
var validLogFormats = map[string]bool{
	"":        true, // Empty defaults to auto-detect
	"json":    true,
	"console": true,
	"pretty":  true,
}

// Valid output formats.
var validOutputFormats = map[string]bool{
	"":         true, // Empty defaults to text
	FormatText: true,
	FormatJSON: true,
}

// Validate checks the configuration for errors. All failures are
// collected into one error so the user sees everything at once.
func (c *Config) Validate() error {
	verr := validation.NewError("config")

	if !validLogLevels[c.Logging.Level] {
		verr.Addf("logging.level: invalid level %q", c.Logging.Level)
	}
	if !validLogFormats[c.Logging.Format] {
		verr.Addf("logging.format: invalid format %q", c.Logging.Format)
	}
	if !validOutputFormats[c.Normalize.Format] {
		verr.Addf("normalize.format: invalid format %q", c.Normalize.Format)
	}

	for _, step := range c.Normalize.Steps {
		if !rewrite.IsValidStep(step) {
			verr.Addf("normalize.steps: unknown step %q", step)
		}
	}

	return verr.ToError()
}
