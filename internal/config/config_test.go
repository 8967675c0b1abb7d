package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/folnorm/folnorm/internal/rewrite"
)

func TestGetEffectiveSteps(t *testing.T) {
	t.Parallel()

	var n NormalizeConfig
	assert.Equal(t, rewrite.DefaultSteps, n.GetEffectiveSteps())

	n.Steps = []string{"skolemize"}
	assert.Equal(t, []string{"skolemize"}, n.GetEffectiveSteps())
}

func TestGetEffectiveFormat(t *testing.T) {
	t.Parallel()

	var n NormalizeConfig
	assert.Equal(t, FormatText, n.GetEffectiveFormat())

	n.Format = FormatJSON
	assert.Equal(t, FormatJSON, n.GetEffectiveFormat())
}

func TestHooksConfigPathOption(t *testing.T) {
	t.Parallel()

	var h HooksConfig
	assert.True(t, h.GetConfigPathOption().IsAbsent())
	assert.Equal(t, ".pre-commit-config.yaml", h.GetEffectivePath())

	h.ConfigPath = "other.yaml"
	assert.Equal(t, "other.yaml", h.GetConfigPathOption().MustGet())
	assert.Equal(t, "other.yaml", h.GetEffectivePath())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{level: "debug", expected: zerolog.DebugLevel},
		{level: "info", expected: zerolog.InfoLevel},
		{level: "WARN", expected: zerolog.WarnLevel},
		{level: "error", expected: zerolog.ErrorLevel},
		{level: "", expected: zerolog.InfoLevel},
		{level: "bogus", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		l := LoggingConfig{Level: tt.level}
		assert.Equal(t, tt.expected, l.ParseLevel(), "level %q", tt.level)
	}
}
