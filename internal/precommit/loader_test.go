package precommit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
repos:
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v5.0.0
    hooks:
      - id: trailing-whitespace
      - id: check-added-large-files
        args: [--maxkb=1024]
  - repo: local
    hooks:
      - id: folnorm-hooks-lint
        name: folnorm hooks lint
        entry: go run ./cmd/folnorm hooks lint
        language: system
        files: ^\.pre-commit-config\.yaml$
        additional_dependencies: []
`

func TestLoadFromReader(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFromReader(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	require.Len(t, cfg.Repos, 2)

	remote := cfg.Repos[0]
	assert.Equal(t, "https://github.com/pre-commit/pre-commit-hooks", remote.Repo)
	assert.Equal(t, "v5.0.0", remote.Rev)
	assert.True(t, remote.NeedsRev())
	require.Len(t, remote.Hooks, 2)
	assert.Equal(t, []string{"--maxkb=1024"}, remote.Hooks[1].Args)

	local := cfg.Repos[1]
	assert.True(t, local.IsLocal())
	assert.False(t, local.NeedsRev())
	require.Len(t, local.Hooks, 1)
	assert.Equal(t, "folnorm-hooks-lint", local.Hooks[0].ID)
	assert.Equal(t, "system", local.Hooks[0].Language)

	require.NoError(t, cfg.Validate())
}

func TestLoadFromReaderBadYAML(t *testing.T) {
	t.Parallel()

	_, err := LoadFromReader(strings.NewReader("repos: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse hook config YAML")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load("testdata/does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open hook config")
}

func TestLoadOwnRepoConfig(t *testing.T) {
	t.Parallel()

	cfg, err := Load("../../.pre-commit-config.yaml")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
}
