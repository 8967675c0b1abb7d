// Package precommit models the .pre-commit-config.yaml hook
// declaration file and checks its schema validity. It does not run
// hooks; execution belongs to the external pre-commit engine.
package precommit

// ConfigFileName is the conventional name of the hook declaration file.
const ConfigFileName = ".pre-commit-config.yaml"

// Repo types that reference no external repository.
const (
	LocalRepo = "local"
	MetaRepo  = "meta"
)

// Config is the top-level hook declaration mapping.
type Config struct {
	Repos []RepoConfig `yaml:"repos"`
}

// RepoConfig declares one hook source: a repository URL (or "local" /
// "meta"), a revision pin, and the hooks taken from it.
type RepoConfig struct {
	Repo  string       `yaml:"repo"`
	Rev   string       `yaml:"rev,omitempty"`
	Hooks []HookConfig `yaml:"hooks"`
}

// IsLocal returns true for hooks defined inside the consuming
// repository itself.
func (r *RepoConfig) IsLocal() bool { return r.Repo == LocalRepo }

// IsMeta returns true for pre-commit's built-in self-check hooks.
func (r *RepoConfig) IsMeta() bool { return r.Repo == MetaRepo }

// NeedsRev returns true when the entry must carry a revision pin.
// Local and meta repos have no repository to pin.
func (r *RepoConfig) NeedsRev() bool { return !r.IsLocal() && !r.IsMeta() }

// HookConfig declares a single hook. Only ID is always required; local
// hooks additionally need Name, Entry and Language because there is no
// upstream manifest to take them from.
type HookConfig struct {
	ID                     string   `yaml:"id"`
	Name                   string   `yaml:"name,omitempty"`
	Entry                  string   `yaml:"entry,omitempty"`
	Language               string   `yaml:"language,omitempty"`
	Files                  string   `yaml:"files,omitempty"`
	Args                   []string `yaml:"args,omitempty"`
	AdditionalDependencies []string `yaml:"additional_dependencies,omitempty"`
}
