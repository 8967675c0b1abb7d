package precommit

import (
	"github.com/folnorm/folnorm/internal/pkg/validation"
)

// Validate checks the hook declaration for schema validity: every repo
// entry names its source and (for remote repos) a revision pin, and
// every hook carries an id. Local hooks must be fully declared since
// no upstream manifest supplies their name, entry or language.
// All failures are collected into one error.
func (c *Config) Validate() error {
	verr := validation.NewError("precommit")

	if len(c.Repos) == 0 {
		verr.Add("repos must contain at least one entry")
	}

	for i := range c.Repos {
		c.Repos[i].validate(verr, i)
	}

	return verr.ToError()
}

func (r *RepoConfig) validate(verr *validation.Error, idx int) {
	if r.Repo == "" {
		verr.Addf("repos[%d]: repo is required", idx)
	}

	switch {
	case r.NeedsRev() && r.Rev == "":
		verr.Addf("repos[%d] (%s): rev is required for remote repos", idx, r.Repo)
	case !r.NeedsRev() && r.Rev != "":
		verr.Addf("repos[%d] (%s): rev must not be set for %s repos", idx, r.Repo, r.Repo)
	}

	if len(r.Hooks) == 0 {
		verr.Addf("repos[%d] (%s): hooks must contain at least one entry", idx, r.Repo)
	}

	for j := range r.Hooks {
		r.Hooks[j].validate(verr, idx, j, r.IsLocal())
	}
}

func (h *HookConfig) validate(verr *validation.Error, repoIdx, hookIdx int, local bool) {
	if h.ID == "" {
		verr.Addf("repos[%d].hooks[%d]: id is required", repoIdx, hookIdx)
	}

	if !local {
		return
	}
	if h.Name == "" {
		verr.Addf("repos[%d].hooks[%d] (%s): name is required for local hooks", repoIdx, hookIdx, h.ID)
	}
	if h.Entry == "" {
		verr.Addf("repos[%d].hooks[%d] (%s): entry is required for local hooks", repoIdx, hookIdx, h.ID)
	}
	if h.Language == "" {
		verr.Addf("repos[%d].hooks[%d] (%s): language is required for local hooks", repoIdx, hookIdx, h.ID)
	}
}
