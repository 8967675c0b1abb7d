package rewrite

import "github.com/folnorm/folnorm/internal/fol"

// StepDeps carries the per-run state that stateful steps consume.
// Callers should build a fresh StepDeps for every normalization run so
// skolem names restart at F_0.
type StepDeps struct {
	Namer *fol.SkolemNamer
}

// NewStepDeps returns deps with a fresh skolem namer.
func NewStepDeps() StepDeps {
	return StepDeps{Namer: fol.NewSkolemNamer()}
}
