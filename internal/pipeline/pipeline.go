// Package pipeline assembles rewrite steps into a runnable
// normalization sequence.
package pipeline

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/folnorm/folnorm/internal/fol"
	"github.com/folnorm/folnorm/internal/rewrite"
)

// UnknownStepError is returned when a configured step name does not
// match any rewrite step.
type UnknownStepError struct {
	Name string
}

func (e UnknownStepError) Error() string {
	return fmt.Sprintf("pipeline: unknown step %q", e.Name)
}

// Pipeline runs a fixed sequence of rewrite steps. Each Run gets fresh
// per-run state, so skolem names always start at F_0.
type Pipeline struct {
	steps []string
}

// New creates a pipeline from step names. An empty list selects the
// full clausal-form sequence (rewrite.DefaultSteps).
func New(steps []string) (*Pipeline, error) {
	if len(steps) == 0 {
		steps = rewrite.DefaultSteps
	}
	for _, name := range steps {
		if !rewrite.IsValidStep(name) {
			return nil, UnknownStepError{Name: name}
		}
	}
	return &Pipeline{steps: append([]string(nil), steps...)}, nil
}

// Steps returns the configured step names.
func (p *Pipeline) Steps() []string {
	return append([]string(nil), p.steps...)
}

// Run normalizes a single clause through every step in order.
func (p *Pipeline) Run(clause fol.Clause) (fol.Clause, error) {
	deps := rewrite.NewStepDeps()

	out := clause
	for _, name := range p.steps {
		step, err := rewrite.NewStep(name, deps)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		if out, err = step.Rewrite(out); err != nil {
			return nil, fmt.Errorf("pipeline: step %s: %w", name, err)
		}

		log.Debug().
			Str("step", name).
			Dur("elapsed", time.Since(start)).
			Stringer("clause", out).
			Msg("rewrite step applied")
	}
	return out, nil
}
