package rewrite

import "github.com/folnorm/folnorm/internal/fol"

// EliminateImplications rewrites every implication (a -> b) into the
// equivalent disjunction ((not a) or b).
type EliminateImplications struct{}

// NewEliminateImplications returns the implication elimination rewriter.
func NewEliminateImplications() *EliminateImplications {
	return &EliminateImplications{}
}

// Name returns the strategy name for logging and configuration.
func (*EliminateImplications) Name() string { return StepEliminateImplications }

// Rewrite applies the transformation bottom-up over the whole clause.
func (e *EliminateImplications) Rewrite(clause fol.Clause) (fol.Clause, error) {
	if imp, ok := clause.(*fol.Implies); ok {
		left, err := e.Rewrite(imp.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.Rewrite(imp.Right)
		if err != nil {
			return nil, err
		}
		return &fol.Or{Left: &fol.Not{Sub: left}, Right: right}, nil
	}
	return walk(clause, e.Rewrite)
}
