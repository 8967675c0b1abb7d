package rewrite

import "fmt"

// Step name constants for configuration.
const (
	StepEliminateImplications = "eliminate_implications"
	StepMoveNegation          = "move_negation"
	StepSkolemize             = "skolemize"
	StepDistributeOr          = "distribute_or"
)

// DefaultSteps is the full clausal-form sequence, in order.
var DefaultSteps = []string{
	StepEliminateImplications,
	StepMoveNegation,
	StepSkolemize,
	StepDistributeOr,
}

// NewStep returns the Rewriter for the given step name. The deps carry
// the per-run state that stateful steps need. Returns an error if the
// step name is unknown.
func NewStep(name string, deps StepDeps) (Rewriter, error) {
	switch name {
	case StepEliminateImplications:
		return NewEliminateImplications(), nil
	case StepMoveNegation:
		return NewMoveNegationInwards(), nil
	case StepSkolemize:
		return NewSkolemize(deps.Namer), nil
	case StepDistributeOr:
		return NewDistributeOr(), nil
	default:
		return nil, fmt.Errorf("rewrite: unknown step %q", name)
	}
}

// IsValidStep reports whether name is a known step name.
func IsValidStep(name string) bool {
	switch name {
	case StepEliminateImplications, StepMoveNegation, StepSkolemize, StepDistributeOr:
		return true
	default:
		return false
	}
}
