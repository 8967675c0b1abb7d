package rewrite

import "github.com/folnorm/folnorm/internal/fol"

// MoveNegationInwards pushes negation down to the predicates, producing
// negation normal form: De Morgan on conjunction and disjunction,
// quantifier duals, double negation elimination. A negation sitting
// directly on a predicate is a literal and stays.
type MoveNegationInwards struct{}

// NewMoveNegationInwards returns the negation normal form rewriter.
func NewMoveNegationInwards() *MoveNegationInwards {
	return &MoveNegationInwards{}
}

// Name returns the strategy name for logging and configuration.
func (*MoveNegationInwards) Name() string { return StepMoveNegation }

// Rewrite applies the transformation over the whole clause.
func (m *MoveNegationInwards) Rewrite(clause fol.Clause) (fol.Clause, error) {
	if not, ok := clause.(*fol.Not); ok {
		return m.rewriteNot(not)
	}
	return walk(clause, m.Rewrite)
}

func (m *MoveNegationInwards) rewriteNot(not *fol.Not) (fol.Clause, error) {
	switch sub := not.Sub.(type) {
	case *fol.Predicate:
		// Negated literal: nothing to push.
		return &fol.Not{Sub: &fol.Predicate{Name: sub.Name, Args: append([]fol.Term(nil), sub.Args...)}}, nil

	case *fol.ForAll:
		body, err := m.Rewrite(&fol.Not{Sub: sub.Body})
		if err != nil {
			return nil, err
		}
		return &fol.ThereExists{Vars: append([]fol.Symbol(nil), sub.Vars...), Body: body}, nil

	case *fol.ThereExists:
		body, err := m.Rewrite(&fol.Not{Sub: sub.Body})
		if err != nil {
			return nil, err
		}
		return &fol.ForAll{Vars: append([]fol.Symbol(nil), sub.Vars...), Body: body}, nil

	case *fol.Not:
		return m.Rewrite(sub.Sub)

	case *fol.And:
		left, right, err := m.rewriteNegatedPair(sub.Left, sub.Right)
		if err != nil {
			return nil, err
		}
		return &fol.Or{Left: left, Right: right}, nil

	case *fol.Or:
		left, right, err := m.rewriteNegatedPair(sub.Left, sub.Right)
		if err != nil {
			return nil, err
		}
		return &fol.And{Left: left, Right: right}, nil

	case *fol.Implies:
		// not (a -> b) == a and (not b)
		left, err := m.Rewrite(sub.Left)
		if err != nil {
			return nil, err
		}
		right, err := m.Rewrite(&fol.Not{Sub: sub.Right})
		if err != nil {
			return nil, err
		}
		return &fol.And{Left: left, Right: right}, nil

	default:
		return nil, UnsupportedClauseError{Clause: not.Sub}
	}
}

func (m *MoveNegationInwards) rewriteNegatedPair(left, right fol.Clause) (fol.Clause, fol.Clause, error) {
	newLeft, err := m.Rewrite(&fol.Not{Sub: left})
	if err != nil {
		return nil, nil, err
	}
	newRight, err := m.Rewrite(&fol.Not{Sub: right})
	if err != nil {
		return nil, nil, err
	}
	return newLeft, newRight, nil
}
