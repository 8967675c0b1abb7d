package rewrite

import "github.com/folnorm/folnorm/internal/fol"

// Skolemize removes existential quantifiers. Each existentially bound
// variable is replaced by a skolem term over the universally quantified
// variables in scope at its binding point; universal quantifiers are
// kept in place.
type Skolemize struct {
	namer *fol.SkolemNamer
}

// NewSkolemize returns a skolemization rewriter drawing names from the
// given namer.
func NewSkolemize(namer *fol.SkolemNamer) *Skolemize {
	return &Skolemize{namer: namer}
}

// Name returns the strategy name for logging and configuration.
func (*Skolemize) Name() string { return StepSkolemize }

// Rewrite applies skolemization over the whole clause.
func (s *Skolemize) Rewrite(clause fol.Clause) (fol.Clause, error) {
	return s.rewrite(clause, nil, map[fol.Symbol]*fol.SkolemTerm{})
}

func (s *Skolemize) rewrite(
	clause fol.Clause,
	universals []fol.Symbol,
	bindings map[fol.Symbol]*fol.SkolemTerm,
) (fol.Clause, error) {
	switch c := clause.(type) {
	case *fol.ThereExists:
		// Bind each existential variable to a fresh skolem term and
		// drop the quantifier. Inner bindings shadow outer ones.
		scoped := make(map[fol.Symbol]*fol.SkolemTerm, len(bindings)+len(c.Vars))
		for k, v := range bindings {
			scoped[k] = v
		}
		for _, v := range c.Vars {
			scoped[v] = s.namer.Next(universals)
		}
		return s.rewrite(c.Body, universals, scoped)

	case *fol.ForAll:
		// Copy before extending so sibling branches never share a
		// backing array.
		scope := append(append([]fol.Symbol(nil), universals...), c.Vars...)
		body, err := s.rewrite(c.Body, scope, bindings)
		if err != nil {
			return nil, err
		}
		return &fol.ForAll{Vars: append([]fol.Symbol(nil), c.Vars...), Body: body}, nil

	case *fol.Predicate:
		args := make([]fol.Term, 0, len(c.Args))
		for _, arg := range c.Args {
			if sym, ok := arg.(fol.Symbol); ok {
				if term, bound := bindings[sym]; bound {
					args = append(args, term)
					continue
				}
			}
			args = append(args, arg)
		}
		return &fol.Predicate{Name: c.Name, Args: args}, nil

	default:
		return walk(clause, func(child fol.Clause) (fol.Clause, error) {
			return s.rewrite(child, universals, bindings)
		})
	}
}
