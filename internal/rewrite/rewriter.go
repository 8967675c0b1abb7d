// Package rewrite implements the clause transformations that take a
// first-order logic formula toward conjunctive normal form. Each
// transformation is a Rewriter; rewriters compose with Chain.
package rewrite

import (
	"strings"

	"github.com/samber/lo"

	"github.com/folnorm/folnorm/internal/fol"
)

// Rewriter applies one structural transformation to a clause. Rewriters
// never mutate their input; they return fresh nodes.
type Rewriter interface {
	// Rewrite transforms the clause. The input clause is left intact.
	Rewrite(clause fol.Clause) (fol.Clause, error)

	// Name returns the rewriter name for logging and configuration.
	Name() string
}

// Chain applies its rewriters in order, feeding each output to the next.
type Chain []Rewriter

// Rewrite runs the chain. The first failing rewriter aborts the chain.
func (c Chain) Rewrite(clause fol.Clause) (fol.Clause, error) {
	out := clause
	for _, r := range c {
		var err error
		if out, err = r.Rewrite(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Name returns the chained rewriter names joined by "+".
func (c Chain) Name() string {
	names := lo.Map(c, func(r Rewriter, _ int) string { return r.Name() })
	return strings.Join(names, "+")
}

// walk rebuilds the clause with fn applied to every direct child.
// Rewriters use it for the node kinds they do not handle themselves.
func walk(clause fol.Clause, fn func(fol.Clause) (fol.Clause, error)) (fol.Clause, error) {
	switch c := clause.(type) {
	case *fol.Predicate:
		return &fol.Predicate{Name: c.Name, Args: append([]fol.Term(nil), c.Args...)}, nil
	case *fol.Not:
		sub, err := fn(c.Sub)
		if err != nil {
			return nil, err
		}
		return &fol.Not{Sub: sub}, nil
	case *fol.And:
		left, right, err := walkPair(c.Left, c.Right, fn)
		if err != nil {
			return nil, err
		}
		return &fol.And{Left: left, Right: right}, nil
	case *fol.Or:
		left, right, err := walkPair(c.Left, c.Right, fn)
		if err != nil {
			return nil, err
		}
		return &fol.Or{Left: left, Right: right}, nil
	case *fol.Implies:
		left, right, err := walkPair(c.Left, c.Right, fn)
		if err != nil {
			return nil, err
		}
		return &fol.Implies{Left: left, Right: right}, nil
	case *fol.ForAll:
		body, err := fn(c.Body)
		if err != nil {
			return nil, err
		}
		return &fol.ForAll{Vars: append([]fol.Symbol(nil), c.Vars...), Body: body}, nil
	case *fol.ThereExists:
		body, err := fn(c.Body)
		if err != nil {
			return nil, err
		}
		return &fol.ThereExists{Vars: append([]fol.Symbol(nil), c.Vars...), Body: body}, nil
	default:
		return nil, UnsupportedClauseError{Clause: clause}
	}
}

func walkPair(
	left, right fol.Clause,
	fn func(fol.Clause) (fol.Clause, error),
) (fol.Clause, fol.Clause, error) {
	newLeft, err := fn(left)
	if err != nil {
		return nil, nil, err
	}
	newRight, err := fn(right)
	if err != nil {
		return nil, nil, err
	}
	return newLeft, newRight, nil
}
