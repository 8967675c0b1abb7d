// Package fol defines the first-order logic clause tree and the
// structural helpers the rewrite pipeline is built on.
package fol

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Clause is a node in a first-order logic formula. The set of
// implementations is closed: Predicate, Not, And, Or, Implies, ForAll
// and ThereExists.
type Clause interface {
	fmt.Stringer
	isClause()
}

// Predicate is an atomic formula: a name applied to zero or more terms.
type Predicate struct {
	Name string
	Args []Term
}

// Not negates its subordinate clause.
type Not struct {
	Sub Clause
}

// And is the conjunction of two clauses.
type And struct {
	Left  Clause
	Right Clause
}

// Or is the disjunction of two clauses.
type Or struct {
	Left  Clause
	Right Clause
}

// Implies is the material implication Left -> Right.
type Implies struct {
	Left  Clause
	Right Clause
}

// ForAll universally quantifies its variables over the body.
type ForAll struct {
	Vars []Symbol
	Body Clause
}

// ThereExists existentially quantifies its variables over the body.
type ThereExists struct {
	Vars []Symbol
	Body Clause
}

func (*Predicate) isClause()   {}
func (*Not) isClause()         {}
func (*And) isClause()         {}
func (*Or) isClause()          {}
func (*Implies) isClause()     {}
func (*ForAll) isClause()      {}
func (*ThereExists) isClause() {}

func (p *Predicate) String() string {
	args := lo.Map(p.Args, func(t Term, _ int) string { return t.String() })
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(args, " "))
}

func (n *Not) String() string {
	return fmt.Sprintf("(not %s)", n.Sub)
}

func (a *And) String() string {
	return fmt.Sprintf("(%s and %s)", a.Left, a.Right)
}

func (o *Or) String() string {
	return fmt.Sprintf("(%s or %s)", o.Left, o.Right)
}

func (i *Implies) String() string {
	return fmt.Sprintf("(%s -> %s)", i.Left, i.Right)
}

func (f *ForAll) String() string {
	return fmt.Sprintf("(for_all (%s) %s)", joinVars(f.Vars), f.Body)
}

func (t *ThereExists) String() string {
	return fmt.Sprintf("(there_exists (%s) %s)", joinVars(t.Vars), t.Body)
}

func joinVars(vars []Symbol) string {
	names := lo.Map(vars, func(v Symbol, _ int) string { return string(v) })
	return strings.Join(names, ", ")
}

// Contains reports whether t appears among the predicate's arguments.
func (p *Predicate) Contains(t Term) bool {
	return lo.SomeBy(p.Args, func(arg Term) bool { return TermEqual(arg, t) })
}

// Replace returns a copy of the predicate with every occurrence of the
// given variable substituted by replacement. The receiver is unchanged.
func (p *Predicate) Replace(variable Symbol, replacement Term) *Predicate {
	return &Predicate{
		Name: p.Name,
		Args: lo.Map(p.Args, func(arg Term, _ int) Term {
			if TermEqual(arg, variable) {
				return replacement
			}
			return arg
		}),
	}
}

// Equal reports structural equality of two clauses.
func Equal(a, b Clause) bool {
	switch at := a.(type) {
	case *Predicate:
		bt, ok := b.(*Predicate)
		if !ok || at.Name != bt.Name || len(at.Args) != len(bt.Args) {
			return false
		}
		for i := range at.Args {
			if !TermEqual(at.Args[i], bt.Args[i]) {
				return false
			}
		}
		return true
	case *Not:
		bt, ok := b.(*Not)
		return ok && Equal(at.Sub, bt.Sub)
	case *And:
		bt, ok := b.(*And)
		return ok && Equal(at.Left, bt.Left) && Equal(at.Right, bt.Right)
	case *Or:
		bt, ok := b.(*Or)
		return ok && Equal(at.Left, bt.Left) && Equal(at.Right, bt.Right)
	case *Implies:
		bt, ok := b.(*Implies)
		return ok && Equal(at.Left, bt.Left) && Equal(at.Right, bt.Right)
	case *ForAll:
		bt, ok := b.(*ForAll)
		return ok && varsEqual(at.Vars, bt.Vars) && Equal(at.Body, bt.Body)
	case *ThereExists:
		bt, ok := b.(*ThereExists)
		return ok && varsEqual(at.Vars, bt.Vars) && Equal(at.Body, bt.Body)
	default:
		return false
	}
}

func varsEqual(a, b []Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
