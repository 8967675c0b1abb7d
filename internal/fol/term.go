package fol

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/samber/lo"
)

// Term is an argument of a predicate: either a plain symbol or a
// generated skolem term.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Symbol is a constant or a variable. A symbol whose letters are all
// upper-case is a variable; anything else is a constant.
type Symbol string

func (Symbol) isTerm() {}

func (s Symbol) String() string { return string(s) }

// SkolemTerm replaces an existentially quantified variable during
// skolemization. It is a function of the universally quantified
// variables that were in scope where the existential was bound.
type SkolemTerm struct {
	Name      string
	Variables []Symbol
}

func (*SkolemTerm) isTerm() {}

func (t *SkolemTerm) String() string {
	names := lo.Map(t.Variables, func(v Symbol, _ int) string { return string(v) })
	return fmt.Sprintf("%s(%s)", t.Name, strings.Join(names, ", "))
}

// IsVariable reports whether t is a variable symbol. Variables are
// written in upper-case (X, PERSON); constants in lower-case (socrates).
// Skolem terms are never variables.
func IsVariable(t Term) bool {
	s, ok := t.(Symbol)
	if !ok {
		return false
	}
	str := string(s)
	// All cased characters upper-case, and at least one of them.
	return str != "" && str == strings.ToUpper(str) && str != strings.ToLower(str)
}

// TermEqual reports structural equality of two terms.
func TermEqual(a, b Term) bool {
	switch at := a.(type) {
	case Symbol:
		bt, ok := b.(Symbol)
		return ok && at == bt
	case *SkolemTerm:
		bt, ok := b.(*SkolemTerm)
		if !ok || at.Name != bt.Name || len(at.Variables) != len(bt.Variables) {
			return false
		}
		for i := range at.Variables {
			if at.Variables[i] != bt.Variables[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// SkolemNamer hands out fresh skolem function names (F_0, F_1, ...).
// Each normalization run should own one so that generated names are
// deterministic for that run.
type SkolemNamer struct {
	counter atomic.Int64
}

// NewSkolemNamer returns a namer whose first generated name is F_0.
func NewSkolemNamer() *SkolemNamer {
	return &SkolemNamer{}
}

// Next creates a skolem term over the given universally quantified
// variables. The variable slice is copied; callers may reuse theirs.
func (n *SkolemNamer) Next(vars []Symbol) *SkolemTerm {
	id := n.counter.Add(1) - 1
	return &SkolemTerm{
		Name:      fmt.Sprintf("F_%d", id),
		Variables: append([]Symbol(nil), vars...),
	}
}
