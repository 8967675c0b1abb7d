package fol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pred(name string, args ...Term) *Predicate {
	return &Predicate{Name: name, Args: args}
}

func TestClauseString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		clause   Clause
		expected string
	}{
		{
			name:     "predicate with args",
			clause:   pred("mortal", Symbol("X")),
			expected: "mortal(X)",
		},
		{
			name:     "predicate without args",
			clause:   pred("raining"),
			expected: "raining()",
		},
		{
			name:     "predicate with multiple args",
			clause:   pred("parent", Symbol("X"), Symbol("Y")),
			expected: "parent(X Y)",
		},
		{
			name:     "negation",
			clause:   &Not{Sub: pred("mortal", Symbol("X"))},
			expected: "(not mortal(X))",
		},
		{
			name:     "conjunction",
			clause:   &And{Left: pred("p"), Right: pred("q")},
			expected: "(p() and q())",
		},
		{
			name:     "disjunction",
			clause:   &Or{Left: pred("p"), Right: pred("q")},
			expected: "(p() or q())",
		},
		{
			name:     "implication",
			clause:   &Implies{Left: pred("man", Symbol("X")), Right: pred("mortal", Symbol("X"))},
			expected: "(man(X) -> mortal(X))",
		},
		{
			name: "universal quantifier",
			clause: &ForAll{
				Vars: []Symbol{"X", "Y"},
				Body: pred("knows", Symbol("X"), Symbol("Y")),
			},
			expected: "(for_all (X, Y) knows(X Y))",
		},
		{
			name: "existential quantifier",
			clause: &ThereExists{
				Vars: []Symbol{"X"},
				Body: pred("unicorn", Symbol("X")),
			},
			expected: "(there_exists (X) unicorn(X))",
		},
		{
			name: "skolem term argument",
			clause: pred("loves",
				Symbol("X"),
				&SkolemTerm{Name: "F_0", Variables: []Symbol{"X", "Y"}}),
			expected: "loves(X F_0(X, Y))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.clause.String())
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := &ForAll{
		Vars: []Symbol{"X"},
		Body: &Implies{
			Left:  pred("man", Symbol("X")),
			Right: pred("mortal", Symbol("X")),
		},
	}
	b := &ForAll{
		Vars: []Symbol{"X"},
		Body: &Implies{
			Left:  pred("man", Symbol("X")),
			Right: pred("mortal", Symbol("X")),
		},
	}

	assert.True(t, Equal(a, b))
	assert.True(t, Equal(b, a))
}

func TestEqualDistinguishes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    Clause
		b    Clause
	}{
		{
			name: "different predicate names",
			a:    pred("p", Symbol("X")),
			b:    pred("q", Symbol("X")),
		},
		{
			name: "different arity",
			a:    pred("p", Symbol("X")),
			b:    pred("p", Symbol("X"), Symbol("Y")),
		},
		{
			name: "different node kinds",
			a:    &And{Left: pred("p"), Right: pred("q")},
			b:    &Or{Left: pred("p"), Right: pred("q")},
		},
		{
			name: "different quantifier variables",
			a:    &ForAll{Vars: []Symbol{"X"}, Body: pred("p", Symbol("X"))},
			b:    &ForAll{Vars: []Symbol{"Y"}, Body: pred("p", Symbol("X"))},
		},
		{
			name: "symbol vs skolem term",
			a:    pred("p", Symbol("F_0")),
			b:    pred("p", &SkolemTerm{Name: "F_0"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, Equal(tt.a, tt.b))
		})
	}
}

func TestPredicateReplace(t *testing.T) {
	t.Parallel()

	p := pred("parent", Symbol("X"), Symbol("Y"), Symbol("X"))
	replaced := p.Replace(Symbol("X"), Symbol("alice"))

	assert.Equal(t, "parent(alice Y alice)", replaced.String())
	// Receiver stays intact
	assert.Equal(t, "parent(X Y X)", p.String())
}

func TestPredicateReplaceWithSkolemTerm(t *testing.T) {
	t.Parallel()

	p := pred("loves", Symbol("X"), Symbol("Y"))
	term := &SkolemTerm{Name: "F_0", Variables: []Symbol{"X"}}
	replaced := p.Replace(Symbol("Y"), term)

	require.Len(t, replaced.Args, 2)
	assert.True(t, TermEqual(replaced.Args[1], term))
}

func TestPredicateContains(t *testing.T) {
	t.Parallel()

	p := pred("parent", Symbol("X"), Symbol("alice"))

	assert.True(t, p.Contains(Symbol("X")))
	assert.True(t, p.Contains(Symbol("alice")))
	assert.False(t, p.Contains(Symbol("Y")))
}
