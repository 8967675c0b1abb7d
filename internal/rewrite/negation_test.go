package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folnorm/folnorm/internal/fol"
)

func TestMoveNegationInwards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		clause   fol.Clause
		expected string
	}{
		{
			name:     "negated predicate stays",
			clause:   &fol.Not{Sub: pred("p", fol.Symbol("X"))},
			expected: "(not p(X))",
		},
		{
			name:     "double negation",
			clause:   &fol.Not{Sub: &fol.Not{Sub: pred("p")}},
			expected: "p()",
		},
		{
			name:     "de morgan over conjunction",
			clause:   &fol.Not{Sub: &fol.And{Left: pred("p"), Right: pred("q")}},
			expected: "((not p()) or (not q()))",
		},
		{
			name:     "de morgan over disjunction",
			clause:   &fol.Not{Sub: &fol.Or{Left: pred("p"), Right: pred("q")}},
			expected: "((not p()) and (not q()))",
		},
		{
			name: "negated universal becomes existential",
			clause: &fol.Not{Sub: &fol.ForAll{
				Vars: []fol.Symbol{"X"},
				Body: pred("p", fol.Symbol("X")),
			}},
			expected: "(there_exists (X) (not p(X)))",
		},
		{
			name: "negated existential becomes universal",
			clause: &fol.Not{Sub: &fol.ThereExists{
				Vars: []fol.Symbol{"X"},
				Body: pred("p", fol.Symbol("X")),
			}},
			expected: "(for_all (X) (not p(X)))",
		},
		{
			name:     "negated implication",
			clause:   &fol.Not{Sub: &fol.Implies{Left: pred("p"), Right: pred("q")}},
			expected: "(p() and (not q()))",
		},
		{
			name: "negation pushed through nested structure",
			clause: &fol.Not{Sub: &fol.And{
				Left:  &fol.Not{Sub: pred("p")},
				Right: &fol.Or{Left: pred("q"), Right: pred("r")},
			}},
			expected: "(p() or ((not q()) and (not r())))",
		},
		{
			name:     "positive clause is a no-op",
			clause:   &fol.And{Left: pred("p"), Right: pred("q")},
			expected: "(p() and q())",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := mustRewrite(t, NewMoveNegationInwards(), tt.clause)
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestMoveNegationInwardsIdempotent(t *testing.T) {
	t.Parallel()

	clause := &fol.Not{Sub: &fol.And{
		Left:  pred("p"),
		Right: &fol.Not{Sub: &fol.Or{Left: pred("q"), Right: pred("r")}},
	}}

	once := mustRewrite(t, NewMoveNegationInwards(), clause)
	twice := mustRewrite(t, NewMoveNegationInwards(), once)

	assert.True(t, fol.Equal(once, twice), "expected %s, got %s", once, twice)
}
