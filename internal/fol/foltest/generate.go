// Package foltest generates random clauses for property-based tests.
package foltest

import (
	"math/rand"

	"github.com/folnorm/folnorm/internal/fol"
)

var (
	predicateNames = []string{"p", "q", "r", "mortal", "knows"}
	symbols        = []fol.Symbol{"X", "Y", "Z", "socrates", "plato"}
	variables      = []fol.Symbol{"X", "Y", "Z"}
)

// Options controls the clause shapes RandomClause may produce.
type Options struct {
	// Quantifiers permits for_all / there_exists nodes.
	Quantifiers bool

	// Implications permits -> nodes.
	Implications bool
}

// RandomClause builds a random clause of at most the given depth from
// the given source. The same seed always yields the same clause.
func RandomClause(r *rand.Rand, depth int, opts Options) fol.Clause {
	if depth <= 0 {
		return randomPredicate(r)
	}

	kinds := []string{"pred", "not", "and", "or"}
	if opts.Implications {
		kinds = append(kinds, "implies")
	}
	if opts.Quantifiers {
		kinds = append(kinds, "for_all", "there_exists")
	}

	switch kinds[r.Intn(len(kinds))] {
	case "pred":
		return randomPredicate(r)
	case "not":
		return &fol.Not{Sub: RandomClause(r, depth-1, opts)}
	case "and":
		return &fol.And{
			Left:  RandomClause(r, depth-1, opts),
			Right: RandomClause(r, depth-1, opts),
		}
	case "or":
		return &fol.Or{
			Left:  RandomClause(r, depth-1, opts),
			Right: RandomClause(r, depth-1, opts),
		}
	case "implies":
		return &fol.Implies{
			Left:  RandomClause(r, depth-1, opts),
			Right: RandomClause(r, depth-1, opts),
		}
	case "for_all":
		return &fol.ForAll{
			Vars: randomVars(r),
			Body: RandomClause(r, depth-1, opts),
		}
	default:
		return &fol.ThereExists{
			Vars: randomVars(r),
			Body: RandomClause(r, depth-1, opts),
		}
	}
}

func randomPredicate(r *rand.Rand) *fol.Predicate {
	nargs := r.Intn(3)
	args := make([]fol.Term, 0, nargs)
	for range nargs {
		args = append(args, symbols[r.Intn(len(symbols))])
	}
	return &fol.Predicate{Name: predicateNames[r.Intn(len(predicateNames))], Args: args}
}

func randomVars(r *rand.Rand) []fol.Symbol {
	n := 1 + r.Intn(2)
	start := r.Intn(len(variables))
	vars := make([]fol.Symbol, 0, n)
	for i := range n {
		vars = append(vars, variables[(start+i)%len(variables)])
	}
	return vars
}
