package fol

// ExtractPredicates collects every predicate in the clause, left to
// right. The same predicate instance may appear more than once if it
// occurs more than once in the formula.
func ExtractPredicates(clause Clause) []*Predicate {
	switch c := clause.(type) {
	case *Predicate:
		return []*Predicate{c}
	case *Not:
		return ExtractPredicates(c.Sub)
	case *And:
		return append(ExtractPredicates(c.Left), ExtractPredicates(c.Right)...)
	case *Or:
		return append(ExtractPredicates(c.Left), ExtractPredicates(c.Right)...)
	case *Implies:
		return append(ExtractPredicates(c.Left), ExtractPredicates(c.Right)...)
	case *ForAll:
		return ExtractPredicates(c.Body)
	case *ThereExists:
		return ExtractPredicates(c.Body)
	default:
		return nil
	}
}

// IsLiteralDisjunction reports whether the clause is a pure disjunction
// of literals: predicates and negated predicates joined only by or.
// A lone literal counts.
func IsLiteralDisjunction(clause Clause) bool {
	switch c := clause.(type) {
	case *Predicate:
		return true
	case *Not:
		_, ok := c.Sub.(*Predicate)
		return ok
	case *Or:
		return IsLiteralDisjunction(c.Left) && IsLiteralDisjunction(c.Right)
	default:
		return false
	}
}

// Conjuncts splits a conjunction tree into its top-level conjuncts,
// stripping any leading universal quantifier prefix first. A clause
// that is not a conjunction yields itself.
func Conjuncts(clause Clause) []Clause {
	for {
		f, ok := clause.(*ForAll)
		if !ok {
			break
		}
		clause = f.Body
	}
	if a, ok := clause.(*And); ok {
		return append(Conjuncts(a.Left), Conjuncts(a.Right)...)
	}
	return []Clause{clause}
}
