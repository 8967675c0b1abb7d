package rewrite

import "github.com/folnorm/folnorm/internal/fol"

// DistributeOr distributes disjunction over conjunction:
// ((a and b) or c) becomes ((a or c) and (b or c)). Applied after
// implication elimination and negation normal form, this yields a
// conjunction of literal disjunctions.
type DistributeOr struct{}

// NewDistributeOr returns the distribution rewriter.
func NewDistributeOr() *DistributeOr {
	return &DistributeOr{}
}

// Name returns the strategy name for logging and configuration.
func (*DistributeOr) Name() string { return StepDistributeOr }

// Rewrite applies the transformation over the whole clause.
func (d *DistributeOr) Rewrite(clause fol.Clause) (fol.Clause, error) {
	if or, ok := clause.(*fol.Or); ok {
		return d.rewriteOr(or)
	}
	return walk(clause, d.Rewrite)
}

func (d *DistributeOr) rewriteOr(or *fol.Or) (fol.Clause, error) {
	left, err := d.Rewrite(or.Left)
	if err != nil {
		return nil, err
	}
	right, err := d.Rewrite(or.Right)
	if err != nil {
		return nil, err
	}

	// When both sides are conjunctions the left one is distributed
	// first; the recursive call picks up the other.
	if and, ok := left.(*fol.And); ok {
		return d.distribute(and, right)
	}
	if and, ok := right.(*fol.And); ok {
		return d.distribute(and, left)
	}
	return &fol.Or{Left: left, Right: right}, nil
}

func (d *DistributeOr) distribute(and *fol.And, other fol.Clause) (fol.Clause, error) {
	left, err := d.Rewrite(&fol.Or{Left: and.Left, Right: other})
	if err != nil {
		return nil, err
	}
	right, err := d.Rewrite(&fol.Or{Left: and.Right, Right: other})
	if err != nil {
		return nil, err
	}
	return &fol.And{Left: left, Right: right}, nil
}
