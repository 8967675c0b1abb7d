package rewrite

import "fmt"

// UnsupportedClauseError is returned when a rewriter meets a clause
// kind it cannot process.
type UnsupportedClauseError struct {
	Clause any
}

func (e UnsupportedClauseError) Error() string {
	return fmt.Sprintf("rewrite: unsupported clause type %T", e.Clause)
}
