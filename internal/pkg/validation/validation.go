// Package validation provides the error collector used by config-style
// validators across the project.
package validation

import (
	"fmt"
	"strings"
)

// Error collects multiple validation failures. It implements the error
// interface and renders all failures in one message.
type Error struct {
	Scope  string
	Errors []string
}

// NewError creates a collector whose messages are prefixed with scope
// (e.g. "config", "precommit").
func NewError(scope string) *Error {
	return &Error{Scope: scope}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s validation failed", e.Scope)
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s validation failed: %s", e.Scope, e.Errors[0])
	}
	return fmt.Sprintf("%s validation failed with %d errors:\n  - %s",
		e.Scope, len(e.Errors), strings.Join(e.Errors, "\n  - "))
}

// Addf appends a formatted failure message.
func (e *Error) Addf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

// Add appends a failure message.
func (e *Error) Add(msg string) {
	e.Errors = append(e.Errors, msg)
}

// HasErrors returns true if any failure was recorded.
func (e *Error) HasErrors() bool {
	return len(e.Errors) > 0
}

// ToError returns the collector as an error if it holds failures,
// otherwise nil.
func (e *Error) ToError() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
