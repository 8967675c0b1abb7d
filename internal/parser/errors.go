package parser

import "fmt"

// SyntaxError reports a parse failure with the byte offset it occurred at.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("parser: %s at offset %d", e.Msg, e.Offset)
}

func errorf(offset int, format string, args ...any) error {
	return SyntaxError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
