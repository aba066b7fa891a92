package parse

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel for all parse failures.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports an unrecognizable value or unterminated container.
// It is fatal to the whole parse. It unwraps to ErrSyntax.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func syntaxErrf(off int, format string, args ...any) error {
	return &SyntaxError{Offset: off, Msg: fmt.Sprintf(format, args...)}
}
