package ir

import (
	"errors"
	"fmt"
)

var (
	ErrWrongType     = errors.New("wrong type")
	ErrConcurrentMod = errors.New("concurrent modification")
)

// TypeError reports an accessor or mutator applied to a node whose Type
// does not match the required one. It unwraps to ErrWrongType.
type TypeError struct {
	Expected Type
	Actual   Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("wrong type: expected %s, got %s", e.Expected, e.Actual)
}

func (e *TypeError) Unwrap() error {
	return ErrWrongType
}

func wrongType(expected, actual Type) error {
	return &TypeError{Expected: expected, Actual: actual}
}
