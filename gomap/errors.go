package gomap

import "fmt"

// MarshalError represents an error converting a Go value to a node.
type MarshalError struct {
	FieldPath string // path into the host value (e.g. "spec.replicas")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error constructing a Go value from a node.
type UnmarshalError struct {
	Discriminator string
	Message       string
	Err           error
}

func (e *UnmarshalError) Error() string {
	if e.Discriminator != "" {
		return fmt.Sprintf("unmarshal error for %q: %s", e.Discriminator, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}
