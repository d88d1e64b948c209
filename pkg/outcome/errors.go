package outcome

import (
	"errors"
	"fmt"
)

// Sentinel kinds for the two programmer-contract violations. Both are
// signaled by panicking, never through the Err variant: an Err is expected
// data, a contract violation is not.
var (
	// ErrInvalidArgument marks a constructor called with an argument that
	// violates its contract (absent value, negative dimension, malformed
	// field).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState marks an accessor or dispatch used against the wrong
	// variant (value on Err, message on Ok, missing match case).
	ErrInvalidState = errors.New("invalid state")
)

// ArgError is an ErrInvalidArgument with operation context.
type ArgError struct {
	Op     string // operation that rejected the argument, e.g. "payment.NewCard"
	Field  string // offending field or parameter, optional
	Reason string // what the contract required
}

func (e *ArgError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %v", e.Op, ErrInvalidArgument)
	if e.Field != "" {
		msg += fmt.Sprintf(" (field=%s)", e.Field)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *ArgError) Unwrap() error {
	return ErrInvalidArgument
}

// StateError is an ErrInvalidState with operation context.
type StateError struct {
	Op     string
	Reason string
}

func (e *StateError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %v", e.Op, ErrInvalidState)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *StateError) Unwrap() error {
	return ErrInvalidState
}
