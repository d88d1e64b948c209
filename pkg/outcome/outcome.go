// Package outcome implements a two-variant discriminated result: a value of
// Outcome[T] is either Ok, holding a non-absent value of type T, or Err,
// holding a diagnostic message and an optional underlying cause. Expected
// failure travels as data through the Err variant; contract violations
// (wrapping an absent value, reading the wrong variant) panic with errors
// wrapping ErrInvalidArgument or ErrInvalidState.
//
// Outcomes are immutable. Transformations (Map, FlatMap, OrElse) always
// produce new outcomes and never mutate the receiver.
package outcome

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	message   string
	cause     error
	ok        bool
}

// Ok wraps a value in the Ok variant. The value must not be absent (a nil
// pointer, interface, map, slice, channel or function); wrapping an absent
// value is a contract violation and panics with ErrInvalidArgument.
func Ok[T any](v T) Outcome[T] {
	if IsAbsent(v) {
		panic(&ArgError{Op: "outcome.Ok", Field: "value", Reason: "ok must not wrap an absent value"})
	}
	return Outcome[T]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err builds the Err variant from a diagnostic message.
func Err[T any](message string) Outcome[T] {
	return Outcome[T]{
		message:   message,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ErrWith builds the Err variant from a message and an underlying cause.
// The cause stays reachable through Cause, Unpack and errors.Is/As.
func ErrWith[T any](message string, cause error) Outcome[T] {
	return Outcome[T]{
		message:   message,
		cause:     cause,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Canceled builds an Err variant whose cause is a cancellation error, so that
// IsCanceled reports true. A nil cause defaults to context.Canceled; a cause
// that is not itself a cancellation error keeps its message and is joined
// with context.Canceled in the cause chain.
func Canceled[T any](cause error) Outcome[T] {
	if cause == nil {
		cause = context.Canceled
	}
	message := cause.Error()
	if !IsCancellation(cause) {
		cause = errors.Join(cause, context.Canceled)
	}
	return ErrWith[T](message, cause)
}

// Capture adapts Go's (value, error) convention: a non-nil error yields Err
// (or a canceled Err for cancellation errors), otherwise the value is wrapped
// as Ok. A nil error together with an absent value panics like Ok.
func Capture[T any](v T, err error) Outcome[T] {
	if err != nil {
		if IsCancellation(err) {
			return Canceled[T](err)
		}
		return ErrWith[T](err.Error(), err)
	}
	return Ok(v)
}

// ErrFrom carries an Err variant across a type change, preserving message,
// cause and construction stamps. Calling it on an Ok outcome is a contract
// violation.
func ErrFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	if from.ok {
		panic(&StateError{Op: "outcome.ErrFrom", Reason: "err propagated from Ok"})
	}
	return Outcome[Out]{
		message:   from.message,
		cause:     from.cause,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// IsOk reports whether the outcome is the Ok variant.
func (o Outcome[T]) IsOk() bool {
	return o.ok
}

// IsErr reports whether the outcome is the Err variant.
func (o Outcome[T]) IsErr() bool {
	return !o.ok
}

// IsCanceled reports whether the outcome is an Err whose cause is a
// cancellation error (context.Canceled or context.DeadlineExceeded).
func (o Outcome[T]) IsCanceled() bool {
	return !o.ok && IsCancellation(o.cause)
}

// Value returns the wrapped value. It panics with ErrInvalidState when the
// outcome is Err.
func (o Outcome[T]) Value() T {
	if !o.ok {
		panic(&StateError{Op: "outcome.Value", Reason: "value accessed on Err"})
	}
	return o.value
}

// ErrorMessage returns the diagnostic message. It panics with ErrInvalidState
// when the outcome is Ok.
func (o Outcome[T]) ErrorMessage() string {
	if o.ok {
		panic(&StateError{Op: "outcome.ErrorMessage", Reason: "error message accessed on Ok"})
	}
	return o.message
}

// Cause returns the underlying cause of an Err, which may be nil when the
// Err was built from a bare message. It is always nil on Ok.
func (o Outcome[T]) Cause() error {
	return o.cause
}

// ValueOr returns the wrapped value on Ok and fallback on Err.
func (o Outcome[T]) ValueOr(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// Unpack is the non-panicking (value, error) view: on Ok it returns the value
// and nil, on Err the zero value and an error carrying message and cause.
func (o Outcome[T]) Unpack() (T, error) {
	if o.ok {
		return o.value, nil
	}
	var zero T
	return zero, o.faultErr()
}

// ID returns the identifier stamped at construction. Propagating an Err
// across transforms preserves the stamp of the outcome that produced it.
func (o Outcome[T]) ID() uuid.UUID {
	return o.id
}

// CreatedAt returns the UTC construction time.
func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Ok(%v)", o.value)
	}
	return fmt.Sprintf("Err(%s)", o.message)
}

// faultErr folds message and cause into a single error value.
func (o Outcome[T]) faultErr() error {
	switch {
	case o.cause == nil:
		return errors.New(o.message)
	case o.message == o.cause.Error():
		return o.cause
	default:
		return fmt.Errorf("%s: %w", o.message, o.cause)
	}
}
