package outcome

import "time"

// Provider exposes the successful value and construction stamp of a result.
type Provider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Fallible is a Provider that can also report failure as data.
type Fallible[T any] interface {
	Provider[T]
	// ErrorMessage returns the diagnostic message of an Err
	ErrorMessage() string
	// Cause returns the underlying cause of an Err, if any
	Cause() error
	// IsOk reports whether the value variant is present
	IsOk() bool
	// IsErr reports whether the failure variant is present
	IsErr() bool
}

// Cancelable extends Fallible with cancellation detection.
type Cancelable[T any] interface {
	Fallible[T]
	// IsCanceled reports whether the failure stems from cancellation
	IsCanceled() bool
}

var _ Cancelable[struct{}] = Outcome[struct{}]{}
