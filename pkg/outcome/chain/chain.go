package chain

import (
	"context"

	"github.com/vparva/outcome/pkg/outcome"
	"github.com/vparva/outcome/pkg/outcome/step"
)

// Chain wraps an outcome with its context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	out outcome.Outcome[T]
}

// Start opens a chain from an existing outcome.
func Start[T any](ctx context.Context, out outcome.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: ctx, out: out}
}

// FromValue opens a chain from a raw value, wrapping it in Ok.
func FromValue[T any](ctx context.Context, value T) Chain[T] {
	return Start(ctx, outcome.Ok(value))
}

// Outcome returns the current outcome of the chain.
func (c Chain[T]) Outcome() outcome.Outcome[T] {
	return c.out
}

// Context returns the context the chain was started with.
func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// Then chains a function that already returns an outcome. The step is
// skipped after a failure.
func (c Chain[T]) Then(onOk func(context.Context, T) outcome.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, out: step.FlatMap(c.ctx, c.out, onOk)}
}

// ThenTry chains a conventional (value, error) function, such as a
// repository call.
func (c Chain[T]) ThenTry(try func(context.Context, T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, out: step.Try(c.ctx, c.out, try)}
}

// Map transforms the value of an Ok outcome.
func (c Chain[T]) Map(onOk func(context.Context, T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, out: step.Map(c.ctx, c.out, onOk)}
}

// Validate fails the chain with message when pred reports false.
func (c Chain[T]) Validate(pred func(context.Context, T) bool, message string) Chain[T] {
	return Chain[T]{ctx: c.ctx, out: step.AndValidate(c.ctx, c.out, pred, message)}
}

// Guard fails the chain when inspect returns a non-nil error.
func (c Chain[T]) Guard(inspect func(context.Context, T) error) Chain[T] {
	return Chain[T]{ctx: c.ctx, out: step.Guard(c.ctx, c.out, inspect)}
}

// Ensure triggers side effects for the Ok and Err tracks without changing
// the outcome. Either handler may be nil.
func (c Chain[T]) Ensure(onOk func(context.Context, T), onErr func(context.Context, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, out: step.DoubleTee(c.ctx, c.out, onOk, onErr)}
}

// OrElse replaces a failed chain with the fallback's outcome.
func (c Chain[T]) OrElse(fallback func(context.Context) outcome.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, out: step.OrElse(c.ctx, c.out, fallback)}
}

// Or picks the first Ok chain among the receiver and the alternative. When
// both failed, a canceled outcome is preferred so cancellation stays
// visible, otherwise the receiver's fault is kept.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return c.or(alternative)
}

func (c Chain[T]) or(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	var canceled *Chain[T]
	for i, ch := range candidates {
		if ch.out.IsOk() {
			return ch
		}
		if canceled == nil && ch.out.IsCanceled() {
			canceled = &candidates[i]
		}
	}
	if canceled != nil {
		return *canceled
	}
	return c
}

// And requires every chain to be Ok. The first failure wins; when all are
// Ok the last chain's outcome is kept.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	return c.and(required)
}

func (c Chain[T]) and(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	last := c
	for _, ch := range candidates {
		if ch.out.IsErr() {
			return ch
		}
		last = ch
	}
	return last
}

// RepeatUntil applies onOk repeatedly until the chain fails or until
// reports true for the current value.
func (c Chain[T]) RepeatUntil(onOk func(context.Context, T) outcome.Outcome[T], until func(context.Context, T) bool) Chain[T] {
	if c.out.IsErr() {
		return c
	}
	for {
		c = c.Then(onOk)
		if c.out.IsErr() || until(c.ctx, c.out.Value()) {
			return c
		}
	}
}

// While applies onOk for as long as the chain stays Ok and the while
// predicate holds. The step may never run.
func (c Chain[T]) While(onOk func(context.Context, T) outcome.Outcome[T], while func(context.Context, T) bool) Chain[T] {
	for c.out.IsOk() && while(c.ctx, c.out.Value()) {
		c = c.Then(onOk)
	}
	return c
}

// Finally collapses the chain into a plain value of the same type. Exactly
// one handler runs.
func (c Chain[T]) Finally(onOk func(context.Context, T) T, onErr func(context.Context, error) T, onCanceled func(context.Context, error) T) T {
	return step.Finally(c.ctx, c.out, onOk, onErr, onCanceled)
}

// ThenTo chains a function that moves the chain to a new value type.
func ThenTo[T, U any](c Chain[T], onOk func(context.Context, T) outcome.Outcome[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, out: step.FlatMap(c.ctx, c.out, onOk)}
}

// MapTo transforms the chain to a new value type with a pure function.
func MapTo[T, U any](c Chain[T], onOk func(context.Context, T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, out: step.Map(c.ctx, c.out, onOk)}
}

// TryTo chains a (value, error) function that moves the chain to a new
// value type.
func TryTo[T, U any](c Chain[T], try func(context.Context, T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, out: step.Try(c.ctx, c.out, try)}
}

// FinallyTo collapses the chain into a plain value of another type.
func FinallyTo[T, U any](c Chain[T], onOk func(context.Context, T) U, onErr func(context.Context, error) U, onCanceled func(context.Context, error) U) U {
	return step.Finally(c.ctx, c.out, onOk, onErr, onCanceled)
}
