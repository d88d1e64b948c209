package pipe

import (
	"context"

	"github.com/vparva/outcome/pkg/outcome"
)

// EmitHandlers observe a source feeding values into a pipeline. Any handler
// may be nil.
type EmitHandlers[T any] struct {
	// OnStartFail runs when the context is already canceled before the
	// first value is emitted.
	OnStartFail func(ctx context.Context, values []T)
	// OnEmit runs after each successfully emitted value.
	OnEmit func(ctx context.Context, value T)
	// OnBreak runs when cancellation interrupts the source, with the
	// values that never made it out.
	OnBreak func(ctx context.Context, rest []T)
}

// SourceValues emits raw values on an unbuffered channel until they run out
// or the context is canceled. The channel is closed either way.
func SourceValues[T any](ctx context.Context, values ...T) <-chan T {
	ch := make(chan T)

	go func() {
		defer close(ch)

		if ctx.Err() != nil {
			return
		}
		for _, v := range values {
			select {
			case ch <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}

// Source emits the given values wrapped in Ok outcomes.
func Source[T any](ctx context.Context, values ...T) <-chan outcome.Outcome[T] {
	return SourceWith(ctx, EmitHandlers[T]{}, values...)
}

// SourceSlice emits a slice of values wrapped in Ok outcomes.
func SourceSlice[T any](ctx context.Context, values []T) <-chan outcome.Outcome[T] {
	return SourceWith(ctx, EmitHandlers[T]{}, values...)
}

// SourceWith emits values wrapped in Ok outcomes, reporting progress and
// interruptions through handlers.
func SourceWith[T any](ctx context.Context, handlers EmitHandlers[T], values ...T) <-chan outcome.Outcome[T] {
	ch := make(chan outcome.Outcome[T])

	go func() {
		defer close(ch)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case ch <- outcome.Ok(v):
				if handlers.OnEmit != nil {
					handlers.OnEmit(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return ch
}

// SourceOutcomes emits outcomes as given, so a pipeline can be fed a mix of
// Ok and Err entries.
func SourceOutcomes[T any](ctx context.Context, outs ...outcome.Outcome[T]) <-chan outcome.Outcome[T] {
	ch := make(chan outcome.Outcome[T])

	go func() {
		defer close(ch)

		if ctx.Err() != nil {
			return
		}
		for _, o := range outs {
			select {
			case ch <- o:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}

// Collect drains a channel into a slice, stopping at channel close or
// context cancellation. Pass a background context to read until close even
// while the pipeline's own context is canceled.
func Collect[T any](ctx context.Context, ch <-chan T) []T {
	collected := make([]T, 0)
	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return collected
			}
			collected = append(collected, v)
		case <-ctx.Done():
			return collected
		}
	}
}

// First returns the first value received, or fallback when the channel
// closes or the context is canceled before anything arrives.
func First[T any](ctx context.Context, ch <-chan T, fallback T) T {
	select {
	case v, ok := <-ch:
		if !ok {
			return fallback
		}
		return v
	case <-ctx.Done():
		return fallback
	}
}
