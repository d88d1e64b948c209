package pipe

import (
	"context"

	"github.com/vparva/outcome/pkg/outcome"
	"github.com/vparva/outcome/pkg/outcome/step"
)

// Stage transforms a single outcome behind a channel, so a worker can race
// the transformation against cancellation. Stages are built from the step
// combinators and composed by Run and Through.
type Stage[In, Out any] func(ctx context.Context, in outcome.Outcome[In]) <-chan outcome.Outcome[Out]

// DropHandler observes an input a stage abandoned because the context was
// canceled before the result could be handed over.
type DropHandler[T any] func(ctx context.Context, in outcome.Outcome[T])

// lift runs apply in its own goroutine and relays the produced outcome.
// The handoff channel is buffered so the apply goroutine can finish and
// exit even when the relay already gave up on a canceled context.
func lift[In, Out any](ctx context.Context, in outcome.Outcome[In],
	apply func(context.Context, outcome.Outcome[In]) outcome.Outcome[Out],
	onDrop DropHandler[In]) <-chan outcome.Outcome[Out] {

	work := make(chan outcome.Outcome[Out], 1)
	out := make(chan outcome.Outcome[Out])

	go func() {
		defer close(work)

		if ctx.Err() == nil {
			work <- apply(ctx, in)
		}
	}()

	go func() {
		defer close(out)

		select {
		case res, ok := <-work:
			if !ok {
				if onDrop != nil {
					onDrop(ctx, in)
				}
				return
			}
			out <- res
		case <-ctx.Done():
			if onDrop != nil {
				onDrop(ctx, in)
			}
		}
	}()

	return out
}

// Validate builds a stage that fails outcomes whose value does not satisfy
// pred.
func Validate[T any](pred func(context.Context, T) bool, message string) Stage[T, T] {
	return ValidateWith(pred, message, nil)
}

// ValidateWith is Validate with a drop handler for abandoned inputs.
func ValidateWith[T any](pred func(context.Context, T) bool, message string, onDrop DropHandler[T]) Stage[T, T] {
	return func(ctx context.Context, in outcome.Outcome[T]) <-chan outcome.Outcome[T] {
		return lift(ctx, in, func(ctx context.Context, in outcome.Outcome[T]) outcome.Outcome[T] {
			return step.AndValidate(ctx, in, pred, message)
		}, onDrop)
	}
}

// Then builds a stage from a function that returns an outcome.
func Then[In, Out any](onOk func(context.Context, In) outcome.Outcome[Out]) Stage[In, Out] {
	return ThenWith(onOk, nil)
}

// ThenWith is Then with a drop handler for abandoned inputs.
func ThenWith[In, Out any](onOk func(context.Context, In) outcome.Outcome[Out], onDrop DropHandler[In]) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Outcome[In]) <-chan outcome.Outcome[Out] {
		return lift(ctx, in, func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
			return step.FlatMap(ctx, in, onOk)
		}, onDrop)
	}
}

// Map builds a stage from a pure transformation.
func Map[In, Out any](onOk func(context.Context, In) Out) Stage[In, Out] {
	return MapWith(onOk, nil)
}

// MapWith is Map with a drop handler for abandoned inputs.
func MapWith[In, Out any](onOk func(context.Context, In) Out, onDrop DropHandler[In]) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Outcome[In]) <-chan outcome.Outcome[Out] {
		return lift(ctx, in, func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
			return step.Map(ctx, in, onOk)
		}, onDrop)
	}
}

// DoubleMap builds a stage that transforms the Ok track and notifies onErr
// on the Err track.
func DoubleMap[In, Out any](onOk func(context.Context, In) Out, onErr func(context.Context, error)) Stage[In, Out] {
	return DoubleMapWith(onOk, onErr, nil)
}

// DoubleMapWith is DoubleMap with a drop handler for abandoned inputs.
func DoubleMapWith[In, Out any](onOk func(context.Context, In) Out, onErr func(context.Context, error), onDrop DropHandler[In]) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Outcome[In]) <-chan outcome.Outcome[Out] {
		return lift(ctx, in, func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
			return step.DoubleMap(ctx, in, onOk, onErr)
		}, onDrop)
	}
}

// Try builds a stage from a conventional (value, error) function.
func Try[In, Out any](try func(context.Context, In) (Out, error)) Stage[In, Out] {
	return TryWith(try, nil)
}

// TryWith is Try with a drop handler for abandoned inputs.
func TryWith[In, Out any](try func(context.Context, In) (Out, error), onDrop DropHandler[In]) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Outcome[In]) <-chan outcome.Outcome[Out] {
		return lift(ctx, in, func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
			return step.Try(ctx, in, try)
		}, onDrop)
	}
}

// Tee builds a stage that runs a side effect on Ok outcomes and forwards
// the input unchanged.
func Tee[T any](effect func(context.Context, outcome.Outcome[T])) Stage[T, T] {
	return TeeWith(effect, nil)
}

// TeeWith is Tee with a drop handler for abandoned inputs.
func TeeWith[T any](effect func(context.Context, outcome.Outcome[T]), onDrop DropHandler[T]) Stage[T, T] {
	return func(ctx context.Context, in outcome.Outcome[T]) <-chan outcome.Outcome[T] {
		return lift(ctx, in, func(ctx context.Context, in outcome.Outcome[T]) outcome.Outcome[T] {
			return step.Tee(ctx, in, effect)
		}, onDrop)
	}
}

// DoubleTee builds a stage with side effects for both tracks.
func DoubleTee[T any](onOk func(context.Context, T), onErr func(context.Context, error)) Stage[T, T] {
	return DoubleTeeWith(onOk, onErr, nil)
}

// DoubleTeeWith is DoubleTee with a drop handler for abandoned inputs.
func DoubleTeeWith[T any](onOk func(context.Context, T), onErr func(context.Context, error), onDrop DropHandler[T]) Stage[T, T] {
	return func(ctx context.Context, in outcome.Outcome[T]) <-chan outcome.Outcome[T] {
		return lift(ctx, in, func(ctx context.Context, in outcome.Outcome[T]) outcome.Outcome[T] {
			return step.DoubleTee(ctx, in, onOk, onErr)
		}, onDrop)
	}
}

// Guard builds a stage that fails Ok outcomes whose value is rejected by
// inspect.
func Guard[T any](inspect func(context.Context, T) error) Stage[T, T] {
	return GuardWith(inspect, nil)
}

// GuardWith is Guard with a drop handler for abandoned inputs.
func GuardWith[T any](inspect func(context.Context, T) error, onDrop DropHandler[T]) Stage[T, T] {
	return func(ctx context.Context, in outcome.Outcome[T]) <-chan outcome.Outcome[T] {
		return lift(ctx, in, func(ctx context.Context, in outcome.Outcome[T]) outcome.Outcome[T] {
			return step.Guard(ctx, in, inspect)
		}, onDrop)
	}
}
