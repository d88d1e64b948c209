package step

import (
	"context"
	"errors"

	"github.com/vparva/outcome/pkg/outcome"
)

// Check inspects an outcome and returns it unchanged or replaced with Err.
type Check[T any] func(context.Context, outcome.Outcome[T]) outcome.Outcome[T]

// Validate wraps val and fails it when pred reports false.
func Validate[T any](ctx context.Context, val T, pred func(context.Context, T) bool, message string) outcome.Outcome[T] {
	return AndValidate(ctx, outcome.Ok(val), pred, message)
}

// AndValidate fails an Ok outcome when pred reports false. Err inputs pass
// through untouched, so validations compose into chains.
func AndValidate[T any](ctx context.Context, in outcome.Outcome[T], pred func(context.Context, T) bool, message string) outcome.Outcome[T] {
	if in.IsErr() {
		return in
	}
	if pred(ctx, in.Value()) {
		return in
	}
	return outcome.Err[T](message)
}

// ValidateAll runs every check against the incoming outcome and joins the
// reasons of all failing checks into a single Err. Each check sees the
// original input, so one violation does not mask the others. With failFast
// set the first violation wins and later checks never run.
func ValidateAll[T any](ctx context.Context, in outcome.Outcome[T], failFast bool, checks ...Check[T]) outcome.Outcome[T] {
	if in.IsErr() || len(checks) == 0 {
		return in
	}
	var faults []error
	for _, check := range checks {
		if ctx.Err() != nil {
			faults = append(faults, ctx.Err())
			break
		}
		if next := check(ctx, in); next.IsErr() {
			_, err := next.Unpack()
			faults = append(faults, err)
			if failFast {
				break
			}
		}
	}
	if len(faults) == 0 {
		return in
	}
	joined := errors.Join(faults...)
	return outcome.ErrWith[T](joined.Error(), joined)
}

// Map transforms the value of an Ok outcome. Panics raised by f are captured
// into Err, matching outcome.Map.
func Map[In, Out any](ctx context.Context, in outcome.Outcome[In], f func(context.Context, In) Out) outcome.Outcome[Out] {
	return outcome.Map(in, func(v In) Out { return f(ctx, v) })
}

// FlatMap chains a function that itself produces an outcome, with the same
// capture semantics as outcome.FlatMap.
func FlatMap[In, Out any](ctx context.Context, in outcome.Outcome[In], f func(context.Context, In) outcome.Outcome[Out]) outcome.Outcome[Out] {
	return outcome.FlatMap(in, func(v In) outcome.Outcome[Out] { return f(ctx, v) })
}

// DoubleMap transforms the Ok track with onOk and notifies onErr on the Err
// track. The Err track stays Err: onErr is invoked for its side effect and
// the original fault is propagated.
func DoubleMap[In, Out any](ctx context.Context, in outcome.Outcome[In], onOk func(context.Context, In) Out, onErr func(context.Context, error)) outcome.Outcome[Out] {
	if in.IsOk() {
		return Map(ctx, in, onOk)
	}
	if onErr != nil {
		_, err := in.Unpack()
		onErr(ctx, err)
	}
	return outcome.ErrFrom[In, Out](in)
}

// Try adapts a conventional (value, error) function. A non-nil error becomes
// Err, cancellation errors become canceled Err outcomes. Unlike Map, Try does
// not recover panics: f reports failures through its error return.
func Try[In, Out any](ctx context.Context, in outcome.Outcome[In], f func(context.Context, In) (Out, error)) outcome.Outcome[Out] {
	if in.IsErr() {
		return outcome.ErrFrom[In, Out](in)
	}
	return outcome.Capture(f(ctx, in.Value()))
}

// Tee runs effect on an Ok outcome and returns the input unchanged. The
// effect cannot alter the outcome.
func Tee[T any](ctx context.Context, in outcome.Outcome[T], effect func(context.Context, outcome.Outcome[T])) outcome.Outcome[T] {
	if in.IsOk() && effect != nil {
		effect(ctx, in)
	}
	return in
}

// TeeIf runs effect only when the outcome is Ok and cond holds for its value.
func TeeIf[T any](ctx context.Context, in outcome.Outcome[T], cond func(context.Context, T) bool, effect func(context.Context, outcome.Outcome[T])) outcome.Outcome[T] {
	if in.IsOk() && cond != nil && cond(ctx, in.Value()) {
		return Tee(ctx, in, effect)
	}
	return in
}

// DoubleTee runs onOk for Ok outcomes and onErr for Err outcomes, then
// returns the input unchanged.
func DoubleTee[T any](ctx context.Context, in outcome.Outcome[T], onOk func(context.Context, T), onErr func(context.Context, error)) outcome.Outcome[T] {
	if in.IsOk() {
		if onOk != nil {
			onOk(ctx, in.Value())
		}
		return in
	}
	if onErr != nil {
		_, err := in.Unpack()
		onErr(ctx, err)
	}
	return in
}

// Guard fails an Ok outcome when inspect returns a non-nil error. The value
// is otherwise left untouched, which makes Guard a post-condition check on
// values produced earlier in a chain.
func Guard[T any](ctx context.Context, in outcome.Outcome[T], inspect func(context.Context, T) error) outcome.Outcome[T] {
	if in.IsErr() || inspect == nil {
		return in
	}
	if err := inspect(ctx, in.Value()); err != nil {
		return outcome.Capture(in.Value(), err)
	}
	return in
}

// OrElse replaces an Err outcome with the fallback's result. Ok outcomes are
// returned as is and fallback never runs.
func OrElse[T any](ctx context.Context, in outcome.Outcome[T], fallback func(context.Context) outcome.Outcome[T]) outcome.Outcome[T] {
	if fallback == nil {
		return in.OrElse(nil)
	}
	return in.OrElse(func() outcome.Outcome[T] { return fallback(ctx) })
}

// Finally collapses an outcome into a plain value. Exactly one of onOk,
// onErr or onCanceled runs, selected by the variant, with canceled Err
// outcomes routed to onCanceled.
func Finally[In, Out any](ctx context.Context, in outcome.Outcome[In], onOk func(context.Context, In) Out, onErr func(context.Context, error) Out, onCanceled func(context.Context, error) Out) Out {
	if in.IsOk() {
		return onOk(ctx, in.Value())
	}
	_, err := in.Unpack()
	if in.IsCanceled() && onCanceled != nil {
		return onCanceled(ctx, err)
	}
	return onErr(ctx, err)
}
