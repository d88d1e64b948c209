package pipe

import (
	"context"

	"github.com/vparva/outcome/pkg/outcome"
	"github.com/vparva/outcome/pkg/outcome/step"
)

// FinallyHandlers fold each outcome of a stream into a plain value. OnOk
// and OnErr must be set; OnCanceled may be nil, in which case canceled
// outcomes fall through to OnErr.
type FinallyHandlers[In, Out any] struct {
	OnOk       func(ctx context.Context, value In) Out
	OnErr      func(ctx context.Context, err error) Out
	OnCanceled func(ctx context.Context, err error) Out
}

// FinallyCancelHandlers observe the folding stream's shutdown. OnBreak
// folds an input abandoned by cancellation; the remaining handlers decide
// what happens to queued inputs and already-folded values. The drain
// helpers provide ready-made implementations. Any handler may be nil.
type FinallyCancelHandlers[In, Out any] struct {
	OnBreak           func(ctx context.Context, in outcome.Outcome[In]) Out
	OnCancelInput     func(ctx context.Context, in outcome.Outcome[In], fold func(context.Context, outcome.Outcome[In]) Out, out chan<- Out)
	OnCancelInputs    func(ctx context.Context, inputs <-chan outcome.Outcome[In], fold func(context.Context, outcome.Outcome[In]) Out, out chan<- Out)
	OnCancelFolded    func(ctx context.Context, folded Out, out chan<- Out)
	OnCancelRemaining func(ctx context.Context, folded <-chan Out, out chan<- Out)
}

// Finally folds a stream of outcomes into plain values, one per input.
func Finally[In, Out any](ctx context.Context, inputs <-chan outcome.Outcome[In], handlers FinallyHandlers[In, Out]) <-chan Out {
	return FinallyWith(ctx, inputs, handlers, FinallyCancelHandlers[In, Out]{}, nil)
}

// FinallyWith folds a stream of outcomes into plain values with full
// control over cancellation behavior and a delivery observer.
func FinallyWith[In, Out any](ctx context.Context, inputs <-chan outcome.Outcome[In],
	handlers FinallyHandlers[In, Out], cancelHandlers FinallyCancelHandlers[In, Out],
	onFolded func(ctx context.Context, folded Out)) <-chan Out {

	fold := func(ctx context.Context, in outcome.Outcome[In]) Out {
		return step.Finally(ctx, in, handlers.OnOk, handlers.OnErr, handlers.OnCanceled)
	}

	folded := make(chan Out)
	out := make(chan Out)

	go func() {
		defer close(folded)

		if ctx.Err() != nil {
			if cancelHandlers.OnCancelInputs != nil {
				cancelHandlers.OnCancelInputs(ctx, inputs, cancelHandlers.OnBreak, folded)
			}
			return
		}

		for {
			select {
			case <-ctx.Done():
				if cancelHandlers.OnCancelInputs != nil {
					cancelHandlers.OnCancelInputs(ctx, inputs, cancelHandlers.OnBreak, folded)
				}
				return
			case in, ok := <-inputs:
				if !ok {
					return
				}

				res := fold(ctx, in)
				select {
				case <-ctx.Done():
					if cancelHandlers.OnCancelInput != nil {
						cancelHandlers.OnCancelInput(ctx, in, cancelHandlers.OnBreak, folded)
					}
					if cancelHandlers.OnCancelInputs != nil {
						cancelHandlers.OnCancelInputs(ctx, inputs, cancelHandlers.OnBreak, folded)
					}
					return
				case folded <- res:
				}
			}
		}
	}()

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				if cancelHandlers.OnCancelRemaining != nil {
					cancelHandlers.OnCancelRemaining(ctx, folded, out)
				}
				return
			case v, ok := <-folded:
				if !ok {
					return
				}

				select {
				case <-ctx.Done():
					if cancelHandlers.OnCancelFolded != nil {
						cancelHandlers.OnCancelFolded(ctx, v, out)
					}
					return
				case out <- v:
					if onFolded != nil {
						onFolded(ctx, v)
					}
				}
			}
		}
	}()

	return out
}
