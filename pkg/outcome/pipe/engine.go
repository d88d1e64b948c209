package pipe

import (
	"context"
	"sync"

	"github.com/vparva/outcome/pkg/outcome"
)

// CancelHandlers observe the three points where a worker can run into
// cancellation: before pulling the next input, after pulling an input the
// stage never finished, and after the stage produced a result that could
// not be delivered. Any handler may be nil.
type CancelHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputs <-chan outcome.Outcome[In], out chan<- outcome.Outcome[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed outcome.Outcome[In], out chan<- outcome.Outcome[Out])
	OnCancelProcessed   func(ctx context.Context, in outcome.Outcome[In], processed outcome.Outcome[Out], out chan<- outcome.Outcome[Out])
}

// drive is the worker loop. It pulls inputs, runs the stage and delivers
// results, racing every step against the context. The loop exits when the
// input channel closes or the context is canceled.
func drive[In, Out any](ctx context.Context, inputs <-chan outcome.Outcome[In], out chan<- outcome.Outcome[Out],
	stage Stage[In, Out], handlers CancelHandlers[In, Out],
	onDelivered func(ctx context.Context, delivered outcome.Outcome[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputs, out)
			}
			return
		case in, ok := <-inputs:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, out)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputs, out)
				}
				return
			case pr, running := <-stage(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, out)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputs, out)
					}
					return
				case out <- pr:
					if onDelivered != nil {
						onDelivered(ctx, pr)
					}
				}
			}
		}
	}
}
