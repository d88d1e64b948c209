package pipe

import (
	"context"
	"sync"

	"github.com/vparva/outcome/pkg/outcome"
)

// Run fans a same-type stage out over workers. The worker count comes from
// WithWorkers, defaulting to a single worker. The returned channel closes
// once every worker has stopped.
func Run[T any](ctx context.Context, inputs <-chan outcome.Outcome[T], stage Stage[T, T]) <-chan outcome.Outcome[T] {
	return RunWith(ctx, inputs, stage, CancelHandlers[T, T]{}, nil, Workers(ctx, 1))
}

// RunWith is Run with explicit cancellation handlers, a delivery observer
// and worker count.
func RunWith[T any](ctx context.Context, inputs <-chan outcome.Outcome[T], stage Stage[T, T],
	handlers CancelHandlers[T, T], onDelivered func(ctx context.Context, delivered outcome.Outcome[T]),
	workers int) <-chan outcome.Outcome[T] {
	return ThroughWith(ctx, inputs, stage, handlers, onDelivered, workers)
}

// Through fans out a stage that changes the value type. The worker count
// comes from WithWorkers, defaulting to a single worker.
func Through[In, Out any](ctx context.Context, inputs <-chan outcome.Outcome[In], stage Stage[In, Out]) <-chan outcome.Outcome[Out] {
	return ThroughWith(ctx, inputs, stage, CancelHandlers[In, Out]{}, nil, Workers(ctx, 1))
}

// ThroughWith is Through with explicit cancellation handlers, a delivery
// observer and worker count. With more than one worker the output order is
// not the input order.
func ThroughWith[In, Out any](ctx context.Context, inputs <-chan outcome.Outcome[In], stage Stage[In, Out],
	handlers CancelHandlers[In, Out], onDelivered func(ctx context.Context, delivered outcome.Outcome[Out]),
	workers int) <-chan outcome.Outcome[Out] {

	if workers < 1 {
		workers = 1
	}

	out := make(chan outcome.Outcome[Out])
	wg := &sync.WaitGroup{}

	for range workers {
		wg.Add(1)
		go drive(ctx, inputs, out, stage, handlers, onDelivered, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
