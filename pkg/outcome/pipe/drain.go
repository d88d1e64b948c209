package pipe

import (
	"context"
	"errors"

	"github.com/vparva/outcome/pkg/outcome"
)

// ErrCanceledByPipeline marks outcomes synthesized for inputs a pipeline
// abandoned during shutdown.
var ErrCanceledByPipeline = errors.New("canceled by pipeline shutdown")

// canceledFor turns an abandoned input into the canceled outcome forwarded
// downstream. Inputs that already carry a cancellation keep their fault.
func canceledFor[In, Out any](in outcome.Outcome[In]) outcome.Outcome[Out] {
	if in.IsErr() && in.IsCanceled() {
		return outcome.ErrFrom[In, Out](in)
	}
	return outcome.Canceled[Out](ErrCanceledByPipeline)
}

// CancelRemaining forwards a canceled outcome for every input still queued
// when the pipeline shut down. Fits CancelHandlers.OnCancel. The policy is
// controlled by WithDrainRemaining and defaults to draining.
func CancelRemaining[In, Out any](ctx context.Context, inputs <-chan outcome.Outcome[In], out chan<- outcome.Outcome[Out]) {
	if !DrainRemaining(ctx, true) {
		return
	}
	for in := range inputs {
		out <- canceledFor[In, Out](in)
	}
}

// CancelRemainingOne forwards a canceled outcome for a single abandoned
// input. Fits CancelHandlers.OnCancelUnprocessed.
func CancelRemainingOne[In, Out any](ctx context.Context, in outcome.Outcome[In], out chan<- outcome.Outcome[Out]) {
	if !DrainRemaining(ctx, true) {
		return
	}
	out <- canceledFor[In, Out](in)
}

// ForwardProcessed delivers a result that was computed before the shutdown
// was observed. Fits CancelHandlers.OnCancelProcessed.
func ForwardProcessed[In, Out any](ctx context.Context, in outcome.Outcome[In], processed outcome.Outcome[Out], out chan<- outcome.Outcome[Out]) {
	if !DrainRemaining(ctx, true) {
		return
	}
	out <- processed
}

// DrainInput folds a single abandoned input and forwards it. Fits
// FinallyCancelHandlers.OnCancelInput; with a nil fold the input is
// dropped.
func DrainInput[In, Out any](ctx context.Context, in outcome.Outcome[In], fold func(context.Context, outcome.Outcome[In]) Out, out chan<- Out) {
	if !DrainRemaining(ctx, true) || fold == nil {
		return
	}
	out <- fold(ctx, in)
}

// DrainInputs folds every queued input and forwards the results. Fits
// FinallyCancelHandlers.OnCancelInputs; with a nil fold the queue is
// consumed and dropped.
func DrainInputs[In, Out any](ctx context.Context, inputs <-chan outcome.Outcome[In], fold func(context.Context, outcome.Outcome[In]) Out, out chan<- Out) {
	if !DrainRemaining(ctx, true) {
		return
	}
	for in := range inputs {
		if fold != nil {
			out <- fold(ctx, in)
		}
	}
}

// ForwardOne passes an already-folded value along. Fits
// FinallyCancelHandlers.OnCancelFolded.
func ForwardOne[T any](ctx context.Context, v T, out chan<- T) {
	if !DrainRemaining(ctx, true) {
		return
	}
	out <- v
}

// ForwardRemaining passes every already-folded value along. Fits
// FinallyCancelHandlers.OnCancelRemaining.
func ForwardRemaining[T any](ctx context.Context, inputs <-chan T, out chan<- T) {
	if !DrainRemaining(ctx, true) {
		return
	}
	for v := range inputs {
		out <- v
	}
}
