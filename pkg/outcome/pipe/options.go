package pipe

import "context"

type optionKey string

const (
	workerOptionKey optionKey = "pipe_workers"
	drainOptionKey  optionKey = "pipe_drain_remaining"
)

// WithWorkers stores the worker count Run and Through fan out to.
func WithWorkers(ctx context.Context, workers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workers)
}

// Workers reads the configured worker count, falling back to fallback when
// the context carries none or a non-positive value.
func Workers(ctx context.Context, fallback int) int {
	if n, ok := ctx.Value(workerOptionKey).(int); ok && n > 0 {
		return n
	}
	return fallback
}

// WithDrainRemaining controls whether the drain helpers forward canceled
// outcomes for inputs left queued after cancellation.
func WithDrainRemaining(ctx context.Context, drain bool) context.Context {
	return context.WithValue(ctx, drainOptionKey, drain)
}

// DrainRemaining reads the drain policy, falling back to fallback when the
// context carries none.
func DrainRemaining(ctx context.Context, fallback bool) bool {
	if v, ok := ctx.Value(drainOptionKey).(bool); ok {
		return v
	}
	return fallback
}
