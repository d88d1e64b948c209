package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/vparva/outcome/pkg/outcome"
)

// Policy describes how an operation is retried. The zero policy retries
// with the default exponential backoff and no attempt cap.
type Policy struct {
	newBackOff func() backoff.BackOff
	maxRetries uint64
	notify     func(err error, next time.Duration)
}

// NewPolicy returns a policy with the default exponential backoff.
func NewPolicy() *Policy {
	return &Policy{}
}

// WithConstant retries with a fixed interval between attempts.
func (p *Policy) WithConstant(interval time.Duration) *Policy {
	p.newBackOff = func() backoff.BackOff {
		return backoff.NewConstantBackOff(interval)
	}
	return p
}

// WithExponential retries with exponentially growing intervals.
func (p *Policy) WithExponential(initialInterval, maxInterval time.Duration, multiplier float64) *Policy {
	p.newBackOff = func() backoff.BackOff {
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = initialInterval
		exp.MaxInterval = maxInterval
		exp.Multiplier = multiplier
		return exp
	}
	return p
}

// WithMaxRetries caps the number of retries after the initial attempt.
// Zero means no cap.
func (p *Policy) WithMaxRetries(n uint64) *Policy {
	p.maxRetries = n
	return p
}

// WithNotify installs an observer invoked before each wait with the error
// that caused the retry and the upcoming interval.
func (p *Policy) WithNotify(notify func(err error, next time.Duration)) *Policy {
	p.notify = notify
	return p
}

func (p *Policy) build(ctx context.Context) backoff.BackOff {
	var b backoff.BackOff
	if p.newBackOff != nil {
		b = p.newBackOff()
	} else {
		b = backoff.NewExponentialBackOff()
	}
	if p.maxRetries > 0 {
		b = backoff.WithMaxRetries(b, p.maxRetries)
	}
	return backoff.WithContext(b, ctx)
}

// Permanent marks an error as final so Do stops retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do retries op under the policy until it succeeds, the error is marked
// permanent, the retry cap is reached or the context ends. The final
// attempt is reported as an outcome, with cancellation errors becoming
// canceled Err outcomes.
func Do[T any](ctx context.Context, p *Policy, op func(context.Context) (T, error)) outcome.Outcome[T] {
	v, err := backoff.RetryNotifyWithData(func() (T, error) {
		return op(ctx)
	}, p.build(ctx), p.notify)
	return outcome.Capture(v, err)
}

// DoOutcome retries an operation that reports through outcomes. Err
// outcomes are retried, canceled ones are treated as permanent, and the
// last observed outcome is returned when retries run out.
func DoOutcome[T any](ctx context.Context, p *Policy, op func(context.Context) outcome.Outcome[T]) outcome.Outcome[T] {
	out, err := backoff.RetryNotifyWithData(func() (outcome.Outcome[T], error) {
		o := op(ctx)
		if o.IsOk() {
			return o, nil
		}
		_, fault := o.Unpack()
		if o.IsCanceled() {
			return o, backoff.Permanent(fault)
		}
		return o, fault
	}, p.build(ctx), p.notify)

	if err == nil || out.IsErr() {
		return out
	}
	var zero T
	return outcome.Capture(zero, err)
}
