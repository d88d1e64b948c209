package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vparva/outcome/pkg/outcome"
	"github.com/vparva/outcome/pkg/outcome/pipe"
	"github.com/vparva/outcome/pkg/outcome/retry"
	"github.com/vparva/outcome/pkg/payment"
)

func run(ctx context.Context) error {
	doc, err := loadBatch(batchPath())
	if err != nil {
		return err
	}

	gatewayCfg = gatewayConfig{
		seed:     gatewaySeed(),
		failRate: gatewayFailRate(),
		limit:    payment.MustAmount("10000.00"),
	}

	policy := retry.NewPolicy().
		WithExponential(50*time.Millisecond, time.Second, 2).
		WithMaxRetries(uint64(retryCount())).
		WithNotify(func(err error, next time.Duration) {
			zap.L().Debug("authorization retry", zap.Error(err), zap.Duration("next", next))
		})

	workers := workerCount()
	ctx = pipe.WithWorkers(ctx, workers)
	ctx = pipe.WithDrainRemaining(ctx, true)

	zap.L().Info("batch loaded",
		zap.String("batch", doc.Name),
		zap.Int("payments", len(doc.Payments)),
		zap.Int("workers", workers))

	inputs := pipe.SourceSlice(ctx, doc.Payments)

	parsed := pipe.Through(ctx, inputs, pipe.Then(func(_ context.Context, r payment.Record) outcome.Outcome[payment.Method] {
		return payment.Parse(r)
	}))

	screened := pipe.Run(ctx, parsed, pipe.DoubleTee(
		func(_ context.Context, m payment.Method) {
			zap.L().Debug("accepted", zap.String("payment", payment.Describe(m)))
		},
		func(_ context.Context, err error) {
			zap.L().Warn("rejected", zap.Error(err))
		},
	))

	authorized := pipe.Through(ctx, screened, pipe.Try(func(ctx context.Context, m payment.Method) (receipt, error) {
		g := gateways.Get(routeFor(m))
		out := retry.Do(ctx, policy, func(context.Context) (receipt, error) {
			return g.authorize(m)
		})
		return out.Unpack()
	}))

	results := pipe.Collect(ctx, authorized)

	return summarize(doc.Name, results)
}

func summarize(batch string, results []outcome.Outcome[receipt]) error {
	var (
		authorized int
		failed     int
		canceled   int
		total      payment.Amount
	)
	for _, out := range results {
		switch {
		case out.IsCanceled():
			canceled++
		case out.IsErr():
			failed++
		default:
			r := out.Value()
			authorized++
			total = total.Add(payment.AmountOf(r.Method))
			zap.L().Info("authorized",
				zap.String("reference", r.Reference),
				zap.String("route", r.Route),
				zap.String("payment", payment.Describe(r.Method)))
		}
	}

	zap.L().Info("batch finished",
		zap.String("batch", batch),
		zap.Int("authorized", authorized),
		zap.Int("failed", failed),
		zap.Int("canceled", canceled),
		zap.String("total", total.String()),
		zap.Int("routes", gateways.Len()))

	fmt.Printf("batch %s: %d authorized for %s, %d failed, %d canceled across %d routes\n",
		batch, authorized, total, failed, canceled, gateways.Len())

	if failed+canceled > 0 {
		return fmt.Errorf("%d of %d payments were not authorized", failed+canceled, len(results))
	}
	return nil
}
