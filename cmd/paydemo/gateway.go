package main

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sync"

	"github.com/vparva/outcome/pkg/intern"
	"github.com/vparva/outcome/pkg/outcome/retry"
	"github.com/vparva/outcome/pkg/payment"
)

// receipt is a successful authorization.
type receipt struct {
	Reference string
	Route     string
	Method    payment.Method
}

type gatewayConfig struct {
	seed     int64
	failRate float64
	limit    payment.Amount
}

// gatewayCfg is read by the interning builder on first use of a route.
// run sets it before the pipeline starts; tests set it before Get.
var gatewayCfg = gatewayConfig{
	seed:     defaultSeed,
	failRate: defaultFailRate,
	limit:    payment.MustAmount("10000.00"),
}

// gateways interns one simulated gateway per route, so concurrent workers
// authorizing against the same route share a single instance.
var gateways = intern.New(func(route string) *gateway {
	return newGateway(route, gatewayCfg)
})

// routeFor maps a payment method to its authorization route. Wallet
// payments route per provider.
func routeFor(m payment.Method) string {
	return payment.Match(m, payment.Cases[string]{
		Card:         func(payment.Card) string { return "cards" },
		Cash:         func(payment.Cash) string { return "cash" },
		BankTransfer: func(payment.BankTransfer) string { return "transfers" },
		Wallet:       func(w payment.Wallet) string { return "wallet/" + w.Provider },
	})
}

// gateway simulates one upstream authorization route. It fails
// transiently at the configured rate and declines amounts above the
// route limit for good.
type gateway struct {
	route    string
	failRate float64
	limit    payment.Amount

	mu   sync.Mutex
	rng  *rand.Rand
	refs int
}

func newGateway(route string, cfg gatewayConfig) *gateway {
	h := fnv.New64a()
	h.Write([]byte(route))

	return &gateway{
		route:    route,
		failRate: cfg.failRate,
		limit:    cfg.limit,
		rng:      rand.New(rand.NewSource(cfg.seed ^ int64(h.Sum64()))),
	}
}

func (g *gateway) authorize(m payment.Method) (receipt, error) {
	amount := payment.AmountOf(m)
	if amount.MinorUnits() > g.limit.MinorUnits() {
		return receipt{}, retry.Permanent(fmt.Errorf("declined on %s: %s exceeds the route limit %s", g.route, amount, g.limit))
	}

	g.mu.Lock()
	busy := g.rng.Float64() < g.failRate
	g.refs++
	ref := g.refs
	g.mu.Unlock()

	if busy {
		return receipt{}, fmt.Errorf("route %s busy", g.route)
	}

	return receipt{
		Reference: fmt.Sprintf("%s-%06d", g.route, ref),
		Route:     g.route,
		Method:    m,
	}, nil
}
