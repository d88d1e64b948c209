package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vparva/outcome/pkg/outcome/retry"
	"github.com/vparva/outcome/pkg/payment"
)

func TestRouteFor(t *testing.T) {
	t.Parallel()

	card, _ := payment.NewCard("Ada", "4111111111111111", payment.MustAmount("1.00"))
	transfer, _ := payment.NewBankTransfer("DE89370400440532013000", "", payment.MustAmount("1.00"))
	wallet, _ := payment.NewWallet("PayPal", "ada@example.org", payment.MustAmount("1.00"))

	routes := map[string]payment.Method{
		"cards":         card,
		"cash":          payment.NewCash(payment.MustAmount("1.00")),
		"transfers":     transfer,
		"wallet/paypal": wallet,
	}
	for want, m := range routes {
		if got := routeFor(m); got != want {
			t.Fatalf("routeFor(%s) = %q, want %q", m.Kind(), got, want)
		}
	}
}

func TestAuthorizeSucceedsOnHealthyRoute(t *testing.T) {
	gatewayCfg = gatewayConfig{seed: 1, failRate: 0, limit: payment.MustAmount("10000.00")}
	gateways.Reset()

	m := payment.NewCash(payment.MustAmount("9.99"))
	r, err := gateways.Get("cash").authorize(m)
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if r.Reference != "cash-000001" || r.Route != "cash" {
		t.Fatalf("receipt: %+v", r)
	}
	if r.Method != m {
		t.Fatalf("receipt lost the method")
	}
}

func TestAuthorizeDeclinesOverLimitWithoutRetrying(t *testing.T) {
	gatewayCfg = gatewayConfig{seed: 1, failRate: 0, limit: payment.MustAmount("100.00")}
	gateways.Reset()

	policy := retry.NewPolicy().WithConstant(time.Millisecond).WithMaxRetries(3)
	attempts := 0

	out := retry.Do(context.Background(), policy, func(context.Context) (receipt, error) {
		attempts++
		return gateways.Get("cash").authorize(payment.NewCash(payment.MustAmount("100.01")))
	})
	if !out.IsErr() || out.IsCanceled() {
		t.Fatalf("expected a plain failure, got %v", out)
	}
	if !strings.Contains(out.ErrorMessage(), "declined") {
		t.Fatalf("message: %q", out.ErrorMessage())
	}
	if attempts != 1 {
		t.Fatalf("a permanent decline was retried %d times", attempts-1)
	}
}

func TestAuthorizeExhaustsBusyRoute(t *testing.T) {
	gatewayCfg = gatewayConfig{seed: 1, failRate: 1, limit: payment.MustAmount("10000.00")}
	gateways.Reset()

	policy := retry.NewPolicy().WithConstant(time.Millisecond).WithMaxRetries(2)
	attempts := 0

	out := retry.Do(context.Background(), policy, func(context.Context) (receipt, error) {
		attempts++
		return gateways.Get("cash").authorize(payment.NewCash(payment.MustAmount("1.00")))
	})
	if !out.IsErr() {
		t.Fatalf("expected exhaustion, got %v", out)
	}
	if !strings.Contains(out.ErrorMessage(), "busy") {
		t.Fatalf("message: %q", out.ErrorMessage())
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want initial plus two retries", attempts)
	}
}
