package payment

import (
	"fmt"

	"github.com/vparva/outcome/pkg/outcome"
)

// Cases holds one handler per payment kind. Match requires the handler of
// the matched variant to be set.
type Cases[T any] struct {
	Card         func(Card) T
	Cash         func(Cash) T
	BankTransfer func(BankTransfer) T
	Wallet       func(Wallet) T
}

// Match dispatches a payment method to the handler of its variant. A
// missing handler is a contract violation and panics with an
// ErrInvalidState error naming the kind.
func Match[T any](m Method, cases Cases[T]) T {
	switch v := m.(type) {
	case Card:
		if cases.Card == nil {
			panic(missingCase(KindCard))
		}
		return cases.Card(v)
	case Cash:
		if cases.Cash == nil {
			panic(missingCase(KindCash))
		}
		return cases.Cash(v)
	case BankTransfer:
		if cases.BankTransfer == nil {
			panic(missingCase(KindBankTransfer))
		}
		return cases.BankTransfer(v)
	case Wallet:
		if cases.Wallet == nil {
			panic(missingCase(KindWallet))
		}
		return cases.Wallet(v)
	default:
		panic(&outcome.StateError{Op: "payment.Match", Reason: fmt.Sprintf("value %T is outside the payment method set", m)})
	}
}

func missingCase(k Kind) error {
	return &outcome.StateError{Op: "payment.Match", Reason: fmt.Sprintf("no case for kind %s", k)}
}

// Describe renders a one-line human description of any payment method.
func Describe(m Method) string {
	return Match(m, Cases[string]{
		Card: func(c Card) string {
			return fmt.Sprintf("%s paid by card for %s", c.Holder, c.Amount)
		},
		Cash: func(c Cash) string {
			return fmt.Sprintf("cash payment of %s", c.Amount)
		},
		BankTransfer: func(b BankTransfer) string {
			return fmt.Sprintf("transfer of %s to %s", b.Amount, b.IBAN)
		},
		Wallet: func(w Wallet) string {
			return fmt.Sprintf("wallet payment of %s via %s", w.Amount, w.Provider)
		},
	})
}

// AmountOf extracts the amount of any payment method.
func AmountOf(m Method) Amount {
	return Match(m, Cases[Amount]{
		Card:         func(c Card) Amount { return c.Amount },
		Cash:         func(c Cash) Amount { return c.Amount },
		BankTransfer: func(b BankTransfer) Amount { return b.Amount },
		Wallet:       func(w Wallet) Amount { return w.Amount },
	})
}

// Total sums the amounts of a batch of payment methods.
func Total(methods []Method) Amount {
	var total Amount
	for _, m := range methods {
		total = total.Add(AmountOf(m))
	}
	return total
}
