package payment

import (
	"fmt"
	"strings"

	"github.com/vparva/outcome/pkg/outcome"
)

// Record is the raw, untrusted form of a payment instruction as read from
// fixtures or user input. Only the fields of the named kind are consulted.
type Record struct {
	Kind      string `yaml:"kind"`
	Holder    string `yaml:"holder,omitempty"`
	Number    string `yaml:"number,omitempty"`
	IBAN      string `yaml:"iban,omitempty"`
	Reference string `yaml:"reference,omitempty"`
	Provider  string `yaml:"provider,omitempty"`
	Handle    string `yaml:"handle,omitempty"`
	Amount    string `yaml:"amount"`
}

// Parse turns a record into a payment method. All failures are expected
// data errors and come back as Err outcomes, never as panics.
func Parse(r Record) outcome.Outcome[Method] {
	amount, err := ParseAmount(r.Amount)
	if err != nil {
		return outcome.ErrWith[Method](fmt.Sprintf("invalid amount %q", r.Amount), err)
	}

	switch strings.ToLower(strings.TrimSpace(r.Kind)) {
	case "card":
		c, err := NewCard(r.Holder, r.Number, amount)
		if err != nil {
			return outcome.ErrWith[Method]("invalid card payment", err)
		}
		return outcome.Ok[Method](c)
	case "cash":
		return outcome.Ok[Method](NewCash(amount))
	case "bank_transfer", "transfer":
		b, err := NewBankTransfer(r.IBAN, r.Reference, amount)
		if err != nil {
			return outcome.ErrWith[Method]("invalid bank transfer", err)
		}
		return outcome.Ok[Method](b)
	case "wallet":
		w, err := NewWallet(r.Provider, r.Handle, amount)
		if err != nil {
			return outcome.ErrWith[Method]("invalid wallet payment", err)
		}
		return outcome.Ok[Method](w)
	default:
		return outcome.Err[Method]("unknown payment kind: " + r.Kind)
	}
}
