package payment

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vparva/outcome/pkg/outcome"
)

// Amount is a non-negative monetary value with two-decimal precision. It
// stores minor units, so equal amounts are == equal and hash identically
// as map keys.
type Amount struct {
	units int64
}

// NewAmount validates and rescales a decimal into an Amount. The value
// must be non-negative; more than two decimal places are rounded half away
// from zero.
func NewAmount(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return Amount{}, &outcome.ArgError{Op: "payment.NewAmount", Field: "amount", Reason: "must not be negative"}
	}
	return Amount{units: d.Round(2).Shift(2).IntPart()}, nil
}

// ParseAmount parses a decimal string such as "12.50" into an Amount.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, &outcome.ArgError{Op: "payment.ParseAmount", Field: "amount", Reason: "not a decimal number"}
	}
	return NewAmount(d)
}

// MustAmount is ParseAmount panicking on invalid input, for fixtures and
// tests.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// MinorUnits returns the amount in minor units (cents for two-decimal
// currencies).
func (a Amount) MinorUnits() int64 {
	return a.units
}

// Decimal returns the amount as a two-decimal decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(a.units, -2)
}

// Add returns the sum of two amounts.
func (a Amount) Add(b Amount) Amount {
	return Amount{units: a.units + b.units}
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.units == 0
}

// String renders the amount with exactly two decimal places.
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}
