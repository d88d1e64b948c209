package payment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vparva/outcome/pkg/outcome"
)

// Kind identifies one variant of the payment method set.
type Kind uint8

const (
	KindCard Kind = iota
	KindCash
	KindBankTransfer
	KindWallet
)

func (k Kind) String() string {
	switch k {
	case KindCard:
		return "card"
	case KindCash:
		return "cash"
	case KindBankTransfer:
		return "bank_transfer"
	case KindWallet:
		return "wallet"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Method is the sealed interface over the four payment variants. The
// unexported marker keeps the set closed to this package.
type Method interface {
	Kind() Kind
	String() string

	isMethod()
}

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{12,19}$`)
	ibanPattern       = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{11,30}$`)
)

// Card is a card payment. The number is stored digits-only, the holder
// trimmed.
type Card struct {
	Holder string
	Number string
	Amount Amount
}

// NewCard validates and normalizes a card payment. The holder must be
// non-blank; the number, after stripping spaces and dashes, must be 12 to
// 19 digits.
func NewCard(holder, number string, amount Amount) (Card, error) {
	trimmedHolder := strings.TrimSpace(holder)
	digits := strings.NewReplacer(" ", "", "-", "").Replace(number)

	if trimmedHolder == "" {
		return Card{}, &outcome.ArgError{Op: "payment.NewCard", Field: "holder", Reason: "must not be blank"}
	}
	if !cardNumberPattern.MatchString(digits) {
		return Card{}, &outcome.ArgError{Op: "payment.NewCard", Field: "number", Reason: "must be 12 to 19 digits"}
	}
	return Card{Holder: trimmedHolder, Number: digits, Amount: amount}, nil
}

func (Card) Kind() Kind { return KindCard }

// String masks the card number down to its last four digits.
func (c Card) String() string {
	masked := c.Number
	if len(masked) > 4 {
		masked = "****" + masked[len(masked)-4:]
	}
	return fmt.Sprintf("Card(holder=%s, number=%s, amount=%s)", c.Holder, masked, c.Amount)
}

func (Card) isMethod() {}

// Cash is a cash payment.
type Cash struct {
	Amount Amount
}

// NewCash builds a cash payment. Amounts are validated at Amount
// construction, so NewCash itself cannot fail.
func NewCash(amount Amount) Cash {
	return Cash{Amount: amount}
}

func (Cash) Kind() Kind { return KindCash }

func (c Cash) String() string {
	return fmt.Sprintf("Cash(amount=%s)", c.Amount)
}

func (Cash) isMethod() {}

// BankTransfer is a transfer to an IBAN. The IBAN is stored uppercased
// with spaces stripped, the reference trimmed.
type BankTransfer struct {
	IBAN      string
	Reference string
	Amount    Amount
}

// NewBankTransfer validates and normalizes a bank transfer. The IBAN,
// after stripping spaces and uppercasing, must match the standard layout
// of two letters, two check digits and 11 to 30 alphanumerics.
func NewBankTransfer(iban, reference string, amount Amount) (BankTransfer, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(iban), " ", ""))

	if !ibanPattern.MatchString(normalized) {
		return BankTransfer{}, &outcome.ArgError{Op: "payment.NewBankTransfer", Field: "iban", Reason: "not a valid IBAN"}
	}
	return BankTransfer{IBAN: normalized, Reference: strings.TrimSpace(reference), Amount: amount}, nil
}

func (BankTransfer) Kind() Kind { return KindBankTransfer }

func (b BankTransfer) String() string {
	return fmt.Sprintf("BankTransfer(iban=%s, reference=%s, amount=%s)", b.IBAN, b.Reference, b.Amount)
}

func (BankTransfer) isMethod() {}

// Wallet is a payment through a wallet provider. The provider is stored
// lowercased, the handle trimmed.
type Wallet struct {
	Provider string
	Handle   string
	Amount   Amount
}

// NewWallet validates and normalizes a wallet payment. Provider and
// handle must be non-blank.
func NewWallet(provider, handle string, amount Amount) (Wallet, error) {
	trimmedProvider := strings.ToLower(strings.TrimSpace(provider))
	trimmedHandle := strings.TrimSpace(handle)

	if trimmedProvider == "" {
		return Wallet{}, &outcome.ArgError{Op: "payment.NewWallet", Field: "provider", Reason: "must not be blank"}
	}
	if trimmedHandle == "" {
		return Wallet{}, &outcome.ArgError{Op: "payment.NewWallet", Field: "handle", Reason: "must not be blank"}
	}
	return Wallet{Provider: trimmedProvider, Handle: trimmedHandle, Amount: amount}, nil
}

func (Wallet) Kind() Kind { return KindWallet }

func (w Wallet) String() string {
	return fmt.Sprintf("Wallet(provider=%s, handle=%s, amount=%s)", w.Provider, w.Handle, w.Amount)
}

func (Wallet) isMethod() {}
