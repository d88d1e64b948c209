// Package payment models a closed set of payment methods: Card, Cash,
// BankTransfer and Wallet.
//
// Every variant is an immutable comparable record built by a validating
// constructor: all field checks run first, then deterministic
// normalization (trimming, case folding, digit stripping), then the value
// is constructed. Monetary values use Amount, which parses through
// shopspring/decimal, rescales to two decimal places and stores minor
// units so two equal amounts are equal in the == sense and usable as map
// keys.
//
// Constructors report contract violations as errors wrapping
// ErrInvalidArgument. Parse is the value-based boundary: it turns an
// untrusted Record into Outcome[Method], never panicking on bad input.
//
// Key operations:
// - ParseAmount/NewAmount/MustAmount: validated two-decimal amounts
// - NewCard/NewCash/NewBankTransfer/NewWallet: validating constructors
// - Parse: Record to Outcome[Method] with value-based failures
// - Match/Describe/Kind: exhaustive dispatch over the four kinds
package payment
