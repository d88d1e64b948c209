// Package retry repeats fallible operations under a backoff policy and
// reports the final result as an outcome.
//
// A Policy is configured fluently and holds configuration only, so it is
// safe to share across goroutines; each Do call builds a fresh backoff
// instance. Cancellation stops the waiting immediately, and a canceled
// outcome from the operation is never retried.
//
// Key operations:
// - NewPolicy().WithConstant/WithExponential/WithMaxRetries/WithNotify
// - Do: retry a (value, error) operation
// - DoOutcome: retry an operation that reports through outcomes
// - Permanent: mark an error as not worth retrying
package retry
