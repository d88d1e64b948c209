// Package step provides context-aware combinators over single outcomes: the
// synchronous primitives that the pipe package lifts over channels.
//
// Every function takes a context as its first argument and skips its work
// when the incoming outcome is already Err, propagating message, cause and
// stamps unchanged.
//
// Key operations:
// - Validate/AndValidate/ValidateAll: predicate checks producing Err on violation
// - Map/FlatMap: transforms with the core recover-to-Err semantics
// - Try: adapter for (value, error) functions, cancellation-aware
// - Tee/TeeIf/DoubleTee: side effects that never change the outcome
// - Guard: fail an Ok outcome when an inspection function reports an error
// - Finally: collapse an outcome into a plain value via three handlers
package step
