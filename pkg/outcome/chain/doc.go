// Package chain provides a fluent wrapper over outcomes for building
// linear pipelines without intermediate variables.
//
// A Chain carries a context and the current outcome. Methods keep the value
// type fixed; the package-level ThenTo, MapTo, TryTo and FinallyTo functions
// cross type boundaries, since Go methods cannot introduce type parameters.
//
// Key operations:
// - Start/FromValue: open a chain from an outcome or a raw value
// - Then/ThenTry/Map/Validate/Guard: forward steps, skipped after a failure
// - Ensure: side effects on either track, outcome unchanged
// - Or/And/OrElse: combine alternative and required chains
// - RepeatUntil/While: loop a step while the outcome stays Ok
// - Outcome/Finally: leave the fluent world
package chain
