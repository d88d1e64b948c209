// Package intern provides a thread-safe interning table: a map from
// canonical keys to constructed instances where equal keys always yield
// the same instance.
//
// Get is idempotent. Repeated requests with an identical key return the
// instance built on the first request, and concurrent first requests for
// one key collapse into a single builder run. The table favors read-path
// speed over lifecycle control; Reset exists for tests, not for cache
// eviction on request-critical paths.
package intern
