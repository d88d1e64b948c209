// Package pipe runs outcome transformations concurrently over channels.
//
// A pipeline is built from three layers: sources feed values into a channel
// of outcomes, stages transform single outcomes behind a channel so workers
// can race them against cancellation, and Run/Through fan stages out over a
// configurable number of workers. Finally folds the stream back into plain
// values.
//
// Cancellation is cooperative. Every send and receive races the context,
// and the *With variants accept handlers that observe inputs abandoned
// mid-flight. The drain helpers turn those handlers into a policy: forward
// canceled outcomes for everything still queued, or drop it silently.
//
// Key operations:
// - Source/SourceSlice/SourceOutcomes: feed a pipeline
// - Validate/Then/Map/Try/Tee/Guard and friends: build stages from step functions
// - Run/RunWith: fan a same-type stage out over workers
// - Through/ThroughWith: fan out a stage that changes the value type
// - Finally/FinallyWith: collapse the outcome stream into plain values
// - Collect/First: gather pipeline output
// - WithWorkers/WithDrainRemaining: per-context tuning
package pipe
