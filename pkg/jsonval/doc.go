// Package jsonval models JSON documents as a closed set of six value
// kinds: Null, Bool, Number, String, Array and Object.
//
// The set is sealed, rendering is deterministic (object keys are sorted),
// and Equal compares trees structurally. Parse decodes through the
// standard library and reports malformed input as an error value;
// ParseOutcome is the same boundary expressed as an Outcome.
package jsonval
