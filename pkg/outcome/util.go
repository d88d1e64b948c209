package outcome

import (
	"context"
	"errors"
	"reflect"
)

// IsAbsent reports whether v is nil or a nil pointer, interface, map, slice,
// channel or function. Value kinds (ints, strings, structs, arrays) are never
// absent, including their zero values.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// JoinedErrors unwraps an error produced by errors.Join into its parts. A nil
// error yields an empty slice; a plain error yields itself.
func JoinedErrors(err error) []error {
	if err == nil {
		return []error{}
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// IsCancellation reports whether err stems from context cancellation or a
// deadline.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
