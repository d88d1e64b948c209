package jsonval

import (
	"fmt"

	"github.com/vparva/outcome/pkg/outcome"
)

// Cases holds one handler per JSON kind. Match requires the handler of
// the matched variant to be set.
type Cases[T any] struct {
	Null   func(Null) T
	Bool   func(Bool) T
	Number func(Number) T
	String func(String) T
	Array  func(Array) T
	Object func(Object) T
}

// Match dispatches a value to the handler of its kind. A missing handler
// is a contract violation and panics with an ErrInvalidState error naming
// the kind.
func Match[T any](v Value, cases Cases[T]) T {
	switch val := v.(type) {
	case Null:
		if cases.Null == nil {
			panic(missingCase(KindNull))
		}
		return cases.Null(val)
	case Bool:
		if cases.Bool == nil {
			panic(missingCase(KindBool))
		}
		return cases.Bool(val)
	case Number:
		if cases.Number == nil {
			panic(missingCase(KindNumber))
		}
		return cases.Number(val)
	case String:
		if cases.String == nil {
			panic(missingCase(KindString))
		}
		return cases.String(val)
	case Array:
		if cases.Array == nil {
			panic(missingCase(KindArray))
		}
		return cases.Array(val)
	case Object:
		if cases.Object == nil {
			panic(missingCase(KindObject))
		}
		return cases.Object(val)
	default:
		panic(&outcome.StateError{Op: "jsonval.Match", Reason: fmt.Sprintf("value %T is outside the JSON kind set", v)})
	}
}

func missingCase(k Kind) error {
	return &outcome.StateError{Op: "jsonval.Match", Reason: fmt.Sprintf("no case for kind %s", k)}
}
