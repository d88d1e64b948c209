package outcome

import "fmt"

// Map applies f to the wrapped value of an Ok outcome and wraps the result as
// Ok. A panic raised by f (or by wrapping an absent result) is recovered and
// converted into an Err carrying the panic's message. On Err the message,
// cause and stamps propagate unchanged and f is never invoked.
func Map[T, U any](o Outcome[T], f func(T) U) (out Outcome[U]) {
	if !o.ok {
		return ErrFrom[T, U](o)
	}
	defer func() {
		if p := recover(); p != nil {
			out = errFromPanic[U](p)
		}
	}()
	return Ok(f(o.value))
}

// FlatMap applies f, which itself returns an Outcome, to the wrapped value of
// an Ok outcome; f's result is returned directly without double wrapping.
// Panics inside f are recovered and converted into an Err, as in Map. On Err
// the variant propagates and f is never invoked.
func FlatMap[T, U any](o Outcome[T], f func(T) Outcome[U]) (out Outcome[U]) {
	if !o.ok {
		return ErrFrom[T, U](o)
	}
	defer func() {
		if p := recover(); p != nil {
			out = errFromPanic[U](p)
		}
	}()
	return f(o.value)
}

// Map is the same-type fluent form of the package-level Map.
func (o Outcome[T]) Map(f func(T) T) Outcome[T] {
	return Map(o, f)
}

// FlatMap is the same-type fluent form of the package-level FlatMap.
func (o Outcome[T]) FlatMap(f func(T) Outcome[T]) Outcome[T] {
	return FlatMap(o, f)
}

// OrElse returns the receiver unchanged on Ok; fallback is never invoked. On
// Err it invokes fallback and returns its result. Unlike Map and FlatMap,
// OrElse does not recover panics: a fallback is expected to return an Err
// rather than fail.
func (o Outcome[T]) OrElse(fallback func() Outcome[T]) Outcome[T] {
	if o.ok {
		return o
	}
	if fallback == nil {
		panic(&ArgError{Op: "outcome.OrElse", Field: "fallback", Reason: "fallback must not be nil"})
	}
	return fallback()
}

// MapErr transforms the diagnostic message of an Err, keeping its cause and
// stamps. Ok outcomes pass through untouched.
func (o Outcome[T]) MapErr(f func(string) string) Outcome[T] {
	if o.ok {
		return o
	}
	out := o
	out.message = f(o.message)
	return out
}

// errFromPanic turns a recovered panic value into an Err variant.
func errFromPanic[T any](p any) Outcome[T] {
	if err, ok := p.(error); ok {
		return ErrWith[T](err.Error(), err)
	}
	return Err[T](fmt.Sprintf("%v", p))
}
