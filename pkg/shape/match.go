package shape

import (
	"fmt"

	"github.com/vparva/outcome/pkg/outcome"
)

// Cases holds one handler per shape kind. Match requires the handler of
// the matched variant to be set.
type Cases[T any] struct {
	Circle    func(Circle) T
	Rectangle func(Rectangle) T
	Triangle  func(Triangle) T
}

// Match dispatches a shape to the handler of its variant. A missing
// handler is a contract violation and panics with an ErrInvalidState
// error naming the kind.
func Match[T any](s Shape, cases Cases[T]) T {
	switch v := s.(type) {
	case Circle:
		if cases.Circle == nil {
			panic(missingCase(KindCircle))
		}
		return cases.Circle(v)
	case Rectangle:
		if cases.Rectangle == nil {
			panic(missingCase(KindRectangle))
		}
		return cases.Rectangle(v)
	case Triangle:
		if cases.Triangle == nil {
			panic(missingCase(KindTriangle))
		}
		return cases.Triangle(v)
	default:
		panic(&outcome.StateError{Op: "shape.Match", Reason: fmt.Sprintf("value %T is outside the shape set", s)})
	}
}

func missingCase(k Kind) error {
	return &outcome.StateError{Op: "shape.Match", Reason: fmt.Sprintf("no case for kind %s", k)}
}

// Describe renders a one-line human description of any shape.
func Describe(s Shape) string {
	return Match(s, Cases[string]{
		Circle: func(c Circle) string {
			return fmt.Sprintf("circle of radius %g", c.Radius)
		},
		Rectangle: func(r Rectangle) string {
			return fmt.Sprintf("%g by %g rectangle", r.Width, r.Height)
		},
		Triangle: func(t Triangle) string {
			return fmt.Sprintf("triangle with sides %g, %g and %g", t.A, t.B, t.C)
		},
	})
}
