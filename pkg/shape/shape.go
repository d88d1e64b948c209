package shape

import (
	"fmt"
	"math"

	"github.com/vparva/outcome/pkg/outcome"
)

// Kind identifies one variant of the shape set.
type Kind uint8

const (
	KindCircle Kind = iota
	KindRectangle
	KindTriangle
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	case KindTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Shape is the sealed interface over the three figure variants. The
// unexported marker keeps the set closed to this package.
type Shape interface {
	Kind() Kind
	Area() float64
	Perimeter() float64
	String() string

	isShape()
}

// Circle is a figure with a positive radius.
type Circle struct {
	Radius float64
}

// NewCircle validates the radius and builds a Circle. The radius must be
// positive and finite.
func NewCircle(radius float64) (Circle, error) {
	if err := checkDimension("shape.NewCircle", "radius", radius); err != nil {
		return Circle{}, err
	}
	return Circle{Radius: radius}, nil
}

// MustCircle is NewCircle panicking on invalid input.
func MustCircle(radius float64) Circle {
	c, err := NewCircle(radius)
	if err != nil {
		panic(err)
	}
	return c
}

func (Circle) Kind() Kind           { return KindCircle }
func (c Circle) Area() float64      { return math.Pi * c.Radius * c.Radius }
func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.Radius }
func (c Circle) String() string     { return fmt.Sprintf("Circle(r=%g)", c.Radius) }
func (Circle) isShape()             {}

// Rectangle is a figure with positive width and height.
type Rectangle struct {
	Width  float64
	Height float64
}

// NewRectangle validates both dimensions and builds a Rectangle.
func NewRectangle(width, height float64) (Rectangle, error) {
	if err := checkDimension("shape.NewRectangle", "width", width); err != nil {
		return Rectangle{}, err
	}
	if err := checkDimension("shape.NewRectangle", "height", height); err != nil {
		return Rectangle{}, err
	}
	return Rectangle{Width: width, Height: height}, nil
}

// MustRectangle is NewRectangle panicking on invalid input.
func MustRectangle(width, height float64) Rectangle {
	r, err := NewRectangle(width, height)
	if err != nil {
		panic(err)
	}
	return r
}

func (Rectangle) Kind() Kind           { return KindRectangle }
func (r Rectangle) Area() float64      { return r.Width * r.Height }
func (r Rectangle) Perimeter() float64 { return 2 * (r.Width + r.Height) }
func (r Rectangle) String() string     { return fmt.Sprintf("Rectangle(w=%g, h=%g)", r.Width, r.Height) }
func (Rectangle) isShape()             {}

// Triangle is a figure with three positive sides satisfying the triangle
// inequality.
type Triangle struct {
	A float64
	B float64
	C float64
}

// NewTriangle validates the sides and builds a Triangle. Each side must be
// positive and finite, and each side must be shorter than the sum of the
// other two.
func NewTriangle(a, b, c float64) (Triangle, error) {
	if err := checkDimension("shape.NewTriangle", "a", a); err != nil {
		return Triangle{}, err
	}
	if err := checkDimension("shape.NewTriangle", "b", b); err != nil {
		return Triangle{}, err
	}
	if err := checkDimension("shape.NewTriangle", "c", c); err != nil {
		return Triangle{}, err
	}
	if a+b <= c || a+c <= b || b+c <= a {
		return Triangle{}, &outcome.ArgError{Op: "shape.NewTriangle", Field: "sides", Reason: "sides violate the triangle inequality"}
	}
	return Triangle{A: a, B: b, C: c}, nil
}

// MustTriangle is NewTriangle panicking on invalid input.
func MustTriangle(a, b, c float64) Triangle {
	t, err := NewTriangle(a, b, c)
	if err != nil {
		panic(err)
	}
	return t
}

func (Triangle) Kind() Kind { return KindTriangle }

// Area uses Heron's formula.
func (t Triangle) Area() float64 {
	s := (t.A + t.B + t.C) / 2
	return math.Sqrt(s * (s - t.A) * (s - t.B) * (s - t.C))
}

func (t Triangle) Perimeter() float64 { return t.A + t.B + t.C }
func (t Triangle) String() string     { return fmt.Sprintf("Triangle(a=%g, b=%g, c=%g)", t.A, t.B, t.C) }
func (Triangle) isShape()             {}

func checkDimension(op, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &outcome.ArgError{Op: op, Field: field, Reason: "must be finite"}
	}
	if v <= 0 {
		return &outcome.ArgError{Op: op, Field: field, Reason: "must be positive"}
	}
	return nil
}
