package jsonval

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vparva/outcome/pkg/outcome"
)

// Kind names one of the six JSON value kinds.
type Kind string

const (
	KindNull   = Kind("null")
	KindBool   = Kind("bool")
	KindNumber = Kind("number")
	KindString = Kind("string")
	KindArray  = Kind("array")
	KindObject = Kind("object")
)

// Value is the sealed interface over the six JSON kinds. The unexported
// render method keeps the set closed to this package.
type Value interface {
	Kind() Kind
	String() string

	render(b *strings.Builder)
}

// Null is the JSON null.
type Null struct{}

func (Null) Kind() Kind                { return KindNull }
func (Null) String() string            { return "null" }
func (Null) render(b *strings.Builder) { b.WriteString("null") }

// Bool is a JSON boolean.
type Bool bool

func (Bool) Kind() Kind       { return KindBool }
func (v Bool) String() string { return toString(v) }

func (v Bool) render(b *strings.Builder) {
	b.WriteString(strconv.FormatBool(bool(v)))
}

// Number is a JSON number, held as a float64 the way the standard decoder
// produces it.
type Number float64

func (Number) Kind() Kind       { return KindNumber }
func (v Number) String() string { return toString(v) }

func (v Number) render(b *strings.Builder) {
	b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 64))
}

// String is a JSON string.
type String string

func (String) Kind() Kind       { return KindString }
func (v String) String() string { return toString(v) }

func (v String) render(b *strings.Builder) {
	// json.Marshal of a Go string cannot fail; invalid UTF-8 is replaced.
	quoted, _ := json.Marshal(string(v))
	b.Write(quoted)
}

// Array is a JSON array. A nil element is a contract violation; null
// belongs in the tree as Null, and rendering a nil panics with an
// ErrInvalidState error.
type Array []Value

func (Array) Kind() Kind       { return KindArray }
func (v Array) String() string { return toString(v) }

func (v Array) render(b *strings.Builder) {
	b.WriteByte('[')
	for i, elem := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		if elem == nil {
			panic(nilElement(fmt.Sprintf("array index %d", i)))
		}
		elem.render(b)
	}
	b.WriteByte(']')
}

// Object is a JSON object. Rendering sorts the keys, so two structurally
// equal objects always print identically. As with Array, a nil element
// value panics on render with an ErrInvalidState error.
type Object map[string]Value

func (Object) Kind() Kind       { return KindObject }
func (v Object) String() string { return toString(v) }

func (v Object) render(b *strings.Builder) {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		String(k).render(b)
		b.WriteByte(':')
		elem := v[k]
		if elem == nil {
			panic(nilElement(fmt.Sprintf("object key %q", k)))
		}
		elem.render(b)
	}
	b.WriteByte('}')
}

func toString(v Value) string {
	var b strings.Builder
	v.render(&b)
	return b.String()
}

func nilElement(where string) error {
	return &outcome.StateError{Op: "jsonval.String", Reason: "nil value at " + where}
}

// Equal reports deep structural equality of two JSON trees. Values of
// different kinds are never equal; objects compare by key set and
// per-key values, arrays by length and element order. Nil arguments
// stand for absent trees: two nils are equal, and a nil never equals
// any value, Null included.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Object:
		bv, ok := b.(Object)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, elem := range av {
			other, present := bv[k]
			if !present || !Equal(elem, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
