// Package color models immutable RGB colors interned per channel tuple:
// equal channels always yield the same *Color, so colors compare by
// pointer and deduplicate across the process.
package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vparva/outcome/pkg/intern"
	"github.com/vparva/outcome/pkg/outcome"
)

// Color is an immutable RGB color. Instances come out of the interning
// table, so two colors with equal channels are the same pointer.
type Color struct {
	r, g, b uint8
}

var table = intern.New(func(k [3]uint8) *Color {
	return &Color{r: k[0], g: k[1], b: k[2]}
})

// RGB returns the canonical instance for the channel tuple.
func RGB(r, g, b uint8) *Color {
	return table.Get([3]uint8{r, g, b})
}

// Hex parses "#rrggbb" (case-insensitive) into the canonical instance.
// Malformed input is an expected data error.
func Hex(s string) (*Color, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) != 7 || trimmed[0] != '#' {
		return nil, &outcome.ArgError{Op: "color.Hex", Field: "s", Reason: `must look like "#rrggbb"`}
	}
	channels := make([]uint8, 3)
	for i := range channels {
		part := trimmed[1+2*i : 3+2*i]
		n, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return nil, &outcome.ArgError{Op: "color.Hex", Field: "s", Reason: fmt.Sprintf("%q is not a hex byte", part)}
		}
		channels[i] = uint8(n)
	}
	return RGB(channels[0], channels[1], channels[2]), nil
}

// MustHex is Hex panicking on invalid input, for fixtures and tests.
func MustHex(s string) *Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// R returns the red channel.
func (c *Color) R() uint8 { return c.r }

// G returns the green channel.
func (c *Color) G() uint8 { return c.g }

// B returns the blue channel.
func (c *Color) B() uint8 { return c.b }

// String renders the color as lowercase "#rrggbb".
func (c *Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// The basic palette, interned like any other color.
var (
	Black   = RGB(0x00, 0x00, 0x00)
	White   = RGB(0xff, 0xff, 0xff)
	Red     = RGB(0xff, 0x00, 0x00)
	Green   = RGB(0x00, 0xff, 0x00)
	Blue    = RGB(0x00, 0x00, 0xff)
	Yellow  = RGB(0xff, 0xff, 0x00)
	Cyan    = RGB(0x00, 0xff, 0xff)
	Magenta = RGB(0xff, 0x00, 0xff)
)

var names = map[string]*Color{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"cyan":    Cyan,
	"magenta": Magenta,
}

// Named looks up a palette color by case-insensitive name.
func Named(name string) (*Color, bool) {
	c, ok := names[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}
