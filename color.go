package swatch

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// Sentinel errors returned by the parsing and conversion functions.
var (
	// ErrInvalidFormat is returned when a hex string is not '#' followed
	// by exactly six hexadecimal digits.
	ErrInvalidFormat = errors.New("swatch: invalid hex color format")

	// ErrOutOfRange is returned when an HSL component lies outside its domain.
	ErrOutOfRange = errors.New("swatch: value out of range")
)

// Color represents an RGB color.
// Each channel is nominally in the range [0, 255]. Values are stored
// verbatim and may be fractional or out of range; only Hex and the
// color.Color conversion clamp them.
type Color struct {
	R, G, B float64
}

// New creates a color from RGB channels without clamping or rounding.
func New(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors
var (
	Black = New(0, 0, 0)
	White = New(255, 255, 255)
	Red   = New(255, 0, 0)
	Green = New(0, 255, 0)
	Blue  = New(0, 0, 255)
)

// Hex formats the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Clamp returns the color with each channel clamped to [0, 255].
// Fractions are kept; NaN becomes 0.
func (c Color) Clamp() Color {
	return New(clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// RGBA implements the standard color.Color interface.
// The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: 0xff,
	}.RGBA()
}

// FromColor converts a standard color.Color to Color.
// Alpha is discarded after un-premultiplying.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return New(float64(n.R), float64(n.G), float64(n.B))
}

// RGBToHex formats three channels as a lowercase "#rrggbb" string.
// Each channel is clamped to [0, 255] and truncated to an integer;
// NaN is treated as 0.
func RGBToHex(r, g, b float64) string {
	v := uint32(channel8(r))<<16 | uint32(channel8(g))<<8 | uint32(channel8(b))
	s := strconv.FormatUint(uint64(v), 16)
	return "#" + "000000"[len(s):] + s
}

// ParseHex parses a "#rrggbb" string. Both upper and lower case
// digits are accepted. Any other shape returns ErrInvalidFormat.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	v, ok := parseHex(s[1:])
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return New(float64(v>>16&0xff), float64(v>>8&0xff), float64(v&0xff)), nil
}

// parseHex decodes a string of hex digits.
func parseHex(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}

// channel8 clamps a channel to [0, 255] and truncates it to a byte.
func channel8(x float64) uint8 {
	return uint8(clampChannel(x))
}

func clampChannel(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return clamp255(x)
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
