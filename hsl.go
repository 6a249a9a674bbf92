package swatch

import (
	"fmt"
	"math"
)

// grayChroma is the chroma below which a color is treated as gray.
const grayChroma = 0.001

// HSL is a color in the hue, saturation, lightness model.
// H is in degrees [0, 360), S and L are in [0, 1].
type HSL struct {
	H, S, L float64
}

// HSL converts the color to hue, saturation and lightness.
// Saturation is chroma divided by the largest channel. Near-gray colors
// (chroma below 0.001) and black report hue 0 and saturation 0.
// Hue is wrapped into [0, 360) regardless of which channel is largest.
func (c Color) HSL() HSL {
	r := c.R / 255
	g := c.G / 255
	b := c.B / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	chroma := maxC - minC
	l := 0.5 * (maxC + minC)

	if chroma < grayChroma {
		return HSL{H: 0, S: 0, L: l}
	}

	var h float64
	switch maxC {
	case r:
		h = math.Mod((g-b)/chroma, 6)
	case g:
		h = (b-r)/chroma + 2
	default:
		h = (r-g)/chroma + 4
	}

	var s float64
	if maxC > 0 {
		s = chroma / maxC
	}

	return HSL{H: NormalizeHue(h * 60), S: s, L: l}
}

// FromHSL creates a color from hue, saturation and lightness.
// h must be in [0, 360); otherwise ErrOutOfRange is returned. Any s and
// l are accepted, and the resulting channels are neither rounded nor
// clamped.
func FromHSL(h, s, l float64) (Color, error) {
	if err := checkHue(h); err != nil {
		Logger().Debug("swatch: rejected HSL input", "h", h, "s", s, "l", l, "err", err)
		return Color{}, err
	}

	hdash := h / 60
	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(hdash, 2)-1))

	var r, g, b float64
	switch {
	case hdash < 1:
		r, g = chroma, x
	case hdash < 2:
		r, g = x, chroma
	case hdash < 3:
		g, b = chroma, x
	case hdash < 4:
		g, b = x, chroma
	case hdash < 5:
		r, b = x, chroma
	default:
		r, b = chroma, x
	}

	m := l - 0.5*chroma
	return New((r+m)*255, (g+m)*255, (b+m)*255), nil
}

// Color converts the HSL value to RGB. See FromHSL.
func (hsl HSL) Color() (Color, error) {
	return FromHSL(hsl.H, hsl.S, hsl.L)
}

// NormalizeHue wraps a hue in degrees into [0, 360).
// NaN and infinities yield NaN.
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds up to exactly 360.
	if h >= 360 {
		h = 0
	}
	return h
}

func checkHue(h float64) error {
	if !(h >= 0 && h < 360) {
		return fmt.Errorf("%w: hue %v not in [0, 360)", ErrOutOfRange, h)
	}
	return nil
}
