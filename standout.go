package swatch

// Lightness values assigned by Standout.
const (
	standoutDark  = 0.3
	standoutLight = 0.8
)

// Standout returns a color with the same hue and saturation as hex but
// with lightness pushed to the opposite end of the scale: 0.3 for light
// inputs (lightness above 0.5) and 0.8 otherwise.
//
// Example:
//
//	dark, _ := swatch.Standout("#ffffff")  // "#4c4c4c"
//	light, _ := swatch.Standout("#000000") // "#cccccc"
func Standout(hex string) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return StandoutColor(c).Hex(), nil
}

// StandoutColor is Standout for an already parsed color.
// Channels are clamped to [0, 255] first.
func StandoutColor(c Color) Color {
	hsl := c.Clamp().HSL()
	if hsl.L > 0.5 {
		hsl.L = standoutDark
	} else {
		hsl.L = standoutLight
	}
	// HSL always yields a hue in [0, 360).
	out, _ := hsl.Color()
	return out
}
