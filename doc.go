// Package swatch provides an RGB color type with conversions to and from
// HSL and "#rrggbb" hex strings.
//
// # Overview
//
// A [Color] holds three float64 channels nominally in [0, 255]. Channels
// are stored verbatim; only hex formatting and the [image/color.Color]
// conversion clamp them. All conversions return new values.
//
// # Quick Start
//
//	import "github.com/gogpu/swatch"
//
//	c, err := swatch.ParseHex("#3498db")
//	if err != nil {
//	    return err
//	}
//	hsl := c.HSL() // {H:204.07 S:0.76 L:0.53}
//
//	accent, err := swatch.FromHSL(hsl.H, hsl.S, 0.3)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(accent.Hex())
//
// [FromHSL] does not round, and hex formatting truncates, so a color
// converted to HSL and back may differ from the input by one unit per
// channel in its hex form.
//
// # Derived colors
//
// [Standout] keeps hue and saturation and moves lightness to 0.3 or 0.8,
// whichever is further from the input. [Random] walks the hue circle in
// 137 degree steps with randomized saturation and lightness, so
// consecutive colors never share a similar hue. Use [NewGenerator] for an
// independent or reproducible sequence.
//
// # Errors
//
// [ParseHex] returns [ErrInvalidFormat] for anything other than '#'
// followed by six hex digits. [FromHSL] returns [ErrOutOfRange] when hue
// is outside [0, 360) or saturation or lightness is outside [0, 1]; use
// [NormalizeHue] to wrap arbitrary hues first.
//
// # Logging
//
// swatch is silent by default. See [SetLogger].
package swatch
