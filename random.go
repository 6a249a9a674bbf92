package swatch

import (
	"math/rand/v2"
	"sync"
)

// hueStep is the hue advance per generated color, in degrees.
// It is coprime to 360, so all 360 integer hues are visited before
// the sequence repeats.
const hueStep = 137

// Saturation and lightness ranges for generated colors: [min, min+span).
const (
	randSatMin   = 0.3
	randLightMin = 0.5
	randSpan     = 0.2
)

// Generator produces a sequence of colors whose successive hues are
// hueStep degrees apart, with randomized saturation and lightness.
// A Generator is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	hue int
	rnd *rand.Rand
}

// NewGenerator creates a Generator with its hue counter at 0.
func NewGenerator(opts ...GeneratorOption) *Generator {
	o := defaultGeneratorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{
		hue: wrapHue(o.start),
		rnd: o.rnd,
	}
}

// Next advances the hue counter and returns the new color as "#rrggbb".
func (g *Generator) Next() string {
	return g.NextColor().Hex()
}

// NextColor advances the hue counter and returns the new color.
func (g *Generator) NextColor() Color {
	g.mu.Lock()
	g.hue = wrapHue(g.hue + hueStep)
	h := g.hue
	s := randSatMin + randSpan*g.uniform()
	l := randLightMin + randSpan*g.uniform()
	g.mu.Unlock()

	Logger().Debug("swatch: generated color", "h", h, "s", s, "l", l)

	// h is in [0, 360) and s, l are within [0, 1].
	c, _ := FromHSL(float64(h), s, l)
	return c
}

// uniform must be called with g.mu held.
func (g *Generator) uniform() float64 {
	if g.rnd == nil {
		return rand.Float64()
	}
	return g.rnd.Float64()
}

func wrapHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

// defaultGenerator backs Random. Its hue counter lives for the process.
var defaultGenerator = NewGenerator()

// Random returns a new color as "#rrggbb" from the package-level
// generator. Successive calls are 137 degrees of hue apart; saturation
// is drawn from [0.3, 0.5) and lightness from [0.5, 0.7).
func Random() string {
	return defaultGenerator.Next()
}
