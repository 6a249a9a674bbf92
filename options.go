package swatch

import "math/rand/v2"

// GeneratorOption configures a Generator during creation.
//
// Example:
//
//	// Reproducible sequence
//	g := swatch.NewGenerator(swatch.WithRand(rand.New(rand.NewPCG(1, 2))))
type GeneratorOption func(*generatorOptions)

// generatorOptions holds optional configuration for Generator creation.
type generatorOptions struct {
	rnd   *rand.Rand
	start int
}

// defaultGeneratorOptions returns the default generator options.
func defaultGeneratorOptions() generatorOptions {
	return generatorOptions{
		rnd:   nil, // top-level math/rand/v2 functions
		start: 0,
	}
}

// WithRand sets the source used for saturation and lightness.
// The Generator serializes access, so r need not be safe for concurrent use.
// A nil r selects the unseeded package-level source.
func WithRand(r *rand.Rand) GeneratorOption {
	return func(o *generatorOptions) {
		o.rnd = r
	}
}

// WithStart sets the initial hue counter. It is reduced modulo 360.
// The first generated color uses start+137.
func WithStart(hue int) GeneratorOption {
	return func(o *generatorOptions) {
		o.start = hue
	}
}
