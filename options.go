package fx

import "math/rand/v2"

// Rand is the random source consumed by stochastic operations (dissolve
// blending, glow noise, wave phases). *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// Option configures a single effect invocation.
//
// Example:
//
//	// Deterministic dissolve for tests
//	rng := rand.New(rand.NewPCG(1, 2))
//	out, err := blend.Image(base, top, blend.Dissolve, 0.5, fx.WithRand(rng))
type Option func(*Options)

// Options holds the resolved per-call configuration.
type Options struct {
	Rand Rand
}

// WithRand sets the random source for one invocation.
// A nil source restores the default.
func WithRand(r Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// ResolveOptions applies opts over the defaults. When no source is given,
// a fresh PCG generator is seeded for this call only, so independent calls
// never share generator state.
func ResolveOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}
