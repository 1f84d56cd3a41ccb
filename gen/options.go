package gen

import (
	"fmt"
	"math"
	"math/rand"
)

// Default value range for generated sequences. Positive bounds keep every
// value drawable as a bar.
const (
	defaultLo   = 1
	defaultHi   = 100
	defaultSeed = 1
)

// genConfig is the resolved configuration of one Generate call.
type genConfig struct {
	rng *rand.Rand
	lo  int
	hi  int
	err error
}

// Option customizes Generate.
type Option func(*genConfig)

// defaultConfig returns the configuration used when no option overrides it.
func defaultConfig() genConfig {
	return genConfig{lo: defaultLo, hi: defaultHi}
}

// WithSeed seeds a fresh deterministic RNG. A zero seed means defaultSeed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		if seed == 0 {
			seed = defaultSeed
		}
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an explicit RNG across calls. Nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *genConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithRange sets the inclusive value range [lo, hi].
// lo > hi, or a range holding more than math.MaxInt values, is recorded and
// reported by Generate as ErrBadRange.
func WithRange(lo, hi int) Option {
	return func(c *genConfig) {
		if lo > hi {
			c.err = fmt.Errorf("%w: lo %d > hi %d", ErrBadRange, lo, hi)
			return
		}
		// hi-lo+1 must fit in an int for rand.Intn.
		if lo <= 0 && hi >= math.MaxInt+lo {
			c.err = fmt.Errorf("%w: [%d, %d] spans more than math.MaxInt values", ErrBadRange, lo, hi)
			return
		}
		c.lo, c.hi = lo, hi
	}
}
