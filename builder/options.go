// SPDX-License-Identifier: MIT
// Package: lvlref/builder
//
// options.go - functional options and the resolved builder config.

package builder

import "math/rand"

// Option configures Build.
type Option func(*config)

// config is the resolved, immutable view handed to every constructor.
type config struct {
	rng    *rand.Rand // nil unless seeded
	offset int        // first vertex ID
}

func newConfig(opts ...Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithRand uses r for random constructors. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed creates a new deterministic source from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOffset shifts every generated vertex ID by base.
func WithOffset(base int) Option {
	return func(c *config) {
		c.offset = base
	}
}
