// File: options.go — functional options and resolved configuration for
// the builder package.
//
// Option constructors validate and panic on meaningless inputs; the
// constructors they configure (Cycle, Star, Complete, RandomSparse) never
// panic themselves — they return sentinel errors instead.
package builder

import (
	"math/rand"
)

// builderConfig holds the resolved, immutable settings a Constructor reads:
// an optional RNG source, a vertex ID scheme, and an edge weight generator.
// Not safe for concurrent mutation; newBuilderConfig produces a fresh value
// per BuildGraph call.
type builderConfig struct {
	rng      *rand.Rand
	idFn     IDFn
	weightFn WeightFn
}

// BuilderOption mutates a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// newBuilderConfig resolves defaults (nil RNG, DefaultIDFn, DefaultWeightFn)
// then applies opts in order; later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the deterministic vertex ID generator idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on
// nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new seeded *rand.Rand for reproducible randomness.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}
