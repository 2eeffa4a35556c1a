// options.go — functional options for primitives constructors.
//
// This follows lvlath/builder's BuilderOption pattern: an option is a
// function mutating a private config struct, applied in order, later
// options override earlier ones, and options never panic at call time
// (only constructors that consume the resolved config may panic, and
// only for parameters that describe an impossible domain).
package primitives

import "math/rand"

// intRangeConfig holds the configurable parameters for
// IntWithinRangeMutator constructors.
type intRangeConfig struct {
	rng *rand.Rand
}

func newIntRangeConfig() *intRangeConfig {
	return &intRangeConfig{rng: rand.New(rand.NewSource(1))}
}

// IntRangeOption customizes an IntWithinRangeMutator at construction.
type IntRangeOption func(cfg *intRangeConfig)

// WithRand injects a caller-owned random source, letting tests and
// harnesses make RandomArbitrary/RandomMutate reproducible. The default
// is a fixed-seed *rand.Rand so that an IntWithinRangeMutator built
// without options is still deterministic across runs of the same
// binary, which is convenient for golden-output tests; pass your own
// seeded source for anything that must vary run to run.
func WithRand(rng *rand.Rand) IntRangeOption {
	return func(cfg *intRangeConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// vectorConfig holds the configurable parameters for VectorMutator.
type vectorConfig struct {
	minLen int
	maxLen int
	rng    *rand.Rand
}

func newVectorConfig() *vectorConfig {
	return &vectorConfig{minLen: 0, maxLen: 256, rng: rand.New(rand.NewSource(1))}
}

// VectorOption customizes a VectorMutator at construction.
type VectorOption func(cfg *vectorConfig)

// WithMinLength sets the minimum length a VectorMutator will ever
// produce or shrink to.
func WithMinLength(n int) VectorOption {
	return func(cfg *vectorConfig) { cfg.minLen = n }
}

// WithMaxLength sets the maximum length a VectorMutator will ever grow
// to or generate.
func WithMaxLength(n int) VectorOption {
	return func(cfg *vectorConfig) { cfg.maxLen = n }
}

// WithVectorRand injects a caller-owned random source for a
// VectorMutator's random insert/remove/swap decisions.
func WithVectorRand(rng *rand.Rand) VectorOption {
	return func(cfg *vectorConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}
