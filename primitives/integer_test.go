package primitives_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfuzz/primitives"
)

// S1: a fresh ArbitraryStep over [10,12] yields exactly the three
// values in that range, each at complexity 8.0 (the type's bit
// width), then the stream reports exhausted.
func TestIntWithinRangeMutatorOrderedArbitraryScenarioS1(t *testing.T) {
	m := primitives.NewIntWithinRangeMutator[uint8](10, 12)
	step := m.DefaultArbitraryStep()

	seen := make(map[uint8]bool)
	for i := 0; i < 3; i++ {
		v, cplx, ok := m.OrderedArbitrary(step, m.MaxComplexity())
		require.True(t, ok, "draw %d should succeed", i)
		require.Equal(t, 8.0, cplx)
		require.GreaterOrEqual(t, v, uint8(10))
		require.LessOrEqual(t, v, uint8(12))
		seen[v] = true
	}
	require.Len(t, seen, 3, "all three values in [10,12] must be produced exactly once")

	_, _, ok := m.OrderedArbitrary(step, m.MaxComplexity())
	require.False(t, ok, "the stream must report exhausted after the range is covered")
}

func TestIntWithinRangeMutatorRejectsInsufficientBudget(t *testing.T) {
	m := primitives.NewIntWithinRangeMutator[uint8](10, 12)
	step := m.DefaultArbitraryStep()

	_, _, ok := m.OrderedArbitrary(step, 4)
	require.False(t, ok, "a budget below the type's bit width can never be met")
}

func TestIntWithinRangeMutatorOrderedMutateRoundTrip(t *testing.T) {
	m := primitives.NewIntWithinRangeMutator[uint8](0, 255)
	var v uint8 = 42
	cache, ok := m.ValidateValue(&v)
	require.True(t, ok)

	step := m.DefaultMutationStep(&v, cache)
	token, _, ok := m.OrderedMutate(&v, cache, step, m.MaxComplexity())
	require.True(t, ok)
	require.NotEqual(t, uint8(42), v)

	m.Unmutate(&v, cache, token)
	require.Equal(t, uint8(42), v)
}

func TestIntWithinRangeMutatorConstructorPanicsOnInvertedRange(t *testing.T) {
	require.Panics(t, func() {
		primitives.NewIntWithinRangeMutator[uint8](12, 10)
	})
}
