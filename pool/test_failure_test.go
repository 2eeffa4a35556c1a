package pool_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfuzz/pool"
	"github.com/katalvlaran/lvlfuzz/sensor"
)

func TestTestFailurePoolPassingRunIsNotInteresting(t *testing.T) {
	p := pool.NewTestFailurePool("failures", nil)
	deltas := p.Process(1, nil, 10.0)
	require.Empty(t, deltas)
}

func TestTestFailurePoolNewClassIsAlwaysInteresting(t *testing.T) {
	p := pool.NewTestFailurePool("failures", nil)
	deltas := p.Process(1, &sensor.TestFailure{ID: 1, Display: "panic: boom"}, 10.0)
	require.Len(t, deltas, 1)
	require.True(t, deltas[0].Add)

	ranked := p.RankedTestCases()
	require.Len(t, ranked, 1)
	require.Equal(t, pool.PoolStorageIndex(1), ranked[0].Index)
}

// P9: within each failure class, tiers strictly decrease in complexity.
func TestTestFailurePoolMonotonicTiers(t *testing.T) {
	p := pool.NewTestFailurePool("failures", nil)
	f := &sensor.TestFailure{ID: 1, Display: "panic: boom"}

	p.Process(1, f, 10.0)
	deltas := p.Process(2, f, 5.0)
	require.Len(t, deltas, 1, "a strictly smaller complexity for a known class is interesting")

	ranked := p.RankedTestCases()
	require.Len(t, ranked, 1)
	require.Equal(t, pool.PoolStorageIndex(2), ranked[0].Index, "ranked test cases come from the least-complex tier")
}

func TestTestFailurePoolIgnoresLargerComplexity(t *testing.T) {
	p := pool.NewTestFailurePool("failures", nil)
	f := &sensor.TestFailure{ID: 1, Display: "panic: boom"}

	p.Process(1, f, 5.0)
	deltas := p.Process(2, f, 10.0)
	require.Empty(t, deltas)

	ranked := p.RankedTestCases()
	require.Len(t, ranked, 1)
	require.Equal(t, pool.PoolStorageIndex(1), ranked[0].Index)
}

// The tail tier caps at N=8 inputs.
func TestTestFailurePoolCapsTierAtEight(t *testing.T) {
	p := pool.NewTestFailurePool("failures", nil)

	for i := 0; i < 10; i++ {
		f := &sensor.TestFailure{ID: 1, Display: distinctDisplay(i)}
		p.Process(pool.PoolStorageIndex(i), f, 5.0)
	}

	ranked := p.RankedTestCases()
	require.Len(t, ranked, 8, "the tier caps at N=8 distinct-display reproducers")
}

// S5: class 1 accumulates tiers [{10.0,[a]},{7.5,[b,c]}], then nine
// more reproducers at 7.5 cap the second tier at 8 total.
func TestTestFailurePoolScenarioS5(t *testing.T) {
	p := pool.NewTestFailurePool("failures", nil)
	f := &sensor.TestFailure{ID: 1, Display: "panic: boom"}

	deltas := p.Process(pool.PoolStorageIndex(0), f, 10.0)
	require.Len(t, deltas, 1, "input a starts class 1's first tier")

	deltas = p.Process(pool.PoolStorageIndex(1), f, 7.5)
	require.Len(t, deltas, 1, "input b opens a strictly smaller tier")

	deltas = p.Process(pool.PoolStorageIndex(2), f, 7.5)
	require.Len(t, deltas, 1, "input c joins b's tier at the same complexity")

	ranked := p.RankedTestCases()
	require.Len(t, ranked, 2, "the 7.5 tier holds b and c so far")

	for i := 0; i < 9; i++ {
		p.Process(pool.PoolStorageIndex(3+i), &sensor.TestFailure{ID: 1, Display: distinctDisplay(i)}, 7.5)
	}

	ranked = p.RankedTestCases()
	require.Len(t, ranked, 8, "the second tier caps at N=8 total reproducers")
}

func distinctDisplay(i int) string {
	return "panic: distinct-" + string(rune('a'+i))
}
