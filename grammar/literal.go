package grammar

import (
	"math/rand"
	"reflect"

	"github.com/katalvlaran/lvlfuzz/mutator"
)

// runeRangesMutator mutates a rune constrained to the union of a set of
// inclusive ranges. A single range delegates to
// primitives.IntWithinRangeMutator[rune] at the compile.go call site;
// this type exists for the general, possibly-disjoint-ranges case a
// character class like [a-z0-9] produces, where the flattened domain is
// walked linearly rather than via IntWithinRangeMutator's binary-search
// schedule — disjoint unions rarely have more than a handful of ranges,
// so the ordering guarantee is not worth the added bookkeeping here.
type runeRangesMutator struct {
	ranges []Range
	sizes  []uint64
	total  uint64
	rng    *rand.Rand
}

func newRuneRangesMutator(ranges []Range) *runeRangesMutator {
	sizes := make([]uint64, len(ranges))
	var total uint64
	for i, r := range ranges {
		n := uint64(r.Hi-r.Lo) + 1
		sizes[i] = n
		total += n
	}
	return &runeRangesMutator{ranges: ranges, sizes: sizes, total: total, rng: rand.New(rand.NewSource(1))}
}

func (m *runeRangesMutator) offsetToRune(offset uint64) rune {
	for i, n := range m.sizes {
		if offset < n {
			return m.ranges[i].Lo + rune(offset)
		}
		offset -= n
	}
	panic("grammar: rune offset out of range")
}

func (m *runeRangesMutator) runeToOffset(r rune) (uint64, bool) {
	var base uint64
	for i, rg := range m.ranges {
		if r >= rg.Lo && r <= rg.Hi {
			return base + uint64(r-rg.Lo), true
		}
		base += m.sizes[i]
	}
	return 0, false
}

type runeArbStep struct{ next uint64 }

func (m *runeRangesMutator) DefaultArbitraryStep() mutator.ArbitraryStep { return &runeArbStep{} }

func (m *runeRangesMutator) ValidateValue(value *rune) (mutator.Cache, bool) {
	_, ok := m.runeToOffset(*value)
	return struct{}{}, ok
}

func (m *runeRangesMutator) DefaultMutationStep(_ *rune, _ mutator.Cache) mutator.MutationStep {
	return &runeArbStep{}
}

func (m *runeRangesMutator) MaxComplexity() float64              { return 32 }
func (m *runeRangesMutator) MinComplexity() float64              { return 32 }
func (m *runeRangesMutator) GlobalSearchSpaceComplexity() float64 { return 32 }
func (m *runeRangesMutator) Complexity(_ *rune, _ mutator.Cache) float64 { return 32 }

func (m *runeRangesMutator) OrderedArbitrary(step mutator.ArbitraryStep, maxCplx float64) (rune, float64, bool) {
	if maxCplx < 32 || m.total == 0 {
		return 0, 0, false
	}
	s := step.(*runeArbStep)
	if s.next >= m.total {
		return 0, 0, false
	}
	r := m.offsetToRune(s.next)
	s.next++
	return r, 32, true
}

func (m *runeRangesMutator) RandomArbitrary(_ float64) (rune, float64) {
	offset := uint64(0)
	if m.total > 0 {
		offset = m.rng.Uint64() % m.total
	}
	return m.offsetToRune(offset), 32
}

func (m *runeRangesMutator) OrderedMutate(value *rune, _ mutator.Cache, step mutator.MutationStep, maxCplx float64) (mutator.UnmutateToken, float64, bool) {
	if maxCplx < 32 {
		return nil, 0, false
	}
	s := step.(*runeArbStep)
	if s.next >= m.total {
		return nil, 0, false
	}
	token := *value
	*value = m.offsetToRune(s.next)
	s.next++
	return token, 32, true
}

func (m *runeRangesMutator) RandomMutate(value *rune, _ mutator.Cache, maxCplx float64) (mutator.UnmutateToken, float64) {
	token := *value
	newValue, cplx := m.RandomArbitrary(maxCplx)
	*value = newValue
	return token, cplx
}

func (m *runeRangesMutator) Unmutate(value *rune, _ mutator.Cache, token mutator.UnmutateToken) {
	*value = token.(rune)
}

func (m *runeRangesMutator) Lens(_ *rune, _ mutator.Cache, _ mutator.LensPath) (any, bool) {
	return nil, false
}

func (m *runeRangesMutator) AllPaths(_ *rune, _ mutator.Cache, _ func(reflect.Type, mutator.LensPath, float64)) {
}

func (m *runeRangesMutator) CrossoverMutate(value *rune, cache mutator.Cache, _ mutator.SubValueProvider, maxCplx float64) (mutator.UnmutateToken, float64) {
	return m.RandomMutate(value, cache, maxCplx)
}
