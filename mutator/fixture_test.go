package mutator_test

import (
	"reflect"

	"github.com/katalvlaran/lvlfuzz/mutator"
)

// intMutator is a minimal fixture Mutator[int] used only by this
// package's combinator tests, so that mutator_test does not need to
// import primitives (which itself depends on mutator).
type intMutator struct {
	lo, hi int
}

type intStep struct{ next int }

func (m *intMutator) DefaultArbitraryStep() mutator.ArbitraryStep { return &intStep{next: m.lo} }

func (m *intMutator) ValidateValue(v *int) (mutator.Cache, bool) {
	if *v < m.lo || *v > m.hi {
		return nil, false
	}
	return struct{}{}, true
}

func (m *intMutator) DefaultMutationStep(_ *int, _ mutator.Cache) mutator.MutationStep {
	return &intStep{next: m.lo}
}

func (m *intMutator) MaxComplexity() float64                  { return 8 }
func (m *intMutator) MinComplexity() float64                  { return 8 }
func (m *intMutator) GlobalSearchSpaceComplexity() float64     { return 8 }
func (m *intMutator) Complexity(_ *int, _ mutator.Cache) float64 { return 8 }

func (m *intMutator) OrderedArbitrary(step mutator.ArbitraryStep, _ float64) (int, float64, bool) {
	s := step.(*intStep)
	if s.next > m.hi {
		return 0, 0, false
	}
	v := s.next
	s.next++
	return v, 8, true
}

func (m *intMutator) RandomArbitrary(_ float64) (int, float64) {
	return m.lo, 8
}

func (m *intMutator) OrderedMutate(v *int, _ mutator.Cache, step mutator.MutationStep, _ float64) (mutator.UnmutateToken, float64, bool) {
	s := step.(*intStep)
	if s.next > m.hi {
		return nil, 0, false
	}
	token := *v
	*v = s.next
	s.next++
	return token, 8, true
}

func (m *intMutator) RandomMutate(v *int, _ mutator.Cache, _ float64) (mutator.UnmutateToken, float64) {
	token := *v
	*v = m.hi
	return token, 8
}

func (m *intMutator) Unmutate(v *int, _ mutator.Cache, token mutator.UnmutateToken) {
	*v = token.(int)
}

func (m *intMutator) Lens(_ *int, _ mutator.Cache, _ mutator.LensPath) (any, bool) { return nil, false }

func (m *intMutator) AllPaths(_ *int, _ mutator.Cache, _ func(reflect.Type, mutator.LensPath, float64)) {
}

func (m *intMutator) CrossoverMutate(v *int, c mutator.Cache, _ mutator.SubValueProvider, maxCplx float64) (mutator.UnmutateToken, float64) {
	return m.RandomMutate(v, c, maxCplx)
}
