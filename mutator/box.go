package mutator

import "reflect"

// BoxMutator is a transparent pass-through over an inner Mutator[T],
// exposing a Mutator[*T]. It adds indirection for ownership purposes
// only (so that, for example, a RecursiveMutator can close a cycle
// through an explicit allocation boundary); every contract is forwarded
// unchanged to the inner mutator.
type BoxMutator[T any] struct {
	Inner Mutator[T]
}

// NewBoxMutator wraps inner in a BoxMutator.
func NewBoxMutator[T any](inner Mutator[T]) *BoxMutator[T] {
	return &BoxMutator[T]{Inner: inner}
}

func (m *BoxMutator[T]) DefaultArbitraryStep() ArbitraryStep {
	return m.Inner.DefaultArbitraryStep()
}

func (m *BoxMutator[T]) ValidateValue(value **T) (Cache, bool) {
	return m.Inner.ValidateValue(*value)
}

func (m *BoxMutator[T]) DefaultMutationStep(value **T, cache Cache) MutationStep {
	return m.Inner.DefaultMutationStep(*value, cache)
}

func (m *BoxMutator[T]) MaxComplexity() float64 { return m.Inner.MaxComplexity() }
func (m *BoxMutator[T]) MinComplexity() float64 { return m.Inner.MinComplexity() }
func (m *BoxMutator[T]) GlobalSearchSpaceComplexity() float64 {
	return m.Inner.GlobalSearchSpaceComplexity()
}

func (m *BoxMutator[T]) Complexity(value **T, cache Cache) float64 {
	return m.Inner.Complexity(*value, cache)
}

func (m *BoxMutator[T]) OrderedArbitrary(step ArbitraryStep, maxCplx float64) (*T, float64, bool) {
	value, cplx, ok := m.Inner.OrderedArbitrary(step, maxCplx)
	if !ok {
		return nil, 0, false
	}
	return &value, cplx, true
}

func (m *BoxMutator[T]) RandomArbitrary(maxCplx float64) (*T, float64) {
	value, cplx := m.Inner.RandomArbitrary(maxCplx)
	return &value, cplx
}

func (m *BoxMutator[T]) OrderedMutate(value **T, cache Cache, step MutationStep, maxCplx float64) (UnmutateToken, float64, bool) {
	return m.Inner.OrderedMutate(*value, cache, step, maxCplx)
}

func (m *BoxMutator[T]) RandomMutate(value **T, cache Cache, maxCplx float64) (UnmutateToken, float64) {
	return m.Inner.RandomMutate(*value, cache, maxCplx)
}

func (m *BoxMutator[T]) Unmutate(value **T, cache Cache, token UnmutateToken) {
	m.Inner.Unmutate(*value, cache, token)
}

func (m *BoxMutator[T]) Lens(value **T, cache Cache, path LensPath) (any, bool) {
	return m.Inner.Lens(*value, cache, path)
}

func (m *BoxMutator[T]) AllPaths(value **T, cache Cache, register func(reflect.Type, LensPath, float64)) {
	m.Inner.AllPaths(*value, cache, register)
}

func (m *BoxMutator[T]) CrossoverMutate(value **T, cache Cache, provider SubValueProvider, maxCplx float64) (UnmutateToken, float64) {
	return m.Inner.CrossoverMutate(*value, cache, provider, maxCplx)
}
