package recursive

import (
	"reflect"

	"github.com/katalvlaran/lvlfuzz/mutator"
)

// RecursiveMutator wraps a Mutator[T] that was built to recurse into
// itself through a RecurToMutator. It implements mutator.Mutator[T] by
// forwarding every call to Inner once construction has completed.
type RecursiveMutator[T any] struct {
	Inner mutator.Mutator[T]
}

// NewRecursiveMutator builds a RecursiveMutator in two phases: a
// RecurToMutator pointing back at the (still-empty) result is handed to
// build, which constructs the real Mutator[T]; the result is then
// stored as Inner. build must not call any method on the RecurToMutator
// it receives — only capture it for mutators it returns.
func NewRecursiveMutator[T any](build func(*RecurToMutator[T]) mutator.Mutator[T]) *RecursiveMutator[T] {
	rm := &RecursiveMutator[T]{}
	recur := &RecurToMutator[T]{target: rm}
	rm.Inner = build(recur)
	return rm
}

func (m *RecursiveMutator[T]) DefaultArbitraryStep() mutator.ArbitraryStep {
	return m.Inner.DefaultArbitraryStep()
}

func (m *RecursiveMutator[T]) ValidateValue(value *T) (mutator.Cache, bool) {
	return m.Inner.ValidateValue(value)
}

func (m *RecursiveMutator[T]) DefaultMutationStep(value *T, cache mutator.Cache) mutator.MutationStep {
	return m.Inner.DefaultMutationStep(value, cache)
}

func (m *RecursiveMutator[T]) MaxComplexity() float64 { return m.Inner.MaxComplexity() }
func (m *RecursiveMutator[T]) MinComplexity() float64 { return m.Inner.MinComplexity() }
func (m *RecursiveMutator[T]) GlobalSearchSpaceComplexity() float64 {
	return m.Inner.GlobalSearchSpaceComplexity()
}

func (m *RecursiveMutator[T]) Complexity(value *T, cache mutator.Cache) float64 {
	return m.Inner.Complexity(value, cache)
}

func (m *RecursiveMutator[T]) OrderedArbitrary(step mutator.ArbitraryStep, maxCplx float64) (T, float64, bool) {
	return m.Inner.OrderedArbitrary(step, maxCplx)
}

func (m *RecursiveMutator[T]) RandomArbitrary(maxCplx float64) (T, float64) {
	return m.Inner.RandomArbitrary(maxCplx)
}

func (m *RecursiveMutator[T]) OrderedMutate(value *T, cache mutator.Cache, step mutator.MutationStep, maxCplx float64) (mutator.UnmutateToken, float64, bool) {
	return m.Inner.OrderedMutate(value, cache, step, maxCplx)
}

func (m *RecursiveMutator[T]) RandomMutate(value *T, cache mutator.Cache, maxCplx float64) (mutator.UnmutateToken, float64) {
	return m.Inner.RandomMutate(value, cache, maxCplx)
}

func (m *RecursiveMutator[T]) Unmutate(value *T, cache mutator.Cache, token mutator.UnmutateToken) {
	m.Inner.Unmutate(value, cache, token)
}

func (m *RecursiveMutator[T]) Lens(value *T, cache mutator.Cache, path mutator.LensPath) (any, bool) {
	return m.Inner.Lens(value, cache, path)
}

func (m *RecursiveMutator[T]) AllPaths(value *T, cache mutator.Cache, register func(reflect.Type, mutator.LensPath, float64)) {
	m.Inner.AllPaths(value, cache, register)
}

func (m *RecursiveMutator[T]) CrossoverMutate(value *T, cache mutator.Cache, provider mutator.SubValueProvider, maxCplx float64) (mutator.UnmutateToken, float64) {
	return m.Inner.CrossoverMutate(value, cache, provider, maxCplx)
}
