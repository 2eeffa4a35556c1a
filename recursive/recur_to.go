package recursive

import (
	"math"
	"reflect"

	"github.com/katalvlaran/lvlfuzz/mutator"
)

// RecurToMutator is the mutator placed at the recursive arm of a
// self-referential type: it forwards to the enclosing RecursiveMutator,
// closing the cycle without recomputing it. MaxComplexity and
// GlobalSearchSpaceComplexity are +Inf and MinComplexity is 0 by
// definition (spec.md §9 defers a tighter bound to future work) — any
// other value would require evaluating target.Inner's own bounds, which
// are themselves defined in terms of this type, an infinite regress.
type RecurToMutator[T any] struct {
	target *RecursiveMutator[T]
}

// recurArbStep defers building the inner step until first use: {Default}
// is a step that has never produced a value yet, {Initialized} holds the
// real step once OrderedArbitrary has run at least once. Building the
// inner step eagerly at DefaultArbitraryStep time would walk the
// recursive type's infinite step tree before any budget check runs.
type recurArbStep struct {
	initialized bool
	inner       mutator.ArbitraryStep
}

func (m *RecurToMutator[T]) DefaultArbitraryStep() mutator.ArbitraryStep {
	return &recurArbStep{}
}

func (m *RecurToMutator[T]) ValidateValue(value *T) (mutator.Cache, bool) {
	return m.target.Inner.ValidateValue(value)
}

func (m *RecurToMutator[T]) DefaultMutationStep(value *T, cache mutator.Cache) mutator.MutationStep {
	return m.target.Inner.DefaultMutationStep(value, cache)
}

func (m *RecurToMutator[T]) MaxComplexity() float64 { return math.Inf(1) }
func (m *RecurToMutator[T]) MinComplexity() float64 { return 0.0 }
func (m *RecurToMutator[T]) GlobalSearchSpaceComplexity() float64 {
	return math.Inf(1)
}

func (m *RecurToMutator[T]) Complexity(value *T, cache mutator.Cache) float64 {
	return m.target.Inner.Complexity(value, cache)
}

func (m *RecurToMutator[T]) OrderedArbitrary(step mutator.ArbitraryStep, maxCplx float64) (T, float64, bool) {
	s := step.(*recurArbStep)
	if maxCplx < 0 {
		var zero T
		return zero, 0, false
	}
	if !s.initialized {
		s.inner = m.target.Inner.DefaultArbitraryStep()
		s.initialized = true
	}
	return m.target.Inner.OrderedArbitrary(s.inner, maxCplx)
}

func (m *RecurToMutator[T]) RandomArbitrary(maxCplx float64) (T, float64) {
	return m.target.Inner.RandomArbitrary(maxCplx)
}

func (m *RecurToMutator[T]) OrderedMutate(value *T, cache mutator.Cache, step mutator.MutationStep, maxCplx float64) (mutator.UnmutateToken, float64, bool) {
	return m.target.Inner.OrderedMutate(value, cache, step, maxCplx)
}

func (m *RecurToMutator[T]) RandomMutate(value *T, cache mutator.Cache, maxCplx float64) (mutator.UnmutateToken, float64) {
	return m.target.Inner.RandomMutate(value, cache, maxCplx)
}

func (m *RecurToMutator[T]) Unmutate(value *T, cache mutator.Cache, token mutator.UnmutateToken) {
	m.target.Inner.Unmutate(value, cache, token)
}

func (m *RecurToMutator[T]) Lens(value *T, cache mutator.Cache, path mutator.LensPath) (any, bool) {
	return m.target.Inner.Lens(value, cache, path)
}

func (m *RecurToMutator[T]) AllPaths(value *T, cache mutator.Cache, register func(reflect.Type, mutator.LensPath, float64)) {
	m.target.Inner.AllPaths(value, cache, register)
}

func (m *RecurToMutator[T]) CrossoverMutate(value *T, cache mutator.Cache, provider mutator.SubValueProvider, maxCplx float64) (mutator.UnmutateToken, float64) {
	return m.target.Inner.CrossoverMutate(value, cache, provider, maxCplx)
}
