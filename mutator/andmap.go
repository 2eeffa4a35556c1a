package mutator

import "reflect"

// Pair is the value type exposed by AndMapMutator: Derived is the
// companion artifact kept in sync with Base via Map. The outer Pair
// carries no independent mutation state; every step forwards to the
// inner Mutator[From].
type Pair[To, From any] struct {
	Derived To
	Base    From
}

// AndMapMutator exposes a Mutator over Pair[To, From] where To is a
// derived companion of From (for example, a string serialized from an
// AST), kept in sync by Map after every mutation. Unlike MapMutator, Map
// mutates a pre-allocated To in place instead of reallocating it on
// every call — useful when To is an expensive-to-construct buffer.
type AndMapMutator[From, To any] struct {
	Inner   Mutator[From]
	Map     func(from *From, to *To)
	storage To
}

// NewAndMapMutator constructs an AndMapMutator. storage is the initial
// value of To that Map will mutate in place on every generation/mutation.
func NewAndMapMutator[From, To any](inner Mutator[From], mp func(from *From, to *To), storage To) *AndMapMutator[From, To] {
	return &AndMapMutator[From, To]{Inner: inner, Map: mp, storage: storage}
}

func (m *AndMapMutator[From, To]) DefaultArbitraryStep() ArbitraryStep {
	return m.Inner.DefaultArbitraryStep()
}

func (m *AndMapMutator[From, To]) ValidateValue(value *Pair[To, From]) (Cache, bool) {
	return m.Inner.ValidateValue(&value.Base)
}

func (m *AndMapMutator[From, To]) DefaultMutationStep(value *Pair[To, From], cache Cache) MutationStep {
	return m.Inner.DefaultMutationStep(&value.Base, cache)
}

func (m *AndMapMutator[From, To]) MaxComplexity() float64 { return m.Inner.MaxComplexity() }
func (m *AndMapMutator[From, To]) MinComplexity() float64 { return m.Inner.MinComplexity() }
func (m *AndMapMutator[From, To]) GlobalSearchSpaceComplexity() float64 {
	return m.Inner.GlobalSearchSpaceComplexity()
}

func (m *AndMapMutator[From, To]) Complexity(value *Pair[To, From], cache Cache) float64 {
	return m.Inner.Complexity(&value.Base, cache)
}

func (m *AndMapMutator[From, To]) OrderedArbitrary(step ArbitraryStep, maxCplx float64) (Pair[To, From], float64, bool) {
	from, cplx, ok := m.Inner.OrderedArbitrary(step, maxCplx)
	if !ok {
		return Pair[To, From]{}, 0, false
	}
	to := m.storage
	m.Map(&from, &to)
	return Pair[To, From]{Derived: to, Base: from}, cplx, true
}

func (m *AndMapMutator[From, To]) RandomArbitrary(maxCplx float64) (Pair[To, From], float64) {
	from, cplx := m.Inner.RandomArbitrary(maxCplx)
	to := m.storage
	m.Map(&from, &to)
	return Pair[To, From]{Derived: to, Base: from}, cplx
}

func (m *AndMapMutator[From, To]) OrderedMutate(value *Pair[To, From], cache Cache, step MutationStep, maxCplx float64) (UnmutateToken, float64, bool) {
	token, cplx, ok := m.Inner.OrderedMutate(&value.Base, cache, step, maxCplx)
	if !ok {
		return nil, 0, false
	}
	m.Map(&value.Base, &value.Derived)
	return token, cplx, true
}

func (m *AndMapMutator[From, To]) RandomMutate(value *Pair[To, From], cache Cache, maxCplx float64) (UnmutateToken, float64) {
	token, cplx := m.Inner.RandomMutate(&value.Base, cache, maxCplx)
	m.Map(&value.Base, &value.Derived)
	return token, cplx
}

func (m *AndMapMutator[From, To]) Unmutate(value *Pair[To, From], cache Cache, token UnmutateToken) {
	m.Inner.Unmutate(&value.Base, cache, token)
	m.Map(&value.Base, &value.Derived)
}

func (m *AndMapMutator[From, To]) Lens(value *Pair[To, From], cache Cache, path LensPath) (any, bool) {
	return m.Inner.Lens(&value.Base, cache, path)
}

func (m *AndMapMutator[From, To]) AllPaths(value *Pair[To, From], cache Cache, register func(reflect.Type, LensPath, float64)) {
	m.Inner.AllPaths(&value.Base, cache, register)
}

func (m *AndMapMutator[From, To]) CrossoverMutate(value *Pair[To, From], cache Cache, provider SubValueProvider, maxCplx float64) (UnmutateToken, float64) {
	token, cplx := m.Inner.CrossoverMutate(&value.Base, cache, provider, maxCplx)
	m.Map(&value.Base, &value.Derived)
	return token, cplx
}
