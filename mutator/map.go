package mutator

import "reflect"

// mapCache bundles the inner From value with its Cache, so that a
// MapMutator can recompute To after every mutation without re-parsing it
// from scratch.
type mapCache[From any] struct {
	fromValue From
	fromCache Cache
}

// MapMutator exposes a Mutator[To] by bijectively projecting through a
// parse/map pair over an inner Mutator[From]. Parse recovers a From from
// a To (failing closes the domain); Map recomputes a To from a mutated
// From after every mutation. The Cache stores both the From value and
// its own Cache so mutation never has to re-run Parse.
type MapMutator[From, To any] struct {
	Inner Mutator[From]
	Parse func(to *To) (From, bool)
	Map   func(from *From) To
}

// NewMapMutator constructs a MapMutator from an inner mutator and a
// parse/map pair. parse and map must agree: map(parse(to)) should be
// observationally equal to to for every to accepted by parse.
func NewMapMutator[From, To any](inner Mutator[From], parse func(to *To) (From, bool), mp func(from *From) To) *MapMutator[From, To] {
	return &MapMutator[From, To]{Inner: inner, Parse: parse, Map: mp}
}

func (m *MapMutator[From, To]) DefaultArbitraryStep() ArbitraryStep {
	return m.Inner.DefaultArbitraryStep()
}

func (m *MapMutator[From, To]) ValidateValue(to *To) (Cache, bool) {
	from, ok := m.Parse(to)
	if !ok {
		return nil, false
	}
	fromCache, ok := m.Inner.ValidateValue(&from)
	if !ok {
		return nil, false
	}
	return &mapCache[From]{fromValue: from, fromCache: fromCache}, true
}

func (m *MapMutator[From, To]) DefaultMutationStep(_ *To, cache Cache) MutationStep {
	c := cache.(*mapCache[From])
	return m.Inner.DefaultMutationStep(&c.fromValue, c.fromCache)
}

func (m *MapMutator[From, To]) MaxComplexity() float64 { return m.Inner.MaxComplexity() }
func (m *MapMutator[From, To]) MinComplexity() float64 { return m.Inner.MinComplexity() }
func (m *MapMutator[From, To]) GlobalSearchSpaceComplexity() float64 {
	return m.Inner.GlobalSearchSpaceComplexity()
}

func (m *MapMutator[From, To]) Complexity(_ *To, cache Cache) float64 {
	c := cache.(*mapCache[From])
	return m.Inner.Complexity(&c.fromValue, c.fromCache)
}

func (m *MapMutator[From, To]) OrderedArbitrary(step ArbitraryStep, maxCplx float64) (To, float64, bool) {
	from, cplx, ok := m.Inner.OrderedArbitrary(step, maxCplx)
	if !ok {
		var zero To
		return zero, 0, false
	}
	return m.Map(&from), cplx, true
}

func (m *MapMutator[From, To]) RandomArbitrary(maxCplx float64) (To, float64) {
	from, cplx := m.Inner.RandomArbitrary(maxCplx)
	return m.Map(&from), cplx
}

func (m *MapMutator[From, To]) OrderedMutate(to *To, cache Cache, step MutationStep, maxCplx float64) (UnmutateToken, float64, bool) {
	c := cache.(*mapCache[From])
	token, cplx, ok := m.Inner.OrderedMutate(&c.fromValue, c.fromCache, step, maxCplx)
	if !ok {
		return nil, 0, false
	}
	*to = m.Map(&c.fromValue)
	return token, cplx, true
}

func (m *MapMutator[From, To]) RandomMutate(to *To, cache Cache, maxCplx float64) (UnmutateToken, float64) {
	c := cache.(*mapCache[From])
	token, cplx := m.Inner.RandomMutate(&c.fromValue, c.fromCache, maxCplx)
	*to = m.Map(&c.fromValue)
	return token, cplx
}

func (m *MapMutator[From, To]) Unmutate(to *To, cache Cache, token UnmutateToken) {
	c := cache.(*mapCache[From])
	m.Inner.Unmutate(&c.fromValue, c.fromCache, token)
	*to = m.Map(&c.fromValue)
}

func (m *MapMutator[From, To]) Lens(_ *To, cache Cache, path LensPath) (any, bool) {
	c := cache.(*mapCache[From])
	return m.Inner.Lens(&c.fromValue, c.fromCache, path)
}

func (m *MapMutator[From, To]) AllPaths(_ *To, cache Cache, register func(reflect.Type, LensPath, float64)) {
	c := cache.(*mapCache[From])
	m.Inner.AllPaths(&c.fromValue, c.fromCache, register)
}

func (m *MapMutator[From, To]) CrossoverMutate(to *To, cache Cache, provider SubValueProvider, maxCplx float64) (UnmutateToken, float64) {
	c := cache.(*mapCache[From])
	token, cplx := m.Inner.CrossoverMutate(&c.fromValue, c.fromCache, provider, maxCplx)
	*to = m.Map(&c.fromValue)
	return token, cplx
}
