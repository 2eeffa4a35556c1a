package primitives

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"

	"github.com/katalvlaran/lvlfuzz/mutator"
)

// EnumVariant describes one case of a sum type mutated by EnumMutator: a
// payload mutator (type-erased, since Go has no existential generics),
// plus a constructor/destructor pair connecting V to that payload.
type EnumVariant[V any] struct {
	// Name identifies the variant in error messages.
	Name string
	// Payload mutates whatever concrete payload type this variant wraps.
	Payload mutator.Mutator[any]
	// Into builds a V from a freshly generated payload.
	Into func(payload any) V
	// From extracts this variant's payload out of v, or reports that v
	// is not currently this variant.
	From func(v V) (payload any, ok bool)
}

// EnumMutator mutates a closed sum type V by choosing among Variants,
// mirroring the Rust Either/Enum derive macros that generate one
// constructor/destructor pair per case. Complexity is 1 (the
// discriminant) plus the active variant's payload complexity.
type EnumMutator[V any] struct {
	Variants []EnumVariant[V]
	rng      *rand.Rand
}

// NewEnumMutator builds an EnumMutator over the given variants. It
// panics if variants is empty, since an enum mutator with no cases can
// never produce a value.
func NewEnumMutator[V any](variants ...EnumVariant[V]) *EnumMutator[V] {
	if len(variants) == 0 {
		panic(fmt.Errorf("primitives.NewEnumMutator: %w", ErrEmptyChoice))
	}
	return &EnumMutator[V]{Variants: variants, rng: rand.New(rand.NewSource(1))}
}

type enumCache struct {
	idx     int
	payload mutator.Cache
}

type enumStep struct {
	idx         int
	trySwitch   int
	switchStep  mutator.ArbitraryStep
	payloadStep mutator.MutationStep
}

type enumArbStep struct {
	idx     int
	variant mutator.ArbitraryStep
}

type enumTokenKind int

const (
	enumTokenSwitched enumTokenKind = iota
	enumTokenPayload
)

type enumToken[V any] struct {
	kind     enumTokenKind
	saved    V
	idx      int
	innerTok mutator.UnmutateToken
}

func (m *EnumMutator[V]) activeIdx(value *V) (int, any) {
	for i, variant := range m.Variants {
		if payload, ok := variant.From(*value); ok {
			return i, payload
		}
	}
	panic("primitives: EnumMutator value does not match any known variant")
}

func (m *EnumMutator[V]) DefaultArbitraryStep() mutator.ArbitraryStep {
	return &enumArbStep{variant: m.Variants[0].Payload.DefaultArbitraryStep()}
}

func (m *EnumMutator[V]) ValidateValue(value *V) (mutator.Cache, bool) {
	idx, payload := m.activeIdx(value)
	c, ok := m.Variants[idx].Payload.ValidateValue(&payload)
	if !ok {
		return nil, false
	}
	return &enumCache{idx: idx, payload: c}, true
}

func (m *EnumMutator[V]) DefaultMutationStep(value *V, cache mutator.Cache) mutator.MutationStep {
	c := cache.(*enumCache)
	_, payload := m.activeIdx(value)
	return &enumStep{
		idx:         c.idx,
		payloadStep: m.Variants[c.idx].Payload.DefaultMutationStep(&payload, c.payload),
	}
}

func (m *EnumMutator[V]) MaxComplexity() float64 {
	max := 0.0
	for _, v := range m.Variants {
		if c := v.Payload.MaxComplexity(); c > max {
			max = c
		}
	}
	return 1 + max
}

func (m *EnumMutator[V]) MinComplexity() float64 {
	min := m.Variants[0].Payload.MinComplexity()
	for _, v := range m.Variants[1:] {
		if c := v.Payload.MinComplexity(); c < min {
			min = c
		}
	}
	return 1 + min
}

func (m *EnumMutator[V]) GlobalSearchSpaceComplexity() float64 {
	total := 0.0
	for _, v := range m.Variants {
		total += v.Payload.GlobalSearchSpaceComplexity()
	}
	return 1 + total
}

func (m *EnumMutator[V]) Complexity(value *V, cache mutator.Cache) float64 {
	c := cache.(*enumCache)
	_, payload := m.activeIdx(value)
	return 1 + m.Variants[c.idx].Payload.Complexity(&payload, c.payload)
}

func (m *EnumMutator[V]) OrderedArbitrary(step mutator.ArbitraryStep, maxCplx float64) (V, float64, bool) {
	s := step.(*enumArbStep)
	var zero V
	for s.idx < len(m.Variants) {
		variant := m.Variants[s.idx]
		if s.variant == nil {
			s.variant = variant.Payload.DefaultArbitraryStep()
		}
		payload, cplx, ok := variant.Payload.OrderedArbitrary(s.variant, maxCplx-1)
		if ok {
			return variant.Into(payload), cplx + 1, true
		}
		s.idx++
		s.variant = nil
	}
	return zero, 0, false
}

func (m *EnumMutator[V]) RandomArbitrary(maxCplx float64) (V, float64) {
	idx := m.pickVariant(maxCplx)
	payload, cplx := m.Variants[idx].Payload.RandomArbitrary(maxCplx - 1)
	return m.Variants[idx].Into(payload), cplx + 1
}

// pickVariant chooses a variant index at random, but once the budget
// drops to the point where a recursive variant could never terminate
// (MaxComplexity of +Inf), it restricts the choice to variants with a
// finite bound. Self-referential enums — a grammar's recursive
// alternation compiled through EnumMutator, for instance — would
// otherwise recurse indefinitely under random generation, since
// RandomArbitrary itself does not consult the budget the way
// OrderedArbitrary does.
func (m *EnumMutator[V]) pickVariant(maxCplx float64) int {
	if maxCplx > 1 {
		return m.rng.Intn(len(m.Variants))
	}
	var finite []int
	for i, v := range m.Variants {
		if !math.IsInf(v.Payload.MaxComplexity(), 1) {
			finite = append(finite, i)
		}
	}
	if len(finite) == 0 {
		return m.rng.Intn(len(m.Variants))
	}
	return finite[m.rng.Intn(len(finite))]
}

func (m *EnumMutator[V]) OrderedMutate(value *V, cache mutator.Cache, step mutator.MutationStep, maxCplx float64) (mutator.UnmutateToken, float64, bool) {
	s := step.(*enumStep)
	c := cache.(*enumCache)

	for s.trySwitch < len(m.Variants) {
		targetIdx := s.trySwitch
		s.trySwitch++
		if targetIdx == c.idx {
			continue
		}
		target := m.Variants[targetIdx]
		if s.switchStep == nil {
			s.switchStep = target.Payload.DefaultArbitraryStep()
		}
		payload, _, ok := target.Payload.OrderedArbitrary(s.switchStep, maxCplx-1)
		s.switchStep = nil
		if !ok {
			continue
		}
		saved := *value
		*value = target.Into(payload)
		newPayload, _ := target.From(*value)
		payloadCache, valid := target.Payload.ValidateValue(&newPayload)
		if !valid {
			panic("primitives: EnumMutator variant constructor produced an invalid payload")
		}
		c.idx = targetIdx
		c.payload = payloadCache
		return &enumToken[V]{kind: enumTokenSwitched, saved: saved}, m.Complexity(value, cache), true
	}

	_, payload := m.activeIdx(value)
	if s.payloadStep == nil {
		s.payloadStep = m.Variants[c.idx].Payload.DefaultMutationStep(&payload, c.payload)
	}
	token, cplx, ok := m.Variants[c.idx].Payload.OrderedMutate(&payload, c.payload, s.payloadStep, maxCplx-1)
	if !ok {
		return nil, 0, false
	}
	*value = m.Variants[c.idx].Into(payload)
	return &enumToken[V]{kind: enumTokenPayload, idx: c.idx, innerTok: token}, cplx + 1, true
}

func (m *EnumMutator[V]) RandomMutate(value *V, cache mutator.Cache, maxCplx float64) (mutator.UnmutateToken, float64) {
	c := cache.(*enumCache)
	if m.rng.Intn(3) == 0 {
		targetIdx := m.pickVariant(maxCplx)
		target := m.Variants[targetIdx]
		payload, cplx := target.Payload.RandomArbitrary(maxCplx - 1)
		saved := *value
		*value = target.Into(payload)
		newPayload, _ := target.From(*value)
		payloadCache, ok := target.Payload.ValidateValue(&newPayload)
		if !ok {
			panic("primitives: EnumMutator variant constructor produced an invalid payload")
		}
		c.idx = targetIdx
		c.payload = payloadCache
		return &enumToken[V]{kind: enumTokenSwitched, saved: saved}, cplx + 1
	}
	_, payload := m.activeIdx(value)
	token, cplx := m.Variants[c.idx].Payload.RandomMutate(&payload, c.payload, maxCplx-1)
	*value = m.Variants[c.idx].Into(payload)
	return &enumToken[V]{kind: enumTokenPayload, idx: c.idx, innerTok: token}, cplx + 1
}

func (m *EnumMutator[V]) Unmutate(value *V, cache mutator.Cache, token mutator.UnmutateToken) {
	t := token.(*enumToken[V])
	c := cache.(*enumCache)
	switch t.kind {
	case enumTokenSwitched:
		*value = t.saved
		idx, payload := m.activeIdx(value)
		payloadCache, ok := m.Variants[idx].Payload.ValidateValue(&payload)
		if !ok {
			panic("primitives: EnumMutator could not restore prior variant on unmutate")
		}
		c.idx = idx
		c.payload = payloadCache
	case enumTokenPayload:
		_, payload := m.activeIdx(value)
		m.Variants[t.idx].Payload.Unmutate(&payload, c.payload, t.innerTok)
		*value = m.Variants[t.idx].Into(payload)
	}
}

func (m *EnumMutator[V]) Lens(value *V, cache mutator.Cache, path mutator.LensPath) (any, bool) {
	c := cache.(*enumCache)
	_, payload := m.activeIdx(value)
	return m.Variants[c.idx].Payload.Lens(&payload, c.payload, path)
}

func (m *EnumMutator[V]) AllPaths(value *V, cache mutator.Cache, register func(reflect.Type, mutator.LensPath, float64)) {
	c := cache.(*enumCache)
	_, payload := m.activeIdx(value)
	m.Variants[c.idx].Payload.AllPaths(&payload, c.payload, register)
}

func (m *EnumMutator[V]) CrossoverMutate(value *V, cache mutator.Cache, provider mutator.SubValueProvider, maxCplx float64) (mutator.UnmutateToken, float64) {
	c := cache.(*enumCache)
	_, payload := m.activeIdx(value)
	token, cplx := m.Variants[c.idx].Payload.CrossoverMutate(&payload, c.payload, provider, maxCplx-1)
	*value = m.Variants[c.idx].Into(payload)
	return &enumToken[V]{kind: enumTokenPayload, idx: c.idx, innerTok: token}, cplx + 1
}
