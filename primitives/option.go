package primitives

import (
	"math/rand"
	"reflect"

	"github.com/katalvlaran/lvlfuzz/mutator"
)

// OptionMutator mutates an optional T, represented the Go way: a nil
// *T means None, a non-nil *T means Some(*that). It implements
// mutator.Mutator[*T].
//
// Mutating Some(x) first tries switching to None, then delegates to the
// inner mutator; mutating None always generates a fresh Some via the
// inner mutator's arbitrary.
type OptionMutator[T any] struct {
	Inner mutator.Mutator[T]
	rng   *rand.Rand
}

// NewOptionMutator wraps inner in an OptionMutator.
func NewOptionMutator[T any](inner mutator.Mutator[T]) *OptionMutator[T] {
	return &OptionMutator[T]{Inner: inner, rng: rand.New(rand.NewSource(1))}
}

type optionCache[T any] struct {
	inner mutator.Cache
}

type optionStep[T any] struct {
	triedNone bool
	innerStep mutator.MutationStep
	arbStep   mutator.ArbitraryStep
}

type optionTokenKind int

const (
	tokenSwitchedToNone optionTokenKind = iota
	tokenDelegated
	tokenGeneratedSome
	tokenReplaced
)

type optionToken[T any] struct {
	kind       optionTokenKind
	savedValue *T
	inner      mutator.UnmutateToken
}

func (m *OptionMutator[T]) DefaultArbitraryStep() mutator.ArbitraryStep {
	return &optionStep[T]{}
}

func (m *OptionMutator[T]) ValidateValue(value **T) (mutator.Cache, bool) {
	if *value == nil {
		return &optionCache[T]{}, true
	}
	innerCache, ok := m.Inner.ValidateValue(*value)
	if !ok {
		return nil, false
	}
	return &optionCache[T]{inner: innerCache}, true
}

func (m *OptionMutator[T]) DefaultMutationStep(value **T, cache mutator.Cache) mutator.MutationStep {
	s := &optionStep[T]{}
	if *value != nil {
		c := cache.(*optionCache[T])
		s.innerStep = m.Inner.DefaultMutationStep(*value, c.inner)
	}
	return s
}

func (m *OptionMutator[T]) MaxComplexity() float64 { return 1 + m.Inner.MaxComplexity() }
func (m *OptionMutator[T]) MinComplexity() float64 { return 1 }
func (m *OptionMutator[T]) GlobalSearchSpaceComplexity() float64 {
	return 1 + m.Inner.GlobalSearchSpaceComplexity()
}

func (m *OptionMutator[T]) Complexity(value **T, cache mutator.Cache) float64 {
	if *value == nil {
		return 1
	}
	c := cache.(*optionCache[T])
	return 1 + m.Inner.Complexity(*value, c.inner)
}

func (m *OptionMutator[T]) OrderedArbitrary(step mutator.ArbitraryStep, maxCplx float64) (*T, float64, bool) {
	s := step.(*optionStep[T])
	if !s.triedNone {
		s.triedNone = true
		if maxCplx < 1 {
			return nil, 0, false
		}
		return nil, 1, true
	}
	if s.arbStep == nil {
		s.arbStep = m.Inner.DefaultArbitraryStep()
	}
	v, cplx, ok := m.Inner.OrderedArbitrary(s.arbStep, maxCplx-1)
	if !ok {
		return nil, 0, false
	}
	return &v, cplx + 1, true
}

func (m *OptionMutator[T]) RandomArbitrary(maxCplx float64) (*T, float64) {
	if maxCplx < m.MinComplexity() || m.rng.Intn(4) == 0 {
		return nil, 1
	}
	v, cplx := m.Inner.RandomArbitrary(maxCplx - 1)
	return &v, cplx + 1
}

func (m *OptionMutator[T]) OrderedMutate(value **T, cache mutator.Cache, step mutator.MutationStep, maxCplx float64) (mutator.UnmutateToken, float64, bool) {
	s := step.(*optionStep[T])
	c := cache.(*optionCache[T])
	if *value != nil {
		if !s.triedNone {
			s.triedNone = true
			saved := *value
			*value = nil
			c.inner = nil
			return &optionToken[T]{kind: tokenSwitchedToNone, savedValue: saved}, 1, true
		}
		if s.innerStep == nil {
			s.innerStep = m.Inner.DefaultMutationStep(*value, c.inner)
		}
		token, cplx, ok := m.Inner.OrderedMutate(*value, c.inner, s.innerStep, maxCplx-1)
		if !ok {
			return nil, 0, false
		}
		return &optionToken[T]{kind: tokenDelegated, inner: token}, cplx + 1, true
	}
	if s.arbStep == nil {
		s.arbStep = m.Inner.DefaultArbitraryStep()
	}
	v, cplx, ok := m.Inner.OrderedArbitrary(s.arbStep, maxCplx-1)
	if !ok {
		return nil, 0, false
	}
	*value = &v
	innerCache, ok := m.Inner.ValidateValue(*value)
	if !ok {
		panic("primitives: OptionMutator inner OrderedArbitrary produced an invalid value")
	}
	c.inner = innerCache
	return &optionToken[T]{kind: tokenGeneratedSome}, cplx + 1, true
}

func (m *OptionMutator[T]) RandomMutate(value **T, cache mutator.Cache, maxCplx float64) (mutator.UnmutateToken, float64) {
	c := cache.(*optionCache[T])
	if *value == nil {
		v, cplx := m.Inner.RandomArbitrary(maxCplx - 1)
		*value = &v
		innerCache, ok := m.Inner.ValidateValue(*value)
		if !ok {
			panic("primitives: OptionMutator inner RandomArbitrary produced an invalid value")
		}
		c.inner = innerCache
		return &optionToken[T]{kind: tokenGeneratedSome}, cplx + 1
	}
	if m.rng.Intn(2) == 0 {
		saved := *value
		*value = nil
		c.inner = nil
		return &optionToken[T]{kind: tokenSwitchedToNone, savedValue: saved}, 1
	}
	token, cplx := m.Inner.RandomMutate(*value, c.inner, maxCplx-1)
	return &optionToken[T]{kind: tokenDelegated, inner: token}, cplx + 1
}

func (m *OptionMutator[T]) Unmutate(value **T, cache mutator.Cache, token mutator.UnmutateToken) {
	t := token.(*optionToken[T])
	c := cache.(*optionCache[T])
	switch t.kind {
	case tokenSwitchedToNone:
		*value = t.savedValue
		if *value == nil {
			// CrossoverMutate can record tokenSwitchedToNone while
			// crossing over from None (saved is nil): restoring None
			// needs no inner cache, and ValidateValue would dereference
			// a nil *T.
			c.inner = nil
			return
		}
		innerCache, ok := m.Inner.ValidateValue(*value)
		if !ok {
			panic("primitives: OptionMutator could not restore Some value on unmutate")
		}
		c.inner = innerCache
	case tokenDelegated:
		m.Inner.Unmutate(*value, c.inner, t.inner)
	case tokenGeneratedSome, tokenReplaced:
		*value = nil
		c.inner = nil
	}
}

func (m *OptionMutator[T]) Lens(value **T, cache mutator.Cache, path mutator.LensPath) (any, bool) {
	if *value == nil {
		return nil, false
	}
	c := cache.(*optionCache[T])
	return m.Inner.Lens(*value, c.inner, path)
}

func (m *OptionMutator[T]) AllPaths(value **T, cache mutator.Cache, register func(reflect.Type, mutator.LensPath, float64)) {
	if *value == nil {
		return
	}
	c := cache.(*optionCache[T])
	m.Inner.AllPaths(*value, c.inner, register)
}

func (m *OptionMutator[T]) CrossoverMutate(value **T, cache mutator.Cache, provider mutator.SubValueProvider, maxCplx float64) (mutator.UnmutateToken, float64) {
	var zero T
	typ := reflect.TypeOf(zero)
	if typ != nil {
		if sub, _, ok := provider.GetSubvalue(typ, maxCplx-1, nil); ok {
			if v, ok := sub.(T); ok {
				saved := *value
				replacement := v
				*value = &replacement
				innerCache, valid := m.Inner.ValidateValue(*value)
				if valid {
					c := cache.(*optionCache[T])
					c.inner = innerCache
					return &optionToken[T]{kind: tokenSwitchedToNone, savedValue: saved}, m.Complexity(value, cache)
				}
				*value = saved
			}
		}
	}
	return m.RandomMutate(value, cache, maxCplx)
}
