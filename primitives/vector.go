package primitives

import (
	"fmt"
	"math/rand"
	"reflect"

	"github.com/katalvlaran/lvlfuzz/mutator"
)

// VectorMutator mutates a []V by composing three kinds of moves:
// shrinking (removing an element), growing (inserting a fresh one from
// Inner), and delegating to Inner for an existing element. Complexity is
// 1 (for the length/shape choice) plus the sum of element complexities.
type VectorMutator[V any] struct {
	Inner          mutator.Mutator[V]
	minLen, maxLen int
	rng            *rand.Rand
}

// NewVectorMutator builds a VectorMutator whose length stays within
// [minLen, maxLen] (both inclusive), as configured by opts. It panics if
// the resolved bounds are inverted or negative.
func NewVectorMutator[V any](inner mutator.Mutator[V], opts ...VectorOption) *VectorMutator[V] {
	cfg := newVectorConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.minLen < 0 || cfg.minLen > cfg.maxLen {
		panic(fmt.Errorf("primitives.NewVectorMutator: %w (min=%d max=%d)", ErrInvalidLength, cfg.minLen, cfg.maxLen))
	}
	return &VectorMutator[V]{Inner: inner, minLen: cfg.minLen, maxLen: cfg.maxLen, rng: cfg.rng}
}

type vectorCache struct {
	elemCaches []mutator.Cache
}

type vectorStep struct {
	triedShrink bool
	triedGrow   bool
	elemIdx     int
	elemStep    mutator.MutationStep
}

type vectorArbStep struct {
	lengthChosen bool
	target       int
	generated    int
	elemStep     mutator.ArbitraryStep
}

type vectorTokenKind int

const (
	vecTokenRemoved vectorTokenKind = iota
	vecTokenInserted
	vecTokenElemMutate
	vecTokenElemReplaced
)

type vectorToken[V any] struct {
	kind       vectorTokenKind
	index      int
	savedElem  V
	savedCache mutator.Cache
	elemToken  mutator.UnmutateToken
}

func (m *VectorMutator[V]) DefaultArbitraryStep() mutator.ArbitraryStep {
	return &vectorArbStep{}
}

func (m *VectorMutator[V]) ValidateValue(value *[]V) (mutator.Cache, bool) {
	if len(*value) < m.minLen || len(*value) > m.maxLen {
		return nil, false
	}
	caches := make([]mutator.Cache, len(*value))
	for i := range *value {
		c, ok := m.Inner.ValidateValue(&(*value)[i])
		if !ok {
			return nil, false
		}
		caches[i] = c
	}
	return &vectorCache{elemCaches: caches}, true
}

func (m *VectorMutator[V]) DefaultMutationStep(_ *[]V, _ mutator.Cache) mutator.MutationStep {
	return &vectorStep{}
}

func (m *VectorMutator[V]) MaxComplexity() float64 {
	return 1 + float64(m.maxLen)*m.Inner.MaxComplexity()
}
func (m *VectorMutator[V]) MinComplexity() float64 {
	return 1 + float64(m.minLen)*m.Inner.MinComplexity()
}
func (m *VectorMutator[V]) GlobalSearchSpaceComplexity() float64 {
	return 1 + float64(m.maxLen)*m.Inner.GlobalSearchSpaceComplexity()
}

func (m *VectorMutator[V]) Complexity(value *[]V, cache mutator.Cache) float64 {
	c := cache.(*vectorCache)
	total := 1.0
	for i := range *value {
		total += m.Inner.Complexity(&(*value)[i], c.elemCaches[i])
	}
	return total
}

func (m *VectorMutator[V]) OrderedArbitrary(step mutator.ArbitraryStep, maxCplx float64) ([]V, float64, bool) {
	s := step.(*vectorArbStep)
	if s.lengthChosen && s.generated >= s.target {
		return nil, 0, false
	}
	if !s.lengthChosen {
		s.lengthChosen = true
		span := m.maxLen - m.minLen
		target := m.minLen
		if span > 0 {
			target = m.minLen + m.rng.Intn(span+1)
		}
		s.target = target
	}
	out := make([]V, 0, s.target)
	total := 1.0
	for s.generated < s.target {
		if s.elemStep == nil {
			s.elemStep = m.Inner.DefaultArbitraryStep()
		}
		v, cplx, ok := m.Inner.OrderedArbitrary(s.elemStep, maxCplx-total)
		if !ok {
			return nil, 0, false
		}
		out = append(out, v)
		total += cplx
		s.generated++
		s.elemStep = nil
	}
	return out, total, true
}

func (m *VectorMutator[V]) RandomArbitrary(maxCplx float64) ([]V, float64) {
	span := m.maxLen - m.minLen
	target := m.minLen
	if span > 0 {
		target = m.minLen + m.rng.Intn(span+1)
	}
	out := make([]V, target)
	total := 1.0
	for i := 0; i < target; i++ {
		v, cplx := m.Inner.RandomArbitrary(maxCplx - total)
		out[i] = v
		total += cplx
	}
	return out, total
}

func (m *VectorMutator[V]) OrderedMutate(value *[]V, cache mutator.Cache, step mutator.MutationStep, maxCplx float64) (mutator.UnmutateToken, float64, bool) {
	s := step.(*vectorStep)
	c := cache.(*vectorCache)

	if !s.triedShrink {
		s.triedShrink = true
		if len(*value) > m.minLen {
			idx := len(*value) - 1
			savedElem := (*value)[idx]
			savedCache := c.elemCaches[idx]
			*value = (*value)[:idx]
			c.elemCaches = c.elemCaches[:idx]
			return &vectorToken[V]{kind: vecTokenRemoved, index: idx, savedElem: savedElem, savedCache: savedCache}, m.Complexity(value, cache), true
		}
	}
	if !s.triedGrow {
		s.triedGrow = true
		if len(*value) < m.maxLen {
			v, _, ok := m.Inner.OrderedArbitrary(m.Inner.DefaultArbitraryStep(), maxCplx)
			if ok {
				*value = append(*value, v)
				newCache, valid := m.Inner.ValidateValue(&(*value)[len(*value)-1])
				if !valid {
					panic("primitives: VectorMutator inner OrderedArbitrary produced an invalid element")
				}
				c.elemCaches = append(c.elemCaches, newCache)
				return &vectorToken[V]{kind: vecTokenInserted, index: len(*value) - 1}, m.Complexity(value, cache), true
			}
		}
	}
	for s.elemIdx < len(*value) {
		idx := s.elemIdx
		if s.elemStep == nil {
			s.elemStep = m.Inner.DefaultMutationStep(&(*value)[idx], c.elemCaches[idx])
		}
		token, cplx, ok := m.Inner.OrderedMutate(&(*value)[idx], c.elemCaches[idx], s.elemStep, maxCplx)
		if !ok {
			s.elemIdx++
			s.elemStep = nil
			continue
		}
		return &vectorToken[V]{kind: vecTokenElemMutate, index: idx, elemToken: token}, cplx, true
	}
	return nil, 0, false
}

func (m *VectorMutator[V]) RandomMutate(value *[]V, cache mutator.Cache, maxCplx float64) (mutator.UnmutateToken, float64) {
	c := cache.(*vectorCache)
	choice := m.rng.Intn(3)
	if choice == 0 && len(*value) > m.minLen {
		idx := m.rng.Intn(len(*value))
		savedElem := (*value)[idx]
		savedCache := c.elemCaches[idx]
		*value = append((*value)[:idx], (*value)[idx+1:]...)
		c.elemCaches = append(c.elemCaches[:idx], c.elemCaches[idx+1:]...)
		return &vectorToken[V]{kind: vecTokenRemoved, index: idx, savedElem: savedElem, savedCache: savedCache}, m.Complexity(value, cache)
	}
	if choice == 1 && len(*value) < m.maxLen {
		v, _ := m.Inner.RandomArbitrary(maxCplx)
		idx := m.rng.Intn(len(*value) + 1)
		*value = append(*value, v)
		copy((*value)[idx+1:], (*value)[idx:])
		(*value)[idx] = v
		newCache, ok := m.Inner.ValidateValue(&(*value)[idx])
		if !ok {
			panic("primitives: VectorMutator inner RandomArbitrary produced an invalid element")
		}
		c.elemCaches = append(c.elemCaches, nil)
		copy(c.elemCaches[idx+1:], c.elemCaches[idx:])
		c.elemCaches[idx] = newCache
		return &vectorToken[V]{kind: vecTokenInserted, index: idx}, m.Complexity(value, cache)
	}
	if len(*value) == 0 {
		v, cplx := m.Inner.RandomArbitrary(maxCplx)
		*value = append(*value, v)
		newCache, _ := m.Inner.ValidateValue(&(*value)[0])
		c.elemCaches = append(c.elemCaches, newCache)
		return &vectorToken[V]{kind: vecTokenInserted, index: 0}, cplx + 1
	}
	idx := m.rng.Intn(len(*value))
	token, cplx := m.Inner.RandomMutate(&(*value)[idx], c.elemCaches[idx], maxCplx)
	return &vectorToken[V]{kind: vecTokenElemMutate, index: idx, elemToken: token}, cplx
}

func (m *VectorMutator[V]) Unmutate(value *[]V, cache mutator.Cache, token mutator.UnmutateToken) {
	t := token.(*vectorToken[V])
	c := cache.(*vectorCache)
	switch t.kind {
	case vecTokenRemoved:
		idx := t.index
		*value = append(*value, t.savedElem)
		copy((*value)[idx+1:], (*value)[idx:])
		(*value)[idx] = t.savedElem
		c.elemCaches = append(c.elemCaches, nil)
		copy(c.elemCaches[idx+1:], c.elemCaches[idx:])
		c.elemCaches[idx] = t.savedCache
	case vecTokenInserted:
		idx := t.index
		*value = append((*value)[:idx], (*value)[idx+1:]...)
		c.elemCaches = append(c.elemCaches[:idx], c.elemCaches[idx+1:]...)
	case vecTokenElemMutate:
		m.Inner.Unmutate(&(*value)[t.index], c.elemCaches[t.index], t.elemToken)
	case vecTokenElemReplaced:
		(*value)[t.index] = t.savedElem
		c.elemCaches[t.index] = t.savedCache
	}
}

func (m *VectorMutator[V]) Lens(value *[]V, cache mutator.Cache, path mutator.LensPath) (any, bool) {
	idx, ok := path.(int)
	if !ok || idx < 0 || idx >= len(*value) {
		return nil, false
	}
	return &(*value)[idx], true
}

func (m *VectorMutator[V]) AllPaths(value *[]V, cache mutator.Cache, register func(reflect.Type, mutator.LensPath, float64)) {
	c := cache.(*vectorCache)
	var zero V
	typ := reflect.TypeOf(zero)
	for i := range *value {
		cplx := m.Inner.Complexity(&(*value)[i], c.elemCaches[i])
		if typ != nil {
			register(typ, i, cplx)
		}
		m.Inner.AllPaths(&(*value)[i], c.elemCaches[i], register)
	}
}

func (m *VectorMutator[V]) CrossoverMutate(value *[]V, cache mutator.Cache, provider mutator.SubValueProvider, maxCplx float64) (mutator.UnmutateToken, float64) {
	c := cache.(*vectorCache)
	var zero V
	typ := reflect.TypeOf(zero)
	if typ != nil && len(*value) > 0 {
		if sub, _, ok := provider.GetSubvalue(typ, maxCplx, nil); ok {
			if v, ok := sub.(V); ok {
				idx := m.rng.Intn(len(*value))
				savedElem := (*value)[idx]
				savedCache := c.elemCaches[idx]
				(*value)[idx] = v
				newCache, valid := m.Inner.ValidateValue(&(*value)[idx])
				if valid {
					c.elemCaches[idx] = newCache
					return &vectorToken[V]{kind: vecTokenElemReplaced, index: idx, savedElem: savedElem, savedCache: savedCache}, m.Complexity(value, cache)
				}
				(*value)[idx] = savedElem
			}
		}
	}
	return m.RandomMutate(value, cache, maxCplx)
}
