package grammar

import (
	"math/rand"
	"reflect"

	"github.com/katalvlaran/lvlfuzz/mutator"
)

// concatMutator mutates an ASTKindConcatenation node: a fixed-arity
// sequence of heterogeneously-typed parts, one mutator per position.
// Unlike VectorMutator its arity never changes; unlike TupleMutator2/3
// it supports an arbitrary number of positions.
type concatMutator struct {
	elems []mutator.Mutator[AST]
	rng   *rand.Rand
}

func newConcatMutator(elems []mutator.Mutator[AST]) *concatMutator {
	return &concatMutator{elems: elems, rng: rand.New(rand.NewSource(1))}
}

type concatCache struct {
	elemCaches []mutator.Cache
}

type concatStep struct {
	idx      int
	elemStep mutator.MutationStep
}

type concatArbStep struct {
	steps []mutator.ArbitraryStep
}

type concatToken struct {
	idx   int
	token mutator.UnmutateToken
}

func (m *concatMutator) DefaultArbitraryStep() mutator.ArbitraryStep {
	return &concatArbStep{steps: make([]mutator.ArbitraryStep, len(m.elems))}
}

func (m *concatMutator) ValidateValue(value *AST) (mutator.Cache, bool) {
	if value.Kind != ASTKindConcatenation || len(value.Parts) != len(m.elems) {
		return nil, false
	}
	caches := make([]mutator.Cache, len(m.elems))
	for i, e := range m.elems {
		c, ok := e.ValidateValue(value.Parts[i])
		if !ok {
			return nil, false
		}
		caches[i] = c
	}
	return &concatCache{elemCaches: caches}, true
}

func (m *concatMutator) DefaultMutationStep(_ *AST, _ mutator.Cache) mutator.MutationStep {
	return &concatStep{}
}

func (m *concatMutator) MaxComplexity() float64 {
	var total float64
	for _, e := range m.elems {
		total += e.MaxComplexity()
	}
	return total
}

func (m *concatMutator) MinComplexity() float64 {
	var total float64
	for _, e := range m.elems {
		total += e.MinComplexity()
	}
	return total
}

func (m *concatMutator) GlobalSearchSpaceComplexity() float64 {
	var total float64
	for _, e := range m.elems {
		total += e.GlobalSearchSpaceComplexity()
	}
	return total
}

func (m *concatMutator) Complexity(value *AST, cache mutator.Cache) float64 {
	c := cache.(*concatCache)
	var total float64
	for i, e := range m.elems {
		total += e.Complexity(value.Parts[i], c.elemCaches[i])
	}
	return total
}

func (m *concatMutator) OrderedArbitrary(step mutator.ArbitraryStep, maxCplx float64) (AST, float64, bool) {
	s := step.(*concatArbStep)
	parts := make([]*AST, len(m.elems))
	total := 0.0
	for i, e := range m.elems {
		if s.steps[i] == nil {
			s.steps[i] = e.DefaultArbitraryStep()
		}
		v, cplx, ok := e.OrderedArbitrary(s.steps[i], maxCplx-total)
		if !ok {
			return AST{}, 0, false
		}
		vv := v
		parts[i] = &vv
		total += cplx
	}
	return AST{Kind: ASTKindConcatenation, Parts: parts}, total, true
}

func (m *concatMutator) RandomArbitrary(maxCplx float64) (AST, float64) {
	parts := make([]*AST, len(m.elems))
	total := 0.0
	if len(m.elems) == 0 {
		return AST{Kind: ASTKindConcatenation, Parts: parts}, 0
	}
	budgetEach := maxCplx / float64(len(m.elems))
	for i, e := range m.elems {
		v, cplx := e.RandomArbitrary(budgetEach)
		vv := v
		parts[i] = &vv
		total += cplx
	}
	return AST{Kind: ASTKindConcatenation, Parts: parts}, total
}

func (m *concatMutator) OrderedMutate(value *AST, cache mutator.Cache, step mutator.MutationStep, maxCplx float64) (mutator.UnmutateToken, float64, bool) {
	s := step.(*concatStep)
	c := cache.(*concatCache)
	for s.idx < len(m.elems) {
		idx := s.idx
		if s.elemStep == nil {
			s.elemStep = m.elems[idx].DefaultMutationStep(value.Parts[idx], c.elemCaches[idx])
		}
		token, cplx, ok := m.elems[idx].OrderedMutate(value.Parts[idx], c.elemCaches[idx], s.elemStep, maxCplx)
		if !ok {
			s.idx++
			s.elemStep = nil
			continue
		}
		return concatToken{idx: idx, token: token}, cplx, true
	}
	return nil, 0, false
}

func (m *concatMutator) RandomMutate(value *AST, cache mutator.Cache, maxCplx float64) (mutator.UnmutateToken, float64) {
	c := cache.(*concatCache)
	idx := m.rng.Intn(len(m.elems))
	token, cplx := m.elems[idx].RandomMutate(value.Parts[idx], c.elemCaches[idx], maxCplx)
	return concatToken{idx: idx, token: token}, cplx
}

func (m *concatMutator) Unmutate(value *AST, cache mutator.Cache, token mutator.UnmutateToken) {
	t := token.(concatToken)
	c := cache.(*concatCache)
	m.elems[t.idx].Unmutate(value.Parts[t.idx], c.elemCaches[t.idx], t.token)
}

func (m *concatMutator) Lens(value *AST, _ mutator.Cache, path mutator.LensPath) (any, bool) {
	idx, ok := path.(int)
	if !ok || idx < 0 || idx >= len(value.Parts) {
		return nil, false
	}
	return value.Parts[idx], true
}

func (m *concatMutator) AllPaths(value *AST, cache mutator.Cache, register func(reflect.Type, mutator.LensPath, float64)) {
	c := cache.(*concatCache)
	astType := reflect.TypeOf(AST{})
	for i, e := range m.elems {
		register(astType, i, e.Complexity(value.Parts[i], c.elemCaches[i]))
		e.AllPaths(value.Parts[i], c.elemCaches[i], register)
	}
}

func (m *concatMutator) CrossoverMutate(value *AST, cache mutator.Cache, provider mutator.SubValueProvider, maxCplx float64) (mutator.UnmutateToken, float64) {
	c := cache.(*concatCache)
	idx := m.rng.Intn(len(m.elems))
	token, cplx := m.elems[idx].CrossoverMutate(value.Parts[idx], c.elemCaches[idx], provider, maxCplx)
	return concatToken{idx: idx, token: token}, cplx
}
