package primitives

import (
	"math/rand"
	"reflect"

	"github.com/katalvlaran/lvlfuzz/mutator"
)

// Tuple2 is a concrete product of two values, since Go has no built-in
// tuple type. TupleMutator2 mutates it field by field.
type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

// Tuple3 is the three-field analogue of Tuple2.
type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// TupleMutator2 composes two component mutators into one over Tuple2.
// Complexity is the sum of the two components' complexities: unlike
// Option or Vector there is no extra "shape" bit, since a tuple's arity
// is fixed at compile time and carries no information of its own.
type TupleMutator2[A, B any] struct {
	M0  mutator.Mutator[A]
	M1  mutator.Mutator[B]
	rng *rand.Rand
}

// NewTupleMutator2 builds a TupleMutator2 from its two component mutators.
func NewTupleMutator2[A, B any](m0 mutator.Mutator[A], m1 mutator.Mutator[B]) *TupleMutator2[A, B] {
	return &TupleMutator2[A, B]{M0: m0, M1: m1, rng: rand.New(rand.NewSource(1))}
}

type tuple2Cache struct {
	c0, c1 mutator.Cache
}

type tuple2Step struct {
	idx   int
	step0 mutator.MutationStep
	step1 mutator.MutationStep
}

type tuple2ArbStep struct {
	step0 mutator.ArbitraryStep
	step1 mutator.ArbitraryStep
}

type tuple2Token struct {
	idx   int
	token mutator.UnmutateToken
}

func (m *TupleMutator2[A, B]) DefaultArbitraryStep() mutator.ArbitraryStep {
	return &tuple2ArbStep{step0: m.M0.DefaultArbitraryStep(), step1: m.M1.DefaultArbitraryStep()}
}

func (m *TupleMutator2[A, B]) ValidateValue(value *Tuple2[A, B]) (mutator.Cache, bool) {
	c0, ok := m.M0.ValidateValue(&value.V0)
	if !ok {
		return nil, false
	}
	c1, ok := m.M1.ValidateValue(&value.V1)
	if !ok {
		return nil, false
	}
	return &tuple2Cache{c0: c0, c1: c1}, true
}

func (m *TupleMutator2[A, B]) DefaultMutationStep(value *Tuple2[A, B], cache mutator.Cache) mutator.MutationStep {
	c := cache.(*tuple2Cache)
	return &tuple2Step{
		step0: m.M0.DefaultMutationStep(&value.V0, c.c0),
		step1: m.M1.DefaultMutationStep(&value.V1, c.c1),
	}
}

func (m *TupleMutator2[A, B]) MaxComplexity() float64 { return m.M0.MaxComplexity() + m.M1.MaxComplexity() }
func (m *TupleMutator2[A, B]) MinComplexity() float64 { return m.M0.MinComplexity() + m.M1.MinComplexity() }
func (m *TupleMutator2[A, B]) GlobalSearchSpaceComplexity() float64 {
	return m.M0.GlobalSearchSpaceComplexity() + m.M1.GlobalSearchSpaceComplexity()
}

func (m *TupleMutator2[A, B]) Complexity(value *Tuple2[A, B], cache mutator.Cache) float64 {
	c := cache.(*tuple2Cache)
	return m.M0.Complexity(&value.V0, c.c0) + m.M1.Complexity(&value.V1, c.c1)
}

func (m *TupleMutator2[A, B]) OrderedArbitrary(step mutator.ArbitraryStep, maxCplx float64) (Tuple2[A, B], float64, bool) {
	s := step.(*tuple2ArbStep)
	var out Tuple2[A, B]
	v0, c0, ok := m.M0.OrderedArbitrary(s.step0, maxCplx)
	if !ok {
		return out, 0, false
	}
	v1, c1, ok := m.M1.OrderedArbitrary(s.step1, maxCplx-c0)
	if !ok {
		return out, 0, false
	}
	out.V0, out.V1 = v0, v1
	return out, c0 + c1, true
}

func (m *TupleMutator2[A, B]) RandomArbitrary(maxCplx float64) (Tuple2[A, B], float64) {
	var out Tuple2[A, B]
	v0, c0 := m.M0.RandomArbitrary(maxCplx / 2)
	v1, c1 := m.M1.RandomArbitrary(maxCplx - c0)
	out.V0, out.V1 = v0, v1
	return out, c0 + c1
}

func (m *TupleMutator2[A, B]) OrderedMutate(value *Tuple2[A, B], cache mutator.Cache, step mutator.MutationStep, maxCplx float64) (mutator.UnmutateToken, float64, bool) {
	s := step.(*tuple2Step)
	c := cache.(*tuple2Cache)
	for s.idx <= 1 {
		switch s.idx {
		case 0:
			token, cplx, ok := m.M0.OrderedMutate(&value.V0, c.c0, s.step0, maxCplx)
			if ok {
				return tuple2Token{idx: 0, token: token}, cplx, true
			}
		case 1:
			token, cplx, ok := m.M1.OrderedMutate(&value.V1, c.c1, s.step1, maxCplx)
			if ok {
				return tuple2Token{idx: 1, token: token}, cplx, true
			}
		}
		s.idx++
	}
	return nil, 0, false
}

func (m *TupleMutator2[A, B]) RandomMutate(value *Tuple2[A, B], cache mutator.Cache, maxCplx float64) (mutator.UnmutateToken, float64) {
	c := cache.(*tuple2Cache)
	if m.rng.Intn(2) == 0 {
		token, cplx := m.M0.RandomMutate(&value.V0, c.c0, maxCplx)
		return tuple2Token{idx: 0, token: token}, cplx
	}
	token, cplx := m.M1.RandomMutate(&value.V1, c.c1, maxCplx)
	return tuple2Token{idx: 1, token: token}, cplx
}

func (m *TupleMutator2[A, B]) Unmutate(value *Tuple2[A, B], cache mutator.Cache, token mutator.UnmutateToken) {
	t := token.(tuple2Token)
	c := cache.(*tuple2Cache)
	if t.idx == 0 {
		m.M0.Unmutate(&value.V0, c.c0, t.token)
	} else {
		m.M1.Unmutate(&value.V1, c.c1, t.token)
	}
}

func (m *TupleMutator2[A, B]) Lens(value *Tuple2[A, B], cache mutator.Cache, path mutator.LensPath) (any, bool) {
	c := cache.(*tuple2Cache)
	switch path {
	case 0:
		return &value.V0, true
	case 1:
		return &value.V1, true
	default:
		return m.lensNested(value, c, path)
	}
}

func (m *TupleMutator2[A, B]) lensNested(value *Tuple2[A, B], c *tuple2Cache, path mutator.LensPath) (any, bool) {
	if sub, ok := m.M0.Lens(&value.V0, c.c0, path); ok {
		return sub, true
	}
	return m.M1.Lens(&value.V1, c.c1, path)
}

func (m *TupleMutator2[A, B]) AllPaths(value *Tuple2[A, B], cache mutator.Cache, register func(reflect.Type, mutator.LensPath, float64)) {
	c := cache.(*tuple2Cache)
	register(reflect.TypeOf(value.V0), 0, m.M0.Complexity(&value.V0, c.c0))
	register(reflect.TypeOf(value.V1), 1, m.M1.Complexity(&value.V1, c.c1))
	m.M0.AllPaths(&value.V0, c.c0, register)
	m.M1.AllPaths(&value.V1, c.c1, register)
}

func (m *TupleMutator2[A, B]) CrossoverMutate(value *Tuple2[A, B], cache mutator.Cache, provider mutator.SubValueProvider, maxCplx float64) (mutator.UnmutateToken, float64) {
	c := cache.(*tuple2Cache)
	if m.rng.Intn(2) == 0 {
		token, cplx := m.M0.CrossoverMutate(&value.V0, c.c0, provider, maxCplx)
		return tuple2Token{idx: 0, token: token}, cplx
	}
	token, cplx := m.M1.CrossoverMutate(&value.V1, c.c1, provider, maxCplx)
	return tuple2Token{idx: 1, token: token}, cplx
}

// TupleMutator3 is TupleMutator2's three-field analogue.
type TupleMutator3[A, B, C any] struct {
	M0  mutator.Mutator[A]
	M1  mutator.Mutator[B]
	M2  mutator.Mutator[C]
	rng *rand.Rand
}

// NewTupleMutator3 builds a TupleMutator3 from its three component mutators.
func NewTupleMutator3[A, B, C any](m0 mutator.Mutator[A], m1 mutator.Mutator[B], m2 mutator.Mutator[C]) *TupleMutator3[A, B, C] {
	return &TupleMutator3[A, B, C]{M0: m0, M1: m1, M2: m2, rng: rand.New(rand.NewSource(1))}
}

type tuple3Cache struct {
	c0, c1, c2 mutator.Cache
}

type tuple3Step struct {
	idx                int
	step0, step1, step2 mutator.MutationStep
}

type tuple3ArbStep struct {
	step0, step1, step2 mutator.ArbitraryStep
}

type tuple3Token struct {
	idx   int
	token mutator.UnmutateToken
}

func (m *TupleMutator3[A, B, C]) DefaultArbitraryStep() mutator.ArbitraryStep {
	return &tuple3ArbStep{
		step0: m.M0.DefaultArbitraryStep(),
		step1: m.M1.DefaultArbitraryStep(),
		step2: m.M2.DefaultArbitraryStep(),
	}
}

func (m *TupleMutator3[A, B, C]) ValidateValue(value *Tuple3[A, B, C]) (mutator.Cache, bool) {
	c0, ok := m.M0.ValidateValue(&value.V0)
	if !ok {
		return nil, false
	}
	c1, ok := m.M1.ValidateValue(&value.V1)
	if !ok {
		return nil, false
	}
	c2, ok := m.M2.ValidateValue(&value.V2)
	if !ok {
		return nil, false
	}
	return &tuple3Cache{c0: c0, c1: c1, c2: c2}, true
}

func (m *TupleMutator3[A, B, C]) DefaultMutationStep(value *Tuple3[A, B, C], cache mutator.Cache) mutator.MutationStep {
	c := cache.(*tuple3Cache)
	return &tuple3Step{
		step0: m.M0.DefaultMutationStep(&value.V0, c.c0),
		step1: m.M1.DefaultMutationStep(&value.V1, c.c1),
		step2: m.M2.DefaultMutationStep(&value.V2, c.c2),
	}
}

func (m *TupleMutator3[A, B, C]) MaxComplexity() float64 {
	return m.M0.MaxComplexity() + m.M1.MaxComplexity() + m.M2.MaxComplexity()
}
func (m *TupleMutator3[A, B, C]) MinComplexity() float64 {
	return m.M0.MinComplexity() + m.M1.MinComplexity() + m.M2.MinComplexity()
}
func (m *TupleMutator3[A, B, C]) GlobalSearchSpaceComplexity() float64 {
	return m.M0.GlobalSearchSpaceComplexity() + m.M1.GlobalSearchSpaceComplexity() + m.M2.GlobalSearchSpaceComplexity()
}

func (m *TupleMutator3[A, B, C]) Complexity(value *Tuple3[A, B, C], cache mutator.Cache) float64 {
	c := cache.(*tuple3Cache)
	return m.M0.Complexity(&value.V0, c.c0) + m.M1.Complexity(&value.V1, c.c1) + m.M2.Complexity(&value.V2, c.c2)
}

func (m *TupleMutator3[A, B, C]) OrderedArbitrary(step mutator.ArbitraryStep, maxCplx float64) (Tuple3[A, B, C], float64, bool) {
	s := step.(*tuple3ArbStep)
	var out Tuple3[A, B, C]
	v0, c0, ok := m.M0.OrderedArbitrary(s.step0, maxCplx)
	if !ok {
		return out, 0, false
	}
	v1, c1, ok := m.M1.OrderedArbitrary(s.step1, maxCplx-c0)
	if !ok {
		return out, 0, false
	}
	v2, c2, ok := m.M2.OrderedArbitrary(s.step2, maxCplx-c0-c1)
	if !ok {
		return out, 0, false
	}
	out.V0, out.V1, out.V2 = v0, v1, v2
	return out, c0 + c1 + c2, true
}

func (m *TupleMutator3[A, B, C]) RandomArbitrary(maxCplx float64) (Tuple3[A, B, C], float64) {
	var out Tuple3[A, B, C]
	v0, c0 := m.M0.RandomArbitrary(maxCplx / 3)
	v1, c1 := m.M1.RandomArbitrary((maxCplx - c0) / 2)
	v2, c2 := m.M2.RandomArbitrary(maxCplx - c0 - c1)
	out.V0, out.V1, out.V2 = v0, v1, v2
	return out, c0 + c1 + c2
}

func (m *TupleMutator3[A, B, C]) OrderedMutate(value *Tuple3[A, B, C], cache mutator.Cache, step mutator.MutationStep, maxCplx float64) (mutator.UnmutateToken, float64, bool) {
	s := step.(*tuple3Step)
	c := cache.(*tuple3Cache)
	for s.idx <= 2 {
		switch s.idx {
		case 0:
			token, cplx, ok := m.M0.OrderedMutate(&value.V0, c.c0, s.step0, maxCplx)
			if ok {
				return tuple3Token{idx: 0, token: token}, cplx, true
			}
		case 1:
			token, cplx, ok := m.M1.OrderedMutate(&value.V1, c.c1, s.step1, maxCplx)
			if ok {
				return tuple3Token{idx: 1, token: token}, cplx, true
			}
		case 2:
			token, cplx, ok := m.M2.OrderedMutate(&value.V2, c.c2, s.step2, maxCplx)
			if ok {
				return tuple3Token{idx: 2, token: token}, cplx, true
			}
		}
		s.idx++
	}
	return nil, 0, false
}

func (m *TupleMutator3[A, B, C]) RandomMutate(value *Tuple3[A, B, C], cache mutator.Cache, maxCplx float64) (mutator.UnmutateToken, float64) {
	c := cache.(*tuple3Cache)
	switch m.rng.Intn(3) {
	case 0:
		token, cplx := m.M0.RandomMutate(&value.V0, c.c0, maxCplx)
		return tuple3Token{idx: 0, token: token}, cplx
	case 1:
		token, cplx := m.M1.RandomMutate(&value.V1, c.c1, maxCplx)
		return tuple3Token{idx: 1, token: token}, cplx
	default:
		token, cplx := m.M2.RandomMutate(&value.V2, c.c2, maxCplx)
		return tuple3Token{idx: 2, token: token}, cplx
	}
}

func (m *TupleMutator3[A, B, C]) Unmutate(value *Tuple3[A, B, C], cache mutator.Cache, token mutator.UnmutateToken) {
	t := token.(tuple3Token)
	c := cache.(*tuple3Cache)
	switch t.idx {
	case 0:
		m.M0.Unmutate(&value.V0, c.c0, t.token)
	case 1:
		m.M1.Unmutate(&value.V1, c.c1, t.token)
	case 2:
		m.M2.Unmutate(&value.V2, c.c2, t.token)
	}
}

func (m *TupleMutator3[A, B, C]) Lens(value *Tuple3[A, B, C], cache mutator.Cache, path mutator.LensPath) (any, bool) {
	c := cache.(*tuple3Cache)
	switch path {
	case 0:
		return &value.V0, true
	case 1:
		return &value.V1, true
	case 2:
		return &value.V2, true
	default:
		if sub, ok := m.M0.Lens(&value.V0, c.c0, path); ok {
			return sub, true
		}
		if sub, ok := m.M1.Lens(&value.V1, c.c1, path); ok {
			return sub, true
		}
		return m.M2.Lens(&value.V2, c.c2, path)
	}
}

func (m *TupleMutator3[A, B, C]) AllPaths(value *Tuple3[A, B, C], cache mutator.Cache, register func(reflect.Type, mutator.LensPath, float64)) {
	c := cache.(*tuple3Cache)
	register(reflect.TypeOf(value.V0), 0, m.M0.Complexity(&value.V0, c.c0))
	register(reflect.TypeOf(value.V1), 1, m.M1.Complexity(&value.V1, c.c1))
	register(reflect.TypeOf(value.V2), 2, m.M2.Complexity(&value.V2, c.c2))
	m.M0.AllPaths(&value.V0, c.c0, register)
	m.M1.AllPaths(&value.V1, c.c1, register)
	m.M2.AllPaths(&value.V2, c.c2, register)
}

func (m *TupleMutator3[A, B, C]) CrossoverMutate(value *Tuple3[A, B, C], cache mutator.Cache, provider mutator.SubValueProvider, maxCplx float64) (mutator.UnmutateToken, float64) {
	c := cache.(*tuple3Cache)
	switch m.rng.Intn(3) {
	case 0:
		token, cplx := m.M0.CrossoverMutate(&value.V0, c.c0, provider, maxCplx)
		return tuple3Token{idx: 0, token: token}, cplx
	case 1:
		token, cplx := m.M1.CrossoverMutate(&value.V1, c.c1, provider, maxCplx)
		return tuple3Token{idx: 1, token: token}, cplx
	default:
		token, cplx := m.M2.CrossoverMutate(&value.V2, c.c2, provider, maxCplx)
		return tuple3Token{idx: 2, token: token}, cplx
	}
}
