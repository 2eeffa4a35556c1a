package primitives_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfuzz/primitives"
)

// fixedValueProvider is a minimal mutator.SubValueProvider stub that
// hands back one fixed value of the requested type, then reports
// exhausted.
type fixedValueProvider struct {
	value any
}

func (p *fixedValueProvider) GetSubvalue(typ reflect.Type, _ float64, cursor any) (any, any, bool) {
	if cursor != nil || reflect.TypeOf(p.value) != typ {
		return nil, nil, false
	}
	return p.value, struct{}{}, true
}

func (p *fixedValueProvider) Identity() (uint64, uint64) { return 1, 0 }

func TestOptionMutatorSwitchesToNoneBeforeDelegating(t *testing.T) {
	inner := primitives.NewIntWithinRangeMutator[int](0, 100)
	om := primitives.NewOptionMutator[int](inner)

	v := 42
	ptr := &v
	cache, ok := om.ValidateValue(&ptr)
	require.True(t, ok)

	step := om.DefaultMutationStep(&ptr, cache)
	token, cplx, ok := om.OrderedMutate(&ptr, cache, step, om.MaxComplexity())
	require.True(t, ok)
	require.Equal(t, float64(1), cplx)
	require.Nil(t, ptr)

	om.Unmutate(&ptr, cache, token)
	require.NotNil(t, ptr)
	require.Equal(t, 42, *ptr)
}

func TestOptionMutatorGeneratesSomeFromNone(t *testing.T) {
	inner := primitives.NewIntWithinRangeMutator[int](0, 100)
	om := primitives.NewOptionMutator[int](inner)

	var ptr *int
	cache, ok := om.ValidateValue(&ptr)
	require.True(t, ok)

	step := om.DefaultMutationStep(&ptr, cache)
	_, _, ok = om.OrderedArbitrary(step, om.MaxComplexity())
	require.True(t, ok)

	token, _, ok := om.OrderedMutate(&ptr, cache, step, om.MaxComplexity())
	require.True(t, ok)
	require.NotNil(t, ptr)

	om.Unmutate(&ptr, cache, token)
	require.Nil(t, ptr)
}

// CrossoverMutate on a None value records tokenSwitchedToNone with a
// nil savedValue; Unmutate must restore None without dereferencing it.
func TestOptionMutatorCrossoverFromNoneUnmutateRoundTrip(t *testing.T) {
	inner := primitives.NewIntWithinRangeMutator[int](0, 100)
	om := primitives.NewOptionMutator[int](inner)

	var ptr *int
	cache, ok := om.ValidateValue(&ptr)
	require.True(t, ok)

	provider := &fixedValueProvider{value: 7}
	token, _ := om.CrossoverMutate(&ptr, cache, provider, om.MaxComplexity())
	require.NotNil(t, ptr)
	require.Equal(t, 7, *ptr)

	om.Unmutate(&ptr, cache, token)
	require.Nil(t, ptr, "unmutating a crossover-from-None must restore None, not panic")
}

func TestOptionMutatorRoundTripRandom(t *testing.T) {
	inner := primitives.NewIntWithinRangeMutator[int](-10, 10)
	om := primitives.NewOptionMutator[int](inner)

	v := 5
	ptr := &v
	cache, ok := om.ValidateValue(&ptr)
	require.True(t, ok)

	before := *ptr
	token, _ := om.RandomMutate(&ptr, cache, om.MaxComplexity())
	om.Unmutate(&ptr, cache, token)
	require.NotNil(t, ptr)
	require.Equal(t, before, *ptr)
}
