package primitives_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfuzz/primitives"
)

func TestVectorMutatorShrinksThenGrowsThenMutatesElements(t *testing.T) {
	elem := primitives.NewIntWithinRangeMutator[int](0, 9)
	vm := primitives.NewVectorMutator[int](elem, primitives.WithMinLength(0), primitives.WithMaxLength(4))

	value := []int{1, 2, 3}
	cache, ok := vm.ValidateValue(&value)
	require.True(t, ok)

	step := vm.DefaultMutationStep(&value, cache)
	token, _, ok := vm.OrderedMutate(&value, cache, step, vm.MaxComplexity())
	require.True(t, ok)
	require.Len(t, value, 2)

	vm.Unmutate(&value, cache, token)
	require.Equal(t, []int{1, 2, 3}, value)

	token, _, ok = vm.OrderedMutate(&value, cache, step, vm.MaxComplexity())
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 3, 4}, value)

	vm.Unmutate(&value, cache, token)
	require.Equal(t, []int{1, 2, 3}, value)

	token, _, ok = vm.OrderedMutate(&value, cache, step, vm.MaxComplexity())
	require.True(t, ok)
	require.Equal(t, []int{4, 2, 3}, value)

	vm.Unmutate(&value, cache, token)
	require.Equal(t, []int{1, 2, 3}, value)
}

func TestVectorMutatorRespectsLengthBounds(t *testing.T) {
	elem := primitives.NewIntWithinRangeMutator[int](0, 9)
	vm := primitives.NewVectorMutator[int](elem, primitives.WithMinLength(2), primitives.WithMaxLength(2))

	value, _ := vm.RandomArbitrary(vm.MaxComplexity())
	require.Len(t, value, 2)
}

func TestVectorMutatorRandomRoundTrip(t *testing.T) {
	elem := primitives.NewIntWithinRangeMutator[int](0, 100)
	vm := primitives.NewVectorMutator[int](elem, primitives.WithMinLength(1), primitives.WithMaxLength(8))

	value := []int{5, 6, 7}
	cache, ok := vm.ValidateValue(&value)
	require.True(t, ok)

	before := append([]int(nil), value...)
	token, _ := vm.RandomMutate(&value, cache, vm.MaxComplexity())
	vm.Unmutate(&value, cache, token)
	require.Equal(t, before, value)
}

func TestVectorMutatorRejectsOutOfBoundsLength(t *testing.T) {
	elem := primitives.NewIntWithinRangeMutator[int](0, 9)
	vm := primitives.NewVectorMutator[int](elem, primitives.WithMinLength(1), primitives.WithMaxLength(2))

	value := []int{1, 2, 3}
	_, ok := vm.ValidateValue(&value)
	require.False(t, ok)
}

func TestNewVectorMutatorPanicsOnInvertedLength(t *testing.T) {
	elem := primitives.NewIntWithinRangeMutator[int](0, 9)
	require.Panics(t, func() {
		primitives.NewVectorMutator[int](elem, primitives.WithMinLength(5), primitives.WithMaxLength(1))
	})
}
