package mutator_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfuzz/mutator"
)

func digitsAndMapMutator() *mutator.AndMapMutator[int, string] {
	inner := &intMutator{lo: 0, hi: 9}
	mp := func(n *int, s *string) { *s = strconv.Itoa(*n) }
	return mutator.NewAndMapMutator(inner, mp, "")
}

func TestAndMapMutatorKeepsDerivedInSync(t *testing.T) {
	require := require.New(t)
	m := digitsAndMapMutator()

	value, cplx := m.RandomArbitrary(100)
	require.Equal(8.0, cplx)
	require.Equal(strconv.Itoa(value.Base), value.Derived)

	cache, ok := m.ValidateValue(&value)
	require.True(ok)

	step := m.DefaultMutationStep(&value, cache)
	token, _, ok := m.OrderedMutate(&value, cache, step, 100)
	require.True(ok)
	require.Equal(strconv.Itoa(value.Base), value.Derived, "derived string must track the mutated base")

	m.Unmutate(&value, cache, token)
	require.Equal(strconv.Itoa(value.Base), value.Derived, "derived string must track the unmutated base")
}
