package recursive_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfuzz/mutator"
	"github.com/katalvlaran/lvlfuzz/primitives"
	"github.com/katalvlaran/lvlfuzz/recursive"
)

type recTestTree struct {
	Value int
	Left  *recTestTree
	Right *recTestTree
}

type recTestTuple = primitives.Tuple3[int, *recTestTree, *recTestTree]

func newTreeMutator() *recursive.RecursiveMutator[recTestTree] {
	return recursive.NewRecursiveMutator[recTestTree](func(recur *recursive.RecurToMutator[recTestTree]) mutator.Mutator[recTestTree] {
		childMutator := primitives.NewOptionMutator[recTestTree](recur)
		valueMutator := primitives.NewIntWithinRangeMutator[int](0, 100)
		tupleMutator := primitives.NewTupleMutator3[int, *recTestTree, *recTestTree](valueMutator, childMutator, childMutator)
		return mutator.NewMapMutator[recTestTuple, recTestTree](
			tupleMutator,
			func(t *recTestTree) (recTestTuple, bool) {
				return recTestTuple{V0: t.Value, V1: t.Left, V2: t.Right}, true
			},
			func(tup *recTestTuple) recTestTree {
				return recTestTree{Value: tup.V0, Left: tup.V1, Right: tup.V2}
			},
		)
	})
}

func TestRecursiveMutatorHasInfiniteBounds(t *testing.T) {
	tree := newTreeMutator()
	require.True(t, math.IsInf(tree.MaxComplexity(), 1))
	require.True(t, math.IsInf(tree.GlobalSearchSpaceComplexity(), 1))
}

func TestRecursiveMutatorRoundTrip(t *testing.T) {
	tree := newTreeMutator()

	value := recTestTree{
		Value: 5,
		Left:  &recTestTree{Value: 3},
		Right: &recTestTree{Value: 8, Left: &recTestTree{Value: 7}},
	}

	cache, ok := tree.ValidateValue(&value)
	require.True(t, ok)

	before := value
	step := tree.DefaultMutationStep(&value, cache)
	token, _, ok := tree.OrderedMutate(&value, cache, step, 50)
	require.True(t, ok)

	tree.Unmutate(&value, cache, token)
	require.Equal(t, before.Value, value.Value)
	require.Equal(t, before.Left.Value, value.Left.Value)
	require.Equal(t, before.Right.Value, value.Right.Value)
	require.Equal(t, before.Right.Left.Value, value.Right.Left.Value)
}
