package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfuzz/bitset"
)

// S3: FixedBitSet of length 130, insert 0/64/129, Ones/CountOnes/Grow.
func TestFixedBitSetScenarioS3(t *testing.T) {
	s := bitset.WithCapacity(130)
	s.Insert(0)
	s.Insert(64)
	s.Insert(129)

	require.Equal(t, []int{0, 64, 129}, s.Ones())
	require.Equal(t, 3, s.CountOnes())

	s.Grow(200)
	require.Equal(t, 200, s.Len())
	require.Equal(t, []int{0, 64, 129}, s.Ones())
	require.Equal(t, 3, s.CountOnes())
}

func TestFixedBitSetPutReturnsPreviousValue(t *testing.T) {
	s := bitset.WithCapacity(8)
	require.False(t, s.Put(3))
	require.True(t, s.Put(3))
	require.True(t, s.Contains(3))
}

func TestFixedBitSetToggle(t *testing.T) {
	s := bitset.WithCapacity(8)
	s.Toggle(5)
	require.True(t, s.Contains(5))
	s.Toggle(5)
	require.False(t, s.Contains(5))
}

func TestFixedBitSetOutOfBoundsPanics(t *testing.T) {
	s := bitset.WithCapacity(8)
	require.Panics(t, func() { s.Insert(8) })
	require.Panics(t, func() { s.Put(-1) })
	require.Panics(t, func() { s.Toggle(100) })
}

func TestFixedBitSetClear(t *testing.T) {
	s := bitset.WithCapacity(8)
	s.Insert(0)
	s.Insert(7)
	s.Clear()
	require.Equal(t, 0, s.CountOnes())
	require.Equal(t, 8, s.Len(), "Clear does not change capacity")
}

func TestFixedBitSetUnionWith(t *testing.T) {
	a := bitset.WithCapacity(8)
	a.Insert(1)
	b := bitset.WithCapacity(8)
	b.Insert(2)

	a.UnionWith(b)
	require.Equal(t, []int{1, 2}, a.Ones())
}

func TestFixedBitSetIntersectWith(t *testing.T) {
	a := bitset.WithCapacity(8)
	a.Insert(1)
	a.Insert(2)
	b := bitset.WithCapacity(8)
	b.Insert(2)

	a.IntersectWith(b)
	require.Equal(t, []int{2}, a.Ones())
	require.Equal(t, 8, a.Len(), "IntersectWith leaves capacity unchanged")
}

func TestFixedBitSetDifferenceWith(t *testing.T) {
	a := bitset.WithCapacity(8)
	a.Insert(1)
	a.Insert(2)
	b := bitset.WithCapacity(8)
	b.Insert(2)

	a.DifferenceWith(b)
	require.Equal(t, []int{1}, a.Ones())
}

func TestFixedBitSetSymmetricDifferenceWith(t *testing.T) {
	a := bitset.WithCapacity(8)
	a.Insert(1)
	a.Insert(2)
	b := bitset.WithCapacity(8)
	b.Insert(2)
	b.Insert(3)

	a.SymmetricDifferenceWith(b)
	require.Equal(t, []int{1, 3}, a.Ones())
}

func TestFixedBitSetGrowAcrossMultipleBlocks(t *testing.T) {
	s := bitset.WithCapacity(8)
	s.Insert(7)
	s.Grow(130)
	require.True(t, s.Contains(7))
	require.False(t, s.Contains(129))
	s.Insert(129)
	require.Equal(t, []int{7, 129}, s.Ones())
}

func TestFixedBitSetClone(t *testing.T) {
	a := bitset.WithCapacity(8)
	a.Insert(1)
	b := a.Clone()
	b.Insert(2)

	require.Equal(t, []int{1}, a.Ones(), "mutating the clone must not affect the original")
	require.Equal(t, []int{1, 2}, b.Ones())
}
