package primitives

import "github.com/katalvlaran/lvlfuzz/mutator"

// MapAdaptorMutator and AndMapAdaptorMutator are primitives.-package
// aliases of mutator.MapMutator/mutator.AndMapMutator. Both names
// resolve to the same two generic combinators; this package re-exports
// them so callers composing leaf primitives never need to import
// package mutator just to adapt one.
type MapAdaptorMutator[From, To any] = mutator.MapMutator[From, To]

// AndMapAdaptorMutator re-exports mutator.AndMapMutator under the
// primitives namespace, see MapAdaptorMutator.
type AndMapAdaptorMutator[From, To any] = mutator.AndMapMutator[From, To]

// NewMappedInt is a convenience constructor wrapping an
// IntWithinRangeMutator behind a bijective projection, the combination
// most primitives callers reach for first (e.g. mutating an enum
// discriminant or a newtype wrapper around an integer).
func NewMappedInt[To any](lo, hi int, parse func(*To) (int, bool), mp func(*int) To, opts ...IntRangeOption) *MapAdaptorMutator[int, To] {
	inner := NewIntWithinRangeMutator[int](lo, hi, opts...)
	return mutator.NewMapMutator[int, To](inner, parse, mp)
}
