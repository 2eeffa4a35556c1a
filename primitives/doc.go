// Package primitives provides the leaf Mutator implementations that the
// rest of lvlfuzz composes: integers within a range, options, vectors,
// tuples, and enum/sum-type variants.
//
// Every type here implements mutator.Mutator[V] for some concrete V and
// is safe to embed inside combinators from package mutator (MapMutator,
// AndMapMutator, BoxMutator) or package recursive.
//
// Construction panics on invalid parameters (for example, an inverted
// integer range): per lvlath's convention, algorithms never panic at
// mutation time, only constructors panic, and only for parameters that
// could never describe a legal domain.
package primitives
