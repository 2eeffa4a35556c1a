// Package lvlfuzz is a coverage-guided, structure-aware fuzzing
// engine: it mutates typed Go values directly — ints, vectors,
// options, tuples, enums, recursive and grammar-shaped values — rather
// than flipping bytes in an opaque buffer.
//
// Everything is organized under subpackages:
//
//	mutator/    — the Mutator[V] contract and its generic combinators
//	             (Map, AndMap, Box)
//	primitives/ — concrete mutators for integers, options, vectors,
//	             tuples and enums
//	recursive/  — RecursiveMutator/RecurToMutator for self-referential
//	             types
//	grammar/    — compiling a context-free Grammar (or a regex subset)
//	             into a Mutator[AST]
//	crossover/  — a sub-value Provider that lets one interesting input
//	             seed mutations of another
//	sensor/     — the Sensor[O] contract plus UniqueValuesSensor and
//	             TestFailureSensor
//	pool/       — corpus management: UniqueValuesPool,
//	             AnyKeyUniqueValuesPool, TestFailurePool
//	bitset/     — FixedBitSet, a fixed-capacity coverage bitmap
//
// A Mutator[V] is the unit everything else composes: it knows how to
// generate a first value (OrderedArbitrary/RandomArbitrary), mutate an
// existing one reversibly (OrderedMutate/RandomMutate + Unmutate), and
// measure complexity, all within a caller-supplied budget. Combinators
// in mutator/ and primitives/ build structured mutators for compound
// types out of mutators for their parts, the same way a parser
// combinator library builds parsers out of smaller parsers.
//
// The module contains no driver: the loop that mutates an input, runs
// the test under a Sensor and hands the observations to a Pool is left
// to the caller.
package lvlfuzz
