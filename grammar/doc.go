// Package grammar lowers a context-free grammar description to a
// mutator.Mutator over its parse trees (and, via CompileString, over
// the serialized strings those trees produce).
//
// A Grammar value is a small sum type — literal ranges, alternation,
// concatenation, repetition, and a recursive reference back to an
// earlier rule — compiled once into a tree of primitives/recursive
// mutators. The compiled mutator operates on AST, the concrete parse
// tree type; CompileString adds a serialization layer on top via
// mutator.AndMapMutator so fuzzing targets that take a plain string
// still benefit from structure-aware mutation.
package grammar
