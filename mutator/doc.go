// Package mutator (lvlfuzz) defines the Mutator contract: the abstract
// capability to generate and reversibly mutate values of a fixed Go type
// for the purpose of coverage-guided, structure-aware fuzzing.
//
// A Mutator never inspects a value except through its own methods. It is
// responsible for:
//
//	generation   — ordered_arbitrary / random_arbitrary
//	mutation     — ordered_mutate / random_mutate / unmutate
//	complexity   — a monotone, non-negative size estimate of a value
//	sub-values   — lens / all_paths, used by the crossover provider
//
// # Cache, MutationStep, ArbitraryStep, UnmutateToken
//
// These four associated kinds are all represented by the Go type any.
// By convention, every Cache, MutationStep and ArbitraryStep that
// carries state is a pointer to a mutator-private struct (e.g.
// *vectorCache, *vectorStep); a stateless Cache (struct{}{}) and
// UnmutateTokens, which are only handed back, may be plain values.
// Mutating the pointee in place is how this package satisfies the
// "value and cache are mutated in-place" contract without needing
// pointer-to-interface plumbing. Callers must never inspect the
// concrete type behind Cache/MutationStep/ArbitraryStep/UnmutateToken;
// they are opaque tokens to be handed back to the same Mutator.
//
// # Complexity
//
// Complexity is a float64 approximating the "size" of a value. It must
// satisfy MinComplexity() <= Complexity(v, c) <= MaxComplexity() for
// every valid (v, c). Recursive mutators may report +Inf for
// MaxComplexity.
//
// # Round-trip contract
//
// For any (token, cplx) returned by OrderedMutate, RandomMutate, or
// CrossoverMutate, calling Unmutate with that token must restore the
// value and cache bit-for-bit to their state immediately before the
// mutation. Violating this is a programmer error, not a runtime
// condition, and implementations may panic rather than silently
// misbehave.
package mutator
