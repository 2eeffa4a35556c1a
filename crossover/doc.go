// Package crossover implements the sub-value provider spec.md §4.7
// describes: given an existing interesting input, build a catalog of
// its addressable sub-values via Mutator.AllPaths, then let a
// CrossoverMutate implementation pull compatible sub-values out of that
// catalog by type to seed cross-pollinating mutations.
package crossover
