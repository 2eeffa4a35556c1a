// Package pool implements the pool side of the pool/sensor/observation
// contract (spec.md §2 item 6): a Pool ranks which stored inputs are
// worth mutating next, and consumes each run's Observation to decide
// whether the input that produced it is worth keeping.
package pool

import "fmt"

// PoolStorageIndex is an opaque handle to the driver's input store. The
// pool never interprets it beyond equality and as a CorpusDelta payload;
// the driver owns what it actually points to.
type PoolStorageIndex uint64

// CorpusDelta is a pool's verdict on one Process call: whether the input
// that was just run is worth adding to the corpus, and which previously
// stored inputs it makes redundant.
type CorpusDelta struct {
	// Path is a pool-chosen, driver-relative directory for any
	// artifacts this delta's input should be saved under.
	Path string
	// Add reports whether the input that triggered this delta should be
	// added to the corpus.
	Add bool
	// Remove lists previously stored inputs this delta evicts.
	Remove []PoolStorageIndex
}

// Stats is a pool's human-readable snapshot of its own state, rendered
// by the driver's progress reporting. It is deliberately narrow: pools
// only need to be Stringer-compatible, not introspectable.
type Stats interface {
	fmt.Stringer
}

// RankedInput pairs a stored input with the score a pool currently
// assigns it; higher scores are more worth selecting for mutation.
type RankedInput struct {
	Index PoolStorageIndex
	Score float64
}

// StatsFile is one file a pool wants persisted under its stats folder,
// returned by SaveToStatsFolder.
type StatsFile struct {
	RelativePath string
	Data         []byte
}

// Pool is the read side every pool implements: a snapshot of its state
// and its current ranking of stored inputs.
type Pool interface {
	Stats() Stats
	RankedTestCases() []RankedInput
}

// CompatibleWithObservations is the write side: a pool able to consume
// one test run's Observation of type O and report the resulting corpus
// delta. A pool may implement this for more than one O (spec.md's
// "pools are pure functions of their own state + inputs").
type CompatibleWithObservations[O any] interface {
	Process(inputID PoolStorageIndex, obs O, complexity float64) []CorpusDelta
}

// SaveToStatsFolder is implemented by pools that persist auxiliary
// artifacts (CSV summaries, etc.) alongside the corpus. Returning an
// empty slice is valid and common.
type SaveToStatsFolder interface {
	SaveToStatsFolder() []StatsFile
}
