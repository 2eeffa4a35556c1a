package pool

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// AnyKeyObservation is the runtime-typed counterpart of
// sensor.KeyObservation[T], used when the key type is only known to be
// hashable+equatable at runtime, not at Go compile time (a grammar AST
// subtree observed at a crossover slot, for instance).
type AnyKeyObservation struct {
	Index int
	Key   any
}

type akvBucketEntry struct {
	key        any
	complexity float64
	bestInput  uint64
}

type akvKey struct {
	slot int
	hash uint64
}

type akvInput struct {
	data        PoolStorageIndex
	bestForKeys map[akvKey]struct{}
}

func (in *akvInput) score() float64 { return float64(len(in.bestForKeys)) }

// AnyKeyUniqueValuesPool is UniqueValuesPool's non-generic sibling for
// grammar/crossover-driven fuzzing, where the observed key's concrete
// type varies at runtime and so cannot be a Go type parameter fixed at
// the pool's construction. Keys are bucketed by Encode's xxhash.Sum64
// digest, with Equal resolving collisions within a bucket — this is the
// concrete answer spec.md's Data Model phrase "hashable/equatable
// value" leaves open for a statically typed host language; see
// DESIGN.md's pool/unique_values.go entry.
//
// Within a (slot, hash) bucket, the reverse best-for index is keyed by
// hash alone, not by (hash, Equal-identity): two distinct keys sharing a
// 64-bit xxhash digest in the same slot would be treated as one entry
// for eviction purposes. This is accepted as negligible-probability
// rather than worked around with a bucket-local sequence number, which
// would complicate every call site for a collision nobody will hit in
// practice.
type AnyKeyUniqueValuesPool struct {
	name   string
	size   int
	encode func(any) []byte
	equal  func(a, b any) bool

	buckets []map[uint64][]*akvBucketEntry

	inputs       map[uint64]*akvInput
	nextInputKey uint64
}

// NewAnyKeyUniqueValuesPool returns an empty pool. encode produces a
// stable byte encoding of a key for hashing; equal resolves hash
// collisions. Both must agree with each other (equal keys must encode
// identically).
func NewAnyKeyUniqueValuesPool(name string, size int, encode func(any) []byte, equal func(a, b any) bool) *AnyKeyUniqueValuesPool {
	p := &AnyKeyUniqueValuesPool{
		name:    name,
		size:    size,
		encode:  encode,
		equal:   equal,
		buckets: make([]map[uint64][]*akvBucketEntry, size),
		inputs:  make(map[uint64]*akvInput),
	}
	for i := range p.buckets {
		p.buckets[i] = make(map[uint64][]*akvBucketEntry)
	}
	return p
}

type anyKeyUniqueValuesPoolStats struct {
	name string
	size int
}

func (s anyKeyUniqueValuesPoolStats) String() string { return fmt.Sprintf("%s(%d)", s.name, s.size) }

func (p *AnyKeyUniqueValuesPool) Stats() Stats {
	return anyKeyUniqueValuesPoolStats{name: p.name, size: len(p.inputs)}
}

func (p *AnyKeyUniqueValuesPool) RankedTestCases() []RankedInput {
	out := make([]RankedInput, 0, len(p.inputs))
	for _, in := range p.inputs {
		out = append(out, RankedInput{Index: in.data, Score: in.score()})
	}
	return out
}

func (p *AnyKeyUniqueValuesPool) SaveToStatsFolder() []StatsFile { return nil }

func (p *AnyKeyUniqueValuesPool) find(slot int, key any) (*akvBucketEntry, uint64) {
	h := xxhash.Sum64(p.encode(key))
	for _, e := range p.buckets[slot][h] {
		if p.equal(e.key, key) {
			return e, h
		}
	}
	return nil, h
}

// Process mirrors UniqueValuesPool.Process over the runtime-typed
// observation shape.
func (p *AnyKeyUniqueValuesPool) Process(inputID PoolStorageIndex, obs []AnyKeyObservation, complexity float64) []CorpusDelta {
	type freshObs struct {
		slot     int
		key      any
		hash     uint64
		existing *akvBucketEntry
	}
	var fresh []freshObs
	for _, o := range obs {
		entry, h := p.find(o.Index, o.Key)
		if entry == nil || entry.complexity > complexity {
			fresh = append(fresh, freshObs{slot: o.Index, key: o.Key, hash: h, existing: entry})
		}
	}
	if len(fresh) == 0 {
		return nil
	}

	inputKey := p.nextInputKey
	p.nextInputKey++
	rec := &akvInput{data: inputID, bestForKeys: make(map[akvKey]struct{}, len(fresh))}
	p.inputs[inputKey] = rec

	var removed []PoolStorageIndex
	for _, f := range fresh {
		if f.existing != nil {
			prevInputKey := f.existing.bestInput
			prevRec := p.inputs[prevInputKey]
			delete(prevRec.bestForKeys, akvKey{slot: f.slot, hash: f.hash})
			if len(prevRec.bestForKeys) == 0 {
				removed = append(removed, prevRec.data)
				delete(p.inputs, prevInputKey)
			}
			f.existing.complexity = complexity
			f.existing.bestInput = inputKey
		} else {
			p.buckets[f.slot][f.hash] = append(p.buckets[f.slot][f.hash], &akvBucketEntry{
				key: f.key, complexity: complexity, bestInput: inputKey,
			})
		}
		rec.bestForKeys[akvKey{slot: f.slot, hash: f.hash}] = struct{}{}
	}

	return []CorpusDelta{{Path: p.name, Add: true, Remove: removed}}
}
