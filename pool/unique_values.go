package pool

import (
	"fmt"

	"github.com/katalvlaran/lvlfuzz/sensor"
)

// UniqueValuesPool stores an input for every distinct key ever observed
// at every slot, keeping only the least-complex input for each (slot,
// key) pair (spec.md §4.9). It is generic over T so a caller with a
// statically comparable key type pays no hashing overhead beyond Go's
// built-in map; see AnyKeyUniqueValuesPool for the runtime-typed case.
//
// Process assumes its caller already cloned the mutated value before
// calling it: like spec.md §9 notes, unmutate-then-resubmit is a
// driver-side discipline this pool does not enforce, since owning
// corpus storage is explicitly out of this module's scope (spec.md §1).
type UniqueValuesPool[T comparable] struct {
	name string
	size int

	complexities      []map[T]float64
	bestInputForValue []map[T]uint64

	inputs       map[uint64]*uvpInput[T]
	nextInputKey uint64
}

type uvpKey[T comparable] struct {
	slot int
	key  T
}

type uvpInput[T comparable] struct {
	data        PoolStorageIndex
	bestForKeys map[uvpKey[T]]struct{}
}

func (in *uvpInput[T]) score() float64 { return float64(len(in.bestForKeys)) }

// NewUniqueValuesPool returns an empty pool tracking size distinct
// slots.
func NewUniqueValuesPool[T comparable](name string, size int) *UniqueValuesPool[T] {
	p := &UniqueValuesPool[T]{
		name:              name,
		size:              size,
		complexities:      make([]map[T]float64, size),
		bestInputForValue: make([]map[T]uint64, size),
		inputs:            make(map[uint64]*uvpInput[T]),
	}
	for i := range p.complexities {
		p.complexities[i] = make(map[T]float64)
		p.bestInputForValue[i] = make(map[T]uint64)
	}
	return p
}

type uniqueValuesPoolStats struct {
	name string
	size int
}

func (s uniqueValuesPoolStats) String() string { return fmt.Sprintf("%s(%d)", s.name, s.size) }

func (p *UniqueValuesPool[T]) Stats() Stats {
	return uniqueValuesPoolStats{name: p.name, size: len(p.inputs)}
}

func (p *UniqueValuesPool[T]) RankedTestCases() []RankedInput {
	out := make([]RankedInput, 0, len(p.inputs))
	for _, in := range p.inputs {
		out = append(out, RankedInput{Index: in.data, Score: in.score()})
	}
	return out
}

func (p *UniqueValuesPool[T]) SaveToStatsFolder() []StatsFile { return nil }

// Process consumes one run's (slot, key) observations (spec.md §4.9's
// algorithm, completed rather than left partial: the original Rust
// source never populated the new input's own best_for_values set,
// relying on the freshly computed length instead — an incompleteness
// this port fixes so I5 holds structurally rather than by a separate
// invariant maintained only at insertion time).
func (p *UniqueValuesPool[T]) Process(inputID PoolStorageIndex, obs []sensor.KeyObservation[T], complexity float64) []CorpusDelta {
	var fresh []sensor.KeyObservation[T]
	for _, o := range obs {
		if prev, ok := p.complexities[o.Index][o.Key]; ok {
			if prev > complexity {
				fresh = append(fresh, o)
			}
		} else {
			fresh = append(fresh, o)
		}
	}
	if len(fresh) == 0 {
		return nil
	}

	inputKey := p.nextInputKey
	p.nextInputKey++
	rec := &uvpInput[T]{data: inputID, bestForKeys: make(map[uvpKey[T]]struct{}, len(fresh))}
	p.inputs[inputKey] = rec

	var removed []PoolStorageIndex
	for _, o := range fresh {
		p.complexities[o.Index][o.Key] = complexity

		if prevKey, ok := p.bestInputForValue[o.Index][o.Key]; ok {
			prevRec := p.inputs[prevKey]
			delete(prevRec.bestForKeys, uvpKey[T]{slot: o.Index, key: o.Key})
			if len(prevRec.bestForKeys) == 0 {
				removed = append(removed, prevRec.data)
				delete(p.inputs, prevKey)
			}
		}
		p.bestInputForValue[o.Index][o.Key] = inputKey
		rec.bestForKeys[uvpKey[T]{slot: o.Index, key: o.Key}] = struct{}{}
	}

	return []CorpusDelta{{Path: p.name, Add: true, Remove: removed}}
}
