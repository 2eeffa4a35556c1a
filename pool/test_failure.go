package pool

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlfuzz/internal/xlog"
	"github.com/katalvlaran/lvlfuzz/sensor"
)

// nbrArtifactsPerErrorAndCplx caps how many reproducers this pool keeps
// at the same (failure class, complexity) tier, matching spec.md §4.10's
// N=8 verbatim.
const nbrArtifactsPerErrorAndCplx = 8

type testFailureTier struct {
	cplx   float64
	inputs []PoolStorageIndex
}

type testFailureClass struct {
	failure sensor.TestFailure
	tiers   []testFailureTier
}

// TestFailurePool categorizes failing test cases by failure class (a
// TestFailure's ID) and, within each class, keeps the smallest-complexity
// reproducers it has seen, capped at nbrArtifactsPerErrorAndCplx per
// tier (spec.md §4.10, I6).
type TestFailurePool struct {
	name    string
	classes []testFailureClass
	log     *xlog.Logger
}

// NewTestFailurePool returns an empty TestFailurePool. A nil logger is
// replaced with one that discards everything.
func NewTestFailurePool(name string, log *xlog.Logger) *TestFailurePool {
	if log == nil {
		log = xlog.Nop()
	}
	return &TestFailurePool{name: name, log: log}
}

type testFailurePoolStats struct{ count int }

func (s testFailurePoolStats) String() string { return fmt.Sprintf("failures(%d)", s.count) }

func (p *TestFailurePool) Stats() Stats {
	return testFailurePoolStats{count: len(p.classes)}
}

// RankedTestCases returns every reproducer in each class's
// least-complex tier, all at score 1 — spec.md §4.10 does not rank
// failures against each other, only within a class by complexity.
func (p *TestFailurePool) RankedTestCases() []RankedInput {
	var out []RankedInput
	for _, class := range p.classes {
		if len(class.tiers) == 0 {
			continue
		}
		least := class.tiers[len(class.tiers)-1]
		for _, idx := range least.inputs {
			out = append(out, RankedInput{Index: idx, Score: 1})
		}
	}
	return out
}

func (p *TestFailurePool) SaveToStatsFolder() []StatsFile { return nil }

// Process implements the decision table spec.md §4.10 restates from the
// teacher crate verbatim: a passing run (obs == nil) never produces a
// delta; a new failure class always does; an existing class sees a
// smaller complexity appended as a fresh tier, an equal complexity
// appended to the current tier (bounded by the N=8 cap and only if no
// other class already carries an identical Display, avoiding duplicate
// near-identical reproducers across classes); anything else — a larger
// complexity, or a full tier — is not interesting.
func (p *TestFailurePool) Process(inputID PoolStorageIndex, obs *sensor.TestFailure, complexity float64) []CorpusDelta {
	if obs == nil {
		return nil
	}
	if math.IsNaN(complexity) {
		panic("pool: TestFailurePool.Process received a NaN complexity")
	}
	failure := *obs

	classIdx := -1
	for i, c := range p.classes {
		if c.failure.ID == failure.ID {
			classIdx = i
			break
		}
	}

	type position int
	const (
		posNone position = iota
		posNewClass
		posNewTier
		posSameTier
	)

	pos := posNone
	if classIdx < 0 {
		pos = posNewClass
	} else {
		tiers := p.classes[classIdx].tiers
		if len(tiers) == 0 {
			pos = posNewTier
		} else {
			leastComplex := tiers[len(tiers)-1]
			switch {
			case leastComplex.cplx > complexity:
				pos = posNewTier
			case leastComplex.cplx == complexity:
				if len(leastComplex.inputs) < nbrArtifactsPerErrorAndCplx && !p.anyOtherClassHasDisplay(classIdx, failure.Display) {
					pos = posSameTier
				}
			}
		}
	}

	if pos == posNone {
		return nil
	}

	switch pos {
	case posNewClass:
		p.classes = append(p.classes, testFailureClass{
			failure: failure,
			tiers:   []testFailureTier{{cplx: complexity, inputs: []PoolStorageIndex{inputID}}},
		})
		p.log.Infof("new test failure class", "id", failure.ID, "cplx", complexity)
	case posNewTier:
		c := &p.classes[classIdx]
		c.tiers = append(c.tiers, testFailureTier{cplx: complexity, inputs: []PoolStorageIndex{inputID}})
		p.log.Infof("smaller reproducer for known failure", "id", failure.ID, "cplx", complexity)
	case posSameTier:
		c := &p.classes[classIdx]
		last := &c.tiers[len(c.tiers)-1]
		last.inputs = append(last.inputs, inputID)
	}

	return []CorpusDelta{{
		Path: fmt.Sprintf("%s/%d/%.4f", p.name, failure.ID, complexity),
		Add:  true,
	}}
}

// anyOtherClassHasDisplay reports whether some class other than
// classIdx already carries display, matching spec.md §4.10's "no
// other class shares this display" wording: a class is always allowed
// to reuse its own Display when appending to its own tier.
func (p *TestFailurePool) anyOtherClassHasDisplay(classIdx int, display string) bool {
	for i, c := range p.classes {
		if i != classIdx && c.failure.Display == display {
			return true
		}
	}
	return false
}
