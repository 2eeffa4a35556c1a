package sensor

import "sync/atomic"

// TestFailure describes a single test failure: Display is a
// human-readable rendering and ID is its stable identity (spec.md §3's
// TestFailureObservation), used by pool.TestFailurePool to group
// reproducers by failure class.
type TestFailure struct {
	ID      uint64
	Display string
}

// lastFailure is the one documented process-wide mutable slot (spec.md
// §5): whatever recovers from a panic during user test code populates it
// via ReportFailure, at an arbitrary point during execution, since the
// exact call site of a panic is not under the sensor's control. An
// atomic.Pointer is used — not a bare package variable — purely so `go
// test -race` does not flag the documented single-writer/single-reader
// handoff between StartRecording and StopRecording as a race; concurrent
// test execution is still not supported (the host must guarantee
// non-reentrant execution, per spec.md §5).
var lastFailure atomic.Pointer[TestFailure]

// ReportFailure records a failure for the in-flight test run. It is
// meant to be called from a deferred recover() installed by the driver
// around the user's test function, not from mutation or pool code.
func ReportFailure(id uint64, display string) {
	lastFailure.Store(&TestFailure{ID: id, Display: display})
}

// TestFailureSensor surfaces ReportFailure's out-of-band slot through
// the Sensor[O] contract.
type TestFailureSensor struct {
	err *TestFailure
}

// NewTestFailureSensor returns an idle TestFailureSensor.
func NewTestFailureSensor() *TestFailureSensor {
	return &TestFailureSensor{}
}

// StartRecording clears both the sensor's own state and the shared slot,
// so a failure from a previous run can never leak into this one (P10).
func (s *TestFailureSensor) StartRecording() {
	s.err = nil
	lastFailure.Store(nil)
}

// StopRecording copies whatever ReportFailure stored during this run.
func (s *TestFailureSensor) StopRecording() {
	s.err = lastFailure.Load()
}

// GetObservations returns and consumes the failure recorded for the run
// just stopped, or nil if the test passed.
func (s *TestFailureSensor) GetObservations() *TestFailure {
	out := s.err
	s.err = nil
	return out
}
