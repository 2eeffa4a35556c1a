// Package sensor implements the observation side of the pool/sensor/
// observation contract: a Sensor records data during a single test
// execution and emits a per-run Observation. The instrumentation that
// actually produces coverage data (a compiler pass, a runtime hook) is
// out of scope (spec.md §1); this package only defines the contract and
// two reference sensors that feed the reference pools in package pool.
package sensor
