// errors.go — sentinel errors for the bitset package.
package bitset

import "errors"

// ErrOutOfRange is never returned by this package: Insert, Put, and
// Toggle panic on an out-of-bounds index instead, since a bit position
// beyond the set's length is a programmer error, not a runtime
// condition a caller should branch on. The sentinel exists so panic
// messages can be tested with errors.Is against a stable value.
var ErrOutOfRange = errors.New("bitset: bit index out of range")
