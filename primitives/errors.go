// errors.go — sentinel errors for the primitives package.
//
// Error policy: only sentinel variables are exposed; they are never
// stringified with parameters. Constructors panic with a formatted
// message that wraps the sentinel via errors.Is-compatible %w, mirroring
// lvlath/builder's "panics confined to constructor functions" rule.
package primitives

import "errors"

// ErrInvertedRange indicates a constructor was given a range whose start
// is greater than its end.
var ErrInvertedRange = errors.New("primitives: range start is greater than end")

// ErrEmptyChoice indicates an EnumMutator constructor was given zero
// variants.
var ErrEmptyChoice = errors.New("primitives: no choices provided")

// ErrInvalidLength indicates a VectorMutator constructor was given a
// minimum length greater than its maximum length, or a negative minimum.
var ErrInvalidLength = errors.New("primitives: invalid length bounds")
