// errors.go — sentinel errors for the mutator package.
//
// Error policy (explicit and strict, following lvlath's convention):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Combinators attach context using %w at the call site.
//
// Programmer-contract violations (an UnmutateToken from the wrong
// mutation, a Cache handed to a Mutator that did not build it) are NOT
// modeled as errors: they panic, because they signal a
// bug in the caller, not a malformed input. See package doc.go.
package mutator

import "errors"

// ErrInvalidValue indicates that ValidateValue rejected a value as
// outside the Mutator's legal domain. No code in this module returns or
// wraps it: ValidateValue reports a rejection only through its bool
// result, including when a MapMutator's Parse function fails.
var ErrInvalidValue = errors.New("mutator: value outside mutator domain")
