package budget

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// DefaultMaxComplexity is used when --max-complexity is not given.
const DefaultMaxComplexity = 64.0

// Config holds the resolved demo flags.
type Config struct {
	MaxComplexity float64
	Iterations    int
}

// NewFlagSet returns a pflag.FlagSet pre-populated with the demo's
// flags, named and constructed the way calvinalkan-agent-task's
// per-command flag sets are: one flag.NewFlagSet per entry point,
// ContinueOnError so callers can report a usage error themselves.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Float64("max-complexity", DefaultMaxComplexity, "maximum complexity budget for generated/mutated values")
	fs.Int("iterations", 1, "number of mutate iterations to run")
	return fs
}

// Resolve reads a parsed FlagSet's values into a Config, rejecting a
// non-positive complexity budget the way primitives' range mutators
// reject an inverted range: at the boundary, not deep inside a loop.
func Resolve(fs *flag.FlagSet) (Config, error) {
	maxCplx, err := fs.GetFloat64("max-complexity")
	if err != nil {
		return Config{}, fmt.Errorf("budget: reading --max-complexity: %w", err)
	}
	if maxCplx <= 0 {
		return Config{}, fmt.Errorf("budget: --max-complexity must be positive, got %v", maxCplx)
	}
	iterations, err := fs.GetInt("iterations")
	if err != nil {
		return Config{}, fmt.Errorf("budget: reading --iterations: %w", err)
	}
	if iterations <= 0 {
		return Config{}, fmt.Errorf("budget: --iterations must be positive, got %d", iterations)
	}
	return Config{MaxComplexity: maxCplx, Iterations: iterations}, nil
}
