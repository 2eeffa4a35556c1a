package budget_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfuzz/internal/budget"
)

func TestResolveDefaults(t *testing.T) {
	fs := budget.NewFlagSet("demo")
	require.NoError(t, fs.Parse(nil))

	cfg, err := budget.Resolve(fs)
	require.NoError(t, err)
	require.Equal(t, budget.DefaultMaxComplexity, cfg.MaxComplexity)
	require.Equal(t, 1, cfg.Iterations)
}

func TestResolveCustomFlags(t *testing.T) {
	fs := budget.NewFlagSet("demo")
	require.NoError(t, fs.Parse([]string{"--max-complexity=12.5", "--iterations=5"}))

	cfg, err := budget.Resolve(fs)
	require.NoError(t, err)
	require.Equal(t, 12.5, cfg.MaxComplexity)
	require.Equal(t, 5, cfg.Iterations)
}

func TestResolveRejectsNonPositiveComplexity(t *testing.T) {
	fs := budget.NewFlagSet("demo")
	require.NoError(t, fs.Parse([]string{"--max-complexity=0"}))

	_, err := budget.Resolve(fs)
	require.Error(t, err)
}
