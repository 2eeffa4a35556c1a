package primitives_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfuzz/mutator"
	"github.com/katalvlaran/lvlfuzz/primitives"
)

type enumTestPos int
type enumTestNeg int

func newTestEnumMutator() *primitives.EnumMutator[any] {
	posPayload := mutator.NewMapMutator[int, any](
		primitives.NewIntWithinRangeMutator[int](1, 9),
		func(v *any) (int, bool) { p, ok := (*v).(enumTestPos); return int(p), ok },
		func(v *int) any { return enumTestPos(*v) },
	)
	negPayload := mutator.NewMapMutator[int, any](
		primitives.NewIntWithinRangeMutator[int](1, 9),
		func(v *any) (int, bool) { n, ok := (*v).(enumTestNeg); return int(n), ok },
		func(v *int) any { return enumTestNeg(*v) },
	)
	return primitives.NewEnumMutator[any](
		primitives.EnumVariant[any]{
			Name:    "pos",
			Payload: posPayload,
			Into:    func(payload any) any { return payload },
			From:    func(v any) (any, bool) { _, ok := v.(enumTestPos); return v, ok },
		},
		primitives.EnumVariant[any]{
			Name:    "neg",
			Payload: negPayload,
			Into:    func(payload any) any { return payload },
			From:    func(v any) (any, bool) { _, ok := v.(enumTestNeg); return v, ok },
		},
	)
}

func TestEnumMutatorRoundTrip(t *testing.T) {
	em := newTestEnumMutator()

	var value any = enumTestPos(5)
	cache, ok := em.ValidateValue(&value)
	require.True(t, ok)

	step := em.DefaultMutationStep(&value, cache)
	token, _, ok := em.OrderedMutate(&value, cache, step, em.MaxComplexity())
	require.True(t, ok)

	em.Unmutate(&value, cache, token)
	require.Equal(t, any(enumTestPos(5)), value)
}

func TestEnumMutatorCanSwitchVariant(t *testing.T) {
	em := newTestEnumMutator()

	var value any = enumTestPos(5)
	cache, ok := em.ValidateValue(&value)
	require.True(t, ok)

	step := em.DefaultMutationStep(&value, cache)
	_, _, ok = em.OrderedMutate(&value, cache, step, em.MaxComplexity())
	require.True(t, ok)
	_, isNeg := value.(enumTestNeg)
	require.True(t, isNeg)
}

func TestNewEnumMutatorPanicsOnNoVariants(t *testing.T) {
	require.Panics(t, func() {
		primitives.NewEnumMutator[any]()
	})
}
