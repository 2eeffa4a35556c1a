package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlfuzz/grammar"
)

func TestCompileLiteralRoundTrip(t *testing.T) {
	m := grammar.Compile(grammar.Literal('x'))

	value := grammar.AST{Kind: grammar.ASTKindLiteral, Literal: 'x'}
	cache, ok := m.ValidateValue(&value)
	require.True(t, ok)

	step := m.DefaultMutationStep(&value, cache)
	_, _, ok = m.OrderedMutate(&value, cache, step, m.MaxComplexity())
	require.True(t, ok)
	_, _, ok = m.OrderedMutate(&value, cache, step, m.MaxComplexity())
	require.False(t, ok, "a single-rune literal has exactly one value, so the schedule exhausts after one step")
}

func TestCompileAlternationChoosesAndRoundTrips(t *testing.T) {
	g := grammar.Alternation(grammar.Literal('a'), grammar.Literal('b'), grammar.Literal('c'))
	m := grammar.Compile(g)

	value, _ := m.RandomArbitrary(m.MaxComplexity())
	require.Equal(t, grammar.ASTKindAlternation, value.Kind)
	require.Contains(t, []rune{'a', 'b', 'c'}, value.Inner.Literal)

	cache, ok := m.ValidateValue(&value)
	require.True(t, ok)

	before := value.String()
	token, _ := m.RandomMutate(&value, cache, m.MaxComplexity())
	m.Unmutate(&value, cache, token)
	require.Equal(t, before, value.String())
}

func TestCompileConcatenationSerializes(t *testing.T) {
	g := grammar.Concatenation(grammar.Literal('a'), grammar.Literal('b'), grammar.Literal('c'))
	m := grammar.Compile(g)

	value, _, ok := m.OrderedArbitrary(m.DefaultArbitraryStep(), m.MaxComplexity())
	require.True(t, ok)
	require.Equal(t, "abc", value.String())
}

func TestCompileRepetitionRespectsBounds(t *testing.T) {
	g := grammar.Repetition(grammar.Literal('x'), 2, 4)
	m := grammar.Compile(g)

	for i := 0; i < 20; i++ {
		value, _ := m.RandomArbitrary(m.MaxComplexity())
		require.GreaterOrEqual(t, len(value.Parts), 2)
		require.LessOrEqual(t, len(value.Parts), 4)
	}
}

func TestCompileStringSerializesDerived(t *testing.T) {
	g := grammar.Concatenation(grammar.Literal('h'), grammar.Literal('i'))
	m := grammar.CompileString(g)

	value, _, ok := m.OrderedArbitrary(m.DefaultArbitraryStep(), m.MaxComplexity())
	require.True(t, ok)
	require.Equal(t, "hi", value.Derived)
}

func TestCompileRecursionTerminatesAndRoundTrips(t *testing.T) {
	placeholder := grammar.NewPlaceholder("balanced")
	def := grammar.Alternation(
		grammar.Literal('x'),
		grammar.Concatenation(grammar.Literal('('), grammar.Recurse(placeholder), grammar.Literal(')')),
	)
	placeholder.Define(def)

	m := grammar.Compile(grammar.Recurse(placeholder))
	value, _, ok := m.OrderedArbitrary(m.DefaultArbitraryStep(), 100)
	require.True(t, ok)

	cache, ok := m.ValidateValue(&value)
	require.True(t, ok)

	before := value.String()
	token, _ := m.RandomMutate(&value, cache, 100)
	m.Unmutate(&value, cache, token)
	require.Equal(t, before, value.String())
}

func TestRegexParsesLiteralAndAlternation(t *testing.T) {
	g := grammar.Regex("ab|c")
	m := grammar.Compile(g)

	value, _, ok := m.OrderedArbitrary(m.DefaultArbitraryStep(), m.MaxComplexity())
	require.True(t, ok)
	require.Contains(t, []string{"ab", "c"}, value.String())
}

func TestRegexParsesClassAndRepetition(t *testing.T) {
	g := grammar.Regex("[a-c]{2,3}")
	m := grammar.Compile(g)

	for i := 0; i < 20; i++ {
		value, _ := m.RandomArbitrary(m.MaxComplexity())
		s := value.String()
		require.GreaterOrEqual(t, len(s), 2)
		require.LessOrEqual(t, len(s), 3)
		for _, r := range s {
			require.GreaterOrEqual(t, r, 'a')
			require.LessOrEqual(t, r, 'c')
		}
	}
}

// S7: 10,000 OrderedArbitrary and RandomArbitrary draws combined must
// all stay within the compiled pattern's length and alphabet bounds.
func TestRegexScenarioS7BoundedDraws(t *testing.T) {
	g := grammar.Regex("[a-c]{2,3}")
	m := grammar.Compile(g)

	check := func(s string) {
		require.GreaterOrEqual(t, len(s), 2)
		require.LessOrEqual(t, len(s), 3)
		for _, r := range s {
			require.GreaterOrEqual(t, r, 'a')
			require.LessOrEqual(t, r, 'c')
		}
	}

	step := m.DefaultArbitraryStep()
	ordered := 0
	for ordered < 5000 {
		value, _, ok := m.OrderedArbitrary(step, m.MaxComplexity())
		if !ok {
			step = m.DefaultArbitraryStep()
			continue
		}
		check(value.String())
		ordered++
	}

	for i := 0; i < 5000; i++ {
		value, _ := m.RandomArbitrary(m.MaxComplexity())
		check(value.String())
	}
}

func TestRegexParsesGroupingAndQuantifiers(t *testing.T) {
	g := grammar.Regex("(ab)+")
	m := grammar.Compile(g)

	value, _, ok := m.OrderedArbitrary(m.DefaultArbitraryStep(), m.MaxComplexity())
	require.True(t, ok)
	require.NotEmpty(t, value.String())
}
