package grammar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlfuzz/mutator"
	"github.com/katalvlaran/lvlfuzz/primitives"
	"github.com/katalvlaran/lvlfuzz/recursive"
)

// Compile lowers g into a mutator over its parse trees.
func Compile(g Grammar) mutator.Mutator[AST] {
	return compile(g, map[*RecursivePlaceholder]mutator.Mutator[AST]{})
}

// CompileString composes Compile(g) with a serialization layer, giving
// a Mutator over mutator.Pair[string, AST] for targets that take a plain
// string rather than an AST: the pair's Base is the tree and its Derived
// field is always the tree's rendering, recomputed by (*AST).WriteTo
// after every mutation.
func CompileString(g Grammar) mutator.Mutator[mutator.Pair[string, AST]] {
	inner := Compile(g)
	return mutator.NewAndMapMutator[AST, string](inner, func(from *AST, to *string) {
		var b strings.Builder
		from.WriteTo(&b)
		*to = b.String()
	}, "")
}

func compile(g Grammar, cache map[*RecursivePlaceholder]mutator.Mutator[AST]) mutator.Mutator[AST] {
	switch g.Kind {
	case KindLiteralRanges:
		return compileLiteralRanges(g.Ranges)
	case KindAlternation:
		return compileAlternation(g.Alts, cache)
	case KindConcatenation:
		return compileConcatenation(g.Parts, cache)
	case KindRepetition:
		return compileRepetition(*g.Repeated, g.MinRepeat, g.MaxRepeat, cache)
	case KindRecurse:
		return compileRecurse(g.Recurse, cache)
	default:
		panic(fmt.Sprintf("grammar: unknown Grammar kind %d", g.Kind))
	}
}

func compileLiteralRanges(ranges []Range) mutator.Mutator[AST] {
	var runeMutator mutator.Mutator[rune]
	if len(ranges) == 1 {
		runeMutator = primitives.NewIntWithinRangeMutator[rune](ranges[0].Lo, ranges[0].Hi)
	} else {
		runeMutator = newRuneRangesMutator(ranges)
	}
	return mutator.NewMapMutator[rune, AST](
		runeMutator,
		func(ast *AST) (rune, bool) {
			if ast.Kind != ASTKindLiteral {
				return 0, false
			}
			return ast.Literal, true
		},
		func(r *rune) AST { return AST{Kind: ASTKindLiteral, Literal: *r} },
	)
}

func compileAlternation(alts []Grammar, cache map[*RecursivePlaceholder]mutator.Mutator[AST]) mutator.Mutator[AST] {
	variants := make([]primitives.EnumVariant[AST], len(alts))
	for i, alt := range alts {
		i := i
		inner := compile(alt, cache)
		payload := mutator.NewMapMutator[AST, any](
			inner,
			func(v *any) (AST, bool) { a, ok := (*v).(AST); return a, ok },
			func(v *AST) any { return *v },
		)
		variants[i] = primitives.EnumVariant[AST]{
			Name:    fmt.Sprintf("alt%d", i),
			Payload: payload,
			Into: func(payload any) AST {
				sub := payload.(AST)
				return AST{Kind: ASTKindAlternation, Index: i, Inner: &sub}
			},
			From: func(v AST) (any, bool) {
				if v.Kind != ASTKindAlternation || v.Index != i || v.Inner == nil {
					return nil, false
				}
				return *v.Inner, true
			},
		}
	}
	return primitives.NewEnumMutator[AST](variants...)
}

func compileConcatenation(parts []Grammar, cache map[*RecursivePlaceholder]mutator.Mutator[AST]) mutator.Mutator[AST] {
	elems := make([]mutator.Mutator[AST], len(parts))
	for i, part := range parts {
		elems[i] = compile(part, cache)
	}
	return newConcatMutator(elems)
}

func compileRepetition(inner Grammar, min, max int, cache map[*RecursivePlaceholder]mutator.Mutator[AST]) mutator.Mutator[AST] {
	elemMutator := compile(inner, cache)
	vectorOpts := []primitives.VectorOption{primitives.WithMinLength(min)}
	if max >= 0 {
		vectorOpts = append(vectorOpts, primitives.WithMaxLength(max))
	}
	vm := primitives.NewVectorMutator[AST](elemMutator, vectorOpts...)
	return mutator.NewMapMutator[[]AST, AST](
		vm,
		func(ast *AST) ([]AST, bool) {
			if ast.Kind != ASTKindRepetition {
				return nil, false
			}
			out := make([]AST, len(ast.Parts))
			for i, p := range ast.Parts {
				out[i] = *p
			}
			return out, true
		},
		func(v *[]AST) AST {
			parts := make([]*AST, len(*v))
			for i := range *v {
				p := (*v)[i]
				parts[i] = &p
			}
			return AST{Kind: ASTKindRepetition, Parts: parts}
		},
	)
}

func compileRecurse(p *RecursivePlaceholder, cache map[*RecursivePlaceholder]mutator.Mutator[AST]) mutator.Mutator[AST] {
	if m, ok := cache[p]; ok {
		return m
	}
	if p.def == nil {
		panic(fmt.Sprintf("grammar: placeholder %q used before Define", p.name))
	}
	rm := recursive.NewRecursiveMutator[AST](func(recur *recursive.RecurToMutator[AST]) mutator.Mutator[AST] {
		cache[p] = recur
		return compile(*p.def, cache)
	})
	cache[p] = rm
	return rm
}
