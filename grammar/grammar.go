package grammar

import "fmt"

// Kind discriminates the cases of Grammar.
type Kind int

const (
	KindLiteralRanges Kind = iota
	KindAlternation
	KindConcatenation
	KindRepetition
	KindRecurse
)

// Range is an inclusive, unicode-code-point range [Lo, Hi].
type Range struct {
	Lo, Hi rune
}

// RecursivePlaceholder stands in for a grammar rule that has not been
// defined yet, letting a Grammar reference itself. Build the
// placeholder, use Recurse(placeholder) wherever the rule recurses, then
// call Define once the full rule is assembled.
type RecursivePlaceholder struct {
	name string
	def  *Grammar
}

// NewPlaceholder creates a named, as-yet-undefined recursive rule.
func NewPlaceholder(name string) *RecursivePlaceholder {
	return &RecursivePlaceholder{name: name}
}

// Define fixes the placeholder's grammar. It must be called exactly
// once, after every Recurse(p) reference has already been constructed.
func (p *RecursivePlaceholder) Define(g Grammar) {
	if p.def != nil {
		panic(fmt.Sprintf("grammar: placeholder %q already defined", p.name))
	}
	gg := g
	p.def = &gg
}

// Grammar is a closed sum type over context-free-grammar constructs.
// Go has no native sum type, so Grammar carries a Kind tag plus the
// fields relevant to that kind; unused fields are the type's zero value.
type Grammar struct {
	Kind Kind

	Ranges []Range // KindLiteralRanges

	Alts []Grammar // KindAlternation

	Parts []Grammar // KindConcatenation

	Repeated  *Grammar // KindRepetition
	MinRepeat int      // KindRepetition
	MaxRepeat int      // KindRepetition, -1 means unbounded

	Recurse *RecursivePlaceholder // KindRecurse
}

// Literal matches exactly one rune.
func Literal(r rune) Grammar {
	return Grammar{Kind: KindLiteralRanges, Ranges: []Range{{Lo: r, Hi: r}}}
}

// LiteralRange matches any single rune in the inclusive range [lo, hi].
func LiteralRange(lo, hi rune) Grammar {
	return Grammar{Kind: KindLiteralRanges, Ranges: []Range{{Lo: lo, Hi: hi}}}
}

// LiteralRanges matches any single rune in the union of ranges.
func LiteralRanges(ranges []Range) Grammar {
	return Grammar{Kind: KindLiteralRanges, Ranges: ranges}
}

// Alternation matches exactly one of alts.
func Alternation(alts ...Grammar) Grammar {
	return Grammar{Kind: KindAlternation, Alts: alts}
}

// Concatenation matches each of parts, in order.
func Concatenation(parts ...Grammar) Grammar {
	return Grammar{Kind: KindConcatenation, Parts: parts}
}

// Repetition matches inner between min and max times (inclusive); max
// of -1 means unbounded.
func Repetition(inner Grammar, min, max int) Grammar {
	return Grammar{Kind: KindRepetition, Repeated: &inner, MinRepeat: min, MaxRepeat: max}
}

// Recurse references a rule defined elsewhere via RecursivePlaceholder.
func Recurse(p *RecursivePlaceholder) Grammar {
	return Grammar{Kind: KindRecurse, Recurse: p}
}
