package grammar

import "strings"

// ASTKind discriminates the cases of AST, mirroring Grammar's Kind minus
// KindRecurse (a recursive reference produces whatever AST its resolved
// definition produces, so it carries no distinct node shape of its own).
type ASTKind int

const (
	ASTKindLiteral ASTKind = iota
	ASTKindAlternation
	ASTKindConcatenation
	ASTKindRepetition
)

// AST is the parse tree produced and mutated by a compiled Grammar.
type AST struct {
	Kind ASTKind

	Literal rune // ASTKindLiteral

	Index int  // ASTKindAlternation: which alternative was chosen
	Inner *AST // ASTKindAlternation: that alternative's tree

	Parts []*AST // ASTKindConcatenation / ASTKindRepetition
}

// WriteTo serializes the tree depth-first into w.
func (a *AST) WriteTo(w *strings.Builder) {
	switch a.Kind {
	case ASTKindLiteral:
		w.WriteRune(a.Literal)
	case ASTKindAlternation:
		a.Inner.WriteTo(w)
	case ASTKindConcatenation, ASTKindRepetition:
		for _, part := range a.Parts {
			part.WriteTo(w)
		}
	}
}

// String renders the tree via WriteTo.
func (a *AST) String() string {
	var b strings.Builder
	a.WriteTo(&b)
	return b.String()
}
