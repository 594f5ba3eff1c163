package kotlang

import "fmt"

// --- Tokens for expression scanning ----------------------------------------

// TokType is a category type for a Token. Token categories for expressions are
// defined in package scanner.
type TokType int

// Token represents an input token of an expression, as produced by a scanner.
//
// An example would be a token for a floating point number within `{x*3.5}`:
//
//    TokType = NUM         // identifier for this kind of tokens
//    Lexeme  = "3.5"       // lexeme how it appeared in the expression text
//    Span    = 2…5         // occured from position 2 in the expression text
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
