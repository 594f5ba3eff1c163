/*
Package scanner tokenizes arithmetic expressions of .kot scripts.

The scanner is an adapter for lexmachine, a scanner generator based on
regular expressions. The expression language knows numbers, identifiers,
the operators + - * / and the punctuation ( ) [ ] ,

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/kotlang"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kotlang.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("kotlang.scanner")
}

// Token types which are not single-character literals. Literals use their
// rune value as token type.
const (
	EOF    kotlang.TokType = -1
	Ident  kotlang.TokType = -2
	Number kotlang.TokType = -3
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() kotlang.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used for all tokens of
// the expression scanner.
type DefaultToken struct {
	kind   kotlang.TokType
	lexeme string
	span   kotlang.Span
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ kotlang.TokType, lexeme string, span kotlang.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() kotlang.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() kotlang.Span {
	return t.span
}

// TokenName returns a readable name for a token type, for error messages.
func TokenName(typ kotlang.TokType) string {
	switch typ {
	case EOF:
		return "end of expression"
	case Ident:
		return "identifier"
	case Number:
		return "number"
	}
	return "'" + string(rune(typ)) + "'"
}
