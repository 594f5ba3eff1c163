package scanner

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
)

// The tokens representing literal one-char lexemes
var literals = []string{"(", ")", "[", "]", ",", "+", "-", "*", "/"}

// Function names (pow, sqrt, log) are scanned as identifiers; the evaluator
// tells them apart from variables.
var keywords = []string{}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["ID"] = int(Ident)
		tokenIds["NUM"] = int(Number)
		for _, lit := range literals {
			r := lit[0]
			tokenIds[lit] = int(r)
		}
	})
}

var exprLexer *LMAdapter // compiled once, shared by all expression scanners
var lexerErr error
var lexerOnce sync.Once

// Lexer returns the lexmachine lexer for arithmetic expressions. The DFA is
// compiled on first use.
func Lexer() (*LMAdapter, error) {
	lexerOnce.Do(func() {
		initTokens()
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken("ID"))
			lexer.Add([]byte(`[0-9]+(\.[0-9]*)?([eE][\+\-]?[0-9]+)?`), makeToken("NUM"))
			lexer.Add([]byte(`\.[0-9]+([eE][\+\-]?[0-9]+)?`), makeToken("NUM"))
			lexer.Add([]byte(`( |\t|\r|\n)+`), Skip)
		}
		exprLexer, lexerErr = NewLMAdapter(init, literals, keywords, tokenIds)
	})
	return exprLexer, lexerErr
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return MakeToken(s, id)
}

// Tokenize scans a complete expression. Scanner errors (unexpected characters)
// are collected and the first one is returned.
func Tokenize(input string) ([]DefaultToken, error) {
	lm, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	var firstErr error
	scan.SetErrorHandler(func(e error) {
		tracer().Debugf("expression scanner: %v", e)
		if firstErr == nil {
			firstErr = e
		}
	})
	var toks []DefaultToken
	for {
		tok := scan.NextToken().(DefaultToken)
		toks = append(toks, tok)
		if tok.TokType() == EOF {
			break
		}
	}
	if firstErr != nil {
		return nil, fmt.Errorf("cannot tokenize %q: %w", input, firstErr)
	}
	return toks, nil
}
