package expr

import (
	"math"
	"strings"
)

// Built-in functions of the expression language.

func pow(base, exp float64) float64 {
	return math.Pow(base, exp)
}

func sqrt(x float64) float64 {
	return math.Sqrt(x)
}

func logBase(base, x float64) float64 {
	return math.Log(x) / math.Log(base)
}

// isBuiltin is a predicate: does name denote a built-in function?
func isBuiltin(name string) bool {
	return name == "pow" || name == "sqrt" || name == "log"
}

// --- Locating call arguments in expression text ----------------------------

// enclosed returns the text between the bracket at s[open] and its matching
// closing bracket, together with the index of the closing bracket.
// Nested brackets of the same kind are skipped.
func enclosed(s string, open int, lb, rb byte) (string, int, error) {
	if open >= len(s) || s[open] != lb {
		return "", -1, syntaxError("expected '%c' at position %d of %q", lb, open, s)
	}
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case lb:
			depth++
		case rb:
			depth--
			if depth == 0 {
				return s[open+1 : i], i, nil
			}
		}
	}
	return "", -1, syntaxError("missing '%c' in %q", rb, s)
}

// splitTopLevel splits s at the first occurrence of sep which is not enclosed
// in parentheses or brackets.
func splitTopLevel(s string, sep byte) (string, string, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case sep:
			if depth == 0 {
				return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), true
			}
		}
	}
	return s, "", false
}
