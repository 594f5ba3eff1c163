package expr

import (
	"regexp"
	"strings"

	"github.com/npillmayer/kotlang/runtime"
)

// The legacy evaluator works on expression text only. A built-in function
// anywhere in the text takes over the complete expression; text around the
// call is ignored. Otherwise variables are substituted textually and the
// result is handed to the reducer.

var identifier = regexp.MustCompile(`[a-zA-Z_][a-zA-Z_0-9]*`)

func (ev *Evaluator) legacy(expression string, depth int) (float64, error) {
	if depth > maxDepth {
		return 0, syntaxError("expression nested too deeply")
	}
	if i := strings.Index(expression, "pow("); i >= 0 {
		return ev.legacyPow(expression, i, depth)
	}
	if i := strings.Index(expression, "sqrt("); i >= 0 {
		return ev.legacySqrt(expression, i, depth)
	}
	if i := strings.Index(expression, "log["); i >= 0 {
		return ev.legacyLog(expression, i, depth)
	}
	substituted := identifier.ReplaceAllStringFunc(expression, func(name string) string {
		if v, ok := ev.store.Get(name); ok {
			return v.String()
		}
		return name
	})
	return ev.reduce(substituted, depth)
}

// pow(a, b)
func (ev *Evaluator) legacyPow(expression string, at int, depth int) (float64, error) {
	args, _, err := enclosed(expression, at+len("pow"), '(', ')')
	if err != nil {
		return 0, err
	}
	a, b, ok := splitTopLevel(args, ',')
	if !ok {
		return 0, syntaxError("pow needs 2 arguments: %q", expression)
	}
	base, err := ev.legacy(a, depth+1)
	if err != nil {
		return 0, err
	}
	exp, err := ev.legacy(b, depth+1)
	if err != nil {
		return 0, err
	}
	return pow(base, exp), nil
}

// sqrt(x)
func (ev *Evaluator) legacySqrt(expression string, at int, depth int) (float64, error) {
	arg, _, err := enclosed(expression, at+len("sqrt"), '(', ')')
	if err != nil {
		return 0, err
	}
	x, err := ev.legacy(strings.TrimSpace(arg), depth+1)
	if err != nil {
		return 0, err
	}
	return sqrt(x), nil
}

// log[base](x)
func (ev *Evaluator) legacyLog(expression string, at int, depth int) (float64, error) {
	b, end, err := enclosed(expression, at+len("log"), '[', ']')
	if err != nil {
		return 0, err
	}
	arg, _, err := enclosed(expression, end+1, '(', ')')
	if err != nil {
		return 0, err
	}
	base, err := ev.legacy(strings.TrimSpace(b), depth+1)
	if err != nil {
		return 0, err
	}
	x, err := ev.legacy(strings.TrimSpace(arg), depth+1)
	if err != nil {
		return 0, err
	}
	return logBase(base, x), nil
}

// --- Reducer ---------------------------------------------------------------

var legacyOperators = []string{"+", "-", "*", "/"}

// reduce is the arithmetic reducer of the legacy mode. The first operator
// found (in order + - * /) splits the text, and only the first two segments
// are combined. A text without operators must be a single number.
func (ev *Evaluator) reduce(text string, depth int) (float64, error) {
	if depth > maxDepth {
		return 0, syntaxError("expression nested too deeply")
	}
	ev.store.Each(func(name string, v runtime.Value) {
		text = strings.ReplaceAll(text, name, v.String())
	})
	for _, op := range legacyOperators {
		if !strings.Contains(text, op) {
			continue
		}
		parts := splitNoTrailing(text, op)
		if len(parts) < 2 {
			return 0, syntaxError("missing operand for '%s' in %q", op, text)
		}
		l, err := ev.reduce(strings.TrimSpace(parts[0]), depth+1)
		if err != nil {
			return 0, err
		}
		r, err := ev.reduce(strings.TrimSpace(parts[1]), depth+1)
		if err != nil {
			return 0, err
		}
		tracer().Debugf("reduce %q: %v %s %v", text, l, op, r)
		return apply(op, l, r), nil
	}
	f, err := runtime.ParseDouble(text)
	if err != nil {
		return 0, syntaxError("not a number: %q", text)
	}
	return f, nil
}

// splitNoTrailing splits s around every occurrence of sep, dropping trailing
// empty segments.
func splitNoTrailing(s, sep string) []string {
	parts := strings.Split(s, sep)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func apply(op string, l, r float64) float64 {
	switch op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	}
	return l / r
}
