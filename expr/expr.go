/*
Package expr evaluates arithmetic expressions of .kot scripts, including the
built-in functions

    pow(a, b)       a raised to the power of b
    sqrt(x)         square root of x
    log[b](x)       logarithm of x to the base b

Results are doubles, rendered in their textual form ("8.0").

Evaluation Modes

Scripts have always been evaluated by a naive text-splitting reducer. It
checks for operators in the fixed order + - * /, regardless of mathematical
precedence, and combines only the first two operands of a chain: "1+2+3"
yields 3.0. Mode Legacy reproduces this behavior, so existing scripts print
what they always printed.

Mode Precedence evaluates expressions the way one would expect: operator
precedence, left associativity, parentheses, unary signs, and built-in
functions usable anywhere within an expression. "1+2+3" yields 6.0.

The default mode may be set with the configuration key "kotlang.reducer"
(values "legacy" or "precedence"); the Option WithMode overrides it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/kotlang/runtime"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kotlang.expr'.
func tracer() tracing.Trace {
	return tracing.Select("kotlang.expr")
}

// ErrSyntax is returned for expressions which cannot be evaluated, either
// because they are malformed or because an operand is not a number.
var ErrSyntax = errors.New("invalid expression")

// maxDepth limits recursion of the legacy reducer. Textual substitution of
// variables may re-introduce the variable's own name.
const maxDepth = 64

// --- Modes -----------------------------------------------------------------

// Mode selects the arithmetic reducer.
type Mode int

// Evaluation modes
const (
	Legacy     Mode = iota // fixed textual operator priority, first two operands only
	Precedence             // standard operator precedence
)

func (m Mode) String() string {
	switch m {
	case Legacy:
		return "legacy"
	case Precedence:
		return "precedence"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ModeFromString returns the mode for a mode name (case-insensitive).
func ModeFromString(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy":
		return Legacy, nil
	case "precedence":
		return Precedence, nil
	}
	return Legacy, fmt.Errorf("unknown reducer mode %q", s)
}

// ConfiguredMode returns the mode set by configuration key "kotlang.reducer",
// or Legacy if the key is not set or invalid.
func ConfiguredMode() Mode {
	s := gconf.GetString("kotlang.reducer")
	if s == "" {
		return Legacy
	}
	m, err := ModeFromString(s)
	if err != nil {
		tracer().Errorf("configuration: %v, using %s", err, Legacy)
	}
	return m
}

// --- Evaluator -------------------------------------------------------------

// Evaluator evaluates expressions against a variable store.
type Evaluator struct {
	store *runtime.VariableStore
	mode  Mode
}

// Option configures an evaluator.
type Option func(ev *Evaluator)

// WithMode sets the evaluation mode.
func WithMode(m Mode) Option {
	return func(ev *Evaluator) {
		ev.mode = m
	}
}

// New creates an evaluator for variables in store.
func New(store *runtime.VariableStore, opts ...Option) *Evaluator {
	ev := &Evaluator{
		store: store,
		mode:  ConfiguredMode(),
	}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// Mode returns the evaluation mode of ev.
func (ev *Evaluator) Mode() Mode {
	return ev.mode
}

// Evaluate evaluates an expression and returns the textual form of the
// resulting double.
func (ev *Evaluator) Evaluate(expression string) (string, error) {
	f, err := ev.EvaluateFloat(expression)
	if err != nil {
		return "", err
	}
	return runtime.FormatDouble(f), nil
}

// EvaluateFloat evaluates an expression to a double.
func (ev *Evaluator) EvaluateFloat(expression string) (float64, error) {
	tracer().P("mode", ev.mode.String()).Debugf("evaluate %q", expression)
	var f float64
	var err error
	if ev.mode == Precedence {
		f, err = ev.parse(expression)
	} else {
		f, err = ev.legacy(strings.TrimSpace(expression), 0)
	}
	if err != nil {
		tracer().Debugf("evaluation of %q failed: %v", expression, err)
		return 0, err
	}
	return f, nil
}

func syntaxError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}
