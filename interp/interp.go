/*
Package interp implements the interpreter for .kot scripts.

A script is a sequence of lines, each holding one statement. Every run starts
with an empty variable store and an empty output. Statements are executed one
after the other; a failing statement writes a single error line to the output
and execution continues with the next line. Conditional blocks are not nested:
a false condition skips lines up to and including the next line consisting
of a single `}`.

	int<x>5
	string<name>"Kot"
	if (x > 3) {
	f(Hello {x*2}, greetings from)
	(name)
	}

Output lines go to an OutputSink, values for input statements are requested
from an InputProvider. Both are supplied by the host. Package interp provides
in-memory implementations (LineBuffer and ScriptedInput), suitable for tests
and batch runs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interp

import (
	"errors"
	"strings"
	"sync"

	"github.com/npillmayer/kotlang/expr"
	"github.com/npillmayer/kotlang/runtime"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kotlang.interp'.
func tracer() tracing.Trace {
	return tracing.Select("kotlang.interp")
}

// Interpreter executes scripts. Runs are serialized, an interpreter may be
// shared between goroutines.
type Interpreter struct {
	mu    sync.Mutex
	rt    *runtime.Runtime
	eval  *expr.Evaluator
	out   OutputSink
	in    InputProvider
	eopts []expr.Option
}

// Option configures an interpreter.
type Option func(intp *Interpreter)

// WithReducer sets the mode of expression evaluation. If not set, the mode
// is taken from the configuration.
func WithReducer(m expr.Mode) Option {
	return func(intp *Interpreter) {
		intp.eopts = append(intp.eopts, expr.WithMode(m))
	}
}

// WithInput sets the provider for input statements. Without a provider,
// every input statement reports missing input.
func WithInput(in InputProvider) Option {
	return func(intp *Interpreter) {
		intp.in = in
	}
}

// New creates an interpreter writing its output to out.
func New(out OutputSink, opts ...Option) *Interpreter {
	intp := &Interpreter{
		rt:  runtime.NewRuntimeEnvironment(),
		out: out,
		in:  noInput{},
	}
	for _, opt := range opts {
		opt(intp)
	}
	if intp.in == nil {
		intp.in = noInput{}
	}
	intp.eval = expr.New(intp.rt.Store, intp.eopts...)
	return intp
}

// Store returns the variables of the latest run.
func (intp *Interpreter) Store() *runtime.VariableStore {
	return intp.rt.Store
}

// Mode returns the mode of expression evaluation.
func (intp *Interpreter) Mode() expr.Mode {
	return intp.eval.Mode()
}

// --- Runs ------------------------------------------------------------------

type state int8

const (
	normal state = iota
	skipping
)

// Interpret runs a script. The output is cleared and the variables of
// previous runs are discarded before the first line is executed.
// Interpret returns the number of statements which reported an error
// (warnings are not counted).
func (intp *Interpreter) Interpret(source string) int {
	intp.mu.Lock()
	defer intp.mu.Unlock()
	intp.out.Clear()
	intp.rt.StartRun()
	errcnt := 0
	st := normal
	for lineno, src := range strings.Split(source, "\n") {
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		if st == skipping {
			if src == "}" {
				st = normal
			}
			continue
		}
		stmt := Classify(src)
		tracer().P("line", src).Debugf("%d: %T", lineno+1, stmt)
		next, err := intp.execute(stmt)
		if err != nil && intp.report(lineno+1, err) {
			errcnt++
		}
		st = next
	}
	return errcnt
}

func (intp *Interpreter) execute(stmt Statement) (state, error) {
	switch s := stmt.(type) {
	case *Declaration:
		return normal, intp.declare(s)
	case *ListDeclaration:
		return normal, intp.declareList(s)
	case *Input:
		return normal, intp.input(s)
	case *TypedInput:
		return normal, intp.typedInput(s)
	case *TypeQuery:
		return normal, intp.typeOf(s)
	case *Conditional:
		ok, err := intp.condition(s)
		if !ok {
			return skipping, err
		}
		return normal, err
	case *Print:
		return normal, intp.print(s)
	case *InlinePrint:
		return normal, intp.inlinePrint(s)
	case *Assignment:
		return normal, intp.assign(s)
	case *Malformed:
		return normal, newError(ParseError, nil, "Error parsing %s: %s", s.What, s.Source())
	}
	return normal, newError(UnknownStatement, nil, "Unknown command: %s", stmt.Source())
}

// report writes an error line to the output. It returns false for warnings.
func (intp *Interpreter) report(lineno int, err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		e = newError(ParseError, err, "Error: %v", err)
	}
	intp.out.Append(e.Msg)
	if e.IsWarning() {
		tracer().Infof("line %d: %s", lineno, e.Msg)
		return false
	}
	tracer().Errorf("line %d: %s: %s", lineno, e.Kind, e.Msg)
	return true
}
