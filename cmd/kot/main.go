package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/kotlang/expr"
	"github.com/npillmayer/kotlang/interp"
	"github.com/npillmayer/kotlang/runtime"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

const prompt = "kot> "

// Trace keys of the kotlang packages.
var traceKeys = []string{"kotlang.runtime", "kotlang.scanner", "kotlang.expr", "kotlang.interp"}

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	reducer := flag.String("reducer", "", "Expression reducer [legacy|precedence]")
	answers := flag.String("input", "", "Comma-separated answers for input statements")
	flag.Parse()
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(traceLevel(*tlevel))
	}
	tracer().Infof("Trace level is %s", *tlevel)
	//
	var err error
	var opts []interp.Option
	if *reducer != "" {
		var mode expr.Mode
		if mode, err = expr.ModeFromString(*reducer); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
		opts = append(opts, interp.WithReducer(mode))
	}
	out := &console{}
	if flag.NArg() > 0 {
		var repl *readline.Instance
		if *answers != "" || !isTerminal() {
			opts = append(opts, interp.WithInput(scriptedInput(*answers)))
		} else if repl, err = readline.New(""); err == nil {
			opts = append(opts, interp.WithInput(promptInput(repl, "")))
		}
		code := runScript(flag.Arg(0), out, opts)
		if repl != nil {
			repl.Close()
		}
		os.Exit(code)
	}
	//
	// set up REPL
	repl, err := readline.New(prompt)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	if *answers != "" {
		opts = append(opts, interp.WithInput(scriptedInput(*answers)))
	} else {
		opts = append(opts, interp.WithInput(promptInput(repl, prompt)))
	}
	if isTerminal() {
		out.screen = os.Stdout
	}
	sh := &shell{
		repl: repl,
		out:  out,
		intp: interp.New(out, opts...),
	}
	pterm.Info.Println("Welcome to kot") // colored welcome message
	tracer().Infof("Reducer is %s", sh.intp.Mode())
	pterm.Info.Println("Enter statements, then :run. Quit with <ctrl>D")
	sh.loop()
}

// runScript interprets a script file once. It returns the exit code.
func runScript(filename string, out *console, opts []interp.Option) int {
	src, err := os.ReadFile(filename)
	if err != nil {
		pterm.Error.Println(fmt.Sprintf("Unable to read script: %v", err))
		return 2
	}
	intp := interp.New(out, opts...)
	if n := intp.Interpret(string(src)); n > 0 {
		tracer().Infof("%s: %d statement(s) failed", filename, n)
		return 1
	}
	return 0
}

func isTerminal() bool {
	return readline.DefaultIsTerminal()
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// --- Interactive shell -----------------------------------------------------

type shell struct {
	repl   *readline.Instance
	out    *console
	intp   *interp.Interpreter
	buffer []string
}

func (sh *shell) loop() {
	for {
		line, err := sh.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if quit := sh.command(line); quit {
			break
		}
	}
	println("Good bye!")
}

// command executes a shell command or appends a line to the buffer.
// It returns true if the shell should quit.
func (sh *shell) command(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "clear" {
		interp.RouteTerminal(trimmed, sh.out)
		return false
	}
	if !strings.HasPrefix(trimmed, ":") {
		sh.buffer = append(sh.buffer, line)
		return false
	}
	switch cmd := strings.TrimPrefix(trimmed, ":"); cmd {
	case "quit", "q":
		return true
	case "run":
		n := sh.intp.Interpret(strings.Join(sh.buffer, "\n"))
		tracer().Infof("run finished, %d statement(s) failed", n)
	case "show":
		for i, l := range sh.buffer {
			pterm.Println(fmt.Sprintf("%3d  %s", i+1, l))
		}
	case "new":
		sh.buffer = sh.buffer[:0]
	case "vars":
		showVariables(sh.intp.Store())
	case "keywords":
		pterm.Info.Println("reserved: " + strings.Join(runtime.Keywords(), " "))
	default:
		interp.RouteTerminal(cmd, sh.out)
	}
	return false
}
