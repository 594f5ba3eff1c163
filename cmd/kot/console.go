package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/kotlang/interp"
	"github.com/npillmayer/kotlang/runtime"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "  Warning",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
}

// console is an output sink printing lines as soon as they are appended.
// Error lines are highlighted. If screen is set, clearing the output clears
// the terminal screen as well.
type console struct {
	lines  []string
	screen io.Writer
}

var _ interp.OutputSink = (*console)(nil)

// ANSI: cursor home, erase display
const clearScreen = "\033[H\033[2J"

func (c *console) Clear() {
	c.lines = c.lines[:0]
	if c.screen != nil {
		fmt.Fprint(c.screen, clearScreen)
	}
}

func (c *console) Append(line string) {
	c.lines = append(c.lines, line)
	switch {
	case strings.HasPrefix(line, "Warning:"):
		pterm.Warning.Println(strings.TrimSpace(strings.TrimPrefix(line, "Warning:")))
	case isErrorLine(line):
		pterm.Error.Println(line)
	default:
		pterm.Println(line)
	}
}

var errorPrefixes = []string{"Error", "Undefined variable:", "Unknown command:",
	"Invalid assignment:", "Invalid condition:", "No input provided"}

func isErrorLine(line string) bool {
	for _, p := range errorPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// --- Input -----------------------------------------------------------------

// promptInput requests values for input statements on the terminal.
func promptInput(repl *readline.Instance, restore string) interp.InputFunc {
	return func(prompt string) (string, bool) {
		repl.SetPrompt(prompt + " ")
		defer repl.SetPrompt(restore)
		text, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			tracer().Infof("input cancelled: %v", err)
			return "", false
		}
		return text, true
	}
}

// scriptedInput splits a comma-separated list of answers.
func scriptedInput(answers string) *interp.ScriptedInput {
	if answers == "" {
		return interp.NewScriptedInput()
	}
	a := strings.Split(answers, ",")
	for i := range a {
		a[i] = strings.TrimSpace(a[i])
	}
	return interp.NewScriptedInput(a...)
}

// --- Variables -------------------------------------------------------------

// showVariables displays the variables of a store as a tree. List elements
// are displayed as children of their list.
func showVariables(store *runtime.VariableStore) {
	ll := pterm.LeveledList{}
	store.Each(func(name string, v runtime.Value) {
		if l := v.AsList(); l != nil {
			ll = append(ll, pterm.LeveledListItem{
				Level: 0,
				Text:  name + " : list<" + runtime.Int(l.Cap).String() + ">",
			})
			for _, e := range l.Elements() {
				ll = append(ll, pterm.LeveledListItem{Level: 1, Text: e.String()})
			}
			return
		}
		ll = append(ll, pterm.LeveledListItem{
			Level: 0,
			Text:  name + " : " + v.Kind().String() + " = " + v.String(),
		})
	})
	if len(ll) == 0 {
		pterm.Info.Println("no variables")
		return
	}
	pterm.Println("variables")
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}
