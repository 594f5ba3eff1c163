package interp

import "strings"

// OutputSink receives the output lines of a run.
type OutputSink interface {
	Clear()
	Append(line string)
}

// InputProvider supplies values for input statements. Request blocks until a
// value is available. It returns false if no value has been provided, e.g.
// because the user cancelled the request.
type InputProvider interface {
	Request(prompt string) (string, bool)
}

// InputFunc is an adapter to use ordinary functions as input providers.
type InputFunc func(prompt string) (string, bool)

// Request calls f(prompt).
func (f InputFunc) Request(prompt string) (string, bool) {
	return f(prompt)
}

// --- Default implementations -----------------------------------------------

// LineBuffer is an in-memory output sink.
type LineBuffer struct {
	lines []string
}

var _ OutputSink = (*LineBuffer)(nil)

// Clear removes all lines.
func (b *LineBuffer) Clear() {
	b.lines = b.lines[:0]
}

// Append adds a line.
func (b *LineBuffer) Append(line string) {
	b.lines = append(b.lines, line)
}

// Lines returns a copy of the lines in the buffer.
func (b *LineBuffer) Lines() []string {
	l := make([]string, len(b.lines))
	copy(l, b.lines)
	return l
}

func (b *LineBuffer) String() string {
	return strings.Join(b.lines, "\n")
}

// ScriptedInput answers input requests from a queue of prepared answers.
// If the queue is exhausted, requests return no value. All prompts are
// recorded.
type ScriptedInput struct {
	answers []string
	Prompts []string
}

var _ InputProvider = (*ScriptedInput)(nil)

// NewScriptedInput creates an input provider answering with answers, in order.
func NewScriptedInput(answers ...string) *ScriptedInput {
	return &ScriptedInput{answers: answers}
}

// Request returns the next prepared answer.
func (si *ScriptedInput) Request(prompt string) (string, bool) {
	si.Prompts = append(si.Prompts, prompt)
	if len(si.answers) == 0 {
		return "", false
	}
	a := si.answers[0]
	si.answers = si.answers[1:]
	return a, true
}

// noInput never provides a value.
type noInput struct{}

func (noInput) Request(string) (string, bool) {
	return "", false
}

// --- Terminal commands -----------------------------------------------------

// RouteTerminal executes a terminal command: "clear" clears the output,
// every other command is reported as unknown.
func RouteTerminal(cmd string, out OutputSink) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "clear" {
		out.Clear()
		return
	}
	out.Append("Unknown command: " + cmd)
}
