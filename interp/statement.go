package interp

import (
	"strings"

	"github.com/npillmayer/kotlang/runtime"
)

// Statement is a classified source line. The set of statements is closed,
// every implementation is declared in this file.
type Statement interface {
	Source() string // the (trimmed) source line
	isStatement()
}

type line string

func (l line) Source() string {
	return string(l)
}

func (line) isStatement() {}

// Declaration is `int<x>5`, `double<x>1.5`, `string<x>"s"` or `bool<x>true`.
type Declaration struct {
	line
	Kind    runtime.Kind
	Name    string
	Literal string
}

// ListDeclaration is `list<x>cap(e1, e2, …)`.
type ListDeclaration struct {
	line
	Name     string
	Capacity string
	Elements string
}

// Input is `<in>(x)`.
type Input struct {
	line
	Name string
}

// TypedInput is `<in>(x).to<type>`.
type TypedInput struct {
	line
	Name string
	Type string
}

// TypeQuery is `type<x>`.
type TypeQuery struct {
	line
	Name string
}

// Conditional is `if (a op b) {`, opening a block closed by a line `}`.
type Conditional struct {
	line
	Condition string
}

// Print is `(x)` or `("text")`.
type Print struct {
	line
	Content string
}

// InlinePrint is `f(text {expression} text)`.
type InlinePrint struct {
	line
	Content string
}

// Assignment is `x = value`.
type Assignment struct {
	line
}

// Malformed is a line starting like a statement of the form named by What,
// but lacking its structure.
type Malformed struct {
	line
	What string
}

// Unknown is a line matching no statement form.
type Unknown struct {
	line
}

// --- Classification --------------------------------------------------------

var declarationKinds = []runtime.Kind{
	runtime.IntType, runtime.DoubleType, runtime.StringType, runtime.BoolType,
}

// Classify determines the statement form of a (trimmed, non-empty) line.
// Forms are tried in a fixed order, the first match wins.
func Classify(src string) Statement {
	l := line(src)
	for _, k := range declarationKinds {
		if prefix := k.String() + "<"; strings.HasPrefix(src, prefix) && strings.Contains(src, ">") {
			gt := strings.Index(src, ">")
			return &Declaration{
				line:    l,
				Kind:    k,
				Name:    src[len(prefix):gt],
				Literal: strings.TrimSpace(src[gt+1:]),
			}
		}
	}
	if strings.HasPrefix(src, "<in>(") {
		if strings.HasSuffix(src, ")") {
			return &Input{line: l, Name: strings.TrimSpace(src[5 : len(src)-1])}
		}
		if strings.Contains(src, ").to<") && strings.HasSuffix(src, ">") {
			to := strings.Index(src, ").to<")
			return &TypedInput{
				line: l,
				Name: strings.TrimSpace(src[5:to]),
				Type: strings.TrimSpace(src[to+5 : len(src)-1]),
			}
		}
	}
	if strings.HasPrefix(src, "type<") && strings.Contains(src, ">") {
		return &TypeQuery{line: l, Name: src[5:strings.Index(src, ">")]}
	}
	if strings.HasPrefix(src, "list<") && strings.Contains(src, ")") {
		return classifyList(src)
	}
	if strings.HasPrefix(src, "if (") && strings.Contains(src, ") {") {
		normalized := strings.ReplaceAll(src, "=<", "<=")
		lp, rp := strings.Index(normalized, "("), strings.Index(normalized, ")")
		return &Conditional{line: l, Condition: strings.TrimSpace(normalized[lp+1 : rp])}
	}
	if strings.HasPrefix(src, "(") && strings.HasSuffix(src, ")") {
		return &Print{line: l, Content: strings.TrimSpace(src[1 : len(src)-1])}
	}
	if strings.HasPrefix(src, "f(") && strings.HasSuffix(src, ")") {
		return &InlinePrint{line: l, Content: strings.TrimSpace(src[2 : len(src)-1])}
	}
	if strings.Contains(src, "=") {
		return &Assignment{line: l}
	}
	return &Unknown{line: l}
}

// list<name>cap(elements)
func classifyList(src string) Statement {
	malformed := &Malformed{line: line(src), What: "list command"}
	gt := strings.Index(src, ">")
	if gt < 0 {
		return malformed
	}
	lp := strings.Index(src[gt+1:], "(")
	if lp < 0 {
		return malformed
	}
	lp += gt + 1
	if lp+1 > len(src)-1 {
		return malformed
	}
	return &ListDeclaration{
		line:     line(src),
		Name:     src[5:gt],
		Capacity: strings.TrimSpace(src[gt+1 : lp]),
		Elements: src[lp+1 : len(src)-1],
	}
}
