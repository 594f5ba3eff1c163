package interp

import (
	"errors"
	"strings"

	"github.com/npillmayer/kotlang/runtime"
)

// print writes a quoted text or the value of a variable.
func (intp *Interpreter) print(p *Print) error {
	c := p.Content
	if len(c) >= 2 && strings.HasPrefix(c, `"`) && strings.HasSuffix(c, `"`) {
		intp.out.Append(c[1 : len(c)-1])
		return nil
	}
	v, ok := intp.rt.Store.Get(c)
	if !ok {
		return newError(UndefinedVariable, runtime.ErrUndefined, "Undefined variable: %s", c)
	}
	intp.out.Append(v.String())
	return nil
}

// inlinePrint writes a text with embedded expressions. Output is written
// only if every expression could be evaluated.
func (intp *Interpreter) inlinePrint(p *InlinePrint) error {
	segs, err := segments(p.Content)
	if err != nil {
		return newError(ParseError, err, "Error in inline print: %s", p.Source())
	}
	var b strings.Builder
	for _, seg := range segs {
		if !seg.isExpr {
			b.WriteString(seg.text)
			continue
		}
		r, err := intp.eval.Evaluate(seg.text)
		if err != nil {
			return newError(ParseError, err, "Error in inline print: %s", p.Source())
		}
		b.WriteString(r)
	}
	intp.out.Append(b.String())
	return nil
}

// --- Segment scanner -------------------------------------------------------

type segment struct {
	text   string
	isExpr bool
}

var (
	errNestedBrace  = errors.New("'{' within expression")
	errUnterminated = errors.New("unterminated expression")
)

// segments splits the content of an inline print into literal text and
// expressions enclosed in braces. `\{` and `\}` denote literal braces, as
// does the pair `{}`.
func segments(content string) ([]segment, error) {
	var segs []segment
	var text strings.Builder
	inExpr := false
	flush := func(isExpr bool) {
		if isExpr || text.Len() > 0 {
			segs = append(segs, segment{text: text.String(), isExpr: isExpr})
		}
		text.Reset()
	}
	for i := 0; i < len(content); i++ {
		c := content[i]
		if inExpr {
			switch c {
			case '{':
				return nil, errNestedBrace
			case '}':
				flush(true)
				inExpr = false
			default:
				text.WriteByte(c)
			}
			continue
		}
		switch {
		case c == '\\' && i+1 < len(content) && (content[i+1] == '{' || content[i+1] == '}'):
			text.WriteByte(content[i+1])
			i++
		case c == '{' && i+1 < len(content) && content[i+1] == '}':
			text.WriteString("{}")
			i++
		case c == '{':
			flush(false)
			inExpr = true
		default:
			text.WriteByte(c)
		}
	}
	if inExpr {
		return nil, errUnterminated
	}
	flush(false)
	return segs, nil
}
