package expr

import (
	"fmt"

	"github.com/npillmayer/kotlang"
	"github.com/npillmayer/kotlang/runtime"
	"github.com/npillmayer/kotlang/scanner"
)

// Expressions in mode Precedence follow this grammar, parsed by precedence
// climbing:
//
//  Expr    ➞ Unary { BinOp Unary }
//  Unary   ➞ + Unary  |  - Unary  |  Primary
//  Primary ➞ number  |  ident  |  ( Expr )
//          |  pow ( Expr , Expr )  |  sqrt ( Expr )  |  log [ Expr ] ( Expr )
//  BinOp   ➞ +  |  -  |  *  |  /
//
// + and - bind weaker than * and /, all binary operators are left associative.

var precedence = map[kotlang.TokType]int{
	'+': 1,
	'-': 1,
	'*': 2,
	'/': 2,
}

type parser struct {
	ev   *Evaluator
	src  string
	toks []scanner.DefaultToken
	pos  int
}

func (ev *Evaluator) parse(expression string) (float64, error) {
	toks, err := scanner.Tokenize(expression)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	p := &parser{ev: ev, src: expression, toks: toks}
	f, err := p.expr(1)
	if err != nil {
		return 0, err
	}
	if p.peek() != scanner.EOF {
		return 0, p.unexpected()
	}
	return f, nil
}

func (p *parser) peek() kotlang.TokType {
	return p.toks[p.pos].TokType()
}

func (p *parser) next() scanner.DefaultToken {
	tok := p.toks[p.pos]
	if tok.TokType() != scanner.EOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(t kotlang.TokType) error {
	if p.peek() != t {
		return p.unexpected()
	}
	p.next()
	return nil
}

func (p *parser) unexpected() error {
	tok := p.toks[p.pos]
	return syntaxError("unexpected %s at position %d of %q",
		scanner.TokenName(tok.TokType()), tok.Span().From(), p.src)
}

// expr parses operator chains with operators of at least precedence minPrec.
func (p *parser) expr(minPrec int) (float64, error) {
	lhs, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		prec, isOp := precedence[op]
		if !isOp || prec < minPrec {
			return lhs, nil
		}
		p.next()
		rhs, err := p.expr(prec + 1)
		if err != nil {
			return 0, err
		}
		lhs = apply(string(rune(op)), lhs, rhs)
	}
}

func (p *parser) unary() (float64, error) {
	switch p.peek() {
	case '-':
		p.next()
		f, err := p.unary()
		return -f, err
	case '+':
		p.next()
		return p.unary()
	}
	return p.primary()
}

func (p *parser) primary() (float64, error) {
	switch p.peek() {
	case scanner.Number:
		tok := p.next()
		f, err := runtime.ParseDouble(tok.Lexeme())
		if err != nil {
			return 0, syntaxError("not a number: %q", tok.Lexeme())
		}
		return f, nil
	case '(':
		p.next()
		f, err := p.expr(1)
		if err != nil {
			return 0, err
		}
		return f, p.expect(')')
	case scanner.Ident:
		name := p.next().Lexeme()
		if isBuiltin(name) && (p.peek() == '(' || p.peek() == '[') {
			return p.call(name)
		}
		return p.variable(name)
	}
	return 0, p.unexpected()
}

func (p *parser) call(name string) (float64, error) {
	switch name {
	case "pow":
		args, err := p.arguments('(', ')', 2)
		if err != nil {
			return 0, err
		}
		return pow(args[0], args[1]), nil
	case "sqrt":
		args, err := p.arguments('(', ')', 1)
		if err != nil {
			return 0, err
		}
		return sqrt(args[0]), nil
	}
	base, err := p.arguments('[', ']', 1)
	if err != nil {
		return 0, err
	}
	x, err := p.arguments('(', ')', 1)
	if err != nil {
		return 0, err
	}
	return logBase(base[0], x[0]), nil
}

// arguments parses n comma-separated expressions between brackets lb and rb.
func (p *parser) arguments(lb, rb kotlang.TokType, n int) ([]float64, error) {
	if err := p.expect(lb); err != nil {
		return nil, err
	}
	args := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			if err := p.expect(','); err != nil {
				return nil, err
			}
		}
		f, err := p.expr(1)
		if err != nil {
			return nil, err
		}
		args = append(args, f)
	}
	return args, p.expect(rb)
}

func (p *parser) variable(name string) (float64, error) {
	v, ok := p.ev.store.Get(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", runtime.ErrUndefined, name)
	}
	switch v.Kind() {
	case runtime.BoolType, runtime.ListType:
		return 0, syntaxError("variable %s of type %s is not a number", name, v.Kind())
	}
	f, err := v.Float()
	if err != nil {
		return 0, syntaxError("variable %s is not a number: %q", name, v.String())
	}
	return f, nil
}
