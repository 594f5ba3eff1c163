package interp

import (
	"strings"

	"github.com/npillmayer/kotlang/runtime"
)

// checkName rejects reserved names. Empty names are reported with malformed.
func checkName(name string, malformed *Error) error {
	if name == "" {
		return malformed
	}
	if runtime.IsReserved(name) {
		return newError(ReservedKeyword, nil, "Error: %s is a reserved keyword.", name)
	}
	return nil
}

// coerce converts the text of a literal into a value of kind k.
// Strings lose one pair of enclosing double quotes.
func coerce(k runtime.Kind, text string) (runtime.Value, error) {
	switch k {
	case runtime.IntType:
		n, err := runtime.ParseInt(text)
		if err != nil {
			return runtime.Nil, err
		}
		return runtime.Int(n), nil
	case runtime.DoubleType:
		f, err := runtime.ParseDouble(text)
		if err != nil {
			return runtime.Nil, err
		}
		return runtime.Double(f), nil
	case runtime.StringType:
		return runtime.String(runtime.Unquote(text)), nil
	case runtime.BoolType:
		b, err := runtime.ParseBool(text)
		if err != nil {
			return runtime.Nil, err
		}
		return runtime.Bool(b), nil
	}
	return runtime.Nil, runtime.ErrNumberFormat
}

func (intp *Interpreter) declare(d *Declaration) error {
	if err := checkName(d.Name, newError(ParseError, nil, "Error parsing line: %s", d.Source())); err != nil {
		return err
	}
	v, err := coerce(d.Kind, d.Literal)
	if err != nil {
		if d.Kind == runtime.BoolType {
			return newError(ParseError, err, "Error: Invalid boolean value: %s", d.Literal)
		}
		return newError(ParseError, err, "Error parsing line: %s", d.Source())
	}
	intp.rt.Store.Declare(d.Name, v)
	return nil
}

// declareList stores a list of string elements. Elements exceeding the
// capacity are dropped with a warning, the list is stored nevertheless.
func (intp *Interpreter) declareList(d *ListDeclaration) error {
	malformed := newError(ParseError, nil, "Error parsing list command: %s", d.Source())
	if err := checkName(d.Name, malformed); err != nil {
		return err
	}
	capacity, err := runtime.ParseInt(d.Capacity)
	if err != nil {
		malformed.Err = err
		return malformed
	}
	l, err := runtime.NewList(capacity)
	if err != nil {
		malformed.Err = err
		return malformed
	}
	var overflow error
	for _, e := range strings.Split(d.Elements, ",") {
		if !l.Add(runtime.String(strings.TrimSpace(e))) {
			overflow = newError(ListOverflow, nil, "Warning: List exceeded max size. Remaining elements ignored.")
			break
		}
	}
	intp.rt.Store.Declare(d.Name, l.Value())
	return overflow
}

// typeOf writes the kind of a variable.
func (intp *Interpreter) typeOf(q *TypeQuery) error {
	v, ok := intp.rt.Store.Get(q.Name)
	if !ok {
		return newError(UndefinedVariable, runtime.ErrUndefined, "Undefined variable: %s", q.Name)
	}
	intp.out.Append(q.Name + " is of type: " + v.Kind().String())
	return nil
}
