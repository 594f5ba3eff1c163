package interp

import (
	"strings"

	"github.com/npillmayer/kotlang/runtime"
)

// input requests a number. Text containing a '.' is read as a double,
// other text as an integer.
func (intp *Interpreter) input(s *Input) error {
	malformed := newError(ParseError, nil, "Error parsing input command: %s", s.Source())
	if err := checkName(s.Name, malformed); err != nil {
		return err
	}
	text, ok := intp.in.Request("Enter value for " + s.Name + ":")
	if !ok {
		return newError(NoInput, nil, "No input provided for %s", s.Name)
	}
	text = strings.TrimSpace(text)
	k := runtime.IntType
	if strings.Contains(text, ".") {
		k = runtime.DoubleType
	}
	v, err := coerce(k, text)
	if err != nil {
		malformed.Err = err
		return malformed
	}
	intp.rt.Store.Declare(s.Name, v)
	return nil
}

// typedInput requests a value of a given type.
func (intp *Interpreter) typedInput(s *TypedInput) error {
	malformed := newError(ParseError, nil, "Error parsing type casting input command: %s", s.Source())
	if err := checkName(s.Name, malformed); err != nil {
		return err
	}
	k := runtime.KindFromString(s.Type)
	switch k {
	case runtime.IntType, runtime.DoubleType, runtime.StringType, runtime.BoolType:
	default:
		return newError(UnsupportedType, nil, "Error: Unsupported target type %s.", s.Type)
	}
	text, ok := intp.in.Request("Enter value for " + s.Name + " (type: " + s.Type + "):")
	if !ok {
		return newError(NoInput, nil, "No input provided for %s", s.Name)
	}
	if k != runtime.StringType {
		text = strings.TrimSpace(text)
	}
	v, err := coerce(k, text)
	if err != nil {
		malformed.Err = err
		return malformed
	}
	intp.rt.Store.Declare(s.Name, v)
	return nil
}
