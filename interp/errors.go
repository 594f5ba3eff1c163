package interp

import "fmt"

// ErrorKind classifies the errors a statement may produce.
type ErrorKind int

// Kinds of statement errors.
const (
	ReservedKeyword   ErrorKind = iota + 1 // variable named like a keyword
	UndefinedVariable                      // reference to an undeclared variable
	ParseError                             // malformed declaration, condition or expression
	UnsupportedType                        // unknown target type of typed input
	ListOverflow                           // more list elements than capacity (warning)
	UnknownStatement                       // line matches no statement shape
	NoInput                                // input provider returned no value
)

var kindNames = [...]string{"", "ReservedKeyword", "UndefinedVariable", "ParseError",
	"UnsupportedType", "ListOverflow", "UnknownStatement", "NoInput"}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is an error of a single statement. Its message is the line the
// interpreter writes to the output.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error // underlying error, if any
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsWarning is a predicate: is this a warning? A statement producing a warning
// has been executed nevertheless.
func (e *Error) IsWarning() bool {
	return e.Kind == ListOverflow
}

func newError(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Err:  cause,
	}
}
