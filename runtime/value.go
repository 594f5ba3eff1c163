package runtime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Values of the .kot language are immutable. A variable is re-bound to a new
// value on assignment, never modified in place.

// Kind is the runtime type of a value.
type Kind int8

// Kinds of values.
const (
	Undefined Kind = iota
	IntType
	DoubleType
	StringType
	BoolType
	ListType
)

var kindNames = [...]string{"undefined", "int", "double", "string", "bool", "list"}

// String returns the name of a kind as it is spelled in scripts.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int8(k))
}

// KindFromString returns the kind for a type name ("int", "double", …).
// Returns Undefined for unknown type names.
func KindFromString(s string) Kind {
	for i, nm := range kindNames[1:] {
		if nm == s {
			return Kind(i + 1)
		}
	}
	return Undefined
}

// Value is a tagged value. Data holds an int, float64, string, bool or *ListData,
// depending on the kind.
type Value struct {
	kind Kind
	Data interface{}
}

// ListData is the payload of a list value. A list has a fixed capacity, set at
// declaration time, and never holds more than Cap elements.
type ListData struct {
	Cap   int
	elems *arraylist.List
}

// NewList creates an empty list with capacity cap. Elements are added with
// Add, and Value wraps the list once it is complete.
func NewList(cap int) (*ListData, error) {
	if cap < 0 {
		return nil, fmt.Errorf("negative list capacity %d", cap)
	}
	return &ListData{Cap: cap, elems: arraylist.New()}, nil
}

// Add appends an element. It returns false, leaving the list unchanged, if
// the list is already filled to capacity.
func (l *ListData) Add(v Value) bool {
	if l.elems.Size() >= l.Cap {
		return false
	}
	l.elems.Add(v)
	return true
}

// Elements returns a copy of the list elements.
func (l *ListData) Elements() []Value {
	e := make([]Value, 0, l.elems.Size())
	l.elems.Each(func(_ int, v interface{}) {
		e = append(e, v.(Value))
	})
	return e
}

// Len returns the number of elements in the list.
func (l *ListData) Len() int {
	return l.elems.Size()
}

// Value wraps the list into a value of kind ListType.
func (l *ListData) Value() Value {
	return Value{kind: ListType, Data: l}
}

// Nil is the undefined value.
var Nil = Value{}

// Int creates an integer value.
func Int(n int) Value {
	return Value{kind: IntType, Data: n}
}

// Double creates a floating point value.
func Double(f float64) Value {
	return Value{kind: DoubleType, Data: f}
}

// String creates a string value.
func String(s string) Value {
	return Value{kind: StringType, Data: s}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	return Value{kind: BoolType, Data: b}
}

// List creates a list value with capacity cap. Elements beyond the capacity
// are not accepted; callers have to truncate (and warn) beforehand.
func List(cap int, elems []Value) (Value, error) {
	l, err := NewList(cap)
	if err != nil {
		return Nil, err
	}
	for _, e := range elems {
		if !l.Add(e) {
			return Nil, fmt.Errorf("%d elements exceed list capacity %d", len(elems), cap)
		}
	}
	return l.Value(), nil
}

// Kind returns the runtime type of a value.
func (v Value) Kind() Kind {
	return v.kind
}

// AsList returns the list payload of a list value, or nil.
func (v Value) AsList() *ListData {
	if l, ok := v.Data.(*ListData); ok {
		return l
	}
	return nil
}

// String returns the textual form of a value, as it is printed and as it is
// substituted into expressions.
func (v Value) String() string {
	switch v.kind {
	case IntType:
		return strconv.Itoa(v.Data.(int))
	case DoubleType:
		return FormatDouble(v.Data.(float64))
	case StringType:
		return v.Data.(string)
	case BoolType:
		return strconv.FormatBool(v.Data.(bool))
	case ListType:
		elems := v.Data.(*ListData).Elements()
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return "null"
}

// Float interprets the textual form of a value as a floating point number.
// Bools, lists and non-numeric strings produce an error.
func (v Value) Float() (float64, error) {
	switch v.kind {
	case IntType:
		return float64(v.Data.(int)), nil
	case DoubleType:
		return v.Data.(float64), nil
	}
	return ParseDouble(v.String())
}

// --- Parsing literals ------------------------------------------------------

// ErrNumberFormat is returned for literals which are not valid numbers.
var ErrNumberFormat = errors.New("invalid number format")

// ParseInt parses a decimal integer literal with an optional sign.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumberFormat, s)
	}
	return n, nil
}

// ParseDouble parses a floating point literal. Surrounding white space is
// ignored. Besides decimal and exponent notation, "NaN" and "Infinity" (with
// optional sign) are accepted, as they are produced by FormatDouble.
// Go-specific forms (hex floats, "inf", underscores) are rejected.
func ParseDouble(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.TrimLeft(s, "+-") {
	case "NaN":
		if s == "NaN" {
			return math.NaN(), nil
		}
	case "Infinity":
		if strings.HasPrefix(s, "-") {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}
	if strings.ContainsAny(s, "xXpPiInN_") {
		return 0, fmt.Errorf("%w: %q", ErrNumberFormat, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, nil // ±Inf or 0, like IEEE overflow/underflow
		}
		return 0, fmt.Errorf("%w: %q", ErrNumberFormat, s)
	}
	return f, nil
}

// ParseBool accepts exactly "true" and "false".
func ParseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value: %q", s)
}

// Unquote strips one pair of surrounding double quotes. Text not wrapped in
// quotes is returned unchanged.
func Unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// --- Formatting doubles ----------------------------------------------------

// FormatDouble formats a float the way .kot scripts have always printed
// doubles: integral values keep a trailing ".0", values with a magnitude
// in [1e-3, 1e7) are written in plain decimal notation, all others in
// computerized scientific notation ("1.0E7", "2.5E-4").
func FormatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	if abs := math.Abs(f); abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(f, 'E', -1, 64) // e.g. 1E+07, 2.5E-04
	mant, exp := s, ""
	if i := strings.IndexByte(s, 'E'); i >= 0 {
		mant, exp = s[:i], s[i+1:]
	}
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-")
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		exp = "-" + exp
	}
	return mant + "E" + exp
}
