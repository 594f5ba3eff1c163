package runtime

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Variable store for scripts. Scripts have a single, flat namespace, which is
// created fresh for every run of the interpreter.
//

// --- Variables --------------------------------------------------------

// Variable is a named slot holding a value.
type Variable struct {
	name  string
	Value Value
}

// NewVariable creates a new variable, bound to v.
func NewVariable(nm string, v Value) *Variable {
	return &Variable{
		name:  nm,
		Value: v,
	}
}

// String is a debug Stringer for variables.
func (vr *Variable) String() string {
	return fmt.Sprintf("<var '%s':%s>", vr.Name(), vr.Value.Kind())
}

// Name gets the variable's name.
func (vr *Variable) Name() string {
	return vr.name
}

// === Variable Store ========================================================

// ErrUndefined is returned when assigning to a variable which has not been
// declared.
var ErrUndefined = errors.New("undefined variable")

// VariableStore stores variables (map-like semantics). It is owned by exactly
// one interpreter and is not safe for concurrent use.
type VariableStore struct {
	Table map[string]*Variable
}

// NewVariableStore creates an empty variable store.
func NewVariableStore() *VariableStore {
	var st = VariableStore{
		Table: make(map[string]*Variable),
	}
	return &st
}

// Lookup checks for a variable in the store.
// Returns a variable or nil.
func (st *VariableStore) Lookup(name string) *Variable {
	return st.Table[name]
}

// Get returns the value bound to name and a flag, signalling wether the
// variable is present.
func (st *VariableStore) Get(name string) (Value, bool) {
	if vr := st.Lookup(name); vr != nil {
		return vr.Value, true
	}
	return Nil, false
}

// Declare creates a new variable and stores it.
// Overwrites an existing variable with this name, if any.
// Returns the new variable and the previously stored variable (or nil).
//
func (st *VariableStore) Declare(name string, v Value) (*Variable, *Variable) {
	vr := NewVariable(name, v)
	old := st.Lookup(name)
	st.Table[name] = vr
	tracer().P("var", name).Debugf("declare %s = %s", v.Kind(), v)
	return vr, old
}

// Assign re-binds an existing variable to a new value. The kind of the value
// may differ from the kind the variable has been declared with.
// Returns ErrUndefined if the variable does not exist.
func (st *VariableStore) Assign(name string, v Value) error {
	vr := st.Lookup(name)
	if vr == nil {
		return fmt.Errorf("%w: %s", ErrUndefined, name)
	}
	st.Table[name] = NewVariable(name, v)
	tracer().P("var", name).Debugf("assign %s = %s", v.Kind(), v)
	return nil
}

// Clear removes all variables.
func (st *VariableStore) Clear() {
	st.Table = make(map[string]*Variable)
}

// Size counts the variables in the store.
func (st *VariableStore) Size() int {
	return len(st.Table)
}

// Each iterates over each variable in the store, executing a mapper function.
// Longer names are visited before shorter ones, names of equal length in
// lexical order. Textual substitution of names relies on this order, as it
// keeps `xy` from being clobbered by a substitution of `x`.
func (st *VariableStore) Each(mapper func(string, Value)) {
	names := make([]string, 0, len(st.Table))
	for k := range st.Table {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	for _, k := range names {
		mapper(k, st.Table[k].Value)
	}
}

// Resolve converts a token to a value: if the token names a variable, the
// variable's value is returned. Otherwise the token is read as a number
// (a double if it contains a '.', an integer if not). Tokens which are
// neither are returned as string values, unchanged.
func (st *VariableStore) Resolve(token string) Value {
	if v, ok := st.Get(token); ok {
		return v
	}
	if strings.Contains(token, ".") {
		if f, err := ParseDouble(token); err == nil {
			return Double(f)
		}
		return String(token)
	}
	if n, err := ParseInt(token); err == nil {
		return Int(n)
	}
	return String(token)
}
