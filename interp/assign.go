package interp

import "strings"

// splitFields splits s around every occurrence of sep. Trailing empty fields
// are dropped, so "x=" has a single field.
func splitFields(s, sep string) []string {
	fields := strings.Split(s, sep)
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// assign re-binds an existing variable. The value is resolved from the
// right hand side and may change the variable's kind.
func (intp *Interpreter) assign(a *Assignment) error {
	fields := splitFields(a.Source(), "=")
	if len(fields) != 2 {
		return newError(ParseError, nil, "Invalid assignment: %s", a.Source())
	}
	name := strings.TrimSpace(fields[0])
	v := intp.rt.Store.Resolve(strings.TrimSpace(fields[1]))
	if err := intp.rt.Store.Assign(name, v); err != nil {
		return newError(UndefinedVariable, err, "Undefined variable: %s", name)
	}
	return nil
}

// --- Conditions ------------------------------------------------------------

// Comparison operators, in the order they are searched for.
var comparisons = []string{">=", "<=", "==", ">", "<"}

// condition evaluates the condition of an if-statement. Operands are
// compared as doubles. Errors make a condition false.
func (intp *Interpreter) condition(c *Conditional) (bool, error) {
	cond := c.Condition
	op := ""
	for _, cmp := range comparisons {
		if strings.Contains(cond, cmp) {
			op = cmp
			break
		}
	}
	if op == "" {
		return false, newError(ParseError, nil, "Invalid condition: %s", cond)
	}
	fields := splitFields(cond, op)
	if len(fields) != 2 {
		return false, newError(ParseError, nil, "Error parsing condition: %s", cond)
	}
	lv := intp.rt.Store.Resolve(strings.TrimSpace(fields[0]))
	rv := intp.rt.Store.Resolve(strings.TrimSpace(fields[1]))
	a, errl := lv.Float()
	b, errr := rv.Float()
	if errl != nil || errr != nil {
		return false, newError(ParseError, nil, "Error comparing values: %s and %s", lv, rv)
	}
	tracer().Debugf("condition %v %s %v", a, op, b)
	switch op {
	case ">=":
		return a >= b, nil
	case "<=":
		return a <= b, nil
	case "==":
		return a == b, nil
	case ">":
		return a > b, nil
	}
	return a < b, nil
}
