package runtime

import (
	"math"
	"testing"
)

func TestFormatDouble(t *testing.T) {
	for i, test := range []struct {
		f float64
		s string
	}{
		{8, "8.0"},
		{4, "4.0"},
		{1.5, "1.5"},
		{-2.25, "-2.25"},
		{0, "0.0"},
		{0.30000000000000004, "0.30000000000000004"},
		{1234567, "1234567.0"},
		{1e7, "1.0E7"},
		{12345678.9, "1.23456789E7"},
		{0.001, "0.001"},
		{0.00025, "2.5E-4"},
		{1e-10, "1.0E-10"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	} {
		if s := FormatDouble(test.f); s != test.s {
			t.Errorf("test %d: expected %v to format as %q, is %q", i, test.f, test.s, s)
		}
	}
	a, b := 0.1, 0.2 // not folded as constants
	if s := FormatDouble(a + b); s != "0.30000000000000004" {
		t.Errorf("expected 0.1+0.2 to format with rounding error, is %q", s)
	}
}

func TestParseDouble(t *testing.T) {
	for i, test := range []struct {
		s  string
		f  float64
		ok bool
	}{
		{"1.5", 1.5, true},
		{" 2 ", 2, true},
		{"-0.5", -0.5, true},
		{"1.0E7", 1e7, true},
		{"2.5E-4", 0.00025, true},
		{"Infinity", math.Inf(1), true},
		{"inf", 0, false},
		{"0x10", 0, false},
		{"1_000", 0, false},
		{"", 0, false},
		{"abc", 0, false},
	} {
		f, err := ParseDouble(test.s)
		if (err == nil) != test.ok {
			t.Errorf("test %d: unexpected error state for %q: %v", i, test.s, err)
			continue
		}
		if test.ok && f != test.f {
			t.Errorf("test %d: expected %q to parse as %v, is %v", i, test.s, test.f, f)
		}
	}
}

func TestParseBool(t *testing.T) {
	if b, err := ParseBool("true"); err != nil || !b {
		t.Error("expected 'true' to parse")
	}
	if _, err := ParseBool("True"); err == nil {
		t.Error("expected 'True' to be rejected")
	}
}

func TestUnquote(t *testing.T) {
	for _, test := range [][2]string{
		{`"hi"`, "hi"},
		{`hi`, "hi"},
		{`""`, ""},
		{`"`, `"`},
		{`"a" b`, `"a" b`},
	} {
		if s := Unquote(test[0]); s != test[1] {
			t.Errorf("expected %q to unquote to %q, is %q", test[0], test[1], s)
		}
	}
}

func TestListValue(t *testing.T) {
	l, err := List(3, []Value{String("a"), String("b")})
	if err != nil {
		t.Fatal(err)
	}
	if l.Kind() != ListType || l.String() != "[a, b]" {
		t.Errorf("unexpected list %s %q", l.Kind(), l.String())
	}
	if l.AsList().Cap != 3 || l.AsList().Len() != 2 {
		t.Errorf("unexpected list dimensions")
	}
	if _, err := List(1, []Value{Int(1), Int(2)}); err == nil {
		t.Error("expected list overflow to be rejected")
	}
	if _, err := l.Float(); err == nil {
		t.Error("expected list not to be numeric")
	}
}

func TestListCapacity(t *testing.T) {
	l, err := NewList(2)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []bool{true, true, false} {
		if added := l.Add(Int(i)); added != want {
			t.Errorf("add %d: expected %v, got %v", i, want, added)
		}
	}
	if l.Len() != 2 || l.Value().String() != "[0, 1]" {
		t.Errorf("expected list [0, 1], have %s", l.Value())
	}
	if len(l.Elements()) != 2 || l.Elements()[1] != Int(1) {
		t.Errorf("unexpected elements %v", l.Elements())
	}
	if _, err := NewList(-1); err == nil {
		t.Error("expected negative capacity to be rejected")
	}
	empty, _ := NewList(0)
	if empty.Add(String("x")) || empty.Value().String() != "[]" {
		t.Error("expected list of capacity 0 to stay empty")
	}
}

func TestValueFloat(t *testing.T) {
	for i, test := range []struct {
		v  Value
		f  float64
		ok bool
	}{
		{Int(3), 3, true},
		{Double(2.5), 2.5, true},
		{String("7"), 7, true},
		{String("seven"), 0, false},
		{Bool(true), 0, false},
	} {
		f, err := test.v.Float()
		if (err == nil) != test.ok || (test.ok && f != test.f) {
			t.Errorf("test %d: expected %v to convert to %v (ok=%v), got %v, %v",
				i, test.v, test.f, test.ok, f, err)
		}
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range []Kind{IntType, DoubleType, StringType, BoolType, ListType} {
		if KindFromString(k.String()) != k {
			t.Errorf("kind %s does not round-trip", k)
		}
	}
	if KindFromString("float") != Undefined {
		t.Error("expected unknown type name to map to Undefined")
	}
}
