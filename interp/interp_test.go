package interp

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/kotlang/expr"
	"github.com/npillmayer/kotlang/runtime"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRunStartsEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	out := &LineBuffer{}
	intp := New(out)
	intp.Interpret("int<x>5\n(x)")
	if diff := cmp.Diff([]string{"5"}, out.Lines()); diff != "" {
		t.Errorf("first run (-want +got):\n%s", diff)
	}
	intp.Interpret("(x)")
	if diff := cmp.Diff([]string{"Undefined variable: x"}, out.Lines()); diff != "" {
		t.Errorf("second run (-want +got):\n%s", diff)
	}
	if intp.rt.Runs != 2 {
		t.Errorf("expected 2 runs, have %d", intp.rt.Runs)
	}
}

func TestLineEndings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	out := &LineBuffer{}
	New(out).Interpret("int<x>5\r\n\r\n   \r\n  (x)  \r\n")
	if diff := cmp.Diff([]string{"5"}, out.Lines()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestErrorCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	out := &LineBuffer{}
	n := New(out).Interpret("list<l>1(a, b)\nhello\n(x)\n(l)")
	if n != 2 {
		t.Errorf("expected 2 errors (warnings not counted), have %d", n)
	}
	if len(out.Lines()) != 4 {
		t.Errorf("expected 4 output lines, have %v", out.Lines())
	}
}

func TestNoMutationOnError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	intp := New(&LineBuffer{})
	intp.Interpret("int<list>3\ny = 4\nint<x>abc\nlist<l>-1(a)\n<in>(z)")
	if intp.Store().Size() != 0 {
		var names []string
		intp.Store().Each(func(n string, _ runtime.Value) { names = append(names, n) })
		t.Errorf("expected store to be empty, has %v", names)
	}
}

func TestErrorKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	for i, test := range []struct {
		line string
		kind ErrorKind
	}{
		{"int<double>1", ReservedKeyword},
		{"(nothing)", UndefinedVariable},
		{"nothing = 1", UndefinedVariable},
		{"type<nothing>", UndefinedVariable},
		{"if (> 1) {", ParseError},
		{"int<x>1.5", ParseError},
		{"bool<b>1", ParseError},
		{"x = 1 = 2", ParseError},
		{"if (1 ! 2) {", ParseError},
		{"if (a > 2) {", ParseError},
		{"f({1+})", ParseError},
		{"<in>(x).to<float>", UnsupportedType},
		{"list<l>1(a,b)", ListOverflow},
		{"print x", UnknownStatement},
		{"<in>(x)", NoInput},
	} {
		intp := New(&LineBuffer{})
		_, err := intp.execute(Classify(test.line))
		var e *Error
		if !errors.As(err, &e) {
			t.Errorf("test %d: expected %q to fail with %s, got %v", i, test.line, test.kind, err)
			continue
		}
		if e.Kind != test.kind {
			t.Errorf("test %d: expected %q to fail with %s, got %s", i, test.line, test.kind, e.Kind)
		}
	}
}

func TestUndefinedIsWrapped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	intp := New(&LineBuffer{})
	_, err := intp.execute(Classify("y = 4"))
	if !errors.Is(err, runtime.ErrUndefined) {
		t.Errorf("expected error to wrap ErrUndefined, is %v", err)
	}
	intp = New(&LineBuffer{}, WithReducer(expr.Precedence))
	_, err = intp.execute(Classify("f({1+})"))
	if !errors.Is(err, expr.ErrSyntax) {
		t.Errorf("expected error to wrap ErrSyntax, is %v", err)
	}
}

func TestConditionStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	intp := New(&LineBuffer{})
	intp.rt.Store.Declare("x", runtime.Int(3))
	for i, test := range []struct {
		line string
		next state
	}{
		{"if (x == 3) {", normal},
		{"if (x > 3) {", skipping},
		{"if (3.0 >= x) {", normal},
		{"if (x) {", skipping},
	} {
		next, _ := intp.execute(Classify(test.line))
		if next != test.next {
			t.Errorf("test %d: expected %q to switch to state %d, is %d", i, test.line, test.next, next)
		}
	}
}

func TestInputFunc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	var prompt string
	in := InputFunc(func(p string) (string, bool) {
		prompt = p
		return " 12 ", true
	})
	out := &LineBuffer{}
	New(out, WithInput(in)).Interpret("<in>(n)\n(n)")
	if prompt != "Enter value for n:" {
		t.Errorf("unexpected prompt %q", prompt)
	}
	if diff := cmp.Diff([]string{"12"}, out.Lines()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestNilInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	out := &LineBuffer{}
	New(out, WithInput(nil)).Interpret("<in>(n)")
	if diff := cmp.Diff([]string{"No input provided for n"}, out.Lines()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestOverlappingRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	out := &LineBuffer{}
	intp := New(out)
	script := "int<x>1\n(x)\nx = 2\n(x)\nx = 3\n(x)"
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			intp.Interpret(script)
		}()
	}
	wg.Wait()
	if diff := cmp.Diff([]string{"1", "2", "3"}, out.Lines()); diff != "" {
		t.Errorf("output of serialized runs (-want +got):\n%s", diff)
	}
	if intp.rt.Runs != 8 {
		t.Errorf("expected 8 runs, have %d", intp.rt.Runs)
	}
}
