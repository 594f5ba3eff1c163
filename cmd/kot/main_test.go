package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/kotlang/expr"
	"github.com/npillmayer/kotlang/interp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestShellCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	out := &console{}
	sh := &shell{out: out, intp: interp.New(out, interp.WithReducer(expr.Legacy))}
	for _, line := range []string{"int<x>5", "  (x)", ":keywords", ":vars", ":bogus"} {
		if sh.command(line) {
			t.Fatalf("unexpected quit at %q", line)
		}
	}
	if diff := cmp.Diff([]string{"Unknown command: bogus"}, out.lines); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
	sh.command(":run")
	if diff := cmp.Diff([]string{"5"}, out.lines); diff != "" {
		t.Errorf("output of run (-want +got):\n%s", diff)
	}
	sh.command("clear")
	if len(out.lines) != 0 {
		t.Errorf("expected output to be cleared, is %v", out.lines)
	}
	sh.command(":new")
	if len(sh.buffer) != 0 {
		t.Errorf("expected empty buffer, is %v", sh.buffer)
	}
	if !sh.command(":quit") {
		t.Errorf("expected :quit to quit")
	}
}

func TestRunScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	out := &console{}
	opts := []interp.Option{interp.WithReducer(expr.Legacy), interp.WithInput(scriptedInput("7"))}
	if code := runScript("testdata/hello.kot", out, opts); code != 1 {
		t.Errorf("expected exit code 1 (stray closing brace), is %d", code)
	}
	want := []string{"n is greater than 5.0", "Unknown command: }", "Hello"}
	if diff := cmp.Diff(want, out.lines); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
	if code := runScript("testdata/missing.kot", out, opts); code != 2 {
		t.Errorf("expected exit code 2 for missing script, is %d", code)
	}
}

func TestScriptedAnswers(t *testing.T) {
	in := scriptedInput(" 1, two ,3.5")
	for _, want := range []string{"1", "two", "3.5"} {
		if a, ok := in.Request("?"); !ok || a != want {
			t.Errorf("expected answer %q, got %q (%v)", want, a, ok)
		}
	}
	if _, ok := scriptedInput("").Request("?"); ok {
		t.Errorf("expected no answer from empty answer list")
	}
}

func TestErrorLines(t *testing.T) {
	for _, test := range []struct {
		line  string
		isErr bool
	}{
		{"Error parsing line: int<x>a", true},
		{"Undefined variable: y", true},
		{"No input provided for a", true},
		{"Hello", false},
		{"Warning: List exceeded max size. Remaining elements ignored.", false},
	} {
		if isErrorLine(test.line) != test.isErr {
			t.Errorf("expected isErrorLine(%q) = %v", test.line, test.isErr)
		}
	}
}

func TestConsoleClearsScreen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	var screen bytes.Buffer
	out := &console{screen: &screen}
	sh := &shell{out: out, intp: interp.New(out)}
	out.Append("old output")
	sh.command("clear")
	if len(out.lines) != 0 || screen.String() != clearScreen {
		t.Errorf("expected lines and screen to be cleared, have %v and %q", out.lines, screen.String())
	}
	screen.Reset()
	sh.command(":clear")
	if screen.String() != clearScreen {
		t.Errorf("expected :clear to clear the screen, wrote %q", screen.String())
	}
	plain := &console{}
	plain.Append("line")
	plain.Clear() // no screen attached, nothing to erase
	if len(plain.lines) != 0 {
		t.Errorf("expected lines to be cleared, have %v", plain.lines)
	}
}
