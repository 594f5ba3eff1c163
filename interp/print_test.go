package interp

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSegments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	for _, test := range []struct {
		content string
		want    []segment
	}{
		{"plain text", []segment{{"plain text", false}}},
		{"{x}", []segment{{"x", true}}},
		{"a {x} b", []segment{{"a ", false}, {"x", true}, {" b", false}}},
		{"{x}{y}", []segment{{"x", true}, {"y", true}}},
		{`\{x\}`, []segment{{"{x}", false}}},
		{"a {} b", []segment{{"a {} b", false}}},
		{"close } only", []segment{{"close } only", false}}},
		{`back\slash`, []segment{{`back\slash`, false}}},
	} {
		segs, err := segments(test.content)
		if err != nil {
			t.Errorf("segments of %q failed: %v", test.content, err)
			continue
		}
		if diff := cmp.Diff(test.want, segs, cmp.AllowUnexported(segment{})); diff != "" {
			t.Errorf("segments of %q (-want +got):\n%s", test.content, diff)
		}
	}
}

func TestSegmentErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	if _, err := segments("a {x"); !errors.Is(err, errUnterminated) {
		t.Errorf("expected unterminated expression, got %v", err)
	}
	if _, err := segments("a {x{y}}"); !errors.Is(err, errNestedBrace) {
		t.Errorf("expected nested brace error, got %v", err)
	}
}

func TestInlinePrintAllOrNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kotlang.interp")
	defer teardown()
	//
	out := &LineBuffer{}
	New(out).Interpret("f(ok {1+1} then {nope})")
	if diff := cmp.Diff([]string{"Error in inline print: f(ok {1+1} then {nope})"}, out.Lines()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}
