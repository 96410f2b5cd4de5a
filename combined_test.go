package csel_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/csel"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCombineBasic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csel.selector")
	defer teardown()
	//
	left := csel.Element("div").WithID("main")
	right := csel.Element("table").WithID("data")
	sel, err := csel.Combine(left, csel.Adjacent, right)
	if err != nil {
		t.Fatalf("expected combine to succeed, didn't: %v", err)
	}
	if s := sel.Stringify(); s != "div#main + table#data" {
		t.Errorf("expected 'div#main + table#data', is %q", s)
	}
}

func TestCombineAlgebra(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csel.selector")
	defer teardown()
	//
	a, b := csel.Element("a"), csel.Element("b")
	for _, op := range []csel.Combinator{csel.Descendant, csel.Child, csel.Adjacent, csel.Sibling} {
		sel := csel.MustCombine(a, op, b)
		want := a.Stringify() + " " + string(op) + " " + b.Stringify()
		if s := sel.Stringify(); s != want {
			t.Errorf("expected combination with '%s' to render %q, is %q", op, want, s)
		}
	}
}

func TestCombineNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csel.selector")
	defer teardown()
	//
	a, b, c := csel.Element("a"), csel.Element("b"), csel.Element("c")
	sel := csel.MustCombine(csel.MustCombine(a, csel.Adjacent, b), csel.Sibling, c)
	if s := sel.Stringify(); s != "a + b ~ c" {
		t.Errorf("expected nested combination 'a + b ~ c', is %q", s)
	}
	if sel.Combinator() != csel.Sibling {
		t.Errorf("expected outer combinator '~', is '%s'", sel.Combinator())
	}
	inner, ok := sel.Left().(*csel.CombinedSelector)
	if !ok {
		t.Fatalf("expected left operand to be a combined selector, isn't: %T", sel.Left())
	}
	if inner.Combinator() != csel.Adjacent {
		t.Errorf("expected inner combinator '+', is '%s'", inner.Combinator())
	}
}

func TestCombineRejectsUnknownToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csel.selector")
	defer teardown()
	//
	_, err := csel.Combine(csel.Element("a"), csel.Combinator("|"), csel.Element("b"))
	var invalid *csel.InvalidCombinatorError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected '|' to be rejected as combinator, wasn't: %v", err)
	}
	if invalid.Token != "|" {
		t.Errorf("expected offending token '|', is '%s'", invalid.Token)
	}
}

func TestCombineDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csel.selector")
	defer teardown()
	//
	a, b, c := csel.ID("main"), csel.Class("nav"), csel.Element("li")
	sel := csel.MustCombine(a, csel.Descendant, csel.MustCombine(b, csel.Child, c))
	t.Logf("selector tree =\n%s", csel.Dump(sel))
	if csel.Dump(sel) == "" {
		t.Error("expected tree dump to be non-empty, is")
	}
}
