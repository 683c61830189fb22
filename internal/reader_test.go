package internal

import (
	"errors"
	"testing"
)

func checkMalformed(t *testing.T, markup string) {
	t.Helper()
	if _, err := ReadMarkup(markup); !errors.Is(err, ErrMalformedMarkup) {
		t.Errorf("\nMarkup:\n----\n%s\n----\nShould be rejected, got %v", markup, err)
	}
}

func TestReadMarkup(t *testing.T) {
	roots, err := ReadMarkup("<a>\n  <b>\n    <symbol> &lt; </symbol>\n  </b>\n  <c>\n  </c>\n</a>\n<d>\n</d>\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 2 {
		t.Fatalf("Expected 2 roots, got %d", len(roots))
	}
	if got := roots[0].String(); got != "(a (b <) (c))" {
		t.Errorf("Unexpected tree %s", got)
	}
	if leaf := roots[0].Leaves()[0]; leaf.Tag != "symbol" || leaf.Text != "<" || leaf.Line != 3 {
		t.Errorf("Unexpected leaf %+v", leaf)
	}
}

func TestMalformedMarkup(t *testing.T) {
	checkMalformed(t, "<a>\n")
	checkMalformed(t, "</a>\n")
	checkMalformed(t, "<a>\n<b>\n</a>\n</b>\n")
	checkMalformed(t, "<a>\n<symbol> < </symbol>\n</a>\n")
	checkMalformed(t, "<a>\n<symbol> & </symbol>\n</a>\n")
	checkMalformed(t, "<a>\n<symbol> x </ident>\n</a>\n")
	checkMalformed(t, "<a>\n<symbol>x</symbol>\n</a>\n")
	checkMalformed(t, "<symbol> x </symbol>\n")
	checkMalformed(t, "plain text\n")
	checkMalformed(t, "<a b>\n</a b>\n")
}

func TestAnalyzedOutputIsWellFormed(t *testing.T) {
	sources := []string{
		"class A { }",
		"class A { field int x; method void m(int a) { var char c; if (a = 1) { return; } else { return; } } }",
		"class B { function int f() { return (-1 + g(h[2], \"&\")) < 3; } }",
	}
	for _, s := range sources {
		out, err := Analyze(s)
		if err != nil {
			t.Errorf("%s: %v", s, err)
			continue
		}
		n, err := CheckMarkup(out)
		if err != nil {
			t.Errorf("%s: %v\n%s", s, err, out)
		}
		if n != 1 {
			t.Errorf("%s: expected one top-level class, got %d", s, n)
		}
	}
}
