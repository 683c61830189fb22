package tokens

import (
	"testing"
)

func TestKeywordRoundTrip(t *testing.T) {
	all := Keywords()
	if len(all) != 21 {
		t.Fatalf("Expected 21 reserved words, found %d", len(all))
	}
	for _, k := range all {
		got, ok := LookupKeyword(k.String())
		if !ok || got != k {
			t.Errorf("Spelling %q should map back to %d, got %d (%v)", k.String(), k, got, ok)
		}
	}
	for _, s := range []string{"Class", "classes", "", "null ", "if2"} {
		if _, ok := LookupKeyword(s); ok {
			t.Errorf("%q should not be a reserved word", s)
		}
	}
}

func TestSymbolRoundTrip(t *testing.T) {
	all := Symbols()
	if len(all) != 21 {
		t.Fatalf("Expected 21 punctuation marks, found %d", len(all))
	}
	for _, s := range all {
		got, ok := LookupSymbol(s.Rune())
		if !ok || got != s {
			t.Errorf("Character %q should map back to %d, got %d (%v)", s.Rune(), s, got, ok)
		}
	}
	for _, r := range "!@$%:?'\"_a0 " {
		if IsSymbol(r) {
			t.Errorf("%q should not be punctuation", r)
		}
	}
}

func TestSymbolDisplay(t *testing.T) {
	cases := map[Symbol]string{
		LESS:       "&lt;",
		GREATER:    "&gt;",
		AMPERSAND:  "&amp;",
		PLUS:       "+",
		HASH:       "#",
		LEFT_BRACE: "[",
	}
	for s, want := range cases {
		if got := s.Display(); got != want {
			t.Errorf("Display of %s should be %q instead of %q", s, want, got)
		}
	}
}

func TestMarkup(t *testing.T) {
	cases := []struct {
		token Token
		want  string
	}{
		{NewKeyword(CLASS, 1), "<keyword> class </keyword>"},
		{NewSymbol(LESS, 1), "<symbol> &lt; </symbol>"},
		{NewInt("42", 1), "<integerConstant> 42 </integerConstant>"},
		{NewString("a < b & c", 1), "<stringConstant> a &lt; b &amp; c </stringConstant>"},
		{NewIdentifier("Main", 1), "<identifier> Main </identifier>"},
	}
	for _, c := range cases {
		if got := c.token.Markup(); got != c.want {
			t.Errorf("Markup should be %q instead of %q", c.want, got)
		}
	}
}

func TestWord(t *testing.T) {
	if tk := Word("while", 3); !tk.IsKeyword(WHILE) || tk.Line != 3 {
		t.Errorf("while should be a reserved word on line 3, got %v", tk)
	}
	if tk := Word("whileX", 1); tk.Kind != IDENTIFIER || tk.Lexeme != "whileX" {
		t.Errorf("whileX should be an identifier, got %v", tk)
	}
}

func TestIntValue(t *testing.T) {
	if v, ok := NewInt("65535", 1).IntValue(); !ok || v != MaxInt {
		t.Errorf("65535 should be in range, got %d (%v)", v, ok)
	}
	if _, ok := NewInt("65536", 1).IntValue(); ok {
		t.Errorf("65536 should be out of range")
	}
	if v, ok := NewInt("007", 1).IntValue(); !ok || v != 7 {
		t.Errorf("007 should be 7, got %d", v)
	}
	if _, ok := NewIdentifier("x", 1).IntValue(); ok {
		t.Errorf("identifier should have no integer value")
	}
}

func TestTagMatch(t *testing.T) {
	tk := NewKeyword(STATIC, 1)
	if !KeywordTag(STATIC).Match(tk) {
		t.Errorf("static tag should match static token")
	}
	if KeywordTag(FIELD).Match(tk) {
		t.Errorf("field tag should not match static token")
	}
	if !KindTag(IDENTIFIER).Match(NewIdentifier("anything", 1)) {
		t.Errorf("identifier tag should match any identifier")
	}
	if SymbolTag(SEMICOLON).Match(NewIdentifier(";", 1)) {
		t.Errorf("symbol tag should not match an identifier with the same text")
	}
}

func TestDescribeTags(t *testing.T) {
	got := DescribeTags([]Tag{KeywordTag(STATIC), KeywordTag(FIELD)})
	if got != "'static' or 'field'" {
		t.Errorf("Unexpected description %q", got)
	}
	got = DescribeTags([]Tag{KeywordTag(INT), SymbolTag(SEMICOLON), KindTag(IDENTIFIER)})
	if got != "'int', ';' or identifier" {
		t.Errorf("Unexpected description %q", got)
	}
}
