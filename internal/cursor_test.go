package internal

import (
	"errors"
	"testing"

	"github.com/mliezun/jackal/internal/tokens"
)

func TestCursorPeekAdvance(t *testing.T) {
	c := NewCursor(Tokenize("let x;"))
	if tk, ok := c.Peek(); !ok || !tk.IsKeyword(tokens.LET) {
		t.Fatalf("First token should be let, got %v", tk)
	}
	// Peek does not move
	if tk, _ := c.Peek(); !tk.IsKeyword(tokens.LET) {
		t.Fatalf("Peek should not consume, got %v", tk)
	}
	if tk, ok := c.Advance(); !ok || !tk.IsKeyword(tokens.LET) {
		t.Fatalf("Advance should return let, got %v", tk)
	}
	if tk, _ := c.Advance(); tk.Lexeme != "x" {
		t.Fatalf("Advance should return x, got %v", tk)
	}
	if tk, _ := c.Advance(); !tk.IsSymbol(tokens.SEMICOLON) {
		t.Fatalf("Advance should return ';', got %v", tk)
	}
	if _, ok := c.Peek(); ok {
		t.Errorf("Cursor should be exhausted")
	}
	if _, ok := c.Advance(); ok {
		t.Errorf("Advance at the end should return nothing")
	}
	if c.Position() != c.Len() {
		t.Errorf("Position should stay at %d, got %d", c.Len(), c.Position())
	}
}

func TestCursorExpect(t *testing.T) {
	c := NewCursor(Tokenize("static x"))
	if _, err := c.Expect(tkStatic, tkField); err != nil {
		t.Fatalf("Expect static should succeed: %v", err)
	}

	_, err := c.Expect(tkInt)
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("Expected a *SyntaxError, got %v", err)
	}
	if se.Expected != "'int'" || se.Found != "identifier 'x'" || se.Line != 1 {
		t.Errorf("Unexpected error fields %+v", se)
	}
	if errors.Is(err, ErrEndOfInput) {
		t.Errorf("Mismatch should not be end of input")
	}
	if c.Position() != 1 {
		t.Errorf("Failed expect should not consume, position %d", c.Position())
	}

	if _, err := c.Expect(tkIdentifier); err != nil {
		t.Fatalf("Expect identifier should succeed: %v", err)
	}
	_, err = c.Expect(tkSemicolon)
	if !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("Expected end of input, got %v", err)
	}
	if err.Error() != "expected ';', found end of input" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}
