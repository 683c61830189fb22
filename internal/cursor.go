package internal

import (
	"github.com/mliezun/jackal/internal/tokens"
)

// Cursor reads a token sequence front to back with one token of lookahead
type Cursor struct {
	tokens  []tokens.Token
	current int
}

// NewCursor positions a cursor on the first token
func NewCursor(tks []tokens.Token) *Cursor {
	return &Cursor{tokens: tks}
}

// Peek returns the current token without consuming it
func (c *Cursor) Peek() (tokens.Token, bool) {
	if c.isAtEnd() {
		return tokens.Token{}, false
	}
	return c.tokens[c.current], true
}

// Advance consumes and returns the current token
func (c *Cursor) Advance() (tokens.Token, bool) {
	tk, ok := c.Peek()
	if ok {
		c.current++
	}
	return tk, ok
}

// Check reports whether the current token matches any of the tags
func (c *Cursor) Check(tags ...tokens.Tag) bool {
	tk, ok := c.Peek()
	if !ok {
		return false
	}
	for _, tag := range tags {
		if tag.Match(tk) {
			return true
		}
	}
	return false
}

// Expect consumes the current token if it matches any of the tags,
// otherwise it returns a *SyntaxError and leaves the cursor untouched.
func (c *Cursor) Expect(tags ...tokens.Tag) (tokens.Token, error) {
	if c.Check(tags...) {
		tk, _ := c.Advance()
		return tk, nil
	}
	return tokens.Token{}, c.unexpected(tokens.DescribeTags(tags))
}

// Position is the number of tokens consumed so far
func (c *Cursor) Position() int {
	return c.current
}

// Len is the number of tokens in the sequence
func (c *Cursor) Len() int {
	return len(c.tokens)
}

func (c *Cursor) isAtEnd() bool {
	return c.current >= len(c.tokens)
}

// unexpected builds an error describing the current token
func (c *Cursor) unexpected(expected string) *SyntaxError {
	tk, ok := c.Peek()
	if !ok {
		return &SyntaxError{Expected: expected, Found: endOfInput, AtEnd: true}
	}
	return &SyntaxError{Expected: expected, Found: tk.Describe(), Line: tk.Line}
}
