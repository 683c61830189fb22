package internal

import (
	"errors"
	"fmt"
)

const endOfInput = "end of input"

// ErrEndOfInput is matched by errors.Is for a SyntaxError raised because the
// token sequence ran out
var ErrEndOfInput = errors.New("unexpected end of input")

// SyntaxError is the single error reported for a unit that does not follow
// the grammar
type SyntaxError struct {
	Expected string
	Found    string
	// Line of the found token, 0 at end of input
	Line  int
	AtEnd bool
}

func (e *SyntaxError) Error() string {
	if e.AtEnd || e.Line == 0 {
		return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	}
	return fmt.Sprintf("line %d: expected %s, found %s", e.Line, e.Expected, e.Found)
}

func (e *SyntaxError) Unwrap() error {
	if e.AtEnd {
		return ErrEndOfInput
	}
	return nil
}

// Production names for errors raised when no alternative applies
const (
	expectedTerm      = "term"
	expectedStatement = "statement"
	expectedIntRange  = "integer constant in 0..65535"
)
