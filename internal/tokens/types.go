package tokens

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind Holds the category of a token
type Kind int

const (
	KEYWORD Kind = iota
	SYMBOL
	INT_CONST
	STRING_CONST
	IDENTIFIER
)

var categories = [...]string{
	KEYWORD:      "keyword",
	SYMBOL:       "symbol",
	INT_CONST:    "integerConstant",
	STRING_CONST: "stringConstant",
	IDENTIFIER:   "identifier",
}

// Category returns the markup tag used for tokens of this kind
func (k Kind) Category() string {
	if k < KEYWORD || k > IDENTIFIER {
		return "unknown"
	}
	return categories[k]
}

func (k Kind) String() string {
	return k.Category()
}

// MaxInt is the largest value an integer constant may hold
const MaxInt = 65535

// Token is one lexical unit. Keyword is set only for KEYWORD tokens and
// Symbol only for SYMBOL tokens. Lexeme holds the source text for the other
// kinds.
type Token struct {
	Kind    Kind
	Keyword Keyword
	Symbol  Symbol
	Lexeme  string
	Line    int
}

// NewKeyword creates a reserved word token
func NewKeyword(k Keyword, line int) Token {
	return Token{Kind: KEYWORD, Keyword: k, Lexeme: k.String(), Line: line}
}

// NewSymbol creates a punctuation token
func NewSymbol(s Symbol, line int) Token {
	return Token{Kind: SYMBOL, Symbol: s, Lexeme: string(s.Rune()), Line: line}
}

// NewInt creates an integer constant token from its digits
func NewInt(digits string, line int) Token {
	return Token{Kind: INT_CONST, Lexeme: digits, Line: line}
}

// NewString creates a string constant token, text excludes the quotes
func NewString(text string, line int) Token {
	return Token{Kind: STRING_CONST, Lexeme: text, Line: line}
}

// NewIdentifier creates an identifier token
func NewIdentifier(name string, line int) Token {
	return Token{Kind: IDENTIFIER, Lexeme: name, Line: line}
}

// Word classifies an accumulated run of characters as a reserved word or
// an identifier.
func Word(text string, line int) Token {
	if k, ok := LookupKeyword(text); ok {
		return NewKeyword(k, line)
	}
	return NewIdentifier(text, line)
}

// IntValue returns the value of an integer constant and whether it fits in
// the 0..65535 range.
func (t Token) IntValue() (uint16, bool) {
	if t.Kind != INT_CONST {
		return 0, false
	}
	v, err := strconv.ParseUint(t.Lexeme, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

// IsKeyword reports whether the token is one of the given reserved words
func (t Token) IsKeyword(ks ...Keyword) bool {
	if t.Kind != KEYWORD {
		return false
	}
	for _, k := range ks {
		if t.Keyword == k {
			return true
		}
	}
	return false
}

// IsSymbol reports whether the token is one of the given punctuation marks
func (t Token) IsSymbol(ss ...Symbol) bool {
	if t.Kind != SYMBOL {
		return false
	}
	for _, s := range ss {
		if t.Symbol == s {
			return true
		}
	}
	return false
}

// Text returns the canonical display form, escaped for markup
func (t Token) Text() string {
	switch t.Kind {
	case KEYWORD:
		return t.Keyword.String()
	case SYMBOL:
		return t.Symbol.Display()
	default:
		return Escape(t.Lexeme)
	}
}

// Markup renders the token as a single leaf marker
func (t Token) Markup() string {
	c := t.Kind.Category()
	return "<" + c + "> " + t.Text() + " </" + c + ">"
}

// Describe renders the token for error messages
func (t Token) Describe() string {
	switch t.Kind {
	case STRING_CONST:
		return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
	case KEYWORD:
		return fmt.Sprintf("%s '%s'", t.Kind, t.Keyword)
	case SYMBOL:
		return fmt.Sprintf("%s '%c'", t.Kind, t.Symbol.Rune())
	default:
		return fmt.Sprintf("%s '%s'", t.Kind, t.Lexeme)
	}
}

func (t Token) String() string {
	return t.Describe()
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape replaces <, > and & with their markup entities
func Escape(s string) string {
	return escaper.Replace(s)
}
