package tokens

// Symbol Holds a punctuation mark
type Symbol int

const (
	_ Symbol = iota

	// Brackets.
	// (, ), {, }, [, ]
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_CURLY_BRACE
	RIGHT_CURLY_BRACE
	LEFT_BRACE
	RIGHT_BRACE

	// Separators.
	// ., ',', ;
	DOT
	COMMA
	SEMICOLON

	// Operators.
	// +, -, *, /, &, |, <, >, =, ~, ^, #
	PLUS
	MINUS
	STAR
	SLASH
	AMPERSAND
	PIPE
	LESS
	GREATER
	EQUAL
	TILDE
	CARET
	HASH
)

var symbolRunes = [...]rune{
	LEFT_PAREN:        '(',
	RIGHT_PAREN:       ')',
	LEFT_CURLY_BRACE:  '{',
	RIGHT_CURLY_BRACE: '}',
	LEFT_BRACE:        '[',
	RIGHT_BRACE:       ']',
	DOT:               '.',
	COMMA:             ',',
	SEMICOLON:         ';',
	PLUS:              '+',
	MINUS:             '-',
	STAR:              '*',
	SLASH:             '/',
	AMPERSAND:         '&',
	PIPE:              '|',
	LESS:              '<',
	GREATER:           '>',
	EQUAL:             '=',
	TILDE:             '~',
	CARET:             '^',
	HASH:              '#',
}

var symbols = func() map[rune]Symbol {
	m := make(map[rune]Symbol, len(symbolRunes))
	for s, r := range symbolRunes {
		if r != 0 {
			m[r] = Symbol(s)
		}
	}
	return m
}()

// LookupSymbol maps a source character to its punctuation mark
func LookupSymbol(r rune) (Symbol, bool) {
	s, ok := symbols[r]
	return s, ok
}

// IsSymbol reports whether r is a punctuation character
func IsSymbol(r rune) bool {
	_, ok := symbols[r]
	return ok
}

// Symbols returns every punctuation mark in declaration order
func Symbols() []Symbol {
	out := make([]Symbol, 0, len(symbols))
	for s := LEFT_PAREN; s <= HASH; s++ {
		out = append(out, s)
	}
	return out
}

// Rune returns the source character of the symbol
func (s Symbol) Rune() rune {
	if s < LEFT_PAREN || s > HASH {
		return 0
	}
	return symbolRunes[s]
}

// Display returns the output form of the symbol, <, > and & are escaped
func (s Symbol) Display() string {
	switch s {
	case LESS:
		return "&lt;"
	case GREATER:
		return "&gt;"
	case AMPERSAND:
		return "&amp;"
	}
	return string(s.Rune())
}

func (s Symbol) String() string {
	if r := s.Rune(); r != 0 {
		return string(r)
	}
	return "invalid symbol"
}
