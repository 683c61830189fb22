package internal

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mliezun/jackal/internal/tokens"
)

const (
	lineComment       = "//"
	blockCommentBegin = "/*"
	blockCommentEnd   = "*/"
)

// sourceLine is a trimmed, comment-free line and its 1-based number in the
// original text
type sourceLine struct {
	text   string
	number int
}

// Lexer turns source text into tokens
type Lexer struct {
	source string
	start  int
	// pending marks the start of the word being accumulated, -1 if none
	pending int
	current int

	offsets []int
	numbers []int

	tokens []tokens.Token
}

// NewLexer normalizes source and prepares it for scanning
func NewLexer(source string) *Lexer {
	l := &Lexer{pending: -1}
	var b strings.Builder
	for i, line := range cleanLines(source) {
		if i > 0 {
			b.WriteByte(' ')
		}
		l.offsets = append(l.offsets, b.Len())
		l.numbers = append(l.numbers, line.number)
		b.WriteString(line.text)
	}
	l.source = b.String()
	return l
}

// Tokenize returns every token of source in order
func Tokenize(source string) []tokens.Token {
	return NewLexer(source).Scan()
}

// Normalize strips comments and blank lines and joins the remaining trimmed
// lines with a single space.
func Normalize(source string) string {
	return NewLexer(source).source
}

// Scan runs over the normalized text once. The lexer never fails.
func (l *Lexer) Scan() []tokens.Token {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.flush()
	return l.tokens
}

func (l *Lexer) scanToken() {
	c := l.peek()
	switch {
	case unicode.IsSpace(c):
		l.flush()
		l.advance()
	case tokens.IsSymbol(c):
		l.flush()
		l.advance()
		s, _ := tokens.LookupSymbol(c)
		l.emit(tokens.NewSymbol(s, l.lineAt(l.start)))
	case c == '"':
		l.flush()
		l.advance()
		l.string()
	case isDigit(c) && l.pending < 0:
		l.number()
	default:
		if l.pending < 0 {
			l.pending = l.current
		}
		l.advance()
	}
}

// string consumes up to the next quote. An unterminated string runs to the
// end of the input.
func (l *Lexer) string() {
	rest := l.source[l.current:]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		end = len(rest)
	}
	literal := rest[:end]
	l.current += end
	if !l.isAtEnd() {
		// closing "
		l.current++
	}
	l.emit(tokens.NewString(literal, l.lineAt(l.start)))
}

func (l *Lexer) number() {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}
	l.emit(tokens.NewInt(l.source[l.start:l.current], l.lineAt(l.start)))
}

// flush finalizes the accumulated word, if any
func (l *Lexer) flush() {
	if l.pending < 0 {
		return
	}
	word := l.source[l.pending:l.current]
	l.emit(tokens.Word(word, l.lineAt(l.pending)))
	l.pending = -1
}

func (l *Lexer) peek() rune {
	c, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return c
}

func (l *Lexer) advance() rune {
	c, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	return c
}

func (l *Lexer) emit(tk tokens.Token) {
	l.tokens = append(l.tokens, tk)
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

// lineAt maps an offset in the normalized text back to the original line
func (l *Lexer) lineAt(offset int) int {
	i := sort.Search(len(l.offsets), func(i int) bool {
		return l.offsets[i] > offset
	})
	if i == 0 {
		return 0
	}
	return l.numbers[i-1]
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// cleanLines drops block comments, whole-line comments and blank lines, and
// truncates trailing line comments.
func cleanLines(source string) []sourceLine {
	var lines []sourceLine
	for i, raw := range strings.Split(stripBlockComments(source), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, lineComment) {
			continue
		}
		if idx := strings.Index(line, lineComment); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		lines = append(lines, sourceLine{text: line, number: i + 1})
	}
	return lines
}

// stripBlockComments removes non-nesting /* */ comments. A comment is
// replaced by the newlines it spanned, or by one space if it spanned none,
// so line numbers are kept and the comment still separates its neighbours.
// An unterminated comment runs to the end of the input.
func stripBlockComments(source string) string {
	var b strings.Builder
	b.Grow(len(source))
	for i := 0; i < len(source); {
		if !strings.HasPrefix(source[i:], blockCommentBegin) {
			b.WriteByte(source[i])
			i++
			continue
		}
		body := source[i+len(blockCommentBegin):]
		end := strings.Index(body, blockCommentEnd)
		if end < 0 {
			i = len(source)
		} else {
			body = body[:end]
			i += len(blockCommentBegin) + end + len(blockCommentEnd)
		}
		if n := strings.Count(body, "\n"); n > 0 {
			b.WriteString(strings.Repeat("\n", n))
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
