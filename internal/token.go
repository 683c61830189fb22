package internal

import (
	"strings"

	"github.com/mliezun/jackal/internal/tokens"
)

// TokenizeMarkup renders the flat token sequence of source inside a single
// tokens node
func TokenizeMarkup(source string) string {
	return TokensMarkup(Tokenize(source))
}

// TokensMarkup renders a token sequence as one leaf per line
func TokensMarkup(tks []tokens.Token) string {
	var b strings.Builder
	b.WriteString("<tokens>\n")
	for _, tk := range tks {
		b.WriteString(tk.Markup())
		b.WriteByte('\n')
	}
	b.WriteString("</tokens>\n")
	return b.String()
}
