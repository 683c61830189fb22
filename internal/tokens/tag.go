package tokens

import (
	"fmt"
	"strings"
)

// Tag selects tokens. Keyword and symbol tags match one exact variant, the
// other kinds match any token of that kind.
type Tag struct {
	Kind    Kind
	Keyword Keyword
	Symbol  Symbol
}

// KeywordTag matches exactly one reserved word
func KeywordTag(k Keyword) Tag {
	return Tag{Kind: KEYWORD, Keyword: k}
}

// SymbolTag matches exactly one punctuation mark
func SymbolTag(s Symbol) Tag {
	return Tag{Kind: SYMBOL, Symbol: s}
}

// KindTag matches any token of the given literal or identifier kind
func KindTag(k Kind) Tag {
	return Tag{Kind: k}
}

// Match reports whether tk is selected by the tag
func (t Tag) Match(tk Token) bool {
	if t.Kind != tk.Kind {
		return false
	}
	switch t.Kind {
	case KEYWORD:
		return t.Keyword == tk.Keyword
	case SYMBOL:
		return t.Symbol == tk.Symbol
	}
	return true
}

func (t Tag) String() string {
	switch t.Kind {
	case KEYWORD:
		return fmt.Sprintf("'%s'", t.Keyword)
	case SYMBOL:
		return fmt.Sprintf("'%c'", t.Symbol.Rune())
	case INT_CONST:
		return "integer constant"
	case STRING_CONST:
		return "string constant"
	}
	return t.Kind.Category()
}

// DescribeTags joins tag names as "a", "a or b", "a, b or c"
func DescribeTags(tags []Tag) string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.String()
	}
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
