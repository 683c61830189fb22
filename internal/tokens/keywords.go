package tokens

// Keyword Holds a reserved word
type Keyword int

const (
	_ Keyword = iota

	// Program structure.
	// class, constructor, function, method, field, static, var
	CLASS
	CONSTRUCTOR
	FUNCTION
	METHOD
	FIELD
	STATIC
	VAR

	// Types.
	// int, char, boolean, void
	INT
	CHAR
	BOOLEAN
	VOID

	// Constants.
	// true, false, null, this
	TRUE
	FALSE
	NULL
	THIS

	// Statements.
	// let, do, if, else, while, return
	LET
	DO
	IF
	ELSE
	WHILE
	RETURN
)

var keywordSpellings = [...]string{
	CLASS:       "class",
	CONSTRUCTOR: "constructor",
	FUNCTION:    "function",
	METHOD:      "method",
	FIELD:       "field",
	STATIC:      "static",
	VAR:         "var",
	INT:         "int",
	CHAR:        "char",
	BOOLEAN:     "boolean",
	VOID:        "void",
	TRUE:        "true",
	FALSE:       "false",
	NULL:        "null",
	THIS:        "this",
	LET:         "let",
	DO:          "do",
	IF:          "if",
	ELSE:        "else",
	WHILE:       "while",
	RETURN:      "return",
}

var keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordSpellings))
	for k, s := range keywordSpellings {
		if s != "" {
			m[s] = Keyword(k)
		}
	}
	return m
}()

// LookupKeyword maps an exact spelling to its reserved word
func LookupKeyword(s string) (Keyword, bool) {
	k, ok := keywords[s]
	return k, ok
}

// Keywords returns every reserved word in declaration order
func Keywords() []Keyword {
	out := make([]Keyword, 0, len(keywords))
	for k := CLASS; k <= RETURN; k++ {
		out = append(out, k)
	}
	return out
}

func (k Keyword) String() string {
	if k < CLASS || k > RETURN {
		return "invalid keyword"
	}
	return keywordSpellings[k]
}
