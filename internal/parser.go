package internal

import (
	"github.com/mliezun/jackal/internal/tokens"
)

var (
	tkClass       = tokens.KeywordTag(tokens.CLASS)
	tkConstructor = tokens.KeywordTag(tokens.CONSTRUCTOR)
	tkFunction    = tokens.KeywordTag(tokens.FUNCTION)
	tkMethod      = tokens.KeywordTag(tokens.METHOD)
	tkField       = tokens.KeywordTag(tokens.FIELD)
	tkStatic      = tokens.KeywordTag(tokens.STATIC)
	tkVar         = tokens.KeywordTag(tokens.VAR)
	tkInt         = tokens.KeywordTag(tokens.INT)
	tkChar        = tokens.KeywordTag(tokens.CHAR)
	tkBoolean     = tokens.KeywordTag(tokens.BOOLEAN)
	tkVoid        = tokens.KeywordTag(tokens.VOID)
	tkTrue        = tokens.KeywordTag(tokens.TRUE)
	tkFalse       = tokens.KeywordTag(tokens.FALSE)
	tkNull        = tokens.KeywordTag(tokens.NULL)
	tkThis        = tokens.KeywordTag(tokens.THIS)
	tkLet         = tokens.KeywordTag(tokens.LET)
	tkDo          = tokens.KeywordTag(tokens.DO)
	tkIf          = tokens.KeywordTag(tokens.IF)
	tkElse        = tokens.KeywordTag(tokens.ELSE)
	tkWhile       = tokens.KeywordTag(tokens.WHILE)
	tkReturn      = tokens.KeywordTag(tokens.RETURN)

	tkLeftParen       = tokens.SymbolTag(tokens.LEFT_PAREN)
	tkRightParen      = tokens.SymbolTag(tokens.RIGHT_PAREN)
	tkLeftCurlyBrace  = tokens.SymbolTag(tokens.LEFT_CURLY_BRACE)
	tkRightCurlyBrace = tokens.SymbolTag(tokens.RIGHT_CURLY_BRACE)
	tkLeftBrace       = tokens.SymbolTag(tokens.LEFT_BRACE)
	tkRightBrace      = tokens.SymbolTag(tokens.RIGHT_BRACE)
	tkDot             = tokens.SymbolTag(tokens.DOT)
	tkComma           = tokens.SymbolTag(tokens.COMMA)
	tkSemicolon       = tokens.SymbolTag(tokens.SEMICOLON)
	tkEqual           = tokens.SymbolTag(tokens.EQUAL)

	tkIdentifier = tokens.KindTag(tokens.IDENTIFIER)
	tkIntConst   = tokens.KindTag(tokens.INT_CONST)
	tkString     = tokens.KindTag(tokens.STRING_CONST)
)

var (
	classVarKinds   = []tokens.Tag{tkStatic, tkField}
	subroutineKinds = []tokens.Tag{tkConstructor, tkFunction, tkMethod}
	typeStart       = []tokens.Tag{tkInt, tkChar, tkBoolean, tkIdentifier}
	returnTypes     = []tokens.Tag{tkVoid, tkInt, tkChar, tkBoolean, tkIdentifier}
	statementStart  = []tokens.Tag{tkLet, tkIf, tkWhile, tkDo, tkReturn}
	keywordConsts   = []tokens.Tag{tkTrue, tkFalse, tkNull, tkThis}

	binaryOps = []tokens.Tag{
		tokens.SymbolTag(tokens.PLUS),
		tokens.SymbolTag(tokens.MINUS),
		tokens.SymbolTag(tokens.STAR),
		tokens.SymbolTag(tokens.SLASH),
		tokens.SymbolTag(tokens.AMPERSAND),
		tokens.SymbolTag(tokens.PIPE),
		tokens.SymbolTag(tokens.LESS),
		tokens.SymbolTag(tokens.GREATER),
		tokens.SymbolTag(tokens.EQUAL),
		tokens.SymbolTag(tokens.CARET),
		tokens.SymbolTag(tokens.HASH),
	}
	unaryOps = []tokens.Tag{
		tokens.SymbolTag(tokens.MINUS),
		tokens.SymbolTag(tokens.TILDE),
		tokens.SymbolTag(tokens.CARET),
		tokens.SymbolTag(tokens.HASH),
	}
)

// parser stores parser data. Each routine mirrors one production and
// writes its markers as it descends.
type parser struct {
	cursor *Cursor
	out    *treeWriter
}

func newParser(tks []tokens.Token, indent string) *parser {
	return &parser{
		cursor: NewCursor(tks),
		out:    newTreeWriter(indent),
	}
}

// parse compiles exactly one class spanning the whole token sequence
func (p *parser) parse() (string, error) {
	if err := p.class(); err != nil {
		return "", err
	}
	if tk, ok := p.cursor.Peek(); ok {
		return "", &SyntaxError{Expected: endOfInput, Found: tk.Describe(), Line: tk.Line}
	}
	return p.out.String(), nil
}

// class := 'class' identifier '{' classVarDec* subroutineDec* '}'
func (p *parser) class() error {
	p.out.open("class")
	if err := p.consume(tkClass); err != nil {
		return err
	}
	if err := p.consume(tkIdentifier); err != nil {
		return err
	}
	if err := p.consume(tkLeftCurlyBrace); err != nil {
		return err
	}

	inSubroutines := false
	for !p.cursor.isAtEnd() && !p.check(tkRightCurlyBrace) {
		if !inSubroutines && !p.check(subroutineKinds...) {
			if err := p.classVarDec(); err != nil {
				return err
			}
			continue
		}
		inSubroutines = true
		if err := p.subroutineDec(); err != nil {
			return err
		}
	}

	if err := p.consume(tkRightCurlyBrace); err != nil {
		return err
	}
	p.out.close("class")
	return nil
}

// classVarDec := ('static'|'field') type identifier (',' identifier)* ';'
func (p *parser) classVarDec() error {
	p.out.open("classVarDec")
	if err := p.consume(classVarKinds...); err != nil {
		return err
	}
	if err := p.varNames(typeStart); err != nil {
		return err
	}
	p.out.close("classVarDec")
	return nil
}

// subroutineDec := ('constructor'|'function'|'method') ('void'|type)
// identifier '(' parameterList ')' subroutineBody
func (p *parser) subroutineDec() error {
	p.out.open("subroutineDec")
	if err := p.consume(subroutineKinds...); err != nil {
		return err
	}
	if err := p.consume(returnTypes...); err != nil {
		return err
	}
	if err := p.consume(tkIdentifier); err != nil {
		return err
	}
	if err := p.consume(tkLeftParen); err != nil {
		return err
	}
	if err := p.parameterList(); err != nil {
		return err
	}
	if err := p.consume(tkRightParen); err != nil {
		return err
	}
	if err := p.subroutineBody(); err != nil {
		return err
	}
	p.out.close("subroutineDec")
	return nil
}

// parameterList := (type identifier (',' type identifier)*)?
func (p *parser) parameterList() error {
	p.out.open("parameterList")
	if p.check(typeStart...) {
		for {
			if err := p.consume(typeStart...); err != nil {
				return err
			}
			if err := p.consume(tkIdentifier); err != nil {
				return err
			}
			if !p.check(tkComma) {
				break
			}
			if err := p.consume(tkComma); err != nil {
				return err
			}
		}
	}
	p.out.close("parameterList")
	return nil
}

// subroutineBody := '{' varDec* statements '}'
func (p *parser) subroutineBody() error {
	p.out.open("subroutineBody")
	if err := p.consume(tkLeftCurlyBrace); err != nil {
		return err
	}
	for p.check(tkVar) {
		if err := p.varDec(); err != nil {
			return err
		}
	}
	if err := p.statements(); err != nil {
		return err
	}
	if err := p.consume(tkRightCurlyBrace); err != nil {
		return err
	}
	p.out.close("subroutineBody")
	return nil
}

// varDec := 'var' type identifier (',' identifier)* ';'
func (p *parser) varDec() error {
	p.out.open("varDec")
	if err := p.consume(tkVar); err != nil {
		return err
	}
	if err := p.varNames(typeStart); err != nil {
		return err
	}
	p.out.close("varDec")
	return nil
}

// varNames := type identifier (',' identifier)* ';'
func (p *parser) varNames(types []tokens.Tag) error {
	if err := p.consume(types...); err != nil {
		return err
	}
	if err := p.consume(tkIdentifier); err != nil {
		return err
	}
	for p.check(tkComma) {
		if err := p.consume(tkComma); err != nil {
			return err
		}
		if err := p.consume(tkIdentifier); err != nil {
			return err
		}
	}
	return p.consume(tkSemicolon)
}

// statements := statement*
func (p *parser) statements() error {
	p.out.open("statements")
	for p.check(statementStart...) {
		if err := p.statement(); err != nil {
			return err
		}
	}
	p.out.close("statements")
	return nil
}

func (p *parser) statement() error {
	tk, _ := p.cursor.Peek()
	switch tk.Keyword {
	case tokens.LET:
		return p.letStatement()
	case tokens.IF:
		return p.ifStatement()
	case tokens.WHILE:
		return p.whileStatement()
	case tokens.DO:
		return p.doStatement()
	case tokens.RETURN:
		return p.returnStatement()
	}
	return p.cursor.unexpected(expectedStatement)
}

// letStatement := 'let' identifier ('[' expression ']')? '=' expression ';'
func (p *parser) letStatement() error {
	p.out.open("letStatement")
	if err := p.consume(tkLet); err != nil {
		return err
	}
	if err := p.consume(tkIdentifier); err != nil {
		return err
	}
	if p.check(tkLeftBrace) {
		if err := p.index(); err != nil {
			return err
		}
	}
	if err := p.consume(tkEqual); err != nil {
		return err
	}
	if err := p.expression(); err != nil {
		return err
	}
	if err := p.consume(tkSemicolon); err != nil {
		return err
	}
	p.out.close("letStatement")
	return nil
}

// ifStatement := 'if' '(' expression ')' '{' statements '}'
// ('else' '{' statements '}')?
func (p *parser) ifStatement() error {
	p.out.open("ifStatement")
	if err := p.consume(tkIf); err != nil {
		return err
	}
	if err := p.condition(); err != nil {
		return err
	}
	if err := p.block(); err != nil {
		return err
	}
	if p.check(tkElse) {
		if err := p.consume(tkElse); err != nil {
			return err
		}
		if err := p.block(); err != nil {
			return err
		}
	}
	p.out.close("ifStatement")
	return nil
}

// whileStatement := 'while' '(' expression ')' '{' statements '}'
func (p *parser) whileStatement() error {
	p.out.open("whileStatement")
	if err := p.consume(tkWhile); err != nil {
		return err
	}
	if err := p.condition(); err != nil {
		return err
	}
	if err := p.block(); err != nil {
		return err
	}
	p.out.close("whileStatement")
	return nil
}

// doStatement := 'do' subroutineCall ';'
func (p *parser) doStatement() error {
	p.out.open("doStatement")
	if err := p.consume(tkDo); err != nil {
		return err
	}
	if err := p.subroutineCall(); err != nil {
		return err
	}
	if err := p.consume(tkSemicolon); err != nil {
		return err
	}
	p.out.close("doStatement")
	return nil
}

// returnStatement := 'return' expression? ';'
func (p *parser) returnStatement() error {
	p.out.open("returnStatement")
	if err := p.consume(tkReturn); err != nil {
		return err
	}
	if p.startsTerm() {
		if err := p.expression(); err != nil {
			return err
		}
	}
	if err := p.consume(tkSemicolon); err != nil {
		return err
	}
	p.out.close("returnStatement")
	return nil
}

// condition := '(' expression ')'
func (p *parser) condition() error {
	if err := p.consume(tkLeftParen); err != nil {
		return err
	}
	if err := p.expression(); err != nil {
		return err
	}
	return p.consume(tkRightParen)
}

// block := '{' statements '}'
func (p *parser) block() error {
	if err := p.consume(tkLeftCurlyBrace); err != nil {
		return err
	}
	if err := p.statements(); err != nil {
		return err
	}
	return p.consume(tkRightCurlyBrace)
}

// index := '[' expression ']'
func (p *parser) index() error {
	if err := p.consume(tkLeftBrace); err != nil {
		return err
	}
	if err := p.expression(); err != nil {
		return err
	}
	return p.consume(tkRightBrace)
}

// expression := term (binaryOp term)*
func (p *parser) expression() error {
	p.out.open("expression")
	if err := p.term(); err != nil {
		return err
	}
	for p.check(binaryOps...) {
		if err := p.consume(binaryOps...); err != nil {
			return err
		}
		if err := p.term(); err != nil {
			return err
		}
	}
	p.out.close("expression")
	return nil
}

// term resolves its shape from the current token. After an identifier one
// lookahead token decides between array element, call and bare variable;
// any other token is left for the caller.
func (p *parser) term() error {
	p.out.open("term")
	tk, ok := p.cursor.Peek()
	if !ok {
		return p.cursor.unexpected(expectedTerm)
	}
	switch {
	case tk.Kind == tokens.INT_CONST:
		if _, inRange := tk.IntValue(); !inRange {
			return &SyntaxError{Expected: expectedIntRange, Found: tk.Lexeme, Line: tk.Line}
		}
		if err := p.consume(tkIntConst); err != nil {
			return err
		}
	case tk.Kind == tokens.STRING_CONST:
		if err := p.consume(tkString); err != nil {
			return err
		}
	case p.check(keywordConsts...):
		if err := p.consume(keywordConsts...); err != nil {
			return err
		}
	case p.check(unaryOps...):
		if err := p.consume(unaryOps...); err != nil {
			return err
		}
		if err := p.term(); err != nil {
			return err
		}
	case p.check(tkLeftParen):
		if err := p.consume(tkLeftParen); err != nil {
			return err
		}
		if err := p.expression(); err != nil {
			return err
		}
		if err := p.consume(tkRightParen); err != nil {
			return err
		}
	case tk.Kind == tokens.IDENTIFIER:
		if err := p.consume(tkIdentifier); err != nil {
			return err
		}
		switch {
		case p.check(tkLeftBrace):
			if err := p.index(); err != nil {
				return err
			}
		case p.check(tkLeftParen, tkDot):
			if err := p.callTail(); err != nil {
				return err
			}
		}
	default:
		return p.cursor.unexpected(expectedTerm)
	}
	p.out.close("term")
	return nil
}

// subroutineCall := identifier subroutineCallTail
func (p *parser) subroutineCall() error {
	if err := p.consume(tkIdentifier); err != nil {
		return err
	}
	return p.callTail()
}

// subroutineCallTail := ('.' identifier)? '(' expressionList ')'
func (p *parser) callTail() error {
	if p.check(tkDot) {
		if err := p.consume(tkDot); err != nil {
			return err
		}
		if err := p.consume(tkIdentifier); err != nil {
			return err
		}
	}
	if err := p.consume(tkLeftParen); err != nil {
		return err
	}
	if err := p.expressionList(); err != nil {
		return err
	}
	return p.consume(tkRightParen)
}

// expressionList := (expression (',' expression)*)?
func (p *parser) expressionList() error {
	p.out.open("expressionList")
	if p.startsTerm() {
		if err := p.expression(); err != nil {
			return err
		}
		for p.check(tkComma) {
			if err := p.consume(tkComma); err != nil {
				return err
			}
			if err := p.expression(); err != nil {
				return err
			}
		}
	}
	p.out.close("expressionList")
	return nil
}

// startsTerm reports whether the current token can begin a term
func (p *parser) startsTerm() bool {
	return p.check(tkIntConst, tkString, tkIdentifier, tkLeftParen) ||
		p.check(keywordConsts...) ||
		p.check(unaryOps...)
}

// consume expects one of the tags and writes the consumed token as a leaf
func (p *parser) consume(tags ...tokens.Tag) error {
	tk, err := p.cursor.Expect(tags...)
	if err != nil {
		return err
	}
	p.out.leaf(tk)
	return nil
}

func (p *parser) check(tags ...tokens.Tag) bool {
	return p.cursor.Check(tags...)
}
