package internal

import (
	"github.com/mliezun/jackal/internal/tokens"
)

// Options controls how a unit is serialized
type Options struct {
	// Indent is written once per nesting level, it may be empty
	Indent string
}

// DefaultOptions returns the options used by Analyze
func DefaultOptions() Options {
	return Options{Indent: DefaultIndent}
}

// Unit is the result of analyzing one compilation unit
type Unit struct {
	Tokens []tokens.Token
	Tree   string
}

// Analyze converts the source of one class into its parse tree markup.
// On failure the returned error is a *SyntaxError and no markup is produced.
func Analyze(source string) (string, error) {
	return DefaultOptions().Analyze(source)
}

// Analyze converts source into parse tree markup using the options
func (o Options) Analyze(source string) (string, error) {
	unit, err := o.Compile(source)
	if err != nil {
		return "", err
	}
	return unit.Tree, nil
}

// Compile runs the lexer and the parser on a fresh state and keeps the
// token sequence next to the tree
func (o Options) Compile(source string) (*Unit, error) {
	tks := Tokenize(source)
	tree, err := newParser(tks, o.Indent).parse()
	if err != nil {
		return nil, err
	}
	return &Unit{Tokens: tks, Tree: tree}, nil
}
