package lexer

import (
	"fmt"
)

// Token is one lexical unit: a paren, a quote or an atom.
type Token struct {
	tt   TokenType
	text string

	line int
	col  int
}

// NewToken creates a token of type tt found at the given line and column.
func NewToken(tt TokenType, text string, line int, col int) *Token {
	return &Token{
		tt:   tt,
		text: text,
		line: line,
		col:  col,
	}
}

// Type returns the token type.
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column where the token starts, both 1-based.
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the characters of the token.
func (t Token) Text() string {
	return t.text
}

// Is returns true if the token is of type tt.
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// IsDelimiter returns true for parens and quotes.
func (t Token) IsDelimiter() bool {
	return t.tt != TokenAtom && t.tt != TokenInvalid
}

func (t Token) String() string {
	if t.IsDelimiter() {
		return fmt.Sprintf("%s@%d:%d", t.text, t.line, t.col)
	}
	return fmt.Sprintf("%v(%q)@%d:%d", t.tt, t.text, t.line, t.col)
}
