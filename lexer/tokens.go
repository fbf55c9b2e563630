package lexer

// Tokens is the ordered sequence of tokens that make up one top-level
// expression. The lexer appends to it, the parser consumes it from the front.
type Tokens struct {
	list []*Token
	pos  int
}

// NewTokens creates a sequence holding the given tokens.
func NewTokens(tokens ...*Token) *Tokens {
	return &Tokens{list: tokens}
}

// Push appends a token to the end of the sequence.
func (ts *Tokens) Push(tok *Token) {
	ts.list = append(ts.list, tok)
}

// Peek returns the next token without consuming it, or nil if there are no
// tokens left.
func (ts *Tokens) Peek() *Token {
	if ts.pos >= len(ts.list) {
		return nil
	}
	return ts.list[ts.pos]
}

// Next consumes and returns the next token, or nil if there are no tokens
// left.
func (ts *Tokens) Next() *Token {
	tok := ts.Peek()
	if tok != nil {
		ts.list[ts.pos] = nil
		ts.pos++
	}
	return tok
}

// Last returns the most recently pushed token.
func (ts *Tokens) Last() *Token {
	if len(ts.list) == 0 {
		return nil
	}
	return ts.list[len(ts.list)-1]
}

// Len returns the number of tokens that were not consumed yet.
func (ts *Tokens) Len() int {
	return len(ts.list) - ts.pos
}

// Types returns the types of the remaining tokens.
func (ts *Tokens) Types() []TokenType {
	tt := make([]TokenType, 0, ts.Len())
	for _, tok := range ts.list[ts.pos:] {
		tt = append(tt, tok.Type())
	}
	return tt
}
