package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenOpenList            // Open parenthesis: "("
	TokenCloseList           // Close parenthesis: ")"
	TokenQuote               // Quote: "'"
	TokenAtom                // Any other run of characters
)

// MaxAtomLen is the longest atom the lexer emits, longer runs are split.
const MaxAtomLen = 99

var tokenValues = map[TokenType][]rune{
	TokenOpenList:  []rune{'('},
	TokenCloseList: []rune{')'},
	TokenQuote:     []rune{'\''},
}

var whitespace = []rune(" \t\n\r\f\v")

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenQuote:     "quote",
	TokenAtom:      "atom",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isWhitespace(r rune) bool {
	for _, v := range whitespace {
		if v == r {
			return true
		}
	}
	return false
}

func isAtomBreak(r rune) bool {
	return isWhitespace(r) || isOpenList(r) || isCloseList(r) || isQuote(r)
}
