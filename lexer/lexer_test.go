package lexer

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			`1`,
			[]TokenType{
				TokenAtom,
			},
		},
		{
			`  foo  `,
			[]TokenType{
				TokenAtom,
			},
		},
		{
			`()`,
			[]TokenType{
				TokenOpenList,
				TokenCloseList,
			},
		},
		{
			`(+ 1 2)`,
			[]TokenType{
				TokenOpenList,
				TokenAtom,
				TokenAtom,
				TokenAtom,
				TokenCloseList,
			},
		},
		{
			`'(1 2 3)`,
			[]TokenType{
				TokenQuote,
				TokenOpenList,
				TokenAtom,
				TokenAtom,
				TokenAtom,
				TokenCloseList,
			},
		},
		{
			`''x`,
			[]TokenType{
				TokenQuote,
				TokenQuote,
				TokenAtom,
			},
		},
		{
			`(a'b)`,
			[]TokenType{
				TokenOpenList,
				TokenAtom,
				TokenQuote,
				TokenAtom,
				TokenCloseList,
			},
		},
		{
			"(define\n\t(square x)\r\n\t(* x x))",
			[]TokenType{
				TokenOpenList,
				TokenAtom,
				TokenOpenList,
				TokenAtom,
				TokenAtom,
				TokenCloseList,
				TokenOpenList,
				TokenAtom,
				TokenAtom,
				TokenAtom,
				TokenCloseList,
				TokenCloseList,
			},
		},
		{
			`'
			x`,
			[]TokenType{
				TokenQuote,
				TokenAtom,
			},
		},
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))
		require.NoError(t, err, "input %q", testCases[i].In)

		assert.Equal(t, testCases[i].Out, tokens.Types())
	}
}

func TestTokenText(t *testing.T) {
	tokens, err := Tokenize([]byte(`(1.2.3 -5 hello-world 'x)`))
	require.NoError(t, err)

	texts := []string{}
	for tokens.Len() > 0 {
		texts = append(texts, tokens.Next().Text())
	}
	assert.Equal(t, []string{"(", "1.2.3", "-5", "hello-world", "'", "x", ")"}, texts)
	assert.Nil(t, tokens.Next())
	assert.Nil(t, tokens.Peek())
}

func TestTokenizeErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{``, ErrTruncatedInput},
		{"  \n\t", ErrTruncatedInput},
		{`)`, ErrUnbalancedParens},
		{`(1 2`, ErrTruncatedInput},
		{`(()`, ErrTruncatedInput},
		{`'`, ErrTruncatedInput},
		{`(a b '`, ErrTruncatedInput},
		{`())`, ErrUnbalancedParens},
		{`(1)) (2)`, ErrUnbalancedParens},
		{`(1) (2`, ErrTruncatedInput},
		{`1 2`, ErrTrailingInput},
		{`(a) b`, ErrTrailingInput},
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))
		assert.ErrorIs(t, err, testCases[i].Err, "input %q", testCases[i].In)
		assert.Nil(t, tokens)
	}
}

func TestBalance(t *testing.T) {
	balanced := func(s string) bool {
		depth := 0
		for _, r := range s {
			switch r {
			case '(':
				depth++
			case ')':
				depth--
				if depth < 0 {
					return false
				}
			}
		}
		return depth == 0
	}

	var inputs []string
	var gen func(prefix string, n int)
	gen = func(prefix string, n int) {
		inputs = append(inputs, prefix)
		if n == 0 {
			return
		}
		for _, c := range []string{"(", ")", "a", " "} {
			gen(prefix+c, n-1)
		}
	}
	gen("", 6)

	for _, s := range inputs {
		_, err := Tokenize([]byte("(" + s + ")"))
		if balanced(s) {
			assert.NoError(t, err, "input %q", s)
		} else {
			assert.Error(t, err, "input %q", s)
		}
	}
}

func TestLexerStream(t *testing.T) {
	lx := New(strings.NewReader("(a b)\n'c 12\n(d\n e)\n"))

	expected := [][]TokenType{
		{TokenOpenList, TokenAtom, TokenAtom, TokenCloseList},
		{TokenQuote, TokenAtom},
		{TokenAtom},
		{TokenOpenList, TokenAtom, TokenAtom, TokenCloseList},
	}

	for i := range expected {
		tokens, err := lx.Next()
		require.NoError(t, err)
		assert.Equal(t, expected[i], tokens.Types())
	}

	tokens, err := lx.Next()
	assert.Equal(t, io.EOF, err)
	assert.Nil(t, tokens)
}

func TestLexerReset(t *testing.T) {
	lx := New(strings.NewReader(") (a b)\n"))

	_, err := lx.Next()
	assert.ErrorIs(t, err, ErrUnbalancedParens)

	lx.Reset()

	_, err = lx.Next()
	assert.Equal(t, io.EOF, err)
}

func TestLexerResetKeepsNextLines(t *testing.T) {
	lx := New(strings.NewReader("(a))\n(b) ) junk\n'c\n"))

	tokens, err := lx.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, tokens.Len())

	_, err = lx.Next()
	assert.ErrorIs(t, err, ErrUnbalancedParens)
	lx.Reset()

	tokens, err = lx.Next()
	require.NoError(t, err)
	assert.Equal(t, []TokenType{TokenOpenList, TokenAtom, TokenCloseList}, tokens.Types())

	_, err = lx.Next()
	assert.ErrorIs(t, err, ErrUnbalancedParens)
	lx.Reset()

	tokens, err = lx.Next()
	require.NoError(t, err)
	assert.Equal(t, []TokenType{TokenQuote, TokenAtom}, tokens.Types())

	_, err = lx.Next()
	assert.Equal(t, io.EOF, err)
}

func TestInvalidEncoding(t *testing.T) {
	for _, in := range []string{"(a\xffb)", "a\xffb", "\xff", "('x \xff)"} {
		tokens, err := Tokenize([]byte(in))
		assert.ErrorIs(t, err, ErrInvalidEncoding, "input %q", in)
		assert.Nil(t, tokens)
	}

	// a real replacement character is fine
	tokens, err := Tokenize([]byte("(a\uFFFDb)"))
	require.NoError(t, err)
	tokens.Next()
	assert.Equal(t, "a\uFFFDb", tokens.Next().Text())
}

func TestInvalidEncodingStream(t *testing.T) {
	lx := New(strings.NewReader("(a\xffb)\n(c)\n"))

	_, err := lx.Next()
	assert.ErrorIs(t, err, ErrInvalidEncoding)
	lx.Reset()

	tokens, err := lx.Next()
	require.NoError(t, err)
	assert.Equal(t, []TokenType{TokenOpenList, TokenAtom, TokenCloseList}, tokens.Types())
}

func TestLongAtom(t *testing.T) {
	long := strings.Repeat("a", 150)

	tokens, err := Tokenize([]byte("(" + long + ")"))
	require.NoError(t, err)
	assert.Equal(t, []TokenType{TokenOpenList, TokenAtom, TokenAtom, TokenCloseList}, tokens.Types())

	tokens.Next()
	assert.Equal(t, MaxAtomLen, len(tokens.Next().Text()))
	assert.Equal(t, 150-MaxAtomLen, len(tokens.Next().Text()))
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"1",
			[][2]int{
				{1, 1},
			},
		},
		{
			"(a\n  bc)",
			[][2]int{
				{1, 1}, {1, 2},
				{2, 3}, {2, 5},
			},
		},
		{
			"\n\n\t'xyz",
			[][2]int{
				{3, 2}, {3, 3},
			},
		},
	}

	getTokenPositions := func(tokens *Tokens) [][2]int {
		ret := [][2]int{}
		for tok := tokens.Next(); tok != nil; tok = tokens.Next() {
			line, col := tok.Pos()
			ret = append(ret, [2]int{line, col})
		}
		return ret
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))
		require.NoError(t, err)

		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens))
	}
}

func TestTokenString(t *testing.T) {
	tok := NewToken(TokenAtom, "foo", 1, 2)
	assert.Equal(t, `atom("foo")@1:2`, tok.String())
	assert.True(t, tok.Is(TokenAtom))
	assert.False(t, tok.IsDelimiter())

	paren := NewToken(TokenOpenList, "(", 3, 4)
	assert.Equal(t, `(@3:4`, paren.String())
	assert.True(t, paren.IsDelimiter())
	assert.Equal(t, "invalid", TokenType(99).String())
}
