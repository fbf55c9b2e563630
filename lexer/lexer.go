package lexer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"text/scanner"
	"unicode/utf8"
)

type lexState func(*Lexer) lexState

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)
	isQuote     = isTokenType(TokenQuote)
)

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	lx := &Lexer{
		buf: []rune{},
	}

	s := &scanner.Scanner{}
	s.Init(r)
	s.Error = func(_ *scanner.Scanner, msg string) {
		if lx.scanErr == nil {
			lx.scanErr = errors.New(msg)
		}
	}
	lx.in = s

	return lx
}

// Lexer represents a lexical analyzer. It reads one top-level expression at
// a time and leaves the rest of the input untouched.
type Lexer struct {
	in *scanner.Scanner

	tokens *Tokens
	depth  int

	lastErr error
	scanErr error

	buf []rune

	line      int
	col       int
	startLine int
	startCol  int
}

// Reset drops the rest of the current line. The newline itself is left in
// place so no further input is requested from the reader.
func (lx *Lexer) Reset() {
	for {
		p := lx.peek()
		if p == '\n' || p == scanner.EOF {
			return
		}
		if r := lx.in.Next(); r == utf8.RuneError {
			lx.scanErr = nil
		}
		lx.col++
	}
}

// Next reads characters until a complete top-level expression is available
// and returns its tokens. It returns io.EOF if the input ends before any
// token. On error no tokens are returned.
func (lx *Lexer) Next() (*Tokens, error) {
	lx.tokens = NewTokens()
	lx.depth = 0
	lx.lastErr = nil
	lx.buf = lx.buf[0:0]

	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	tokens := lx.tokens
	lx.tokens = nil

	if lx.lastErr != nil {
		return nil, lx.lastErr
	}
	return tokens, nil
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens.Push(NewToken(tt, string(lx.buf), lx.startLine+1, lx.startCol))
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) ignore() {
	lx.buf = lx.buf[0:0]
}

// complete reports whether the tokens collected so far form a whole
// expression: parens are balanced and the input does not end in a quote.
func (lx *Lexer) complete() bool {
	if lx.depth > 0 {
		return false
	}
	last := lx.tokens.Last()
	return last != nil && !last.Is(TokenQuote)
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		if lx.scanErr != nil {
			return rune(0), lx.scanErr
		}
		return rune(0), io.EOF
	}

	if r == utf8.RuneError && lx.scanErr != nil {
		lx.scanErr = nil
		return rune(0), fmt.Errorf("%w at line %d, column %d", ErrInvalidEncoding, lx.line+1, lx.col+1)
	}

	if len(lx.buf) == 0 {
		lx.startLine, lx.startCol = lx.line, lx.col+1
	}
	lx.buf = append(lx.buf, r)

	if r == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isWhitespace(r):
		return lexWhitespace

	case isOpenList(r):
		lx.depth++
		return lexEmit(TokenOpenList)

	case isCloseList(r):
		lx.depth--
		if lx.depth < 0 {
			return lexStateError(fmt.Errorf("%w: unexpected ')' at line %d, column %d", ErrUnbalancedParens, lx.startLine+1, lx.startCol))
		}
		return lexEmit(TokenCloseList)

	case isQuote(r):
		return lexEmit(TokenQuote)

	default:
		return lexAtom
	}
}

func lexWhitespace(lx *Lexer) lexState {
	for isWhitespace(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.ignore()
	return lexDefaultState
}

func lexAtom(lx *Lexer) lexState {
	for len(lx.buf) < MaxAtomLen {
		p := lx.peek()
		if p == scanner.EOF || isAtomBreak(p) {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	return lexEmit(TokenAtom)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		if lx.complete() {
			return nil
		}
		return lexDefaultState
	}
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		if err == io.EOF {
			if lx.tokens.Len() == 0 {
				lx.lastErr = io.EOF
				return nil
			}
			if lx.depth > 0 {
				err = fmt.Errorf("%w: %d unclosed parens at line %d", ErrTruncatedInput, lx.depth, lx.line+1)
			} else {
				err = fmt.Errorf("%w: quote with nothing to quote at line %d", ErrTruncatedInput, lx.line+1)
			}
		}
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes holding exactly one expression and returns
// its tokens, or an error if the input is not a single balanced expression.
func Tokenize(in []byte) (*Tokens, error) {
	lx := New(bytes.NewReader(in))

	tokens, err := lx.Next()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty input", ErrTruncatedInput)
		}
		return nil, err
	}

	if _, err := lx.Next(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w after line %d", ErrTrailingInput, lx.startLine+1)
	}

	return tokens, nil
}
