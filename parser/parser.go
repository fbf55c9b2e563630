package parser

import (
	"fmt"
	"io"

	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/lexer"
)

const quoteSymbol = "quote"

// Options modifies how the parser builds objects.
type Options struct {
	// Heap receives every object built by the parser, nil means untracked.
	Heap *ast.Heap
}

// Parser reads expressions from a stream, one at a time.
type Parser struct {
	lx      *lexer.Lexer
	options Options
}

// New creates a parser that reads from r.
func New(r io.Reader) *Parser {
	return &Parser{
		lx: lexer.New(r),
	}
}

// SetOptions replaces the parser options.
func (p *Parser) SetOptions(options Options) {
	p.options = options
}

// Parse reads the next top-level expression and returns its tree. It returns
// io.EOF when the stream ends cleanly between expressions.
func (p *Parser) Parse() (ast.Object, error) {
	tokens, err := p.lx.Next()
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens, p.options.Heap)
}

// Reset discards buffered input that was not consumed yet.
func (p *Parser) Reset() {
	p.lx.Reset()
}

// ParseTokens builds the tree of the single expression held by tokens. On
// failure every object built so far is destroyed and nil is returned.
func ParseTokens(tokens *lexer.Tokens, heap *ast.Heap) (ast.Object, error) {
	s := &state{tokens: tokens, heap: heap}

	obj, err := s.expression()
	if err != nil {
		return nil, err
	}

	if tok := tokens.Peek(); tok != nil {
		ast.Destroy(obj)
		return nil, unexpected(tok)
	}

	return obj, nil
}

// Parse builds the tree of the single expression in the given bytes.
func Parse(in []byte) (ast.Object, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens, nil)
}

type state struct {
	tokens *lexer.Tokens
	heap   *ast.Heap
}

func unexpected(tok *lexer.Token) error {
	line, col := tok.Pos()
	return fmt.Errorf("%w %q at line %d, column %d", ErrUnexpectedToken, tok.Text(), line, col)
}

func (s *state) expression() (ast.Object, error) {
	tok := s.tokens.Next()
	if tok == nil {
		return nil, fmt.Errorf("%w: expression expected", lexer.ErrTruncatedInput)
	}

	switch tok.Type() {
	case lexer.TokenQuote:
		obj, err := s.expression()
		if err != nil {
			return nil, err
		}
		return s.quote(obj)

	case lexer.TokenOpenList:
		return s.list()

	case lexer.TokenAtom:
		return s.atom(tok)
	}

	return nil, unexpected(tok)
}

// list reads the elements of a list up to its close paren, the open paren was
// already consumed.
func (s *state) list() (ast.Object, error) {
	items := []ast.Object{}

	abort := func(err error) (ast.Object, error) {
		for i := range items {
			ast.Destroy(items[i])
		}
		return nil, err
	}

	for {
		tok := s.tokens.Peek()
		if tok == nil {
			return abort(fmt.Errorf("%w: list was not closed", lexer.ErrTruncatedInput))
		}
		if tok.Is(lexer.TokenCloseList) {
			s.tokens.Next()
			break
		}

		obj, err := s.expression()
		if err != nil {
			return abort(err)
		}
		items = append(items, obj)
	}

	// lists are built back to front starting from the terminator
	var expr ast.Object = s.heap.NewEmpty()
	for i := len(items) - 1; i >= 0; i-- {
		pair, err := s.heap.NewPair(items[i], expr)
		if err != nil {
			ast.Destroy(expr)
			items = items[:i+1]
			return abort(err)
		}
		expr = pair
	}

	return expr, nil
}

func (s *state) atom(tok *lexer.Token) (ast.Object, error) {
	text := tok.Text()
	if IsNumber(text) {
		v, err := parseNumber(text)
		if err != nil {
			return nil, err
		}
		return s.heap.NewNumber(v), nil
	}
	sym, err := s.heap.NewSymbol(text)
	if err != nil {
		return nil, err
	}
	return sym, nil
}

// quote wraps obj into (quote obj). obj is destroyed if the wrapping fails.
func (s *state) quote(obj ast.Object) (ast.Object, error) {
	sym, err := s.heap.NewSymbol(quoteSymbol)
	if err != nil {
		ast.Destroy(obj)
		return nil, err
	}

	empty := s.heap.NewEmpty()
	tail, err := s.heap.NewPair(obj, empty)
	if err != nil {
		ast.Destroy(obj)
		ast.Destroy(empty)
		ast.Destroy(sym)
		return nil, err
	}

	expr, err := s.heap.NewPair(sym, tail)
	if err != nil {
		ast.Destroy(tail)
		ast.Destroy(sym)
		return nil, err
	}

	return expr, nil
}
