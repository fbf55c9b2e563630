package lexer

import (
	"errors"
)

var (
	ErrUnbalancedParens = errors.New("unbalanced parens")
	ErrTruncatedInput   = errors.New("truncated input")
	ErrTrailingInput    = errors.New("trailing input")
	ErrInvalidEncoding  = errors.New("invalid UTF-8 encoding")
)
