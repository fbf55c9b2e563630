package parser

import (
	"errors"
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")
)
