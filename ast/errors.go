package ast

import (
	"errors"
)

var (
	ErrAllocation      = errors.New("allocation failed")
	ErrInvalidArgument = errors.New("invalid argument")
)
