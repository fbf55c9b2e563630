package parser

import (
	"regexp"
	"strconv"
)

// numberPattern matches an optional minus sign, one or more digits and an
// optional fraction. There is no exponent notation.
var numberPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]*)?$`)

// IsNumber returns true if the atom text represents a number.
func IsNumber(text string) bool {
	return numberPattern.MatchString(text)
}

func parseNumber(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}
