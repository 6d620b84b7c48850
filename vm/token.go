package vm

import (
	"errors"
	"strconv"
	"strings"
)

type TokenKind int

const (
	NumberToken TokenKind = iota
	OperatorToken
	NameToken
)

func (k TokenKind) String() string {
	switch k {
	case NumberToken:
		return "Number"
	case OperatorToken:
		return "Operator"
	case NameToken:
		return "Name"
	}
	return "Unknown"
}

// ParseNumber reports whether token is a decimal floating point literal or a
// signed Infinity. Hex floats, digit separators, "nan" and "inf" are not
// literals. Literals too large or too small for a float64 still count, and
// parse to ±Inf or 0.
func ParseNumber(token string) (float64, bool) {
	if !isDecimalLiteral(token) {
		return 0, false
	}
	f, err := strconv.ParseFloat(token, 64)
	if err == nil {
		return f, true
	}
	if errors.Is(err, strconv.ErrRange) {
		return f, true
	}
	return 0, false
}

func isDecimalLiteral(token string) bool {
	switch strings.TrimLeft(token, "+-") {
	case "Infinity":
		return len(token) <= len("Infinity")+1
	case "":
		return false
	}
	for _, c := range token {
		switch {
		case c >= '0' && c <= '9':
		case c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-':
		default:
			return false
		}
	}
	return true
}

// Classify decides what a token is by its shape alone. Numbers win over
// operators, so "-5" is a literal and "-" is subtraction.
func Classify(token string) TokenKind {
	if _, ok := ParseNumber(token); ok {
		return NumberToken
	}
	if _, ok := ParseOpcode(token); ok {
		return OperatorToken
	}
	return NameToken
}

// Tokenize splits a line on runs of whitespace.
func Tokenize(line string) []string {
	return strings.Fields(line)
}
