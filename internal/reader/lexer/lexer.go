// Released under an MIT license. See LICENSE.

// Package lexer converts a line of input into tokens.
package lexer

import (
	"strings"

	"github.com/uncalc/uncalc/internal/common/fault"
	"github.com/uncalc/uncalc/internal/reader/token"
)

// Scan tokenizes the line. It faults on the first character that
// cannot start a token. A '#' starts a comment running to end of line.
func Scan(line string) []*token.T {
	var tokens []*token.T

	i := 0
	for i < len(line) {
		c := line[i]

		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '#':
			return tokens
		case digit(c) || c == '.' && i+1 < len(line) && digit(line[i+1]):
			i = number(line, i, &tokens)
		case alpha(c):
			start := i
			for i < len(line) && (alpha(line[i]) || digit(line[i])) {
				i++
			}

			tokens = append(tokens, token.New(token.Ident, line[start:i], start))
		case c == '*':
			if i+1 < len(line) && line[i+1] == '*' {
				tokens = append(tokens, token.New(token.Operator, "**", i))
				i += 2
			} else {
				tokens = append(tokens, token.New(token.Operator, "*", i))
				i++
			}
		case strings.IndexByte("+-/%", c) >= 0:
			tokens = append(tokens, token.New(token.Operator, string(c), i))
			i++
		case c == '(':
			tokens = append(tokens, token.New(token.LParen, "(", i))
			i++
		case c == ')':
			tokens = append(tokens, token.New(token.RParen, ")", i))
			i++
		case c == ',':
			tokens = append(tokens, token.New(token.Comma, ",", i))
			i++
		case c == ';':
			tokens = append(tokens, token.New(token.Semicolon, ";", i))
			i++
		case c == '=':
			tokens = append(tokens, token.New(token.Assign, "=", i))
			i++
		default:
			fault.Throw(fault.Parse, "unexpected character %q at column %d", c, i+1)
		}
	}

	return tokens
}

// number scans a numeric literal starting at i: digits, an optional
// fractional part, an optional exponent, and an optional imaginary
// suffix 'i'.
func number(line string, i int, tokens *[]*token.T) int {
	start := i

	for i < len(line) && digit(line[i]) {
		i++
	}

	if i < len(line) && line[i] == '.' {
		i++
		for i < len(line) && digit(line[i]) {
			i++
		}
	}

	if i < len(line) && (line[i] == 'e' || line[i] == 'E') {
		j := i + 1
		if j < len(line) && (line[j] == '+' || line[j] == '-') {
			j++
		}

		if j < len(line) && digit(line[j]) {
			i = j
			for i < len(line) && digit(line[i]) {
				i++
			}
		}
	}

	if i < len(line) && line[i] == 'i' && !alphanumeric(line, i+1) {
		*tokens = append(*tokens, token.New(token.Imaginary, line[start:i], start))

		return i + 1
	}

	if alphanumeric(line, i) {
		fault.Throw(fault.Parse, "malformed number at column %d", start+1)
	}

	*tokens = append(*tokens, token.New(token.Number, line[start:i], start))

	return i
}

// alphanumeric reports whether an identifier character begins line[i:].
// It distinguishes the literal 2i from a malformed token like 2in.
func alphanumeric(line string, i int) bool {
	return i < len(line) && (alpha(line[i]) || digit(line[i]))
}

func alpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func digit(c byte) bool {
	return c >= '0' && c <= '9'
}
