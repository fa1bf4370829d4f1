// Package simdnum scans ASCII numeric literals into a sign, a decimal
// mantissa and a decimal exponent, the form a float or integer conversion
// starts from. The scanner is branch-light: eight fraction digits at a time
// are checked and folded inside one uint64, and digit accumulation is allowed
// to wrap, with a short second pass over the digits only for literals longer
// than nineteen significant digits.
package simdnum

import (
	"bufio"

	"github.com/biggeezerdevelopment/simdnum/internal/parser"
	"github.com/biggeezerdevelopment/simdnum/internal/scanner"
)

type (
	Options = scanner.Options
	Format  = scanner.Format
	Rules   = scanner.Rules
	Number  = scanner.Number
	Span    = scanner.Span
	Token   = scanner.Token
)

const (
	FormatFixed      = scanner.FormatFixed
	FormatScientific = scanner.FormatScientific
	FormatGeneral    = scanner.FormatGeneral

	RulesStandard          = scanner.RulesStandard
	RulesStrictInterchange = scanner.RulesStrictInterchange
	RulesJSON              = scanner.RulesJSON
)

var (
	ErrInvalidNumber   = scanner.ErrInvalidNumber
	ErrTrailingGarbage = scanner.ErrTrailingGarbage
	ErrRange           = parser.ErrRange
	ErrNotInteger      = parser.ErrNotInteger
)

// ParseFormat maps "fixed", "scientific" or "general" to a Format.
func ParseFormat(s string) (Format, error) { return scanner.ParseFormat(s) }

// ParseRules maps "standard", "strict" or "json" to a Rules.
func ParseRules(s string) (Rules, error) { return scanner.ParseRules(s) }

// Scan reads one literal from the start of data. See Number for how to read
// the result; check Valid before anything else.
func Scan(data []byte, opts Options) Number {
	return scanner.Scan(data, opts)
}

// Valid reports whether data is exactly one literal.
func Valid(data []byte, opts Options) bool {
	n := scanner.Scan(data, opts)
	return n.Valid && n.LastMatch == len(data)
}

// ParseFloat converts the literal at the start of data to the nearest
// float64 and reports how many bytes it consumed.
func ParseFloat(data []byte, opts Options) (float64, int, error) {
	n := scanner.Scan(data, opts)
	if !n.Valid {
		return 0, 0, ErrInvalidNumber
	}
	f, err := parser.Float64(data, n)
	return f, n.LastMatch, err
}

// ParseFloat32 is ParseFloat for float32.
func ParseFloat32(data []byte, opts Options) (float32, int, error) {
	n := scanner.Scan(data, opts)
	if !n.Valid {
		return 0, 0, ErrInvalidNumber
	}
	f, err := parser.Float32(data, n)
	return f, n.LastMatch, err
}

// ParseInt converts the integer literal at the start of data to an int64 and
// reports how many bytes it consumed. Literals with a fraction or exponent
// return ErrNotInteger.
func ParseInt(data []byte, opts Options) (int64, int, error) {
	n := scanner.Scan(data, opts)
	if !n.Valid {
		return 0, 0, ErrInvalidNumber
	}
	v, err := parser.Int64(data, n)
	return v, n.LastMatch, err
}

// ParseUint is ParseInt for uint64.
func ParseUint(data []byte, opts Options) (uint64, int, error) {
	n := scanner.Scan(data, opts)
	if !n.Valid {
		return 0, 0, ErrInvalidNumber
	}
	v, err := parser.Uint64(data, n)
	return v, n.LastMatch, err
}

// Tokenize scans every literal in a buffer of literals separated by ASCII
// whitespace, ',' or ';'. Call ReleaseTokens when done with the result.
func Tokenize(data []byte, opts Options) ([]Token, error) {
	return scanner.Tokenize(data, opts)
}

// ReleaseTokens recycles a slice returned by Tokenize.
func ReleaseTokens(tokens []Token) {
	scanner.PutTokenSlice(tokens)
}

// Float64 converts a Number scanned from src.
func Float64(src []byte, n Number) (float64, error) {
	return parser.Float64(src, n)
}

// Int64 converts a Number scanned from src.
func Int64(src []byte, n Number) (int64, error) {
	return parser.Int64(src, n)
}

// Uint64 converts a Number scanned from src.
func Uint64(src []byte, n Number) (uint64, error) {
	return parser.Uint64(src, n)
}

// SplitLiterals returns a bufio.SplitFunc yielding the separator-delimited
// fields of a literal stream, unvalidated.
func SplitLiterals(opts Options) bufio.SplitFunc {
	return scanner.SplitLiterals(opts)
}
