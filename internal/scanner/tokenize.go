package scanner

import (
	"bufio"
	"errors"
	"fmt"
)

var (
	ErrInvalidNumber   = errors.New("invalid number")
	ErrTrailingGarbage = errors.New("unexpected byte after number")
)

// Token is one literal found by Tokenize. Start and End delimit the literal
// in the tokenized buffer; every offset in Number refers to that buffer too.
type Token struct {
	Start  int
	End    int
	Number Number
}

// Bytes returns the literal text of t within src.
func (t Token) Bytes(src []byte) []byte { return src[t.Start:t.End] }

// Tokenize scans every literal in data. Literals are separated by ASCII
// whitespace, ',' or ';', except that a separator equal to the decimal point
// is part of the literal instead. Each scan resumes at the previous literal's
// LastMatch, so no byte is ever consumed twice.
//
// The returned slice may come from a pool; pass it to PutTokenSlice when done.
func Tokenize(data []byte, opts Options) ([]Token, error) {
	opts = opts.normalize()
	dp := opts.DecimalPoint

	tokens := getTokenSlice(len(data) / 4)
	i := 0
	for i < len(data) {
		// Skip separators
		for i < len(data) && isBoundary(data[i], dp) {
			i++
		}
		if i >= len(data) {
			break
		}

		if !canStartLiteral(data[i], dp) {
			PutTokenSlice(tokens)
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidNumber, data[i], i)
		}
		n := Scan(data[i:], opts)
		if !n.Valid {
			PutTokenSlice(tokens)
			return nil, fmt.Errorf("%w at offset %d", ErrInvalidNumber, i)
		}
		n = n.Offset(i)
		if n.LastMatch < len(data) && !isBoundary(data[n.LastMatch], dp) {
			PutTokenSlice(tokens)
			return nil, fmt.Errorf("%w: %q at offset %d", ErrTrailingGarbage, data[n.LastMatch], n.LastMatch)
		}

		tokens = append(tokens, Token{Start: i, End: n.LastMatch, Number: n})
		i = n.LastMatch
	}

	return tokens, nil
}

// SplitLiterals returns a bufio.SplitFunc that yields the separator-delimited
// fields Tokenize would scan, without validating them.
func SplitLiterals(opts Options) bufio.SplitFunc {
	dp := opts.normalize().DecimalPoint
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		start := 0
		for start < len(data) && isBoundary(data[start], dp) {
			start++
		}
		for i := start; i < len(data); i++ {
			if isBoundary(data[i], dp) {
				return i + 1, data[start:i], nil
			}
		}
		if atEOF && len(data) > start {
			return len(data), data[start:], nil
		}
		// Request more data, dropping the separators already seen.
		return start, nil, nil
	}
}
