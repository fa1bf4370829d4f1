package scanner

import (
	"math/big"
	"regexp"
	"strings"
)

// grammarFor builds a regular expression for the literal grammar shared by
// every option set: an optional sign, integer digits, an optional decimal
// point with fraction digits and, when the format allows one, an exponent.
// The remaining rules are applied by referenceScan.
//
// Submatches: 1 sign, 2 integer digits, 3 fraction digits, 4 exponent.
func grammarFor(opts Options) *regexp.Regexp {
	sign := `(-)?`
	if allowLeadingPlus {
		sign = `([+-])?`
	}
	exp := `(?:[eE]([+-]?[0-9]+))?`
	if opts.Format&FormatScientific == 0 {
		exp = `()?`
	}
	return regexp.MustCompile(`^` + sign + `([0-9]*)(?:` + regexp.QuoteMeta(string(opts.DecimalPoint)) + `([0-9]*))?` + exp)
}

// referenceScan is a slow restatement of Scan: no batching, no wrapping
// arithmetic, and exact big-integer digit handling.
func referenceScan(data []byte, opts Options) Number {
	opts = opts.normalize()
	var n Number
	m := grammarFor(opts).FindSubmatchIndex(data)
	if m == nil {
		return n
	}

	intDigits := string(data[m[4]:m[5]])
	hasPoint := m[6] >= 0
	var fracDigits string
	if hasPoint {
		fracDigits = string(data[m[6]:m[7]])
	}
	hasExp := m[8] >= 0 && m[9] > m[8]

	if len(intDigits)+len(fracDigits) == 0 {
		return n
	}
	if opts.Format == FormatScientific && !hasExp {
		return n
	}
	if opts.Rules == RulesStrictInterchange {
		if hasPoint && (intDigits == "" || fracDigits == "") {
			return n
		}
		if len(intDigits) >= 2 && intDigits[0] == '0' {
			return n
		}
	}

	n.Valid = true
	n.Negative = data[0] == '-'
	n.Integer = Span{Start: m[4], End: m[5]}
	if hasPoint {
		n.Fraction = Span{Start: m[6], End: m[7]}
	}
	n.LastMatch = m[1]

	var explicit int64
	if hasExp {
		explicit = referenceExponent(string(data[m[8]:m[9]]))
	}

	digits := intDigits + fracDigits
	significant := strings.TrimLeft(digits, "0")
	pureInteger := !hasPoint && !hasExp
	if opts.PreferExactIntegers && pureInteger {
		// Past 19 written digits, only a twenty digit value that fits a
		// uint64 escapes truncation.
		n.TooManyDigits = len(digits) > maxMantissaDigits &&
			!(len(significant) == maxExactIntegerDigits && significant <= maxUint64Text)
	} else {
		n.TooManyDigits = len(significant) > maxMantissaDigits
	}

	// A truncated mantissa keeps the first nineteen significant digits.
	kept := len(digits)
	if n.TooManyDigits {
		kept = min(len(digits), len(digits)-len(significant)+maxMantissaDigits)
	}
	v, _ := new(big.Int).SetString(digits[:kept], 10)
	n.Mantissa = v.Uint64()
	n.Exponent = explicit + int64(len(digits)-kept) - int64(len(fracDigits))
	n.Is64BitInt = pureInteger && !n.TooManyDigits
	return n
}

// referenceExponent reads a signed exponent, saturating the magnitude the
// same way the scanner does.
func referenceExponent(s string) int64 {
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	var e int64
	for i := 0; i < len(s); i++ {
		if e < explicitExponentLimit {
			e = 10*e + int64(s[i]-'0')
		}
	}
	if neg {
		return -e
	}
	return e
}
