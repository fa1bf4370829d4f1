package scanner

import (
	"github.com/biggeezerdevelopment/simdnum/internal/swar"
)

const (
	// maxMantissaDigits is how many significant digits always fit a uint64.
	maxMantissaDigits = 19
	// maxExactIntegerDigits is the digit count of the largest uint64.
	maxExactIntegerDigits = 20

	minNineteenDigitInteger uint64 = 1000000000000000000
	minTwentyDigitInteger   uint64 = 10000000000000000000
	maxUint64Text                  = "18446744073709551615"

	// Past this an explicit exponent can only mean overflow or underflow.
	explicitExponentLimit = 0x10000000

	eightDigitScale = 100000000
)

// Span is a half-open range [Start, End) of offsets into the slice that was
// scanned. It does not own or copy the bytes.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int { return s.End - s.Start }

// Bytes returns the bytes s covers within src, which must be the slice s was
// produced from.
func (s Span) Bytes(src []byte) []byte { return src[s.Start:s.End] }

// Number is the result of scanning a numeric literal.
//
// When Valid is false no other field carries meaning. When TooManyDigits is
// true, Mantissa and Exponent are a truncation of the literal that is close
// enough to round correctly but not to break exact ties; Integer and Fraction
// still point at every digit for callers that need them.
type Number struct {
	// Exponent scales Mantissa: the value is Mantissa * 10^Exponent.
	Exponent int64
	// Mantissa accumulates the digits. It may have wrapped while scanning;
	// it is exact whenever TooManyDigits is false.
	Mantissa uint64
	// Integer holds the digits before the decimal point.
	Integer Span
	// Fraction holds the digits after the decimal point. It is the zero
	// Span when the literal has no decimal point.
	Fraction Span
	// LastMatch is the offset of the first byte after the literal.
	LastMatch int

	Negative      bool
	Valid         bool
	Is64BitInt    bool
	TooManyDigits bool
}

// HasDecimalPoint reports whether the literal contained a decimal point.
func (n Number) HasDecimalPoint() bool {
	return n.Fraction.Start > n.Integer.End
}

// Offset returns n with every offset moved by base, for a Number scanned
// from data[base:] that should describe positions in data.
func (n Number) Offset(base int) Number {
	if !n.Valid {
		return n
	}
	if n.HasDecimalPoint() {
		n.Fraction.Start += base
		n.Fraction.End += base
	}
	n.Integer.Start += base
	n.Integer.End += base
	n.LastMatch += base
	return n
}

func isDigit(c byte) bool {
	return c-'0' < 10
}

// Scan reads one numeric literal from the start of data.
//
// Scan never allocates and never reads outside data; the 8-digit batch path
// is taken only while at least eight bytes remain. Bytes after the literal are
// left alone and reported through LastMatch. An empty data yields an invalid
// Number.
func Scan(data []byte, opts Options) Number {
	opts = opts.normalize()
	var n Number

	pend := len(data)
	if pend == 0 {
		return n
	}
	strict := opts.Rules == RulesStrictInterchange
	dp := opts.DecimalPoint

	p := 0
	n.Negative = data[0] == '-'
	if data[0] == '-' || (allowLeadingPlus && data[0] == '+') {
		p++
		if p == pend {
			return n
		}
		// A sign must be followed by a digit or, outside the strict grammar,
		// the decimal point.
		if !isDigit(data[p]) && (strict || data[p] != dp) {
			return n
		}
	}

	startDigits := p
	var i uint64 // wraps on purpose; fixed up below when it matters
	for p != pend && isDigit(data[p]) {
		i = 10*i + uint64(data[p]-'0')
		p++
	}
	endOfInteger := p
	digitCount := int64(endOfInteger - startDigits)
	n.Integer = Span{Start: startDigits, End: endOfInteger}

	var exponent int64
	hasDecimalPoint := p != pend && data[p] == dp
	if hasDecimalPoint {
		p++
		before := p
		for pend-p >= swar.WordSize {
			w := swar.Load(data[p:])
			if !swar.IsEightDigits(w) {
				break
			}
			i = i*eightDigitScale + uint64(swar.CombineEightDigits(w))
			p += swar.WordSize
		}
		for p != pend && isDigit(data[p]) {
			i = i*10 + uint64(data[p]-'0')
			p++
		}
		exponent = int64(before - p)
		n.Fraction = Span{Start: before, End: p}
		digitCount -= exponent
	}

	if digitCount == 0 {
		return n
	}
	// Strict grammars want digits on both sides of the point, so "12." and
	// ".55" are rejected along with "5." and ".5".
	if strict && hasDecimalPoint && (n.Integer.Len() == 0 || n.Fraction.Len() == 0) {
		return n
	}

	var expNumber int64
	if opts.Format&FormatScientific != 0 && p != pend && (data[p] == 'e' || data[p] == 'E') {
		locationOfE := p
		p++
		negExp := false
		if p != pend && data[p] == '-' {
			negExp = true
			p++
		} else if p != pend && data[p] == '+' {
			p++
		}
		if p == pend || !isDigit(data[p]) {
			if opts.Format&FormatFixed == 0 {
				return n
			}
			// The marker belongs to whatever follows the literal.
			p = locationOfE
		} else {
			for p != pend && isDigit(data[p]) {
				if expNumber < explicitExponentLimit {
					expNumber = 10*expNumber + int64(data[p]-'0')
				}
				p++
			}
			if negExp {
				expNumber = -expNumber
			}
			exponent += expNumber
		}
	} else if opts.Format&FormatScientific != 0 && opts.Format&FormatFixed == 0 {
		return n
	}

	if strict && n.Integer.Len() >= 2 && data[startDigits] == '0' {
		return n
	}

	n.LastMatch = p
	n.Valid = true
	n.Is64BitInt = p == endOfInteger

	if digitCount > maxMantissaDigits {
		// Leading zeros do not count toward precision: 0.0000...
		for s := startDigits; s < p && (data[s] == '0' || data[s] == dp); s++ {
			if data[s] == '0' {
				digitCount--
			}
		}

		if opts.PreferExactIntegers && n.Is64BitInt {
			// An accumulator below 10^19 either wrapped or never needed a
			// twentieth digit. The text comparison catches 20 digits that
			// wrapped back above 10^19.
			n.TooManyDigits = digitCount > maxExactIntegerDigits ||
				i < minTwentyDigitInteger ||
				digitCount == maxExactIntegerDigits &&
					string(data[endOfInteger-maxExactIntegerDigits:endOfInteger]) > maxUint64Text
		} else {
			n.TooManyDigits = digitCount > maxMantissaDigits
		}

		if n.TooManyDigits {
			n.Is64BitInt = false
			i, exponent = truncate(data, n.Integer, n.Fraction, expNumber)
		}
	}

	n.Exponent = exponent
	n.Mantissa = i
	return n
}

// truncate rebuilds the mantissa from the recorded digit spans, stopping once
// it holds 19 digits so that it cannot overflow, and returns the exponent
// matching the digits it left out.
func truncate(data []byte, integer, fraction Span, expNumber int64) (uint64, int64) {
	var i uint64
	p := integer.Start
	for i < minNineteenDigitInteger && p != integer.End {
		i = i*10 + uint64(data[p]-'0')
		p++
	}
	if i >= minNineteenDigitInteger {
		return i, int64(integer.End-p) + expNumber
	}
	p = fraction.Start
	for i < minNineteenDigitInteger && p != fraction.End {
		i = i*10 + uint64(data[p]-'0')
		p++
	}
	return i, int64(fraction.Start-p) + expNumber
}
