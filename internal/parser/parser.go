package parser

import (
	"errors"
	"math"
	"math/bits"
	"strconv"
	"unsafe"

	"github.com/biggeezerdevelopment/simdnum/internal/scanner"
)

var (
	ErrRange      = errors.New("value out of range")
	ErrNotInteger = errors.New("number is not an integer")
)

const (
	float64MantBits = 52
	float32MantBits = 23
)

// Exact powers of ten.
var (
	float64pow10 = []float64{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
		1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
		1e20, 1e21, 1e22,
	}
	float32pow10 = []float32{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10}
)

// Float64 converts a scanned literal to the nearest float64. src must be the
// slice n was scanned from. Literals whose magnitude overflows return ±Inf
// together with ErrRange, as strconv does.
func Float64(src []byte, n scanner.Number) (float64, error) {
	if !n.Valid {
		return 0, scanner.ErrInvalidNumber
	}
	if !n.TooManyDigits {
		if f, ok := atof64exact(n.Mantissa, n.Exponent, n.Negative); ok {
			return f, nil
		}
	}
	var buf [64]byte
	f, err := strconv.ParseFloat(unsafeString(canonical(buf[:0], src, n)), 64)
	return f, convError(err)
}

// Float32 converts a scanned literal to the nearest float32.
func Float32(src []byte, n scanner.Number) (float32, error) {
	if !n.Valid {
		return 0, scanner.ErrInvalidNumber
	}
	if !n.TooManyDigits {
		if f, ok := atof32exact(n.Mantissa, n.Exponent, n.Negative); ok {
			return f, nil
		}
	}
	var buf [64]byte
	f, err := strconv.ParseFloat(unsafeString(canonical(buf[:0], src, n)), 32)
	return float32(f), convError(err)
}

func convError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, strconv.ErrRange):
		return ErrRange
	}
	return scanner.ErrInvalidNumber
}

// If possible to compute mantissa*10^exp to 64-bit float f exactly,
// entirely in floating-point math, do so.
func atof64exact(mantissa uint64, exp int64, neg bool) (f float64, ok bool) {
	if mantissa>>float64MantBits != 0 {
		return
	}
	f = float64(mantissa)
	if neg {
		f = -f
	}
	switch {
	case exp == 0:
		return f, true
	// Exact integers are <= 10^15.
	// Exact powers of ten are <= 10^22.
	case exp > 0 && exp <= 15+22: // int * 10^k
		// If exponent is big but number of digits is not,
		// can move a few zeros into the integer part.
		if exp > 22 {
			f *= float64pow10[exp-22]
			exp = 22
		}
		if f > 1e15 || f < -1e15 {
			// the exponent was really too large.
			return
		}
		return f * float64pow10[exp], true
	case exp < 0 && exp >= -22: // int / 10^k
		return f / float64pow10[-exp], true
	}
	return
}

func atof32exact(mantissa uint64, exp int64, neg bool) (f float32, ok bool) {
	if mantissa>>float32MantBits != 0 {
		return
	}
	f = float32(mantissa)
	if neg {
		f = -f
	}
	switch {
	case exp == 0:
		return f, true
	case exp > 0 && exp <= 7+10:
		if exp > 10 {
			f *= float32pow10[exp-10]
			exp = 10
		}
		if f > 1e7 || f < -1e7 {
			return
		}
		return f * float32pow10[exp], true
	case exp < 0 && exp >= -10:
		return f / float32pow10[-exp], true
	}
	return
}

// canonical appends the literal to dst in the form strconv accepts: sign,
// integer digits, '.', fraction digits and the explicit exponent. The
// configured decimal point never reaches strconv.
func canonical(dst, src []byte, n scanner.Number) []byte {
	if n.Negative {
		dst = append(dst, '-')
	}
	dst = append(dst, n.Integer.Bytes(src)...)
	digitsEnd := n.Integer.End
	if n.HasDecimalPoint() {
		dst = append(dst, '.')
		dst = append(dst, n.Fraction.Bytes(src)...)
		digitsEnd = n.Fraction.End
	}
	if n.LastMatch > digitsEnd {
		// src[digitsEnd] is the exponent marker.
		dst = append(dst, 'e')
		dst = append(dst, src[digitsEnd+1:n.LastMatch]...)
	}
	return dst
}

// Uint64 converts an integer literal to a uint64. A negative literal other
// than zero is out of range.
func Uint64(src []byte, n scanner.Number) (uint64, error) {
	mag, err := magnitude(src, n)
	if err != nil {
		return 0, err
	}
	if n.Negative && mag != 0 {
		return 0, ErrRange
	}
	return mag, nil
}

// Int64 converts an integer literal to an int64.
func Int64(src []byte, n scanner.Number) (int64, error) {
	mag, err := magnitude(src, n)
	if err != nil {
		return 0, err
	}
	if n.Negative {
		if mag > 1<<63 {
			return 0, ErrRange
		}
		return -int64(mag), nil
	}
	if mag > math.MaxInt64 {
		return 0, ErrRange
	}
	return int64(mag), nil
}

// magnitude returns the absolute value of an integer literal. The mantissa is
// used as is when the scanner vouched for it; otherwise the digits are
// re-read with overflow checks.
func magnitude(src []byte, n scanner.Number) (uint64, error) {
	if !n.Valid {
		return 0, scanner.ErrInvalidNumber
	}
	if n.LastMatch != n.Integer.End {
		return 0, ErrNotInteger
	}
	if n.Is64BitInt {
		return n.Mantissa, nil
	}
	var v uint64
	for _, c := range n.Integer.Bytes(src) {
		hi, lo := bits.Mul64(v, 10)
		sum, carry := bits.Add64(lo, uint64(c-'0'), 0)
		if hi != 0 || carry != 0 {
			return 0, ErrRange
		}
		v = sum
	}
	return v, nil
}

// Zero-copy conversion from []byte to string
func unsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
