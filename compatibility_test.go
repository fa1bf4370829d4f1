package simdnum

import (
	"encoding/json"
	"errors"
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStrconvCompatibility checks that whole-literal parses agree with the
// standard library.
func TestStrconvCompatibility(t *testing.T) {
	literals := []string{
		"0", "-0", "1", "42", "-17", "3.14159", "-2.5e-3", "6.02214076e23",
		"1e308", "1e309", "-1e309", "5e-324", "1e-400",
		"9223372036854775807", "-9223372036854775808", "9223372036854775808",
		"18446744073709551615", "18446744073709551616",
		"0.30000000000000004", "123456789012345678901234567890",
		"1.", ".1", "00042",
	}

	for _, s := range literals {
		t.Run(s, func(t *testing.T) {
			data := []byte(s)
			require.True(t, Valid(data, Options{}))

			f, n, err := ParseFloat(data, Options{})
			want, wantErr := strconv.ParseFloat(s, 64)
			assert.Equal(t, len(s), n)
			assert.Equal(t, math.Float64bits(want), math.Float64bits(f))
			assert.Equal(t, wantErr != nil, err != nil)
			if wantErr != nil {
				assert.ErrorIs(t, err, ErrRange)
			}

			i, _, err := ParseInt(data, Options{})
			wantInt, wantIntErr := strconv.ParseInt(s, 10, 64)
			checkIntegerError(t, wantIntErr, err)
			if wantIntErr == nil {
				assert.Equal(t, wantInt, i)
			}

			u, _, err := ParseUint(data, Options{})
			wantUint, wantUintErr := strconv.ParseUint(s, 10, 64)
			if s == "-0" {
				// strconv rejects any sign on unsigned input.
				wantUint, wantUintErr = 0, nil
			}
			checkIntegerError(t, wantUintErr, err)
			if wantUintErr == nil {
				assert.Equal(t, wantUint, u)
			}
		})
	}
}

// checkIntegerError compares an error from the integer converters with the
// strconv error for the same text. strconv reports a syntax error for
// fractions and exponents; those are ErrNotInteger here, and negative input
// to ParseUint is a range error rather than a syntax error.
func checkIntegerError(t *testing.T, want, got error) {
	t.Helper()
	switch {
	case want == nil:
		assert.NoError(t, got)
	case errors.Is(want, strconv.ErrRange):
		assert.ErrorIs(t, got, ErrRange)
	default:
		assert.True(t, errors.Is(got, ErrNotInteger) || errors.Is(got, ErrRange), "got %v", got)
	}
}

// TestJSONCompatibility checks the strict grammar against encoding/json,
// which implements the same number grammar.
func TestJSONCompatibility(t *testing.T) {
	fixed := []string{
		"0", "-0", "01", "-01", "0.5", ".5", "5.", "-.5", "1e5", "1E+5", "1e-5",
		"1e", "1e+", "-", "+1", "00", "0.0", "1.5e3", "-0.0e-0", "12345678901234567890.5",
	}
	for _, s := range fixed {
		if s[0] == '+' && leadingPlusAccepted() {
			continue
		}
		assert.Equal(t, json.Valid([]byte(s)), Valid([]byte(s), Options{Rules: RulesJSON}), "%q", s)
	}

	alphabet := []byte("00123456789.-+eE")
	rng := rand.New(rand.NewPCG(31, 32))
	for iter := 0; iter < 50000; iter++ {
		b := make([]byte, 1+rng.IntN(12))
		for i := range b {
			b[i] = alphabet[rng.IntN(len(alphabet))]
		}
		if b[0] == '+' && leadingPlusAccepted() {
			continue
		}
		if got, want := Valid(b, Options{Rules: RulesJSON}), json.Valid(b); got != want {
			t.Fatalf("Valid(%q) = %t, encoding/json says %t", b, got, want)
		}
	}
}

func leadingPlusAccepted() bool {
	return Valid([]byte("+1"), Options{})
}

func TestFloat32Compatibility(t *testing.T) {
	for _, s := range []string{"0.1", "3.4028235e38", "3.5e38", "1e-46", "16777217", "-7.25"} {
		f, n, err := ParseFloat32([]byte(s), Options{})
		want, wantErr := strconv.ParseFloat(s, 32)
		assert.Equal(t, len(s), n, s)
		assert.Equal(t, math.Float32bits(float32(want)), math.Float32bits(f), s)
		assert.Equal(t, wantErr != nil, err != nil, s)
	}
}
