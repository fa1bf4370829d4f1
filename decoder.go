package simdnum

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/biggeezerdevelopment/simdnum/internal/parser"
	"github.com/biggeezerdevelopment/simdnum/internal/scanner"
	"github.com/biggeezerdevelopment/simdnum/internal/swar"
)

var ErrUnsupportedType = errors.New("unsupported type")

// Value is one literal read by a Decoder. Text and the offsets in Number
// refer to storage the Decoder reuses, so they are only good until the next
// call to Next or Decode.
type Value struct {
	Text   []byte
	Number Number
}

// Float64 converts v to the nearest float64.
func (v Value) Float64() (float64, error) { return parser.Float64(v.Text, v.Number) }

// Float32 converts v to the nearest float32.
func (v Value) Float32() (float32, error) { return parser.Float32(v.Text, v.Number) }

// Int64 converts v to an int64.
func (v Value) Int64() (int64, error) { return parser.Int64(v.Text, v.Number) }

// Uint64 converts v to a uint64.
func (v Value) Uint64() (uint64, error) { return parser.Uint64(v.Text, v.Number) }

// Decoder reads a stream of literals separated by ASCII whitespace, ',' or
// ';'. Each literal is copied into a zero-padded buffer before scanning so the
// 8-digit batch path stays available right up to its last digit.
type Decoder struct {
	sc    *bufio.Scanner
	opts  Options
	buf   []byte
	count int
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, opts Options) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Split(scanner.SplitLiterals(opts))
	return &Decoder{
		sc:   sc,
		opts: opts,
		buf:  make([]byte, 0, 64),
	}
}

// Buffer sets the initial read buffer and the longest literal the Decoder
// accepts, as bufio.Scanner.Buffer does.
func (d *Decoder) Buffer(buf []byte, max int) {
	d.sc.Buffer(buf, max)
}

// Next returns the next literal, or io.EOF once the stream is exhausted.
func (d *Decoder) Next() (Value, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return Value{}, err
		}
		return Value{}, io.EOF
	}
	lit := d.sc.Bytes()
	d.count++

	d.buf = swar.PadTail(d.buf, lit)
	n := scanner.Scan(d.buf, d.opts)
	if !n.Valid {
		return Value{}, fmt.Errorf("literal %d %q: %w", d.count, lit, ErrInvalidNumber)
	}
	if n.LastMatch != len(lit) {
		return Value{}, fmt.Errorf("literal %d %q: %w", d.count, lit, ErrTrailingGarbage)
	}
	return Value{Text: d.buf[:len(lit)], Number: n}, nil
}

// Decode reads the next literal into v, which must be a *float64, *float32,
// *int64, *uint64 or *Number. A *Number receives offsets into storage that
// the next call overwrites.
func (d *Decoder) Decode(v interface{}) error {
	val, err := d.Next()
	if err != nil {
		return err
	}
	switch dst := v.(type) {
	case *float64:
		*dst, err = val.Float64()
	case *float32:
		*dst, err = val.Float32()
	case *int64:
		*dst, err = val.Int64()
	case *uint64:
		*dst, err = val.Uint64()
	case *Number:
		*dst = val.Number
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	if err != nil {
		return fmt.Errorf("literal %d %q: %w", d.count, val.Text, err)
	}
	return nil
}

// Count returns how many literals have been read so far.
func (d *Decoder) Count() int { return d.count }
