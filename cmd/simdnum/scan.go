package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/biggeezerdevelopment/simdnum"
)

var errInvalidLiterals = errors.New("some literals are invalid")

type Scan struct {
	Rules        string `short:"r" long:"rules" env:"SIMDNUM_RULES" default:"standard" choice:"standard" choice:"strict" choice:"json" description:"literal grammar"`
	Format       string `short:"f" long:"format" env:"SIMDNUM_FORMAT" default:"general" choice:"general" choice:"fixed" choice:"scientific" description:"accepted notations"`
	DecimalPoint string `short:"d" long:"decimal-point" env:"SIMDNUM_DECIMAL_POINT" default:"." description:"single-byte decimal separator"`
	ExactInts    bool   `short:"i" long:"exact-ints" env:"SIMDNUM_EXACT_INTS" description:"keep all 20 digits of integer literals that fit a uint64"`
}

// record is the JSON form of one scanned literal.
type record struct {
	Literal       string `json:"literal"`
	Valid         bool   `json:"valid"`
	Negative      bool   `json:"negative,omitempty"`
	Mantissa      uint64 `json:"mantissa,omitempty"`
	Exponent      int64  `json:"exponent,omitempty"`
	Integer       string `json:"integer,omitempty"`
	Fraction      string `json:"fraction,omitempty"`
	Rest          string `json:"rest,omitempty"`
	Is64BitInt    bool   `json:"is_64bit_int,omitempty"`
	TooManyDigits bool   `json:"too_many_digits,omitempty"`
	Float         string `json:"float,omitempty"`
	Error         string `json:"error,omitempty"`
}

func (x *Scan) options() (simdnum.Options, error) {
	var opts simdnum.Options
	rules, err := simdnum.ParseRules(x.Rules)
	if err != nil {
		return opts, err
	}
	format, err := simdnum.ParseFormat(x.Format)
	if err != nil {
		return opts, err
	}
	if len(x.DecimalPoint) != 1 {
		return opts, fmt.Errorf("decimal point must be a single byte, got %q", x.DecimalPoint)
	}
	opts.Rules = rules
	opts.Format = format
	opts.DecimalPoint = x.DecimalPoint[0]
	opts.PreferExactIntegers = x.ExactInts
	return opts, nil
}

func (x *Scan) Execute(args []string) error {
	opts, err := x.options()
	if err != nil {
		return err
	}
	log.Debugf("options: format=%s rules=%s decimal point=%q exact ints=%t",
		opts.Format, opts.Rules, opts.DecimalPoint, opts.PreferExactIntegers)

	enc := json.NewEncoder(stdout)
	invalid := 0
	emit := func(lit []byte) error {
		rec := describe(lit, opts)
		if !rec.Valid {
			invalid++
			log.Infof("rejected %q", lit)
		}
		return enc.Encode(rec)
	}

	if len(args) > 0 {
		for _, arg := range args {
			if err := emit([]byte(arg)); err != nil {
				return err
			}
		}
	} else {
		sc := bufio.NewScanner(stdin)
		sc.Split(simdnum.SplitLiterals(opts))
		for sc.Scan() {
			if err := emit(sc.Bytes()); err != nil {
				return err
			}
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}

	if invalid > 0 {
		log.Warningf("%d invalid literal(s)", invalid)
		return errInvalidLiterals
	}
	return nil
}

func describe(lit []byte, opts simdnum.Options) record {
	rec := record{Literal: string(lit)}
	n := simdnum.Scan(lit, opts)
	if !n.Valid {
		rec.Error = simdnum.ErrInvalidNumber.Error()
		return rec
	}
	rec.Valid = true
	rec.Negative = n.Negative
	rec.Mantissa = n.Mantissa
	rec.Exponent = n.Exponent
	rec.Integer = string(n.Integer.Bytes(lit))
	rec.Fraction = string(n.Fraction.Bytes(lit))
	rec.Rest = string(lit[n.LastMatch:])
	rec.Is64BitInt = n.Is64BitInt
	rec.TooManyDigits = n.TooManyDigits

	f, err := simdnum.Float64(lit, n)
	rec.Float = strconv.FormatFloat(f, 'g', -1, 64)
	if err != nil {
		rec.Error = err.Error()
	}
	return rec
}
