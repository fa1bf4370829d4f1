package scanner

import "fmt"

// Format selects which notations a literal may use.
type Format uint8

const (
	// FormatScientific accepts an exponent suffix. Without FormatFixed the
	// suffix is mandatory.
	FormatScientific Format = 1 << iota
	// FormatFixed accepts plain decimal notation.
	FormatFixed
	// FormatGeneral accepts both notations.
	FormatGeneral = FormatFixed | FormatScientific
)

func (f Format) String() string {
	switch f {
	case FormatFixed:
		return "fixed"
	case FormatScientific:
		return "scientific"
	case FormatGeneral:
		return "general"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat maps a format name back to its Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "fixed":
		return FormatFixed, nil
	case "scientific":
		return FormatScientific, nil
	case "general", "":
		return FormatGeneral, nil
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

// Rules selects the literal grammar.
type Rules uint8

const (
	// RulesStandard is the permissive general-purpose grammar.
	RulesStandard Rules = iota
	// RulesStrictInterchange is the grammar of interchange formats such as
	// JSON: no leading zeros, digits on both sides of the decimal point, no
	// bare decimal point after a sign.
	RulesStrictInterchange

	RulesJSON = RulesStrictInterchange
)

func (r Rules) String() string {
	switch r {
	case RulesStandard:
		return "standard"
	case RulesStrictInterchange:
		return "strict"
	}
	return fmt.Sprintf("Rules(%d)", uint8(r))
}

// ParseRules maps a rules name back to its Rules.
func ParseRules(s string) (Rules, error) {
	switch s {
	case "standard", "":
		return RulesStandard, nil
	case "strict", "json":
		return RulesStrictInterchange, nil
	}
	return 0, fmt.Errorf("unknown rules %q", s)
}

// Options configures a single Scan. The zero value scans general notation
// under the standard grammar with '.' as the decimal point.
type Options struct {
	Format Format
	Rules  Rules
	// PreferExactIntegers tracks up to 20 digits for literals that are pure
	// integers, so every uint64 survives the scan exactly.
	PreferExactIntegers bool
	// DecimalPoint separates the integer and fraction digits.
	DecimalPoint byte
}

func (o Options) normalize() Options {
	if o.Format == 0 {
		o.Format = FormatGeneral
	}
	if o.DecimalPoint == 0 {
		o.DecimalPoint = '.'
	}
	return o
}
