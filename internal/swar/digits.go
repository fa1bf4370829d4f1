package swar

const (
	asciiZeros = 0x3030303030303030
	// Adding 0x46 pushes any lane above '9' into its top bit.
	digitCeiling = 0x4646464646464646
	laneTopBits  = 0x8080808080808080

	pairMask = 0x000000FF000000FF
	mul1     = 0x000F424000000064 // 100 + (1000000 << 32)
	mul2     = 0x0000271000000001 // 1 + (10000 << 32)
)

// IsEightDigits reports whether every byte lane of w is an ASCII digit.
//
// The addition sets a lane's top bit for bytes above '9', the subtraction
// for bytes below '0'. Cross-lane carries only start in a lane that is
// already out of range, so the lowest offending lane is always flagged.
func IsEightDigits(w uint64) bool {
	return ((w+digitCeiling)|(w-asciiZeros))&laneTopBits == 0
}

// CombineEightDigits returns the decimal value of eight ASCII digits packed
// in w with the most significant digit in the lowest byte. The result is only
// meaningful when IsEightDigits(w) holds.
func CombineEightDigits(w uint64) uint32 {
	w -= asciiZeros
	w = w*10 + w>>8 // each even lane now holds a two-digit value
	w = ((w&pairMask)*mul1 + ((w>>16)&pairMask)*mul2) >> 32
	return uint32(w)
}

// IsMadeOfEightDigits reports whether b[0:8] are all ASCII digits.
func IsMadeOfEightDigits(b []byte) bool {
	return IsEightDigits(Load(b))
}

// ParseEightDigits returns the value of the eight ASCII digits in b[0:8].
func ParseEightDigits(b []byte) uint32 {
	return CombineEightDigits(Load(b))
}
