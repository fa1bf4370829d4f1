package scanner

// Character classes used to find literal boundaries in a buffer.
const (
	classOther      uint8 = 0
	classDigit      uint8 = 1 << 0 // 0-9
	classSign       uint8 = 1 << 1 // + -
	classPoint      uint8 = 1 << 2 // .
	classExponent   uint8 = 1 << 3 // e E
	classWhitespace uint8 = 1 << 4 // space \t \n \v \f \r
	classSeparator  uint8 = 1 << 5 // , ;
)

// charClass is indexed by byte value. Bytes at or above 0x80 are classOther.
var charClass = func() (t [256]uint8) {
	for c := '0'; c <= '9'; c++ {
		t[c] = classDigit
	}
	t['+'] = classSign
	t['-'] = classSign
	t['.'] = classPoint
	t['e'] = classExponent
	t['E'] = classExponent
	for _, c := range []byte{' ', '\t', '\n', '\v', '\f', '\r'} {
		t[c] = classWhitespace
	}
	t[','] = classSeparator
	t[';'] = classSeparator
	return t
}()

// isBoundary reports whether c may separate two literals. A byte equal to
// the decimal point never does.
func isBoundary(c, dp byte) bool {
	return charClass[c]&(classWhitespace|classSeparator) != 0 && c != dp
}

// canStartLiteral reports whether c may begin a literal.
func canStartLiteral(c, dp byte) bool {
	return charClass[c]&(classDigit|classSign) != 0 || c == dp
}
