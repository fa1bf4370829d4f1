package swar

// PadTail copies src into dst (reusing its storage when large enough) and
// appends WordSize zero bytes. The scanner only takes the 8-byte path while
// at least WordSize bytes remain, so scanning the padded copy keeps that path
// open up to the last digit of src; a zero byte ends every digit run and is
// never a sign, exponent marker or decimal point, so the scan stops at
// len(src) exactly where it would have stopped on src itself.
func PadTail(dst, src []byte) []byte {
	need := len(src) + WordSize
	if cap(dst) < need {
		dst = make([]byte, 0, need)
	}
	dst = append(dst[:0], src...)
	var zero [WordSize]byte
	return append(dst, zero[:]...)
}
