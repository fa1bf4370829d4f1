// Package swar holds the word-at-a-time primitives the number scanner is built on:
// canonical little-endian loads and stores of 8-byte chunks, and branch-free
// tests and conversions over eight ASCII digits packed into one uint64.
package swar

import "math/bits"

// WordSize is the number of input bytes covered by one word.
const WordSize = 8

// LoadBytewise assembles b[0:8] into a word one byte at a time, byte 0 in the
// least significant position. It never reinterprets memory, so it behaves the
// same on every target and is the reference Load is checked against.
func LoadBytewise(b []byte) uint64 {
	_ = b[7]
	var v uint64
	for i := 0; i < WordSize; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

// StoreBytewise writes v into b[0:8] one byte at a time, least significant
// byte first.
func StoreBytewise(b []byte, v uint64) {
	_ = b[7]
	for i := 0; i < WordSize; i++ {
		b[i] = byte(v)
		v >>= 8
	}
}

// byteswap reverses the byte order of a natively loaded word.
func byteswap(v uint64) uint64 {
	return bits.ReverseBytes64(v)
}
