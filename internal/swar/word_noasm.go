//go:build noasm

package swar

const nativeLoads = false

// Load returns b[0:8] as a little-endian word. Built with noasm it is the
// bytewise path.
func Load(b []byte) uint64 {
	return LoadBytewise(b)
}

// Store writes v into b[0:8], least significant byte first.
func Store(b []byte, v uint64) {
	StoreBytewise(b, v)
}
