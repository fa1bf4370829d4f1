//go:build !noasm

package swar

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// nativeLoads reports whether Load and Store go through host-order word
// accesses rather than the bytewise path.
const nativeLoads = true

// Load returns b[0:8] as a word whose least significant byte is b[0],
// whatever the host byte order. It panics if len(b) < 8; callers check the
// remaining length before every batch read.
func Load(b []byte) uint64 {
	v := binary.NativeEndian.Uint64(b)
	if cpu.IsBigEndian {
		v = byteswap(v)
	}
	return v
}

// Store writes v into b[0:8] so that b[0] receives the least significant
// byte. It panics if len(b) < 8.
func Store(b []byte, v uint64) {
	if cpu.IsBigEndian {
		v = byteswap(v)
	}
	binary.NativeEndian.PutUint64(b, v)
}
