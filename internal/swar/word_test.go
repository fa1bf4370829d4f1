package swar

import (
	"encoding/binary"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLittleEndian(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  uint64
	}{
		{"ascending", []byte{1, 2, 3, 4, 5, 6, 7, 8}, 0x0807060504030201},
		{"digits", []byte("12345678"), 0x3837363534333231},
		{"zeros", make([]byte, 8), 0},
		{"high bytes", []byte{0xFF, 0, 0, 0, 0, 0, 0, 0x80}, 0x80000000000000FF},
		{"longer slice", []byte("abcdefghij"), 0x6867666564636261},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Load(tt.input), "Load")
			assert.Equal(t, tt.want, LoadBytewise(tt.input), "LoadBytewise")
		})
	}
}

func TestLoadMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	buf := make([]byte, 64)
	for iter := 0; iter < 1000; iter++ {
		for i := range buf {
			buf[i] = byte(rng.UintN(256))
		}
		// Every offset, so unaligned loads are covered.
		for off := 0; off+WordSize <= len(buf); off++ {
			b := buf[off:]
			want := binary.LittleEndian.Uint64(b)
			if got := Load(b); got != want {
				t.Fatalf("Load(% x) = %#x, want %#x", b[:WordSize], got, want)
			}
			if got := LoadBytewise(b); got != want {
				t.Fatalf("LoadBytewise(% x) = %#x, want %#x", b[:WordSize], got, want)
			}
		}
	}
}

func TestStoreMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for iter := 0; iter < 1000; iter++ {
		v := rng.Uint64()
		var want, native, bytewise [WordSize + 3]byte
		off := iter % 4

		binary.LittleEndian.PutUint64(want[off:], v)
		Store(native[off:], v)
		StoreBytewise(bytewise[off:], v)

		require.Equal(t, want, native, "Store(%#x) at offset %d", v, off)
		require.Equal(t, want, bytewise, "StoreBytewise(%#x) at offset %d", v, off)
		require.Equal(t, v, Load(native[off:]))
	}
}

func TestStoreLeavesNeighbours(t *testing.T) {
	buf := []byte("xxxxxxxxxxxx")
	Store(buf[2:], 0x3837363534333231)
	assert.Equal(t, "xx12345678xx", string(buf))
}

func TestShortSlicePanics(t *testing.T) {
	short := []byte("1234567")
	assert.Panics(t, func() { Load(short) })
	assert.Panics(t, func() { LoadBytewise(short) })
	assert.Panics(t, func() { Store(short, 0) })
	assert.Panics(t, func() { StoreBytewise(short, 0) })
}

func TestByteswap(t *testing.T) {
	assert.Equal(t, uint64(0x0102030405060708), byteswap(0x0807060504030201))
	assert.Equal(t, uint64(0xFF), byteswap(0xFF00000000000000))
}

func TestHost(t *testing.T) {
	info := Host()
	assert.Equal(t, nativeLoads, info.NativeLoads)
	var probe [WordSize]byte
	binary.NativeEndian.PutUint64(probe[:], 1)
	assert.Equal(t, probe[0] == 0, info.BigEndian)
}
