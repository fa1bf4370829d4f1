package swar

import (
	"golang.org/x/sys/cpu"
)

// HostInfo describes the host properties the word loads depend on.
type HostInfo struct {
	BigEndian   bool `json:"big_endian"`
	NativeLoads bool `json:"native_loads"`
	AVX2        bool `json:"avx2"`
	SSE42       bool `json:"sse42"`
	ASIMD       bool `json:"asimd"`
}

// Host reports the byte order and vector features of the running machine.
func Host() HostInfo {
	return HostInfo{
		BigEndian:   cpu.IsBigEndian,
		NativeLoads: nativeLoads,
		AVX2:        cpu.X86.HasAVX2,
		SSE42:       cpu.X86.HasSSE42,
		ASIMD:       cpu.ARM64.HasASIMD,
	}
}
