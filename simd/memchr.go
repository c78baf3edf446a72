// Package simd provides fast byte search primitives used by the prefilters.
//
// Search runs through one of two paths selected at package initialization:
//   - CPUs with vector units (SSE4.2/AVX2 on x86-64, ASIMD on arm64) use the
//     runtime's vectorized bytes.IndexByte for long inputs
//   - everything else, and short inputs, use a pure Go SWAR (SIMD Within A
//     Register) scan that processes 8 bytes per step
package simd

import (
	"bytes"
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// hasVector reports whether the runtime's IndexByte runs on vector
// instructions on this CPU.
var hasVector = cpu.X86.HasAVX2 || cpu.X86.HasSSE42 || cpu.ARM64.HasASIMD

// vectorThreshold is the input length from which the vector path pays off.
const vectorThreshold = 32

const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o') // 4
func Memchr(haystack []byte, needle byte) int {
	if hasVector && len(haystack) >= vectorThreshold {
		return bytes.IndexByte(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first instance of needle1 or needle2,
// or -1 if neither is present.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	return memchrSWAR(haystack, needle1, needle2, needle2)
}

// Memchr3 returns the index of the first instance of any of the three
// needles, or -1 if none is present.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	return memchrSWAR(haystack, needle1, needle2, needle3)
}

// memchrGeneric is the single-needle SWAR scan.
func memchrGeneric(haystack []byte, needle byte) int {
	return memchrSWAR(haystack, needle, needle, needle)
}

// memchrSWAR scans 8 bytes at a time. Each needle is broadcast into a
// uint64 mask; XOR turns matching bytes into zero bytes, and the
// Hacker's Delight formula (v - lo8) & ^v & hi8 flags them. The lowest
// flagged byte is always exact, so the trailing zero count gives the index.
func memchrSWAR(haystack []byte, n1, n2, n3 byte) int {
	n := len(haystack)
	idx := 0

	if n >= 8 {
		m1 := uint64(n1) * lo8
		m2 := uint64(n2) * lo8
		m3 := uint64(n3) * lo8

		for ; idx+8 <= n; idx += 8 {
			chunk := binary.LittleEndian.Uint64(haystack[idx:])
			found := zeroBytes(chunk^m1) | zeroBytes(chunk^m2) | zeroBytes(chunk^m3)
			if found != 0 {
				return idx + bits.TrailingZeros64(found)/8
			}
		}
	}

	for ; idx < n; idx++ {
		b := haystack[idx]
		if b == n1 || b == n2 || b == n3 {
			return idx
		}
	}
	return -1
}

func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}
