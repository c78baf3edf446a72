package simd

import "encoding/binary"

// IsASCII reports whether every byte of data is below 0x80.
//
// The evaluator uses this once per search to decide whether one byte is
// one character, which lets it skip UTF-8 decoding entirely.
func IsASCII(data []byte) bool {
	n := len(data)
	idx := 0
	for ; idx+8 <= n; idx += 8 {
		if binary.LittleEndian.Uint64(data[idx:])&hi8 != 0 {
			return false
		}
	}
	for ; idx < n; idx++ {
		if data[idx] >= 0x80 {
			return false
		}
	}
	return true
}
