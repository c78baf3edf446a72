package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. An empty needle matches at 0.
//
// The search scans for the rarest byte of the needle with Memchr and
// verifies the full needle around each candidate.
//
// Example:
//
//	pos := simd.Memmem([]byte("aaaaaabaaaa"), []byte("aab")) // 4
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	switch {
	case needleLen == 0:
		return 0
	case needleLen > haystackLen:
		return -1
	case needleLen == 1:
		return Memchr(haystack, needle[0])
	}

	rareIdx := RarestByteIndex(needle)
	rare := needle[rareIdx]

	// The rare byte of a match can only sit in this window.
	searchStart := rareIdx
	last := haystackLen - needleLen + rareIdx
	for searchStart <= last {
		pos := Memchr(haystack[searchStart:last+1], rare)
		if pos == -1 {
			return -1
		}
		candidate := searchStart + pos
		start := candidate - rareIdx
		if bytes.Equal(haystack[start:start+needleLen], needle) {
			return start
		}
		searchStart = candidate + 1
	}
	return -1
}

// RarestByteIndex returns the index of the byte of needle with the lowest
// ByteRank, preferring later positions on ties. needle must not be empty.
func RarestByteIndex(needle []byte) int {
	best := len(needle) - 1
	for i := len(needle) - 2; i >= 0; i-- {
		if ByteRank(needle[i]) < ByteRank(needle[best]) {
			best = i
		}
	}
	return best
}

// ByteRank estimates how common b is in text; lower is rarer.
//
// The ranks are coarse buckets from English prose and source code: space
// and lowercase vowels are the most common, control bytes and non-ASCII
// bytes the rarest.
func ByteRank(b byte) byte {
	switch {
	case b == ' ':
		return 255
	case b == 'e' || b == 't' || b == 'a' || b == 'o' || b == 'i' || b == 'n':
		return 230
	case b >= 'a' && b <= 'z':
		switch b {
		case 'j', 'q', 'x', 'z':
			return 40
		case 'k', 'v', 'w', 'y', 'b', 'g', 'p':
			return 120
		}
		return 180
	case b >= '0' && b <= '9':
		return 140
	case b >= 'A' && b <= 'Z':
		switch b {
		case 'J', 'Q', 'X', 'Z':
			return 15
		}
		return 90
	case b == '\n' || b == '\t':
		return 150
	case b == '.' || b == ',' || b == '_' || b == '-' || b == '/' || b == '"' || b == '(' || b == ')':
		return 130
	case b < 0x20 || b == 0x7f:
		return 5
	case b >= 0x80:
		return 10
	default:
		return 60
	}
}
