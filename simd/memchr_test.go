package simd

import (
	"bytes"
	"fmt"
	"testing"
)

// TestMemchrBasic tests basic functionality and edge cases
func TestMemchrBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		needle   byte
		want     int
	}{
		{"empty_haystack", []byte{}, 'a', -1},
		{"single_match", []byte{'a'}, 'a', 0},
		{"single_no_match", []byte{'a'}, 'b', -1},
		{"first_position", []byte("hello"), 'h', 0},
		{"middle_position", []byte("hello"), 'l', 2},
		{"last_position", []byte("hello"), 'o', 4},
		{"multiple_returns_first", []byte("hello world"), 'o', 4},
		{"null_byte_present", []byte{0, 1, 2, 3}, 0, 0},
		{"null_byte_absent", []byte{1, 2, 3, 4}, 0, -1},
		{"high_byte_0xff", []byte{1, 2, 255, 4}, 255, 2},
		{"longer_found", []byte("the quick brown fox jumps over the lazy dog"), 'q', 4},
		{"longer_last_char", []byte("the quick brown fox jumps over the lazy dog"), 'g', 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Memchr(tt.haystack, tt.needle)
			if got != tt.want {
				t.Errorf("Memchr(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
			if generic := memchrGeneric(tt.haystack, tt.needle); generic != tt.want {
				t.Errorf("memchrGeneric(%q, %q) = %d, want %d", tt.haystack, tt.needle, generic, tt.want)
			}
		})
	}
}

// TestMemchrSizes checks every position around the 8-byte chunk boundaries
// against bytes.IndexByte.
func TestMemchrSizes(t *testing.T) {
	sizes := []int{1, 7, 8, 9, 15, 16, 17, 31, 32, 33, 64, 65, 257}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			haystack := bytes.Repeat([]byte{'.'}, size)
			for pos := 0; pos < size; pos++ {
				haystack[pos] = 'x'
				if got := memchrGeneric(haystack, 'x'); got != pos {
					t.Fatalf("memchrGeneric: needle at %d, got %d", pos, got)
				}
				if got := Memchr(haystack, 'x'); got != pos {
					t.Fatalf("Memchr: needle at %d, got %d", pos, got)
				}
				haystack[pos] = '.'
			}
			if got := Memchr(haystack, 'x'); got != -1 {
				t.Errorf("Memchr on haystack without needle = %d, want -1", got)
			}
		})
	}
}

// TestMemchrBorrowDoesNotReportEarlyMatch pins the SWAR edge case where a
// 0x01 byte directly above a zero byte produces a borrow.
func TestMemchrBorrowDoesNotReportEarlyMatch(t *testing.T) {
	haystack := []byte{'b', 'b', 'b', 'a', 'b', 'b', 'b', 'b', 'b', 'b'}
	if got := memchrGeneric(haystack, 'a'); got != 3 {
		t.Errorf("memchrGeneric = %d, want 3", got)
	}
	haystack = []byte{1, 0, 1, 1, 1, 1, 1, 1, 1}
	if got := memchrGeneric(haystack, 0); got != 1 {
		t.Errorf("memchrGeneric = %d, want 1", got)
	}
}

func TestMemchr2And3(t *testing.T) {
	tests := []struct {
		haystack string
		n1, n2   byte
		n3       byte
		want2    int
		want3    int
	}{
		{"", 'a', 'b', 'c', -1, -1},
		{"xxxxbxxxxa", 'a', 'b', 'c', 4, 4},
		{"xxxxxxxxxxxxc", 'a', 'b', 'c', -1, 12},
		{"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzza", 'a', 'b', 'c', 41, 41},
		{"hello", 'o', 'l', 'h', 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.haystack, func(t *testing.T) {
			if got := Memchr2([]byte(tt.haystack), tt.n1, tt.n2); got != tt.want2 {
				t.Errorf("Memchr2 = %d, want %d", got, tt.want2)
			}
			if got := Memchr3([]byte(tt.haystack), tt.n1, tt.n2, tt.n3); got != tt.want3 {
				t.Errorf("Memchr3 = %d, want %d", got, tt.want3)
			}
		})
	}
}

func TestIsASCII(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"hello", true},
		{"hello, world and more", true},
		{"héllo", false},
		{"0123456789abcdé", false},
		{"\x7f\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsASCII([]byte(tt.input)); got != tt.want {
				t.Errorf("IsASCII(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func BenchmarkMemchr(b *testing.B) {
	haystack := bytes.Repeat([]byte("abcdefgh"), 512)
	haystack[len(haystack)-1] = 'z'

	b.SetBytes(int64(len(haystack)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Memchr(haystack, 'z')
	}
}
