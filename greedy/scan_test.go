package greedy

import (
	"sync"
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		pattern    string
		haystack   string
		at         int
		start, end int
		ok         bool
	}{
		{"abc", "abc", 0, 0, 3, true},
		{"^abc", "abc", 0, 0, 3, true},
		{"^abc", "xabc", 0, -1, -1, false},
		{"^abc", "abc", 1, -1, -1, false},
		{"abc$", "abc", 0, 0, 3, true},
		{"abc$", "abcx", 0, -1, -1, false},
		{"abc$", "abcabc", 0, 3, 6, true},
		{"he*llo", "hllo", 0, 0, 4, true},
		{"he*llo", "heeello", 0, 0, 7, true},
		{"he+llo", "hllo", 0, -1, -1, false},
		{"he+llo", "heeello", 0, 0, 7, true},
		{"he?llo", "heeello", 0, -1, -1, false},
		{"[abc]", "d", 0, -1, -1, false},
		{"[abc]", "a", 0, 0, 1, true},
		{"hel.*", "  heloooo", 0, 2, 9, true},
		{"o", "foo", 2, 2, 3, true},
		{"", "", 0, 0, 0, true},
		{"", "abc", 0, 0, 0, true},
		{"", "abc", 3, 3, 3, true},
		{"$", "abc", 0, 3, 3, true},
		{"a*$", "bbaa", 0, 2, 4, true},
		{"x*", "abc", 0, 0, 0, true},
		{"^$", "", 0, 0, 0, true},
		{"^$", "a", 0, -1, -1, false},
		{"ü", "Grüße", 0, 2, 4, true},
		{"e$", "Grüße", 0, 6, 7, true},
		{"abc", "ab", 5, -1, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.haystack, func(t *testing.T) {
			root := mustCompile(t, tt.pattern)
			start, end, ok := Scan(root, []byte(tt.haystack), tt.at, false)
			if start != tt.start || end != tt.end || ok != tt.ok {
				t.Errorf("Scan(%s, %q, %d) = (%d, %d, %v), want (%d, %d, %v)",
					root, tt.haystack, tt.at, start, end, ok, tt.start, tt.end, tt.ok)
			}
		})
	}
}

// TestScanLiteralFindsItself checks that a pattern without metacharacters
// matches its own text in full.
func TestScanLiteralFindsItself(t *testing.T) {
	for _, lit := range []string{"a", "hello", "hello world", "naïve café", "x-y_z:1"} {
		root := mustCompile(t, lit)
		start, end, ok := Scan(root, []byte(lit), 0, false)
		if !ok || start != 0 || end != len(lit) {
			t.Errorf("Scan(%q, %q) = (%d, %d, %v), want (0, %d, true)", lit, lit, start, end, ok, len(lit))
		}
	}
}

func TestScanConcurrent(t *testing.T) {
	root := mustCompile(t, `\w+@\w+`)
	haystack := []byte("mail me at someone@example or not")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				start, end, ok := Scan(root, haystack, 0, true)
				if !ok || string(haystack[start:end]) != "someone@example" {
					t.Errorf("Scan = (%d, %d, %v)", start, end, ok)
					return
				}
			}
		}()
	}
	wg.Wait()
}
