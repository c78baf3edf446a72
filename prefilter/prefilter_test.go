package prefilter

import (
	"strings"
	"testing"

	"github.com/coregx/minire/literal"
	"github.com/coregx/minire/syntax"
)

// Test helper: create a literal sequence from strings sharing one complete flag
func makeSeq(complete bool, lits ...string) *literal.Seq {
	literals := make([]literal.Literal, len(lits))
	for i, lit := range lits {
		literals[i] = literal.NewLiteral([]byte(lit), complete)
	}
	return literal.NewSeq(literals...)
}

// Test helper: build the prefilter for a pattern the way the engine does
func buildFor(t *testing.T, pattern string) Prefilter {
	t.Helper()
	root, err := syntax.Compile(pattern, syntax.Options{})
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(root)
	return NewBuilder(prefixes).Build()
}

func TestSelectPrefilter_Empty(t *testing.T) {
	if pf := NewBuilder(nil).Build(); pf != nil {
		t.Errorf("expected nil prefilter for nil sequence, got %T", pf)
	}
	if pf := NewBuilder(literal.NewSeq()).Build(); pf != nil {
		t.Errorf("expected nil prefilter for empty sequence, got %T", pf)
	}
}

func TestSelectPrefilter(t *testing.T) {
	tests := []struct {
		name     string
		seq      *literal.Seq
		want     string
		complete bool
		length   int
	}{
		{"single byte", makeSeq(true, "a"), `memchr("a")`, true, 1},
		{"single byte incomplete", makeSeq(false, "a"), `memchr("a")`, false, 0},
		{"substring", makeSeq(true, "hello"), `memmem("hello")`, true, 5},
		{"two bytes", makeSeq(true, "a", "b"), `memchr2("ab")`, true, 1},
		{"three bytes", makeSeq(false, "x", "y", "z"), `memchr3("xyz")`, false, 0},
		{"four bytes", makeSeq(true, "a", "b", "c", "d"), "aho-corasick(4 literals)", true, 1},
		{"shared prefix", makeSeq(true, "abcd", "abce"), `memmem("abc")`, false, 0},
		{"equal length", makeSeq(true, "hello", "Hello"), "aho-corasick(2 literals)", true, 5},
		{"mixed length", makeSeq(true, "ab", "cde"), `memchr2("ac")`, false, 0},
		{"mixed length shared first byte", makeSeq(false, "ab", "abc"), `memchr("a")`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := NewBuilder(tt.seq).Build()
			if pf == nil {
				t.Fatal("expected a prefilter, got nil")
			}
			if got := pf.Name(); got != tt.want {
				t.Errorf("Name() = %s, want %s", got, tt.want)
			}
			if pf.IsComplete() != tt.complete {
				t.Errorf("IsComplete() = %v, want %v", pf.IsComplete(), tt.complete)
			}
			if pf.LiteralLen() != tt.length {
				t.Errorf("LiteralLen() = %d, want %d", pf.LiteralLen(), tt.length)
			}
			if pf.HeapBytes() <= 0 {
				t.Errorf("HeapBytes() = %d, want > 0", pf.HeapBytes())
			}
		})
	}
}

func TestSelectPrefilter_TooManyFirstBytes(t *testing.T) {
	seq := makeSeq(false, "a", "bc", "def", "ghij")
	if pf := NewBuilder(seq).Build(); pf != nil {
		t.Errorf("expected nil prefilter, got %s", pf.Name())
	}
}

func TestPrefilterFind(t *testing.T) {
	tests := []struct {
		pattern  string
		haystack string
		start    int
		want     int
	}{
		{"hello", "say hello", 0, 4},
		{"hello", "say hello", 5, -1},
		{"[hH]ello", "say Hello", 0, 4},
		{"[hH]ello", "hello Hello", 1, 6},
		{"[ab][cd]", "xxbdxx", 0, 2},
		{"a.*", "bbba", 0, 3},
		{"[xyz]1", "---z1", 0, 3},
		{"[abcd]", "zzzzd", 0, 4},
		{"café", "un café", 0, 3},
		{"hello", "", 0, -1},
		{"hello", "hello", -1, -1},
		{"hello", "hello", 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.haystack, func(t *testing.T) {
			pf := buildFor(t, tt.pattern)
			if pf == nil {
				t.Fatalf("no prefilter for %q", tt.pattern)
			}
			if got := pf.Find([]byte(tt.haystack), tt.start); got != tt.want {
				t.Errorf("%s.Find(%q, %d) = %d, want %d", pf.Name(), tt.haystack, tt.start, got, tt.want)
			}
		})
	}
}

func TestPrefilterNone(t *testing.T) {
	for _, pattern := range []string{"", ".", `\d+`, "^abc", "a*b", "$"} {
		if pf := buildFor(t, pattern); pf != nil {
			t.Errorf("pattern %q: expected no prefilter, got %s", pattern, pf.Name())
		}
	}
}

// TestPrefilterCandidatesAreLeftmost checks that every offset where a prefix
// literal starts is reported, in order, so no leftmost match is skipped.
func TestPrefilterCandidatesAreLeftmost(t *testing.T) {
	tests := []struct {
		pattern  string
		haystack string
		prefixes []string
	}{
		{"[hH]ello", "hello Hello hellO HELLO hello", []string{"hello", "Hello"}},
		{"[ab]c", "acbcbaccab", []string{"ac", "bc"}},
		{"[ab]x[cd]", "axcbxdaxdbxc", []string{"axc", "axd", "bxc", "bxd"}},
		{"[aé]x", "éxaxéax", []string{"ax", "éx"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			pf := buildFor(t, tt.pattern)
			if pf == nil {
				t.Fatalf("no prefilter for %q", tt.pattern)
			}

			var want []int
			for i := range tt.haystack {
				for _, p := range tt.prefixes {
					if strings.HasPrefix(tt.haystack[i:], p) {
						want = append(want, i)
						break
					}
				}
			}

			haystack := []byte(tt.haystack)
			var got []int
			for start := 0; start < len(haystack); {
				pos := pf.Find(haystack, start)
				if pos == -1 {
					break
				}
				got = append(got, pos)
				start = pos + 1
			}

			// An incomplete prefilter may report extra candidates, but it must
			// report every real one.
			for _, w := range want {
				if !containsInt(got, w) {
					t.Errorf("%s missed candidate %d (got %v)", pf.Name(), w, got)
				}
			}
			for i := 1; i < len(got); i++ {
				if got[i] <= got[i-1] {
					t.Errorf("%s candidates not increasing: %v", pf.Name(), got)
				}
			}
		})
	}
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func BenchmarkPrefilterFind(b *testing.B) {
	haystack := []byte(strings.Repeat("lorem ipsum dolor sit amet ", 400) + "Hello")
	pfs := map[string]Prefilter{
		"memchr":      newMemchrPrefilter([]byte{'H'}, false),
		"memmem":      newMemmemPrefilter([]byte("Hello"), true),
		"ahocorasick": NewBuilder(makeSeq(true, "hello", "Hello")).Build(),
	}

	for name, pf := range pfs {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(haystack)))
			for i := 0; i < b.N; i++ {
				pf.Find(haystack, 0)
			}
		})
	}
}
