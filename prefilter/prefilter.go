// Package prefilter provides fast candidate filtering for pattern search
// using extracted literal prefixes.
//
// A prefilter quickly skips offsets of the haystack at which no match can
// start. It only ever reports offsets where one of the required prefix
// literals begins, and it reports them in increasing order, so verifying the
// candidates in turn finds the same leftmost match as trying every offset.
//
// The package selects a strategy based on the extracted literals:
//   - Single byte → memchr
//   - Single substring → memmem (rare byte heuristic)
//   - Up to three distinct single bytes → memchr2/memchr3
//   - Several literals of equal length → Aho-Corasick automaton, or memmem
//     on their shared prefix when it is long enough
//   - Literals of mixed length → memchr2/memchr3 on their first bytes
//
// Example usage:
//
//	root, _ := syntax.Compile("[hH]ello", syntax.Options{})
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(root)
//	pf := prefilter.NewBuilder(prefixes).Build()
//	pos := pf.Find([]byte("say Hello"), 0) // 4
package prefilter

import (
	"strconv"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/minire/literal"
	"github.com/coregx/minire/simd"
)

// minSharedPrefix is the shortest shared prefix worth a memmem search in
// place of a multi-literal automaton.
const minSharedPrefix = 3

// Prefilter is used to quickly find candidate match positions before running
// the evaluator.
type Prefilter interface {
	// Find returns the index of the first candidate match starting at or after
	// 'start', or -1 if no candidate is found.
	//
	// A candidate is a position where one of the prefix literals begins.
	// This does NOT guarantee a match unless IsComplete() is true.
	Find(haystack []byte, start int) int

	// IsComplete returns true if a candidate is guaranteed to be a match of
	// exactly LiteralLen() bytes.
	IsComplete() bool

	// LiteralLen returns the match length when IsComplete() is true, 0 otherwise.
	LiteralLen() int

	// HeapBytes returns the number of bytes of heap memory used by this prefilter.
	HeapBytes() int

	// Name describes the strategy for diagnostics, e.g. `memmem("hello")`.
	Name() string
}

// Builder constructs the best prefilter from extracted prefix literals.
type Builder struct {
	prefixes *literal.Seq
}

// NewBuilder creates a new prefilter builder. prefixes may be nil.
func NewBuilder(prefixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes}
}

// Build constructs the best prefilter for the literals.
//
// Returns nil if no effective prefilter can be built.
func (b *Builder) Build() Prefilter {
	return selectPrefilter(b.prefixes)
}

func selectPrefilter(seq *literal.Seq) Prefilter {
	if seq.IsEmpty() {
		return nil
	}
	complete := seq.IsComplete()

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if len(lit.Bytes) == 1 {
			return newMemchrPrefilter(lit.Bytes, complete)
		}
		return newMemmemPrefilter(lit.Bytes, complete)
	}

	if n, ok := seq.UniformLen(); ok {
		if n == 1 && seq.Len() <= 3 {
			return newMemchrPrefilter(seq.FirstBytes(), complete)
		}
		if lcp := seq.LongestCommonPrefix(); len(lcp) >= minSharedPrefix {
			return newMemmemPrefilter(lcp, false)
		}
		if pf, err := newAhoCorasickPrefilter(seq, n, complete); err == nil {
			return pf
		}
	}

	// Mixed lengths: an automaton could report a longer literal's start after
	// a shorter literal that starts later, so fall back to first bytes.
	if first := seq.FirstBytes(); len(first) <= 3 {
		return newMemchrPrefilter(first, false)
	}
	return nil
}

// memchrPrefilter searches for up to three distinct bytes.
//
// Example patterns:
//
//	/a.*/     → search for 'a'
//	/[xyz]\d/ → search for 'x', 'y' or 'z'
type memchrPrefilter struct {
	needles  []byte
	complete bool
}

func newMemchrPrefilter(needles []byte, complete bool) Prefilter {
	return &memchrPrefilter{
		needles:  append([]byte(nil), needles...),
		complete: complete,
	}
}

// Find implements Prefilter.Find.
func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	var idx int
	switch len(p.needles) {
	case 1:
		idx = simd.Memchr(haystack[start:], p.needles[0])
	case 2:
		idx = simd.Memchr2(haystack[start:], p.needles[0], p.needles[1])
	default:
		idx = simd.Memchr3(haystack[start:], p.needles[0], p.needles[1], p.needles[2])
	}
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memchrPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memchrPrefilter) HeapBytes() int {
	return len(p.needles)
}

// Name implements Prefilter.Name.
func (p *memchrPrefilter) Name() string {
	name := "memchr"
	if len(p.needles) > 1 {
		name += strconv.Itoa(len(p.needles))
	}
	return name + "(" + strconv.Quote(string(p.needles)) + ")"
}

// memmemPrefilter searches for a single substring.
//
// Example patterns:
//
//	/hello/    → search for "hello"
//	/prefix.*/ → search for "prefix"
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

// newMemmemPrefilter copies needle to prevent aliasing.
func newMemmemPrefilter(needle []byte, complete bool) Prefilter {
	return &memmemPrefilter{
		needle:   append([]byte(nil), needle...),
		complete: complete,
	}
}

// Find implements Prefilter.Find.
func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	idx := simd.Memmem(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memmemPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memmemPrefilter) HeapBytes() int {
	return len(p.needle)
}

// Name implements Prefilter.Name.
func (p *memmemPrefilter) Name() string {
	return "memmem(" + strconv.Quote(string(p.needle)) + ")"
}

// ahoCorasickPrefilter searches for many literals of one length at once.
//
// Equal lengths matter: the automaton reports the match that ends first,
// and with equal lengths that is also the match that starts first.
//
// Example patterns:
//
//	/[hH]ello/      → search for "hello" and "Hello"
//	/[ab][cd]ef.*/  → search for "acef", "adef", "bcef", "bdef"
type ahoCorasickPrefilter struct {
	automaton *ahocorasick.Automaton
	count     int
	length    int
	complete  bool
}

func newAhoCorasickPrefilter(seq *literal.Seq, length int, complete bool) (Prefilter, error) {
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &ahoCorasickPrefilter{
		automaton: auto,
		count:     seq.Len(),
		length:    length,
		complete:  complete,
	}, nil
}

// Find implements Prefilter.Find.
func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}

	m := p.automaton.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete implements Prefilter.IsComplete.
func (p *ahoCorasickPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *ahoCorasickPrefilter) LiteralLen() int {
	if p.complete {
		return p.length
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
// Reports the literal bytes fed to the automaton; its tables are opaque.
func (p *ahoCorasickPrefilter) HeapBytes() int {
	return p.count * p.length
}

// Name implements Prefilter.Name.
func (p *ahoCorasickPrefilter) Name() string {
	return "aho-corasick(" + strconv.Itoa(p.count) + " literals)"
}
