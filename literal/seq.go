// Package literal provides types and operations for representing literal
// byte sequences extracted from compiled patterns.
//
// The primary use case is prefiltering: when every match of a pattern must
// begin with one of a few known byte strings (e.g. "hello" for /hello.*/,
// or "hello"/"Hello" for /[hH]ello/), the search can jump straight to
// occurrences of those strings instead of trying every offset.
//
// Key concepts:
//   - A Literal is a concrete byte sequence that every match starts with
//   - A Seq is a set of alternative literals
package literal

import "bytes"

// Literal represents a literal byte sequence extracted from a pattern.
// The Complete flag indicates whether this literal is the entire match
// (true) or just a required prefix of it (false).
//
// Example:
//   - Pattern /hello/ → Literal{[]byte("hello"), true}
//   - Pattern /hello.*/ → Literal{[]byte("hello"), false}
type Literal struct {
	// Bytes contains the actual literal byte sequence.
	Bytes []byte

	// Complete indicates whether finding this literal is finding the match.
	Complete bool
}

// NewLiteral creates a new Literal from the given byte sequence and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{
		Bytes:    b,
		Complete: complete,
	}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
// Format: "literal{bytes, complete=true/false}"
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq represents a set of alternative literals, one of which starts every match.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("hello"), true),
//	    literal.NewLiteral([]byte("Hello"), true),
//	)
//	fmt.Println(seq.Len()) // 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence holds no literals.
// A nil sequence is empty.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// IsComplete returns true if the sequence is non-empty and every literal
// in it is complete.
func (s *Seq) IsComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// MinLen returns the length of the shortest literal, or 0 for an empty sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	minLength := len(s.literals[0].Bytes)
	for _, lit := range s.literals[1:] {
		if l := len(lit.Bytes); l < minLength {
			minLength = l
		}
	}
	return minLength
}

// UniformLen returns the common length of all literals and true, or
// (0, false) when lengths differ or the sequence is empty.
func (s *Seq) UniformLen() (int, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	n := len(s.literals[0].Bytes)
	for _, lit := range s.literals[1:] {
		if len(lit.Bytes) != n {
			return 0, false
		}
	}
	return n, true
}

// LongestCommonPrefix returns the longest byte string every literal starts with.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("hello"), false),
//	    literal.NewLiteral([]byte("help"), false),
//	)
//	fmt.Printf("%s\n", seq.LongestCommonPrefix()) // hel
func (s *Seq) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return nil
	}
	prefix := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		prefix = commonPrefix(prefix, lit.Bytes)
		if len(prefix) == 0 {
			return nil
		}
	}
	return prefix
}

// FirstBytes returns the distinct first bytes of all literals in order of
// first appearance.
func (s *Seq) FirstBytes() []byte {
	var out []byte
	for _, lit := range s.literals {
		if len(lit.Bytes) == 0 {
			continue
		}
		if bytes.IndexByte(out, lit.Bytes[0]) < 0 {
			out = append(out, lit.Bytes[0])
		}
	}
	return out
}

// String lists the literals for diagnostics.
func (s *Seq) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(s.literals[i].String())
	}
	buf.WriteByte(']')
	return buf.String()
}

// commonPrefix returns the longest common prefix of a and b.
func commonPrefix(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
