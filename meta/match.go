package meta

// Match is a successful search result: the half-open byte range
// [Start(), End()) of the haystack it was found in.
//
// The haystack is referenced, not copied.
//
// Example:
//
//	engine, _ := meta.Compile("hel.*")
//	m := engine.Find([]byte("  heloooo"))
//	println(m.Start(), m.End(), m.String()) // 2 9 heloooo
type Match struct {
	start    int
	end      int
	haystack []byte
}

// NewMatch creates a Match of haystack[start:end].
func NewMatch(start, end int, haystack []byte) *Match {
	return &Match{
		start:    start,
		end:      end,
		haystack: haystack,
	}
}

// Start returns the inclusive start offset.
func (m *Match) Start() int {
	return m.start
}

// End returns the exclusive end offset.
func (m *Match) End() int {
	return m.end
}

// Len returns the length of the match in bytes.
func (m *Match) Len() int {
	return m.end - m.start
}

// Bytes returns a view of the matched bytes in the original haystack.
func (m *Match) Bytes() []byte {
	if m.start < 0 || m.end > len(m.haystack) || m.start > m.end {
		return nil
	}
	return m.haystack[m.start:m.end]
}

// String returns a copy of the matched text.
func (m *Match) String() string {
	return string(m.Bytes())
}

// IsEmpty reports whether the match consumed nothing, as "a*" does on "b".
func (m *Match) IsEmpty() bool {
	return m.start == m.end
}
