// Package minire provides a small greedy pattern matcher for Go.
//
// Patterns support literal characters, the wildcard '.', escape classes
// (\d \D \s \S \w \W \n \t \0), character classes [...], groups (...),
// the quantifiers * + ?, and the anchors ^ and $.
//
// Matching is greedy and never backtracks: a repetition keeps every
// character it consumed even when the rest of the pattern then fails. As a
// result a.*b does not match "axxb", since .* takes the 'b'. In exchange,
// a search costs at most the input length times the pattern size.
//
// Basic usage:
//
//	re, err := minire.Compile(`he+llo`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m := re.Find("say heeello")
//	fmt.Println(m.Matched, m.Start, m.End, m.Text) // true 4 11 heeello
//
//	if re.IsMatch("hello") {
//	    fmt.Println("matched!")
//	}
//
// Advanced usage:
//
//	config := minire.DefaultConfig()
//	config.StrictDelimiters = true // "[abc" is an error
//	re, err := minire.CompileWithConfig("[abc]", config)
//
// Offsets are byte offsets into the input. One character is one UTF-8
// code point.
package minire

import (
	"strings"

	"github.com/coregx/minire/meta"
)

// Regex represents a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := minire.MustCompile(`hello`)
//	if re.MatchString("hello world") {
//	    println("matched!")
//	}
type Regex struct {
	engine *meta.Engine
}

// Error is returned by Compile for an invalid pattern. Its message is the
// message of the underlying syntax error, and errors.Is reports
// syntax.ErrUnexpectedToken or syntax.ErrBadEscape through it.
type Error = meta.CompileError

// Match is the result of a search. The zero value means no match.
type Match struct {
	// Matched reports whether the pattern was found.
	Matched bool

	// Start is the byte offset where the match begins.
	Start int

	// End is the byte offset just past the match.
	End int

	// Text is the matched substring.
	Text string
}

// Compile compiles a pattern.
//
// Returns an error if the pattern is invalid.
//
// Example:
//
//	re, err := minire.Compile(`\d\d-\d\d`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// Example:
//
//	var version = minire.MustCompile(`v\d+\.\d+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("minire: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := minire.DefaultConfig()
//	config.EnablePrefilter = false
//	re, err := minire.CompileWithConfig("[hH]ello", config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Regex{engine: engine}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// metachars are the characters with a meaning in patterns.
const metachars = `\$^.*+?[](){}|`

// QuoteMeta returns a pattern matching the literal text s.
//
// Example:
//
//	escaped := minire.QuoteMeta("1+1=2?")
//	// escaped = `1\+1=2\?`
func QuoteMeta(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(metachars, s[i]) >= 0 {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(metachars, s[i]) >= 0 {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

// IsMatch reports whether text contains any match of the pattern.
//
// Example:
//
//	re := minire.MustCompile("^abc")
//	re.IsMatch("abc")  // true
//	re.IsMatch("xabc") // false
func (r *Regex) IsMatch(text string) bool {
	return r.engine.IsMatch([]byte(text))
}

// Match reports whether the byte slice b contains any match of the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether the string s contains any match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.IsMatch(s)
}

// Find returns the leftmost match in text. The result has Matched set to
// false when there is none.
//
// Example:
//
//	re := minire.MustCompile("hel.*")
//	m := re.Find("  heloooo")
//	// m == Match{Matched: true, Start: 2, End: 9, Text: "heloooo"}
func (r *Regex) Find(text string) Match {
	start, end, found := r.engine.FindIndicesAt([]byte(text), 0)
	if !found {
		return Match{}
	}
	return Match{
		Matched: true,
		Start:   start,
		End:     end,
		Text:    text[start:end],
	}
}

// FindBytes returns a slice holding the text of the leftmost match in b.
// Returns nil if no match is found.
func (r *Regex) FindBytes(b []byte) []byte {
	match := r.engine.Find(b)
	if match == nil {
		return nil
	}
	return match.Bytes()
}

// FindIndex returns a two-element slice of integers defining the location of
// the leftmost match in b. The match is at b[loc[0]:loc[1]].
// Returns nil if no match is found.
//
// Example:
//
//	re := minire.MustCompile(`\d+`)
//	loc := re.FindIndex([]byte("age: 42"))
//	println(loc[0], loc[1]) // 5, 7
func (r *Regex) FindIndex(b []byte) []int {
	start, end, found := r.engine.FindIndicesAt(b, 0)
	if !found {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex is like FindIndex for a string.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindAll returns successive non-overlapping matches of the pattern in text.
// If n > 0, it returns at most n matches. If n < 0, it returns all matches.
// After an empty match the search resumes one character later.
//
// Example:
//
//	re := minire.MustCompile(`\d+`)
//	matches := re.FindAll("1 22 333", -1)
//	// matches[1] == Match{Matched: true, Start: 2, End: 4, Text: "22"}
func (r *Regex) FindAll(text string, n int) []Match {
	if n == 0 {
		return nil
	}

	indices := r.engine.FindAllIndices([]byte(text), n, nil)
	if len(indices) == 0 {
		return nil
	}

	matches := make([]Match, len(indices))
	for i, idx := range indices {
		matches[i] = Match{
			Matched: true,
			Start:   idx[0],
			End:     idx[1],
			Text:    text[idx[0]:idx[1]],
		}
	}
	return matches
}

// FindAllString returns the text of successive matches in s.
// If n > 0, it returns at most n matches. If n < 0, it returns all matches.
func (r *Regex) FindAllString(s string, n int) []string {
	matches := r.FindAll(s, n)
	if matches == nil {
		return nil
	}

	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.Text
	}
	return result
}

// FindAllIndex returns the locations of successive matches in b as
// [start, end] pairs.
// If n > 0, it returns at most n matches. If n < 0, it returns all matches.
func (r *Regex) FindAllIndex(b []byte, n int) [][]int {
	if n == 0 {
		return nil
	}

	pairs := r.engine.FindAllIndices(b, n, nil)
	if len(pairs) == 0 {
		return nil
	}

	indices := make([][]int, len(pairs))
	for i, p := range pairs {
		indices[i] = []int{p[0], p[1]}
	}
	return indices
}

// FindAllStringIndex is like FindAllIndex for a string.
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	return r.FindAllIndex([]byte(s), n)
}

// Count returns the number of non-overlapping matches of the pattern in b.
// If n > 0, counts at most n matches. If n < 0, counts all matches.
//
// Example:
//
//	re := minire.MustCompile(`\d+`)
//	count := re.Count([]byte("1 2 3 4 5"), -1)
//	// count == 5
func (r *Regex) Count(b []byte, n int) int {
	return r.engine.Count(b, n)
}

// CountString is like Count for a string.
func (r *Regex) CountString(s string, n int) int {
	return r.Count([]byte(s), n)
}

// ReplaceAllLiteral returns a copy of src with every match replaced by repl.
//
// Example:
//
//	re := minire.MustCompile(`\d+`)
//	result := re.ReplaceAllLiteral([]byte("age: 42"), []byte("XX"))
//	// result = []byte("age: XX")
func (r *Regex) ReplaceAllLiteral(src, repl []byte) []byte {
	return r.ReplaceAllFunc(src, func([]byte) []byte { return repl })
}

// ReplaceAllLiteralString is like ReplaceAllLiteral for strings.
func (r *Regex) ReplaceAllLiteralString(src, repl string) string {
	return string(r.ReplaceAllLiteral([]byte(src), []byte(repl)))
}

// ReplaceAllFunc returns a copy of src in which every match has been
// replaced by the return value of repl applied to the matched bytes.
func (r *Regex) ReplaceAllFunc(src []byte, repl func([]byte) []byte) []byte {
	pairs := r.engine.FindAllIndices(src, -1, nil)

	result := make([]byte, 0, len(src))
	lastEnd := 0
	for _, p := range pairs {
		result = append(result, src[lastEnd:p[0]]...)
		result = append(result, repl(src[p[0]:p[1]])...)
		lastEnd = p[1]
	}
	return append(result, src[lastEnd:]...)
}

// ReplaceAllStringFunc is like ReplaceAllFunc for strings.
//
// Example:
//
//	re := minire.MustCompile(`[aeiou]`)
//	result := re.ReplaceAllStringFunc("hello", strings.ToUpper)
//	// result = "hEllO"
func (r *Regex) ReplaceAllStringFunc(src string, repl func(string) string) string {
	pairs := r.engine.FindAllIndices([]byte(src), -1, nil)
	if len(pairs) == 0 {
		return src
	}

	var sb strings.Builder
	sb.Grow(len(src))
	lastEnd := 0
	for _, p := range pairs {
		sb.WriteString(src[lastEnd:p[0]])
		sb.WriteString(repl(src[p[0]:p[1]]))
		lastEnd = p[1]
	}
	sb.WriteString(src[lastEnd:])
	return sb.String()
}

// Split slices s into substrings separated by matches of the pattern.
//
// The count determines the number of substrings to return:
//
//	n > 0: at most n substrings; the last substring will be the unsplit remainder.
//	n == 0: the result is nil (zero substrings)
//	n < 0: all substrings
//
// Example:
//
//	re := minire.MustCompile(`\s*,\s*`)
//	parts := re.Split("a , b,c", -1)
//	// parts = ["a", "b", "c"]
func (r *Regex) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}
	if s == "" && r.engine.Pattern() != "" {
		return []string{""}
	}

	pairs := r.engine.FindAllIndices([]byte(s), -1, nil)
	result := make([]string, 0, len(pairs)+1)
	beg, end := 0, 0
	for _, p := range pairs {
		if n > 0 && len(result) == n-1 {
			break
		}
		end = p[0]
		// An empty match at the very start does not split.
		if p[1] != 0 {
			result = append(result, s[beg:end])
		}
		beg = p[1]
	}
	if end != len(s) {
		result = append(result, s[beg:])
	}
	return result
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.engine.Pattern()
}

// Strategy returns the search strategy selected for the pattern.
func (r *Regex) Strategy() meta.Strategy {
	return r.engine.Strategy()
}

// Stats returns a snapshot of the engine's execution statistics.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}

// ResetStats resets execution statistics to zero.
func (r *Regex) ResetStats() {
	r.engine.ResetStats()
}

// Engine returns the underlying engine, for diagnostics such as printing
// the parsed tree or the extracted prefix literals.
func (r *Regex) Engine() *meta.Engine {
	return r.engine
}
