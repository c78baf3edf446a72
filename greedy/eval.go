// Package greedy implements the recursive, non-backtracking evaluator.
//
// Match tries a pattern tree against a prefix of the haystack starting at a
// byte offset and reports how many bytes were consumed. Repetitions are
// greedy and never give characters back: once a child of a chain has
// consumed input, that consumption is final even if a later child fails.
// This means a pattern like a.*b never matches "axxb", because .* takes the
// 'b' the rest of the chain needed.
//
// The evaluator only reads the tree, so a single tree may be evaluated from
// many goroutines at once.
package greedy

import (
	"unicode/utf8"

	"github.com/coregx/minire/syntax"
)

// Match attempts node against a prefix of haystack[at:].
//
// It returns the number of bytes consumed and true on success. A consumed
// character is one UTF-8 code point; invalid bytes decode as
// utf8.RuneError one byte at a time. When ascii is true the caller
// guarantees haystack is pure ASCII and every byte is one character.
func Match(node *syntax.Node, haystack []byte, at int, ascii bool) (int, bool) {
	e := evaluator{haystack: haystack, ascii: ascii}
	end, ok := e.eval(node, at)
	if !ok {
		return 0, false
	}
	return end - at, true
}

// evaluator carries the per-call cursor state. The tree is never mutated.
type evaluator struct {
	haystack []byte
	ascii    bool
}

// eval matches n at pos and returns the position after the match.
func (e *evaluator) eval(n *syntax.Node, pos int) (int, bool) {
	switch n.Op {
	case syntax.OpChar:
		r, size := e.decode(pos)
		if size == 0 || !n.Char.Matches(r) {
			return pos, false
		}
		return pos + size, true

	case syntax.OpCharClass:
		r, size := e.decode(pos)
		if size == 0 {
			return pos, false
		}
		for _, c := range n.Class {
			if c.Matches(r) {
				return pos + size, true
			}
		}
		return pos, false

	case syntax.OpChain, syntax.OpCaptureGroup:
		// Groups are transparent: children in order, captured text discarded.
		for _, sub := range n.Sub {
			next, ok := e.eval(sub, pos)
			if !ok {
				return pos, false
			}
			pos = next
		}
		return pos, true

	case syntax.OpQuantifier:
		return e.repeat(n, pos)

	case syntax.OpEndAnchor:
		return pos, pos == len(e.haystack)

	case syntax.OpStartAnchor:
		// The parser only produces this at the root, where the caller pins
		// the offset. Below the root it is its child.
		return e.eval(n.Sub[0], pos)

	default:
		return pos, false
	}
}

// repeat evaluates a quantifier. Repetition stops as soon as the child
// fails or succeeds without consuming input.
func (e *evaluator) repeat(n *syntax.Node, pos int) (int, bool) {
	child := n.Sub[0]

	switch n.Quant {
	case syntax.QuantMaybe:
		if next, ok := e.eval(child, pos); ok {
			return next, true
		}
		return pos, true

	case syntax.QuantMany:
		next, ok := e.eval(child, pos)
		if !ok {
			return pos, false
		}
		if next == pos {
			return pos, true
		}
		pos = next
	}

	for {
		next, ok := e.eval(child, pos)
		if !ok || next == pos {
			return pos, true
		}
		pos = next
	}
}

// decode returns the character at pos and its width in bytes, or size 0 at
// the end of the haystack.
func (e *evaluator) decode(pos int) (rune, int) {
	if pos >= len(e.haystack) {
		return 0, 0
	}
	b := e.haystack[pos]
	if e.ascii || b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(e.haystack[pos:])
}

// Width returns the byte width of the character starting at pos, the step
// between successive offsets of a leftmost scan. It returns 1 past the end.
func Width(haystack []byte, pos int, ascii bool) int {
	if ascii || pos >= len(haystack) || haystack[pos] < utf8.RuneSelf {
		return 1
	}
	_, size := utf8.DecodeRune(haystack[pos:])
	return size
}
