// Package meta implements the search engine.
//
// find.go contains the strategy dispatch and the Find methods.

package meta

import (
	"sync/atomic"

	"github.com/coregx/minire/greedy"
	"github.com/coregx/minire/prefilter"
	"github.com/coregx/minire/simd"
)

// Find returns the leftmost match in the haystack, or nil if no match.
//
// Example:
//
//	engine, _ := meta.Compile("hel.*")
//	match := engine.Find([]byte("  heloooo"))
//	if match != nil {
//	    println(match.Start()) // 2
//	}
func (e *Engine) Find(haystack []byte) *Match {
	return e.FindAt(haystack, 0)
}

// FindAt finds the leftmost match starting at or after position 'at'.
// Returns nil if no match is found.
//
// The haystack is not sliced, so '^' still refers to offset 0 and '$' to
// the end of the full haystack.
//
// Example:
//
//	engine, _ := meta.Compile("^test")
//	match := engine.FindAt([]byte("test test"), 0) // matches at 0
//	match = engine.FindAt([]byte("test test"), 5)  // nil
func (e *Engine) FindAt(haystack []byte, at int) *Match {
	start, end, found := e.FindIndicesAt(haystack, at)
	if !found {
		return nil
	}
	return NewMatch(start, end, haystack)
}

// FindIndicesAt returns the bounds of the leftmost match at or after 'at'
// without allocating a Match.
func (e *Engine) FindIndicesAt(haystack []byte, at int) (start, end int, found bool) {
	if at < 0 || at > len(haystack) {
		return -1, -1, false
	}
	return e.findIndicesAt(haystack, at, e.isASCII(haystack[at:]), nil)
}

// IsMatch returns true if the pattern matches anywhere in the haystack.
//
// Example:
//
//	engine, _ := meta.Compile("[abc]")
//	println(engine.IsMatch([]byte("d"))) // false
func (e *Engine) IsMatch(haystack []byte) bool {
	if e.alwaysMatches {
		return true
	}
	if e.strategy == UseLiteral {
		atomic.AddUint64(&e.stats.Searches, 1)
		if e.prefilter.Find(haystack, 0) >= 0 {
			atomic.AddUint64(&e.stats.PrefilterHits, 1)
			return true
		}
		return false
	}
	_, _, found := e.findIndicesAt(haystack, 0, e.isASCII(haystack), nil)
	return found
}

// isASCII reports whether the ASCII fast path may be used for b.
func (e *Engine) isASCII(b []byte) bool {
	return e.config.EnableASCIIFastPath && simd.IsASCII(b)
}

// findIndicesAt dispatches to the selected strategy.
// ascii must only be true when haystack[at:] is pure ASCII. tracker carries
// prefilter effectiveness across successive searches of one haystack; nil
// starts a fresh one.
func (e *Engine) findIndicesAt(haystack []byte, at int, ascii bool, tracker *prefilter.Tracker) (int, int, bool) {
	atomic.AddUint64(&e.stats.Searches, 1)

	switch e.strategy {
	case UseLiteral:
		return e.findLiteral(haystack, at)
	case UsePrefilter:
		if tracker == nil {
			tracker = e.newTracker()
		}
		return e.findPrefilter(haystack, at, ascii, tracker)
	default:
		// UseAnchored and UseScan: greedy.Scan pins anchored roots to 0.
		return e.findScan(haystack, at, ascii)
	}
}

// findScan tries every character offset from at.
func (e *Engine) findScan(haystack []byte, at int, ascii bool) (int, int, bool) {
	atomic.AddUint64(&e.stats.ScanSearches, 1)
	return greedy.Scan(e.root, haystack, at, ascii)
}

// findLiteral reports the next prefilter hit as the match. The prefilter is
// complete, so every hit is exactly a match of LiteralLen bytes.
func (e *Engine) findLiteral(haystack []byte, at int) (int, int, bool) {
	pos := e.prefilter.Find(haystack, at)
	if pos < 0 {
		return -1, -1, false
	}
	atomic.AddUint64(&e.stats.PrefilterHits, 1)
	return pos, pos + e.prefilter.LiteralLen(), true
}

// newTracker returns an effectiveness tracker for the engine's prefilter,
// or nil when the strategy does not use one.
func (e *Engine) newTracker() *prefilter.Tracker {
	if e.strategy != UsePrefilter {
		return nil
	}
	return prefilter.NewTrackerWithConfig(e.prefilter, e.config.Tracker)
}

// findPrefilter verifies prefilter candidates in order. Candidates are the
// only offsets where a required prefix starts, so the first confirmed one is
// the leftmost match. Once the tracker retires the prefilter, the rest of
// the haystack is scanned directly, for this and every later search that
// shares the tracker.
func (e *Engine) findPrefilter(haystack []byte, at int, ascii bool, tracker *prefilter.Tracker) (int, int, bool) {
	start := at
	for tracker.IsActive() {
		pos := tracker.Find(haystack, start)
		if pos < 0 {
			// A required prefix never matches empty, so there is no
			// end-of-input match to try.
			return -1, -1, false
		}
		if !tracker.IsActive() {
			atomic.AddUint64(&e.stats.PrefilterAbandoned, 1)
		}

		if n, ok := greedy.Match(e.root, haystack, pos, ascii); ok {
			tracker.ConfirmMatch()
			atomic.AddUint64(&e.stats.PrefilterHits, 1)
			return pos, pos + n, true
		}
		atomic.AddUint64(&e.stats.PrefilterMisses, 1)
		start = pos + greedy.Width(haystack, pos, ascii)
	}
	return e.findScan(haystack, start, ascii)
}
