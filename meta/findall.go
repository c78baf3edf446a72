// Package meta implements the search engine.
//
// findall.go contains FindAll and Count.

package meta

import "github.com/coregx/minire/greedy"

// FindAllIndices returns the bounds of successive non-overlapping matches.
//
// If n > 0, at most n matches are returned. If n <= 0, all matches are.
// The results slice is reused if provided (pass nil for fresh allocation).
//
// After an empty match the search resumes one character later. An empty
// match directly after a non-empty one is skipped, so "a*" on "ab" yields
// [[0 1] [2 2]].
func (e *Engine) FindAllIndices(haystack []byte, n int, results [][2]int) [][2]int {
	if results == nil {
		// Start-anchored patterns match at most once.
		initCap := 1
		if !e.IsStartAnchored() {
			initCap = len(haystack)/100 + 1
			if initCap > 256 {
				initCap = 256
			}
		}
		results = make([][2]int, 0, initCap)
	} else {
		results = results[:0]
	}

	e.each(haystack, func(start, end int) bool {
		results = append(results, [2]int{start, end})
		return n <= 0 || len(results) < n
	})
	return results
}

// Count returns the number of non-overlapping matches in the haystack.
// If n > 0, counts at most n matches. If n < 0, counts all matches.
//
// Example:
//
//	engine, _ := meta.Compile(`\d+`)
//	count := engine.Count([]byte("1 2 3 4 5"), -1)
//	// count == 5
func (e *Engine) Count(haystack []byte, n int) int {
	if n == 0 {
		return 0
	}

	count := 0
	e.each(haystack, func(_, _ int) bool {
		count++
		return n < 0 || count < n
	})
	return count
}

// each calls yield for successive matches until yield returns false or the
// haystack is exhausted. The ASCII check runs once for the whole haystack,
// and one prefilter tracker judges the candidates of every search.
func (e *Engine) each(haystack []byte, yield func(start, end int) bool) {
	ascii := e.isASCII(haystack)
	tracker := e.newTracker()
	pos := 0
	lastNonEmptyEnd := -1

	for pos <= len(haystack) {
		start, end, found := e.findIndicesAt(haystack, pos, ascii, tracker)
		if !found {
			return
		}

		//nolint:gocritic // badCond: checking an empty match at lastNonEmptyEnd
		if start == end && start == lastNonEmptyEnd {
			pos = start + greedy.Width(haystack, start, ascii)
			continue
		}

		if !yield(start, end) {
			return
		}

		switch {
		case start == end:
			pos = end + greedy.Width(haystack, end, ascii)
		default:
			lastNonEmptyEnd = end
			pos = end
		}
	}
}
