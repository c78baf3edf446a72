package greedy

import "github.com/coregx/minire/syntax"

// Scan performs the leftmost search from offset at.
//
// A start-anchored root is only tried at offset 0. Otherwise every character
// offset from at upward is tried in turn and the first success wins. The
// end-of-input offset is tried only when the root can match empty.
//
// Returns (start, end, true) if found, (-1, -1, false) otherwise.
func Scan(root *syntax.Node, haystack []byte, at int, ascii bool) (int, int, bool) {
	if at < 0 || at > len(haystack) {
		return -1, -1, false
	}

	if root.Op == syntax.OpStartAnchor {
		if at != 0 {
			return -1, -1, false
		}
		if n, ok := Match(root.Sub[0], haystack, 0, ascii); ok {
			return 0, n, true
		}
		return -1, -1, false
	}

	for pos := at; pos < len(haystack); pos += Width(haystack, pos, ascii) {
		if n, ok := Match(root, haystack, pos, ascii); ok {
			return pos, pos + n, true
		}
	}

	if root.Nullable() {
		if n, ok := Match(root, haystack, len(haystack), ascii); ok {
			return len(haystack), len(haystack) + n, true
		}
	}
	return -1, -1, false
}
