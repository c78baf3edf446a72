package meta

import (
	"github.com/coregx/minire/prefilter"
	"github.com/coregx/minire/syntax"
)

// Strategy represents where the engine tries the evaluator.
//
// Strategy selection is automatic based on the pattern tree and the
// prefix literals extracted from it.
type Strategy int

const (
	// UseScan tries every character offset from left to right.
	// Selected for:
	//   - Patterns without a required literal prefix (\d+, .*x, a*b)
	//   - When EnablePrefilter is false in config
	UseScan Strategy = iota

	// UseAnchored tries offset 0 only.
	// Selected for:
	//   - Patterns starting with '^'
	UseAnchored

	// UseLiteral reports prefilter hits as matches without evaluation.
	// Selected for:
	//   - Patterns that are fixed strings, possibly with small literal
	//     classes (hello, [hH]ello, a\.b)
	UseLiteral

	// UsePrefilter verifies prefilter candidates with the evaluator and
	// falls back to UseScan when candidates rarely match.
	// Selected for:
	//   - Patterns with a required literal prefix (hello.*, [ab]c\d, a+b)
	UsePrefilter
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseScan:
		return "UseScan"
	case UseAnchored:
		return "UseAnchored"
	case UseLiteral:
		return "UseLiteral"
	case UsePrefilter:
		return "UsePrefilter"
	default:
		return "Unknown"
	}
}

// SelectStrategy chooses the strategy for root given the prefilter built from
// its prefix literals (nil when none could be built).
//
// Example:
//
//	root, _ := syntax.Compile("hello.*", syntax.Options{})
//	strategy := meta.SelectStrategy(root, pf, meta.DefaultConfig())
//	// strategy == UsePrefilter
func SelectStrategy(root *syntax.Node, pf prefilter.Prefilter, config Config) Strategy {
	if root.Op == syntax.OpStartAnchor {
		return UseAnchored
	}
	if !config.EnablePrefilter || pf == nil {
		return UseScan
	}
	if pf.IsComplete() && pf.LiteralLen() > 0 {
		return UseLiteral
	}
	return UsePrefilter
}
