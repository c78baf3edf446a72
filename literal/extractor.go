package literal

import (
	"unicode/utf8"

	"github.com/coregx/minire/syntax"
)

// ExtractorConfig configures literal extraction limits.
//
// These limits prevent excessive extraction from patterns made of many
// character classes:
//   - MaxLiterals: caps the cross product of expanded classes
//   - MaxLiteralLen: caps the length of each literal
//   - MaxClassSize: classes with more members are not expanded
type ExtractorConfig struct {
	// MaxLiterals limits the number of alternative literals. Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the length of each literal in bytes. Default: 64.
	MaxLiteralLen int

	// MaxClassSize limits the size of character classes to expand.
	// [abc] expands to "a", "b", "c"; larger classes end extraction.
	// Default: 10.
	MaxClassSize int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor extracts required literal prefixes from a pattern tree.
//
// Extraction walks the top-level chain from the left and stops at the first
// element that does not force a specific character at its position:
//   - literal characters extend every literal
//   - small classes of literal characters multiply the set
//   - groups are walked transparently
//   - a '+' quantifier contributes its first, required, repetition and stops
//   - wildcards, escape classes, '*', '?' and anchors stop extraction
//
// The result is Complete when the whole pattern was consumed, in which case
// an occurrence of a literal is exactly a match.
//
// Example:
//
//	root, _ := syntax.Compile("[hH]ello.*", syntax.Options{})
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(root)
//	// prefixes = [hello, Hello], incomplete
type Extractor struct {
	config ExtractorConfig
}

// New creates a new extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes returns the literals one of which starts every match of
// root. It returns an empty Seq for start-anchored patterns, which are only
// ever tried at offset 0, and when no literal prefix exists.
func (e *Extractor) ExtractPrefixes(root *syntax.Node) *Seq {
	if root == nil || root.Op == syntax.OpStartAnchor {
		return NewSeq()
	}

	x := &extraction{config: e.config, lits: [][]byte{nil}}
	complete := x.extend(root)
	if len(x.lits[0]) == 0 {
		return NewSeq()
	}

	out := make([]Literal, len(x.lits))
	for i, b := range x.lits {
		out[i] = NewLiteral(b, complete)
	}
	return NewSeq(out...)
}

type extraction struct {
	config ExtractorConfig
	lits   [][]byte
}

// extend appends the characters n forces at the current position.
// It returns false when extraction stopped inside n.
func (x *extraction) extend(n *syntax.Node) bool {
	switch n.Op {
	case syntax.OpChain, syntax.OpCaptureGroup:
		for _, sub := range n.Sub {
			if !x.extend(sub) {
				return false
			}
		}
		return true
	case syntax.OpChar:
		if n.Char.Kind != syntax.CharLiteral {
			return false
		}
		return x.cross([]rune{n.Char.Lit})
	case syntax.OpCharClass:
		runes, ok := classRunes(n.Class)
		if !ok || len(runes) == 0 || len(runes) > x.config.MaxClassSize {
			return false
		}
		return x.cross(runes)
	case syntax.OpQuantifier:
		if n.Quant == syntax.QuantMany {
			x.extend(n.Sub[0])
		}
		return false
	default:
		return false
	}
}

// cross appends each rune to each literal. It leaves the literals untouched
// and returns false when the result would exceed the configured limits.
//
// utf8.RuneError is never extracted: the evaluator decodes invalid input
// bytes to it, so its encoding is not a reliable prefix.
func (x *extraction) cross(runes []rune) bool {
	if len(x.lits)*len(runes) > x.config.MaxLiterals {
		return false
	}
	longest := 0
	for _, lit := range x.lits {
		if len(lit) > longest {
			longest = len(lit)
		}
	}
	for _, r := range runes {
		if r == utf8.RuneError || longest+utf8.RuneLen(r) > x.config.MaxLiteralLen {
			return false
		}
	}

	next := make([][]byte, 0, len(x.lits)*len(runes))
	for _, lit := range x.lits {
		for _, r := range runes {
			b := make([]byte, len(lit), len(lit)+utf8.UTFMax)
			copy(b, lit)
			next = append(next, utf8.AppendRune(b, r))
		}
	}
	x.lits = next
	return true
}

// classRunes returns the distinct members of a class made only of literal
// characters.
func classRunes(class []syntax.Char) ([]rune, bool) {
	runes := make([]rune, 0, len(class))
	for _, c := range class {
		if c.Kind != syntax.CharLiteral {
			return nil, false
		}
		if !containsRune(runes, c.Lit) {
			runes = append(runes, c.Lit)
		}
	}
	return runes, true
}

func containsRune(runes []rune, r rune) bool {
	for _, x := range runes {
		if x == r {
			return true
		}
	}
	return false
}
