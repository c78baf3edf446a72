package syntax

import (
	"fmt"
	"strconv"
)

// CharKind selects the membership rule of a Char.
type CharKind uint8

const (
	CharLiteral  CharKind = iota // one specific rune
	CharWildcard                 // '.', any rune
	CharDigit                    // \d
	CharNotDigit                 // \D
	CharSpace                    // \s
	CharNotSpace                 // \S
	CharWord                     // \w
	CharNotWord                  // \W
	CharNewline                  // \n
	CharTab                      // \t
	CharNull                     // \0
)

var charKindNames = [...]string{
	CharLiteral:  "literal",
	CharWildcard: "wildcard",
	CharDigit:    "digit",
	CharNotDigit: "not digit",
	CharSpace:    "space",
	CharNotSpace: "not space",
	CharWord:     "word",
	CharNotWord:  "not word",
	CharNewline:  "newline",
	CharTab:      "tab",
	CharNull:     "null",
}

// String returns the class name used in diagnostics.
func (k CharKind) String() string {
	if int(k) < len(charKindNames) {
		return charKindNames[k]
	}
	return fmt.Sprintf("CharKind(%d)", k)
}

// escapeKinds maps the letter after a backslash to its class.
var escapeKinds = map[rune]CharKind{
	'd': CharDigit,
	'D': CharNotDigit,
	's': CharSpace,
	'S': CharNotSpace,
	'w': CharWord,
	'W': CharNotWord,
	'n': CharNewline,
	't': CharTab,
	'0': CharNull,
}

var escapeLetters = [...]rune{
	CharDigit:    'd',
	CharNotDigit: 'D',
	CharSpace:    's',
	CharNotSpace: 'S',
	CharWord:     'w',
	CharNotWord:  'W',
	CharNewline:  'n',
	CharTab:      't',
	CharNull:     '0',
}

// Char is a single-character matching rule.
// Lit is only meaningful for CharLiteral.
type Char struct {
	Kind CharKind
	Lit  rune
}

// Literal returns a Char matching exactly r.
func Literal(r rune) Char {
	return Char{Kind: CharLiteral, Lit: r}
}

// Wildcard returns a Char matching any rune.
func Wildcard() Char {
	return Char{Kind: CharWildcard}
}

// Matches reports whether r satisfies the rule.
// Classes are ASCII-only: \d is [0-9], \w is [0-9A-Za-z_] and \s is
// [\t\n\v\f\r ].
func (c Char) Matches(r rune) bool {
	switch c.Kind {
	case CharLiteral:
		return r == c.Lit
	case CharWildcard:
		return true
	case CharDigit:
		return isDigit(r)
	case CharNotDigit:
		return !isDigit(r)
	case CharSpace:
		return isSpace(r)
	case CharNotSpace:
		return !isSpace(r)
	case CharWord:
		return isWord(r)
	case CharNotWord:
		return !isWord(r)
	case CharNewline:
		return r == '\n'
	case CharTab:
		return r == '\t'
	case CharNull:
		return r == 0
	default:
		return false
	}
}

// String renders the rule the way it is written in a pattern, quoted.
func (c Char) String() string {
	switch c.Kind {
	case CharLiteral:
		return strconv.QuoteRune(c.Lit)
	case CharWildcard:
		return "."
	default:
		if int(c.Kind) < len(escapeLetters) {
			return `\` + string(escapeLetters[c.Kind])
		}
		return fmt.Sprintf("Char(%d)", c.Kind)
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isWord(r rune) bool {
	return isDigit(r) || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r == '_'
}
