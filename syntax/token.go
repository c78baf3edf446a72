// Package syntax turns pattern text into an abstract syntax tree.
//
// Compilation happens in two stages:
//   - Tokenize scans the pattern into positioned tokens
//   - Parse consumes the tokens in one left-to-right pass and builds a Node tree
//
// The supported grammar is intentionally small: literal characters, the '.'
// wildcard, the escape classes \d \D \s \S \w \W \n \t \0, bracketed character
// sets, non-nested groups, the greedy quantifiers * + ? and the ^ and $
// anchors. There is no alternation and no counted repetition.
//
// Example:
//
//	root, err := syntax.Compile(`^[hH]ello,? world`, syntax.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(root) // (start (chain ['h' 'H'] 'e' 'l' 'l' 'o' (? ',') ' ' 'w' 'o' 'r' 'l' 'd'))
package syntax

import (
	"fmt"
	"strconv"
)

// TokenKind classifies a Token.
type TokenKind uint8

const (
	// TokenChar is a character atom: literal, wildcard or escape class.
	TokenChar TokenKind = iota

	// TokenQuantifier is one of * + ?.
	TokenQuantifier

	// TokenAnchor is a structural marker: ^ $ [ ] ( ).
	TokenAnchor
)

// Quantifier is a greedy repetition operator.
type Quantifier uint8

const (
	// QuantAny is '*': zero or more repetitions.
	QuantAny Quantifier = iota

	// QuantMany is '+': one or more repetitions.
	QuantMany

	// QuantMaybe is '?': zero or one repetition.
	QuantMaybe
)

// String returns the operator as written in a pattern.
func (q Quantifier) String() string {
	switch q {
	case QuantAny:
		return "*"
	case QuantMany:
		return "+"
	case QuantMaybe:
		return "?"
	default:
		return fmt.Sprintf("Quantifier(%d)", q)
	}
}

// Anchor is a structural token: position assertions and delimiters.
type Anchor uint8

const (
	AnchorStart      Anchor = iota // ^
	AnchorEnd                      // $
	AnchorClassOpen                // [
	AnchorClassClose               // ]
	AnchorGroupOpen                // (
	AnchorGroupClose               // )
)

var anchorNames = [...]string{
	AnchorStart:      "start anchor",
	AnchorEnd:        "end anchor",
	AnchorClassOpen:  "class open",
	AnchorClassClose: "class close",
	AnchorGroupOpen:  "group open",
	AnchorGroupClose: "group close",
}

// String returns a human-readable anchor name.
func (a Anchor) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return fmt.Sprintf("Anchor(%d)", a)
}

// Token is a single lexical element of a pattern.
//
// Pos is the code-point index of the token in the pattern. For escapes it
// is the position of the backslash. Src is the rune the token was written
// as (the escaped character for escapes), which lets the parser turn
// structural tokens back into plain characters inside a bracketed set.
type Token struct {
	Kind   TokenKind
	Pos    int
	Src    rune
	Char   Char       // valid when Kind == TokenChar
	Quant  Quantifier // valid when Kind == TokenQuantifier
	Anchor Anchor     // valid when Kind == TokenAnchor
}

// IsAnchor reports whether t is the anchor token a.
func (t Token) IsAnchor(a Anchor) bool {
	return t.Kind == TokenAnchor && t.Anchor == a
}

// AsChar returns the character atom t stands for inside a bracketed set.
// Literal and escape class tokens are returned as is; a wildcard or any
// other token becomes the literal character it was written as.
func (t Token) AsChar() Char {
	if t.Kind == TokenChar && t.Char.Kind != CharWildcard {
		return t.Char
	}
	return Literal(t.Src)
}

// String formats the token for diagnostics, e.g. `'$' (end anchor) at position 3`.
func (t Token) String() string {
	var desc string
	switch t.Kind {
	case TokenChar:
		desc = t.Char.String() + " (" + t.Char.Kind.String() + ")"
	case TokenQuantifier:
		desc = strconv.QuoteRune(t.Src) + " (quantifier)"
	case TokenAnchor:
		desc = strconv.QuoteRune(t.Src) + " (" + t.Anchor.String() + ")"
	default:
		desc = fmt.Sprintf("Token(%d)", t.Kind)
	}
	return desc + " at position " + strconv.Itoa(t.Pos)
}
