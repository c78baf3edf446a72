package syntax

import "strings"

// metachars are the characters that become plain literals when escaped.
const metachars = `\$^.*+?[](){}|`

// Tokenize converts pattern into tokens, strictly left to right.
//
// The only failure is a malformed escape: a backslash followed by a
// character that is neither a metacharacter nor one of d D s S w W n t 0,
// or a backslash at the end of the pattern.
func Tokenize(pattern string) ([]Token, error) {
	runes := []rune(pattern)
	tokens := make([]Token, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		tok := Token{Pos: i, Src: c}

		switch c {
		case '\\':
			if i+1 >= len(runes) {
				return nil, &BadEscapeError{Pos: i, Expected: "a character after '\\'"}
			}
			next := runes[i+1]
			tok.Src = next
			tok.Kind = TokenChar
			if strings.ContainsRune(metachars, next) {
				tok.Char = Literal(next)
			} else if kind, ok := escapeKinds[next]; ok {
				tok.Char = Char{Kind: kind}
			} else {
				return nil, &BadEscapeError{
					Pos:      i,
					Expected: "one of " + metachars + " or d D s S w W n t 0",
				}
			}
			i++
		case '.':
			tok.Kind = TokenChar
			tok.Char = Wildcard()
		case '*':
			tok.Kind = TokenQuantifier
			tok.Quant = QuantAny
		case '+':
			tok.Kind = TokenQuantifier
			tok.Quant = QuantMany
		case '?':
			tok.Kind = TokenQuantifier
			tok.Quant = QuantMaybe
		case '^':
			tok.Kind = TokenAnchor
			tok.Anchor = AnchorStart
		case '$':
			tok.Kind = TokenAnchor
			tok.Anchor = AnchorEnd
		case '[':
			tok.Kind = TokenAnchor
			tok.Anchor = AnchorClassOpen
		case ']':
			tok.Kind = TokenAnchor
			tok.Anchor = AnchorClassClose
		case '(':
			tok.Kind = TokenAnchor
			tok.Anchor = AnchorGroupOpen
		case ')':
			tok.Kind = TokenAnchor
			tok.Anchor = AnchorGroupClose
		default:
			tok.Kind = TokenChar
			tok.Char = Literal(c)
		}

		tokens = append(tokens, tok)
	}

	return tokens, nil
}
