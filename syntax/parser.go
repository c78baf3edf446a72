package syntax

// Options controls parsing.
type Options struct {
	// StrictDelimiters makes an unterminated '[' or '(' a parse error.
	// When false the end of the pattern closes an open class or group.
	StrictDelimiters bool
}

// Compile tokenizes and parses pattern.
func Compile(pattern string, opts Options) (*Node, error) {
	tokens, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	return ParseWithOptions(tokens, opts)
}

// Parse builds a tree from tokens with default options.
func Parse(tokens []Token) (*Node, error) {
	return ParseWithOptions(tokens, Options{})
}

// ParseWithOptions builds a tree from tokens in a single forward pass.
//
// The result is a Chain of atoms, each optionally wrapped in a Quantifier,
// and the Chain is wrapped in a StartAnchor when the pattern begins with '^'.
// An end anchor must be the last token.
func ParseWithOptions(tokens []Token, opts Options) (*Node, error) {
	p := &parser{tokens: tokens, opts: opts}

	anchored := false
	if tok, ok := p.peek(); ok && tok.IsAnchor(AnchorStart) {
		p.pos++
		anchored = true
	}

	chain := &Node{Op: OpChain, Pos: p.pos}
	seenEnd := false

	for {
		tok, ok := p.next()
		if !ok {
			break
		}
		if seenEnd {
			return nil, unexpected(tok, "end of pattern after the end anchor")
		}

		atom, err := p.atom(tok)
		if err != nil {
			return nil, err
		}
		if atom.Op == OpEndAnchor {
			seenEnd = true
		}

		if q, ok := p.peek(); ok && q.Kind == TokenQuantifier {
			if atom.Op == OpEndAnchor {
				return nil, unexpected(q, "end of pattern after the end anchor")
			}
			p.pos++
			atom = &Node{Op: OpQuantifier, Quant: q.Quant, Sub: []*Node{atom}, Pos: atom.Pos}
		}
		chain.Sub = append(chain.Sub, atom)
	}

	if anchored {
		return &Node{Op: OpStartAnchor, Sub: []*Node{chain}, Pos: 0}, nil
	}
	return chain, nil
}

type parser struct {
	tokens []Token
	pos    int
	opts   Options
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// atom turns tok, already consumed, into a single chain element.
func (p *parser) atom(tok Token) (*Node, error) {
	switch tok.Kind {
	case TokenChar:
		return &Node{Op: OpChar, Char: tok.Char, Pos: tok.Pos}, nil
	case TokenQuantifier:
		return nil, unexpected(tok, "a character, class or group before the quantifier")
	}

	switch tok.Anchor {
	case AnchorStart:
		return nil, unexpected(tok, "start anchor only at the start of the pattern")
	case AnchorEnd:
		return &Node{Op: OpEndAnchor, Pos: tok.Pos}, nil
	case AnchorClassOpen:
		return p.class(tok)
	case AnchorClassClose:
		return nil, unexpected(tok, "'[' before ']'")
	case AnchorGroupOpen:
		return p.group(tok)
	case AnchorGroupClose:
		return nil, unexpected(tok, "'(' before ')'")
	}
	return nil, unexpected(tok, "a character, class or group")
}

// class collects set members up to the closing ']'. Structural tokens
// inside the brackets stand for the characters they were written as.
func (p *parser) class(open Token) (*Node, error) {
	node := &Node{Op: OpCharClass, Pos: open.Pos}
	for {
		tok, ok := p.next()
		if !ok {
			if p.opts.StrictDelimiters {
				return nil, unexpected(open, "']' to close the character class")
			}
			return node, nil
		}
		if tok.IsAnchor(AnchorClassClose) {
			return node, nil
		}
		node.Class = append(node.Class, tok.AsChar())
	}
}

// group collects character atoms up to the closing ')'. Wildcards and
// escape classes are atoms too; classes, quantifiers and anchors are not.
func (p *parser) group(open Token) (*Node, error) {
	node := &Node{Op: OpCaptureGroup, Pos: open.Pos}
	for {
		tok, ok := p.next()
		if !ok {
			if p.opts.StrictDelimiters {
				return nil, unexpected(open, "')' to close the group")
			}
			return node, nil
		}
		if tok.IsAnchor(AnchorGroupClose) {
			return node, nil
		}
		if tok.Kind != TokenChar {
			return nil, unexpected(tok, "a character or ')' inside the group")
		}
		node.Sub = append(node.Sub, &Node{Op: OpChar, Char: tok.Char, Pos: tok.Pos})
	}
}
