package syntax

import (
	"fmt"
	"strings"
)

// Op is the kind of a Node.
type Op uint8

const (
	// OpChain matches Sub in order, each on the remainder left by the previous one.
	OpChain Op = iota + 1

	// OpQuantifier repeats Sub[0] according to Quant.
	OpQuantifier

	// OpChar matches one rune satisfying Char.
	OpChar

	// OpCharClass matches one rune satisfying any member of Class.
	OpCharClass

	// OpStartAnchor pins Sub[0] to the start of input. Only ever the root.
	OpStartAnchor

	// OpEndAnchor matches the empty string at the end of input.
	OpEndAnchor

	// OpCaptureGroup is a parenthesized sub-chain; Sub holds its atoms.
	OpCaptureGroup
)

var opNames = [...]string{
	OpChain:        "Chain",
	OpQuantifier:   "Quantifier",
	OpChar:         "Char",
	OpCharClass:    "CharClass",
	OpStartAnchor:  "StartAnchor",
	OpEndAnchor:    "EndAnchor",
	OpCaptureGroup: "CaptureGroup",
}

// String returns the op name.
func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", op)
}

// Node is a node of the pattern tree.
//
// Each node exclusively owns its children. A parsed tree is never modified
// and may be evaluated from many goroutines at once.
type Node struct {
	Op    Op
	Sub   []*Node
	Quant Quantifier // OpQuantifier
	Char  Char       // OpChar
	Class []Char     // OpCharClass
	Pos   int        // code-point index of the first token of the node
}

// Nullable reports whether n can match the empty string, i.e. whether
// evaluating n against empty input succeeds.
func (n *Node) Nullable() bool {
	switch n.Op {
	case OpChain, OpCaptureGroup:
		for _, sub := range n.Sub {
			if !sub.Nullable() {
				return false
			}
		}
		return true
	case OpQuantifier:
		return n.Quant != QuantMany || n.Sub[0].Nullable()
	case OpStartAnchor:
		return n.Sub[0].Nullable()
	case OpEndAnchor:
		return true
	default:
		return false
	}
}

// AlwaysMatches reports whether evaluating n succeeds at every offset of
// every input. This holds for * and ? quantifiers and chains made only of them.
func (n *Node) AlwaysMatches() bool {
	switch n.Op {
	case OpChain, OpCaptureGroup:
		for _, sub := range n.Sub {
			if !sub.AlwaysMatches() {
				return false
			}
		}
		return true
	case OpQuantifier:
		return n.Quant != QuantMany || n.Sub[0].AlwaysMatches()
	case OpStartAnchor:
		return n.Sub[0].AlwaysMatches()
	default:
		return false
	}
}

// String renders n as a compact s-expression.
//
//	^a+b$  →  (start (chain (+ 'a') 'b' $))
func (n *Node) String() string {
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

func (n *Node) writeTo(sb *strings.Builder) {
	switch n.Op {
	case OpChain:
		sb.WriteString("(chain")
		for _, sub := range n.Sub {
			sb.WriteByte(' ')
			sub.writeTo(sb)
		}
		sb.WriteByte(')')
	case OpCaptureGroup:
		sb.WriteString("(group")
		for _, sub := range n.Sub {
			sb.WriteByte(' ')
			sub.writeTo(sb)
		}
		sb.WriteByte(')')
	case OpQuantifier:
		sb.WriteByte('(')
		sb.WriteString(n.Quant.String())
		sb.WriteByte(' ')
		n.Sub[0].writeTo(sb)
		sb.WriteByte(')')
	case OpStartAnchor:
		sb.WriteString("(start ")
		n.Sub[0].writeTo(sb)
		sb.WriteByte(')')
	case OpEndAnchor:
		sb.WriteByte('$')
	case OpChar:
		sb.WriteString(n.Char.String())
	case OpCharClass:
		sb.WriteByte('[')
		for i, c := range n.Class {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(c.String())
		}
		sb.WriteByte(']')
	default:
		sb.WriteString(n.Op.String())
	}
}
