package cst

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"balparse/internal/source"
	"balparse/internal/token"
)

type NodeID uint32

const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }

type ChildKind uint8

const (
	ChildNode ChildKind = iota
	ChildToken
	// ChildMissing is a zero-width token synthesized by error recovery.
	ChildMissing
)

// Child is one ordered element of a node.
type Child struct {
	Kind ChildKind
	Node NodeID
	// Token is the stream index of a token child. For a missing child it is
	// the index of the token that follows the gap.
	Token uint32
	// TokKind is the kind the parser accepted the token as. It differs from
	// the stream kind when an identifier was read as a contextual query word.
	TokKind token.Kind
}

func (c Child) IsNode() bool    { return c.Kind == ChildNode }
func (c Child) IsToken() bool   { return c.Kind == ChildToken }
func (c Child) IsMissing() bool { return c.Kind == ChildMissing }

// Node covers the token range [First, End).
type Node struct {
	Kind     Kind
	Span     source.Span
	First    uint32
	End      uint32
	Children []Child
}

// Tree owns the token stream and every node built over it.
type Tree struct {
	File   source.FileID
	Tokens []token.Token
	Nodes  *Arena[Node]
	Root   NodeID
}

func NewTree(file source.FileID, tokens []token.Token) *Tree {
	return &Tree{
		File:   file,
		Tokens: tokens,
		Nodes:  NewArena[Node](uint(len(tokens)/2 + 1)),
	}
}

// NewNode allocates a node over children, which must be in source order.
func (t *Tree) NewNode(kind Kind, children []Child) NodeID {
	n := Node{Kind: kind, Children: children}
	if len(children) > 0 {
		n.First, _ = t.ChildRange(children[0])
		_, n.End = t.ChildRange(children[len(children)-1])
	}
	n.Span = t.rangeSpan(n.First, n.End)
	return NodeID(t.Nodes.Allocate(n))
}

// Extend appends children to an existing node and widens its range.
func (t *Tree) Extend(id NodeID, children ...Child) {
	n := t.Node(id)
	if n == nil || len(children) == 0 {
		return
	}
	if len(n.Children) == 0 {
		n.First, _ = t.ChildRange(children[0])
	}
	n.Children = append(n.Children, children...)
	_, n.End = t.ChildRange(children[len(children)-1])
	n.Span = t.rangeSpan(n.First, n.End)
}

func (t *Tree) Node(id NodeID) *Node {
	return t.Nodes.Get(uint32(id))
}

// Kind returns the kind of id, or Invalid for NoNodeID.
func (t *Tree) Kind(id NodeID) Kind {
	if n := t.Node(id); n != nil {
		return n.Kind
	}
	return Invalid
}

// ChildRange returns the token range covered by c.
func (t *Tree) ChildRange(c Child) (first, end uint32) {
	switch c.Kind {
	case ChildNode:
		n := t.Node(c.Node)
		if n == nil {
			return 0, 0
		}
		return n.First, n.End
	case ChildToken:
		return c.Token, c.Token + 1
	default:
		return c.Token, c.Token
	}
}

// ChildSpan returns the source span of c.
func (t *Tree) ChildSpan(c Child) source.Span {
	switch c.Kind {
	case ChildNode:
		if n := t.Node(c.Node); n != nil {
			return n.Span
		}
		return source.Span{File: t.File}
	case ChildToken:
		return t.Tokens[c.Token].Span
	default:
		return t.MissingSpan(c.Token)
	}
}

// MissingSpan is the zero-width span of a token synthesized before pos:
// the end of the preceding token, or the start of the stream.
func (t *Tree) MissingSpan(pos uint32) source.Span {
	if pos > 0 && int(pos) <= len(t.Tokens) {
		return t.Tokens[pos-1].Span.AtEnd()
	}
	if len(t.Tokens) > 0 {
		return t.Tokens[0].Span.AtStart()
	}
	return source.Span{File: t.File}
}

func (t *Tree) rangeSpan(first, end uint32) source.Span {
	if first >= end {
		return t.MissingSpan(first)
	}
	return t.Tokens[first].Span.Cover(t.Tokens[end-1].Span)
}

// Token materializes a token child. Missing children yield an empty token of
// the expected kind at the gap.
func (t *Tree) Token(c Child) token.Token {
	switch c.Kind {
	case ChildToken:
		tok := t.Tokens[c.Token]
		tok.Kind = c.TokKind
		return tok
	case ChildMissing:
		return token.Token{Kind: c.TokKind, Span: t.MissingSpan(c.Token)}
	}
	return token.Token{}
}

// ChildNodes returns the node children of id in order.
func (t *Tree) ChildNodes(id NodeID) []NodeID {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	out := make([]NodeID, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Kind == ChildNode {
			out = append(out, c.Node)
		}
	}
	return out
}

// FirstChild returns the first direct child node of the given kind.
func (t *Tree) FirstChild(id NodeID, kind Kind) NodeID {
	for _, c := range t.ChildNodes(id) {
		if t.Kind(c) == kind {
			return c
		}
	}
	return NoNodeID
}

// ChildrenOfKind returns the direct child nodes of the given kind.
func (t *Tree) ChildrenOfKind(id NodeID, kind Kind) []NodeID {
	var out []NodeID
	for _, c := range t.ChildNodes(id) {
		if t.Kind(c) == kind {
			out = append(out, c)
		}
	}
	return out
}

// HasToken reports whether id has a direct token child accepted as k.
func (t *Tree) HasToken(id NodeID, k token.Kind) bool {
	n := t.Node(id)
	if n == nil {
		return false
	}
	for _, c := range n.Children {
		if c.Kind == ChildToken && c.TokKind == k {
			return true
		}
	}
	return false
}

// FindAll returns every node of the given kind under id, in preorder.
func (t *Tree) FindAll(id NodeID, kind Kind) []NodeID {
	var out []NodeID
	Walk(t, id, ListenerFuncs{OnEnter: func(_ *Tree, n NodeID) {
		if t.Kind(n) == kind {
			out = append(out, n)
		}
	}})
	return out
}

// Text renders the source of id without the leading trivia of its first token.
func (t *Tree) Text(id NodeID) string {
	n := t.Node(id)
	if n == nil {
		return ""
	}
	var sb strings.Builder
	for i := n.First; i < n.End; i++ {
		if i == n.First {
			sb.WriteString(t.Tokens[i].Text)
			continue
		}
		sb.WriteString(t.Tokens[i].Full())
	}
	return sb.String()
}

// Reconstruct concatenates every token child under id with its trivia.
// For the root of a complete parse the result equals the source text.
func (t *Tree) Reconstruct(id NodeID) string {
	var sb strings.Builder
	Walk(t, id, ListenerFuncs{OnToken: func(tr *Tree, c Child) {
		if c.Kind == ChildToken {
			sb.WriteString(tr.Tokens[c.Token].Full())
		}
	}})
	return sb.String()
}

// Stats summarizes tree size for timings output.
type Stats struct {
	Nodes   uint32 `json:"nodes" msgpack:"nodes"`
	Tokens  uint32 `json:"tokens" msgpack:"tokens"`
	Missing uint32 `json:"missing" msgpack:"missing"`
	Errors  uint32 `json:"errors" msgpack:"errors"`
}

func (t *Tree) Stats() Stats {
	toks, err := safecast.Conv[uint32](len(t.Tokens))
	if err != nil {
		panic(fmt.Errorf("token count overflow: %w", err))
	}
	s := Stats{Nodes: t.Nodes.Len(), Tokens: toks}
	for _, n := range t.Nodes.Slice() {
		if n.Kind == ErrorNode {
			s.Errors++
		}
		for _, c := range n.Children {
			if c.Kind == ChildMissing {
				s.Missing++
			}
		}
	}
	return s
}
