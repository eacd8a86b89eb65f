package diagfmt

import (
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/source"
	"balparse/internal/token"
)

// packSchema is bumped whenever PackedFile changes shape.
const packSchema uint16 = 1

// PackedFile is the msgpack form of a parsed file. Token and trivia text is
// stored once in Strings and referenced by index; nodes are kept in arena
// order so node IDs survive a round trip.
type PackedFile struct {
	Schema      uint16           `msgpack:"schema"`
	Path        string           `msgpack:"path"`
	Strings     []string         `msgpack:"strings"`
	Tokens      []PackedToken    `msgpack:"tokens"`
	Nodes       []PackedNode     `msgpack:"nodes"`
	Root        uint32           `msgpack:"root"`
	Diagnostics []DiagnosticJSON `msgpack:"diagnostics,omitempty"`
}

type PackedToken struct {
	Kind    uint8           `msgpack:"k"`
	Start   uint32          `msgpack:"s"`
	End     uint32          `msgpack:"e"`
	Text    source.StringID `msgpack:"t"`
	Leading []PackedTrivia  `msgpack:"l,omitempty"`
}

type PackedTrivia struct {
	Kind  uint8           `msgpack:"k"`
	Start uint32          `msgpack:"s"`
	End   uint32          `msgpack:"e"`
	Text  source.StringID `msgpack:"t"`
}

type PackedNode struct {
	Kind     uint16        `msgpack:"k"`
	First    uint32        `msgpack:"f"`
	End      uint32        `msgpack:"e"`
	Children []PackedChild `msgpack:"c,omitempty"`
}

// PackedChild stores a node ID in Ref for node children and a token index
// otherwise.
type PackedChild struct {
	Kind    uint8  `msgpack:"k"`
	Ref     uint32 `msgpack:"r"`
	TokKind uint8  `msgpack:"t,omitempty"`
}

// Pack converts a tree and its diagnostics into the msgpack schema.
func Pack(tr *cst.Tree, root cst.NodeID, diags []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) PackedFile {
	strs := source.NewInterner()
	pf := PackedFile{
		Schema: packSchema,
		Path:   displayPath(fs, tr.File, opts.PathMode),
		Tokens: make([]PackedToken, len(tr.Tokens)),
		Root:   uint32(root),
	}
	for i, tok := range tr.Tokens {
		pt := PackedToken{
			Kind:  uint8(tok.Kind),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Text:  strs.Intern(tok.Text),
		}
		for _, tv := range tok.Leading {
			pt.Leading = append(pt.Leading, PackedTrivia{
				Kind:  uint8(tv.Kind),
				Start: tv.Span.Start,
				End:   tv.Span.End,
				Text:  strs.Intern(tv.Text),
			})
		}
		pf.Tokens[i] = pt
	}
	nodes := tr.Nodes.Slice()
	pf.Nodes = make([]PackedNode, len(nodes))
	for i, n := range nodes {
		pn := PackedNode{Kind: uint16(n.Kind), First: n.First, End: n.End}
		for _, c := range n.Children {
			pc := PackedChild{Kind: uint8(c.Kind), Ref: c.Token, TokKind: uint8(c.TokKind)}
			if c.IsNode() {
				pc.Ref = uint32(c.Node)
				pc.TokKind = 0
			}
			pn.Children = append(pn.Children, pc)
		}
		pf.Nodes[i] = pn
	}
	for _, d := range diags {
		pf.Diagnostics = append(pf.Diagnostics, diagnosticJSON(d, fs, opts))
	}
	pf.Strings = strs.Strings()
	return pf
}

// FormatMsgpack writes Pack's result to w.
func FormatMsgpack(w io.Writer, tr *cst.Tree, root cst.NodeID, diags []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) error {
	return msgpack.NewEncoder(w).Encode(Pack(tr, root, diags, fs, opts))
}

// DecodeMsgpack reads a PackedFile and checks its schema version.
func DecodeMsgpack(r io.Reader) (PackedFile, error) {
	var pf PackedFile
	if err := msgpack.NewDecoder(r).Decode(&pf); err != nil {
		return PackedFile{}, fmt.Errorf("decode msgpack: %w", err)
	}
	if pf.Schema != packSchema {
		return PackedFile{}, fmt.Errorf("unsupported schema %d, want %d", pf.Schema, packSchema)
	}
	return pf, nil
}

// Unpack rebuilds the tree of pf for file, returning the tree and its root.
func (pf PackedFile) Unpack(file source.FileID) (*cst.Tree, cst.NodeID, error) {
	text := func(id source.StringID) (string, error) {
		if int(id) >= len(pf.Strings) {
			return "", fmt.Errorf("string %d out of range", id)
		}
		return pf.Strings[id], nil
	}
	toks := make([]token.Token, len(pf.Tokens))
	for i, pt := range pf.Tokens {
		s, err := text(pt.Text)
		if err != nil {
			return nil, cst.NoNodeID, fmt.Errorf("token %d: %w", i, err)
		}
		tok := token.Token{
			Kind: token.Kind(pt.Kind),
			Span: source.Span{File: file, Start: pt.Start, End: pt.End},
			Text: s,
		}
		for _, tv := range pt.Leading {
			ts, err := text(tv.Text)
			if err != nil {
				return nil, cst.NoNodeID, fmt.Errorf("token %d trivia: %w", i, err)
			}
			tok.Leading = append(tok.Leading, token.Trivia{
				Kind: token.TriviaKind(tv.Kind),
				Span: source.Span{File: file, Start: tv.Start, End: tv.End},
				Text: ts,
			})
		}
		toks[i] = tok
	}
	tr := cst.NewTree(file, toks)
	n, err := safecast.Conv[uint32](len(pf.Nodes))
	if err != nil {
		return nil, cst.NoNodeID, fmt.Errorf("node count: %w", err)
	}
	for i, pn := range pf.Nodes {
		node := cst.Node{Kind: cst.Kind(pn.Kind), First: pn.First, End: pn.End}
		if pn.First > pn.End || int(pn.End) > len(toks) {
			return nil, cst.NoNodeID, fmt.Errorf("node %d: bad token range [%d,%d)", i+1, pn.First, pn.End)
		}
		if pn.First < pn.End {
			node.Span = toks[pn.First].Span.Cover(toks[pn.End-1].Span)
		} else {
			node.Span = tr.MissingSpan(pn.First)
		}
		for _, pc := range pn.Children {
			c := cst.Child{Kind: cst.ChildKind(pc.Kind), Token: pc.Ref, TokKind: token.Kind(pc.TokKind)}
			if c.IsNode() {
				if pc.Ref == 0 || pc.Ref > n {
					return nil, cst.NoNodeID, fmt.Errorf("node %d: child node %d out of range", i+1, pc.Ref)
				}
				c = cst.Child{Kind: cst.ChildNode, Node: cst.NodeID(pc.Ref)}
			} else if int(pc.Ref) > len(toks) || (c.IsToken() && int(pc.Ref) == len(toks)) {
				return nil, cst.NoNodeID, fmt.Errorf("node %d: token %d out of range", i+1, pc.Ref)
			}
			node.Children = append(node.Children, c)
		}
		tr.Nodes.Allocate(node)
	}
	if pf.Root == 0 || pf.Root > n {
		return nil, cst.NoNodeID, fmt.Errorf("root %d out of range", pf.Root)
	}
	tr.Root = cst.NodeID(pf.Root)
	return tr, tr.Root, nil
}
