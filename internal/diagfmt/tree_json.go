package diagfmt

import (
	"io"

	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/source"
)

type NodeJSON struct {
	Kind     string      `json:"kind"`
	Span     [2]uint32   `json:"span"`
	Tokens   [2]uint32   `json:"tokens"`
	Children []ChildJSON `json:"children,omitempty"`
}

// ChildJSON holds exactly one of Node and Token.
type ChildJSON struct {
	Node  *NodeJSON `json:"node,omitempty"`
	Token *LeafJSON `json:"token,omitempty"`
}

type LeafJSON struct {
	Index   uint32    `json:"index"`
	Kind    string    `json:"kind"`
	Text    string    `json:"text,omitempty"`
	Missing bool      `json:"missing,omitempty"`
	Span    [2]uint32 `json:"span"`
}

// FileJSON is the document written by `parse --format json`.
type FileJSON struct {
	File        string           `json:"file"`
	Stats       cst.Stats        `json:"stats"`
	Tree        *NodeJSON        `json:"tree"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
}

func BuildNodeJSON(tr *cst.Tree, id cst.NodeID) *NodeJSON {
	n := tr.Node(id)
	if n == nil {
		return nil
	}
	out := &NodeJSON{
		Kind:     n.Kind.String(),
		Span:     [2]uint32{n.Span.Start, n.Span.End},
		Tokens:   [2]uint32{n.First, n.End},
		Children: make([]ChildJSON, 0, len(n.Children)),
	}
	for _, c := range n.Children {
		if c.IsNode() {
			out.Children = append(out.Children, ChildJSON{Node: BuildNodeJSON(tr, c.Node)})
			continue
		}
		tok := tr.Token(c)
		out.Children = append(out.Children, ChildJSON{Token: &LeafJSON{
			Index:   c.Token,
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Missing: c.IsMissing(),
			Span:    [2]uint32{tok.Span.Start, tok.Span.End},
		}})
	}
	return out
}

// BuildFileJSON combines the tree and the diagnostics recorded for it.
func BuildFileJSON(tr *cst.Tree, root cst.NodeID, diags []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) FileJSON {
	out := FileJSON{
		File:        displayPath(fs, tr.File, opts.PathMode),
		Stats:       tr.Stats(),
		Tree:        BuildNodeJSON(tr, root),
		Diagnostics: make([]DiagnosticJSON, 0, len(diags)),
	}
	for _, d := range diags {
		out.Diagnostics = append(out.Diagnostics, diagnosticJSON(d, fs, opts))
	}
	return out
}

func FormatTreeJSON(w io.Writer, tr *cst.Tree, root cst.NodeID, diags []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) error {
	return writeJSON(w, BuildFileJSON(tr, root, diags, fs, opts))
}
