package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"balparse/internal/cst"
	"balparse/internal/token"
)

// FormatTree writes the subtree at root as an indented outline, two spaces
// per level:
//
//	FunctionDef
//	  function
//	  identifier "main"
//	  ! missing ;
func FormatTree(w io.Writer, tr *cst.Tree, root cst.NodeID, opts TreeOpts) error {
	pal := newPalette(opts.Color)
	var sb strings.Builder
	depth := 0
	indent := func() { sb.WriteString(strings.Repeat("  ", depth)) }
	cst.Walk(tr, root, cst.ListenerFuncs{
		OnEnter: func(t *cst.Tree, id cst.NodeID) {
			indent()
			n := t.Node(id)
			label := pal.node
			if n.Kind == cst.ErrorNode {
				label = pal.errNode
			}
			sb.WriteString(label.Sprint(n.Kind.String()))
			if opts.Spans {
				sb.WriteString(pal.dim.Sprintf(" [%d,%d)", n.Span.Start, n.Span.End))
			}
			sb.WriteByte('\n')
			depth++
		},
		OnToken: func(t *cst.Tree, c cst.Child) {
			indent()
			if c.IsMissing() {
				sb.WriteString(pal.missing.Sprint("! missing " + c.TokKind.String()))
				sb.WriteByte('\n')
				return
			}
			tok := t.Token(c)
			writeTokenLabel(&sb, tok, c.TokKind, pal)
			if opts.Spans {
				sb.WriteString(pal.dim.Sprintf(" [%d,%d)", tok.Span.Start, tok.Span.End))
			}
			sb.WriteByte('\n')
			if opts.Trivia {
				for _, tv := range tok.Leading {
					indent()
					sb.WriteString(pal.dim.Sprintf("  · %s %q\n", tv.Kind, tv.Text))
				}
			}
		},
		OnExit: func(*cst.Tree, cst.NodeID) { depth-- },
	})
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTokenLabel(sb *strings.Builder, tok token.Token, accepted token.Kind, pal palette) {
	name := accepted.String()
	sb.WriteString(pal.token.Sprint(name))
	if tok.Text != "" && tok.Text != name {
		sb.WriteByte(' ')
		sb.WriteString(pal.text.Sprint(fmt.Sprintf("%q", tok.Text)))
	}
}
