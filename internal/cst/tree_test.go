package cst

import (
	"testing"

	"balparse/internal/source"
	"balparse/internal/token"
)

// a + b;<EOF>
func sampleTree() (*Tree, NodeID) {
	toks := []token.Token{
		{Kind: token.Ident, Text: "a", Span: source.Span{Start: 0, End: 1}},
		{Kind: token.Plus, Text: "+", Span: source.Span{Start: 2, End: 3}, Leading: []token.Trivia{{Text: " "}}},
		{Kind: token.Ident, Text: "b", Span: source.Span{Start: 4, End: 5}, Leading: []token.Trivia{{Text: " "}}},
		{Kind: token.EOF, Span: source.Span{Start: 6, End: 6}, Leading: []token.Trivia{{Text: "\n"}}},
	}
	tr := NewTree(0, toks)
	tok := func(i uint32) Child { return Child{Kind: ChildToken, Token: i, TokKind: toks[i].Kind} }
	a := tr.NewNode(NameRef, []Child{tok(0)})
	b := tr.NewNode(NameRef, []Child{tok(2)})
	add := tr.NewNode(BinaryAddExpr, []Child{{Kind: ChildNode, Node: a}, tok(1), {Kind: ChildNode, Node: b}})
	stmt := tr.NewNode(ExprStmt, []Child{{Kind: ChildNode, Node: add}, {Kind: ChildMissing, Token: 3, TokKind: token.Semicolon}})
	root := tr.NewNode(CompilationUnit, []Child{{Kind: ChildNode, Node: stmt}, tok(3)})
	tr.Root = root
	return tr, root
}

func TestNodeRanges(t *testing.T) {
	tr, root := sampleTree()
	n := tr.Node(root)
	if n.First != 0 || n.End != 4 {
		t.Fatalf("root range = [%d,%d)", n.First, n.End)
	}
	stmt := tr.ChildNodes(root)[0]
	sn := tr.Node(stmt)
	if sn.First != 0 || sn.End != 3 {
		t.Errorf("stmt range = [%d,%d)", sn.First, sn.End)
	}
	if sn.Span != (source.Span{Start: 0, End: 5}) {
		t.Errorf("stmt span = %v", sn.Span)
	}
	missing := sn.Children[1]
	if got := tr.ChildSpan(missing); got != (source.Span{Start: 5, End: 5}) {
		t.Errorf("missing span = %v", got)
	}
	if got := tr.Token(missing); got.Kind != token.Semicolon || got.Text != "" {
		t.Errorf("missing token = %+v", got)
	}
	if tr.Text(stmt) != "a + b" {
		t.Errorf("Text = %q", tr.Text(stmt))
	}
}

func TestReconstructAndEvents(t *testing.T) {
	tr, root := sampleTree()
	if got := tr.Reconstruct(root); got != "a + b\n" {
		t.Errorf("Reconstruct = %q", got)
	}
	events := Events(tr, root)
	var enters, exits, toks int
	for _, e := range events {
		switch e.Kind {
		case EventEnter:
			enters++
		case EventExit:
			exits++
		case EventToken:
			toks++
		}
	}
	if enters != 5 || exits != 5 || toks != 5 {
		t.Errorf("enter=%d exit=%d token=%d", enters, exits, toks)
	}
	if events[0].Kind != EventEnter || events[0].Node != root || events[len(events)-1].Node != root {
		t.Errorf("walk must open and close with the root")
	}
	if got := tr.FindAll(root, NameRef); len(got) != 2 {
		t.Errorf("FindAll(NameRef) = %v", got)
	}
	s := tr.Stats()
	if s.Nodes != 5 || s.Missing != 1 || s.Tokens != 4 {
		t.Errorf("stats = %+v", s)
	}
}

func TestKindNames(t *testing.T) {
	for k := 0; k < KindCount(); k++ {
		if Kind(k).String() == "" {
			t.Errorf("kind %d unnamed", k)
		}
	}
	if TupleBindingPattern.String() != "TupleBindingPattern" {
		t.Errorf("got %s", TupleBindingPattern)
	}
}
