package testkit_test

import (
	"strings"
	"testing"

	"balparse/internal/cst"
	"balparse/internal/parser"
	"balparse/internal/source"
	"balparse/internal/testkit"
	"balparse/internal/token"
)

func parse(t *testing.T, src string) (*source.File, parser.Result) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("t.bal", []byte(src)))
	return f, parser.ParseFile(f, parser.Options{})
}

func TestInvariantsHoldOnBrokenInput(t *testing.T) {
	inputs := []string{
		"",
		"function f() { int x = ; if (a { } } type T record { int a; ;",
		"service s on ep { resource function r(http:Caller c) { c->respond(`hi ${x}`); } }",
		"xml x = xml `<a b=\"${c}\">${d}</a`;",
		"# + return - x\n@a @b",
		"from s where => (",
	}
	for _, src := range inputs {
		f, res := parse(t, src)
		if err := testkit.CheckAll(res.Tree, res.Root, res.Diagnostics, f); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestCoverageDetectsDroppedToken(t *testing.T) {
	toks := []token.Token{
		{Kind: token.Ident, Text: "a"},
		{Kind: token.Semicolon, Text: ";"},
		{Kind: token.EOF},
	}
	tr := cst.NewTree(0, toks)
	root := tr.NewNode(cst.CompilationUnit, []cst.Child{
		{Kind: cst.ChildToken, Token: 0, TokKind: token.Ident},
		{Kind: cst.ChildToken, Token: 2, TokKind: token.EOF},
	})
	err := testkit.CheckTokenCoverage(tr, root)
	if err == nil || !strings.Contains(err.Error(), "expected 1") {
		t.Errorf("err = %v", err)
	}
	if err := testkit.CheckRoundTrip(tr, root, []byte("a;")); err == nil {
		t.Errorf("round trip should fail without the ';'")
	}
}

func TestNodeRangesDetectGap(t *testing.T) {
	toks := []token.Token{{Kind: token.Ident, Text: "a"}, {Kind: token.Ident, Text: "b"}, {Kind: token.EOF}}
	tr := cst.NewTree(0, toks)
	inner := tr.NewNode(cst.NameRef, []cst.Child{{Kind: cst.ChildToken, Token: 1, TokKind: token.Ident}})
	root := tr.NewNode(cst.CompilationUnit, []cst.Child{
		{Kind: cst.ChildToken, Token: 0, TokKind: token.Ident},
		{Kind: cst.ChildNode, Node: inner},
		{Kind: cst.ChildToken, Token: 2, TokKind: token.EOF},
	})
	if err := testkit.CheckNodeRanges(tr, root); err != nil {
		t.Errorf("contiguous tree rejected: %v", err)
	}
	tr.Node(inner).First = 0
	if err := testkit.CheckNodeRanges(tr, root); err == nil {
		t.Errorf("overlapping child accepted")
	}
}
