package parser_test

import (
	"testing"

	"balparse/internal/cst"
	"balparse/internal/token"
)

func TestStringTemplateIslands(t *testing.T) {
	tests := []struct {
		src     string
		islands int
	}{
		{"string `plain`", 0},
		{"string `a ${b} c`", 1},
		{"string `${a}${b + 1} and ${f(x)}`", 3},
		{"string `outer ${string `inner ${x}`}`", 2},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			res := parseExpr(t, tt.src)
			requireClean(t, tt.src, res)
			if res.Tree.Kind(res.Root) != cst.StringTemplate {
				t.Fatalf("root = %s", res.Tree.Kind(res.Root))
			}
			if n := len(res.Tree.FindAll(res.Root, cst.TemplateInterp)); n != tt.islands {
				t.Errorf("islands = %d, want %d", n, tt.islands)
			}
		})
	}
}

func TestXMLLiteral(t *testing.T) {
	src := "xml `<ns:book id=\"${id}\" lang='en'><title>${t}</title><!-- c ${n} --><?pi data?><br/>text</ns:book>`"
	res := parseExpr(t, src)
	requireClean(t, src, res)
	tr := res.Tree
	if tr.Kind(res.Root) != cst.XMLLiteral {
		t.Fatalf("root = %s", tr.Kind(res.Root))
	}
	counts := map[cst.Kind]int{
		cst.XMLElement:     3,
		cst.XMLAttribute:   2,
		cst.XMLComment:     1,
		cst.XMLProcIns:     1,
		cst.XMLEmptyTag:    1,
		cst.TemplateInterp: 3,
	}
	for kind, want := range counts {
		if got := len(tr.FindAll(res.Root, kind)); got != want {
			t.Errorf("%s = %d, want %d", kind, got, want)
		}
	}
	attrs := tr.FindAll(res.Root, cst.XMLQuotedString)
	if len(attrs) != 2 {
		t.Fatalf("quoted strings = %d", len(attrs))
	}
	if !tr.HasToken(attrs[0], token.XMLDQuoteStart) || !tr.HasToken(attrs[1], token.XMLSQuoteEnd) {
		t.Errorf("quote markers are kept per quote style")
	}
	name := tr.FirstChild(tr.FirstChild(tr.FirstChild(res.Root, cst.XMLElement), cst.XMLStartTag), cst.XMLQualifiedName)
	if !tr.HasToken(name, token.XMLColon) {
		t.Errorf("prefixed tag name: %s", shape(tr, name))
	}
}

func TestXMLTagNameIsland(t *testing.T) {
	src := "xml `<${tag}>x</${tag}>`"
	res := parseExpr(t, src)
	requireClean(t, src, res)
	if n := len(res.Tree.FindAll(res.Root, cst.TemplateInterp)); n != 2 {
		t.Errorf("islands = %d", n)
	}
}
