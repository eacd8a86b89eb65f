package parser_test

import (
	"strings"
	"testing"
)

// Declaration and reference patterns share their shapes; only the node
// kinds and the leaves differ.
func TestBindingPatternSymmetry(t *testing.T) {
	tests := []struct {
		pattern string
		decl    string
		ref     string
	}{
		{
			pattern: "(a, b)",
			decl:    "TupleBindingPattern(CaptureBindingPattern,CaptureBindingPattern)",
			ref:     "TupleRefPattern(a,b)",
		},
		{
			pattern: "{a, b: (c, d), ...rest}",
			decl:    "RecordBindingPattern(FieldBindingPattern,FieldBindingPattern(TupleBindingPattern(CaptureBindingPattern,CaptureBindingPattern)),RestBindingPattern)",
			ref:     "RecordRefPattern(FieldRefPattern,FieldRefPattern(TupleRefPattern(c,d)),RestRefPattern(rest))",
		},
		{
			pattern: "{|a, !...|}",
			decl:    "ClosedRecordBindingPattern(FieldBindingPattern,RestBindingPattern)",
			ref:     "ClosedRecordRefPattern(FieldRefPattern,RestRefPattern)",
		},
		{
			pattern: "error(r, {code})",
			decl:    "ErrorBindingPattern(CaptureBindingPattern,RecordBindingPattern(FieldBindingPattern))",
			ref:     "ErrorRefPattern(r,RecordRefPattern(FieldRefPattern))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			decl := parseStmt(t, "var "+tt.pattern+" = x;")
			requireClean(t, tt.pattern, decl)
			got := shape(decl.Tree, decl.Tree.ChildNodes(decl.Root)[0])
			if got != tt.decl {
				t.Errorf("declaration = %s\nwant          %s", got, tt.decl)
			}

			ref := parseStmt(t, tt.pattern+" = x;")
			requireClean(t, tt.pattern, ref)
			got = shape(ref.Tree, ref.Tree.ChildNodes(ref.Root)[0])
			if got != tt.ref {
				t.Errorf("reference = %s\nwant        %s", got, tt.ref)
			}
			if strings.Contains(got, "Binding") {
				t.Errorf("reference pattern mixes in declaration nodes: %s", got)
			}
		})
	}
}

func TestReferencePatternLeavesAreVariableReferences(t *testing.T) {
	src := "(a.b, c[0]) = t;"
	res := parseStmt(t, src)
	requireClean(t, src, res)
	want := "TupleDestructureStmt(TupleRefPattern(FieldAccessExpr(a),IndexAccessExpr(c,0)),t)"
	if got := shape(res.Tree, res.Root); got != want {
		t.Errorf("shape = %s\nwant    %s", got, want)
	}
}
