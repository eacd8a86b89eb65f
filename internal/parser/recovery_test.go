package parser_test

import (
	"testing"

	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/token"
)

func TestMissingSemicolonIsLocal(t *testing.T) {
	src := "function f() { int a = 1\n int b = 2; }"
	res := parseSource(t, src)
	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %s", describe(res.Diagnostics))
	}
	d := res.Diagnostics[0]
	if d.Code != diag.SynMissingToken || len(d.Expected) != 1 || d.Expected[0] != token.Semicolon {
		t.Errorf("diagnostic = %+v", d)
	}
	defs := res.Tree.FindAll(res.Root, cst.VarDef)
	if len(defs) != 2 {
		t.Fatalf("var defs = %d, want 2", len(defs))
	}
	first := res.Tree.Node(defs[0])
	last := first.Children[len(first.Children)-1]
	if !last.IsMissing() || last.TokKind != token.Semicolon {
		t.Errorf("first definition should end with a missing ';'")
	}
}

func TestRecoveryKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
		kind diag.Kind
	}{
		{"stray token deleted", "function f() { x = 1 ) ; }", diag.SynUnexpectedToken, diag.KindUnexpectedToken},
		{"missing closer inserted", "function f(int a { }", diag.SynMissingToken, diag.KindMissingToken},
		{"no expression", "function f() { x = ; }", diag.SynExpectExpression, diag.KindNoViableAlternative},
		{"no statement", "function f() { ) }", diag.SynExpectStatement, diag.KindNoViableAlternative},
		{"eof in block", "function f() { x = 1;", diag.SynUnterminated, diag.KindUnterminatedUnit},
		{"bad top level", "42;", diag.SynExpectDefinition, diag.KindNoViableAlternative},
		{"dangling annotation", "@deprecated\n", diag.SynDanglingAnnotation, diag.KindSemanticPredicateFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parseSource(t, tt.src)
			if len(res.Diagnostics) == 0 {
				t.Fatalf("no diagnostics")
			}
			d := res.Diagnostics[0]
			if d.Code != tt.code || d.Kind != tt.kind {
				t.Errorf("got %s/%s, want %s/%s", d.Code.ID(), d.Kind, tt.code.ID(), tt.kind)
			}
			if got := res.Tree.Reconstruct(res.Root); got != tt.src {
				t.Errorf("round trip = %q", got)
			}
		})
	}
}

func TestUnterminatedReportedOnce(t *testing.T) {
	res := parseSource(t, "function f() { if a { while b { x = 1;")
	n := 0
	for _, d := range res.Diagnostics {
		if d.Code == diag.SynUnterminated {
			n++
		}
	}
	if n != 1 {
		t.Errorf("unterminated reports = %d, want 1: %s", n, describe(res.Diagnostics))
	}
}

func TestErrorNodeKeepsSkippedTokens(t *testing.T) {
	res := parseSource(t, "function f() { ) ) ; x = 1; }")
	errs := res.Tree.FindAll(res.Root, cst.ErrorNode)
	if len(errs) == 0 {
		t.Fatalf("no error node")
	}
	if defs := res.Tree.FindAll(res.Root, cst.AssignmentStmt); len(defs) != 1 {
		t.Errorf("assignment after garbage = %d, want 1", len(defs))
	}
}
