package diag

import (
	"testing"

	"balparse/internal/source"
	"balparse/internal/token"
)

func TestBagCap(t *testing.T) {
	b := NewBag(2)
	r := BagReporter{Bag: b}
	for i := 0; i < 4; i++ {
		ReportError(r, SynUnexpectedToken, source.Span{Start: uint32(i), End: uint32(i + 1)}, "").Emit()
	}
	if b.Len() != 2 || b.Dropped() != 2 || !b.Full() {
		t.Fatalf("len=%d dropped=%d", b.Len(), b.Dropped())
	}
	unlimited := NewBag(0)
	for i := 0; i < 100; i++ {
		unlimited.Add(NewError(SynMissingToken, source.Span{}, ""))
	}
	if unlimited.Len() != 100 {
		t.Fatalf("unlimited bag stored %d", unlimited.Len())
	}
}

func TestDefaultKind(t *testing.T) {
	tests := []struct {
		code Code
		want Kind
	}{
		{SynUnexpectedToken, KindUnexpectedToken},
		{SynMissingToken, KindMissingToken},
		{SynExpectExpression, KindNoViableAlternative},
		{SynAdjacentShift, KindSemanticPredicateFailed},
		{SynDanglingAnnotation, KindSemanticPredicateFailed},
		{SynUnterminated, KindUnterminatedUnit},
		{LexUnknownChar, KindLexical},
	}
	for _, tt := range tests {
		if got := tt.code.DefaultKind(); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.code.ID(), got, tt.want)
		}
	}
}

func TestBuilderAndDedup(t *testing.T) {
	b := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: b})
	sp := source.Span{Start: 3, End: 3}
	for i := 0; i < 3; i++ {
		ReportError(r, SynMissingToken, sp, "").WithToken(1).WithExpected(token.Semicolon).Emit()
	}
	if b.Len() != 1 {
		t.Fatalf("dedup kept %d", b.Len())
	}
	d := b.Items()[0]
	if d.Token != 1 || !d.Expects(token.Semicolon) || d.Expects(token.Comma) {
		t.Errorf("unexpected diagnostic %+v", d)
	}
	builder := ReportWarning(r, LexNonNormalIdent, sp, "")
	builder.Emit()
	builder.Emit()
	if b.Len() != 2 {
		t.Errorf("builder emitted twice")
	}
}

func TestFormatGolden(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.bal", []byte("int x\nint y;\n"))
	diags := []Diagnostic{
		ReportError(nil, SynExpectExpression, source.Span{File: id, Start: 6, End: 9}, "").Diagnostic(),
		ReportError(nil, SynMissingToken, source.Span{File: id, Start: 5, End: 5}, "").WithExpected(token.Semicolon).Diagnostic(),
	}
	want := "SYN2002 missing-token a.bal:1:6 expected=[;]\n" +
		"SYN2011 no-viable-alternative a.bal:2:1"
	if got := FormatGolden(diags, fs); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}
