package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSpanHelpers(t *testing.T) {
	s := Span{File: 1, Start: 10, End: 20}
	if got := s.AtStart(); got != (Span{File: 1, Start: 10, End: 10}) {
		t.Errorf("AtStart() = %v", got)
	}
	if got := s.AtEnd(); got != (Span{File: 1, Start: 20, End: 20}) {
		t.Errorf("AtEnd() = %v", got)
	}
	if !s.Adjacent(Span{File: 1, Start: 20, End: 21}) {
		t.Errorf("expected adjacency")
	}
	if s.Adjacent(Span{File: 1, Start: 21, End: 22}) {
		t.Errorf("unexpected adjacency across a gap")
	}
	if s.Adjacent(Span{File: 2, Start: 20, End: 21}) {
		t.Errorf("unexpected adjacency across files")
	}
	if got := s.Cover(Span{File: 1, Start: 4, End: 12}); got != (Span{File: 1, Start: 4, End: 20}) {
		t.Errorf("Cover() = %v", got)
	}
	if got := s.ShiftLeft(15); got != s {
		t.Errorf("ShiftLeft past zero should keep span, got %v", got)
	}
	if got := s.ShiftLeft(10); got != (Span{File: 1, Start: 0, End: 10}) {
		t.Errorf("ShiftLeft(10) = %v", got)
	}
	if got := s.ShiftRight(5); got != (Span{File: 1, Start: 15, End: 25}) {
		t.Errorf("ShiftRight(5) = %v", got)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.bal", []byte("int x;\nstring y;\n\nz"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{6, LineCol{1, 7}}, // the newline itself
		{7, LineCol{2, 1}},
		{17, LineCol{3, 1}},
		{18, LineCol{4, 1}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %v, want %v", tt.off, start, tt.want)
		}
	}
	f := fs.Get(id)
	if got := f.GetLine(2); got != "string y;" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(3); got != "" {
		t.Errorf("GetLine(3) = %q", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Errorf("GetLine(9) = %q", got)
	}
	if got := fs.Text(Span{File: id, Start: 7, End: 13}); got != "string" {
		t.Errorf("Text() = %q", got)
	}
}

func TestVersioning(t *testing.T) {
	fs := NewFileSet()
	id1 := fs.AddVirtual("m.bal", []byte("a"))
	id2 := fs.AddVirtual("./m.bal", []byte("b"))
	if id1 == id2 {
		t.Fatalf("expected distinct ids")
	}
	latest, ok := fs.GetLatest("m.bal")
	if !ok || latest != id2 {
		t.Errorf("GetLatest = %d,%v want %d", latest, ok, id2)
	}
	if string(fs.Get(id1).Content) != "a" {
		t.Errorf("old version lost")
	}
	if fs.Get(FileID(99)) != nil {
		t.Errorf("Get on unknown id should be nil")
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.bal")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFint a;\r\nint b;\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "int a;\nint b;\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b", f.Flags)
	}
	if got := fs.DisplayPath(id); got != "crlf.bal" {
		t.Errorf("DisplayPath = %q", got)
	}
	if _, err := fs.Load(filepath.Join(dir, "missing.bal")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	a := in.Intern("foo")
	b := in.Intern("bar")
	if in.Intern("foo") != a || a == b || a == NoStringID {
		t.Fatalf("unexpected ids %d %d", a, b)
	}
	if s, ok := in.Lookup(b); !ok || s != "bar" {
		t.Errorf("Lookup = %q %v", s, ok)
	}
	if _, ok := in.Lookup(StringID(42)); ok {
		t.Errorf("Lookup of unknown id succeeded")
	}
	if in.Len() != 3 {
		t.Errorf("Len = %d", in.Len())
	}
}
