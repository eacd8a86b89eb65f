package diagfmt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"balparse/internal/diag"
	"balparse/internal/source"
	"balparse/internal/token"
)

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("/home/user/project/src/test.bal", []byte("string s = \"unterminated\n"))
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString, source.Span{File: fileID, Start: 11, End: 24}, "unterminated string literal"))

	tests := []struct {
		name string
		mode PathMode
		want string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/test.bal:1:12"},
		{"relative", PathModeRelative, "src/test.bal:1:12"},
		{"basename", PathModeBasename, "test.bal:1:12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode}); err != nil {
				t.Fatal(err)
			}
			out := buf.String()
			if !strings.HasPrefix(out, tt.want+": ERROR LEX1002: unterminated string literal") {
				t.Errorf("output:\n%s", out)
			}
		})
	}
}

func TestPrettySnippet(t *testing.T) {
	fs, res := parseVirtual(t, "a.bal", "function f() {\n\tint a = 1\n\tint b = 2;\n}\n")
	bag := diag.NewBag(0)
	for _, d := range res.Diagnostics {
		bag.Add(d)
	}
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{ShowExpected: true}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("output:\n%s", buf.String())
	}
	if !strings.HasPrefix(lines[0], "a.bal:2:11: ERROR SYN2002") || !strings.HasSuffix(lines[0], "(expected ';')") {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "   2 | \tint a = 1" {
		t.Errorf("source line = %q", lines[1])
	}
	// The missing token is zero width at the end of "1"; tabs are kept.
	if lines[2] != "     | \t         ^" {
		t.Errorf("caret line = %q", lines[2])
	}
}

func TestPrettyWithoutLocation(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("other.bal", []byte("int x = 1;"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+errors.New("missing.bal: no such file").Error()))

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	want := "ERROR IO4001: failed to load file: missing.bal: no such file\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrettyNotesAndColor(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("n.bal", []byte("function f( { }"))
	d := diag.NewError(diag.SynMissingToken, source.Span{File: id, Start: 12, End: 12}, "missing ')'").
		WithNote(source.Span{File: id, Start: 10, End: 11}, "to match this '('")
	d.Expected = []token.Kind{token.RParen}
	bag := diag.NewBag(0)
	bag.Add(d)

	var plain, colored bytes.Buffer
	if err := Pretty(&plain, bag, fs, PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(plain.String(), "  note: n.bal:1:11: to match this '('") {
		t.Errorf("note missing:\n%s", plain.String())
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("escape codes without color")
	}
	if err := Pretty(&colored, bag, fs, PrettyOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("no escape codes with color")
	}
}
