package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"balparse/internal/diag"
	"balparse/internal/source"
)

// Pretty writes the diagnostics of bag in a human-readable form, in bag
// order (call bag.Sort first for positional order):
//
//	path:line:col: ERROR SYN2002: missing ';'
//	   3 |     int a = 1
//	     |              ^
//
// Lexical and I/O diagnostics without a resolvable file print the header only.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if err := prettyOne(w, d, fs, opts, pal); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) error {
	sev := pal.errorSev
	switch d.Severity {
	case diag.SevWarning:
		sev = pal.warnSev
	case diag.SevInfo:
		sev = pal.infoSev
	}
	msg := d.Message
	if opts.ShowExpected && len(d.Expected) > 0 {
		msg += " (expected " + expectedList(d) + ")"
	}
	f := locate(fs, d)
	if f == nil {
		_, err := fmt.Fprintf(w, "%s %s: %s\n", sev.Sprint(d.Severity), pal.code.Sprint(d.Code.ID()), msg)
		return err
	}
	start, _ := fs.Resolve(d.Primary)
	loc := fmt.Sprintf("%s:%d:%d", displayPath(fs, d.Primary.File, opts.PathMode), start.Line, start.Col)
	if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n", pal.path.Sprint(loc), sev.Sprint(d.Severity), pal.code.Sprint(d.Code.ID()), msg); err != nil {
		return err
	}
	if err := writeSnippet(w, fs, f, d.Primary, pal); err != nil {
		return err
	}
	if !opts.ShowNotes {
		return nil
	}
	for _, n := range d.Notes {
		ns, _ := fs.Resolve(n.Span)
		nloc := fmt.Sprintf("%s:%d:%d", displayPath(fs, n.Span.File, opts.PathMode), ns.Line, ns.Col)
		if _, err := fmt.Fprintf(w, "  %s %s: %s\n", pal.note.Sprint("note:"), nloc, n.Msg); err != nil {
			return err
		}
	}
	return nil
}

// writeSnippet prints the first line of span with a caret underline. A
// zero-width span gets a single caret.
func writeSnippet(w io.Writer, fs *source.FileSet, f *source.File, span source.Span, pal palette) error {
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	if line == "" && span.Empty() && start.Col > 1 {
		return nil
	}
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	} else if end.Line > start.Line && len(line) >= int(start.Col) {
		width = len(line) - int(start.Col) + 1
	}
	gutter := fmt.Sprintf("%4d", start.Line)
	pad := strings.Repeat(" ", len(gutter))
	indent := caretIndent(line, int(start.Col)-1)
	_, err := fmt.Fprintf(w, "%s | %s\n%s | %s%s\n",
		pal.dim.Sprint(gutter), line,
		pad, indent, pal.caret.Sprint("^"+strings.Repeat("~", max(width-1, 0))))
	return err
}

// caretIndent keeps tabs so that the caret lines up under the source text.
func caretIndent(line string, n int) string {
	if n > len(line) {
		n = len(line)
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if line[i] == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func expectedList(d diag.Diagnostic) string {
	names := make([]string, len(d.Expected))
	for i, k := range d.Expected {
		names[i] = "'" + k.String() + "'"
	}
	return strings.Join(names, ", ")
}

// locate returns the file a diagnostic points into. I/O failures have no
// source position.
func locate(fs *source.FileSet, d diag.Diagnostic) *source.File {
	if fs == nil || d.Code >= diag.IOLoadFileError {
		return nil
	}
	return fs.Get(d.Primary.File)
}
