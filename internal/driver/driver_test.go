package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"balparse/internal/diag"
	"balparse/internal/observ"
	"balparse/internal/trace"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestListSources(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"b.bal":          "",
		"a.bal":          "",
		"pkg/c.bal":      "",
		"notes.txt":      "",
		".cache/x.bal":   "",
		"target/gen.bal": "",
	})
	files, err := ListSources(dir)
	if err != nil {
		t.Fatal(err)
	}
	var rel []string
	for _, f := range files {
		r, _ := filepath.Rel(dir, f)
		rel = append(rel, filepath.ToSlash(r))
	}
	if got := strings.Join(rel, ","); got != "a.bal,b.bal,pkg/c.bal" {
		t.Errorf("sources = %s", got)
	}
}

func TestParseDirKeepsOrder(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.bal": "function a() { int x = 1; }",
		"b.bal": "function b() { int x = 1 }",
		"c.bal": "import ballerina/io;",
	})
	var mu sync.Mutex
	var events []Event
	timer := observ.NewTimer()
	ring := trace.NewRingTracer(64, trace.LevelDetail)
	batch, err := ParseDir(context.Background(), dir, Options{
		Jobs:     2,
		Timer:    timer,
		Progress: SinkFunc(func(ev Event) { mu.Lock(); events = append(events, ev); mu.Unlock() }),
		Tracer:   ring,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(batch.Files) != 3 {
		t.Fatalf("files = %d", len(batch.Files))
	}
	for i, name := range []string{"a.bal", "b.bal", "c.bal"} {
		f := batch.Files[i]
		if filepath.Base(f.Path) != name {
			t.Errorf("file %d = %s", i, f.Path)
		}
		if f.Tree == nil || f.Tree.Reconstruct(f.Root) != string(f.File.Content) {
			t.Errorf("%s: tree does not reproduce the file", name)
		}
	}
	if batch.Files[0].HasErrors() || !batch.Files[1].HasErrors() || batch.Files[2].HasErrors() {
		t.Errorf("only b.bal should have errors")
	}
	if !batch.HasErrors() {
		t.Errorf("batch should report errors")
	}

	var done, failed int
	for _, ev := range events {
		if ev.File == "" {
			continue
		}
		switch ev.Status {
		case StatusDone:
			done++
		case StatusError:
			failed++
		}
	}
	if done != 2 || failed != 1 {
		t.Errorf("done = %d, failed = %d", done, failed)
	}
	if n := len(timer.Report().Phases); n != 6 {
		t.Errorf("timed phases = %d, want 6", n)
	}

	fileSpans := map[uint64]string{}
	parses := 0
	for _, ev := range ring.Snapshot() {
		if ev.Kind != trace.KindSpanBegin {
			continue
		}
		switch {
		case ev.Scope == trace.ScopeFile && ev.Name == "file":
			fileSpans[ev.SpanID] = ev.File
		case ev.Scope == trace.ScopePass && ev.Name == "parse":
			parses++
			if f, ok := fileSpans[ev.ParentID]; !ok || f != ev.File {
				t.Errorf("parse span for %q is not under its file span", ev.File)
			}
		}
	}
	if parses != 3 {
		t.Errorf("parse spans = %d, want 3", parses)
	}
}

func TestTokenizeFileHasNoTree(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.bal": "int x = 1;"})
	batch, err := TokenizeFile(context.Background(), filepath.Join(dir, "a.bal"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	f := batch.Files[0]
	if f.Tree != nil || len(f.Tokens) != 6 {
		t.Errorf("tokens = %d, tree = %v", len(f.Tokens), f.Tree != nil)
	}
}

func TestMissingFileIsADiagnostic(t *testing.T) {
	batch, err := ParseFile(context.Background(), filepath.Join(t.TempDir(), "nope.bal"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	items := batch.Files[0].Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOLoadFileError {
		t.Errorf("diagnostics = %+v", items)
	}
}

func TestParseSourceCapsDiagnostics(t *testing.T) {
	src := "function f() { int a = 1 int b = 2 int c = 3 int d = 4 }"
	batch, err := ParseSource(context.Background(), "<stdin>", []byte(src), Options{MaxDiagnostics: 2})
	if err != nil {
		t.Fatal(err)
	}
	if n := batch.Files[0].Bag.Len(); n != 2 {
		t.Errorf("diagnostics = %d, want 2", n)
	}
}

func TestCancelledContext(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.bal": "int x = 1;"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ParseDir(ctx, dir, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
	if _, err := ParseSource(ctx, "x", nil, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
}

func TestDiskCacheReplaysTreeAndDiagnostics(t *testing.T) {
	src := "function f() {\n    int a = 1\n}\n"
	dir := writeTree(t, map[string]string{"a.bal": src})
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "a.bal")
	opts := Options{Cache: cache}

	first, err := ParseFile(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ParseFile(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	a, b := first.Files[0], second.Files[0]
	if a.Cached || !b.Cached {
		t.Fatalf("cached = %v, %v", a.Cached, b.Cached)
	}
	if got := b.Tree.Reconstruct(b.Root); got != src {
		t.Errorf("cached round trip = %q", got)
	}
	if a.Tree.Nodes.Len() != b.Tree.Nodes.Len() {
		t.Errorf("nodes = %d, cached %d", a.Tree.Nodes.Len(), b.Tree.Nodes.Len())
	}
	da, db := a.Bag.Items(), b.Bag.Items()
	if len(da) != 1 || len(db) != 1 {
		t.Fatalf("diagnostics = %d, cached %d", len(da), len(db))
	}
	if da[0].Code != db[0].Code || da[0].Primary != db[0].Primary || da[0].Message != db[0].Message {
		t.Errorf("cached diagnostic = %+v, want %+v", db[0], da[0])
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	third, err := ParseFile(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.Files[0].Cached {
		t.Errorf("tree served after DropAll")
	}
}
