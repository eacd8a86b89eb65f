package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "jobs = 2\n")
	src := filepath.Join(root, "a", "b", "main.bal")
	writeFile(t, src, "")

	for _, start := range []string{src, filepath.Dir(src), root} {
		path, ok, err := Find(start)
		if err != nil || !ok {
			t.Fatalf("Find(%s) = %q, %v, %v", start, path, ok, err)
		}
		if filepath.Dir(path) != root {
			t.Errorf("Find(%s) = %s", start, path)
		}
	}
}

func TestDiscoverWithoutFile(t *testing.T) {
	dir := t.TempDir()
	if _, ok, err := Find(dir); err != nil || ok {
		// A balparse.toml above the temp dir would make this test meaningless.
		t.Skipf("settings file found above %s", dir)
	}
	cfg, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `max_diagnostics = 20
format = "json"
jobs = 4

[trace]
level = "Phase"
output = "trace.ndjson"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDiagnostics != 20 || cfg.Format != "json" || cfg.Jobs != 4 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Color != "auto" || cfg.Trace.Mode != "stream" {
		t.Errorf("defaults were not kept for absent keys: %+v", cfg)
	}
	if cfg.Trace.Level != "Phase" || cfg.Trace.Output != "trace.ndjson" || cfg.Path != path {
		t.Errorf("trace = %+v, path = %s", cfg.Trace, cfg.Path)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "jobs = ", "failed to parse TOML"},
		{"unknown key", "jobz = 1\n", "unknown keys: jobz"},
		{"unknown nested key", "[trace]\nsink = \"x\"\n", "unknown keys: trace.sink"},
		{"bad color", "color = \"always\"\n", "color must be one of"},
		{"bad level", "[trace]\nlevel = \"loud\"\n", "trace.level"},
		{"negative jobs", "jobs = -1\n", "jobs must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			writeFile(t, path, tt.content)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}
