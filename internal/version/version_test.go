package version

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func withPlainOutput(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func override(t *testing.T, v, commit, msg, date string) {
	t.Helper()
	ov, oc, om, od := Version, GitCommit, GitMessage, BuildDate
	Version, GitCommit, GitMessage, BuildDate = v, commit, msg, date
	t.Cleanup(func() { Version, GitCommit, GitMessage, BuildDate = ov, oc, om, od })
}

func TestColoredKeepsText(t *testing.T) {
	withPlainOutput(t)
	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3", "1.2.3"},
		{"0.4.0-dev", "0.4.0-dev"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			override(t, tt.in, "", "", "")
			if got := Colored(); got != tt.want {
				t.Errorf("Colored() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrint(t *testing.T) {
	withPlainOutput(t)
	tests := []struct {
		name    string
		commit  string
		msg     string
		date    string
		want    []string
		notWant []string
	}{
		{name: "bare", want: []string{"balparse 1.0.0 (grammar 0.990)"}, notWant: []string{"commit:", "built:"}},
		{name: "commit", commit: "abc123", msg: "fix lexer", want: []string{"commit: abc123 fix lexer"}},
		{name: "date", date: "2026-01-15", want: []string{"built:  2026-01-15"}, notWant: []string{"commit:"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			override(t, "1.0.0", tt.commit, tt.msg, tt.date)
			var buf bytes.Buffer
			if err := Print(&buf); err != nil {
				t.Fatal(err)
			}
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q lacks %q", out, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output %q has %q", out, w)
				}
			}
		})
	}
}
