package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatTokens(t *testing.T) {
	fs, res := parseVirtual(t, "k.bal", "int x = 1; // one\n")
	toks := res.Tree.Tokens

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(pretty.String(), "\n"), "\n")
	if len(lines) != len(toks) {
		t.Fatalf("lines = %d, tokens = %d", len(lines), len(toks))
	}
	if lines[0] != "  0: int             at 1:1-1:4" {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], `"x" at 1:5-1:6 (leading: Space)`) {
		t.Errorf("second line = %q", lines[1])
	}
	if last := lines[len(lines)-1]; !strings.Contains(last, "EOF") || !strings.Contains(last, "LineComment") {
		t.Errorf("comment trivia belongs to EOF: %q", last)
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	for _, tok := range out {
		for _, tv := range tok.Leading {
			sb.WriteString(tv.Text)
		}
		sb.WriteString(tok.Text)
	}
	if sb.String() != "int x = 1; // one\n" {
		t.Errorf("JSON tokens do not cover the source: %q", sb.String())
	}
}
