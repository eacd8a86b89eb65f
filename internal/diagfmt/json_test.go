package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"balparse/internal/cst"
	"balparse/internal/diag"
)

func TestDiagnosticsJSON(t *testing.T) {
	fs, res := parseVirtual(t, "a.bal", "function f() {\n  x = ;\n}")
	bag := diag.NewBag(0)
	for _, d := range res.Diagnostics {
		bag.Add(d)
	}
	bag.Add(diag.NewError(diag.IOLoadFileError, res.Tree.Tokens[0].Span, "failed to load file: b.bal"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("count = %d\n%s", out.Count, buf.String())
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "SYN2011" || d.Kind != diag.KindNoViableAlternative.String() {
		t.Errorf("diagnostic = %+v", d)
	}
	if d.Location == nil || d.Location.File != "a.bal" || d.Location.StartLine != 2 || d.Location.StartCol != 7 {
		t.Errorf("location = %+v", d.Location)
	}
	if d.Token < 0 {
		t.Errorf("syntax diagnostics carry a token index, got %d", d.Token)
	}
	if io := out.Diagnostics[1]; io.Location != nil || io.Token != -1 {
		t.Errorf("I/O diagnostic has a location: %+v", io)
	}
}

func TestDiagnosticsJSONMax(t *testing.T) {
	_, res := parseVirtual(t, "a.bal", "function f() { ) ) ; x = ; y = ; }")
	bag := diag.NewBag(0)
	for _, d := range res.Diagnostics {
		bag.Add(d)
	}
	if bag.Len() < 2 {
		t.Fatalf("need several diagnostics, got %d", bag.Len())
	}
	out := BuildDiagnosticsOutput(bag, nil, JSONOpts{Max: 1})
	if out.Count != 1 {
		t.Errorf("count = %d, want 1", out.Count)
	}
}

func TestTreeJSON(t *testing.T) {
	src := "int x = 1\n"
	fs, res := parseVirtual(t, "t.bal", src)
	var buf bytes.Buffer
	if err := FormatTreeJSON(&buf, res.Tree, res.Root, res.Diagnostics, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	var out FileJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.File != "t.bal" || out.Tree == nil || out.Tree.Kind != cst.CompilationUnit.String() {
		t.Fatalf("file = %+v", out)
	}
	if out.Stats.Missing != 1 || len(out.Diagnostics) != 1 {
		t.Errorf("stats = %+v, diagnostics = %d", out.Stats, len(out.Diagnostics))
	}

	var text bytes.Buffer
	var missing int
	var walk func(n *NodeJSON)
	walk = func(n *NodeJSON) {
		for _, c := range n.Children {
			switch {
			case c.Node != nil:
				walk(c.Node)
			case c.Token != nil && c.Token.Missing:
				missing++
			case c.Token != nil:
				text.WriteString(c.Token.Text)
			}
		}
	}
	walk(out.Tree)
	if missing != 1 {
		t.Errorf("missing leaves = %d", missing)
	}
	if text.String() != "intx=1" {
		t.Errorf("leaf text = %q", text.String())
	}
}
