package diagfmt

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"
)

func TestFormatEventsBalanced(t *testing.T) {
	_, res := parseVirtual(t, "ev.bal", "function f() { int a = 1 }")
	var buf bytes.Buffer
	if err := FormatEvents(&buf, res.Tree, res.Root); err != nil {
		t.Fatal(err)
	}
	var depth, tokens, missing int
	var first, last EventJSON
	sc := bufio.NewScanner(&buf)
	for i := 0; sc.Scan(); i++ {
		var ev EventJSON
		if err := json.Unmarshal(sc.Bytes(), &ev); err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if i == 0 {
			first = ev
		}
		last = ev
		switch ev.Event {
		case "enter":
			depth++
		case "exit":
			depth--
		case "token":
			if ev.Missing {
				missing++
			} else {
				tokens++
			}
		}
		if depth < 0 {
			t.Fatalf("exit without enter at line %d", i)
		}
	}
	if depth != 0 {
		t.Errorf("unbalanced events, depth %d", depth)
	}
	if first.Event != "enter" || last.Event != "exit" || first.Kind != "CompilationUnit" || first.Node != last.Node {
		t.Errorf("first = %+v, last = %+v", first, last)
	}
	if tokens != len(res.Tree.Tokens) || missing != 1 {
		t.Errorf("tokens = %d of %d, missing = %d", tokens, len(res.Tree.Tokens), missing)
	}
}
