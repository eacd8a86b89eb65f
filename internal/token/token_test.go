package token_test

import (
	"strings"
	"testing"

	"balparse/internal/token"
)

func TestKindNames(t *testing.T) {
	for k := 0; k < token.Count(); k++ {
		kind := token.Kind(k)
		if strings.HasPrefix(kind.String(), "Kind(") {
			t.Errorf("kind %d has no name", k)
		}
	}
	tests := map[token.Kind]string{
		token.KwImport:     "import",
		token.SyncArrow:    "->>",
		token.LClosedBrace: "{|",
		token.UShrAssign:   ">>>=",
		token.CtxWindow:    "window",
		token.Ident:        "Ident",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestKeywordLookup(t *testing.T) {
	for _, w := range []string{"import", "checkpanic", "anydata", "forever", "from", "null"} {
		k, ok := token.LookupKeyword(w)
		if !ok || k.String() != w {
			t.Errorf("LookupKeyword(%q) = %v, %v", w, k, ok)
		}
		if !k.IsKeyword() {
			t.Errorf("%q should be reserved", w)
		}
	}
	for _, w := range []string{"select", "window", "unidirectional", "Import", "seconds"} {
		if _, ok := token.LookupKeyword(w); ok {
			t.Errorf("%q must not be reserved", w)
		}
	}
	if k, ok := token.LookupContextual("minutes"); !ok || k != token.CtxTimeScale {
		t.Errorf("minutes = %v, %v", k, ok)
	}
}

func TestContextualMatch(t *testing.T) {
	sel := token.Token{Kind: token.Ident, Text: "select"}
	if !sel.Is(token.CtxSelect) {
		t.Errorf("identifier select should match CtxSelect")
	}
	if sel.Is(token.CtxWhere) {
		t.Errorf("identifier select must not match CtxWhere")
	}
	if (token.Token{Kind: token.Ident, Text: "from"}).Is(token.KwFrom) {
		t.Errorf("from is reserved and never matched by spelling")
	}
	if !(token.Token{Kind: token.CtxInner, Text: "inner"}).Is(token.CtxInner) {
		t.Errorf("dedicated kind should match")
	}
}

func TestPredicates(t *testing.T) {
	if !token.KwStream.IsBuiltinType() || token.KwVar.IsBuiltinType() {
		t.Errorf("IsBuiltinType mismatch")
	}
	if !token.ShlAssign.IsCompoundAssign() || token.Assign.IsCompoundAssign() {
		t.Errorf("IsCompoundAssign mismatch")
	}
	if !(token.Token{Kind: token.KwNull}).IsLiteral() || (token.Token{Kind: token.Ident}).IsLiteral() {
		t.Errorf("IsLiteral mismatch")
	}
	if !(token.Token{Kind: token.Ident, Text: `^"a b"`}).IsQuotedIdent() {
		t.Errorf("quoted identifier not recognized")
	}
	full := token.Token{Text: "x", Leading: []token.Trivia{{Text: " "}, {Text: "// c\n"}}}
	if full.Full() != " // c\nx" {
		t.Errorf("Full() = %q", full.Full())
	}
}
