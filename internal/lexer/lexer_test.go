package lexer_test

import (
	"strings"
	"testing"
	"time"

	"balparse/internal/diag"
	"balparse/internal/lexer"
	"balparse/internal/source"
	"balparse/internal/token"
)

func lex(t *testing.T, input string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.bal", []byte(input))
	bag := diag.NewBag(0)
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tk := range toks {
		out = append(out, tk.Kind)
	}
	return out
}

func sameKinds(got, want []token.Kind) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestTokenKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{
			name:  "var def",
			input: "int x = 10;",
			want:  []token.Kind{token.KwInt, token.Ident, token.Assign, token.IntLit, token.Semicolon, token.EOF},
		},
		{
			name:  "shift is two tokens",
			input: "a >> 2",
			want:  []token.Kind{token.Ident, token.Gt, token.Gt, token.IntLit, token.EOF},
		},
		{
			name:  "nested type args",
			input: "map<map<int>>",
			want:  []token.Kind{token.KwMap, token.Lt, token.KwMap, token.Lt, token.KwInt, token.Gt, token.Gt, token.EOF},
		},
		{
			name:  "compound shifts",
			input: "a <<= 1; b >>>= 2;",
			want: []token.Kind{token.Ident, token.ShlAssign, token.IntLit, token.Semicolon,
				token.Ident, token.UShrAssign, token.IntLit, token.Semicolon, token.EOF},
		},
		{
			name:  "arrows",
			input: "a -> b; c ->> w; <- w; x => y",
			want: []token.Kind{token.Ident, token.Arrow, token.Ident, token.Semicolon,
				token.Ident, token.SyncArrow, token.Ident, token.Semicolon,
				token.LArrow, token.Ident, token.Semicolon,
				token.Ident, token.FatArrow, token.Ident, token.EOF},
		},
		{
			name:  "ranges",
			input: "1...5 1..<5 1..5",
			want: []token.Kind{token.IntLit, token.Ellipsis, token.IntLit, token.IntLit, token.HalfOpenRange,
				token.IntLit, token.IntLit, token.DotDot, token.IntLit, token.EOF},
		},
		{
			name:  "numbers",
			input: ".5 0x1F 0b101 1.5 2e10 3f 0x1.8p3",
			want: []token.Kind{token.FloatLit, token.IntLit, token.IntLit, token.FloatLit, token.FloatLit,
				token.FloatLit, token.FloatLit, token.EOF},
		},
		{
			name:  "field access is not a float",
			input: "a.b x).c",
			want:  []token.Kind{token.Ident, token.Dot, token.Ident, token.Ident, token.RParen, token.Dot, token.Ident, token.EOF},
		},
		{
			name:  "closed record delimiters",
			input: "record {| int a; |}",
			want:  []token.Kind{token.KwRecord, token.LClosedBrace, token.KwInt, token.Ident, token.Semicolon, token.RClosedBrace, token.EOF},
		},
		{
			name:  "elvis and optional access",
			input: "a ?: b?.c",
			want:  []token.Kind{token.Ident, token.Elvis, token.Ident, token.QuestionDot, token.Ident, token.EOF},
		},
		{
			name:  "contextual words stay identifiers",
			input: "select window",
			want:  []token.Kind{token.Ident, token.Ident, token.EOF},
		},
		{
			name:  "blobs",
			input: "base16 `aa bb` base64 `aGVsbG8=`",
			want:  []token.Kind{token.BlobLit, token.BlobLit, token.EOF},
		},
		{
			name:  "quoted identifier",
			input: `^"a b" = 1;`,
			want:  []token.Kind{token.Ident, token.Assign, token.IntLit, token.Semicolon, token.EOF},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, bag := lex(t, tt.input)
			if got := kinds(toks); !sameKinds(got, tt.want) {
				t.Fatalf("kinds = %v\nwant %v", got, tt.want)
			}
			if bag.Len() != 0 {
				t.Fatalf("unexpected diagnostics: %+v", bag.Items())
			}
		})
	}
}

func TestStringTemplate(t *testing.T) {
	toks, bag := lex(t, "string `Hello ${name}, {${ {a: 1}.a }}!`;")
	want := []token.Kind{
		token.TemplateStart, token.TemplateText, token.InterpStart, token.Ident, token.InterpEnd,
		token.TemplateText, token.InterpStart, token.LBrace, token.Ident, token.Colon, token.IntLit,
		token.RBrace, token.Dot, token.Ident, token.InterpEnd, token.TemplateText, token.TemplateEnd,
		token.Semicolon, token.EOF,
	}
	if got := kinds(toks); !sameKinds(got, want) {
		t.Fatalf("kinds = %v\nwant %v", got, want)
	}
	if toks[1].Text != "Hello " || toks[5].Text != ", {" {
		t.Errorf("text runs = %q %q", toks[1].Text, toks[5].Text)
	}
	if bag.Len() != 0 {
		t.Errorf("diagnostics: %+v", bag.Items())
	}
}

func TestXMLLiteral(t *testing.T) {
	src := "xml `<p:a id=\"x${i}\" k='v'>hi<!-- c ${n} --><?pi data?><![CDATA[<>]]><b/></p:a>`"
	toks, bag := lex(t, src)
	want := []token.Kind{
		token.XMLStart,
		token.XMLTagOpen, token.XMLName, token.XMLColon, token.XMLName,
		token.XMLName, token.XMLEquals, token.XMLDQuoteStart, token.XMLQuotedText, token.InterpStart, token.Ident, token.InterpEnd, token.XMLDQuoteEnd,
		token.XMLName, token.XMLEquals, token.XMLSQuoteStart, token.XMLQuotedText, token.XMLSQuoteEnd,
		token.XMLTagClose,
		token.XMLText,
		token.XMLCommentStart, token.XMLCommentText, token.InterpStart, token.Ident, token.InterpEnd, token.XMLCommentText, token.XMLCommentEnd,
		token.XMLPIStart, token.XMLName, token.XMLPIText, token.XMLPIEnd,
		token.XMLCDATA,
		token.XMLTagOpen, token.XMLName, token.XMLTagSlashClose,
		token.XMLTagOpenSlash, token.XMLName, token.XMLColon, token.XMLName, token.XMLTagClose,
		token.XMLEnd, token.EOF,
	}
	if got := kinds(toks); !sameKinds(got, want) {
		t.Fatalf("kinds = %v\nwant %v", got, want)
	}
	if bag.Len() != 0 {
		t.Errorf("diagnostics: %+v", bag.Items())
	}
}

func TestXMLTagRejectsNonNameRunes(t *testing.T) {
	tests := []struct {
		input     string
		wantError bool
	}{
		{"xml `<\xe1", true},
		{"xml `<a \xe1>`", true},
		{"xml `<a ©>`", true},
		{"xml `<©/>`", true},
		{"xml `<?©?>`", false},
	}
	for _, tt := range tests {
		type out struct {
			toks []token.Token
			bag  *diag.Bag
		}
		done := make(chan out, 1)
		go func() {
			toks, bag := lex(t, tt.input)
			done <- out{toks, bag}
		}()
		var res out
		select {
		case res = <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("%q: tokenize did not finish", tt.input)
		}
		var sb strings.Builder
		for i, tk := range res.toks {
			if tk.Kind != token.EOF && tk.Text == "" {
				t.Errorf("%q: empty %s token at %d", tt.input, tk.Kind, i)
			}
			sb.WriteString(tk.Full())
		}
		if n := len(res.toks); n == 0 || res.toks[n-1].Kind != token.EOF {
			t.Errorf("%q: stream does not end in EOF", tt.input)
		}
		if sb.String() != tt.input {
			t.Errorf("%q: round trip = %q", tt.input, sb.String())
		}
		if !tt.wantError {
			continue
		}
		found := false
		for _, d := range res.bag.Items() {
			if d.Code == diag.LexUnknownChar {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: expected %s, got %+v", tt.input, diag.LexUnknownChar.ID(), res.bag.Items())
		}
	}
}

func TestDocumentationLines(t *testing.T) {
	src := "# Adds `a` to type `T`.\n# + a - the ``value``\n# + return - sum\nfunction f() {}"
	toks, _ := lex(t, src)
	want := []token.Kind{
		token.DocHash, token.DocText, token.DocCode1, token.DocText, token.DocRefKind, token.DocCode1, token.DocText,
		token.DocHash, token.DocPlus, token.DocParam, token.DocMinus, token.DocText, token.DocCode2,
		token.DocHash, token.DocPlus, token.DocReturn, token.DocMinus, token.DocText,
		token.KwFunction, token.Ident, token.LParen, token.RParen, token.LBrace, token.RBrace, token.EOF,
	}
	if got := kinds(toks); !sameKinds(got, want) {
		t.Fatalf("kinds = %v\nwant %v", got, want)
	}
	if toks[1].Text != "Adds " || toks[3].Text != " to " {
		t.Errorf("text = %q %q", toks[1].Text, toks[3].Text)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"import ballerina/io;\n\n// comment\npublic function main() {\n\tio:println(\"hi\");\n}\n",
		"string `a ${b} c`",
		"xml `<a x=\"1\">t</a>`  // tail\n",
		"# doc `x`\n#+ p - q\ntype T int;",
		"int x = @@;",
		"\"unterminated\nnext",
	}
	for _, in := range inputs {
		toks, _ := lex(t, in)
		var sb strings.Builder
		for _, tk := range toks {
			sb.WriteString(tk.Full())
		}
		if sb.String() != in {
			t.Errorf("round trip mismatch:\n got %q\nwant %q", sb.String(), in)
		}
	}
}

func TestLexicalDiagnostics(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"\"abc", diag.LexUnterminatedString},
		{"string `abc", diag.LexUnterminatedTemplate},
		{"xml `<a>", diag.LexUnterminatedXML},
		{"base16 `abc`", diag.LexBadBlob},
		{"int a = 0b;", diag.LexBadNumber},
		{"a $ b", diag.LexUnknownChar},
		{"Café = 1;", diag.LexNonNormalIdent},
	}
	for _, tt := range tests {
		_, bag := lex(t, tt.input)
		found := false
		for _, d := range bag.Items() {
			if d.Code == tt.code {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: expected %s, got %+v", tt.input, tt.code.ID(), bag.Items())
		}
	}
}
