package fuzztests

import (
	"strings"
	"testing"

	"balparse/internal/diag"
	"balparse/internal/lexer"
	"balparse/internal/source"
	"balparse/internal/token"
)

const maxFuzzInput = 1 << 16

func FuzzLexerRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input, maxFuzzInput)
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.bal", input))

		bag := diag.NewBag(64)
		toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("stream does not end with EOF")
		}
		var sb strings.Builder
		for i, tok := range toks {
			if tok.Kind == token.EOF && i != len(toks)-1 {
				t.Fatalf("EOF at %d of %d", i, len(toks))
			}
			sb.WriteString(tok.Full())
		}
		if sb.String() != string(file.Content) {
			t.Fatalf("tokens do not reproduce the input")
		}
	})
}
