package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"balparse/internal/source"
	"balparse/internal/token"
)

type TriviaOutput struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type TokenOutput struct {
	Index   int            `json:"index"`
	Kind    string         `json:"kind"`
	Text    string         `json:"text,omitempty"`
	Span    source.Span    `json:"span"`
	Leading []TriviaOutput `json:"leading,omitempty"`
}

// FormatTokensPretty writes one token per line:
//
//	  3: identifier      "main" at 1:17-1:21 (leading: Space)
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		var sb strings.Builder
		fmt.Fprintf(&sb, "%3d: %-15s", i, tok.Kind.String())
		if tok.Text != "" && tok.Text != tok.Kind.String() {
			fmt.Fprintf(&sb, " %q", tok.Text)
		}
		fmt.Fprintf(&sb, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if len(tok.Leading) > 0 {
			kinds := make([]string, len(tok.Leading))
			for j, tr := range tok.Leading {
				kinds[j] = tr.Kind.String()
			}
			fmt.Fprintf(&sb, " (leading: %s)", strings.Join(kinds, ", "))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the token stream, trivia included, as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for i, tok := range tokens {
		out := TokenOutput{
			Index: i,
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Span:  tok.Span,
		}
		for _, tr := range tok.Leading {
			out.Leading = append(out.Leading, TriviaOutput{Kind: tr.Kind.String(), Text: tr.Text})
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}
	return writeJSON(w, output)
}
