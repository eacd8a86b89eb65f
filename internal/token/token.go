package token

import (
	"strings"

	"balparse/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a simple literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, BlobLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsQuotedIdent reports identifiers written as ^"...".
func (t Token) IsQuotedIdent() bool {
	return t.Kind == Ident && strings.HasPrefix(t.Text, `^"`)
}

// Is reports whether the token has kind k, or is an identifier spelling the
// contextual word k.
func (t Token) Is(k Kind) bool {
	if t.Kind == k {
		return true
	}
	if t.Kind != Ident || !k.IsContextual() {
		return false
	}
	ck, ok := LookupContextual(t.Text)
	return ok && ck == k
}

// IsBuiltinType reports kinds that start a built-in type descriptor.
func (k Kind) IsBuiltinType() bool {
	return k >= KwInt && k <= KwNever
}

// IsCompoundAssign reports compound assignment operators (+=, <<=, ...).
func (k Kind) IsCompoundAssign() bool {
	return k >= PlusAssign && k <= UShrAssign
}

// IsTemplatePart reports tokens that only occur inside template or XML literals.
func (k Kind) IsTemplatePart() bool {
	return k >= TemplateText && k <= XMLCDATA && k != XMLStart
}

// IsDoc reports documentation-line tokens.
func (k Kind) IsDoc() bool {
	return k >= DocHash && k <= DocCode3
}

// Full renders leading trivia followed by the token text.
func (t Token) Full() string {
	if len(t.Leading) == 0 {
		return t.Text
	}
	var sb strings.Builder
	for _, tr := range t.Leading {
		sb.WriteString(tr.Text)
	}
	sb.WriteString(t.Text)
	return sb.String()
}
