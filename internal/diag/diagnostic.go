package diag

import (
	"balparse/internal/source"
	"balparse/internal/token"
)

// Kind classifies a diagnostic by the recovery action it triggered.
type Kind uint8

const (
	KindUnexpectedToken Kind = iota
	KindMissingToken
	KindNoViableAlternative
	KindSemanticPredicateFailed
	KindUnterminatedUnit
	KindLexical
)

func (k Kind) String() string {
	switch k {
	case KindUnexpectedToken:
		return "unexpected-token"
	case KindMissingToken:
		return "missing-token"
	case KindNoViableAlternative:
		return "no-viable-alternative"
	case KindSemanticPredicateFailed:
		return "semantic-predicate-failed"
	case KindUnterminatedUnit:
		return "unterminated-unit"
	case KindLexical:
		return "lexical"
	}
	return "unknown"
}

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Kind     Kind
	Message  string
	Primary  source.Span
	Token    int
	Expected []token.Kind
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Kind:     code.DefaultKind(),
		Primary:  primary,
		Message:  msg,
		Token:    -1,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// Expects reports whether k is part of the expected set.
func (d Diagnostic) Expects(k token.Kind) bool {
	for _, e := range d.Expected {
		if e == k {
			return true
		}
	}
	return false
}
