package parser

import (
	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/token"
)

// atQualified reports pkg:name at the cursor. The colon must touch both
// identifiers, which keeps `a ? b : c` a conditional.
func (p *Parser) atQualified() bool {
	return p.atQualifiedAt(p.pos)
}

func (p *Parser) atQualifiedAt(i int) bool {
	a, c, b := p.tokAt(i), p.tokAt(i+1), p.tokAt(i+2)
	return a.Kind == token.Ident && c.Kind == token.Colon && b.Kind == token.Ident &&
		a.Span.Adjacent(c.Span) && c.Span.Adjacent(b.Span)
}

// parseNameRef parses an optionally package-qualified identifier.
func (p *Parser) parseNameRef() cst.NodeID {
	if !p.at(token.Ident) {
		return p.expected(cst.NameRef, diag.SynExpectIdentifier, "expected identifier", token.Ident)
	}
	var kids []cst.Child
	if p.atQualified() {
		kids = p.take(kids)
		kids = p.take(kids)
	}
	kids = p.take(kids)
	return p.finish(cst.NameRef, kids...)
}

// atLiteralStart reports tokens that begin a simple literal, including a
// leading minus sign on a number.
func (p *Parser) atLiteralStart() bool {
	switch p.peek().Kind {
	case token.IntLit, token.FloatLit, token.StringLit, token.BlobLit,
		token.KwTrue, token.KwFalse, token.KwNull:
		return true
	case token.Minus:
		k := p.peekN(1).Kind
		return k == token.IntLit || k == token.FloatLit
	case token.LParen:
		return p.peekN(1).Kind == token.RParen
	}
	return false
}

// parseSimpleLiteral parses a literal as used by constants, finite types
// and static match patterns. The caller checks atLiteralStart.
func (p *Parser) parseSimpleLiteral() cst.NodeID {
	var kids []cst.Child
	if p.at(token.Minus) {
		kids = p.take(kids)
	}
	switch p.peek().Kind {
	case token.IntLit:
		return p.finish(cst.IntLiteral, p.take(kids)...)
	case token.FloatLit:
		return p.finish(cst.FloatLiteral, p.take(kids)...)
	case token.StringLit:
		return p.finish(cst.StringLiteral, p.take(kids)...)
	case token.BlobLit:
		return p.finish(cst.BlobLiteral, p.take(kids)...)
	case token.KwTrue, token.KwFalse:
		return p.finish(cst.BooleanLiteral, p.take(kids)...)
	case token.KwNull:
		return p.finish(cst.NullLiteral, p.take(kids)...)
	case token.LParen:
		kids = p.take(kids)
		kids = p.expect(kids, token.RParen)
		return p.finish(cst.NilLiteral, kids...)
	}
	p.err(diag.SynNoViableAlt, "expected literal", token.IntLit, token.StringLit)
	return p.finish(cst.IntLiteral, append(kids, p.missing(token.IntLit))...)
}
