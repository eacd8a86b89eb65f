package parser

import (
	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/token"
)

// canStartBinding reports the first set shared by declaration and
// reference patterns.
func (p *Parser) atBindingStart() bool {
	switch p.peek().Kind {
	case token.Ident, token.LParen, token.LBrace, token.LClosedBrace:
		return true
	case token.KwError:
		return p.atN(1, token.LParen)
	}
	return false
}

// parseBindingPattern parses a declaration pattern: name, (p, p),
// {f, f: p, ...rest}, {| f |}, or error(p[, p]).
func (p *Parser) parseBindingPattern() cst.NodeID {
	switch p.peek().Kind {
	case token.Ident:
		return p.finish(cst.CaptureBindingPattern, p.advance())
	case token.LParen:
		kids := []cst.Child{p.advance()}
		kids = p.parseCommaList(kids, token.RParen, p.parseBindingPattern)
		return p.finish(cst.TupleBindingPattern, kids...)
	case token.LBrace:
		return p.parseRecordBinding(cst.RecordBindingPattern, token.RBrace, false)
	case token.LClosedBrace:
		return p.parseRecordBinding(cst.ClosedRecordBindingPattern, token.RClosedBrace, false)
	case token.KwError:
		if p.atN(1, token.LParen) {
			return p.parseErrorBinding(false)
		}
	}
	return p.expected(cst.CaptureBindingPattern, diag.SynExpectBinding, "expected binding pattern", token.Ident)
}

// parseBindingRefPattern parses a reference pattern. It has the shapes of
// parseBindingPattern but its leaves are variable references.
func (p *Parser) parseBindingRefPattern() cst.NodeID {
	switch p.peek().Kind {
	case token.LParen:
		kids := []cst.Child{p.advance()}
		kids = p.parseCommaList(kids, token.RParen, p.parseBindingRefPattern)
		return p.finish(cst.TupleRefPattern, kids...)
	case token.LBrace:
		return p.parseRecordBinding(cst.RecordRefPattern, token.RBrace, true)
	case token.LClosedBrace:
		return p.parseRecordBinding(cst.ClosedRecordRefPattern, token.RClosedBrace, true)
	case token.KwError:
		if p.atN(1, token.LParen) {
			return p.parseErrorBinding(true)
		}
	case token.Ident:
		return p.parseVariableReference()
	}
	return p.expected(cst.NameRef, diag.SynExpectBinding, "expected binding reference", token.Ident)
}

// parseVariableReference parses a name with its postfix chain.
func (p *Parser) parseVariableReference() cst.NodeID {
	return p.parsePostfix(p.parseNameRef())
}

// parseRecordBinding parses the entries of an open or closed record
// pattern: fields, then an optional ...rest or sealed !... entry.
func (p *Parser) parseRecordBinding(kind cst.Kind, closer token.Kind, ref bool) cst.NodeID {
	fieldKind, restKind := cst.FieldBindingPattern, cst.RestBindingPattern
	if ref {
		fieldKind, restKind = cst.FieldRefPattern, cst.RestRefPattern
	}
	kids := []cst.Child{p.advance()}
	kids = p.parseCommaList(kids, closer, func() cst.NodeID {
		switch {
		case p.at(token.Ellipsis):
			rest := []cst.Child{p.advance()}
			if ref {
				rest = append(rest, node(p.parseVariableReference()))
			} else {
				rest = p.expectIdent(rest)
			}
			return p.finish(restKind, rest...)
		case p.at(token.Bang):
			rest := []cst.Child{p.advance()}
			return p.finish(restKind, p.expect(rest, token.Ellipsis)...)
		}
		field := p.expectIdent(nil)
		if p.at(token.Colon) {
			field = p.take(field)
			if ref {
				field = append(field, node(p.parseBindingRefPattern()))
			} else {
				field = append(field, node(p.parseBindingPattern()))
			}
		}
		return p.finish(fieldKind, field...)
	})
	return p.finish(kind, kids...)
}

// parseErrorBinding parses error(reason[, detail]) where detail is a name
// or a record pattern.
func (p *Parser) parseErrorBinding(ref bool) cst.NodeID {
	kind, sub := cst.ErrorBindingPattern, p.parseBindingPattern
	if ref {
		kind, sub = cst.ErrorRefPattern, p.parseBindingRefPattern
	}
	kids := []cst.Child{p.advance(), p.advance()}
	kids = append(kids, node(sub()))
	if p.at(token.Comma) {
		kids = p.take(kids)
		kids = append(kids, node(sub()))
	}
	kids = p.expect(kids, token.RParen)
	return p.finish(kind, kids...)
}
