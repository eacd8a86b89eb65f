package parser

import (
	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/token"
)

// parseIfElse parses if e {..} (else if e {..})* [else {..}].
func (p *Parser) parseIfElse() cst.NodeID {
	clause := []cst.Child{p.advance()}
	clause = append(clause, node(p.parseExpression()))
	clause = append(clause, node(p.parseBlock()))
	kids := []cst.Child{node(p.finish(cst.IfClause, clause...))}
	for p.at(token.KwElse) {
		if p.atN(1, token.KwIf) {
			elseIf := []cst.Child{p.advance(), p.advance()}
			elseIf = append(elseIf, node(p.parseExpression()))
			elseIf = append(elseIf, node(p.parseBlock()))
			kids = append(kids, node(p.finish(cst.ElseIfClause, elseIf...)))
			continue
		}
		els := []cst.Child{p.advance()}
		els = append(els, node(p.parseBlock()))
		kids = append(kids, node(p.finish(cst.ElseClause, els...)))
		break
	}
	return p.finish(cst.IfElseStmt, kids...)
}

// parseMatch parses match e { clause+ }.
func (p *Parser) parseMatch() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = append(kids, node(p.parseExpression()))
	kids = p.expect(kids, token.LBrace)
	for !p.at_or(token.RBrace, token.EOF) {
		before := p.pos
		kids = append(kids, node(p.parseMatchClause()))
		if p.pos == before {
			kids = p.resyncStmt(kids)
		}
	}
	kids = p.expect(kids, token.RBrace)
	return p.finish(cst.MatchStmt, kids...)
}

// parseMatchClause parses a static pattern (lit | lit ...) or a
// var pattern [if guard], then => and a block or a single statement.
func (p *Parser) parseMatchClause() cst.NodeID {
	var kids []cst.Child
	if p.at(token.KwVar) {
		pat := []cst.Child{p.advance()}
		pat = append(pat, node(p.parseBindingPattern()))
		if p.at(token.KwIf) {
			pat = p.take(pat)
			pat = append(pat, node(p.parseExpression()))
		}
		kids = append(kids, node(p.finish(cst.VarMatchPattern, pat...)))
	} else {
		pat := []cst.Child{node(p.parseStaticMatchItem())}
		for p.at(token.Pipe) {
			pat = p.take(pat)
			pat = append(pat, node(p.parseStaticMatchItem()))
		}
		kids = append(kids, node(p.finish(cst.StaticMatchPattern, pat...)))
	}
	kids = p.expect(kids, token.FatArrow)
	if p.at(token.LBrace) {
		kids = append(kids, node(p.parseBlock()))
	} else {
		kids = append(kids, node(p.parseStatement()))
	}
	return p.finish(cst.MatchClause, kids...)
}

// parseStaticMatchItem parses one alternative of a static pattern: a
// simple literal, a record or tuple literal, or a constant name.
func (p *Parser) parseStaticMatchItem() cst.NodeID {
	switch {
	case p.atLiteralStart():
		return p.parseSimpleLiteral()
	case p.at(token.LBrace):
		return p.parseRecordLiteral()
	case p.at(token.LParen):
		return p.parseParenExpr()
	case p.at(token.Ident):
		return p.parseNameRef()
	}
	return p.expected(cst.NameRef, diag.SynNoViableAlt, "expected match pattern", token.Ident)
}

// parseForeach parses foreach [(] (T | var) pattern in e [)] { .. }.
func (p *Parser) parseForeach() cst.NodeID {
	kids := []cst.Child{p.advance()}
	paren := false
	if p.at(token.LParen) {
		j := p.scanType(p.pos)
		if j < 0 || !p.bindingStartAt(j) {
			paren = true
			kids = p.take(kids)
		}
	}
	if p.at(token.KwVar) {
		kids = p.take(kids)
	} else {
		kids = append(kids, node(p.parseTypeDescriptor()))
	}
	kids = append(kids, node(p.parseBindingPattern()))
	kids = p.expect(kids, token.KwIn)
	kids = append(kids, node(p.parseExpression()))
	if paren {
		kids = p.expect(kids, token.RParen)
	}
	kids = append(kids, node(p.parseBlock()))
	return p.finish(cst.ForeachStmt, kids...)
}

func (p *Parser) bindingStartAt(i int) bool {
	switch p.tokAt(i).Kind {
	case token.Ident, token.LParen, token.LBrace, token.LClosedBrace:
		return true
	case token.KwError:
		return p.tokAt(i+1).Kind == token.LParen
	}
	return false
}

// parseForkJoin parses fork { worker+ }.
func (p *Parser) parseForkJoin() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = p.expect(kids, token.LBrace)
	for !p.at_or(token.RBrace, token.EOF) {
		if !p.at(token.KwWorker) {
			p.err(diag.SynUnexpectedToken, "expected worker declaration", token.KwWorker)
			kids = p.resyncStmt(kids)
			continue
		}
		kids = append(kids, node(p.parseWorkerDecl()))
	}
	kids = p.expect(kids, token.RBrace)
	return p.finish(cst.ForkJoinStmt, kids...)
}

// parseTryCatch parses try {..} (catch (T e) {..})* [finally {..}].
func (p *Parser) parseTryCatch() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = append(kids, node(p.parseBlock()))
	for p.at(token.KwCatch) {
		c := []cst.Child{p.advance()}
		c = p.expect(c, token.LParen)
		c = append(c, node(p.parseTypeDescriptor()))
		c = p.expectIdent(c)
		c = p.expect(c, token.RParen)
		c = append(c, node(p.parseBlock()))
		kids = append(kids, node(p.finish(cst.CatchClause, c...)))
	}
	if p.at(token.KwFinally) {
		f := []cst.Child{p.advance()}
		f = append(f, node(p.parseBlock()))
		kids = append(kids, node(p.finish(cst.FinallyClause, f...)))
	}
	return p.finish(cst.TryCatchStmt, kids...)
}

// parseTransaction parses transaction [with retries = e, ..] {..} followed
// by optional onretry, committed and aborted blocks.
func (p *Parser) parseTransaction() cst.NodeID {
	kids := []cst.Child{p.advance()}
	if p.at(token.KwWith) {
		props := []cst.Child{p.advance()}
		for {
			if p.at(token.KwRetries) {
				props = p.take(props)
			} else {
				props = p.expectIdent(props)
			}
			props = p.expect(props, token.Assign)
			props = append(props, node(p.parseExpression()))
			if !p.at(token.Comma) {
				break
			}
			props = p.take(props)
		}
		kids = append(kids, node(p.finish(cst.TransactionProps, props...)))
	}
	kids = append(kids, node(p.parseBlock()))
	clauses := []struct {
		kw   token.Kind
		kind cst.Kind
	}{
		{token.KwOnretry, cst.OnRetryClause},
		{token.KwCommitted, cst.CommittedClause},
		{token.KwAborted, cst.AbortedClause},
	}
	for _, c := range clauses {
		if p.at(c.kw) {
			cl := []cst.Child{p.advance()}
			cl = append(cl, node(p.parseBlock()))
			kids = append(kids, node(p.finish(c.kind, cl...)))
		}
	}
	return p.finish(cst.TransactionStmt, kids...)
}

// parseForever parses forever { streamingQuery+ }.
func (p *Parser) parseForever() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = p.expect(kids, token.LBrace)
	for !p.at_or(token.RBrace, token.EOF) {
		if !p.at(token.KwFrom) {
			p.err(diag.SynExpectQueryClause, "expected streaming query", token.KwFrom)
			kids = p.resyncStmt(kids)
			continue
		}
		kids = append(kids, node(p.parseStreamingQuery()))
	}
	kids = p.expect(kids, token.RBrace)
	return p.finish(cst.ForeverStmt, kids...)
}
