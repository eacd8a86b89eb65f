package parser

import (
	"balparse/internal/cst"
	"balparse/internal/token"
)

// errorNode wraps the next n tokens into an ErrorNode. Skipping does not
// end recovery.
func (p *Parser) errorNode(n int) cst.Child {
	kids := make([]cst.Child, 0, n)
	for i := 0; i < n && !p.at(token.EOF); i++ {
		kids = append(kids, p.skipOne())
	}
	return node(p.finish(cst.ErrorNode, kids...))
}

func (p *Parser) skipOne() cst.Child {
	c := cst.Child{Kind: cst.ChildToken, Token: idx(p.pos), TokKind: p.peek().Kind}
	p.lastSpan = p.peek().Span
	p.pos++
	return c
}

// skipTokens moves at least min tokens out of the stream, then stops at
// one of stops reached at nesting depth zero, or at EOF.
func (p *Parser) skipTokens(min int, stops ...token.Kind) []cst.Child {
	var out []cst.Child
	depth := 0
	for !p.at(token.EOF) {
		if len(out) >= min && depth == 0 && p.at_or(stops...) {
			break
		}
		switch p.peek().Kind {
		case token.LBrace, token.LClosedBrace, token.LParen, token.LBracket, token.InterpStart:
			depth++
		case token.RBrace, token.RClosedBrace, token.RParen, token.RBracket, token.InterpEnd:
			if depth > 0 {
				depth--
			}
		}
		out = append(out, p.skipOne())
	}
	return out
}

// skip wraps skipped tokens into an ErrorNode appended to kids. Nothing is
// appended when nothing was skipped.
func (p *Parser) skip(kids []cst.Child, stops ...token.Kind) []cst.Child {
	skipped := p.skipTokens(0, stops...)
	if len(skipped) == 0 {
		return kids
	}
	return append(kids, node(p.finish(cst.ErrorNode, skipped...)))
}

var statementStarts = []token.Kind{
	token.KwIf, token.KwMatch, token.KwForeach, token.KwWhile, token.KwContinue,
	token.KwBreak, token.KwFork, token.KwTry, token.KwThrow, token.KwPanic,
	token.KwReturn, token.KwTransaction, token.KwAbort, token.KwRetry, token.KwLock,
	token.KwXmlns, token.KwForever, token.KwVar, token.KwFinal, token.KwConst,
	token.KwWorker,
}

var topLevelStarts = []token.Kind{
	token.KwImport, token.KwXmlns, token.KwPublic, token.KwPrivate, token.KwFunction,
	token.KwService, token.KwType, token.KwConst, token.KwListener, token.KwAnnotation,
	token.KwFinal, token.At, token.DocHash,
}

// resyncStmt skips at least one token and then up to the next statement
// boundary: a ';' (taken into the error node), a '}' or a statement keyword.
func (p *Parser) resyncStmt(kids []cst.Child) []cst.Child {
	return p.resync(kids, statementStarts)
}

// resyncTop is resyncStmt for the top level.
func (p *Parser) resyncTop(kids []cst.Child) []cst.Child {
	return p.resync(kids, topLevelStarts)
}

func (p *Parser) resync(kids []cst.Child, starts []token.Kind) []cst.Child {
	stops := append([]token.Kind{token.Semicolon, token.RBrace, token.RClosedBrace}, starts...)
	skipped := p.skipTokens(1, stops...)
	if p.at(token.Semicolon) {
		skipped = append(skipped, p.skipOne())
	}
	if len(skipped) == 0 {
		return kids
	}
	return append(kids, node(p.finish(cst.ErrorNode, skipped...)))
}
