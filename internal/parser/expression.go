package parser

import (
	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/token"
)

func (p *Parser) parseExpression() cst.NodeID {
	return p.parseExpr(precLowest)
}

// parseExpr is the precedence-climbing loop. Operators bind while their
// level is at least minPrec; deeper nesting means tighter binding.
func (p *Parser) parseExpr(minPrec int) cst.NodeID {
	lhs := p.parseUnary()
	for {
		op, ok := p.binaryOperator()
		if !ok || op.prec < minPrec {
			return lhs
		}
		switch op.kind {
		case cst.TernaryExpr:
			kids := []cst.Child{node(lhs), p.advance()}
			kids = append(kids, node(p.parseExpr(precTernary)))
			kids = p.expect(kids, token.Colon)
			kids = append(kids, node(p.parseExpr(precTernary)))
			lhs = p.finish(cst.TernaryExpr, kids...)
		case cst.TypeTestExpr:
			kids := []cst.Child{node(lhs), p.advance()}
			saved := p.inTypeTest
			p.inTypeTest = true
			kids = append(kids, node(p.parseTypeDescriptor()))
			p.inTypeTest = saved
			lhs = p.finish(cst.TypeTestExpr, kids...)
		case cst.SyncSendExpr:
			kids := []cst.Child{node(lhs), p.advance()}
			kids = p.expectIdent(kids)
			lhs = p.finish(cst.SyncSendExpr, kids...)
		default:
			if op.split {
				p.err(diag.SynAdjacentShift, "shift operator must not contain whitespace", token.Gt)
			}
			kids := []cst.Child{node(lhs)}
			for range op.width {
				kids = p.take(kids)
			}
			next := op.prec + 1
			if op.rightAssoc {
				next = op.prec
			}
			kids = append(kids, node(p.parseExpr(next)))
			lhs = p.finish(op.kind, kids...)
		}
	}
}

// parseUnary handles prefix forms. All of them bind tighter than any
// binary operator except trap, wait and worker receive, whose operands
// extend to the end of the expression.
func (p *Parser) parseUnary() cst.NodeID {
	switch p.peek().Kind {
	case token.Plus, token.Minus, token.Bang, token.Tilde, token.KwUntaint:
		kids := []cst.Child{p.advance()}
		return p.finish(cst.UnaryExpr, append(kids, node(p.parseUnary()))...)
	case token.Lt:
		kids := []cst.Child{p.advance()}
		kids = append(kids, node(p.parseTypeDescriptor()))
		kids = p.expect(kids, token.Gt)
		return p.finish(cst.TypeConversionExpr, append(kids, node(p.parseUnary()))...)
	case token.KwCheck:
		kids := []cst.Child{p.advance()}
		return p.finish(cst.CheckExpr, append(kids, node(p.parseUnary()))...)
	case token.KwCheckpanic:
		kids := []cst.Child{p.advance()}
		return p.finish(cst.CheckPanicExpr, append(kids, node(p.parseUnary()))...)
	case token.KwTrap:
		kids := []cst.Child{p.advance()}
		return p.finish(cst.TrapExpr, append(kids, node(p.parseExpression()))...)
	case token.KwWait:
		return p.parseWait()
	case token.LArrow:
		kids := []cst.Child{p.advance()}
		kids = p.expectIdent(kids)
		if p.at(token.Comma) {
			kids = p.take(kids)
			kids = append(kids, node(p.parseExpression()))
		}
		return p.finish(cst.WorkerReceiveExpr, kids...)
	case token.KwFlush:
		kids := []cst.Child{p.advance()}
		if p.at(token.Ident) {
			kids = p.take(kids)
		}
		return p.finish(cst.FlushExpr, kids...)
	case token.KwStart:
		kids := []cst.Child{p.advance()}
		return p.finish(cst.StartExpr, append(kids, node(p.parsePostfix(p.parsePrimary())))...)
	}
	return p.parsePostfix(p.parsePrimary())
}

// parseWait parses wait e or the collection form wait {a, b: f}.
func (p *Parser) parseWait() cst.NodeID {
	kids := []cst.Child{p.advance()}
	if !p.at(token.LBrace) {
		return p.finish(cst.WaitExpr, append(kids, node(p.parseExpression()))...)
	}
	kids = p.take(kids)
	kids = p.parseCommaList(kids, token.RBrace, func() cst.NodeID {
		var kv []cst.Child
		kv = p.expectIdent(kv)
		if p.at(token.Colon) {
			kv = p.take(kv)
			kv = append(kv, node(p.parseExpression()))
		}
		return p.finish(cst.WaitKeyValue, kv...)
	})
	return p.finish(cst.WaitForAllExpr, kids...)
}

// parseCommaList parses item (, item)* up to closer and takes the closer.
// An empty list is allowed.
func (p *Parser) parseCommaList(kids []cst.Child, closer token.Kind, item func() cst.NodeID) []cst.Child {
	for !p.at_or(closer, token.EOF) {
		before := p.pos
		kids = append(kids, node(item()))
		if !p.at(token.Comma) || p.pos == before {
			break
		}
		kids = p.take(kids)
	}
	return p.expect(kids, closer)
}

// canStartExpression reports whether tok begins an expression.
func canStartExpression(tok token.Token) bool {
	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.StringLit, token.BlobLit, token.KwTrue,
		token.KwFalse, token.KwNull, token.Ident, token.LParen, token.LBracket,
		token.LBrace, token.TemplateStart, token.XMLStart, token.Plus, token.Minus,
		token.Bang, token.Tilde, token.Lt, token.LArrow, token.KwUntaint, token.KwCheck,
		token.KwCheckpanic, token.KwTrap, token.KwWait, token.KwFlush, token.KwStart,
		token.KwNew, token.KwFunction, token.KwFrom, token.KwObject, token.KwRecord,
		token.KwAbstract, token.KwClient, token.KwService:
		return true
	case token.KwType:
		return false
	}
	return tok.Kind.IsBuiltinType()
}
