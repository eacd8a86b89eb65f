package parser

import (
	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/token"
)

// parseBlock parses { statement* }.
func (p *Parser) parseBlock() cst.NodeID {
	kids := p.expect(nil, token.LBrace)
	kids = p.parseStatements(kids, token.RBrace)
	kids = p.expect(kids, token.RBrace)
	return p.finish(cst.Block, kids...)
}

// parseStatements parses statements up to closer without taking it.
func (p *Parser) parseStatements(kids []cst.Child, closer token.Kind) []cst.Child {
	for !p.at_or(closer, token.EOF) {
		if p.opts.Enough() {
			return p.skip(kids, closer)
		}
		before := p.pos
		kids = append(kids, node(p.parseStatement()))
		if p.pos == before {
			kids = p.resyncStmt(kids)
		}
	}
	return kids
}

// parseStatement dispatches on the first token. Shared prefixes are
// resolved by bounded predicates: a type followed by a name selects a
// definition, a balanced group followed by '=' selects destructuring, and
// otherwise one expression is parsed and the token after it decides.
func (p *Parser) parseStatement() cst.NodeID {
	switch p.peek().Kind {
	case token.KwIf:
		return p.parseIfElse()
	case token.KwMatch:
		return p.parseMatch()
	case token.KwForeach:
		return p.parseForeach()
	case token.KwWhile:
		kids := []cst.Child{p.advance()}
		kids = append(kids, node(p.parseExpression()))
		kids = append(kids, node(p.parseBlock()))
		return p.finish(cst.WhileStmt, kids...)
	case token.KwContinue:
		return p.parseKeywordStmt(cst.ContinueStmt)
	case token.KwBreak:
		return p.parseKeywordStmt(cst.BreakStmt)
	case token.KwAbort:
		return p.parseKeywordStmt(cst.AbortStmt)
	case token.KwRetry:
		return p.parseKeywordStmt(cst.RetryStmt)
	case token.KwFork:
		return p.parseForkJoin()
	case token.KwTry:
		return p.parseTryCatch()
	case token.KwThrow:
		return p.parseExprKeywordStmt(cst.ThrowStmt, true)
	case token.KwPanic:
		return p.parseExprKeywordStmt(cst.PanicStmt, true)
	case token.KwReturn:
		return p.parseExprKeywordStmt(cst.ReturnStmt, false)
	case token.KwTransaction:
		return p.parseTransaction()
	case token.KwLock:
		kids := []cst.Child{p.advance()}
		kids = append(kids, node(p.parseBlock()))
		return p.finish(cst.LockStmt, kids...)
	case token.KwXmlns:
		return p.parseNamespaceDecl()
	case token.KwForever:
		return p.parseForever()
	case token.KwFrom:
		return p.parseStreamingQuery()
	case token.KwWorker:
		return p.parseWorkerDecl()
	case token.KwVar, token.KwFinal:
		return p.parseVarDef()
	case token.KwConst:
		return p.parseConstDef(nil, cst.VarDef)
	}

	switch {
	case p.at(token.KwError) && p.atN(1, token.LParen) && p.balancedThenAssign(p.pos+1):
		return p.parseDestructure(cst.ErrorDestructureStmt)
	case p.atVarDef():
		return p.parseVarDef()
	case p.at_or(token.LParen, token.LBrace, token.LClosedBrace) && p.balancedThenAssign(p.pos):
		kind := cst.TupleDestructureStmt
		if !p.at(token.LParen) {
			kind = cst.RecordDestructureStmt
		}
		return p.parseDestructure(kind)
	case !canStartExpression(p.peek()):
		p.err(diag.SynExpectStatement, "expected statement")
		kids := p.resyncStmt(nil)
		if len(kids) == 0 {
			return p.finish(cst.ErrorNode, p.missing(token.Semicolon))
		}
		return kids[0].Node
	}
	return p.parseExprStatement()
}

func (p *Parser) balancedThenAssign(i int) bool {
	j := p.scanBalanced(i)
	return j >= 0 && p.tokAt(j).Kind == token.Assign
}

// atVarDef reports a type followed by a name, or a typed destructuring
// definition such as (int, string) (a, b) = e;.
func (p *Parser) atVarDef() bool {
	j := p.scanType(p.pos)
	if j < 0 {
		return false
	}
	t := p.tokAt(j)
	if t.Kind == token.Ident {
		return true
	}
	if p.peek().Kind == token.Ident && j == p.pos+1 {
		return false
	}
	switch t.Kind {
	case token.LParen, token.LBrace, token.LClosedBrace:
		return p.balancedThenAssign(j)
	case token.KwError:
		return p.tokAt(j+1).Kind == token.LParen && p.balancedThenAssign(j+1)
	}
	return false
}

// parseVarDef parses T x; and [final] (T | var) pattern = e;.
func (p *Parser) parseVarDef() cst.NodeID {
	var kids []cst.Child
	if p.at(token.KwFinal) {
		kids = p.take(kids)
	}
	if p.at(token.KwVar) {
		kids = p.take(kids)
	} else {
		kids = append(kids, node(p.parseTypeDescriptor()))
	}
	kids = append(kids, node(p.parseBindingPattern()))
	if p.at(token.Assign) {
		kids = p.take(kids)
		kids = append(kids, node(p.parseExpression()))
	}
	kids = p.expect(kids, token.Semicolon)
	return p.finish(cst.VarDef, kids...)
}

// parseConstDef parses const [T] name = e; after any prefix already in kids.
func (p *Parser) parseConstDef(kids []cst.Child, kind cst.Kind) cst.NodeID {
	kids = p.expect(kids, token.KwConst)
	if j := p.scanType(p.pos); j >= 0 && p.tokAt(j).Kind == token.Ident {
		kids = append(kids, node(p.parseTypeDescriptor()))
	}
	kids = append(kids, node(p.finish(cst.CaptureBindingPattern, p.expectIdent(nil)...)))
	kids = p.expect(kids, token.Assign)
	kids = append(kids, node(p.parseExpression()))
	kids = p.expect(kids, token.Semicolon)
	return p.finish(kind, kids...)
}

// parseDestructure parses refPattern = e;.
func (p *Parser) parseDestructure(kind cst.Kind) cst.NodeID {
	kids := []cst.Child{node(p.parseBindingRefPattern())}
	kids = p.expect(kids, token.Assign)
	kids = append(kids, node(p.parseExpression()))
	kids = p.expect(kids, token.Semicolon)
	return p.finish(kind, kids...)
}

// parseExprStatement parses one expression and lets the next token pick
// assignment, compound assignment, worker send or a plain expression
// statement, reusing the expression as the left-hand side.
func (p *Parser) parseExprStatement() cst.NodeID {
	lhs := p.parseExpression()
	kids := []cst.Child{node(lhs)}
	kind := cst.ExprStmt
	switch {
	case p.at(token.Assign):
		kind = cst.AssignmentStmt
		kids = p.take(kids)
		kids = append(kids, node(p.parseExpression()))
	case p.peek().Kind.IsCompoundAssign():
		kind = cst.CompoundAssignmentStmt
		kids = p.take(kids)
		kids = append(kids, node(p.parseExpression()))
	case p.at(token.Arrow):
		kind = cst.WorkerSendStmt
		kids = p.take(kids)
		kids = p.expectIdent(kids)
		if p.at(token.Comma) {
			kids = p.take(kids)
			kids = append(kids, node(p.parseExpression()))
		}
	}
	kids = p.expect(kids, token.Semicolon)
	return p.finish(kind, kids...)
}

func (p *Parser) parseKeywordStmt(kind cst.Kind) cst.NodeID {
	kids := []cst.Child{p.advance()}
	return p.finish(kind, p.expect(kids, token.Semicolon)...)
}

// parseExprKeywordStmt parses kw e; where e is optional unless required.
func (p *Parser) parseExprKeywordStmt(kind cst.Kind, required bool) cst.NodeID {
	kids := []cst.Child{p.advance()}
	if required || !p.at(token.Semicolon) {
		kids = append(kids, node(p.parseExpression()))
	}
	return p.finish(kind, p.expect(kids, token.Semicolon)...)
}

// parseNamespaceDecl parses xmlns "uri" [as prefix];.
func (p *Parser) parseNamespaceDecl() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = p.expect(kids, token.StringLit)
	if p.at(token.KwAs) {
		kids = p.take(kids)
		kids = p.expectIdent(kids)
	}
	kids = p.expect(kids, token.Semicolon)
	return p.finish(cst.NamespaceDecl, kids...)
}

// parseWorkerDecl parses worker name [returns T] { body }.
func (p *Parser) parseWorkerDecl() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = p.expectIdent(kids)
	if p.at(token.KwReturns) {
		kids = append(kids, node(p.parseReturnType()))
	}
	kids = append(kids, node(p.parseBlock()))
	return p.finish(cst.WorkerDecl, kids...)
}
