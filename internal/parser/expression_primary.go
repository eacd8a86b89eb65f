package parser

import (
	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/token"
)

// parsePrimary parses an expression leaf. Reports NoViableAlternative and
// returns a NameRef holding a missing identifier when nothing matches.
func (p *Parser) parsePrimary() cst.NodeID {
	switch tok := p.peek(); tok.Kind {
	case token.IntLit:
		return p.finish(cst.IntLiteral, p.advance())
	case token.FloatLit:
		return p.finish(cst.FloatLiteral, p.advance())
	case token.StringLit:
		return p.finish(cst.StringLiteral, p.advance())
	case token.BlobLit:
		return p.finish(cst.BlobLiteral, p.advance())
	case token.KwTrue, token.KwFalse:
		return p.finish(cst.BooleanLiteral, p.advance())
	case token.KwNull:
		return p.finish(cst.NullLiteral, p.advance())
	case token.Ident:
		if p.atN(1, token.FatArrow) && !p.noArrow {
			return p.parseArrowFunction()
		}
		return p.parseNameRef()
	case token.LParen:
		return p.parseParenExpr()
	case token.LBracket:
		kids := []cst.Child{p.advance()}
		kids = p.parseCommaList(kids, token.RBracket, p.parseExpression)
		return p.finish(cst.ListConstructorExpr, kids...)
	case token.LBrace:
		return p.parseRecordLiteral()
	case token.TemplateStart:
		return p.parseStringTemplate()
	case token.XMLStart:
		return p.parseXMLLiteral()
	case token.KwTable:
		if p.atN(1, token.LBrace) {
			return p.parseTableLiteral()
		}
	case token.KwFunction:
		if p.atN(1, token.LParen) {
			return p.parseLambda()
		}
	case token.KwNew:
		return p.parseNew()
	case token.KwError:
		if p.atN(1, token.LParen) {
			kids := []cst.Child{p.advance()}
			kids = append(kids, node(p.parseArgList()))
			return p.finish(cst.ErrorConstructorExpr, kids...)
		}
	case token.KwService:
		if p.atN(1, token.LBrace) {
			kids := []cst.Child{p.advance()}
			kids = append(kids, node(p.parseServiceBody()))
			return p.finish(cst.ServiceConstructorExpr, kids...)
		}
	case token.KwFrom:
		return p.parseTableQuery()
	}
	if canStartType(p.peek()) && p.peek().Kind != token.Ident && p.peek().Kind != token.LParen {
		return p.finish(cst.TypeDescExpr, node(p.parseTypeBase()))
	}
	p.err(diag.SynExpectExpression, "expected expression", token.Ident)
	return p.finish(cst.NameRef, p.missing(token.Ident))
}

// parseParenExpr parses (), (e), (e, e, ...) and arrow functions with a
// parenthesized parameter list.
func (p *Parser) parseParenExpr() cst.NodeID {
	if !p.noArrow && p.atArrowParams() {
		return p.parseArrowFunction()
	}
	kids := []cst.Child{p.advance()}
	if p.at(token.RParen) {
		return p.finish(cst.NilLiteral, p.take(kids)...)
	}
	kids = append(kids, node(p.parseExpression()))
	if !p.at(token.Comma) {
		kids = p.expect(kids, token.RParen)
		return p.finish(cst.GroupExpr, kids...)
	}
	for p.at(token.Comma) {
		kids = p.take(kids)
		kids = append(kids, node(p.parseExpression()))
	}
	kids = p.expect(kids, token.RParen)
	return p.finish(cst.TupleExpr, kids...)
}

// atArrowParams matches (a, b) => at the cursor.
func (p *Parser) atArrowParams() bool {
	i := p.pos + 1
	if p.tokAt(i).Kind == token.RParen {
		return p.tokAt(i+1).Kind == token.FatArrow
	}
	for {
		if p.tokAt(i).Kind != token.Ident {
			return false
		}
		i++
		switch p.tokAt(i).Kind {
		case token.Comma:
			i++
		case token.RParen:
			return p.tokAt(i+1).Kind == token.FatArrow
		default:
			return false
		}
	}
}

func (p *Parser) parseArrowFunction() cst.NodeID {
	var params []cst.Child
	if p.at(token.LParen) {
		params = p.take(params)
		params = p.parseCommaList(params, token.RParen, func() cst.NodeID {
			return p.finish(cst.CaptureBindingPattern, p.expectIdent(nil)...)
		})
	} else {
		params = append(params, node(p.finish(cst.CaptureBindingPattern, p.advance())))
	}
	kids := []cst.Child{node(p.finish(cst.ArrowParams, params...))}
	kids = p.expect(kids, token.FatArrow)
	kids = append(kids, node(p.parseExpression()))
	return p.finish(cst.ArrowFunction, kids...)
}

// parseRecordLiteral parses {k: v, "s": v, [e]: v}.
func (p *Parser) parseRecordLiteral() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = p.parseCommaList(kids, token.RBrace, p.parseRecordKeyValue)
	return p.finish(cst.RecordLiteral, kids...)
}

func (p *Parser) parseRecordKeyValue() cst.NodeID {
	var kids []cst.Child
	switch {
	case p.at(token.LBracket):
		key := []cst.Child{p.advance()}
		key = append(key, node(p.parseExpression()))
		key = p.expect(key, token.RBracket)
		kids = append(kids, node(p.finish(cst.ComputedKey, key...)))
	case p.at(token.Ident) && p.atN(1, token.Colon):
		kids = append(kids, node(p.finish(cst.NameRef, p.advance())))
	default:
		kids = append(kids, node(p.parseExpression()))
	}
	kids = p.expect(kids, token.Colon)
	kids = append(kids, node(p.parseExpression()))
	return p.finish(cst.RecordKeyValue, kids...)
}

// parseTableLiteral parses table { {key a, b}, [ {1, 2}, ... ] }.
func (p *Parser) parseTableLiteral() cst.NodeID {
	kids := []cst.Child{p.advance(), p.advance()}
	if p.at(token.LBrace) {
		cols := []cst.Child{p.advance()}
		cols = p.parseCommaList(cols, token.RBrace, func() cst.NodeID {
			var col []cst.Child
			if p.at(token.CtxKey) && p.atN(1, token.Ident) {
				col = append(col, p.advanceAs(token.CtxKey))
			}
			return p.finish(cst.TableColumn, p.expectIdent(col)...)
		})
		kids = append(kids, node(p.finish(cst.TableColumns, cols...)))
		if p.at(token.Comma) {
			kids = p.take(kids)
			kids = append(kids, node(p.parseTableDataArray()))
		}
	} else if p.at(token.LBracket) {
		kids = append(kids, node(p.parseTableDataArray()))
	}
	kids = p.expect(kids, token.RBrace)
	return p.finish(cst.TableLiteral, kids...)
}

func (p *Parser) parseTableDataArray() cst.NodeID {
	kids := p.expect(nil, token.LBracket)
	kids = p.parseCommaList(kids, token.RBracket, func() cst.NodeID {
		if !p.at(token.LBrace) {
			return p.parseExpression()
		}
		row := []cst.Child{p.advance()}
		row = p.parseCommaList(row, token.RBrace, p.parseExpression)
		return p.finish(cst.TableData, row...)
	})
	return p.finish(cst.TableDataArray, kids...)
}

// parseLambda parses function (params) [returns T] { body }.
func (p *Parser) parseLambda() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = append(kids, node(p.parseParameterList(false)))
	if p.at(token.KwReturns) {
		kids = append(kids, node(p.parseReturnType()))
	}
	kids = append(kids, node(p.parseBlock()))
	return p.finish(cst.LambdaFunction, kids...)
}

// parseNew parses new, new(args) and new T(args).
func (p *Parser) parseNew() cst.NodeID {
	kids := []cst.Child{p.advance()}
	if p.at(token.Ident) {
		kids = append(kids, node(p.finish(cst.UserDefinedTypeDesc, node(p.parseNameRef()))))
		kids = append(kids, node(p.parseArgList()))
	} else if p.at(token.LParen) {
		kids = append(kids, node(p.parseArgList()))
	}
	return p.finish(cst.NewExpr, kids...)
}
