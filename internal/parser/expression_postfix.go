package parser

import (
	"balparse/internal/cst"
	"balparse/internal/token"
)

// parsePostfix extends a variable reference: field and optional field
// access, .*, indexing, xml attributes, method, function and action
// invocations.
func (p *Parser) parsePostfix(lhs cst.NodeID) cst.NodeID {
	for {
		switch {
		case p.at(token.Dot):
			kids := []cst.Child{node(lhs), p.advance()}
			if p.at(token.Star) {
				lhs = p.finish(cst.FieldAccessExpr, p.take(kids)...)
				continue
			}
			kids = p.takeMemberName(kids)
			if p.at(token.LParen) {
				kids = append(kids, node(p.parseArgList()))
				lhs = p.finish(cst.MethodCallExpr, kids...)
				continue
			}
			lhs = p.finish(cst.FieldAccessExpr, kids...)
		case p.at(token.QuestionDot):
			kids := []cst.Child{node(lhs), p.advance()}
			lhs = p.finish(cst.FieldAccessExpr, p.takeMemberName(kids)...)
		case p.at(token.LBracket):
			kids := []cst.Child{node(lhs), p.advance()}
			kids = append(kids, node(p.parseExpression()))
			kids = p.expect(kids, token.RBracket)
			lhs = p.finish(cst.IndexAccessExpr, kids...)
		case p.at(token.At):
			kids := []cst.Child{node(lhs), p.advance()}
			if p.at(token.LBracket) {
				kids = p.take(kids)
				kids = append(kids, node(p.parseExpression()))
				kids = p.expect(kids, token.RBracket)
			}
			lhs = p.finish(cst.XMLAttribAccessExpr, kids...)
		case p.at(token.LParen) && p.tree.Kind(lhs) == cst.NameRef:
			lhs = p.finish(cst.FunctionCallExpr, node(lhs), node(p.parseArgList()))
		case p.at(token.Arrow) && p.atN(1, token.Ident) && p.atN(2, token.LParen):
			kids := []cst.Child{node(lhs), p.advance(), p.advance()}
			kids = append(kids, node(p.parseArgList()))
			lhs = p.finish(cst.ActionInvocationExpr, kids...)
		default:
			return lhs
		}
	}
}

// takeMemberName accepts an identifier or a reserved word after '.', as in
// x.map(f) or x.length().
func (p *Parser) takeMemberName(kids []cst.Child) []cst.Child {
	if p.peek().Kind.IsKeyword() {
		return p.take(kids)
	}
	return p.expectIdent(kids)
}

// parseArgList parses (a, name = b, ...rest).
func (p *Parser) parseArgList() cst.NodeID {
	kids := p.expect(nil, token.LParen)
	kids = p.parseCommaList(kids, token.RParen, p.parseArg)
	return p.finish(cst.ArgList, kids...)
}

func (p *Parser) parseArg() cst.NodeID {
	switch {
	case p.at(token.Ident) && p.atN(1, token.Assign):
		kids := []cst.Child{p.advance(), p.advance()}
		return p.finish(cst.NamedArg, append(kids, node(p.parseExpression()))...)
	case p.at(token.Ellipsis):
		kids := []cst.Child{p.advance()}
		return p.finish(cst.RestArg, append(kids, node(p.parseExpression()))...)
	}
	return p.parseExpression()
}
