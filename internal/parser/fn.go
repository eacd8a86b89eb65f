package parser

import (
	"balparse/internal/cst"
	"balparse/internal/token"
)

// parseMethod parses [remote|resource] function [Type.]name(params)
// [returns T] followed by a block, = external; or a bare ';' for abstract
// methods. Metadata and visibility are already in kids.
func (p *Parser) parseMethod(kids []cst.Child, kind cst.Kind) cst.NodeID {
	for p.at_or(token.KwRemote, token.KwResource) {
		kids = p.take(kids)
	}
	kids = p.expect(kids, token.KwFunction)
	kids = p.expectIdent(kids)
	if kind == cst.FunctionDef && p.at(token.Dot) && p.atN(1, token.Ident) {
		kids = p.take(kids)
		kids = p.take(kids)
	}
	kids = append(kids, node(p.parseParameterList(false)))
	if p.at(token.KwReturns) {
		kids = append(kids, node(p.parseReturnType()))
	}
	switch {
	case p.at(token.Assign):
		ext := []cst.Child{p.advance()}
		ext = p.parseMetadata(ext)
		ext = p.expect(ext, token.KwExternal)
		ext = p.expect(ext, token.Semicolon)
		kids = append(kids, node(p.finish(cst.ExternalBody, ext...)))
	case p.at(token.Semicolon):
		kids = p.take(kids)
	default:
		kids = append(kids, node(p.parseBlock()))
	}
	return p.finish(kind, kids...)
}

// parseParameterList parses (param, ..). With typesOnly, as in function
// types, parameter names may be left out.
func (p *Parser) parseParameterList(typesOnly bool) cst.NodeID {
	kids := p.expect(nil, token.LParen)
	kids = p.parseCommaList(kids, token.RParen, func() cst.NodeID {
		return p.parseParameter(typesOnly)
	})
	return p.finish(cst.ParameterList, kids...)
}

// parseParameter parses @a T name, T name = e or T... name.
func (p *Parser) parseParameter(typesOnly bool) cst.NodeID {
	kids := p.parseMetadata(nil)
	if p.at(token.KwPublic) {
		kids = p.take(kids)
	}
	kids = append(kids, node(p.parseTypeDescriptor()))
	name := func() {
		if typesOnly && !p.at(token.Ident) {
			return
		}
		kids = p.expectIdent(kids)
	}
	if p.at(token.Ellipsis) {
		kids = p.take(kids)
		name()
		return p.finish(cst.RestParam, kids...)
	}
	name()
	if p.at(token.Assign) {
		kids = p.take(kids)
		kids = append(kids, node(p.parseExpression()))
		return p.finish(cst.DefaultableParam, kids...)
	}
	return p.finish(cst.RequiredParam, kids...)
}

// parseReturnType parses returns @a T.
func (p *Parser) parseReturnType() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = p.parseMetadata(kids)
	kids = append(kids, node(p.parseTypeDescriptor()))
	return p.finish(cst.ReturnTypeDesc, kids...)
}
