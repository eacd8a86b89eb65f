package parser

import (
	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/token"
)

// parseTopLevel parses one import, namespace declaration or definition.
// It reports false when nothing at the cursor can start one.
func (p *Parser) parseTopLevel() (cst.NodeID, bool) {
	switch {
	case p.at(token.KwImport):
		return p.parseImport(), true
	case p.at(token.KwXmlns):
		return p.parseNamespaceDecl(), true
	}

	kids := p.parseMetadata(nil)
	if p.at_or(token.KwPublic, token.KwPrivate) {
		kids = p.take(kids)
	}

	switch {
	case p.at_or(token.KwRemote, token.KwResource),
		p.at(token.KwFunction) && !p.atN(1, token.LParen):
		return p.parseMethod(kids, cst.FunctionDef), true
	case p.at(token.KwType):
		return p.parseTypeDefinition(kids), true
	case p.at(token.KwService) && p.atServiceDef():
		return p.parseServiceDef(kids), true
	case p.at(token.KwConst):
		return p.parseConstDef(kids, cst.ConstantDef), true
	case p.at(token.KwListener):
		return p.parseListenerDef(kids), true
	case p.at(token.KwAnnotation):
		return p.parseAnnotationDef(kids), true
	case p.at_or(token.KwFinal, token.KwVar):
		return p.parseGlobalVarDef(kids), true
	}
	if j := p.scanType(p.pos); j >= 0 && p.tokAt(j).Kind == token.Ident {
		return p.parseGlobalVarDef(kids), true
	}

	if len(kids) == 0 {
		return 0, false
	}
	p.err(diag.SynDanglingAnnotation, "documentation or annotation is not followed by a definition")
	return p.finish(cst.ErrorNode, kids...), true
}

// parseMetadata takes a documentation string and annotation attachments
// in any order.
func (p *Parser) parseMetadata(kids []cst.Child) []cst.Child {
	for {
		switch {
		case p.at(token.DocHash):
			kids = append(kids, node(p.parseDocString()))
		case p.at(token.At):
			kids = append(kids, node(p.parseAnnotationAttachment()))
		default:
			return kids
		}
	}
}

// parseAnnotationAttachment parses @name [{ record literal }].
func (p *Parser) parseAnnotationAttachment() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = append(kids, node(p.parseNameRef()))
	if p.at(token.LBrace) {
		kids = append(kids, node(p.parseRecordLiteral()))
	}
	return p.finish(cst.AnnotationAttachment, kids...)
}

// parseImport parses import [org/]name(.name)* [version v] [as alias];.
func (p *Parser) parseImport() cst.NodeID {
	kids := []cst.Child{p.advance()}
	var path []cst.Child
	if p.at(token.Ident) && p.atN(1, token.Slash) {
		path = p.take(path)
		path = p.take(path)
	}
	path = p.expectIdent(path)
	for p.at(token.Dot) {
		path = p.take(path)
		path = p.expectIdent(path)
	}
	kids = append(kids, node(p.finish(cst.ImportPath, path...)))
	if p.at(token.KwVersion) {
		ver := []cst.Child{p.advance()}
		n := len(ver)
		for p.at_or(token.Ident, token.IntLit, token.FloatLit, token.Dot) {
			ver = p.take(ver)
		}
		if len(ver) == n {
			p.err(diag.SynMissingToken, "missing version", token.IntLit)
			ver = append(ver, p.missing(token.IntLit))
		}
		kids = append(kids, node(p.finish(cst.VersionClause, ver...)))
	}
	if p.at(token.KwAs) {
		kids = p.take(kids)
		kids = p.expectIdent(kids)
	}
	kids = p.expect(kids, token.Semicolon)
	return p.finish(cst.ImportDecl, kids...)
}

// parseTypeDefinition parses type Name T; where T may be a finite type
// mixing literals and types.
func (p *Parser) parseTypeDefinition(kids []cst.Child) cst.NodeID {
	kids = append(kids, p.advance())
	kids = p.expectIdent(kids)
	if p.atFiniteType() {
		kids = append(kids, node(p.parseFiniteType()))
	} else {
		kids = append(kids, node(p.parseTypeDescriptor()))
	}
	kids = p.expect(kids, token.Semicolon)
	return p.finish(cst.TypeDefinition, kids...)
}

// atFiniteType reports a union with at least one literal member.
func (p *Parser) atFiniteType() bool {
	i := p.pos
	for {
		if p.literalAt(i) {
			return true
		}
		j := p.scanUnionMember(i)
		if j < 0 || p.tokAt(j).Kind != token.Pipe {
			return false
		}
		i = j + 1
	}
}

func (p *Parser) literalAt(i int) bool {
	switch p.tokAt(i).Kind {
	case token.IntLit, token.FloatLit, token.StringLit, token.BlobLit,
		token.KwTrue, token.KwFalse, token.KwNull:
		return true
	case token.Minus:
		k := p.tokAt(i + 1).Kind
		return k == token.IntLit || k == token.FloatLit
	}
	return false
}

func (p *Parser) parseFiniteType() cst.NodeID {
	var kids []cst.Child
	for {
		if p.literalAt(p.pos) {
			kids = append(kids, node(p.parseSimpleLiteral()))
		} else {
			kids = append(kids, node(p.parseUnionMember()))
		}
		if !p.at(token.Pipe) {
			break
		}
		kids = p.take(kids)
	}
	return p.finish(cst.FiniteType, kids...)
}

// parseGlobalVarDef parses [final] (T | var) name [= e];.
func (p *Parser) parseGlobalVarDef(kids []cst.Child) cst.NodeID {
	kids, _ = p.accept(kids, token.KwFinal)
	if p.at(token.KwVar) {
		kids = p.take(kids)
	} else {
		kids = append(kids, node(p.parseTypeDescriptor()))
	}
	kids = p.expectIdent(kids)
	if p.at(token.Assign) {
		kids = p.take(kids)
		kids = append(kids, node(p.parseExpression()))
	}
	kids = p.expect(kids, token.Semicolon)
	return p.finish(cst.GlobalVarDef, kids...)
}

// parseListenerDef parses listener T name = e;.
func (p *Parser) parseListenerDef(kids []cst.Child) cst.NodeID {
	kids = append(kids, p.advance())
	kids = append(kids, node(p.parseTypeDescriptor()))
	kids = p.expectIdent(kids)
	kids = p.expect(kids, token.Assign)
	kids = append(kids, node(p.parseExpression()))
	kids = p.expect(kids, token.Semicolon)
	return p.finish(cst.ListenerDef, kids...)
}

// parseAnnotationDef parses annotation [T] name [on point, ..];. A point
// is a run of words such as service, resource or object function.
func (p *Parser) parseAnnotationDef(kids []cst.Child) cst.NodeID {
	kids = append(kids, p.advance())
	if j := p.scanType(p.pos); j >= 0 && p.tokAt(j).Kind == token.Ident {
		kids = append(kids, node(p.parseTypeDescriptor()))
	}
	kids = p.expectIdent(kids)
	if p.at(token.KwOn) {
		pts := []cst.Child{p.advance()}
		for {
			n := len(pts)
			for p.peek().Kind == token.Ident || p.peek().Kind.IsKeyword() {
				pts = p.take(pts)
			}
			if len(pts) == n {
				p.err(diag.SynExpectIdentifier, "expected attachment point", token.Ident)
			}
			if !p.at(token.Comma) {
				break
			}
			pts = p.take(pts)
		}
		kids = append(kids, node(p.finish(cst.AttachmentPoints, pts...)))
	}
	kids = p.expect(kids, token.Semicolon)
	return p.finish(cst.AnnotationDef, kids...)
}

// atServiceDef tells service name on .. and service on .. apart from a
// variable of service type.
func (p *Parser) atServiceDef() bool {
	if p.atN(1, token.KwOn) {
		return true
	}
	return p.atN(1, token.Ident) && p.atN(2, token.KwOn)
}

// parseServiceDef parses service [name] on e, e { body }.
func (p *Parser) parseServiceDef(kids []cst.Child) cst.NodeID {
	kids = append(kids, p.advance())
	if p.at(token.Ident) {
		kids = p.take(kids)
	}
	kids = p.expect(kids, token.KwOn)
	kids = append(kids, node(p.parseExpression()))
	for p.at(token.Comma) {
		kids = p.take(kids)
		kids = append(kids, node(p.parseExpression()))
	}
	kids = append(kids, node(p.parseServiceBody()))
	return p.finish(cst.ServiceDef, kids...)
}

// parseServiceBody parses { member* } where members are resource
// functions and fields, each with optional metadata.
func (p *Parser) parseServiceBody() cst.NodeID {
	kids := p.expect(nil, token.LBrace)
	for !p.at_or(token.RBrace, token.EOF) {
		if !p.atObjectMemberStart() {
			p.err(diag.SynExpectDefinition, "expected resource function")
			kids = p.resyncStmt(kids)
			continue
		}
		kids = append(kids, node(p.parseObjectMember()))
	}
	kids = p.expect(kids, token.RBrace)
	return p.finish(cst.ServiceBody, kids...)
}
