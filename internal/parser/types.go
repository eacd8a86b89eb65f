package parser

import (
	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/token"
)

// canStartType reports whether tok begins a type descriptor.
func canStartType(tok token.Token) bool {
	switch tok.Kind {
	case token.Ident, token.LParen, token.KwObject, token.KwRecord, token.KwAbstract,
		token.KwClient, token.KwFunction, token.KwService:
		return true
	case token.KwType:
		return false
	}
	return tok.Kind.IsBuiltinType()
}

// parseTypeDescriptor parses a base type followed by any chain of array,
// union and nullable suffixes. Union members absorb array suffixes only,
// so int[][]|string? is Nullable(Union(Array(Array(int)), string)).
func (p *Parser) parseTypeDescriptor() cst.NodeID {
	t := p.parseUnionMember()
	for {
		switch {
		case p.at(token.LBracket):
			t = p.parseArraySuffix(t)
		case p.at(token.Pipe) && canStartType(p.peekN(1)):
			kids := []cst.Child{node(t)}
			for p.at(token.Pipe) && canStartType(p.peekN(1)) {
				kids = p.take(kids)
				kids = append(kids, node(p.parseUnionMember()))
			}
			t = p.finish(cst.UnionTypeDesc, kids...)
		case p.at(token.Question) && !(p.inTypeTest && canStartExpression(p.peekN(1))):
			t = p.finish(cst.NullableTypeDesc, node(t), p.advance())
		default:
			return t
		}
	}
}

func (p *Parser) parseUnionMember() cst.NodeID {
	t := p.parseTypeBase()
	for p.at(token.LBracket) {
		t = p.parseArraySuffix(t)
	}
	return t
}

// parseArraySuffix parses [], [n], [*] or [CONST] after elem.
func (p *Parser) parseArraySuffix(elem cst.NodeID) cst.NodeID {
	kids := []cst.Child{node(elem), p.advance()}
	switch {
	case p.at_or(token.IntLit, token.Star):
		kids = p.take(kids)
	case p.at(token.Ident):
		kids = append(kids, node(p.parseNameRef()))
	}
	kids = p.expect(kids, token.RBracket)
	return p.finish(cst.ArrayTypeDesc, kids...)
}

func (p *Parser) parseTypeBase() cst.NodeID {
	switch tok := p.peek(); tok.Kind {
	case token.KwInt, token.KwByte, token.KwFloat, token.KwDecimal, token.KwBoolean,
		token.KwString, token.KwJson, token.KwAny, token.KwAnydata, token.KwHandle,
		token.KwNever, token.KwService:
		return p.finish(cst.BuiltinTypeDesc, p.advance())
	case token.KwMap:
		return p.parseParameterizedType(cst.MapTypeDesc)
	case token.KwFuture:
		return p.parseParameterizedType(cst.FutureTypeDesc)
	case token.KwTypedesc:
		return p.parseParameterizedType(cst.TypedescTypeDesc)
	case token.KwStream:
		return p.parseParameterizedType(cst.StreamTypeDesc)
	case token.KwTable:
		return p.parseParameterizedType(cst.TableTypeDesc)
	case token.KwError:
		return p.parseErrorType()
	case token.KwXml:
		return p.parseXMLType()
	case token.Ident:
		return p.finish(cst.UserDefinedTypeDesc, node(p.parseNameRef()))
	case token.LParen:
		return p.parseParenType()
	case token.KwObject, token.KwAbstract, token.KwClient:
		return p.parseObjectType()
	case token.KwRecord:
		return p.parseRecordType()
	case token.KwFunction:
		return p.parseFunctionType()
	}
	return p.expected(cst.UserDefinedTypeDesc, diag.SynExpectType, "expected type descriptor", token.Ident)
}

// parseParameterizedType parses kw or kw<T>.
func (p *Parser) parseParameterizedType(kind cst.Kind) cst.NodeID {
	kids := []cst.Child{p.advance()}
	if p.at(token.Lt) {
		kids = p.take(kids)
		kids = append(kids, node(p.parseTypeDescriptor()))
		kids = p.expect(kids, token.Gt)
	}
	return p.finish(kind, kids...)
}

// parseErrorType parses error, error<R> or error<R, D>.
func (p *Parser) parseErrorType() cst.NodeID {
	kids := []cst.Child{p.advance()}
	if p.at(token.Lt) {
		kids = p.take(kids)
		kids = append(kids, node(p.parseTypeDescriptor()))
		if p.at(token.Comma) {
			kids = p.take(kids)
			kids = append(kids, node(p.parseTypeDescriptor()))
		}
		kids = p.expect(kids, token.Gt)
	}
	return p.finish(cst.ErrorTypeDesc, kids...)
}

// parseXMLType parses xml, xml<name> or xml<{"ns"}name>.
func (p *Parser) parseXMLType() cst.NodeID {
	kids := []cst.Child{p.advance()}
	if p.at(token.Lt) {
		kids = p.take(kids)
		if p.at(token.LBrace) {
			kids = p.take(kids)
			kids = p.expect(kids, token.StringLit)
			kids = p.expect(kids, token.RBrace)
		}
		kids = p.expectIdent(kids)
		kids = p.expect(kids, token.Gt)
	}
	return p.finish(cst.XmlTypeDesc, kids...)
}

// parseParenType parses (), (T) and the tuple (T, T, T...).
func (p *Parser) parseParenType() cst.NodeID {
	kids := []cst.Child{p.advance()}
	if p.at(token.RParen) {
		return p.finish(cst.NilTypeDesc, p.take(kids)...)
	}
	first := p.parseTypeDescriptor()
	if p.at(token.RParen) {
		kids = append(kids, node(first), p.advance())
		return p.finish(cst.ParenTypeDesc, kids...)
	}
	member := first
	for {
		if p.at(token.Ellipsis) {
			kids = append(kids, node(p.finish(cst.TupleRestDesc, node(member), p.advance())))
			break
		}
		kids = append(kids, node(member))
		if !p.at(token.Comma) {
			break
		}
		kids = p.take(kids)
		member = p.parseTypeDescriptor()
	}
	kids = p.expect(kids, token.RParen)
	return p.finish(cst.TupleTypeDesc, kids...)
}

// parseObjectType parses [abstract] [client] object { members } in either
// qualifier order.
func (p *Parser) parseObjectType() cst.NodeID {
	var kids []cst.Child
	for p.at_or(token.KwAbstract, token.KwClient) {
		kids = p.take(kids)
	}
	kids = p.expect(kids, token.KwObject)
	kids = p.expect(kids, token.LBrace)
	for !p.at_or(token.RBrace, token.EOF) {
		if !p.atObjectMemberStart() {
			p.err(diag.SynExpectDefinition, "expected object field, method or type reference")
			kids = p.resyncStmt(kids)
			continue
		}
		kids = append(kids, node(p.parseObjectMember()))
	}
	kids = p.expect(kids, token.RBrace)
	return p.finish(cst.ObjectTypeDesc, kids...)
}

func (p *Parser) atObjectMemberStart() bool {
	return p.at_or(token.Star, token.At, token.DocHash, token.KwPublic, token.KwPrivate,
		token.KwRemote, token.KwResource, token.KwFunction) || canStartType(p.peek())
}

// parseObjectMember parses a field, a method or a *T; type reference.
func (p *Parser) parseObjectMember() cst.NodeID {
	if p.at(token.Star) {
		return p.parseTypeReference()
	}
	kids := p.parseMetadata(nil)
	if p.at_or(token.KwPublic, token.KwPrivate) {
		kids = p.take(kids)
	}
	if p.at_or(token.KwRemote, token.KwResource) || p.at(token.KwFunction) && !p.atN(1, token.LParen) {
		return p.parseMethod(kids, cst.ObjectMethodDef)
	}
	kids = append(kids, node(p.parseTypeDescriptor()))
	kids = p.expectIdent(kids)
	if p.at(token.Assign) {
		kids = p.take(kids)
		kids = append(kids, node(p.parseExpression()))
	}
	kids = p.expect(kids, token.Semicolon)
	return p.finish(cst.ObjectFieldDef, kids...)
}

func (p *Parser) parseTypeReference() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = append(kids, node(p.parseNameRef()))
	kids = p.expect(kids, token.Semicolon)
	return p.finish(cst.TypeReference, kids...)
}

// parseRecordType parses record { .. } or the closed record {| .. |}.
func (p *Parser) parseRecordType() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kind, closer := cst.RecordTypeDesc, token.RBrace
	if p.at(token.LClosedBrace) {
		kind, closer = cst.ClosedRecordTypeDesc, token.RClosedBrace
		kids = p.take(kids)
	} else {
		kids = p.expect(kids, token.LBrace)
	}
	for !p.at_or(closer, token.EOF) {
		if !p.at_or(token.Star, token.Bang, token.At, token.DocHash) && !canStartType(p.peek()) {
			p.err(diag.SynExpectDefinition, "expected record field")
			kids = p.resyncStmt(kids)
			continue
		}
		kids = append(kids, node(p.parseRecordField()))
	}
	kids = p.expect(kids, closer)
	return p.finish(kind, kids...)
}

// parseRecordField parses T name[?] [= e]; or a rest descriptor T...; or
// the sealed marker !...;.
func (p *Parser) parseRecordField() cst.NodeID {
	switch {
	case p.at(token.Star):
		return p.parseTypeReference()
	case p.at(token.Bang):
		kids := []cst.Child{p.advance()}
		kids = p.expect(kids, token.Ellipsis)
		kids = p.expect(kids, token.Semicolon)
		return p.finish(cst.SealedRestField, kids...)
	}
	kids := p.parseMetadata(nil)
	kids = append(kids, node(p.parseTypeDescriptor()))
	if p.at(token.Ellipsis) {
		kids = p.take(kids)
		kids = p.expect(kids, token.Semicolon)
		return p.finish(cst.RecordRestField, kids...)
	}
	kids = p.expectIdent(kids)
	if p.at(token.Question) {
		kids = p.take(kids)
	}
	if p.at(token.Assign) {
		kids = p.take(kids)
		kids = append(kids, node(p.parseExpression()))
	}
	kids = p.expect(kids, token.Semicolon)
	return p.finish(cst.RecordFieldDef, kids...)
}

// parseFunctionType parses function (params) [returns T]. Parameter names
// are optional here.
func (p *Parser) parseFunctionType() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = append(kids, node(p.parseParameterList(true)))
	if p.at(token.KwReturns) {
		kids = append(kids, node(p.parseReturnType()))
	}
	return p.finish(cst.FunctionTypeDesc, kids...)
}
