package parser

import (
	"balparse/internal/token"
)

// scanType recognizes a type descriptor starting at token i without
// building anything. It shares first sets with parseTypeDescriptor and
// returns the index just past the type, or -1.
func (p *Parser) scanType(i int) int {
	i = p.scanUnionMember(i)
	for i >= 0 {
		t := p.tokAt(i)
		switch {
		case t.Kind == token.LBracket:
			i = p.scanArraySuffix(i)
		case t.Kind == token.Pipe && canStartType(p.tokAt(i+1)):
			i = p.scanUnionMember(i + 1)
		case t.Kind == token.Question:
			i++
		default:
			return i
		}
	}
	return -1
}

func (p *Parser) scanUnionMember(i int) int {
	i = p.scanTypeBase(i)
	for i >= 0 && p.tokAt(i).Kind == token.LBracket {
		i = p.scanArraySuffix(i)
	}
	return i
}

func (p *Parser) scanArraySuffix(i int) int {
	i++
	switch p.tokAt(i).Kind {
	case token.IntLit, token.Star:
		i++
	case token.Ident:
		if p.atQualifiedAt(i) {
			i += 2
		}
		i++
	}
	if p.tokAt(i).Kind != token.RBracket {
		return -1
	}
	return i + 1
}

func (p *Parser) scanTypeBase(i int) int {
	switch p.tokAt(i).Kind {
	case token.KwInt, token.KwByte, token.KwFloat, token.KwDecimal, token.KwBoolean,
		token.KwString, token.KwJson, token.KwAny, token.KwAnydata, token.KwHandle,
		token.KwNever, token.KwService:
		return i + 1
	case token.KwMap, token.KwFuture, token.KwTypedesc, token.KwStream, token.KwTable:
		return p.scanTypeParams(i+1, 1)
	case token.KwError:
		return p.scanTypeParams(i+1, 2)
	case token.KwXml:
		i++
		if p.tokAt(i).Kind != token.Lt {
			return i
		}
		i++
		if p.tokAt(i).Kind == token.LBrace {
			if p.tokAt(i+1).Kind != token.StringLit || p.tokAt(i+2).Kind != token.RBrace {
				return -1
			}
			i += 3
		}
		if p.tokAt(i).Kind != token.Ident || p.tokAt(i+1).Kind != token.Gt {
			return -1
		}
		return i + 2
	case token.Ident:
		if p.atQualifiedAt(i) {
			return i + 3
		}
		return i + 1
	case token.LParen:
		return p.scanParenType(i)
	case token.KwAbstract, token.KwClient, token.KwObject:
		for p.tokAt(i).Kind == token.KwAbstract || p.tokAt(i).Kind == token.KwClient {
			i++
		}
		if p.tokAt(i).Kind != token.KwObject {
			return -1
		}
		return p.scanBalanced(i + 1)
	case token.KwRecord:
		return p.scanBalanced(i + 1)
	case token.KwFunction:
		i = p.scanBalanced(i + 1)
		if i >= 0 && p.tokAt(i).Kind == token.KwReturns {
			return p.scanType(i + 1)
		}
		return i
	}
	return -1
}

// scanTypeParams scans an optional <T, ...> list of at most max types.
func (p *Parser) scanTypeParams(i, max int) int {
	if p.tokAt(i).Kind != token.Lt {
		return i
	}
	i++
	for n := 0; ; n++ {
		if i = p.scanType(i); i < 0 {
			return -1
		}
		if p.tokAt(i).Kind == token.Gt {
			return i + 1
		}
		if p.tokAt(i).Kind != token.Comma || n+1 >= max {
			return -1
		}
		i++
	}
}

func (p *Parser) scanParenType(i int) int {
	i++
	if p.tokAt(i).Kind == token.RParen {
		return i + 1
	}
	for {
		if i = p.scanType(i); i < 0 {
			return -1
		}
		if p.tokAt(i).Kind == token.Ellipsis {
			i++
		}
		switch p.tokAt(i).Kind {
		case token.RParen:
			return i + 1
		case token.Comma:
			i++
		default:
			return -1
		}
	}
}

// scanBalanced skips the bracketed group opening at i and returns the index
// after its closer, or -1 when i is not an opener or the group never closes.
func (p *Parser) scanBalanced(i int) int {
	depth := 0
	for ; i < len(p.toks); i++ {
		switch p.toks[i].Kind {
		case token.LBrace, token.LClosedBrace, token.LParen, token.LBracket, token.InterpStart:
			depth++
		case token.RBrace, token.RClosedBrace, token.RParen, token.RBracket, token.InterpEnd:
			depth--
			if depth == 0 {
				return i + 1
			}
			if depth < 0 {
				return -1
			}
		case token.EOF:
			return -1
		default:
			if depth == 0 {
				return -1
			}
		}
	}
	return -1
}
