package parser

import (
	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/token"
)

// parseXMLLiteral parses xml `content`, where content is any sequence of
// elements, text, comments, processing instructions and CDATA sections.
func (p *Parser) parseXMLLiteral() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = p.parseXMLContent(kids)
	if p.at(token.XMLTagOpenSlash) {
		p.err(diag.SynExpectXMLItem, "closing tag without a matching start tag", token.XMLEnd)
		kids = p.skip(kids, token.XMLEnd)
	}
	kids = p.expect(kids, token.XMLEnd)
	return p.finish(cst.XMLLiteral, kids...)
}

// parseXMLContent stops before a closing tag, the end of the literal or
// anything that cannot be content.
func (p *Parser) parseXMLContent(kids []cst.Child) []cst.Child {
	for {
		switch p.peek().Kind {
		case token.XMLText, token.InterpStart:
			kids = append(kids, node(p.parseXMLText()))
		case token.XMLCommentStart:
			kids = append(kids, node(p.parseXMLIsland(cst.XMLComment, token.XMLCommentText, token.XMLCommentEnd)))
		case token.XMLPIStart:
			kids = append(kids, node(p.parseXMLIsland(cst.XMLProcIns, token.XMLPIText, token.XMLPIEnd)))
		case token.XMLCDATA:
			kids = p.take(kids)
		case token.XMLTagOpen:
			kids = append(kids, node(p.parseXMLElement()))
		default:
			return kids
		}
	}
}

// parseXMLText groups a run of character data and ${ } islands.
func (p *Parser) parseXMLText() cst.NodeID {
	var kids []cst.Child
	for {
		switch {
		case p.at(token.XMLText):
			kids = p.take(kids)
			continue
		case p.at(token.InterpStart):
			kids = append(kids, node(p.parseInterpolation(cst.TemplateInterp)))
			continue
		}
		return p.finish(cst.XMLText, kids...)
	}
}

// parseXMLIsland parses a comment or processing instruction: the opener,
// an optional target name, text interleaved with islands, the closer.
func (p *Parser) parseXMLIsland(kind cst.Kind, text, closer token.Kind) cst.NodeID {
	kids := []cst.Child{p.advance()}
	if kind == cst.XMLProcIns && p.at(token.XMLName) {
		kids = p.take(kids)
	}
	for {
		switch {
		case p.at(text):
			kids = p.take(kids)
			continue
		case p.at(token.InterpStart):
			kids = append(kids, node(p.parseInterpolation(cst.TemplateInterp)))
			continue
		}
		break
	}
	kids = p.expect(kids, closer)
	return p.finish(kind, kids...)
}

// parseXMLElement parses <name attrs/> or <name attrs> content </name>.
func (p *Parser) parseXMLElement() cst.NodeID {
	tag := []cst.Child{p.advance()}
	tag = append(tag, node(p.parseXMLName()))
	for p.at(token.XMLName) || p.at(token.InterpStart) {
		tag = append(tag, node(p.parseXMLAttribute()))
	}
	if p.at(token.XMLTagSlashClose) {
		tag = p.take(tag)
		return p.finish(cst.XMLElement, node(p.finish(cst.XMLEmptyTag, tag...)))
	}
	tag = p.expect(tag, token.XMLTagClose)
	kids := []cst.Child{node(p.finish(cst.XMLStartTag, tag...))}
	kids = p.parseXMLContent(kids)

	end := p.expect(nil, token.XMLTagOpenSlash)
	if p.at_or(token.XMLName, token.InterpStart) {
		end = append(end, node(p.parseXMLName()))
	}
	end = p.expect(end, token.XMLTagClose)
	kids = append(kids, node(p.finish(cst.XMLEndTag, end...)))
	return p.finish(cst.XMLElement, kids...)
}

// parseXMLName parses name, prefix:name or a ${ } island.
func (p *Parser) parseXMLName() cst.NodeID {
	if p.at(token.InterpStart) {
		return p.parseInterpolation(cst.TemplateInterp)
	}
	kids := p.expect(nil, token.XMLName)
	if p.at(token.XMLColon) {
		kids = p.take(kids)
		kids = p.expect(kids, token.XMLName)
	}
	return p.finish(cst.XMLQualifiedName, kids...)
}

// parseXMLAttribute parses name = 'v' or name = "v"; the value may hold
// ${ } islands.
func (p *Parser) parseXMLAttribute() cst.NodeID {
	kids := []cst.Child{node(p.parseXMLName())}
	kids = p.expect(kids, token.XMLEquals)
	var val []cst.Child
	closer := token.XMLDQuoteEnd
	switch {
	case p.at(token.XMLSQuoteStart):
		closer = token.XMLSQuoteEnd
		val = p.take(val)
	case p.at(token.XMLDQuoteStart):
		val = p.take(val)
	default:
		val = p.expect(val, token.XMLDQuoteStart)
	}
	for {
		switch {
		case p.at(token.XMLQuotedText):
			val = p.take(val)
			continue
		case p.at(token.InterpStart):
			val = append(val, node(p.parseInterpolation(cst.TemplateInterp)))
			continue
		}
		break
	}
	val = p.expect(val, closer)
	kids = append(kids, node(p.finish(cst.XMLQuotedString, val...)))
	return p.finish(cst.XMLAttribute, kids...)
}
