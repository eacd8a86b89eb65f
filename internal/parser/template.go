package parser

import (
	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/token"
)

// parseStringTemplate parses string `text ${e} text`.
func (p *Parser) parseStringTemplate() cst.NodeID {
	kids := []cst.Child{p.advance()}
	for {
		switch {
		case p.at(token.TemplateText):
			kids = p.take(kids)
			continue
		case p.at(token.InterpStart):
			kids = append(kids, node(p.parseInterpolation(cst.TemplateInterp)))
			continue
		}
		break
	}
	kids = p.expect(kids, token.TemplateEnd)
	return p.finish(cst.StringTemplate, kids...)
}

// parseInterpolation parses ${ e } into a node of the given kind. Tokens
// left before the closing brace are skipped.
func (p *Parser) parseInterpolation(kind cst.Kind) cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = append(kids, node(p.parseExpression()))
	if !p.at(token.InterpEnd) && !p.at(token.EOF) && !p.atTemplateBoundary() {
		p.err(diag.SynUnexpectedToken, "unexpected token in interpolation", token.InterpEnd)
		kids = p.skip(kids, token.InterpEnd, token.TemplateEnd, token.XMLEnd)
	}
	kids = p.expect(kids, token.InterpEnd)
	return p.finish(kind, kids...)
}

// atTemplateBoundary reports tokens that can only continue an enclosing
// template, meaning the island lost its closing brace.
func (p *Parser) atTemplateBoundary() bool {
	k := p.peek().Kind
	return k.IsTemplatePart() && k != token.InterpEnd
}
