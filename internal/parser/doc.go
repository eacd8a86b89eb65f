package parser

import (
	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/token"
)

// parseDocString groups consecutive '#' lines: description lines first,
// then parameter lines, then at most one return line. A plain line after a
// parameter or return line continues it.
func (p *Parser) parseDocString() cst.NodeID {
	var kids []cst.Child
	var open []cst.Child
	openKind := cst.Invalid
	flush := func() {
		if openKind != cst.Invalid {
			kids = append(kids, node(p.finish(openKind, open...)))
			open, openKind = nil, cst.Invalid
		}
	}
	sawReturn := false
	for p.at(token.DocHash) {
		if !p.atN(1, token.DocPlus) {
			line := p.parseDocLine()
			if openKind != cst.Invalid {
				open = append(open, node(line))
			} else {
				kids = append(kids, node(line))
			}
			continue
		}
		flush()
		open = []cst.Child{p.advance(), p.advance()}
		switch {
		case p.at(token.DocReturn):
			openKind = cst.ReturnDocLine
			if sawReturn {
				p.err(diag.SynExpectDocLine, "duplicate return documentation")
			}
			sawReturn = true
			open = p.take(open)
		case p.at(token.DocParam):
			openKind = cst.ParamDocLine
			if sawReturn {
				p.err(diag.SynExpectDocLine, "parameter documentation after return documentation")
			}
			open = p.take(open)
		default:
			openKind = cst.ParamDocLine
			open = p.expect(open, token.DocParam)
		}
		open = p.expect(open, token.DocMinus)
		open = p.parseDocText(open)
	}
	flush()
	return p.finish(cst.DocString, kids...)
}

// parseDocLine parses # text.
func (p *Parser) parseDocLine() cst.NodeID {
	kids := []cst.Child{p.advance()}
	return p.finish(cst.DocLine, p.parseDocText(kids)...)
}

// parseDocText takes text runs, backtick spans and typed references such
// as type `T` up to the end of the line.
func (p *Parser) parseDocText(kids []cst.Child) []cst.Child {
	for {
		switch p.peek().Kind {
		case token.DocText, token.DocCode1, token.DocCode2, token.DocCode3:
			kids = p.take(kids)
		case token.DocRefKind:
			ref := []cst.Child{p.advance()}
			if p.at_or(token.DocCode1, token.DocCode2, token.DocCode3) {
				ref = p.take(ref)
			} else {
				ref = p.expect(ref, token.DocCode1)
			}
			kids = append(kids, node(p.finish(cst.DocTypedRef, ref...)))
		default:
			return kids
		}
	}
}
