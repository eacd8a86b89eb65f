package parser

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/source"
	"balparse/internal/token"
	"balparse/internal/trace"
)

func node(id cst.NodeID) cst.Child {
	return cst.Child{Kind: cst.ChildNode, Node: id}
}

func idx(i int) uint32 {
	n, err := safecast.Conv[uint32](i)
	if err != nil {
		panic(fmt.Errorf("token index overflow: %w", err))
	}
	return n
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

// peekN looks n tokens ahead; past the end it keeps returning EOF.
func (p *Parser) peekN(n int) token.Token {
	return p.tokAt(p.pos + n)
}

func (p *Parser) tokAt(i int) token.Token {
	if i >= len(p.toks) {
		i = len(p.toks) - 1
	}
	return p.toks[i]
}

// at matches contextual words spelled as identifiers too.
func (p *Parser) at(k token.Kind) bool {
	return p.peek().Is(k)
}

func (p *Parser) atN(n int, k token.Kind) bool {
	return p.peekN(n).Is(k)
}

func (p *Parser) at_or(kinds ...token.Kind) bool {
	return slices.ContainsFunc(kinds, p.peek().Is)
}

// advance consumes the current token as its own kind. At EOF the cursor
// stays put; only the rule that closes the unit takes the EOF token.
func (p *Parser) advance() cst.Child {
	return p.advanceAs(p.peek().Kind)
}

// advanceAs consumes the current token and records it as k.
func (p *Parser) advanceAs(k token.Kind) cst.Child {
	tok := p.peek()
	c := cst.Child{Kind: cst.ChildToken, Token: idx(p.pos), TokKind: k}
	if tok.Kind != token.EOF {
		p.pos++
		p.lastSpan = tok.Span
	}
	p.recovering = false
	return c
}

func (p *Parser) take(kids []cst.Child) []cst.Child {
	return append(kids, p.advance())
}

// accept appends the token of kind k when it is next.
func (p *Parser) accept(kids []cst.Child, k token.Kind) ([]cst.Child, bool) {
	if !p.at(k) {
		return kids, false
	}
	return append(kids, p.advanceAs(k)), true
}

func (p *Parser) missing(k token.Kind) cst.Child {
	return cst.Child{Kind: cst.ChildMissing, Token: idx(p.pos), TokKind: k}
}

func (p *Parser) finish(kind cst.Kind, kids ...cst.Child) cst.NodeID {
	return p.tree.NewNode(kind, kids)
}

// expect appends the token of kind k. When it is absent the parser either
// deletes one stray token (the next one is k) or inserts a missing k.
func (p *Parser) expect(kids []cst.Child, k token.Kind) []cst.Child {
	if p.at(k) {
		return append(kids, p.advanceAs(k))
	}
	if p.at(token.EOF) {
		if isCloser(k) {
			p.unterminated(k)
		} else {
			p.reportMissing(k)
		}
		return append(kids, p.missing(k))
	}
	if p.atN(1, k) && !isSyncKind(p.peek().Kind) {
		p.report(diag.SynUnexpectedToken, p.peek().Span, fmt.Sprintf("unexpected %s, expected %s", p.peek().Kind, k), k)
		kids = append(kids, p.errorNode(1))
		return append(kids, p.advanceAs(k))
	}
	p.reportMissing(k)
	return append(kids, p.missing(k))
}

// expectIdent is expect(Ident) that also accepts contextual words, which
// the lexer already emits as identifiers.
func (p *Parser) expectIdent(kids []cst.Child) []cst.Child {
	return p.expect(kids, token.Ident)
}

func isCloser(k token.Kind) bool {
	switch k {
	case token.RBrace, token.RParen, token.RBracket, token.RClosedBrace, token.Gt,
		token.TemplateEnd, token.XMLEnd, token.InterpEnd, token.XMLTagClose,
		token.XMLSQuoteEnd, token.XMLDQuoteEnd, token.XMLCommentEnd, token.XMLPIEnd:
		return true
	}
	return false
}

func isSyncKind(k token.Kind) bool {
	switch k {
	case token.Semicolon, token.RBrace, token.RClosedBrace, token.EOF:
		return true
	}
	return false
}

// currentSpan is the span to blame for a problem at the cursor. An empty
// EOF is reported right after the last consumed token.
func (p *Parser) currentSpan() source.Span {
	tok := p.peek()
	if tok.Kind == token.EOF && tok.Span.Empty() && p.lastSpan.End > 0 {
		return p.lastSpan.AtEnd()
	}
	return tok.Span
}

// err reports code at the cursor.
func (p *Parser) err(code diag.Code, msg string, expected ...token.Kind) bool {
	return p.report(code, p.currentSpan(), msg, expected...)
}

func (p *Parser) reportMissing(k token.Kind) bool {
	sp := p.tree.MissingSpan(idx(p.pos))
	return p.report(diag.SynMissingToken, sp, fmt.Sprintf("missing %s", k), k)
}

// unterminated reports EOF inside a construct that still needs k. It is
// recorded once per parse even while recovering.
func (p *Parser) unterminated(k token.Kind) {
	if p.eofReported {
		return
	}
	p.eofReported = true
	p.recovering = false
	p.report(diag.SynUnterminated, p.currentSpan(), fmt.Sprintf("unexpected end of input, expected %s", k), k)
}

// report records a syntax error and enters recovery. Nothing more is
// recorded until a token is matched again.
func (p *Parser) report(code diag.Code, sp source.Span, msg string, expected ...token.Kind) bool {
	if p.recovering {
		return false
	}
	p.recovering = true
	if p.opts.Enough() {
		return false
	}
	p.opts.CurrentErrors++
	diag.ReportError(diag.ReporterFunc(p.record), code, sp, msg).
		WithToken(p.pos).
		WithExpected(expected...).
		Emit()
	return true
}

func (p *Parser) record(d diag.Diagnostic) {
	p.diags = append(p.diags, d)
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(d)
	}
	p.span.Point(trace.ScopeNode, "syntax-error", d.Code.ID()+" at "+p.peek().Kind.String())
}

// expected builds a placeholder node of kind holding a missing token, so a
// required construct always yields a node.
func (p *Parser) expected(kind cst.Kind, code diag.Code, msg string, k token.Kind) cst.NodeID {
	p.err(code, msg, k)
	return p.finish(kind, p.missing(k))
}
