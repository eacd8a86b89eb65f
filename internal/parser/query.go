package parser

import (
	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/token"
)

// Query words other than from and forever are contextual: they arrive as
// identifiers and are recorded under their keyword kinds.

const patternScanLimit = 256

// parseTableQuery parses from input [join] [select] [order by] [limit].
func (p *Parser) parseTableQuery() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = append(kids, node(p.parseStreamingInput()))
	if p.atJoinStart() {
		kids = append(kids, node(p.parseJoinStreamingInput()))
	}
	if p.at(token.CtxSelect) {
		kids = append(kids, node(p.parseSelectClause()))
	}
	if p.at(token.CtxOrder) {
		kids = append(kids, node(p.parseOrderByClause()))
	}
	if p.at(token.CtxLimit) {
		lim := []cst.Child{p.advanceAs(token.CtxLimit)}
		lim = p.expect(lim, token.IntLit)
		kids = append(kids, node(p.finish(cst.LimitClause, lim...)))
	}
	return p.finish(cst.TableQueryExpr, kids...)
}

// parseStreamingQuery parses a streaming query statement, which always
// ends with => (param) { .. }.
func (p *Parser) parseStreamingQuery() cst.NodeID {
	kids := p.expect(nil, token.KwFrom)
	saved := p.noArrow
	p.noArrow = true
	if p.atPatternClause() {
		kids = append(kids, node(p.parsePatternClause()))
	} else {
		kids = append(kids, node(p.parseStreamingInput()))
		if p.atJoinStart() {
			kids = append(kids, node(p.parseJoinStreamingInput()))
		}
	}
	if p.at(token.CtxSelect) {
		kids = append(kids, node(p.parseSelectClause()))
	}
	if p.at(token.CtxOrder) {
		kids = append(kids, node(p.parseOrderByClause()))
	}
	if p.at(token.CtxOutput) {
		kids = append(kids, node(p.parseOutputRateLimit()))
	}
	if !p.at(token.FatArrow) {
		p.err(diag.SynExpectQueryClause, "expected query clause or '=>'",
			token.CtxSelect, token.CtxOrder, token.CtxOutput, token.FatArrow)
		kids = p.skip(kids, token.FatArrow, token.Semicolon, token.RBrace)
	}
	p.noArrow = saved
	kids = append(kids, node(p.parseStreamingAction()))
	return p.finish(cst.StreamingQueryStmt, kids...)
}

// atPatternClause looks past the first input for a pattern operator:
// followed by, and, or, a comma, within, or an integer range.
func (p *Parser) atPatternClause() bool {
	if p.at_or(token.CtxEvery, token.CtxNot, token.LParen) {
		return true
	}
	depth := 0
	for i := p.pos; i < p.pos+patternScanLimit; i++ {
		t := p.tokAt(i)
		switch t.Kind {
		case token.EOF:
			return false
		case token.LParen, token.LBrace, token.LClosedBrace, token.InterpStart:
			depth++
			continue
		case token.LBracket:
			if depth == 0 && i == p.pos+1 {
				return true
			}
			depth++
			continue
		case token.RParen, token.RBrace, token.RClosedBrace, token.RBracket, token.InterpEnd:
			if depth == 0 {
				return false
			}
			depth--
			continue
		}
		if depth > 0 {
			continue
		}
		switch {
		case t.Kind == token.FatArrow || t.Kind == token.Semicolon:
			return false
		case t.Kind == token.Comma:
			return true
		case t.Is(token.CtxFollowed), t.Is(token.CtxAnd), t.Is(token.CtxOr), t.Is(token.CtxWithin):
			return true
		case t.Is(token.CtxSelect), t.Is(token.CtxOrder), t.Is(token.CtxOutput), t.Kind == token.KwJoin:
			return false
		}
	}
	return false
}

// parseStreamingInput parses
// ref [where] invocation* [window invocation] invocation* [where] [as alias].
func (p *Parser) parseStreamingInput() cst.NodeID {
	kids := []cst.Child{node(p.parseVariableReference())}
	if p.at(token.CtxWhere) {
		kids = append(kids, node(p.parseWhereClause()))
	}
	for p.atStreamInvocation() {
		kids = append(kids, node(p.parseStreamInvocation()))
	}
	if p.at(token.CtxWindow) {
		win := []cst.Child{p.advanceAs(token.CtxWindow)}
		win = append(win, node(p.parseStreamInvocation()))
		kids = append(kids, node(p.finish(cst.WindowClause, win...)))
		for p.atStreamInvocation() {
			kids = append(kids, node(p.parseStreamInvocation()))
		}
	}
	if p.at(token.CtxWhere) {
		kids = append(kids, node(p.parseWhereClause()))
	}
	if p.at(token.KwAs) {
		kids = append(kids, node(p.parseAliasClause()))
	}
	return p.finish(cst.StreamingInput, kids...)
}

func (p *Parser) parseWhereClause() cst.NodeID {
	kids := []cst.Child{p.advanceAs(token.CtxWhere)}
	kids = append(kids, node(p.parseExpression()))
	return p.finish(cst.WhereClause, kids...)
}

func (p *Parser) parseAliasClause() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = p.expectIdent(kids)
	return p.finish(cst.AliasClause, kids...)
}

// atStreamInvocation reports f( or pkg:f( at the cursor.
func (p *Parser) atStreamInvocation() bool {
	if !p.at(token.Ident) {
		return false
	}
	if p.atQualified() {
		return p.atN(3, token.LParen)
	}
	return p.atN(1, token.LParen)
}

func (p *Parser) parseStreamInvocation() cst.NodeID {
	kids := []cst.Child{node(p.parseNameRef())}
	kids = append(kids, node(p.parseArgList()))
	return p.finish(cst.StreamInvocation, kids...)
}

func (p *Parser) atJoinStart() bool {
	return p.at_or(token.KwJoin, token.CtxUnidirectional, token.CtxInner,
		token.CtxLeft, token.CtxRight, token.CtxFull, token.CtxOuter)
}

// parseJoinStreamingInput parses
// (unidirectional joinType | joinType unidirectional | joinType) input [on e].
func (p *Parser) parseJoinStreamingInput() cst.NodeID {
	var kids []cst.Child
	kids, uni := p.accept(kids, token.CtxUnidirectional)
	kids = append(kids, node(p.parseJoinType()))
	if !uni {
		kids, _ = p.accept(kids, token.CtxUnidirectional)
	}
	kids = append(kids, node(p.parseStreamingInput()))
	if p.at(token.KwOn) {
		on := []cst.Child{p.advance()}
		on = append(on, node(p.parseExpression()))
		kids = append(kids, node(p.finish(cst.OnClause, on...)))
	}
	return p.finish(cst.JoinStreamingInput, kids...)
}

// parseJoinType parses [inner] join, (left|right|full) outer join or
// outer join.
func (p *Parser) parseJoinType() cst.NodeID {
	var kids []cst.Child
	switch {
	case p.at(token.CtxInner):
		kids = append(kids, p.advanceAs(token.CtxInner))
	case p.at_or(token.CtxLeft, token.CtxRight, token.CtxFull):
		k := token.CtxLeft
		switch {
		case p.at(token.CtxRight):
			k = token.CtxRight
		case p.at(token.CtxFull):
			k = token.CtxFull
		}
		kids = append(kids, p.advanceAs(k))
		kids = p.expect(kids, token.CtxOuter)
	case p.at(token.CtxOuter):
		kids = append(kids, p.advanceAs(token.CtxOuter))
	}
	kids = p.expect(kids, token.KwJoin)
	return p.finish(cst.JoinType, kids...)
}

// parsePatternClause parses [every] patternInput [within n timescale].
func (p *Parser) parsePatternClause() cst.NodeID {
	var kids []cst.Child
	kids, _ = p.accept(kids, token.CtxEvery)
	kids = append(kids, node(p.parsePatternInput()))
	if p.at(token.CtxWithin) {
		w := []cst.Child{p.advanceAs(token.CtxWithin)}
		w = p.expect(w, token.IntLit)
		w = p.expect(w, token.CtxTimeScale)
		kids = append(kids, node(p.finish(cst.WithinClause, w...)))
	}
	return p.finish(cst.PatternClause, kids...)
}

// parsePatternInput parses one pattern operand chain:
//
//	edge (followed by | ,) pattern
//	( pattern )
//	not edge (and edge | for n timescale)
//	edge (and | or) edge
//	edge
func (p *Parser) parsePatternInput() cst.NodeID {
	var kids []cst.Child
	switch {
	case p.at(token.LParen):
		kids = p.take(kids)
		kids = append(kids, node(p.parsePatternInput()))
		kids = p.expect(kids, token.RParen)
	case p.at(token.CtxNot):
		kids = append(kids, p.advanceAs(token.CtxNot))
		kids = append(kids, node(p.parsePatternEdge()))
		switch {
		case p.at(token.CtxAnd):
			kids = append(kids, p.advanceAs(token.CtxAnd))
			kids = append(kids, node(p.parsePatternEdge()))
		case p.at(token.CtxFor):
			kids = append(kids, p.advanceAs(token.CtxFor))
			kids = p.expect(kids, token.IntLit)
			kids = p.expect(kids, token.CtxTimeScale)
		default:
			p.err(diag.SynExpectQueryClause, "expected 'and' or 'for' after negated pattern", token.CtxAnd, token.CtxFor)
		}
		return p.finish(cst.PatternStreamingInput, kids...)
	default:
		kids = append(kids, node(p.parsePatternEdge()))
		if p.at_or(token.CtxAnd, token.CtxOr) {
			k := token.CtxAnd
			if p.at(token.CtxOr) {
				k = token.CtxOr
			}
			kids = append(kids, p.advanceAs(k))
			kids = append(kids, node(p.parsePatternEdge()))
			return p.finish(cst.PatternStreamingInput, kids...)
		}
	}
	switch {
	case p.at(token.CtxFollowed):
		kids = append(kids, p.advanceAs(token.CtxFollowed))
		kids = p.expect(kids, token.CtxBy)
		kids = append(kids, node(p.parsePatternInput()))
	case p.at(token.Comma):
		kids = p.take(kids)
		kids = append(kids, node(p.parsePatternInput()))
	}
	return p.finish(cst.PatternStreamingInput, kids...)
}

// parsePatternEdge parses ref [where e] [range] [as alias]. The reference
// is a bare name so that a following '[' opens the range.
func (p *Parser) parsePatternEdge() cst.NodeID {
	kids := []cst.Child{node(p.parseNameRef())}
	if p.at(token.CtxWhere) {
		kids = append(kids, node(p.parseWhereClause()))
	}
	if p.at_or(token.LBracket, token.LParen) {
		kids = append(kids, node(p.parseIntRange()))
	}
	if p.at(token.KwAs) {
		kids = append(kids, node(p.parseAliasClause()))
	}
	return p.finish(cst.PatternEdge, kids...)
}

// parseIntRange parses [a .. b], (a .. b], [a .. ) and so on; the upper
// bound is optional. Bounds bind tighter than range operators.
func (p *Parser) parseIntRange() cst.NodeID {
	kids := []cst.Child{p.advance()}
	kids = append(kids, node(p.parseExpr(precRange+1)))
	if !p.at(token.DotDot) {
		p.err(diag.SynIntRangeForm, "integer range needs '..'", token.DotDot)
	}
	kids = p.expect(kids, token.DotDot)
	if !p.at_or(token.RBracket, token.RParen) {
		kids = append(kids, node(p.parseExpr(precRange+1)))
	}
	if p.at_or(token.RBracket, token.RParen) {
		kids = p.take(kids)
	} else {
		kids = p.expect(kids, token.RBracket)
	}
	return p.finish(cst.IntRange, kids...)
}

// parseSelectClause parses select (* | e [as id], ..) [group by refs] [having e].
func (p *Parser) parseSelectClause() cst.NodeID {
	kids := []cst.Child{p.advanceAs(token.CtxSelect)}
	if p.at(token.Star) {
		kids = p.take(kids)
	} else {
		kids = append(kids, node(p.parseSelectExpr()))
		for p.at(token.Comma) {
			kids = p.take(kids)
			kids = append(kids, node(p.parseSelectExpr()))
		}
	}
	if p.at(token.CtxGroup) {
		g := []cst.Child{p.advanceAs(token.CtxGroup)}
		g = p.expect(g, token.CtxBy)
		g = append(g, node(p.parseVariableReference()))
		for p.at(token.Comma) {
			g = p.take(g)
			g = append(g, node(p.parseVariableReference()))
		}
		kids = append(kids, node(p.finish(cst.GroupByClause, g...)))
	}
	if p.at(token.CtxHaving) {
		h := []cst.Child{p.advanceAs(token.CtxHaving)}
		h = append(h, node(p.parseExpression()))
		kids = append(kids, node(p.finish(cst.HavingClause, h...)))
	}
	return p.finish(cst.SelectClause, kids...)
}

func (p *Parser) parseSelectExpr() cst.NodeID {
	kids := []cst.Child{node(p.parseExpression())}
	if p.at(token.KwAs) {
		kids = p.take(kids)
		kids = p.expectIdent(kids)
	}
	return p.finish(cst.SelectExpr, kids...)
}

// parseOrderByClause parses order by ref [ascending|descending], ...
func (p *Parser) parseOrderByClause() cst.NodeID {
	kids := []cst.Child{p.advanceAs(token.CtxOrder)}
	kids = p.expect(kids, token.CtxBy)
	for {
		v := []cst.Child{node(p.parseVariableReference())}
		switch {
		case p.at(token.CtxAscending):
			v = append(v, p.advanceAs(token.CtxAscending))
		case p.at(token.CtxDescending):
			v = append(v, p.advanceAs(token.CtxDescending))
		}
		kids = append(kids, node(p.finish(cst.OrderByVariable, v...)))
		if !p.at(token.Comma) {
			break
		}
		kids = p.take(kids)
	}
	return p.finish(cst.OrderByClause, kids...)
}

// parseOutputRateLimit parses
// output (all|last|first) every n (timescale|events) or
// output snapshot every n timescale.
func (p *Parser) parseOutputRateLimit() cst.NodeID {
	kids := []cst.Child{p.advanceAs(token.CtxOutput)}
	snapshot := false
	switch {
	case p.at(token.CtxAll):
		kids = append(kids, p.advanceAs(token.CtxAll))
	case p.at(token.CtxLast):
		kids = append(kids, p.advanceAs(token.CtxLast))
	case p.at(token.CtxFirst):
		kids = append(kids, p.advanceAs(token.CtxFirst))
	case p.at(token.CtxSnapshot):
		kids = append(kids, p.advanceAs(token.CtxSnapshot))
		snapshot = true
	default:
		p.err(diag.SynExpectQueryClause, "expected output rate kind",
			token.CtxAll, token.CtxLast, token.CtxFirst, token.CtxSnapshot)
	}
	kids = p.expect(kids, token.CtxEvery)
	kids = p.expect(kids, token.IntLit)
	if !snapshot && p.at(token.CtxEvents) {
		kids = append(kids, p.advanceAs(token.CtxEvents))
	} else {
		kids = p.expect(kids, token.CtxTimeScale)
	}
	return p.finish(cst.OutputRateLimit, kids...)
}

// parseStreamingAction parses => (T name) { statement* }.
func (p *Parser) parseStreamingAction() cst.NodeID {
	kids := p.expect(nil, token.FatArrow)
	kids = p.expect(kids, token.LParen)
	kids = append(kids, node(p.parseParameter(false)))
	kids = p.expect(kids, token.RParen)
	kids = append(kids, node(p.parseBlock()))
	return p.finish(cst.StreamingAction, kids...)
}
