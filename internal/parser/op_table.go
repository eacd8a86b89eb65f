package parser

import (
	"balparse/internal/cst"
	"balparse/internal/token"
)

// Binding strength of binary and postfix operators, loosest first.
const (
	precNone       = 0
	precSyncSend   = 1  // ->>
	precTernary    = 2  // ? :
	precElvis      = 3  // ?:
	precLogicalOr  = 4  // ||
	precLogicalAnd = 5  // &&
	precBitwise    = 6  // | ^ &
	precRefEqual   = 7  // === !==
	precEqual      = 8  // == !=
	precCompare    = 9  // < > <= >=
	precRange      = 10 // ... .. ..<
	precShift      = 11 // << >> >>>
	precAdditive   = 12 // + -
	precMultiply   = 13 // * / %
	precTypeTest   = 14 // is
	precLowest     = precSyncSend
)

// binaryOp describes the operator at the cursor: how many tokens spell it,
// the node kind it builds, and its level.
type binaryOp struct {
	prec       int
	kind       cst.Kind
	width      int
	rightAssoc bool
	// split marks a shift whose tokens are separated by trivia.
	split bool
}

// binaryOperator classifies the token at the cursor. Shifts are spelled by
// adjacent '<' or '>' tokens; ok is false when nothing applies.
func (p *Parser) binaryOperator() (binaryOp, bool) {
	switch k := p.peek().Kind; k {
	case token.SyncArrow:
		return binaryOp{prec: precSyncSend, kind: cst.SyncSendExpr, width: 1}, true
	case token.Question:
		return binaryOp{prec: precTernary, kind: cst.TernaryExpr, width: 1, rightAssoc: true}, true
	case token.Elvis:
		return binaryOp{prec: precElvis, kind: cst.ElvisExpr, width: 1}, true
	case token.OrOr:
		return binaryOp{prec: precLogicalOr, kind: cst.LogicalOrExpr, width: 1}, true
	case token.AndAnd:
		return binaryOp{prec: precLogicalAnd, kind: cst.LogicalAndExpr, width: 1}, true
	case token.Pipe, token.Caret, token.Amp:
		return binaryOp{prec: precBitwise, kind: cst.BitwiseExpr, width: 1}, true
	case token.EqEqEq, token.BangEqEq:
		return binaryOp{prec: precRefEqual, kind: cst.RefEqualityExpr, width: 1}, true
	case token.EqEq, token.BangEq:
		return binaryOp{prec: precEqual, kind: cst.EqualityExpr, width: 1}, true
	case token.LtEq, token.GtEq:
		return binaryOp{prec: precCompare, kind: cst.CompareExpr, width: 1}, true
	case token.Lt:
		if p.adjacentRun(token.Lt) == 2 {
			return binaryOp{prec: precShift, kind: cst.ShiftExpr, width: 2}, true
		}
		return binaryOp{prec: precCompare, kind: cst.CompareExpr, width: 1}, true
	case token.Gt:
		switch n := p.adjacentRun(token.Gt); {
		case n >= 3:
			return binaryOp{prec: precShift, kind: cst.ShiftExpr, width: 3}, true
		case n == 2:
			return binaryOp{prec: precShift, kind: cst.ShiftExpr, width: 2}, true
		case p.peekN(1).Kind == token.Gt:
			return binaryOp{prec: precShift, kind: cst.ShiftExpr, width: 2, split: true}, true
		}
		return binaryOp{prec: precCompare, kind: cst.CompareExpr, width: 1}, true
	case token.Ellipsis, token.DotDot, token.HalfOpenRange:
		return binaryOp{prec: precRange, kind: cst.RangeExpr, width: 1}, true
	case token.Plus, token.Minus:
		return binaryOp{prec: precAdditive, kind: cst.BinaryAddExpr, width: 1}, true
	case token.Star, token.Slash, token.Percent:
		return binaryOp{prec: precMultiply, kind: cst.BinaryMulExpr, width: 1}, true
	case token.KwIs:
		return binaryOp{prec: precTypeTest, kind: cst.TypeTestExpr, width: 1}, true
	}
	return binaryOp{}, false
}

// adjacentRun counts consecutive tokens of kind k starting at the cursor
// with no trivia between them.
func (p *Parser) adjacentRun(k token.Kind) int {
	n := 1
	for p.peekN(n).Kind == k && p.peekN(n-1).Span.Adjacent(p.peekN(n).Span) && len(p.peekN(n).Leading) == 0 {
		n++
	}
	return n
}
