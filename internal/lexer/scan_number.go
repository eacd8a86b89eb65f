package lexer

import (
	"balparse/internal/diag"
	"balparse/internal/token"
)

// scanNumber accepts decimal, hex (0x) and binary (0b) integers, decimal
// floats with optional exponent and f/d suffix, and hex floats (0x1.8p3).
// A '.' followed by another '.' is left for the range operators.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			lx.cursor.BumpN(2)
			return lx.scanHexTail(start)
		case 'b', 'B':
			lx.cursor.BumpN(2)
			n := 0
			for b := lx.cursor.Peek(); b == '0' || b == '1'; b = lx.cursor.Peek() {
				lx.cursor.Bump()
				n++
			}
			if n == 0 || isDec(lx.cursor.Peek()) {
				lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "malformed binary literal")
			}
			return lx.emit(token.IntLit, start)
		}
	}

	leadingZero := lx.cursor.Peek() == '0' && isDec(lx.cursor.PeekAt(1))
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		kind = token.FloatLit
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		m := lx.cursor.Mark()
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// 1e is an int followed by an identifier
			lx.cursor.Reset(m)
		} else {
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}
	if b := lx.cursor.Peek(); (b == 'f' || b == 'F' || b == 'd' || b == 'D') && !isIdentContinueByte(lx.cursor.PeekAt(1)) {
		kind = token.FloatLit
		lx.cursor.Bump()
	}
	if leadingZero && kind == token.IntLit {
		lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "leading zero in integer literal")
	}
	return lx.emit(kind, start)
}

func (lx *Lexer) scanHexTail(start Mark) token.Token {
	kind := token.IntLit
	n := 0
	for isHex(lx.cursor.Peek()) {
		lx.cursor.Bump()
		n++
	}
	if lx.cursor.Peek() == '.' && isHex(lx.cursor.PeekAt(1)) {
		kind = token.FloatLit
		lx.cursor.Bump()
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if b := lx.cursor.Peek(); b == 'p' || b == 'P' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "missing binary exponent digits")
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if n == 0 {
		lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "malformed hex literal")
	}
	return lx.emit(kind, start)
}
