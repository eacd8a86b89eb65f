package lexer

import (
	"balparse/internal/diag"
	"balparse/internal/token"
)

// operators in longest-first order. Bare << and >> are not tokens: shifts are
// adjacent '<' / '>' pairs recognized by the parser, so type arguments such
// as map<map<int>> close without splitting.
var operators = []struct {
	text string
	kind token.Kind
}{
	{">>>=", token.UShrAssign},
	{"...", token.Ellipsis},
	{"..<", token.HalfOpenRange},
	{"->>", token.SyncArrow},
	{"===", token.EqEqEq},
	{"!==", token.BangEqEq},
	{"<<=", token.ShlAssign},
	{">>=", token.ShrAssign},
	{"..", token.DotDot},
	{"->", token.Arrow},
	{"<-", token.LArrow},
	{"=>", token.FatArrow},
	{"==", token.EqEq},
	{"!=", token.BangEq},
	{">=", token.GtEq},
	{"<=", token.LtEq},
	{"&&", token.AndAnd},
	{"||", token.OrOr},
	{"?:", token.Elvis},
	{"?.", token.QuestionDot},
	{"{|", token.LClosedBrace},
	{"|}", token.RClosedBrace},
	{"+=", token.PlusAssign},
	{"-=", token.MinusAssign},
	{"*=", token.StarAssign},
	{"/=", token.SlashAssign},
	{"&=", token.AmpAssign},
	{"|=", token.PipeAssign},
	{"^=", token.CaretAssign},
}

var singles = [256]token.Kind{
	';': token.Semicolon,
	':': token.Colon,
	'.': token.Dot,
	',': token.Comma,
	'{': token.LBrace,
	'}': token.RBrace,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'?': token.Question,
	'=': token.Assign,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'!': token.Bang,
	'>': token.Gt,
	'<': token.Lt,
	'&': token.Amp,
	'|': token.Pipe,
	'^': token.Caret,
	'~': token.Tilde,
	'@': token.At,
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	for _, op := range operators {
		if lx.cursor.EatString(op.text) {
			return lx.emit(op.kind, start)
		}
	}
	ch := lx.cursor.Peek()
	if k := singles[ch]; k != token.Invalid {
		lx.cursor.Bump()
		return lx.emit(k, start)
	}
	lx.bumpRune()
	lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "unknown character")
	return lx.emit(token.Invalid, start)
}
