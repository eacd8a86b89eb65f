package lexer

import (
	"balparse/internal/diag"
	"balparse/internal/source"
	"balparse/internal/token"
)

type mode uint8

const (
	modeCode mode = iota
	// modeInterp is code inside ${ }; depth counts open braces.
	modeInterp
	modeTemplate
	modeXMLContent
	modeXMLTag
	modeXMLSQuote
	modeXMLDQuote
	modeXMLComment
	modeXMLPI
	modeDoc
)

type frame struct {
	mode  mode
	depth int
}

// Lexer turns one source file into the token stream consumed by the parser.
// It is a reference producer; the parser accepts tokens from any source.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	stack  []frame
	hold   []token.Trivia
	last   token.Kind
	doc    docState
	done   bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		stack:  []frame{{mode: modeCode}},
		last:   token.Invalid,
	}
}

// Tokenize lexes the whole file; the result always ends with EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// Next returns the next token with its leading trivia. After EOF it keeps
// returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.done {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}
	var tok token.Token
	switch lx.top().mode {
	case modeCode, modeInterp:
		tok = lx.nextCode()
	case modeTemplate:
		tok = lx.nextTemplate()
	case modeXMLContent:
		tok = lx.nextXMLContent()
	case modeXMLTag:
		tok = lx.nextXMLTag()
	case modeXMLSQuote, modeXMLDQuote:
		tok = lx.nextXMLQuoted()
	case modeXMLComment:
		tok = lx.nextXMLComment()
	case modeXMLPI:
		tok = lx.nextXMLPI()
	case modeDoc:
		tok = lx.nextDoc()
	}
	tok.Leading = lx.hold
	lx.hold = nil
	lx.last = tok.Kind
	if tok.Kind == token.EOF {
		lx.done = true
	}
	return tok
}

func (lx *Lexer) top() frame {
	return lx.stack[len(lx.stack)-1]
}

func (lx *Lexer) push(m mode) {
	lx.stack = append(lx.stack, frame{mode: m})
}

func (lx *Lexer) pop() {
	if len(lx.stack) > 1 {
		lx.stack = lx.stack[:len(lx.stack)-1]
	}
}

func (lx *Lexer) adjustDepth(delta int) {
	lx.stack[len(lx.stack)-1].depth += delta
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// eof reports every literal still open and produces the EOF token.
func (lx *Lexer) eof() token.Token {
	for i := len(lx.stack) - 1; i > 0; i-- {
		switch lx.stack[i].mode {
		case modeTemplate:
			lx.errLex(diag.LexUnterminatedTemplate, lx.emptySpan(), "unterminated string template")
		case modeXMLContent:
			lx.errLex(diag.LexUnterminatedXML, lx.emptySpan(), "unterminated xml literal")
		}
	}
	lx.stack = lx.stack[:1]
	return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
}

// nextCode scans ordinary code, including code inside ${ } islands.
func (lx *Lexer) nextCode() token.Token {
	lx.collectTrivia()
	if lx.cursor.EOF() {
		return lx.eof()
	}
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	switch {
	case ch == '#':
		lx.cursor.Bump()
		lx.push(modeDoc)
		lx.doc = docStart
		return lx.emit(token.DocHash, start)

	case ch == '^' && lx.cursor.PeekAt(1) == '"':
		return lx.scanQuotedIdent()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && isDec(lx.cursor.PeekAt(1)) && !endsOperand(lx.last):
		return lx.scanNumber()

	case ch == '"':
		return lx.scanString()

	case ch == '$' && lx.cursor.PeekAt(1) == '{' && lx.top().mode == modeInterp:
		// nested island opener is not valid code; surface it as one token
		lx.cursor.BumpN(2)
		lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "unexpected '${'")
		return lx.emit(token.Invalid, start)
	}

	if lx.top().mode == modeInterp {
		switch {
		case ch == '}' && lx.top().depth == 0:
			lx.cursor.Bump()
			lx.pop()
			return lx.emit(token.InterpEnd, start)
		case ch == '{':
			lx.adjustDepth(1)
		case ch == '}' || (ch == '|' && lx.cursor.PeekAt(1) == '}'):
			lx.adjustDepth(-1)
		}
	}
	return lx.scanOperatorOrPunct()
}

// endsOperand reports kinds after which '.' starts member access rather than
// a fractional literal such as .5.
func endsOperand(k token.Kind) bool {
	switch k {
	case token.Ident, token.IntLit, token.FloatLit, token.StringLit, token.RParen,
		token.RBracket, token.RBrace, token.TemplateEnd, token.XMLEnd, token.Gt:
		return true
	}
	return k.IsBuiltinType()
}
