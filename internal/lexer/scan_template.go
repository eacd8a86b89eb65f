package lexer

import (
	"unicode/utf8"

	"balparse/internal/diag"
	"balparse/internal/token"
)

// openInterp consumes "${" and enters an expression island.
func (lx *Lexer) openInterp(start Mark) token.Token {
	lx.cursor.BumpN(2)
	lx.push(modeInterp)
	return lx.emit(token.InterpStart, start)
}

func (lx *Lexer) atInterp() bool {
	return lx.cursor.Peek() == '$' && lx.cursor.PeekAt(1) == '{'
}

// scanText consumes content up to (not including) a backtick, an island
// opener or any of the extra stop sequences. A backslash escapes the next byte.
func (lx *Lexer) scanText(stops ...string) {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '`' || lx.atInterp() {
			return
		}
		for _, s := range stops {
			if lx.cursor.HasPrefix(s) {
				return
			}
		}
		if b == '\\' && lx.cursor.PeekAt(1) != 0 {
			lx.cursor.Bump()
		}
		lx.bumpRune()
	}
}

func (lx *Lexer) nextTemplate() token.Token {
	if lx.cursor.EOF() {
		return lx.eof()
	}
	start := lx.cursor.Mark()
	switch {
	case lx.cursor.Peek() == '`':
		lx.cursor.Bump()
		lx.pop()
		return lx.emit(token.TemplateEnd, start)
	case lx.atInterp():
		return lx.openInterp(start)
	}
	lx.scanText()
	return lx.emit(token.TemplateText, start)
}

func (lx *Lexer) nextXMLContent() token.Token {
	if lx.cursor.EOF() {
		return lx.eof()
	}
	start := lx.cursor.Mark()
	switch {
	case lx.cursor.Peek() == '`':
		lx.cursor.Bump()
		lx.pop()
		return lx.emit(token.XMLEnd, start)
	case lx.atInterp():
		return lx.openInterp(start)
	case lx.cursor.EatString("<!--"):
		lx.push(modeXMLComment)
		return lx.emit(token.XMLCommentStart, start)
	case lx.cursor.HasPrefix("<![CDATA["):
		return lx.scanCDATA(start)
	case lx.cursor.EatString("<?"):
		lx.push(modeXMLPI)
		return lx.emit(token.XMLPIStart, start)
	case lx.cursor.EatString("</"):
		lx.push(modeXMLTag)
		return lx.emit(token.XMLTagOpenSlash, start)
	case lx.cursor.Eat('<'):
		lx.push(modeXMLTag)
		return lx.emit(token.XMLTagOpen, start)
	}
	lx.scanText("<")
	return lx.emit(token.XMLText, start)
}

func (lx *Lexer) scanCDATA(start Mark) token.Token {
	for !lx.cursor.EOF() {
		if lx.cursor.EatString("]]>") {
			return lx.emit(token.XMLCDATA, start)
		}
		if lx.cursor.Peek() == '`' {
			break
		}
		lx.bumpRune()
	}
	lx.errLex(diag.LexUnterminatedXML, lx.cursor.SpanFrom(start), "unterminated CDATA section")
	return lx.emit(token.XMLCDATA, start)
}

func (lx *Lexer) nextXMLTag() token.Token {
	lx.skipXMLSpace()
	if lx.cursor.EOF() {
		return lx.eof()
	}
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()
	switch {
	case b == '`':
		// leave the backtick to the content mode, which closes the literal
		lx.errLex(diag.LexUnterminatedXML, lx.emptySpan(), "unterminated xml tag")
		lx.pop()
		return lx.nextXMLContent()
	case lx.atInterp():
		return lx.openInterp(start)
	case lx.cursor.EatString("/>"):
		lx.pop()
		return lx.emit(token.XMLTagSlashClose, start)
	case b == '>':
		lx.cursor.Bump()
		lx.pop()
		return lx.emit(token.XMLTagClose, start)
	case b == ':':
		lx.cursor.Bump()
		return lx.emit(token.XMLColon, start)
	case b == '=':
		lx.cursor.Bump()
		return lx.emit(token.XMLEquals, start)
	case b == '\'':
		lx.cursor.Bump()
		lx.push(modeXMLSQuote)
		return lx.emit(token.XMLSQuoteStart, start)
	case b == '"':
		lx.cursor.Bump()
		lx.push(modeXMLDQuote)
		return lx.emit(token.XMLDQuoteStart, start)
	case lx.atXMLNameStart():
		return lx.scanXMLName(start)
	}
	lx.bumpRune()
	lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "unexpected character in xml tag")
	return lx.emit(token.Invalid, start)
}

// atXMLNameStart reports whether the next rune can begin an XML name.
func (lx *Lexer) atXMLNameStart() bool {
	r, sz := lx.peekRune()
	if sz == 0 {
		return false
	}
	if r < utf8RuneSelf {
		return isIdentStartByte(byte(r))
	}
	return r != utf8.RuneError && isIdentStartRune(r)
}

// scanXMLName always consumes at least one rune; a rune that cannot start
// a name becomes an Invalid token.
func (lx *Lexer) scanXMLName(start Mark) token.Token {
	if !lx.atXMLNameStart() {
		lx.bumpRune()
		lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "unexpected character in xml name")
		return lx.emit(token.Invalid, start)
	}
	lx.bumpRune()
	for {
		r, sz := lx.peekRune()
		if sz == 0 {
			break
		}
		if r < utf8RuneSelf {
			if !isXMLNameByte(byte(r)) {
				break
			}
		} else if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}
	return lx.emit(token.XMLName, start)
}

func (lx *Lexer) nextXMLQuoted() token.Token {
	if lx.cursor.EOF() {
		return lx.eof()
	}
	start := lx.cursor.Mark()
	quote, end := byte('"'), token.XMLDQuoteEnd
	if lx.top().mode == modeXMLSQuote {
		quote, end = '\'', token.XMLSQuoteEnd
	}
	switch {
	case lx.cursor.Peek() == quote:
		lx.cursor.Bump()
		lx.pop()
		return lx.emit(end, start)
	case lx.cursor.Peek() == '`':
		lx.errLex(diag.LexUnterminatedXML, lx.emptySpan(), "unterminated attribute value")
		lx.pop()
		return lx.nextXMLTag()
	case lx.atInterp():
		return lx.openInterp(start)
	}
	lx.scanText(string(quote))
	return lx.emit(token.XMLQuotedText, start)
}

func (lx *Lexer) nextXMLComment() token.Token {
	if lx.cursor.EOF() {
		return lx.eof()
	}
	start := lx.cursor.Mark()
	switch {
	case lx.cursor.EatString("-->"):
		lx.pop()
		return lx.emit(token.XMLCommentEnd, start)
	case lx.cursor.Peek() == '`':
		lx.errLex(diag.LexUnterminatedXML, lx.emptySpan(), "unterminated xml comment")
		lx.pop()
		return lx.nextXMLContent()
	case lx.atInterp():
		return lx.openInterp(start)
	}
	lx.scanText("-->")
	return lx.emit(token.XMLCommentText, start)
}

func (lx *Lexer) nextXMLPI() token.Token {
	if lx.cursor.EOF() {
		return lx.eof()
	}
	start := lx.cursor.Mark()
	if lx.last == token.XMLPIStart && lx.atXMLNameStart() {
		return lx.scanXMLName(start)
	}
	switch {
	case lx.cursor.EatString("?>"):
		lx.pop()
		return lx.emit(token.XMLPIEnd, start)
	case lx.cursor.Peek() == '`':
		lx.errLex(diag.LexUnterminatedXML, lx.emptySpan(), "unterminated processing instruction")
		lx.pop()
		return lx.nextXMLContent()
	case lx.atInterp():
		return lx.openInterp(start)
	}
	lx.scanText("?>")
	return lx.emit(token.XMLPIText, start)
}
