package lexer

import (
	"golang.org/x/text/unicode/norm"

	"balparse/internal/diag"
	"balparse/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies it. The words string
// and xml directly followed by a backtick open template literals; base16 and
// base64 followed by a backtick form a whole blob literal.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	r, sz := lx.peekRune()
	if sz == 0 || (r >= utf8RuneSelf && !isIdentStartRune(r)) {
		lx.bumpRune()
		lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "unknown character")
		return lx.emit(token.Invalid, start)
	}
	ascii := true
	lx.bumpRune()
	for {
		r, sz := lx.peekRune()
		if sz == 0 {
			break
		}
		if r < utf8RuneSelf {
			if !isIdentContinueByte(byte(r)) {
				break
			}
		} else {
			if !isIdentContinueRune(r) {
				break
			}
			ascii = false
		}
		lx.bumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if r >= utf8RuneSelf {
		ascii = false
	}
	if !ascii && !norm.NFC.IsNormalString(text) {
		lx.warnLex(diag.LexNonNormalIdent, sp, "identifier is not NFC normalized")
	}

	switch text {
	case "string", "xml", "base16", "base64":
		if lx.skipToBacktick() {
			return lx.scanBacktickForm(text, start)
		}
	}
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// skipToBacktick consumes whitespace followed by '`' and reports whether it
// did; otherwise the cursor is left untouched.
func (lx *Lexer) skipToBacktick() bool {
	m := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if isBlank(b) || b == '\n' {
			lx.cursor.Bump()
			continue
		}
		if b == '`' {
			lx.cursor.Bump()
			return true
		}
		lx.cursor.Reset(m)
		return false
	}
}

func (lx *Lexer) scanBacktickForm(word string, start Mark) token.Token {
	switch word {
	case "string":
		lx.push(modeTemplate)
		return lx.emit(token.TemplateStart, start)
	case "xml":
		lx.push(modeXMLContent)
		return lx.emit(token.XMLStart, start)
	}
	bodyStart := lx.cursor.Off
	for !lx.cursor.EOF() && lx.cursor.Peek() != '`' {
		lx.cursor.Bump()
	}
	body := lx.file.Content[bodyStart:lx.cursor.Off]
	if !lx.cursor.Eat('`') {
		lx.errLex(diag.LexBadBlob, lx.cursor.SpanFrom(start), "unterminated byte-array literal")
		return lx.emit(token.BlobLit, start)
	}
	if !validBlob(word, body) {
		lx.errLex(diag.LexBadBlob, lx.cursor.SpanFrom(start), "invalid "+word+" content")
	}
	return lx.emit(token.BlobLit, start)
}

func validBlob(word string, body []byte) bool {
	n := 0
	for _, b := range body {
		switch {
		case isBlank(b) || b == '\n':
			continue
		case word == "base16" && isHex(b):
		case word == "base64" && (isIdentContinueByte(b) && b != '_' || b == '+' || b == '/' || b == '='):
		default:
			return false
		}
		n++
	}
	if word == "base16" {
		return n%2 == 0
	}
	return n%4 == 0
}

// scanQuotedIdent scans ^"..." identifiers.
func (lx *Lexer) scanQuotedIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(2)
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			return lx.emit(token.Ident, start)
		case '\\':
			lx.cursor.BumpN(2)
		case '\n':
			lx.errLex(diag.LexUnterminatedQuotedIdent, lx.cursor.SpanFrom(start), "unterminated quoted identifier")
			return lx.emit(token.Ident, start)
		default:
			lx.cursor.Bump()
		}
	}
	lx.errLex(diag.LexUnterminatedQuotedIdent, lx.cursor.SpanFrom(start), "unterminated quoted identifier")
	return lx.emit(token.Ident, start)
}
