package lexer

import (
	"balparse/internal/token"
)

// docState tracks the position inside one documentation line.
type docState uint8

const (
	// right after '#': a '+' here opens a parameter or return line
	docStart docState = iota
	// after '+': expects the parameter name or return
	docName
	// after the name: expects '-'
	docDash
	docText
)

var docRefKinds = map[string]bool{
	"type": true, "service": true, "variable": true, "var": true, "annotation": true,
	"module": true, "function": true, "parameter": true, "const": true,
}

// nextDoc scans the remainder of a '#' line. The newline ends the line and
// is left as trivia for the following token.
func (lx *Lexer) nextDoc() token.Token {
	if lx.doc != docText || lx.last == token.DocMinus || lx.last == token.DocRefKind {
		lx.skipBlanks()
	}
	if lx.cursor.EOF() {
		return lx.eof()
	}
	if lx.cursor.Peek() == '\n' {
		lx.pop()
		return lx.nextCode()
	}
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()

	switch lx.doc {
	case docStart:
		if b == '+' {
			lx.cursor.Bump()
			lx.doc = docName
			return lx.emit(token.DocPlus, start)
		}
		lx.doc = docText
		return lx.docTextToken()
	case docName:
		if isIdentStartByte(b) {
			for isIdentContinueByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.doc = docDash
			tok := lx.emit(token.DocParam, start)
			if tok.Text == "return" {
				tok.Kind = token.DocReturn
			}
			return tok
		}
		lx.doc = docText
		return lx.docTextToken()
	case docDash:
		lx.doc = docText
		if b == '-' {
			lx.cursor.Bump()
			return lx.emit(token.DocMinus, start)
		}
		return lx.docTextToken()
	}
	return lx.docTextToken()
}

// docTextToken scans one text run, backtick span or typed-reference word.
func (lx *Lexer) docTextToken() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.Peek() == '`' {
		return lx.scanDocCode(start)
	}
	if w := lx.refKindAt(); w > 0 {
		lx.cursor.BumpN(w)
		return lx.emit(token.DocRefKind, start)
	}
	wordStart := true
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || b == '`' {
			break
		}
		if wordStart && lx.cursor.Off > uint32(start) && lx.refKindAt() > 0 {
			break
		}
		wordStart = !isIdentContinueByte(b)
		lx.bumpRune()
	}
	return lx.emit(token.DocText, start)
}

// refKindAt returns the length of a reference-kind word at the cursor when it
// is followed by optional blanks and a backtick, or 0.
func (lx *Lexer) refKindAt() int {
	n := uint32(0)
	for isIdentContinueByte(lx.cursor.PeekAt(n)) {
		n++
	}
	if n == 0 {
		return 0
	}
	word := string(lx.file.Content[lx.cursor.Off : lx.cursor.Off+n])
	if !docRefKinds[word] {
		return 0
	}
	m := n
	for isBlank(lx.cursor.PeekAt(m)) {
		m++
	}
	if lx.cursor.PeekAt(m) != '`' {
		return 0
	}
	return int(n)
}

// scanDocCode scans a span delimited by one, two or three backticks. An
// unclosed span runs to the end of the line.
func (lx *Lexer) scanDocCode(start Mark) token.Token {
	ticks := 0
	for lx.cursor.Peek() == '`' && ticks < 3 {
		lx.cursor.Bump()
		ticks++
	}
	closer := "```"[:ticks]
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		if lx.cursor.EatString(closer) {
			break
		}
		lx.bumpRune()
	}
	kind := token.DocCode1
	switch ticks {
	case 2:
		kind = token.DocCode2
	case 3:
		kind = token.DocCode3
	}
	return lx.emit(kind, start)
}
