package lexer

import (
	"balparse/internal/token"
)

// collectTrivia gathers whitespace and // comments in front of the next
// token into lx.hold. Runs of blanks and runs of newlines coalesce.
func (lx *Lexer) collectTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()
		switch {
		case isBlank(b):
			for isBlank(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.hold = append(lx.hold, lx.trivia(token.TriviaSpace, start))
		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.hold = append(lx.hold, lx.trivia(token.TriviaNewline, start))
		case b == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.hold = append(lx.hold, lx.trivia(token.TriviaLineComment, start))
		default:
			return
		}
	}
}

// skipBlanks collects spaces only; used inside XML tags and doc lines where a
// newline is significant or part of the content.
func (lx *Lexer) skipBlanks() {
	start := lx.cursor.Mark()
	for isBlank(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Off > uint32(start) {
		lx.hold = append(lx.hold, lx.trivia(token.TriviaSpace, start))
	}
}

// skipXMLSpace collects blanks and newlines inside an XML tag.
func (lx *Lexer) skipXMLSpace() {
	for {
		b := lx.cursor.Peek()
		switch {
		case isBlank(b):
			lx.skipBlanks()
		case b == '\n':
			start := lx.cursor.Mark()
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.hold = append(lx.hold, lx.trivia(token.TriviaNewline, start))
		default:
			return
		}
	}
}

func (lx *Lexer) trivia(k token.TriviaKind, start Mark) token.Trivia {
	sp := lx.cursor.SpanFrom(start)
	return token.Trivia{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\f'
}
