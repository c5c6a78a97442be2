package lexer

import (
	"github.com/conduit-lang/tsjslex/internal/diag"
	"github.com/conduit-lang/tsjslex/internal/lexer/simdvec"
)

// skipLineComment advances past a `//` comment body up to (but not
// including) the line terminator that ends it, scanning 16 bytes at a
// time with simdvec the way skip_line_comment_body does in the original
// implementation's lex.rs.
func (l *Lexer) skipLineComment() {
	l.pos += 2
	for {
		lane := l.buf.Load16(l.pos)
		idx := lane.FindAny('\n', '\r', 0xe2, 0)
		if idx == simdvec.Width {
			l.pos += simdvec.Width
			continue
		}
		l.pos += idx
		if l.byteAt(l.pos) == 0 && l.isEOF(l.pos) {
			return
		}
		if n := l.newlineByteLength(l.pos); n > 0 {
			return
		}
		// A stray 0xe2 lead byte that is not actually U+2028/U+2029;
		// keep scanning past it.
		l.pos++
	}
}

// newlineByteLength returns the byte length of the line terminator at
// offset (1 for \n or \r, 3 for U+2028/U+2029, 0 if none).
func (l *Lexer) newlineByteLength(offset int) int {
	c0 := l.byteAt(offset)
	switch c0 {
	case '\n', '\r':
		return 1
	case 0xe2:
		if l.byteAt(offset+1) == 0x80 {
			switch l.byteAt(offset + 2) {
			case 0xa8, 0xa9:
				return 3
			}
		}
	}
	return 0
}

// skipBlockComment advances past a `/* ... */` comment, reporting
// LEX021 if end-of-file is reached first. Grounded on skip_block_comment
// in the original implementation's lex.rs.
func (l *Lexer) skipBlockComment() {
	begin := l.pos
	l.pos += 2
	for {
		c := l.byteAt(l.pos)
		if c == '*' && l.byteAt(l.pos+1) == '/' {
			l.pos += 2
			l.skipWhitespace()
			return
		}
		if c == 0 && l.isEOF(l.pos) {
			l.report(diag.NewUnclosedBlockComment(diag.Span{Begin: begin, End: begin + 2}))
			l.pos = l.buf.NullTerminator()
			return
		}
		if n := l.newlineByteLength(l.pos); n > 0 {
			l.consumedNewlineSinceLastToken = true
			l.pos += n
			continue
		}
		l.pos++
	}
}
