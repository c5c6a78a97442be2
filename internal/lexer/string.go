package lexer

import (
	"github.com/conduit-lang/tsjslex/internal/diag"
	"github.com/conduit-lang/tsjslex/internal/padded"
)

// scanString scans a single- or double-quoted string literal, handling
// backslash escapes (without fully decoding them — a driver that needs
// the string's value re-walks NormalizedIdentifier-style via the same
// escape helpers this file exposes) and the bare-newline recovery the
// original implementation's parse_string_literal performs: a literal
// newline inside a single/double-quoted string is always reported as
// LEX030, but recoverStringAfterBareNewline decides how far the token
// extends — past a matching quote on the next line if exactly one is
// found before another newline/EOF, otherwise right at the newline.
func (l *Lexer) scanString(begin int, hasLeadingNewline bool, quote byte) {
	l.pos = begin + 1
	for {
		c := l.curByte()
		switch {
		case c == quote:
			l.pos++
			l.setToken(TokenString, begin, l.pos, hasLeadingNewline, nil)
			return

		case c == 0 && l.isEOF(l.pos):
			l.report(diag.NewUnclosedStringLiteral(diag.Span{Begin: begin, End: l.pos}))
			l.setToken(TokenString, begin, l.pos, hasLeadingNewline, nil)
			return

		case c == '\n' || c == '\r':
			l.pos = l.recoverStringAfterBareNewline(l.pos, quote)
			l.report(diag.NewUnclosedStringLiteral(diag.Span{Begin: begin, End: l.pos}))
			l.setToken(TokenString, begin, l.pos, hasLeadingNewline, nil)
			return

		case c == '\\':
			l.scanStringEscape()

		default:
			n, _, ok := padded.DecodeUTF8CodePoint(l.buf, l.pos)
			if !ok || n == 0 {
				l.pos++
			} else {
				l.pos += n
			}
		}
	}
}

// recoverStringAfterBareNewline looks for a single matching quote on the
// line following a bare newline inside a string literal, grounded on
// parse_string_literal's bare-newline branch in the original
// implementation's lex.rs. If exactly one quote shows up before another
// newline or EOF, the string is extended to just past it; two quotes (an
// ambiguous match) or none leave the string ending at newlinePos.
func (l *Lexer) recoverStringAfterBareNewline(newlinePos int, quote byte) int {
	c := newlinePos
	if l.byteAt(c) == '\r' && l.byteAt(c+1) == '\n' {
		c += 2
	} else {
		c++
	}

	matchingQuote := -1
	for {
		cb := l.byteAt(c)
		switch {
		case cb == quote:
			if matchingQuote != -1 {
				return newlinePos
			}
			matchingQuote = c
			c++

		case cb == '\r' || cb == '\n' || (cb == 0 && l.isEOF(c)):
			if matchingQuote != -1 {
				return matchingQuote + 1
			}
			return newlinePos

		default:
			c++
		}
	}
}

// scanStringEscape advances past one backslash escape sequence at
// l.pos, reporting LEX033 for a malformed `\x` escape and delegating to
// parseUnicodeEscape for `\u`.
func (l *Lexer) scanStringEscape() {
	escapeBegin := l.pos
	l.pos++ // past backslash
	switch l.curByte() {
	case 'x':
		l.pos++
		if isHexDigit(l.at(0)) && isHexDigit(l.at(1)) {
			l.pos += 2
		} else {
			end := l.pos
			for isHexDigit(l.byteAt(end)) {
				end++
			}
			l.report(diag.NewInvalidHexEscapeSequence(diag.Span{Begin: escapeBegin, End: end}))
			l.pos = end
		}
	case 'u':
		res := l.parseUnicodeEscape(escapeBegin)
		l.pos = res.end
	default:
		n, _, ok := padded.DecodeUTF8CodePoint(l.buf, l.pos)
		if !ok || n == 0 {
			n = 1
		}
		l.pos += n
	}
}

// scanSmartQuoteString handles a "smart quote" string — source that was
// pasted from a word processor with curly quotes instead of straight
// ones. Reports LEX034 once up front, then scans like an ordinary string
// up to the matching closing smart quote. Grounded on
// parse_smart_quote_string_literal in the original implementation's
// lex.rs.
func (l *Lexer) scanSmartQuoteString(begin int, hasLeadingNewline bool) {
	openLen, straight, closeHigh := smartQuoteInfo(l.curByte(), l.at(1), l.at(2))
	l.report(diag.NewInvalidQuotesAroundStringLiteral(
		diag.Span{Begin: begin, End: begin + openLen}, smartQuoteRune(l.curByte(), l.at(1), l.at(2)), rune(straight)))

	l.pos = begin + openLen
	for {
		c0, c1, c2 := l.curByte(), l.at(1), l.at(2)
		if c0 == 0xe2 && c1 == 0x80 && c2 == closeHigh {
			l.pos += 3
			l.setToken(TokenString, begin, l.pos, hasLeadingNewline, nil)
			return
		}
		if c0 == 0 && l.isEOF(l.pos) {
			l.report(diag.NewUnclosedStringLiteral(diag.Span{Begin: begin, End: l.pos}))
			l.setToken(TokenString, begin, l.pos, hasLeadingNewline, nil)
			return
		}
		if c0 == '\\' {
			l.scanStringEscape()
			continue
		}
		n, _, ok := padded.DecodeUTF8CodePoint(l.buf, l.pos)
		if !ok || n == 0 {
			n = 1
		}
		l.pos += n
	}
}

// smartQuoteInfo returns the opening sequence's byte length, the
// straight-quote replacement, and the third byte of the matching closing
// smart quote's UTF-8 encoding (every smart quote shares the 0xE2 0x80
// prefix).
func smartQuoteInfo(c0, c1, c2 byte) (openLen int, straight byte, closeHigh byte) {
	switch c2 {
	case 0x98: // U+2018 LEFT SINGLE QUOTATION MARK
		return 3, '\'', 0x99
	case 0x99: // U+2019 RIGHT SINGLE QUOTATION MARK
		return 3, '\'', 0x99
	case 0x9c: // U+201C LEFT DOUBLE QUOTATION MARK
		return 3, '"', 0x9d
	default: // 0x9d U+201D RIGHT DOUBLE QUOTATION MARK
		return 3, '"', 0x9d
	}
}

func smartQuoteRune(c0, c1, c2 byte) rune {
	switch c2 {
	case 0x98:
		return 0x2018
	case 0x99:
		return 0x2019
	case 0x9c:
		return 0x201c
	default:
		return 0x201d
	}
}
