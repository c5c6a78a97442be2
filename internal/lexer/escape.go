package lexer

import "github.com/conduit-lang/tsjslex/internal/diag"

// parsedEscape is the result of parsing one `\uXXXX` or `\u{X...}`
// Unicode escape sequence.
type parsedEscape struct {
	codePoint rune
	ok        bool
	end       int
}

// parseUnicodeEscape parses a `\u` escape beginning at begin (where
// l.byteAt(begin) == '\\' and l.byteAt(begin+1) == 'u'), reporting any
// malformed-escape diagnostics along the way. Grounded on
// parse_unicode_escape in the original implementation's lex.rs, which is
// shared by identifier normalization, string escape processing, and
// regexp flag validation.
func (l *Lexer) parseUnicodeEscape(begin int) parsedEscape {
	return l.parseUnicodeEscapeInto(begin, l.activeSink())
}

// parseUnicodeEscapeInto is parseUnicodeEscape with an explicit
// destination sink, letting template-body scanning (which defers its
// diagnostics) reuse the same parsing logic as identifiers and strings
// (which report immediately).
func (l *Lexer) parseUnicodeEscapeInto(begin int, sink diag.Sink) parsedEscape {
	pos := begin + 2 // past "\u"

	if l.byteAt(pos) == '{' {
		digitsStart := pos + 1
		p := digitsStart
		for isHexDigit(l.byteAt(p)) {
			p++
		}
		if p == digitsStart {
			sink.Report(diag.NewExpectedHexDigitsInUnicodeEscape(diag.Span{Begin: begin, End: p}))
			return parsedEscape{ok: false, end: p}
		}
		if l.byteAt(p) != '}' {
			sink.Report(diag.NewUnclosedIdentifierEscapeSequence(diag.Span{Begin: begin, End: p}))
			return parsedEscape{ok: false, end: p}
		}
		end := p + 1
		cp := parseHexDigits(l.buf.Slice(digitsStart, p))
		if cp > 0x10FFFF {
			sink.Report(diag.NewEscapedCodePointInUnicodeOutOfRange(diag.Span{Begin: begin, End: end}))
			return parsedEscape{ok: false, end: end}
		}
		return parsedEscape{codePoint: rune(cp), ok: true, end: end}
	}

	end := pos + 4
	if !(isHexDigit(l.byteAt(pos)) && isHexDigit(l.byteAt(pos+1)) && isHexDigit(l.byteAt(pos+2)) && isHexDigit(l.byteAt(pos+3))) {
		sink.Report(diag.NewExpectedHexDigitsInUnicodeEscape(diag.Span{Begin: begin, End: end}))
		return parsedEscape{ok: false, end: end}
	}
	cp := parseHexDigits(l.buf.Slice(pos, end))
	return parsedEscape{codePoint: rune(cp), ok: true, end: end}
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexDigitValue(c byte) uint32 {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0')
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10
	default:
		return uint32(c-'A') + 10
	}
}

func parseHexDigits(digits []byte) uint32 {
	var v uint32
	for _, c := range digits {
		v = v<<4 | hexDigitValue(c)
	}
	return v
}
