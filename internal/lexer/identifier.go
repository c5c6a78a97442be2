package lexer

import (
	"github.com/conduit-lang/tsjslex/internal/diag"
	"github.com/conduit-lang/tsjslex/internal/lexer/simdvec"
	"github.com/conduit-lang/tsjslex/internal/lexer/unicodetbl"
	"github.com/conduit-lang/tsjslex/internal/padded"
)

// IdentifierKind distinguishes ordinary JavaScript identifiers from JSX
// tag/attribute names, which additionally permit '-' after the first
// character. Grounded on IdentifierKind in the original implementation's
// lex.rs.
type IdentifierKind int

const (
	IdentifierKindJavaScript IdentifierKind = iota
	IdentifierKindJSX
)

func isInitialIdentifierCharacter(cp rune, kind IdentifierKind) bool {
	return unicodetbl.IsIDStart(cp)
}

func isIdentifierCharacter(cp rune, kind IdentifierKind) bool {
	if kind == IdentifierKindJSX && cp == '-' {
		return true
	}
	return unicodetbl.IsIDContinue(cp)
}

func isNonASCIIWhitespaceCodePoint(cp rune) bool {
	switch cp {
	case 0xA0, 0x1680, 0x202F, 0x205F, 0x3000, 0xFEFF, 0x2028, 0x2029:
		return true
	}
	return cp >= 0x2000 && cp <= 0x200A
}

// scanHashOrPrivateIdentifier handles a token beginning with '#': either
// a private class field/method name (`#foo`) or, if nothing legal
// follows, an unexpected standalone '#'.
func (l *Lexer) scanHashOrPrivateIdentifier(begin int, hasLeadingNewline bool) {
	next := l.at(1)
	if isASCIIIdentifierStart(next) || next >= 0x80 {
		l.scanIdentifierFrom(begin, hasLeadingNewline, IdentifierKindJavaScript, TokenPrivateIdentifier)
		return
	}
	l.pos++
	l.report(diag.NewUnexpectedHashCharacter(diag.Span{Begin: begin, End: l.pos}))
	l.parseCurrentTokenAfterSkippingOne(hasLeadingNewline)
}

// scanIdentifier scans an ordinary identifier or keyword beginning at
// the ASCII identifier-start byte at begin.
func (l *Lexer) scanIdentifier(begin int, hasLeadingNewline bool, kind IdentifierKind) {
	l.scanIdentifierFrom(begin, hasLeadingNewline, kind, TokenIdentifier)
}

// scanIdentifierOrUnexpectedNonASCII handles a token whose first byte is
// a non-ASCII UTF-8 lead byte: either the start of a Unicode identifier
// or a disallowed stray character.
func (l *Lexer) scanIdentifierOrUnexpectedNonASCII(begin int, hasLeadingNewline bool) {
	n, cp, ok := padded.DecodeUTF8CodePoint(l.buf, begin)
	if ok && isInitialIdentifierCharacter(cp, IdentifierKindJavaScript) {
		l.scanIdentifierFrom(begin, hasLeadingNewline, IdentifierKindJavaScript, TokenIdentifier)
		return
	}
	l.pos = begin + n
	l.report(diag.NewCharacterDisallowedInIdentifiers(diag.Span{Begin: begin, End: l.pos}, cp))
	l.parseCurrentTokenAfterSkippingOne(hasLeadingNewline)
}

func (l *Lexer) scanIdentifierFrom(begin int, hasLeadingNewline bool, kind IdentifierKind, tokenIfNotKeyword TokenType) {
	identBegin := begin
	if tokenIfNotKeyword == TokenPrivateIdentifier {
		identBegin = begin + 1 // past '#'
	}

	l.pos = identBegin
	for {
		lane := l.buf.Load16(l.pos)
		n := simdvec.CountIdentifierBytes(lane)
		l.pos += n
		if n < simdvec.Width {
			break
		}
	}

	if l.curByte() == '\\' || l.curByte() >= 0x80 || (kind == IdentifierKindJSX && l.curByte() == '-') {
		l.scanIdentifierSlow(begin, identBegin, kind, tokenIfNotKeyword, hasLeadingNewline)
		return
	}

	spelling := l.buf.Slice(begin, l.pos)
	end := l.pos
	tokenType := tokenIfNotKeyword
	if tokenIfNotKeyword == TokenIdentifier && kind == IdentifierKindJavaScript {
		if kw, ok := keywordType(spelling); ok {
			tokenType = kw
		}
	}
	l.setToken(tokenType, begin, end, hasLeadingNewline, spelling)
}

// scanIdentifierSlow handles identifiers containing a `\u` escape
// sequence or non-ASCII code points, normalizing into an arena-owned
// buffer. Grounded on parse_identifier_slow in the original
// implementation's lex.rs.
func (l *Lexer) scanIdentifierSlow(begin, identBegin int, kind IdentifierKind, tokenIfNotKeyword TokenType, hasLeadingNewline bool) {
	grower := l.identArena.NewGrower()
	grower.Append(l.buf.Slice(begin, l.pos)...)

	var escapes []EscapeSequence
	isInitial := func(pos int) bool { return pos == identBegin }

	for {
		if l.isEOF(l.pos) {
			break
		}
		if l.curByte() == '\\' {
			if l.at(1) == 'u' {
				escapeBegin := l.pos
				res := l.parseUnicodeEscape(escapeBegin)
				span := diag.Span{Begin: escapeBegin, End: res.end}
				switch {
				case !res.ok:
					grower.Append(l.buf.Slice(escapeBegin, res.end)...)
				case res.codePoint >= 0x110000:
					grower.Append(l.buf.Slice(escapeBegin, res.end)...)
				case !isInitial(escapeBegin) && kind == IdentifierKindJSX && res.codePoint == '-':
					l.report(diag.NewEscapedHyphenNotAllowedInJSXTag(span))
					grower.Append(l.buf.Slice(escapeBegin, res.end)...)
				case !escapeCharacterLegal(res.codePoint, isInitial(escapeBegin), kind):
					l.report(diag.NewEscapedCharacterDisallowedInIdentifiers(span, res.codePoint))
					grower.Append(l.buf.Slice(escapeBegin, res.end)...)
				default:
					var encoded [4]byte
					n := padded.EncodeUTF8(res.codePoint, encoded[:])
					grower.Append(encoded[:n]...)
					escapes = append(escapes, EscapeSequence{Span: Span{Begin: span.Begin, End: span.End}})
				}
				l.pos = res.end
			} else {
				backslashBegin := l.pos
				l.pos++
				l.report(diag.NewUnexpectedBackslashInIdentifier(diag.Span{Begin: backslashBegin, End: l.pos}))
				grower.Append('\\')
			}
			continue
		}

		n, cp, ok := padded.DecodeUTF8CodePoint(l.buf, l.pos)
		if !ok {
			errBegin := l.pos
			l.pos += n
			for {
				n2, _, ok2 := padded.DecodeUTF8CodePoint(l.buf, l.pos)
				if ok2 || n2 == 0 {
					break
				}
				l.pos += n2
			}
			l.report(diag.NewInvalidUTF8Sequence(diag.Span{Begin: errBegin, End: l.pos}))
			grower.Append(l.buf.Slice(errBegin, l.pos)...)
			continue
		}
		if n == 0 {
			break
		}

		charBegin := l.pos
		charEnd := l.pos + n
		legal := escapeCharacterLegal(cp, isInitial(charBegin), kind)
		if !legal {
			if cp < 0x80 || isNonASCIIWhitespaceCodePoint(cp) {
				break
			}
			l.report(diag.NewCharacterDisallowedInIdentifiers(diag.Span{Begin: charBegin, End: charEnd}, cp))
		}
		grower.Append(l.buf.Slice(charBegin, charEnd)...)
		l.pos = charEnd
	}

	normalized := grower.Finish()
	end := l.pos
	if len(escapes) == 0 {
		// Without escapes the normalized bytes equal the source bytes.
		normalized = l.buf.Slice(begin, end)
	}
	tokenType := tokenIfNotKeyword
	if tokenIfNotKeyword == TokenIdentifier && kind == IdentifierKindJavaScript && len(escapes) == 0 {
		if kw, ok := keywordType(normalized); ok {
			tokenType = kw
		}
	} else if tokenIfNotKeyword == TokenIdentifier && kind == IdentifierKindJavaScript {
		// An identifier that spells a reserved word but was only reached
		// via an escape sequence is reported as
		// TokenReservedKeywordWithEscapeSequence so the driver can raise
		// its own "keywords may not be escaped" diagnostic, rather than
		// silently demoting it to a plain identifier.
		if _, ok := keywordType(normalized); ok {
			tokenType = TokenReservedKeywordWithEscapeSequence
		}
	}

	l.setToken(tokenType, begin, end, hasLeadingNewline, normalized)
	l.lastToken.IdentifierEscapeSequences = escapes
}

func escapeCharacterLegal(cp rune, isInitial bool, kind IdentifierKind) bool {
	if isInitial {
		return isInitialIdentifierCharacter(cp, kind)
	}
	return isIdentifierCharacter(cp, kind)
}
