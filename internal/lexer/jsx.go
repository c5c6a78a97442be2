package lexer

import "github.com/conduit-lang/tsjslex/internal/diag"

// SkipInJSX consumes the current token (as Skip does) and scans the next
// one under JSX-tag lexical rules: identifiers may contain '-' after the
// first character (`data-foo`, `xml:lang`-style names are out of scope),
// and a quote character begins a JSX string literal rather than a
// regular one. Used by a parser the moment it enters a JSX opening tag's
// attribute list. Grounded on skip_in_jsx in the original
// implementation's lex.rs.
func (l *Lexer) SkipInJSX() {
	l.lastTokenEnd = l.lastToken.End
	l.pos = l.lastToken.End
	l.skipWhitespace()
	begin := l.pos
	hasLeadingNewline := l.consumedNewlineSinceLastToken

	switch {
	case l.isEOF(begin):
		l.setToken(TokenEndOfFile, begin, begin, hasLeadingNewline, nil)
	case isASCIIIdentifierStart(l.curByte()) || l.curByte() >= 0x80:
		l.scanIdentifier(begin, hasLeadingNewline, IdentifierKindJSX)
	case l.curByte() == '\'' || l.curByte() == '"':
		l.scanJSXStringLiteral(begin, hasLeadingNewline)
	default:
		l.scanPunctuator(begin, hasLeadingNewline)
	}
}

// scanJSXStringLiteral scans a JSX attribute string literal, which
// (unlike JavaScript string literals) performs no backslash escape
// processing at all — every byte up to the matching quote is literal.
// Grounded on parse_jsx_string_literal in the original implementation's
// lex.rs.
func (l *Lexer) scanJSXStringLiteral(begin int, hasLeadingNewline bool) {
	quote := l.curByte()
	l.pos = begin + 1
	for {
		c := l.curByte()
		if c == quote {
			l.pos++
			l.setToken(TokenString, begin, l.pos, hasLeadingNewline, nil)
			return
		}
		if c == 0 && l.isEOF(l.pos) {
			l.report(diag.NewUnclosedJSXStringLiteral(diag.Span{Begin: begin, End: l.pos}))
			l.setToken(TokenString, begin, l.pos, hasLeadingNewline, nil)
			return
		}
		if c == '\n' || c == '\r' {
			l.consumedNewlineSinceLastToken = true
		}
		l.pos++
	}
}

// SkipInJSXChildren consumes the current token and scans the next one as
// a run of JSX text: everything up to (but not including) the next `<`
// or `{`, which end the text run and begin a nested element or
// expression respectively. A stray `>` or `}` inside the text is legal
// JSX (it's ordinary text) but almost always a typo for `{">"}`/`{"}"}},
// so the lexer reports it without treating it as a boundary. Grounded on
// skip_in_jsx_children in the original implementation's lex.rs.
func (l *Lexer) SkipInJSXChildren() {
	l.lastTokenEnd = l.lastToken.End
	l.pos = l.lastToken.End
	begin := l.pos

	for {
		c := l.curByte()
		switch {
		case c == 0 && l.isEOF(l.pos):
			l.setToken(TokenJSXText, begin, l.pos, false, nil)
			return
		case c == '<' || c == '{':
			l.setToken(TokenJSXText, begin, l.pos, false, nil)
			return
		case c == '>':
			l.report(diag.NewUnexpectedGreaterInJSXText(diag.Span{Begin: l.pos, End: l.pos + 1}))
			l.pos++
		case c == '}':
			l.report(diag.NewUnexpectedRightCurlyInJSXText(diag.Span{Begin: l.pos, End: l.pos + 1}))
			l.pos++
		default:
			l.pos++
		}
	}
}

// FindEqualGreaterInJSXChildren scans forward from the lexer's current
// position, without consuming any input or reporting diagnostics, for
// an `=>` that appears before the next `<`, `{`, `}` or end of file — the
// signature of a JSX element being used as an arrow function body
// (`const f = () => <div/>`) rather than the `<`/`>` being read as
// comparison operators. Returns the byte offset of the `=` if found, or
// -1. Grounded on find_equal_greater_in_jsx_children in the original
// implementation's lex.rs.
func (l *Lexer) FindEqualGreaterInJSXChildren() int {
	for p := l.pos; !l.isEOF(p); p++ {
		c := l.byteAt(p)
		if c == '<' || c == '{' || c == '}' {
			return -1
		}
		if c == '=' && l.byteAt(p+1) == '>' {
			return p
		}
	}
	return -1
}

// SkipLessLessAsLess consumes the first `<` of a just-scanned `<<` token
// and makes the second `<` the current token, so the next Skip scans
// whatever follows the `<<`. Used when a parser committed to `<<` as shift but later
// realizes (e.g. while disambiguating `Foo<<T>() => T>()`, a generic
// function type nested inside a type argument list) that it needed two
// separate `<` tokens. Grounded on skip_less_less_as_less in the
// original implementation's lex.rs.
func (l *Lexer) SkipLessLessAsLess() {
	if l.lastToken.Type != TokenLessLess {
		return
	}
	newBegin := l.lastToken.Begin + 1
	l.lastTokenEnd = newBegin
	l.lastToken = Token{Type: TokenLess, Begin: newBegin, End: newBegin + 1, HasLeadingNewline: false}
	l.pos = newBegin + 1
}

// SkipAsGreater peels one `>` off the front of a `>>`, `>>>`, `>=`,
// `>>=`, or `>>>=` token, repositioning the lexer so the remainder of
// the original spelling is rescanned as its own token on the next Skip.
// Used when closing nested generic type argument lists one angle
// bracket at a time (`Map<string, Array<number>>` needs two `>` tokens
// where the lexer greedily produced one `>>`). Grounded on
// skip_as_greater in the original implementation's lex.rs.
func (l *Lexer) SkipAsGreater() {
	switch l.lastToken.Type {
	case TokenGreaterGreater, TokenGreaterGreaterGreater, TokenGreaterEqual,
		TokenGreaterGreaterEqual, TokenGreaterGreaterGreaterEqual:
	default:
		return
	}
	begin := l.lastToken.Begin
	l.lastToken = Token{Type: TokenGreater, Begin: begin, End: begin + 1, HasLeadingNewline: l.lastToken.HasLeadingNewline}
	l.pos = begin + 1
}
