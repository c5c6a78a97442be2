package lexer

import "github.com/conduit-lang/tsjslex/internal/diag"

// ReparseAsRegexp discards the current `/` or `/=` token and rescans
// from its begin offset as a regexp literal. Only the parser knows
// whether a regexp is grammatically legal at the current position (the
// lexer alone cannot distinguish `/x/` the regexp from `a /x/ b` the
// pair of divisions), so it calls this once it has decided. Grounded on
// reparse_as_regexp in the original implementation's lex.rs.
func (l *Lexer) ReparseAsRegexp() {
	begin := l.lastToken.Begin
	hasLeadingNewline := l.lastToken.HasLeadingNewline
	l.pos = begin + 1 // past the opening '/'

	inCharacterClass := false
	for {
		c := l.curByte()
		switch {
		case c == 0 && l.isEOF(l.pos):
			l.report(diag.NewUnclosedRegexpLiteral(diag.Span{Begin: begin, End: l.pos}))
			l.setToken(TokenRegexp, begin, l.pos, hasLeadingNewline, nil)
			return

		case c == '\n' || c == '\r':
			l.report(diag.NewUnclosedRegexpLiteral(diag.Span{Begin: begin, End: l.pos}))
			l.setToken(TokenRegexp, begin, l.pos, hasLeadingNewline, nil)
			return

		case c == '\\':
			l.pos += 2

		case c == '[':
			inCharacterClass = true
			l.pos++

		case c == ']':
			inCharacterClass = false
			l.pos++

		case c == '/' && !inCharacterClass:
			l.pos++
			l.scanRegexpFlags()
			l.setToken(TokenRegexp, begin, l.pos, hasLeadingNewline, nil)
			return

		default:
			l.pos++
		}
	}
}

func (l *Lexer) scanRegexpFlags() {
	for {
		c := l.curByte()
		if isASCIIIdentifierContinue(c) {
			l.pos++
			continue
		}
		if c == '\\' && l.at(1) == 'u' {
			escapeBegin := l.pos
			res := l.parseUnicodeEscape(escapeBegin)
			l.report(diag.NewRegexpLiteralFlagsCannotContainUnicodeEscapes(diag.Span{Begin: escapeBegin, End: res.end}))
			l.pos = res.end
			continue
		}
		return
	}
}

// TestForRegexp speculatively reparses the current `/`-spelled token as
// a regexp literal, reporting no diagnostics and leaving the lexer
// exactly where it was, and returns whether a well-formed regexp
// literal (reaching an unescaped closing `/` before end of line) was
// found. A parser can use this to decide whether ReparseAsRegexp would
// be safe without committing to it. Grounded on the original
// implementation's test_for_regexp, which performs the same
// begin/roll-back dance around a trial parse.
func (l *Lexer) TestForRegexp() bool {
	l.BeginTransaction()
	l.ReparseAsRegexp()
	ok := l.lastToken.Type == TokenRegexp && !l.TransactionHasLexDiagnostics()
	l.RollBackTransaction()
	return ok
}
