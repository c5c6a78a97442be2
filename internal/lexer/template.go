package lexer

import (
	"github.com/conduit-lang/tsjslex/internal/diag"
	"github.com/conduit-lang/tsjslex/internal/padded"
)

// scanTemplateStart scans a template literal chunk beginning at the
// opening backtick.
func (l *Lexer) scanTemplateStart(begin int, hasLeadingNewline bool) {
	l.scanTemplateChunk(begin, hasLeadingNewline)
}

// SkipInTemplate resumes scanning a template literal's raw text after a
// `${...}` interpolation: the lexer's current token must be the `}`
// that closed the interpolation, and this rescans starting there as
// template body rather than as an ordinary right-curly punctuator.
// Grounded on skip_in_template in the original implementation's lex.rs.
func (l *Lexer) SkipInTemplate() {
	begin := l.lastToken.Begin
	l.scanTemplateChunk(begin, l.lastToken.HasLeadingNewline)
}

// scanTemplateChunk scans one template-literal segment starting at
// begin (an opening backtick, or a `}` continuing after an
// interpolation) up to either the closing backtick (TokenCompleteTemplate)
// or the next `${` (TokenIncompleteTemplate). Escape-sequence
// diagnostics inside the chunk are buffered on the resulting token
// rather than reported immediately: a driver that abandons the
// template (backtracks out of a speculative parse) never surfaces them;
// one that keeps it calls CommitTemplateDiagnostics once the whole
// template literal is accepted. Grounded on parse_template_body in the
// original implementation's lex.rs, whose BufferingDiagReporter exists
// for exactly this reason.
func (l *Lexer) scanTemplateChunk(begin int, hasLeadingNewline bool) {
	l.pos = begin + 1
	buffered := diag.NewBufferingReporter()

	for {
		c := l.curByte()
		switch {
		case c == '`':
			l.pos++
			l.finishTemplateToken(TokenCompleteTemplate, begin, hasLeadingNewline, buffered)
			return

		case c == '$' && l.at(1) == '{':
			l.pos += 2
			l.finishTemplateToken(TokenIncompleteTemplate, begin, hasLeadingNewline, buffered)
			return

		case c == 0 && l.isEOF(l.pos):
			l.report(diag.NewUnclosedTemplate(diag.Span{Begin: begin, End: l.pos}))
			l.finishTemplateToken(TokenCompleteTemplate, begin, hasLeadingNewline, buffered)
			return

		case c == '\\':
			l.scanTemplateEscape(buffered)

		case c == '\n' || c == '\r':
			l.consumedNewlineSinceLastToken = true
			l.pos++

		default:
			n, _, ok := padded.DecodeUTF8CodePoint(l.buf, l.pos)
			if !ok || n == 0 {
				n = 1
			}
			l.pos += n
		}
	}
}

func (l *Lexer) finishTemplateToken(t TokenType, begin int, hasLeadingNewline bool, buffered *diag.BufferingReporter) {
	l.setToken(t, begin, l.pos, hasLeadingNewline, nil)
	if buffered.HasDiagnostics() {
		l.lastToken.TemplateEscapeDiagnostics = buffered
	}
}

// scanTemplateEscape is scanStringEscape's template-body counterpart: it
// reports malformed-escape diagnostics into buffered instead of directly
// to the active sink.
func (l *Lexer) scanTemplateEscape(buffered *diag.BufferingReporter) {
	escapeBegin := l.pos
	l.pos++
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
			buffered.Report(diag.NewInvalidHexEscapeSequence(diag.Span{Begin: escapeBegin, End: end}))
			l.pos = end
		}
	case 'u':
		res := l.parseUnicodeEscapeInto(escapeBegin, buffered)
		l.pos = res.end
	default:
		n, _, ok := padded.DecodeUTF8CodePoint(l.buf, l.pos)
		if !ok || n == 0 {
			n = 1
		}
		l.pos += n
	}
}

// CommitTemplateDiagnostics flushes a template token's deferred escape
// diagnostics (if any) into the lexer's active sink. Call once a parser
// has accepted the full template literal the token belongs to.
func (l *Lexer) CommitTemplateDiagnostics(tok Token) {
	if tok.TemplateEscapeDiagnostics != nil {
		tok.TemplateEscapeDiagnostics.MergeInto(l.activeSink())
	}
}
