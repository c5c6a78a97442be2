package lexer

import (
	"github.com/conduit-lang/tsjslex/internal/diag"
	"github.com/conduit-lang/tsjslex/internal/lexer/arena"
	"github.com/conduit-lang/tsjslex/internal/padded"
)

// Lexer is a pull-based tokenizer over one padded.Buffer. It is not
// safe for concurrent use. Grounded on the Lexer struct in the original
// implementation's lex.rs (fields last_token, input, diag_reporter,
// original_input, allocator).
type Lexer struct {
	buf *padded.Buffer
	pos int

	sink diag.Sink

	lastToken    Token
	lastTokenEnd int // end of previously-returned token, for InsertSemicolon

	// consumedNewlineSinceLastToken is set by skipWhitespace/comment
	// skipping whenever a line terminator was crossed, and consumed (and
	// reset) the next time a token is produced.
	consumedNewlineSinceLastToken bool

	identArena *arena.Bump
	txArena    *arena.Bump

	transactions []*transactionFrame
}

// New constructs a Lexer over buf, reporting diagnostics to sink, and
// scans the first token.
func New(buf *padded.Buffer, sink diag.Sink) *Lexer {
	l := &Lexer{
		buf:        buf,
		sink:       sink,
		identArena: arena.New("lexer-identifiers"),
		txArena:    arena.New("lexer-transactions"),
	}
	l.parseBOMBeforeShebang()
	l.skipWhitespace()
	l.parseCurrentToken()
	return l
}

// Peek returns the current token without consuming it.
func (l *Lexer) Peek() Token {
	return l.lastToken
}

// Skip consumes the current token and scans the next one.
func (l *Lexer) Skip() {
	l.lastTokenEnd = l.lastToken.End
	l.pos = l.lastToken.End
	l.skipWhitespace()
	l.parseCurrentToken()
}

// EndOfPreviousToken returns the byte offset just past the last token
// Skip consumed (not the current, not-yet-consumed token). Used for
// automatic semicolon insertion diagnostics that point just after the
// offending token.
func (l *Lexer) EndOfPreviousToken() int {
	return l.lastTokenEnd
}

// InsertSemicolon rewrites the current token into a zero-width
// semicolon positioned at EndOfPreviousToken, without consuming any
// input: a subsequent Skip rescans the real current token exactly as
// before. Used by a parser implementing automatic semicolon insertion,
// which needs a semicolon token to exist at a specific position without
// the lexer having actually seen one. Grounded on insert_semicolon in
// the original implementation's lex.rs.
func (l *Lexer) InsertSemicolon() {
	l.pos = l.lastTokenEnd
	l.lastToken = Token{
		Type:  TokenSemicolon,
		Begin: l.lastTokenEnd,
		End:   l.lastTokenEnd,
	}
}

func (l *Lexer) report(d *diag.Diagnostic) {
	l.activeSink().Report(d)
}

func (l *Lexer) activeSink() diag.Sink {
	if len(l.transactions) > 0 {
		return l.transactions[len(l.transactions)-1].buffer
	}
	return l.sink
}

func (l *Lexer) byteAt(offset int) byte {
	return l.buf.Byte(offset)
}

func (l *Lexer) curByte() byte  { return l.byteAt(l.pos) }
func (l *Lexer) at(off int) byte { return l.byteAt(l.pos + off) }

func (l *Lexer) isEOF(pos int) bool {
	return pos >= l.buf.NullTerminator()
}

// parseBOMBeforeShebang consumes a leading UTF-8 BOM so it is not
// confused with a `#!` shebang line, reporting LEX001 (a BOM may not
// precede a shebang) the way the original implementation's
// parse_bom_before_shebang does.
func (l *Lexer) parseBOMBeforeShebang() {
	const bom = "\xef\xbb\xbf"
	if l.buf.Len() >= len(bom) && string(l.buf.Slice(0, len(bom))) == bom {
		if l.buf.Len() > len(bom) && l.byteAt(len(bom)) == '#' && l.byteAt(len(bom)+1) == '!' {
			l.report(diag.NewUnexpectedBOMBeforeShebang(diag.Span{Begin: 0, End: len(bom)}))
		}
		l.pos = len(bom)
	}
}

// parseCurrentToken scans one token starting at l.pos into l.lastToken.
// This is the dispatch switch grounded on try_parse_current_token /
// parse_current_token in the original implementation's lex.rs.
func (l *Lexer) parseCurrentToken() {
	begin := l.pos
	hasLeadingNewline := l.consumedNewlineSinceLastToken

	c := l.curByte()
	switch {
	case l.isEOF(begin):
		l.setToken(TokenEndOfFile, begin, begin, hasLeadingNewline, nil)

	case isASCIIIdentifierStart(c):
		l.scanIdentifier(begin, hasLeadingNewline, IdentifierKindJavaScript)

	case c == '\\':
		l.scanIdentifier(begin, hasLeadingNewline, IdentifierKindJavaScript)

	case c >= 0x80:
		l.scanIdentifierOrUnexpectedNonASCII(begin, hasLeadingNewline)

	case c == '#':
		l.scanHashOrPrivateIdentifier(begin, hasLeadingNewline)

	case isDigit(c):
		l.scanNumber(begin, hasLeadingNewline)

	case c == '.' && isDigit(l.at(1)):
		l.scanNumber(begin, hasLeadingNewline)

	case c == '\'' || c == '"':
		l.scanString(begin, hasLeadingNewline, c)

	case isSmartQuote(c, l.at(1), l.at(2)):
		l.scanSmartQuoteString(begin, hasLeadingNewline)

	case c == '`':
		l.scanTemplateStart(begin, hasLeadingNewline)

	case c == '@':
		l.pos++
		l.report(diag.NewUnexpectedAtCharacter(diag.Span{Begin: begin, End: l.pos}))
		l.parseCurrentTokenAfterSkippingOne(hasLeadingNewline)

	case (c < 0x20 && c != '\t') || c == 0x7F:
		l.pos++
		l.report(diag.NewUnexpectedControlCharacter(diag.Span{Begin: begin, End: l.pos}, rune(c)))
		l.parseCurrentTokenAfterSkippingOne(hasLeadingNewline)

	default:
		l.scanPunctuator(begin, hasLeadingNewline)
	}
}

func (l *Lexer) parseCurrentTokenAfterSkippingOne(hasLeadingNewline bool) {
	l.skipWhitespace()
	l.parseCurrentToken()
}

func (l *Lexer) setToken(t TokenType, begin, end int, hasLeadingNewline bool, normalized []byte) {
	l.lastToken = Token{
		Type:                  t,
		Begin:                 begin,
		End:                   end,
		HasLeadingNewline:     hasLeadingNewline,
		NormalizedIdentifier:  normalized,
	}
	l.consumedNewlineSinceLastToken = false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isASCIIIdentifierStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIIdentifierContinue(c byte) bool {
	return isASCIIIdentifierStart(c) || isDigit(c)
}

func isSmartQuote(c0, c1, c2 byte) bool {
	// U+2018/2019 single smart quotes and U+201C/201D double smart
	// quotes are all encoded as E2 80 {98,99,9C,9D} in UTF-8.
	if c0 != 0xe2 || c1 != 0x80 {
		return false
	}
	switch c2 {
	case 0x98, 0x99, 0x9c, 0x9d:
		return true
	default:
		return false
	}
}
