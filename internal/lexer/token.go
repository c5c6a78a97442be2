// Package lexer implements a pull-based JavaScript/TypeScript/JSX
// lexical analyzer: Peek returns the current token without consuming
// it, Skip advances past it, and a family of Skip* variants re-enter the
// scanner in the non-default lexical contexts (regexp, JSX text, JSX
// tag, template continuation) a pure longest-match tokenizer cannot
// resolve on its own. Grounded throughout on the Lexer type in the
// original implementation's lex.rs.
package lexer

import "github.com/conduit-lang/tsjslex/internal/diag"

// TokenType is the closed set of lexical token kinds. Punctuators and
// keywords are both represented as TokenType values (as in the original)
// rather than as a separate enum, since both are decided purely by the
// token's spelling.
type TokenType int

const (
	TokenEndOfFile TokenType = iota

	// Literals and identifiers.
	TokenIdentifier
	TokenPrivateIdentifier
	TokenReservedKeywordWithEscapeSequence
	TokenNumber
	TokenString
	TokenCompleteTemplate
	TokenIncompleteTemplate
	TokenRegexp
	TokenJSXText

	// Punctuators.
	TokenAmpersand
	TokenAmpersandAmpersand
	TokenAmpersandAmpersandEqual
	TokenAmpersandEqual
	TokenBang
	TokenBangEqual
	TokenBangEqualEqual
	TokenCircumflex
	TokenCircumflexEqual
	TokenColon
	TokenComma
	TokenDot
	TokenDotDotDot
	TokenEqual
	TokenEqualEqual
	TokenEqualEqualEqual
	TokenEqualGreater
	TokenGreater
	TokenGreaterEqual
	TokenGreaterGreater
	TokenGreaterGreaterEqual
	TokenGreaterGreaterGreater
	TokenGreaterGreaterGreaterEqual
	TokenLeftCurly
	TokenLeftParen
	TokenLeftSquare
	TokenLess
	TokenLessEqual
	TokenLessLess
	TokenLessLessEqual
	TokenMinus
	TokenMinusEqual
	TokenMinusMinus
	TokenPercent
	TokenPercentEqual
	TokenPipe
	TokenPipeEqual
	TokenPipePipe
	TokenPipePipeEqual
	TokenPlus
	TokenPlusEqual
	TokenPlusPlus
	TokenQuestion
	TokenQuestionDot
	TokenQuestionQuestion
	TokenQuestionQuestionEqual
	TokenRightCurly
	TokenRightParen
	TokenRightSquare
	TokenSemicolon
	TokenSlash
	TokenSlashEqual
	TokenStar
	TokenStarEqual
	TokenStarStar
	TokenStarStarEqual
	TokenTilde

	// Keywords (reserved words in every context).
	TokenKeywordBreak
	TokenKeywordCase
	TokenKeywordCatch
	TokenKeywordClass
	TokenKeywordConst
	TokenKeywordContinue
	TokenKeywordDebugger
	TokenKeywordDefault
	TokenKeywordDelete
	TokenKeywordDo
	TokenKeywordElse
	TokenKeywordExport
	TokenKeywordExtends
	TokenKeywordFalse
	TokenKeywordFinally
	TokenKeywordFor
	TokenKeywordFunction
	TokenKeywordIf
	TokenKeywordImport
	TokenKeywordIn
	TokenKeywordInstanceof
	TokenKeywordNew
	TokenKeywordNull
	TokenKeywordReturn
	TokenKeywordSuper
	TokenKeywordSwitch
	TokenKeywordThis
	TokenKeywordThrow
	TokenKeywordTrue
	TokenKeywordTry
	TokenKeywordTypeof
	TokenKeywordVar
	TokenKeywordVoid
	TokenKeywordWhile
	TokenKeywordWith

	// Strict-mode-only reserved keywords (may be demoted to
	// TokenIdentifier outside strict mode by the driver; see
	// ReservedKeywordWithEscapeSequence for the escaped case).
	TokenKeywordImplements
	TokenKeywordInterface
	TokenKeywordLet
	TokenKeywordPackage
	TokenKeywordPrivate
	TokenKeywordProtected
	TokenKeywordPublic
	TokenKeywordStatic
	TokenKeywordYield

	// Contextual keywords: always TokenIdentifier-shaped but recognized
	// by spelling where the grammar calls for them (async/await, get/set,
	// of, as, from, etc). The lexer reports these as TokenIdentifier; the
	// NormalizedIdentifier field lets a driver compare spellings.
)

// Span is a half-open byte-offset range into the padded.Buffer the
// lexer was constructed over.
type Span struct {
	Begin, End int
}

// EscapeSequence records one `\uXXXX` or `\u{X...}` escape found while
// normalizing an identifier, private identifier, or keyword spelling.
type EscapeSequence struct {
	Span Span
}

// Token is one lexical token. Grounded on the Token type referenced
// throughout lex.rs (token.rs in the original tree, not reproduced in
// this pack, but its shape is fully implied by lex.rs's last_token
// usage).
type Token struct {
	Type TokenType

	// Begin and End are byte offsets into the lexer's padded.Buffer.
	Begin, End int

	// HasLeadingNewline reports whether a line terminator occurred in
	// the whitespace/comments skipped immediately before this token.
	// Needed for automatic semicolon insertion.
	HasLeadingNewline bool

	// NormalizedIdentifier holds the decoded spelling of an identifier,
	// private identifier, or keyword token once escape sequences (if
	// any) have been resolved to their literal UTF-8 bytes. For tokens
	// with no escape sequences this aliases directly into the source
	// buffer; for tokens with escapes it is arena-allocated. Empty for
	// non-identifier-shaped tokens.
	NormalizedIdentifier []byte

	// IdentifierEscapeSequences lists every escape sequence folded into
	// NormalizedIdentifier, in source order. Nil when there were none.
	IdentifierEscapeSequences []EscapeSequence

	// TemplateEscapeDiagnostics buffers diagnostics discovered while
	// scanning a template body (`${`/backtick-delimited), deferred until
	// the driver knows the template survives (see Lexer.CommitTemplateDiagnostics).
	TemplateEscapeDiagnostics *diag.BufferingReporter
}

// SpanOf returns the token's source range.
func (t Token) SpanOf() Span { return Span{Begin: t.Begin, End: t.End} }
