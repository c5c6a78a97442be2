package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/tsjslex/internal/diag"
	"github.com/conduit-lang/tsjslex/internal/padded"
)

func tokenize(t *testing.T, source string) ([]Token, *diag.SliceSink) {
	t.Helper()
	buf := padded.NewFromString(source)
	sink := diag.NewSliceSink()
	l := New(buf, sink)
	var tokens []Token
	for {
		tok := l.Peek()
		tokens = append(tokens, tok)
		if tok.Type == TokenEndOfFile {
			break
		}
		l.Skip()
	}
	return tokens, sink
}

func TestEmptyInputIsJustEndOfFile(t *testing.T) {
	tokens, sink := tokenize(t, "")
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenEndOfFile, tokens[0].Type)
	assert.Empty(t, sink.Diagnostics)
}

func TestPunctuatorsPreferLongestMatch(t *testing.T) {
	tokens, sink := tokenize(t, ">>>= >>= >>> >> >= > === !== == != =>")
	assert.Empty(t, sink.Diagnostics)
	types := tokenTypes(tokens)
	assert.Equal(t, []TokenType{
		TokenGreaterGreaterGreaterEqual,
		TokenGreaterGreaterEqual,
		TokenGreaterGreaterGreater,
		TokenGreaterGreater,
		TokenGreaterEqual,
		TokenGreater,
		TokenEqualEqualEqual,
		TokenBangEqualEqual,
		TokenEqualEqual,
		TokenBangEqual,
		TokenEqualGreater,
		TokenEndOfFile,
	}, types)
}

func TestKeywordsAreRecognized(t *testing.T) {
	tokens, _ := tokenize(t, "const let var function")
	assert.Equal(t, TokenKeywordConst, tokens[0].Type)
	assert.Equal(t, TokenKeywordLet, tokens[1].Type)
	assert.Equal(t, TokenKeywordVar, tokens[2].Type)
	assert.Equal(t, TokenKeywordFunction, tokens[3].Type)
}

func TestIdentifierNormalizationAliasesSourceWhenNoEscapes(t *testing.T) {
	tokens, _ := tokenize(t, "helloWorld")
	require.Equal(t, TokenIdentifier, tokens[0].Type)
	assert.Equal(t, "helloWorld", string(tokens[0].NormalizedIdentifier))
}

func TestIdentifierWithUnicodeEscapeNormalizes(t *testing.T) {
	tokens, sink := tokenize(t, "a\\u0062c")
	require.Equal(t, TokenIdentifier, tokens[0].Type)
	assert.Equal(t, "abc", string(tokens[0].NormalizedIdentifier))
	assert.Empty(t, sink.Diagnostics)
}

func TestEscapedKeywordSpellingIsReservedWithEscapeSequence(t *testing.T) {
	tokens, _ := tokenize(t, "c\\u006fnst")
	assert.Equal(t, TokenReservedKeywordWithEscapeSequence, tokens[0].Type)
	assert.Equal(t, "const", string(tokens[0].NormalizedIdentifier))
}

func TestPrivateIdentifier(t *testing.T) {
	tokens, _ := tokenize(t, "#field")
	require.Equal(t, TokenPrivateIdentifier, tokens[0].Type)
	assert.Equal(t, "#field", string(tokens[0].NormalizedIdentifier))
}

func TestUnclosedStringLiteralReportsDiagnostic(t *testing.T) {
	_, sink := tokenize(t, `"abc`)
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, diag.UnclosedStringLiteral, sink.Diagnostics[0].Code)
}

func TestAtCharacterIsSkippedLikeWhitespace(t *testing.T) {
	tokens, sink := tokenize(t, "a @ b")
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, diag.UnexpectedAtCharacter, sink.Diagnostics[0].Code)
	assert.Equal(t, []TokenType{TokenIdentifier, TokenIdentifier, TokenEndOfFile}, tokenTypes(tokens))
}

func TestDeleteControlCharacterIsSkippedLikeWhitespace(t *testing.T) {
	tokens, sink := tokenize(t, "a \x7f b")
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, diag.UnexpectedControlCharacter, sink.Diagnostics[0].Code)
	assert.Equal(t, []TokenType{TokenIdentifier, TokenIdentifier, TokenEndOfFile}, tokenTypes(tokens))
}

func TestStringWithBareNewlineIsUnclosed(t *testing.T) {
	tokens, sink := tokenize(t, "\"abc\ndef\"")
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, diag.UnclosedStringLiteral, sink.Diagnostics[0].Code)

	// a matching quote on the next line extends the token to cover it,
	// rather than leaving "def\"" to be re-lexed as separate tokens.
	require.Len(t, tokens, 2) // the String token plus EndOfFile
	require.Equal(t, TokenString, tokens[0].Type)
	assert.Equal(t, 0, tokens[0].Begin)
	assert.Equal(t, 9, tokens[0].End)
}

func TestStringWithBareNewlineAndNoMatchOnNextLineEndsAtNewline(t *testing.T) {
	tokens, sink := tokenize(t, "\"abc\ndef\n\"x\"")
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, diag.UnclosedStringLiteral, sink.Diagnostics[0].Code)
	require.NotEmpty(t, tokens)
	assert.Equal(t, TokenString, tokens[0].Type)
	assert.Equal(t, 4, tokens[0].End) // no quote at all on "def" before the next newline
}

func TestNumberLiteralsBasic(t *testing.T) {
	tokens, sink := tokenize(t, "0 123 0b101 0o17 0xFF 1.5 1e10 1_000 10n")
	assert.Empty(t, sink.Diagnostics)
	for _, tok := range tokens[:len(tokens)-1] {
		assert.Equal(t, TokenNumber, tok.Type)
	}
}

func TestBinaryNumberWithNoDigitsReportsDiagnostic(t *testing.T) {
	_, sink := tokenize(t, "0b")
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, diag.NoDigitsInBinaryNumber, sink.Diagnostics[0].Code)
}

func TestLargeIntegerLiteralWarnsAboutPrecisionLoss(t *testing.T) {
	_, sink := tokenize(t, "9007199254740993")
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, diag.IntegerLiteralWillLosePrecision, sink.Diagnostics[0].Code)
	assert.Equal(t, diag.SeverityWarning, sink.Diagnostics[0].Severity)
	assert.Equal(t, "9007199254740993", sink.Diagnostics[0].Actual)
	assert.Equal(t, "9007199254740992", sink.Diagnostics[0].Expected)
}

func TestExactlyRepresentableLargeIntegerDoesNotWarn(t *testing.T) {
	_, sink := tokenize(t, "100000000000000000000")
	assert.Empty(t, sink.Diagnostics)
}

func TestAbsurdlyLargeIntegerLiteralRoundsToInf(t *testing.T) {
	_, sink := tokenize(t, strings.Repeat("9", 310))
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, diag.IntegerLiteralWillLosePrecision, sink.Diagnostics[0].Code)
	assert.Equal(t, "inf", sink.Diagnostics[0].Expected)
}

func TestUnopenedTrailingUnderscoreReportsDiagnostic(t *testing.T) {
	_, sink := tokenize(t, "1_")
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, diag.NumberLiteralContainsTrailingUnderscores, sink.Diagnostics[0].Code)
}

func TestTemplateLiteralWithoutInterpolationIsComplete(t *testing.T) {
	tokens, sink := tokenize(t, "`hello world`")
	require.Equal(t, TokenCompleteTemplate, tokens[0].Type)
	assert.Empty(t, sink.Diagnostics)
}

func TestTemplateLiteralWithInterpolationSplitsAndResumes(t *testing.T) {
	buf := padded.NewFromString("`a${1}b`")
	sink := diag.NewSliceSink()
	l := New(buf, sink)

	require.Equal(t, TokenIncompleteTemplate, l.Peek().Type)
	l.Skip()
	require.Equal(t, TokenNumber, l.Peek().Type)
	l.Skip()
	require.Equal(t, TokenRightCurly, l.Peek().Type)

	l.SkipInTemplate()
	assert.Equal(t, TokenCompleteTemplate, l.Peek().Type)
}

func TestUnclosedTemplateReportsDiagnostic(t *testing.T) {
	_, sink := tokenize(t, "`abc")
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, diag.UnclosedTemplate, sink.Diagnostics[0].Code)
}

func TestRegexpReparseFromSlashToken(t *testing.T) {
	buf := padded.NewFromString("/abc/gi")
	sink := diag.NewSliceSink()
	l := New(buf, sink)

	require.Equal(t, TokenSlash, l.Peek().Type)
	l.ReparseAsRegexp()
	assert.Equal(t, TokenRegexp, l.Peek().Type)
	assert.Equal(t, "/abc/gi", string(buf.Slice(l.Peek().Begin, l.Peek().End)))
}

func TestTestForRegexpDoesNotMutateLexerState(t *testing.T) {
	buf := padded.NewFromString("/abc/ + 1")
	sink := diag.NewSliceSink()
	l := New(buf, sink)

	before := l.Peek()
	ok := l.TestForRegexp()
	assert.True(t, ok)
	assert.Equal(t, before, l.Peek())
	assert.Empty(t, sink.Diagnostics)
}

func TestTransactionRollbackRestoresPositionAndDiscardsDiagnostics(t *testing.T) {
	buf := padded.NewFromString(`a "abc`)
	sink := diag.NewSliceSink()
	l := New(buf, sink)

	before := l.Peek()
	l.BeginTransaction()
	l.Skip() // triggers the unclosed-string diagnostic, buffered
	assert.True(t, l.TransactionHasLexDiagnostics())
	l.RollBackTransaction()

	assert.Equal(t, before, l.Peek())
	assert.Empty(t, sink.Diagnostics)
}

func TestTransactionCommitKeepsStateAndFlushesDiagnostics(t *testing.T) {
	buf := padded.NewFromString(`a "abc`)
	sink := diag.NewSliceSink()
	l := New(buf, sink)

	l.BeginTransaction()
	l.Skip()
	l.CommitTransaction()

	assert.NotEmpty(t, sink.Diagnostics)
}

func TestNestedTransactions(t *testing.T) {
	buf := padded.NewFromString("a b c")
	sink := diag.NewSliceSink()
	l := New(buf, sink)

	l.BeginTransaction()
	l.Skip()
	l.BeginTransaction()
	l.Skip()
	inner := l.Peek()
	l.RollBackTransaction()
	assert.NotEqual(t, inner.Begin, l.Peek().Begin)
	l.CommitTransaction()
}

func TestSkipAsGreaterPeelsOneCharacterAtATime(t *testing.T) {
	buf := padded.NewFromString(">>>")
	sink := diag.NewSliceSink()
	l := New(buf, sink)

	require.Equal(t, TokenGreaterGreaterGreater, l.Peek().Type)
	l.SkipAsGreater()
	assert.Equal(t, TokenGreater, l.Peek().Type)
	assert.Equal(t, 1, l.Peek().End-l.Peek().Begin)
	l.Skip()
	assert.Equal(t, TokenGreaterGreater, l.Peek().Type)
}

func TestSkipLessLessAsLess(t *testing.T) {
	buf := padded.NewFromString("<<T")
	sink := diag.NewSliceSink()
	l := New(buf, sink)

	require.Equal(t, TokenLessLess, l.Peek().Type)
	l.SkipLessLessAsLess()
	assert.Equal(t, TokenLess, l.Peek().Type)
	l.Skip()
	assert.Equal(t, TokenIdentifier, l.Peek().Type)
}

func TestSkipInJSXAllowsHyphenatedNames(t *testing.T) {
	buf := padded.NewFromString("<div data-foo=\"x\">")
	sink := diag.NewSliceSink()
	l := New(buf, sink)

	require.Equal(t, TokenLess, l.Peek().Type)
	l.SkipInJSX()
	require.Equal(t, TokenIdentifier, l.Peek().Type)
	assert.Equal(t, "div", string(l.Peek().NormalizedIdentifier))
	l.SkipInJSX()
	assert.Equal(t, "data-foo", string(l.Peek().NormalizedIdentifier))
	l.SkipInJSX()
	assert.Equal(t, TokenEqual, l.Peek().Type)
	l.SkipInJSX()
	assert.Equal(t, TokenString, l.Peek().Type)
}

func TestSkipInJSXChildrenStopsAtAngleAndCurly(t *testing.T) {
	buf := padded.NewFromString(">hello{x}<")
	sink := diag.NewSliceSink()
	l := New(buf, sink)

	l.SkipInJSXChildren()
	assert.Equal(t, TokenJSXText, l.Peek().Type)
	assert.Equal(t, "hello", string(buf.Slice(l.Peek().Begin, l.Peek().End)))
}

func TestFindEqualGreaterInJSXChildren(t *testing.T) {
	buf := padded.NewFromString("() => <div/>")
	sink := diag.NewSliceSink()
	l := New(buf, sink)
	idx := l.FindEqualGreaterInJSXChildren()
	assert.Equal(t, 3, idx)
}

func TestInsertSemicolonDoesNotConsumeInput(t *testing.T) {
	buf := padded.NewFromString("a")
	sink := diag.NewSliceSink()
	l := New(buf, sink)
	l.Skip() // now at EOF
	pos := l.EndOfPreviousToken()
	l.InsertSemicolon()
	assert.Equal(t, TokenSemicolon, l.Peek().Type)
	assert.Equal(t, pos, l.Peek().Begin)
	assert.Equal(t, pos, l.Peek().End)
}

func TestEveryTokenAdvancesOrIsEOF(t *testing.T) {
	source := "const x = 1 + 2 * (3 - 4) / 5 % 6; let y = x ?? 0;"
	tokens, sink := tokenize(t, source)
	assert.Empty(t, sink.Diagnostics)
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Type == TokenEndOfFile {
			continue
		}
		assert.Greater(t, tokens[i].Begin, tokens[i-1].Begin-1)
	}
}

func TestLineCommentIsSkippedAndNewlineNoted(t *testing.T) {
	buf := padded.NewFromString("// comment\nx")
	sink := diag.NewSliceSink()
	l := New(buf, sink)
	tok := l.Peek()
	assert.Equal(t, TokenIdentifier, tok.Type)
	assert.True(t, tok.HasLeadingNewline)
}

func TestBlockCommentUnclosedReportsDiagnostic(t *testing.T) {
	_, sink := tokenize(t, "/* abc")
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, diag.UnclosedBlockComment, sink.Diagnostics[0].Code)
}

func TestUnicodeWhitespaceIsSkipped(t *testing.T) {
	tokens, sink := tokenize(t, "a =　b")
	assert.Empty(t, sink.Diagnostics)
	assert.Equal(t, TokenIdentifier, tokens[0].Type)
	assert.Equal(t, TokenEqual, tokens[1].Type)
	assert.Equal(t, TokenIdentifier, tokens[2].Type)
}

func tokenTypes(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}
