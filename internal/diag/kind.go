// Package diag provides structured diagnostics for the lexer, styled on
// the compiler's errors package but trimmed to the lexical-diagnostic
// catalog a pull-based JS/TS/JSX lexer can raise on its own (parse-level
// and type-level diagnostics live outside this module's scope).
package diag

// Kind is a unique diagnostic code. Grouped by the area of the lexer
// that raises it, mirroring the errors package's per-category code
// blocks (SYN001-099 and friends) but renumbered under a LEX prefix
// since every diagnostic here is lexical, not syntactic.
type Kind string

const (
	// Structural / whole-file diagnostics (LEX001-019)
	UnexpectedBOMBeforeShebang Kind = "LEX001"
	UnexpectedControlCharacter Kind = "LEX002"
	UnexpectedAtCharacter      Kind = "LEX003"
	UnexpectedHashCharacter    Kind = "LEX004"
	InvalidUTF8Sequence        Kind = "LEX005"

	// Comments (LEX020-029)
	UnopenedBlockComment Kind = "LEX020"
	UnclosedBlockComment Kind = "LEX021"

	// String and template literals (LEX030-059)
	UnclosedStringLiteral             Kind = "LEX030"
	UnclosedJSXStringLiteral          Kind = "LEX031"
	UnclosedTemplate                  Kind = "LEX032"
	InvalidHexEscapeSequence          Kind = "LEX033"
	InvalidQuotesAroundStringLiteral  Kind = "LEX034"
	ExpectedHexDigitsInUnicodeEscape  Kind = "LEX035"
	UnclosedIdentifierEscapeSequence  Kind = "LEX036"
	EscapedCodePointInUnicodeOutOfRange Kind = "LEX037"

	// Regexp literals (LEX060-069)
	UnclosedRegexpLiteral                      Kind = "LEX060"
	RegexpLiteralFlagsCannotContainUnicodeEscapes Kind = "LEX061"

	// Identifiers (LEX070-089)
	EscapedCharacterDisallowedInIdentifiers Kind = "LEX070"
	EscapedHyphenNotAllowedInJSXTag         Kind = "LEX071"
	CharacterDisallowedInIdentifiers        Kind = "LEX072"
	UnexpectedBackslashInIdentifier         Kind = "LEX073"

	// Numeric literals (LEX090-109)
	NoDigitsInBinaryNumber                      Kind = "LEX090"
	NoDigitsInOctalNumber                       Kind = "LEX091"
	NoDigitsInHexNumber                         Kind = "LEX092"
	UnexpectedCharactersInNumber                Kind = "LEX093"
	UnexpectedCharactersInBinaryNumber          Kind = "LEX094"
	UnexpectedCharactersInOctalNumber           Kind = "LEX095"
	UnexpectedCharactersInHexNumber             Kind = "LEX096"
	NumberLiteralContainsConsecutiveUnderscores Kind = "LEX097"
	NumberLiteralContainsTrailingUnderscores    Kind = "LEX098"
	LegacyOctalLiteralMayNotContainUnderscores  Kind = "LEX099"
	LegacyOctalLiteralMayNotBeBigInt            Kind = "LEX100"
	OctalLiteralMayNotHaveDecimal               Kind = "LEX101"
	OctalLiteralMayNotHaveExponent              Kind = "LEX102"
	BigIntLiteralContainsDecimalPoint           Kind = "LEX103"
	BigIntLiteralContainsExponent               Kind = "LEX104"
	IntegerLiteralWillLosePrecision             Kind = "LEX105"

	// JSX (LEX110-119)
	UnexpectedGreaterInJSXText       Kind = "LEX110"
	UnexpectedRightCurlyInJSXText    Kind = "LEX111"
)
