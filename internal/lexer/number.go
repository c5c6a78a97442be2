package lexer

import (
	"strconv"
	"strings"

	"github.com/conduit-lang/tsjslex/internal/diag"
)

// scanNumber scans a numeric literal beginning at begin, grounded on
// parse_number and its parse_binary_number/parse_legacy_octal_number/
// parse_modern_octal_number/parse_hexadecimal_number helpers in the
// original implementation's lex.rs.
func (l *Lexer) scanNumber(begin int, hasLeadingNewline bool) {
	if l.curByte() == '0' {
		switch l.at(1) {
		case 'b', 'B':
			l.scanRadixNumber(begin, hasLeadingNewline, 2, diag.NewNoDigitsInBinaryNumber, diag.NewUnexpectedCharactersInBinaryNumber)
			return
		case 'o', 'O':
			l.scanRadixNumber(begin, hasLeadingNewline, 8, diag.NewNoDigitsInOctalNumber, diag.NewUnexpectedCharactersInOctalNumber)
			return
		case 'x', 'X':
			l.scanRadixNumber(begin, hasLeadingNewline, 16, diag.NewNoDigitsInHexNumber, diag.NewUnexpectedCharactersInHexNumber)
			return
		default:
			if isDigit(l.at(1)) {
				l.scanLegacyOctalOrDecimal(begin, hasLeadingNewline)
				return
			}
		}
	}
	l.scanDecimalNumber(begin, hasLeadingNewline)
}

func (l *Lexer) scanRadixNumber(begin int, hasLeadingNewline bool, radix int, noDigits func(diag.Span) *diag.Diagnostic, badChars func(diag.Span) *diag.Diagnostic) {
	l.pos = begin + 2
	digitsStart := l.pos
	lastWasUnderscore := false
	sawUnderscore := false
	for isRadixDigitOrUnderscore(l.curByte(), radix) {
		if l.curByte() == '_' {
			if lastWasUnderscore {
				l.report(diag.NewNumberLiteralContainsConsecutiveUnderscores(diag.Span{Begin: l.pos, End: l.pos + 1}))
			}
			sawUnderscore = true
			lastWasUnderscore = true
		} else {
			lastWasUnderscore = false
		}
		l.pos++
	}
	if l.pos == digitsStart {
		l.report(noDigits(diag.Span{Begin: begin, End: l.pos}))
	}
	if lastWasUnderscore {
		l.report(diag.NewNumberLiteralContainsTrailingUnderscores(diag.Span{Begin: l.pos - 1, End: l.pos}))
	}
	_ = sawUnderscore
	if l.curByte() == 'n' {
		l.pos++
	}

	if radix == 8 {
		if l.curByte() == '.' {
			dotStart := l.pos
			l.pos++
			for isDigit(l.curByte()) {
				l.pos++
			}
			l.report(diag.NewOctalLiteralMayNotHaveDecimal(diag.Span{Begin: dotStart, End: l.pos}))
		}
		if l.curByte() == 'e' || l.curByte() == 'E' {
			expStart := l.pos
			l.pos++
			if l.curByte() == '+' || l.curByte() == '-' {
				l.pos++
			}
			for isDigit(l.curByte()) {
				l.pos++
			}
			l.report(diag.NewOctalLiteralMayNotHaveExponent(diag.Span{Begin: expStart, End: l.pos}))
		}
	}

	garbageStart := l.pos
	for isASCIIIdentifierContinue(l.curByte()) || l.curByte() == '.' {
		l.pos++
	}
	if l.pos != garbageStart {
		l.report(badChars(diag.Span{Begin: garbageStart, End: l.pos}))
	}
	l.setToken(TokenNumber, begin, l.pos, hasLeadingNewline, nil)
}

func (l *Lexer) scanLegacyOctalOrDecimal(begin int, hasLeadingNewline bool) {
	l.pos = begin + 1
	isOctal := true
	sawUnderscore := false
	for isDigit(l.curByte()) || l.curByte() == '_' {
		if l.curByte() == '_' {
			sawUnderscore = true
		} else if l.curByte() > '7' {
			isOctal = false
		}
		l.pos++
	}

	hasDecimalOrExponent := l.curByte() == '.' || l.curByte() == 'e' || l.curByte() == 'E'
	if hasDecimalOrExponent {
		isOctal = false
		l.scanDecimalTail(begin)
	}

	if isOctal {
		if sawUnderscore {
			l.report(diag.NewLegacyOctalLiteralMayNotContainUnderscores(diag.Span{Begin: begin, End: l.pos}))
		}
		if l.curByte() == 'n' {
			l.report(diag.NewLegacyOctalLiteralMayNotBeBigInt(diag.Span{Begin: begin, End: l.pos + 1}))
			l.pos++
		}
	} else if l.curByte() == 'n' {
		l.pos++
	}

	garbageStart := l.pos
	for isASCIIIdentifierContinue(l.curByte()) {
		l.pos++
	}
	if l.pos != garbageStart {
		l.report(diag.NewUnexpectedCharactersInNumber(diag.Span{Begin: garbageStart, End: l.pos}))
	}
	l.setToken(TokenNumber, begin, l.pos, hasLeadingNewline, nil)
}

func (l *Lexer) scanDecimalNumber(begin int, hasLeadingNewline bool) {
	l.pos = begin
	lastWasUnderscore := false
	for isDigit(l.curByte()) || l.curByte() == '_' {
		lastWasUnderscore = l.curByte() == '_'
		if lastWasUnderscore && l.pos > begin && l.byteAt(l.pos-1) == '_' {
			l.report(diag.NewNumberLiteralContainsConsecutiveUnderscores(diag.Span{Begin: l.pos, End: l.pos + 1}))
		}
		l.pos++
	}
	integerEnd := l.pos
	if lastWasUnderscore {
		l.report(diag.NewNumberLiteralContainsTrailingUnderscores(diag.Span{Begin: l.pos - 1, End: l.pos}))
	}

	isBigInt := false
	hadExponent := false
	if l.curByte() == 'n' {
		isBigInt = true
		l.pos++
	} else {
		tailStart := l.pos
		l.scanDecimalTail(begin)
		hadExponent = l.pos != tailStart && (l.byteAt(tailStart) == 'e' || l.byteAt(tailStart) == 'E')
		if l.curByte() == 'n' {
			isBigInt = true
			if hadExponent {
				l.report(diag.NewBigIntLiteralContainsExponent(diag.Span{Begin: tailStart, End: l.pos}))
			}
			l.pos++
		}
	}

	garbageStart := l.pos
	for isASCIIIdentifierContinue(l.curByte()) {
		l.pos++
	}
	if l.pos != garbageStart {
		l.report(diag.NewUnexpectedCharactersInNumber(diag.Span{Begin: garbageStart, End: l.pos}))
	}

	if isBigInt {
		numberEndBeforeN := l.pos - 1
		l.checkBigIntGarbage(begin, numberEndBeforeN)
	} else {
		l.checkIntegerPrecisionLoss(begin, integerEnd, garbageStart)
	}

	l.setToken(TokenNumber, begin, l.pos, hasLeadingNewline, nil)
}

// scanDecimalTail consumes an optional `.digits` and/or exponent suffix
// starting at l.pos. begin is only used for diagnostic spans.
func (l *Lexer) scanDecimalTail(begin int) {
	if l.curByte() == '.' {
		l.pos++
		for isDigit(l.curByte()) || l.curByte() == '_' {
			l.pos++
		}
	}
	if l.curByte() == 'e' || l.curByte() == 'E' {
		expStart := l.pos
		l.pos++
		if l.curByte() == '+' || l.curByte() == '-' {
			l.pos++
		}
		digitsStart := l.pos
		for isDigit(l.curByte()) || l.curByte() == '_' {
			l.pos++
		}
		if l.pos == digitsStart {
			l.pos = expStart // no exponent digits: 'e' is not part of the number
		}
	}
}

func (l *Lexer) checkBigIntGarbage(begin, integerEnd int) {
	spelling := string(l.buf.Slice(begin, integerEnd))
	if strings.Contains(spelling, ".") {
		l.report(diag.NewBigIntLiteralContainsDecimalPoint(diag.Span{Begin: begin, End: integerEnd + 1}))
	}
}

// checkIntegerPrecisionLoss warns when a plain (non-BigInt) integer
// literal cannot be represented exactly as an IEEE-754 double, grounded
// on check_integer_precision_loss in the original implementation's
// lex.rs. A 15-digit-or-fewer literal is always exact (53 bits is
// about 15.955 decimal digits); a 310-digit-or-longer one always rounds
// to +Inf, since the largest finite double is 309 digits long.
func (l *Lexer) checkIntegerPrecisionLoss(begin, integerEnd, numberEnd int) {
	if numberEnd != integerEnd {
		return // had a decimal point or exponent: not an integer literal
	}
	const guaranteedAccLength = 15
	const maxAccLength = 309

	literal := string(l.buf.Slice(begin, integerEnd))
	if len(literal) <= guaranteedAccLength {
		return
	}
	cleaned := strings.ReplaceAll(literal, "_", "")
	if len(cleaned) <= guaranteedAccLength {
		return
	}
	if len(cleaned) > maxAccLength {
		l.report(diag.NewIntegerLiteralWillLosePrecision(
			diag.Span{Begin: begin, End: integerEnd}, literal, "inf"))
		return
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		// Only a range error is possible here: the value rounds to +Inf.
		l.report(diag.NewIntegerLiteralWillLosePrecision(
			diag.Span{Begin: begin, End: integerEnd}, literal, "inf"))
		return
	}
	rounded := strconv.FormatFloat(v, 'f', 0, 64)
	if cleaned != rounded {
		l.report(diag.NewIntegerLiteralWillLosePrecision(
			diag.Span{Begin: begin, End: integerEnd}, literal, string(l.identArena.AllocString(rounded))))
	}
}

func isRadixDigitOrUnderscore(c byte, radix int) bool {
	if c == '_' {
		return true
	}
	switch radix {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return isHexDigit(c)
	default:
		return isDigit(c)
	}
}
