package lexer

import "github.com/conduit-lang/tsjslex/internal/diag"

// scanPunctuator scans one operator/punctuator token, preferring the
// longest match at each step (e.g. `>>>=` over `>>>` over `>>` over
// `>`). Grounded on the punctuator arms of try_parse_current_token in
// the original implementation's lex.rs. The `/` and regexp-sensitive
// `<`/`>` re-lexing cases are intentionally left as their default
// operator spelling here; TestForRegexp/ReparseAsRegexp and
// SkipLessLessAsLess/SkipAsGreater handle the context-sensitive cases.
func (l *Lexer) scanPunctuator(begin int, hasLeadingNewline bool) {
	l.pos = begin
	c0 := l.curByte()

	switch c0 {
	case '(':
		l.pos++
		l.setToken(TokenLeftParen, begin, l.pos, hasLeadingNewline, nil)
	case ')':
		l.pos++
		l.setToken(TokenRightParen, begin, l.pos, hasLeadingNewline, nil)
	case '{':
		l.pos++
		l.setToken(TokenLeftCurly, begin, l.pos, hasLeadingNewline, nil)
	case '}':
		l.pos++
		l.setToken(TokenRightCurly, begin, l.pos, hasLeadingNewline, nil)
	case '[':
		l.pos++
		l.setToken(TokenLeftSquare, begin, l.pos, hasLeadingNewline, nil)
	case ']':
		l.pos++
		l.setToken(TokenRightSquare, begin, l.pos, hasLeadingNewline, nil)
	case ';':
		l.pos++
		l.setToken(TokenSemicolon, begin, l.pos, hasLeadingNewline, nil)
	case ',':
		l.pos++
		l.setToken(TokenComma, begin, l.pos, hasLeadingNewline, nil)
	case '~':
		l.pos++
		l.setToken(TokenTilde, begin, l.pos, hasLeadingNewline, nil)
	case ':':
		l.pos++
		l.setToken(TokenColon, begin, l.pos, hasLeadingNewline, nil)

	case '.':
		if l.at(1) == '.' && l.at(2) == '.' {
			l.pos += 3
			l.setToken(TokenDotDotDot, begin, l.pos, hasLeadingNewline, nil)
		} else {
			l.pos++
			l.setToken(TokenDot, begin, l.pos, hasLeadingNewline, nil)
		}

	case '?':
		switch {
		case l.at(1) == '.' && !isDigit(l.at(2)):
			l.pos += 2
			l.setToken(TokenQuestionDot, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '?' && l.at(2) == '=':
			l.pos += 3
			l.setToken(TokenQuestionQuestionEqual, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '?':
			l.pos += 2
			l.setToken(TokenQuestionQuestion, begin, l.pos, hasLeadingNewline, nil)
		default:
			l.pos++
			l.setToken(TokenQuestion, begin, l.pos, hasLeadingNewline, nil)
		}

	case '=':
		switch {
		case l.at(1) == '=' && l.at(2) == '=':
			l.pos += 3
			l.setToken(TokenEqualEqualEqual, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '=':
			l.pos += 2
			l.setToken(TokenEqualEqual, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '>':
			l.pos += 2
			l.setToken(TokenEqualGreater, begin, l.pos, hasLeadingNewline, nil)
		default:
			l.pos++
			l.setToken(TokenEqual, begin, l.pos, hasLeadingNewline, nil)
		}

	case '!':
		switch {
		case l.at(1) == '=' && l.at(2) == '=':
			l.pos += 3
			l.setToken(TokenBangEqualEqual, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '=':
			l.pos += 2
			l.setToken(TokenBangEqual, begin, l.pos, hasLeadingNewline, nil)
		default:
			l.pos++
			l.setToken(TokenBang, begin, l.pos, hasLeadingNewline, nil)
		}

	case '+':
		switch {
		case l.at(1) == '+':
			l.pos += 2
			l.setToken(TokenPlusPlus, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '=':
			l.pos += 2
			l.setToken(TokenPlusEqual, begin, l.pos, hasLeadingNewline, nil)
		default:
			l.pos++
			l.setToken(TokenPlus, begin, l.pos, hasLeadingNewline, nil)
		}

	case '-':
		switch {
		case l.at(1) == '-':
			l.pos += 2
			l.setToken(TokenMinusMinus, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '=':
			l.pos += 2
			l.setToken(TokenMinusEqual, begin, l.pos, hasLeadingNewline, nil)
		default:
			l.pos++
			l.setToken(TokenMinus, begin, l.pos, hasLeadingNewline, nil)
		}

	case '*':
		switch {
		case l.at(1) == '*' && l.at(2) == '=':
			l.pos += 3
			l.setToken(TokenStarStarEqual, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '*':
			l.pos += 2
			l.setToken(TokenStarStar, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '=':
			l.pos += 2
			l.setToken(TokenStarEqual, begin, l.pos, hasLeadingNewline, nil)
		default:
			l.pos++
			l.setToken(TokenStar, begin, l.pos, hasLeadingNewline, nil)
		}

	case '/':
		// The lexer has no idea yet whether `/` begins a regexp or is
		// the division operator; it always reports the operator and
		// leaves ReparseAsRegexp to the driver, which alone knows
		// whether a regexp is grammatically legal here.
		if l.at(1) == '=' {
			l.pos += 2
			l.setToken(TokenSlashEqual, begin, l.pos, hasLeadingNewline, nil)
		} else {
			l.pos++
			l.setToken(TokenSlash, begin, l.pos, hasLeadingNewline, nil)
		}

	case '%':
		if l.at(1) == '=' {
			l.pos += 2
			l.setToken(TokenPercentEqual, begin, l.pos, hasLeadingNewline, nil)
		} else {
			l.pos++
			l.setToken(TokenPercent, begin, l.pos, hasLeadingNewline, nil)
		}

	case '^':
		if l.at(1) == '=' {
			l.pos += 2
			l.setToken(TokenCircumflexEqual, begin, l.pos, hasLeadingNewline, nil)
		} else {
			l.pos++
			l.setToken(TokenCircumflex, begin, l.pos, hasLeadingNewline, nil)
		}

	case '&':
		switch {
		case l.at(1) == '&' && l.at(2) == '=':
			l.pos += 3
			l.setToken(TokenAmpersandAmpersandEqual, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '&':
			l.pos += 2
			l.setToken(TokenAmpersandAmpersand, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '=':
			l.pos += 2
			l.setToken(TokenAmpersandEqual, begin, l.pos, hasLeadingNewline, nil)
		default:
			l.pos++
			l.setToken(TokenAmpersand, begin, l.pos, hasLeadingNewline, nil)
		}

	case '|':
		switch {
		case l.at(1) == '|' && l.at(2) == '=':
			l.pos += 3
			l.setToken(TokenPipePipeEqual, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '|':
			l.pos += 2
			l.setToken(TokenPipePipe, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '=':
			l.pos += 2
			l.setToken(TokenPipeEqual, begin, l.pos, hasLeadingNewline, nil)
		default:
			l.pos++
			l.setToken(TokenPipe, begin, l.pos, hasLeadingNewline, nil)
		}

	case '<':
		switch {
		case l.at(1) == '<' && l.at(2) == '=':
			l.pos += 3
			l.setToken(TokenLessLessEqual, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '<':
			l.pos += 2
			l.setToken(TokenLessLess, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '=':
			l.pos += 2
			l.setToken(TokenLessEqual, begin, l.pos, hasLeadingNewline, nil)
		default:
			l.pos++
			l.setToken(TokenLess, begin, l.pos, hasLeadingNewline, nil)
		}

	case '>':
		switch {
		case l.at(1) == '>' && l.at(2) == '>' && l.at(3) == '=':
			l.pos += 4
			l.setToken(TokenGreaterGreaterGreaterEqual, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '>' && l.at(2) == '>':
			l.pos += 3
			l.setToken(TokenGreaterGreaterGreater, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '>' && l.at(2) == '=':
			l.pos += 3
			l.setToken(TokenGreaterGreaterEqual, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '>':
			l.pos += 2
			l.setToken(TokenGreaterGreater, begin, l.pos, hasLeadingNewline, nil)
		case l.at(1) == '=':
			l.pos += 2
			l.setToken(TokenGreaterEqual, begin, l.pos, hasLeadingNewline, nil)
		default:
			l.pos++
			l.setToken(TokenGreater, begin, l.pos, hasLeadingNewline, nil)
		}

	default:
		// From parseCurrentToken no printable ASCII byte reaches here —
		// every one has its own case above or in parseCurrentToken, and
		// control bytes (including DEL) are intercepted before
		// scanPunctuator is called. SkipInJSX sends any other byte here
		// (a digit or '@' in a tag, for example). Treat whatever shows
		// up the same way: report and skip it, then retry dispatch, so
		// a stray byte can never manufacture a fake end-of-file.
		l.pos++
		l.report(diag.NewUnexpectedControlCharacter(diag.Span{Begin: begin, End: l.pos}, rune(c0)))
		l.parseCurrentTokenAfterSkippingOne(hasLeadingNewline)
	}
}
