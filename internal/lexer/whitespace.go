package lexer

// skipWhitespace advances past runs of horizontal whitespace, line
// terminators, and the handful of non-ASCII Unicode space characters
// JavaScript treats as whitespace, setting
// consumedNewlineSinceLastToken when it crosses a line terminator.
// Grounded on skip_whitespace in the original implementation's lex.rs,
// including its byte-level dispatch on non-ASCII whitespace rather than
// a full UTF-8 decode.
func (l *Lexer) skipWhitespace() {
	for {
		c0 := l.curByte()
		switch {
		case c0 == ' ' || c0 == '\t' || c0 == 0x0c || c0 == 0x0b:
			l.pos++
			continue

		case c0 == '\n' || c0 == '\r':
			l.consumedNewlineSinceLastToken = true
			l.pos++
			continue

		case c0 == '/' && l.at(1) == '/':
			l.skipLineComment()
			continue

		case c0 == '/' && l.at(1) == '*':
			l.skipBlockComment()
			continue

		case c0 >= 0xc2:
			if n := l.skipNonASCIIWhitespace(); n > 0 {
				l.pos += n
				continue
			}
			return

		default:
			return
		}
	}
}

// skipNonASCIIWhitespace recognizes one non-ASCII whitespace or line
// terminator code point at the cursor and returns its byte length, or 0
// if the cursor is not positioned at one. Table grounded on the
// c0/c1/c2 dispatch in the original implementation's skip_whitespace.
func (l *Lexer) skipNonASCIIWhitespace() int {
	c0, c1, c2 := l.curByte(), l.at(1), l.at(2)
	switch c0 {
	case 0xc2: // U+00A0 No-Break Space
		if c1 == 0xa0 {
			return 2
		}
	case 0xe1: // U+1680 Ogham Space Mark
		if c1 == 0x9a && c2 == 0x80 {
			return 3
		}
	case 0xe2:
		if c1 == 0x80 {
			switch c2 {
			case 0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89, 0x8a, 0xaf:
				return 3
			case 0xa8, 0xa9: // U+2028 U+2029 line/paragraph separator
				l.consumedNewlineSinceLastToken = true
				return 3
			}
		} else if c1 == 0x81 && c2 == 0x9f { // U+205F
			return 3
		}
	case 0xe3: // U+3000 Ideographic Space
		if c1 == 0x80 && c2 == 0x80 {
			return 3
		}
	case 0xef: // U+FEFF BOM/ZWNBSP
		if c1 == 0xbb && c2 == 0xbf {
			return 3
		}
	}
	return 0
}
