package padded

// EncodeUTF8 encodes codePoint into out, which must have room for at
// least 4 bytes, and returns the number of bytes written. Grounded on
// encode_utf_8 in the original implementation's utf_8.rs.
func EncodeUTF8(codePoint rune, out []byte) int {
	cp := uint32(codePoint)
	const continuation = 0b1000_0000
	switch {
	case cp >= 0x10000:
		out[0] = byte(0b1111_0000 | (cp >> 18))
		out[1] = byte(continuation | ((cp >> 12) & 0b0011_1111))
		out[2] = byte(continuation | ((cp >> 6) & 0b0011_1111))
		out[3] = byte(continuation | (cp & 0b0011_1111))
		return 4
	case cp >= 0x0800:
		out[0] = byte(0b1110_0000 | (cp >> 12))
		out[1] = byte(continuation | ((cp >> 6) & 0b0011_1111))
		out[2] = byte(continuation | (cp & 0b0011_1111))
		return 3
	case cp >= 0x80:
		out[0] = byte(0b1100_0000 | (cp >> 6))
		out[1] = byte(continuation | (cp & 0b0011_1111))
		return 2
	default:
		out[0] = byte(cp)
		return 1
	}
}

// AppendUTF8 is a convenience wrapper around EncodeUTF8 for callers that
// want to grow a slice rather than manage a fixed buffer.
func AppendUTF8(dst []byte, codePoint rune) []byte {
	var tmp [4]byte
	n := EncodeUTF8(codePoint, tmp[:])
	return append(dst, tmp[:n]...)
}

func isContinuationByte(b byte) bool {
	return b&0b1100_0000 == 0b1000_0000
}

// DecodeUTF8 decodes one code point starting at offset in b. It returns
// the number of bytes to advance to resynchronize and whether the
// sequence was well-formed. On a malformed sequence byteCount is still
// positive (at least 1) so callers always make forward progress; at or
// past the end of the input it is 0 (with ok false). Grounded on
// decode_utf_8 in the original implementation's utf_8.rs.
func DecodeUTF8(b *Buffer, offset int) (byteCount int, ok bool) {
	n, _, ok := decodeUTF8CodePoint(b, offset)
	return n, ok
}

// DecodeUTF8CodePoint is like DecodeUTF8 but also returns the decoded
// code point when ok is true.
func DecodeUTF8CodePoint(b *Buffer, offset int) (byteCount int, codePoint rune, ok bool) {
	return decodeUTF8CodePoint(b, offset)
}

func decodeUTF8CodePoint(b *Buffer, offset int) (byteCount int, codePoint rune, ok bool) {
	if offset >= b.NullTerminator() {
		return 0, 0, false
	}
	c0 := b.Byte(offset)
	c1 := b.Byte(offset + 1)
	c2 := b.Byte(offset + 2)
	c3 := b.Byte(offset + 3)

	switch {
	case c0 <= 0x7f:
		return 1, rune(c0), true

	case c0&0b1110_0000 == 0b1100_0000:
		byte0OK := c0 >= 0xc2
		byte1OK := isContinuationByte(c1)
		if byte0OK && byte1OK {
			cp := (rune(c0&0b0001_1111) << 6) | rune(c1&0b0011_1111)
			return 2, cp, true
		}
		return 1, 0, false

	case c0&0b1111_0000 == 0b1110_0000:
		var byte1OK bool
		switch c0 {
		case 0xe0:
			byte1OK = c1 >= 0xa0 && c1 <= 0xbf
		case 0xed:
			byte1OK = c1 >= 0x80 && c1 <= 0x9f
		default:
			byte1OK = isContinuationByte(c1)
		}
		byte2OK := isContinuationByte(c2)
		if byte1OK && byte2OK {
			cp := (rune(c0&0b0000_1111) << 12) | (rune(c1&0b0011_1111) << 6) | rune(c2&0b0011_1111)
			return 3, cp, true
		}
		if byte1OK {
			return 2, 0, false
		}
		return 1, 0, false

	case c0&0b1111_1000 == 0b1111_0000:
		byte0OK := c0 <= 0xf4
		var byte1OK bool
		switch c0 {
		case 0xf0:
			byte1OK = c1 >= 0x90 && c1 <= 0xbf
		case 0xf4:
			byte1OK = c1 >= 0x80 && c1 <= 0x8f
		default:
			byte1OK = isContinuationByte(c1)
		}
		byte2OK := isContinuationByte(c2)
		byte3OK := isContinuationByte(c3)
		if byte0OK && byte1OK && byte2OK && byte3OK {
			cp := (rune(c0&0b0000_0111) << 18) | (rune(c1&0b0011_1111) << 12) | (rune(c2&0b0011_1111) << 6) | rune(c3&0b0011_1111)
			return 4, cp, true
		}
		switch {
		case byte0OK && byte1OK && byte2OK:
			return 3, 0, false
		case byte0OK && byte1OK:
			return 2, 0, false
		default:
			return 1, 0, false
		}

	default:
		// Continuation byte, or a 5-byte-or-longer sequence: neither is
		// well-formed UTF-8.
		return 1, 0, false
	}
}
