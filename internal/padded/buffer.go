// Package padded provides a read-only view over a NUL-padded input buffer.
//
// Every Buffer guarantees at least PaddingSize trailing NUL bytes past its
// logical end, so fixed-width decoders (the UTF-8 codec, the SIMD
// identifier scanner) may read a full lane past end without a bounds
// check.
package padded

import "github.com/conduit-lang/tsjslex/internal/lexer/simdvec"

// PaddingSize is the number of guaranteed trailing NUL bytes past the
// logical end of every Buffer. The lexer never reads beyond
// NullTerminator()+2, so 3 bytes of padding is sufficient for every
// decoder in this module, including the 16-byte SIMD loads, which read
// the padding lazily one partial lane at a time rather than assuming a
// full 16-byte overrun is safe.
const PaddingSize = 3

// Buffer is an immutable view over a byte slice that is guaranteed to
// carry PaddingSize trailing NUL bytes after its logical content.
type Buffer struct {
	data []byte // len(data) == logical length; padding lives past this
}

// NewFromString copies s into a freshly padded buffer.
func NewFromString(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

// NewFromBytes copies b into a freshly padded buffer. The caller retains
// ownership of b.
func NewFromBytes(b []byte) *Buffer {
	cp := make([]byte, len(b))
	copy(cp, b)
	return &Buffer{data: cp}
}

// Len returns the logical length of the buffer, excluding padding.
func (b *Buffer) Len() int { return len(b.data) }

// Byte returns the byte at the given offset. Offsets in
// [Len(), Len()+PaddingSize) return 0. Any other out-of-range offset
// panics, matching the contract that callers never read past
// NullTerminator()+2.
func (b *Buffer) Byte(offset int) byte {
	if offset < len(b.data) {
		return b.data[offset]
	}
	if offset < len(b.data)+PaddingSize {
		return 0
	}
	panic("padded: read past guaranteed padding")
}

// Slice returns the logical content in [begin, end). Both bounds must be
// within [0, Len()].
func (b *Buffer) Slice(begin, end int) []byte {
	return b.data[begin:end]
}

// SliceWithPadding returns the logical content followed by the
// guaranteed padding bytes, starting at offset.
func (b *Buffer) SliceWithPadding(offset int) []byte {
	if offset >= len(b.data) {
		return make([]byte, PaddingSize)
	}
	out := make([]byte, 0, len(b.data)-offset+PaddingSize)
	out = append(out, b.data[offset:]...)
	out = append(out, make([]byte, PaddingSize)...)
	return out
}

// NullTerminator returns the offset one past the logical end of the
// buffer; Byte(NullTerminator()) always reads 0.
func (b *Buffer) NullTerminator() int { return len(b.data) }

// Load16 reads a 16-byte lane starting at offset for the SIMD kernels in
// simdvec. Bytes past the logical end (but within the guaranteed
// padding) read as 0; bytes further still are synthesized as 0 too,
// since a 16-byte lane may run past PaddingSize near end of file and the
// kernels only ever treat those bytes as "not a match".
func (b *Buffer) Load16(offset int) simdvec.Lane {
	var lane simdvec.Lane
	for i := 0; i < simdvec.Width; i++ {
		pos := offset + i
		if pos < len(b.data) {
			lane[i] = b.data[pos]
		} else {
			lane[i] = 0
		}
	}
	return lane
}

// CodepointOffset converts a byte offset into a 0-indexed Unicode
// code-point count from the start of the buffer, decoding malformed
// sequences as a single code unit each. Grounded on
// count_utf_8_characters in the original implementation's utf_8.rs;
// used by LSP position translation, not by the core lexer.
func (b *Buffer) CodepointOffset(byteOffset int) int {
	count := 0
	for c := 0; c < byteOffset; {
		size, _ := DecodeUTF8(b, c)
		if c+size > byteOffset {
			break
		}
		c += size
		count++
	}
	return count
}

// UTF16Offset converts a byte offset into a UTF-16 code-unit count from
// the start of the buffer, counting surrogate-pair-requiring code points
// (>= U+10000) as 2 units. Grounded on count_lsp_characters_in_utf_8 in
// the original implementation's utf_8.rs.
func (b *Buffer) UTF16Offset(byteOffset int) int {
	count := 0
	for c := 0; c < byteOffset; {
		size, cp, ok := decodeUTF8CodePoint(b, c)
		if c+size > byteOffset {
			break
		}
		c += size
		if ok && cp >= 0x10000 {
			count += 2
		} else {
			count++
		}
	}
	return count
}
