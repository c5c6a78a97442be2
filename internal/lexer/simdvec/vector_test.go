package simdvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func laneOf(s string) Lane {
	var l Lane
	copy(l[:], s)
	return l
}

func TestLaneEqAndMask(t *testing.T) {
	a := laneOf("aaaabaaaaaaaaaaa")
	b := Repeated('a')
	mask := LaneEq(a, b).Mask()
	assert.Equal(t, uint16(0xFFFF&^(1<<4)), mask)
}

func TestFirstFalse(t *testing.T) {
	allTrue := LaneEq(Repeated('x'), Repeated('x'))
	assert.Equal(t, Width, allTrue.FirstFalse())

	mixed := LaneEq(laneOf("xxxYxxxxxxxxxxxx"), Repeated('x'))
	assert.Equal(t, 3, mixed.FirstFalse())
}

func TestFindByte(t *testing.T) {
	l := laneOf("abcdefg*ijklmnop")
	assert.Equal(t, 7, l.FindByte('*'))
	assert.Equal(t, Width, l.FindByte('!'))
}

func TestFindAny(t *testing.T) {
	l := laneOf("abc}def*ghijklmn")
	assert.Equal(t, 3, l.FindAny('}', '*'))
	assert.Equal(t, Width, l.FindAny('!', '?'))
}

func TestLaneLtAndGt(t *testing.T) {
	a := Repeated('a')
	b := Repeated('b')
	assert.Equal(t, uint16(0xFFFF), LaneLt(a, b).Mask())
	assert.Equal(t, uint16(0xFFFF), LaneGt(b, a).Mask())
}

func TestCountIdentifierBytesStopsAtFirstNonIdentByte(t *testing.T) {
	assert.Equal(t, Width, CountIdentifierBytes(laneOf("abcXYZ019_$abcdef")))
	assert.Equal(t, 3, CountIdentifierBytes(laneOf("ab3(............")))
	assert.Equal(t, 0, CountIdentifierBytes(laneOf("(ab3............")))
}

func TestCountIdentifierBytesCaseInsensitiveForLetters(t *testing.T) {
	assert.Equal(t, Width, CountIdentifierBytes(laneOf("ABCDEFGHIJKLMNOP")))
}
