package unicodetbl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIDStartASCII(t *testing.T) {
	assert.True(t, IsIDStart('a'))
	assert.True(t, IsIDStart('Z'))
	assert.True(t, IsIDStart('_'))
	assert.True(t, IsIDStart('$'))
	assert.False(t, IsIDStart('0'))
	assert.False(t, IsIDStart(' '))
	assert.False(t, IsIDStart('-'))
}

func TestIsIDContinueIncludesDigitsAndIDStart(t *testing.T) {
	assert.True(t, IsIDContinue('0'))
	assert.True(t, IsIDContinue('9'))
	assert.True(t, IsIDContinue('a'))
	assert.True(t, IsIDContinue('_'))
	assert.False(t, IsIDContinue(' '))
}

func TestIsIDContinueZeroWidthJoiners(t *testing.T) {
	assert.True(t, IsIDContinue(0x200C))
	assert.True(t, IsIDContinue(0x200D))
}

func TestNonASCIIScripts(t *testing.T) {
	assert.True(t, IsIDStart(0x00E9))  // é
	assert.True(t, IsIDStart(0x4E2D))  // 中
	assert.True(t, IsIDStart(0x3042))  // あ
	assert.True(t, IsIDStart(0xAC00))  // 가
	assert.False(t, IsIDStart(0x0020)) // space
}

func TestAstralPlaneIdentifierCharacters(t *testing.T) {
	assert.True(t, IsIDStart(0x20000))
	assert.True(t, IsIDContinue(0xE0100))
}

func TestOutOfRangeCodePointsAreRejected(t *testing.T) {
	assert.False(t, IsIDStart(-1))
	assert.False(t, IsIDStart(MaxCodePoint+1))
	assert.False(t, IsIDContinue(MaxCodePoint+1))
}

func TestChunkDeduplicationStaysWithinOneByte(t *testing.T) {
	tbl := Build(idStartRanges)
	assert.LessOrEqual(t, len(tbl.chunks)/bytesPerChunk, 256)
}
