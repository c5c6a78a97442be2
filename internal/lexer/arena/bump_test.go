package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocReturnsZeroedCapacityCappedSlice(t *testing.T) {
	b := New("test")
	s := b.Alloc(4)
	require.Len(t, s, 4)
	assert.Equal(t, []byte{0, 0, 0, 0}, s)
	assert.Equal(t, 4, cap(s))
}

func TestAllocStringCopiesIntoArena(t *testing.T) {
	b := New("test")
	s := b.AllocString("hello")
	assert.Equal(t, "hello", string(s))
}

func TestEarlierAllocationsSurviveLaterOnes(t *testing.T) {
	b := New("test")
	first := b.AllocString("abc")
	second := b.AllocString("def")
	assert.Equal(t, "abc", string(first))
	assert.Equal(t, "def", string(second))
}

func TestGrowerAccumulatesAcrossAppends(t *testing.T) {
	b := New("test")
	g := b.NewGrower()
	g.Append('a', 'b')
	g.AppendString("cd")
	g.Append('e')
	assert.Equal(t, "abcde", string(g.Finish()))
}

func TestRewindDiscardsAllocationsSincCheckpoint(t *testing.T) {
	b := New("test")
	b.AllocString("kept")
	cp := b.PrepareRewind()
	b.AllocString("discarded")
	b.Rewind(cp)
	after := b.AllocString("new")
	assert.Equal(t, "new", string(after))
}

func TestResetClearsEverything(t *testing.T) {
	b := New("test")
	b.AllocString("abc")
	b.Reset()
	s := b.AllocString("x")
	assert.Equal(t, "x", string(s))
}

func TestNameIsPreserved(t *testing.T) {
	b := New("lexer-identifiers")
	assert.Equal(t, "lexer-identifiers", b.Name())
}
