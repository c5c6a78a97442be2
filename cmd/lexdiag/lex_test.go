package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/tsjslex/internal/lexer"
)

func TestLineIndexPositionOf(t *testing.T) {
	idx := newLineIndex([]byte("ab\ncd\nef"))
	assert.Equal(t, position{Line: 1, Column: 1}, idx.positionOf(0))
	assert.Equal(t, position{Line: 1, Column: 3}, idx.positionOf(2))
	assert.Equal(t, position{Line: 2, Column: 1}, idx.positionOf(3))
	assert.Equal(t, position{Line: 3, Column: 2}, idx.positionOf(7))
}

func TestTokenizeFileDivisionVsRegexp(t *testing.T) {
	result := tokenizeFile([]byte("a / b; return /x/.test(a);"))
	require.NotEmpty(t, result.Tokens)

	var found bool
	for _, tok := range result.Tokens {
		if tok.Type == lexer.TokenSlash.String() {
			found = true
		}
		if tok.Type == lexer.TokenRegexp.String() {
			assert.Equal(t, "/x/", tok.Text)
		}
	}
	assert.True(t, found, "a/b should still lex as division")
}

func TestTokenizeFileReportsDiagnostics(t *testing.T) {
	result := tokenizeFile([]byte(`const s = "unterminated`))
	require.NotEmpty(t, result.Diagnostics)
}

func TestTokenCanPrecedeRegexp(t *testing.T) {
	assert.False(t, tokenCanPrecedeRegexp(lexer.TokenIdentifier))
	assert.False(t, tokenCanPrecedeRegexp(lexer.TokenRightParen))
	assert.True(t, tokenCanPrecedeRegexp(lexer.TokenLeftParen))
	assert.True(t, tokenCanPrecedeRegexp(lexer.TokenKeywordReturn))
}
