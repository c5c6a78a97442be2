package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceSinkOrderAndHasErrors(t *testing.T) {
	sink := NewSliceSink()
	sink.Report(NewUnclosedStringLiteral(Span{Begin: 0, End: 5}))
	sink.Report(NewIntegerLiteralWillLosePrecision(Span{Begin: 6, End: 20}, "99999999999999999999", "100000000000000000000"))

	require.Len(t, sink.Diagnostics, 2)
	assert.Equal(t, UnclosedStringLiteral, sink.Diagnostics[0].Code)
	assert.True(t, sink.HasErrors())
}

func TestBufferingReporterMergePreservesOrder(t *testing.T) {
	buf := NewBufferingReporter()
	buf.Report(NewInvalidHexEscapeSequence(Span{Begin: 1, End: 2}))
	buf.Report(NewExpectedHexDigitsInUnicodeEscape(Span{Begin: 3, End: 4}))
	assert.True(t, buf.HasDiagnostics())

	dest := NewSliceSink()
	buf.MergeInto(dest)
	require.Len(t, dest.Diagnostics, 2)
	assert.Equal(t, InvalidHexEscapeSequence, dest.Diagnostics[0].Code)
	assert.Equal(t, ExpectedHexDigitsInUnicodeEscape, dest.Diagnostics[1].Code)
}

func TestBufferingReporterDiscardDropsEverything(t *testing.T) {
	buf := NewBufferingReporter()
	buf.Report(NewUnclosedTemplate(Span{Begin: 0, End: 1}))
	buf.Discard()
	assert.False(t, buf.HasDiagnostics())

	dest := NewSliceSink()
	buf.MergeInto(dest)
	assert.Empty(t, dest.Diagnostics)
}

func TestDiagnosticToJSONRoundTrips(t *testing.T) {
	d := NewUnexpectedControlCharacter(Span{Begin: 4, End: 5}, '\x01')
	js, err := d.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, js, "LEX002")
}
