package diag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blanketsucks/language/internal/diag"
	"github.com/blanketsucks/language/internal/token"
)

func TestRecorderTracksFatalOnError(t *testing.T) {
	rec := &diag.Recorder{}
	require.False(t, rec.Fatal)

	rec.Note(token.Span{}, "informational")
	require.False(t, rec.Fatal)

	rec.Error(token.Span{Filename: "a.qt"}, "boom")
	require.True(t, rec.Fatal)

	require.Len(t, rec.Errors(), 1)
	require.Len(t, rec.Notes(), 1)
	require.Equal(t, "boom", rec.Errors()[0].Message)
}

func TestRecorderErrorfHasNoSpan(t *testing.T) {
	rec := &diag.Recorder{}
	rec.Errorf("catastrophic")

	require.True(t, rec.Fatal)
	require.Equal(t, token.Span{}, rec.Errors()[0].Span)
}

func TestSeverityString(t *testing.T) {
	require.Equal(t, "error", diag.SeverityError.String())
	require.Equal(t, "note", diag.SeverityNote.String())
}
