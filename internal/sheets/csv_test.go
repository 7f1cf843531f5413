package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SimpleRows(t *testing.T) {
	rows := Parse("date,venue,title\n2025-10-01,First Ave,Some Band\n")
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"date", "venue", "title"}, rows[0])
	assert.Equal(t, []string{"2025-10-01", "First Ave", "Some Band"}, rows[1])
}

func TestParse_QuotedFieldWithCommaNewlineAndQuote(t *testing.T) {
	// One quoted field embedding a comma, a newline, and a doubled quote.
	rows := Parse("\"a,b\nc\"\"d\"")
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 1)
	assert.Equal(t, "a,b\nc\"d", rows[0][0])
}

func TestParse_DoubledQuoteOnlyField(t *testing.T) {
	// A quoted field whose content is a single escaped quote.
	rows := Parse(`x,""""`)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"x", `"`}, rows[0])
}

func TestParse_CRLFAndLoneCR(t *testing.T) {
	rows := Parse("a,b\r\nc,d\re,f\n")
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b"}, rows[0])
	// A lone CR does not end the row; it simply disappears.
	assert.Equal(t, []string{"c", "de", "f"}, rows[1])
}

func TestParse_NoTrailingNewline(t *testing.T) {
	rows := Parse("a,b\nc,d")
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"c", "d"}, rows[1])
}

func TestParse_TrailingNewlineNoPhantomRow(t *testing.T) {
	rows := Parse("a,b\n")
	require.Len(t, rows, 1)
}

func TestParse_EmptyFields(t *testing.T) {
	rows := Parse("a,,c\n")
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"a", "", "c"}, rows[0])
}

func TestParse_BackslashIsNotAnEscape(t *testing.T) {
	rows := Parse(`a\,b`)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{`a\`, "b"}, rows[0])
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, Parse(""))
}
