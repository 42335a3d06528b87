package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVEscaping(t *testing.T) {
	tbl := mustLocate(t, "| Name | City |\n| --- | --- |\n| John, Jr. | New York |")
	out, err := ExportCSV(tbl)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Name,City", lines[0])
	assert.Equal(t, `"John, Jr.",New York`, lines[1])
}

func TestExportCSVStripsMarkup(t *testing.T) {
	tbl := mustLocate(t, "| F |\n| --- |\n| x |")
	ApplyCellColor(&tbl.Rows[0].Cells[0], "#ff6b6b")

	out, err := ExportCSV(tbl)
	require.NoError(t, err)
	assert.NotContains(t, out, "span")
	assert.Contains(t, out, "x")
}

func TestImportCSVQuotedFields(t *testing.T) {
	data := "Name,Age,City\n\"John, Jr.\",25,\"New York, NY\"\nJane,30,Boston"
	tbl, err := ImportCSV(data)
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.ColumnCount())
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "John, Jr.", tbl.Rows[0].Cells[0].Content)
	assert.Equal(t, "New York, NY", tbl.Rows[0].Cells[2].Content)
}

func TestImportCSVEmbeddedQuote(t *testing.T) {
	tbl, err := ImportCSV("H\n\"say \"\"hi\"\"\"")
	require.NoError(t, err)
	assert.Equal(t, `say "hi"`, tbl.Rows[0].Cells[0].Content)
}

func TestImportCSVPadsAndTruncates(t *testing.T) {
	tbl, err := ImportCSV("A,B,C\n1\n1,2,3,4")
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 2)
	assert.Len(t, tbl.Rows[0].Cells, 3)
	assert.Equal(t, "", tbl.Rows[0].Cells[2].Content)
	assert.Len(t, tbl.Rows[1].Cells, 3)
	assert.Equal(t, "3", tbl.Rows[1].Cells[2].Content)
}

func TestImportCSVEmpty(t *testing.T) {
	_, err := ImportCSV("")
	assert.Error(t, err)
}

func TestImportCSVProducesParseableTable(t *testing.T) {
	tbl, err := ImportCSV("Name,Age\nJohn,25")
	require.NoError(t, err)

	text := tbl.String()
	again := Locate(text, 0)
	require.NotNil(t, again)
	assert.Equal(t, text, again.String())
}
