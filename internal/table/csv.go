package table

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// ExportCSV renders the table's grid as CSV text: the header row first,
// then one record per data row. Inline styling markup is stripped from
// every field before escaping, so the CSV carries plain content.
func ExportCSV(t *Table) (string, error) {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, stripRow(t.Headers))
	for _, r := range t.Rows {
		records = append(records, stripRow(r))
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.WriteAll(records); err != nil {
		return "", fmt.Errorf("failed to write csv: %w", err)
	}
	return sb.String(), nil
}

func stripRow(r Row) []string {
	fields := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		fields[i] = StripMarkup(c.Content)
	}
	return fields
}

// ImportCSV parses CSV text into a fresh table: the first record becomes
// the headers, the rest become data rows padded or truncated to the header
// length. Quoted fields may contain commas and newlines; a doubled quote
// inside a quoted field is a literal quote.
func ImportCSV(data string) (*Table, error) {
	r := csv.NewReader(strings.NewReader(data))
	r.FieldsPerRecord = -1 // ragged input is padded below, not rejected
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("csv input has no header row")
	}

	cols := len(records[0])
	t := &Table{
		Headers:   fieldsToRow(records[0], cols),
		Separator: make([]string, cols),
		Rows:      make([]Row, 0, len(records)-1),
	}
	for i := range t.Separator {
		t.Separator[i] = AlignLeft.Token()
	}
	for _, rec := range records[1:] {
		t.Rows = append(t.Rows, fieldsToRow(rec, cols))
	}
	t.EndLine = t.LineCount() - 1
	return t, nil
}

// fieldsToRow builds a row of exactly cols cells from a CSV record,
// padding with empty cells or dropping extras as needed.
func fieldsToRow(fields []string, cols int) Row {
	row := emptyRow(cols)
	for i := 0; i < cols && i < len(fields); i++ {
		row.Cells[i] = Cell{Content: strings.TrimSpace(fields[i])}
	}
	return row
}
