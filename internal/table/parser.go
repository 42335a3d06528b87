package table

import (
	"fmt"
	"strings"
)

const delimiter = '|'

// IsTableLine reports whether a line is table-shaped: its trimmed form
// starts and ends with the pipe delimiter.
func IsTableLine(line string) bool {
	t := strings.TrimSpace(line)
	return len(t) >= 2 && t[0] == delimiter && t[len(t)-1] == delimiter
}

// IsSeparatorLine reports whether a line is a syntactically acceptable
// separator line: table-shaped and containing only delimiter, whitespace,
// hyphen, and colon characters, with at least one hyphen. Individual token
// shape is checked by Validate, not here.
func IsSeparatorLine(line string) bool {
	if !IsTableLine(line) {
		return false
	}
	hyphen := false
	for _, r := range strings.TrimSpace(line) {
		switch r {
		case '|', '-', ':', ' ', '\t':
			if r == '-' {
				hyphen = true
			}
		default:
			return false
		}
	}
	return hyphen
}

// ParseRow decomposes one table-shaped line into a Row: one leading and one
// trailing delimiter are stripped, the remainder is split on the delimiter,
// and each field is trimmed. The split is naive: an unescaped pipe inside a
// cell splits that cell. That is a limitation of the format itself, kept so
// serialization stays round-trip compatible with existing documents.
func ParseRow(line string) Row {
	t := strings.TrimSpace(line)
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")
	parts := strings.Split(t, "|")
	cells := make([]Cell, len(parts))
	for i, p := range parts {
		cells[i] = Cell{Content: strings.TrimSpace(p)}
	}
	return Row{Cells: cells}
}

// Locate finds the table containing (or starting just after) the given
// 0-based line in text and parses it. It returns nil when there is no
// table there: the line (and the line after it) is not table-shaped, the
// would-be table has no valid separator line, or the header row has no
// columns. Malformed input never produces an error, only nil.
func Locate(text string, line int) *Table {
	lines := strings.Split(text, "\n")
	if line < 0 || line >= len(lines) {
		return nil
	}

	start := line
	if !IsTableLine(lines[start]) {
		// Tolerate the cursor sitting on the line just above a table.
		start++
		if start >= len(lines) || !IsTableLine(lines[start]) {
			return nil
		}
	}

	top := start
	for top > 0 && IsTableLine(lines[top-1]) {
		top--
	}
	bottom := start
	for bottom+1 < len(lines) && IsTableLine(lines[bottom+1]) {
		bottom++
	}

	// The line under the header must be a separator, otherwise this run of
	// table-shaped lines is not a table.
	if top+1 > bottom || !IsSeparatorLine(lines[top+1]) {
		return nil
	}

	headers := ParseRow(lines[top])
	if len(headers.Cells) == 0 {
		return nil
	}

	sepRow := ParseRow(lines[top+1])
	separator := make([]string, len(sepRow.Cells))
	for i, c := range sepRow.Cells {
		separator[i] = c.Content
	}

	rows := make([]Row, 0, bottom-top-1)
	for i := top + 2; i <= bottom; i++ {
		rows = append(rows, ParseRow(lines[i]))
	}

	return &Table{
		Headers:   headers,
		Separator: separator,
		Rows:      rows,
		StartLine: top,
		EndLine:   bottom,
	}
}

// String serializes the table back to its line-oriented text form. The
// output is format-stable: serializing, locating, and serializing again
// yields identical text.
func (t *Table) String() string {
	var sb strings.Builder
	writeRow(&sb, t.Headers)
	sb.WriteByte('\n')
	sb.WriteString("| ")
	sb.WriteString(strings.Join(t.Separator, " | "))
	sb.WriteString(" |")
	for _, r := range t.Rows {
		sb.WriteByte('\n')
		writeRow(&sb, r)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, r Row) {
	sb.WriteString("| ")
	for i, c := range r.Cells {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(c.Content)
	}
	sb.WriteString(" |")
}

// CreateEmpty builds the text of a fresh table with cols generated headers
// and rows blank data rows.
func CreateEmpty(rows, cols int) string {
	if cols < 1 {
		cols = 1
	}
	if rows < 0 {
		rows = 0
	}
	t := &Table{
		Headers:   emptyRow(cols),
		Separator: make([]string, cols),
		Rows:      make([]Row, rows),
	}
	for i := range t.Headers.Cells {
		t.Headers.Cells[i].Content = fmt.Sprintf("Header %d", i+1)
		t.Separator[i] = AlignLeft.Token()
	}
	for i := range t.Rows {
		t.Rows[i] = emptyRow(cols)
	}
	return t.String()
}
