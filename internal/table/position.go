package table

// The position mapper translates between (line, character) text positions
// and (row, column) grid coordinates. Column inference counts delimiter
// characters, which is heuristic: a literal pipe inside a cell shifts the
// intervals. The interval test is deliberately ch > start && ch <= end;
// a cursor sitting exactly on a delimiter belongs to the cell left of it.

// RowIndexAtLine maps a buffer line to a data-row index of the table, or
// -1 when the line is the header, the separator, or outside the table.
func RowIndexAtLine(t *Table, line int) int {
	r := line - (t.StartLine + 2)
	if r < 0 || r >= len(t.Rows) {
		return -1
	}
	return r
}

// ColumnIndexAtChar maps a character offset within a table line to the
// column index whose cell contains it. Offsets at or before the first
// delimiter map to column 0; offsets past the last delimiter map to the
// last column. Returns -1 when the line has fewer than two delimiters.
func ColumnIndexAtChar(lineText string, ch int) int {
	pipes := pipeOffsets(lineText)
	if len(pipes) < 2 {
		return -1
	}
	if ch <= pipes[0] {
		return 0
	}
	for i := 0; i < len(pipes)-1; i++ {
		if ch > pipes[i] && ch <= pipes[i+1] {
			return i
		}
	}
	return len(pipes) - 2
}

// CharAtColumn returns a character offset inside the given column's cell,
// midway between its bounding delimiters, so a cursor placed there lands
// visually inside the cell. The column clamps to the line's last column.
func CharAtColumn(lineText string, col int) int {
	pipes := pipeOffsets(lineText)
	if len(pipes) < 2 {
		return 0
	}
	if col < 0 {
		col = 0
	}
	if col > len(pipes)-2 {
		col = len(pipes) - 2
	}
	mid := (pipes[col] + pipes[col+1]) / 2
	if mid <= pipes[col] {
		mid = pipes[col] + 1
	}
	return mid
}

func pipeOffsets(lineText string) []int {
	var pipes []int
	for i := 0; i < len(lineText); i++ {
		if lineText[i] == '|' {
			pipes = append(pipes, i)
		}
	}
	return pipes
}
