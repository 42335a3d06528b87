package table

import (
	"errors"
	"fmt"
)

// Errors returned by mutation operations. These are expected conditions:
// callers surface them as a notice and leave the table untouched.
var (
	// ErrInvalidIndex means a row or column index is outside the table.
	ErrInvalidIndex = errors.New("index out of range")
	// ErrStructural means the operation would leave the table in an
	// inconsistent or impossible state (for example a table with no
	// columns) and was refused.
	ErrStructural = errors.New("operation refused")
)

// Engine performs structural edits on tables. It carries the cross-command
// memory the editor needs: the last sorted column with its direction, and
// the row/column targeted by the last move so "move again" works without a
// cursor. One engine instance lives for the whole editing session; tables
// themselves are re-parsed per command and never retained here.
type Engine struct {
	// Sort state.
	Ascending  bool
	LastColumn int

	// Targets of the most recent move operations, -1 when none.
	LastRow int
	LastCol int

	collator *collator
}

// NewEngine returns an engine with no sort or move history.
func NewEngine() *Engine {
	return &Engine{
		Ascending:  true,
		LastColumn: -1,
		LastRow:    -1,
		LastCol:    -1,
		collator:   newCollator(),
	}
}

// InsertRow inserts a blank row (one empty cell per header column) at the
// given index. A negative index appends; an index past the end clamps to
// the end.
func (e *Engine) InsertRow(t *Table, at int) error {
	if at < 0 || at > len(t.Rows) {
		at = len(t.Rows)
	}
	row := emptyRow(t.ColumnCount())
	t.Rows = append(t.Rows, Row{})
	copy(t.Rows[at+1:], t.Rows[at:])
	t.Rows[at] = row
	return nil
}

// InsertColumn inserts a new column at the given index: a header cell
// labelled "New Column", a left-aligned separator token, and an empty cell
// in every row. A negative or past-the-end index appends.
func (e *Engine) InsertColumn(t *Table, at int) error {
	if at < 0 || at > t.ColumnCount() {
		at = t.ColumnCount()
	}
	t.Headers.Cells = insertCell(t.Headers.Cells, at, Cell{Content: "New Column"})
	t.Separator = insertString(t.Separator, min(at, len(t.Separator)), AlignLeft.Token())
	for i := range t.Rows {
		pos := min(at, len(t.Rows[i].Cells))
		t.Rows[i].Cells = insertCell(t.Rows[i].Cells, pos, Cell{})
	}
	return nil
}

// DeleteRow removes the row at the given index; a negative index removes
// the last row.
func (e *Engine) DeleteRow(t *Table, at int) error {
	if len(t.Rows) == 0 {
		return fmt.Errorf("%w: no rows to delete", ErrStructural)
	}
	if at < 0 {
		at = len(t.Rows) - 1
	}
	if at >= len(t.Rows) {
		return fmt.Errorf("%w: row %d of %d", ErrInvalidIndex, at, len(t.Rows))
	}
	t.Rows = append(t.Rows[:at], t.Rows[at+1:]...)
	return nil
}

// DeleteColumn removes the column at the given index from the headers, the
// separator, and every row; a negative index removes the last column. A
// table must keep at least one column.
func (e *Engine) DeleteColumn(t *Table, at int) error {
	if t.ColumnCount() <= 1 {
		return fmt.Errorf("%w: a table needs at least one column", ErrStructural)
	}
	if at < 0 {
		at = t.ColumnCount() - 1
	}
	if at >= t.ColumnCount() {
		return fmt.Errorf("%w: column %d of %d", ErrInvalidIndex, at, t.ColumnCount())
	}
	t.Headers.Cells = append(t.Headers.Cells[:at], t.Headers.Cells[at+1:]...)
	if at < len(t.Separator) {
		t.Separator = append(t.Separator[:at], t.Separator[at+1:]...)
	}
	for i := range t.Rows {
		if at < len(t.Rows[i].Cells) {
			t.Rows[i].Cells = append(t.Rows[i].Cells[:at], t.Rows[i].Cells[at+1:]...)
		}
	}
	return nil
}

// MoveRow removes the row at from and reinserts it at to, shifting the
// rows between them. The destination is remembered for repeat-moves.
func (e *Engine) MoveRow(t *Table, from, to int) error {
	if from < 0 || from >= len(t.Rows) || to < 0 || to >= len(t.Rows) {
		return fmt.Errorf("%w: move row %d to %d in %d rows", ErrInvalidIndex, from, to, len(t.Rows))
	}
	row := t.Rows[from]
	t.Rows = append(t.Rows[:from], t.Rows[from+1:]...)
	t.Rows = append(t.Rows, Row{})
	copy(t.Rows[to+1:], t.Rows[to:])
	t.Rows[to] = row
	e.LastRow = to
	return nil
}

// MoveColumn moves the header cell, separator token, and per-row cell at
// from to position to, all in lock-step. The move is atomic: if any of the
// three structures cannot perform it (a ragged row too short, a separator
// missing a token), nothing is touched.
func (e *Engine) MoveColumn(t *Table, from, to int) error {
	n := t.ColumnCount()
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move column %d to %d in %d columns", ErrInvalidIndex, from, to, n)
	}
	hi := max(from, to)
	if hi >= len(t.Separator) {
		return fmt.Errorf("%w: separator has only %d tokens", ErrStructural, len(t.Separator))
	}
	for i, row := range t.Rows {
		if hi >= len(row.Cells) {
			return fmt.Errorf("%w: row %d has only %d cells", ErrStructural, i+1, len(row.Cells))
		}
	}

	t.Headers.Cells = moveCell(t.Headers.Cells, from, to)
	t.Separator = moveString(t.Separator, from, to)
	for i := range t.Rows {
		t.Rows[i].Cells = moveCell(t.Rows[i].Cells, from, to)
	}
	e.LastCol = to
	return nil
}

// CycleAlignment advances the column's separator token through
// left, center, right and back to left, returning the new alignment.
// A malformed token resets to left.
func (e *Engine) CycleAlignment(t *Table, col int) (Alignment, error) {
	if col < 0 || col >= len(t.Separator) {
		return AlignLeft, fmt.Errorf("%w: column %d of %d", ErrInvalidIndex, col, len(t.Separator))
	}
	align, ok := ParseAlignment(t.Separator[col])
	next := AlignLeft
	if ok {
		switch align {
		case AlignLeft:
			next = AlignCenter
		case AlignCenter:
			next = AlignRight
		}
	}
	t.Separator[col] = next.Token()
	return next, nil
}

func insertCell(cells []Cell, at int, c Cell) []Cell {
	cells = append(cells, Cell{})
	copy(cells[at+1:], cells[at:])
	cells[at] = c
	return cells
}

func insertString(ss []string, at int, s string) []string {
	ss = append(ss, "")
	copy(ss[at+1:], ss[at:])
	ss[at] = s
	return ss
}

func moveCell(cells []Cell, from, to int) []Cell {
	c := cells[from]
	cells = append(cells[:from], cells[from+1:]...)
	cells = append(cells, Cell{})
	copy(cells[to+1:], cells[to:])
	cells[to] = c
	return cells
}

func moveString(ss []string, from, to int) []string {
	s := ss[from]
	ss = append(ss[:from], ss[from+1:]...)
	ss = append(ss, "")
	copy(ss[to+1:], ss[to:])
	ss[to] = s
	return ss
}
