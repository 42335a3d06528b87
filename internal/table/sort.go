package table

import (
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator wraps the locale-aware string comparison used for sorting.
type collator struct {
	c *collate.Collator
}

func newCollator() *collator {
	return &collator{c: collate.New(language.English)}
}

// Sort orders the data rows by one column. The column is resolved in this
// order: the explicit argument when non-negative; the cursor column when it
// differs from the previously sorted column; the previously sorted column
// when still in range; the cursor column; column 0. Sorting the same column
// twice flips direction, a different column resets to ascending. The sort
// is stable, so re-sorting already-sorted data never reorders ties.
//
// The resolved column is returned so the caller can put the cursor back
// into it after the rows (and so the cursor's line) have moved.
func (e *Engine) Sort(t *Table, explicit, cursorCol int) (int, error) {
	n := t.ColumnCount()
	if n == 0 {
		return -1, fmt.Errorf("%w: table has no columns", ErrStructural)
	}

	col := e.resolveSortColumn(n, explicit, cursorCol)
	if col == e.LastColumn {
		e.Ascending = !e.Ascending
	} else {
		e.Ascending = true
	}

	dir := 1
	if !e.Ascending {
		dir = -1
	}
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return dir*e.compare(cellAt(t.Rows[i], col), cellAt(t.Rows[j], col)) < 0
	})

	e.LastColumn = col
	return col, nil
}

func (e *Engine) resolveSortColumn(n, explicit, cursorCol int) int {
	valid := func(c int) bool { return c >= 0 && c < n }
	switch {
	case valid(explicit):
		return explicit
	case valid(cursorCol) && cursorCol != e.LastColumn:
		return cursorCol
	case valid(e.LastColumn):
		return e.LastColumn
	case valid(cursorCol):
		return cursorCol
	default:
		return 0
	}
}

// compare orders two raw cell values: styling markup is stripped first,
// then both values are compared numerically when both parse as numbers,
// otherwise as locale-aware strings.
func (e *Engine) compare(a, b string) int {
	sa, sb := StripMarkup(a), StripMarkup(b)
	na, errA := strconv.ParseFloat(sa, 64)
	nb, errB := strconv.ParseFloat(sb, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return e.collator.c.CompareString(sa, sb)
}

func cellAt(r Row, col int) string {
	if col >= len(r.Cells) {
		return ""
	}
	return r.Cells[col].Content
}
