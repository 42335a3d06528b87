package app

import (
	"fmt"
	"strconv"

	"github.com/mkarren/mdtable/internal/table"
)

// insertRowBelow inserts an empty row under the cursor's row, or as the
// first data row when the cursor is on the header.
func (a *App) insertRowBelow() {
	applied := a.withTable(func(tbl *table.Table) (bool, error) {
		row, _ := a.gridPosition(tbl)
		if err := a.engine.InsertRow(tbl, row+1); err != nil {
			return false, err
		}
		return true, nil
	})
	if applied {
		a.SetStatus("Row inserted")
	}
}

func (a *App) deleteCurrentRow() {
	var deleted int
	applied := a.withTable(func(tbl *table.Table) (bool, error) {
		row, _ := a.gridPosition(tbl)
		if row < 0 {
			row = -1 // off the data rows, delete the last one
		}
		if err := a.engine.DeleteRow(tbl, row); err != nil {
			return false, err
		}
		if row < 0 {
			row = len(tbl.Rows)
		}
		deleted = row
		return true, nil
	})
	if applied {
		a.SetStatus("Deleted row " + strconv.Itoa(deleted+1))
	}
}

func (a *App) insertColumnAfter() {
	applied := a.withTable(func(tbl *table.Table) (bool, error) {
		_, col := a.gridPosition(tbl)
		at := tbl.ColumnCount()
		if col >= 0 {
			at = col + 1
		}
		if err := a.engine.InsertColumn(tbl, at); err != nil {
			return false, err
		}
		return true, nil
	})
	if applied {
		a.SetStatus("Column inserted")
	}
}

func (a *App) deleteCurrentColumn() {
	applied := a.withTable(func(tbl *table.Table) (bool, error) {
		_, col := a.gridPosition(tbl)
		if col < 0 {
			return false, fmt.Errorf("%w: cursor is not on a column", table.ErrInvalidIndex)
		}
		if err := a.engine.DeleteColumn(tbl, col); err != nil {
			return false, err
		}
		return true, nil
	})
	if applied {
		a.SetStatus("Column deleted")
	}
}

func (a *App) cycleCurrentAlignment() {
	var align table.Alignment
	applied := a.withTable(func(tbl *table.Table) (bool, error) {
		_, col := a.gridPosition(tbl)
		if col < 0 {
			return false, fmt.Errorf("%w: cursor is not on a column", table.ErrInvalidIndex)
		}
		var err error
		align, err = a.engine.CycleAlignment(tbl, col)
		if err != nil {
			return false, err
		}
		return true, nil
	})
	if applied {
		a.SetStatus("Alignment: " + align.String())
	}
}

// openColorPicker records the target cell before entering pick mode so
// the choice lands on the cell that was current when the picker opened.
func (a *App) openColorPicker() {
	tbl := a.locateAtCursor()
	if tbl == nil {
		return
	}
	row, col := a.gridPosition(tbl)
	if row < 0 || col < 0 {
		a.Notice("Colors apply to data cells only")
		return
	}
	a.pickRow, a.pickCol = row, col
	a.picker.Start()
	a.mode = "PICK"
}

func (a *App) removeCellColor() {
	tbl := a.locateAtCursor()
	if tbl == nil {
		return
	}
	row, col := a.gridPosition(tbl)
	if row < 0 || col < 0 {
		a.Notice("Colors apply to data cells only")
		return
	}
	a.pickRow, a.pickCol = row, col
	a.applyColor("")
}

// formatAllTables reformats every table in the document with aligned
// columns. Malformed tables are left alone and counted.
func (a *App) formatAllTables() {
	formatted, skipped := 0, 0
	line := 0
	for line < a.doc.LineCount() {
		tbl := table.Locate(a.doc.GetValue(), line)
		if tbl == nil {
			line++
			continue
		}
		if report := table.Validate(tbl); !report.IsValid {
			skipped++
		} else {
			a.doc.ReplaceRange(table.Format(tbl), tbl.StartLine, tbl.EndLine)
			formatted++
		}
		line = tbl.EndLine + 1
	}
	if skipped > 0 {
		a.Notice(fmt.Sprintf("Formatted %d tables, skipped %d invalid", formatted, skipped))
		return
	}
	a.SetStatus(fmt.Sprintf("Formatted %d tables", formatted))
}
