package table

import (
	"errors"
	"testing"
)

func mustLocate(t *testing.T, text string) *Table {
	t.Helper()
	tbl := Locate(text, 0)
	if tbl == nil {
		t.Fatalf("Locate failed on:\n%s", text)
	}
	return tbl
}

func TestInsertRow(t *testing.T) {
	e := NewEngine()
	tbl := mustLocate(t, sampleTable)

	if err := e.InsertRow(tbl, 1); err != nil {
		t.Fatalf("InsertRow: %v", err)
	}
	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tbl.Rows))
	}
	if tbl.Rows[1].Cells[0].Content != "" || len(tbl.Rows[1].Cells) != 2 {
		t.Errorf("inserted row = %+v, want two empty cells", tbl.Rows[1])
	}
	if tbl.Rows[2].Cells[0].Content != "Jane" {
		t.Errorf("existing row not shifted: %+v", tbl.Rows[2])
	}

	// Out-of-range index clamps to the end.
	if err := e.InsertRow(tbl, 99); err != nil {
		t.Fatalf("InsertRow clamp: %v", err)
	}
	if len(tbl.Rows) != 4 || len(tbl.Rows[3].Cells) != 2 {
		t.Errorf("clamped insert went wrong: %+v", tbl.Rows)
	}
}

func TestInsertColumn(t *testing.T) {
	e := NewEngine()
	tbl := mustLocate(t, sampleTable)

	if err := e.InsertColumn(tbl, 1); err != nil {
		t.Fatalf("InsertColumn: %v", err)
	}
	if tbl.ColumnCount() != 3 {
		t.Fatalf("columns = %d, want 3", tbl.ColumnCount())
	}
	if tbl.Headers.Cells[1].Content != "New Column" {
		t.Errorf("new header = %q", tbl.Headers.Cells[1].Content)
	}
	if len(tbl.Separator) != 3 || tbl.Separator[1] != "---" {
		t.Errorf("separator not extended: %v", tbl.Separator)
	}
	for i, row := range tbl.Rows {
		if len(row.Cells) != 3 || row.Cells[1].Content != "" {
			t.Errorf("row %d not extended: %+v", i, row)
		}
	}
}

func TestDeleteRow(t *testing.T) {
	e := NewEngine()
	tbl := mustLocate(t, sampleTable)

	if err := e.DeleteRow(tbl, -1); err != nil {
		t.Fatalf("DeleteRow default: %v", err)
	}
	if len(tbl.Rows) != 1 || tbl.Rows[0].Cells[0].Content != "John" {
		t.Errorf("delete-last removed wrong row: %+v", tbl.Rows)
	}

	if err := e.DeleteRow(tbl, 5); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("out-of-range delete: got %v, want ErrInvalidIndex", err)
	}

	if err := e.DeleteRow(tbl, 0); err != nil {
		t.Fatalf("DeleteRow: %v", err)
	}
	if err := e.DeleteRow(tbl, 0); !errors.Is(err, ErrStructural) {
		t.Errorf("delete on empty table: got %v, want ErrStructural", err)
	}
}

func TestDeleteColumnKeepsAtLeastOne(t *testing.T) {
	e := NewEngine()
	tbl := mustLocate(t, "| Only |\n| --- |\n| x |")
	before := tbl.String()

	err := e.DeleteColumn(tbl, 0)
	if !errors.Is(err, ErrStructural) {
		t.Fatalf("got %v, want ErrStructural", err)
	}
	if tbl.String() != before {
		t.Error("refused delete still changed the table")
	}
}

func TestDeleteColumn(t *testing.T) {
	e := NewEngine()
	tbl := mustLocate(t, sampleTable)

	if err := e.DeleteColumn(tbl, 0); err != nil {
		t.Fatalf("DeleteColumn: %v", err)
	}
	if tbl.ColumnCount() != 1 || tbl.Headers.Cells[0].Content != "Age" {
		t.Errorf("headers after delete: %+v", tbl.Headers)
	}
	if len(tbl.Separator) != 1 {
		t.Errorf("separator after delete: %v", tbl.Separator)
	}
	for i, row := range tbl.Rows {
		if len(row.Cells) != 1 {
			t.Errorf("row %d after delete: %+v", i, row)
		}
	}
}

func TestMoveRow(t *testing.T) {
	e := NewEngine()
	tbl := mustLocate(t, sampleTable)

	if err := e.MoveRow(tbl, 1, 0); err != nil {
		t.Fatalf("MoveRow: %v", err)
	}
	if tbl.Rows[0].Cells[0].Content != "Jane" || tbl.Rows[1].Cells[0].Content != "John" {
		t.Errorf("rows after move: %+v", tbl.Rows)
	}
	if e.LastRow != 0 {
		t.Errorf("LastRow = %d, want 0", e.LastRow)
	}
}

func TestMoveRowRefusesBadIndex(t *testing.T) {
	e := NewEngine()
	tbl := mustLocate(t, sampleTable)
	before := tbl.String()

	if err := e.MoveRow(tbl, -1, 0); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("MoveRow(-1, 0): got %v, want ErrInvalidIndex", err)
	}
	if err := e.MoveRow(tbl, 0, 2); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("MoveRow(0, 2): got %v, want ErrInvalidIndex", err)
	}
	if tbl.String() != before {
		t.Error("refused move still changed the table")
	}
	if e.LastRow != -1 {
		t.Errorf("LastRow = %d after refused move, want -1", e.LastRow)
	}
}

func TestMoveColumnLockStep(t *testing.T) {
	e := NewEngine()
	tbl := mustLocate(t, "| A | B | C |\n| --- | :---: | ---: |\n| 1 | 2 | 3 |")

	if err := e.MoveColumn(tbl, 0, 2); err != nil {
		t.Fatalf("MoveColumn: %v", err)
	}
	wantHeaders := []string{"B", "C", "A"}
	for i, w := range wantHeaders {
		if tbl.Headers.Cells[i].Content != w {
			t.Errorf("header %d = %q, want %q", i, tbl.Headers.Cells[i].Content, w)
		}
	}
	wantSep := []string{":---:", "---:", "---"}
	for i, w := range wantSep {
		if tbl.Separator[i] != w {
			t.Errorf("separator %d = %q, want %q", i, tbl.Separator[i], w)
		}
	}
	wantCells := []string{"2", "3", "1"}
	for i, w := range wantCells {
		if tbl.Rows[0].Cells[i].Content != w {
			t.Errorf("cell %d = %q, want %q", i, tbl.Rows[0].Cells[i].Content, w)
		}
	}
	if e.LastCol != 2 {
		t.Errorf("LastCol = %d, want 2", e.LastCol)
	}
}

func TestMoveColumnAtomicOnRaggedRow(t *testing.T) {
	e := NewEngine()
	// Second row is missing its last cell, so moving into column 2 cannot
	// be done in lock-step and must not touch anything.
	tbl := mustLocate(t, "| A | B | C |\n| --- | --- | --- |\n| 1 | 2 | 3 |\n| 4 | 5 |")
	before := tbl.String()

	err := e.MoveColumn(tbl, 0, 2)
	if !errors.Is(err, ErrStructural) {
		t.Fatalf("got %v, want ErrStructural", err)
	}
	if tbl.String() != before {
		t.Error("headers, separator, and rows must all be unchanged after a refused move")
	}
}

func TestMoveColumnRefusesBadIndex(t *testing.T) {
	e := NewEngine()
	tbl := mustLocate(t, sampleTable)
	before := tbl.String()

	if err := e.MoveColumn(tbl, 0, 5); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("got %v, want ErrInvalidIndex", err)
	}
	if tbl.String() != before {
		t.Error("refused move still changed the table")
	}
}

func TestCycleAlignment(t *testing.T) {
	e := NewEngine()
	tbl := mustLocate(t, "| A |\n| --- |")

	want := []struct {
		token string
		align Alignment
	}{
		{":---:", AlignCenter},
		{"---:", AlignRight},
		{"---", AlignLeft},
	}
	for _, w := range want {
		got, err := e.CycleAlignment(tbl, 0)
		if err != nil {
			t.Fatalf("CycleAlignment: %v", err)
		}
		if got != w.align {
			t.Errorf("alignment = %v, want %v", got, w.align)
		}
		if tbl.Separator[0] != w.token {
			t.Errorf("separator = %q, want %q", tbl.Separator[0], w.token)
		}
	}

	if _, err := e.CycleAlignment(tbl, 3); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("got %v, want ErrInvalidIndex", err)
	}
}
