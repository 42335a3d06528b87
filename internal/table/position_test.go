package table

import "testing"

func TestRowIndexAtLine(t *testing.T) {
	tbl := mustLocate(t, "intro\n"+sampleTable)
	// Table occupies lines 1-4: header, separator, two data rows.
	tests := []struct {
		line int
		want int
	}{
		{0, -1}, // before the table
		{1, -1}, // header
		{2, -1}, // separator
		{3, 0},
		{4, 1},
		{5, -1}, // past the table
	}
	for _, tt := range tests {
		if got := RowIndexAtLine(tbl, tt.line); got != tt.want {
			t.Errorf("RowIndexAtLine(%d) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestColumnIndexAtChar(t *testing.T) {
	line := "| Name | Age |"
	// Pipes at offsets 0, 7, 13.
	tests := []struct {
		ch   int
		want int
	}{
		{0, 0},  // at the first delimiter
		{3, 0},  // inside Name
		{7, 0},  // exactly on a delimiter belongs to the cell left of it
		{8, 1},  // first char after the delimiter
		{13, 1}, // on the closing delimiter
		{20, 1}, // past the end clamps to the last column
	}
	for _, tt := range tests {
		if got := ColumnIndexAtChar(line, tt.ch); got != tt.want {
			t.Errorf("ColumnIndexAtChar(%d) = %d, want %d", tt.ch, got, tt.want)
		}
	}
}

func TestColumnIndexAtCharNonTableLine(t *testing.T) {
	if got := ColumnIndexAtChar("no pipes here", 3); got != -1 {
		t.Errorf("got %d, want -1", got)
	}
	if got := ColumnIndexAtChar("one | pipe", 3); got != -1 {
		t.Errorf("got %d, want -1", got)
	}
}

func TestCharAtColumn(t *testing.T) {
	line := "| Name | Age |"
	// The midpoint must land strictly inside the cell so the mapping
	// survives a round trip.
	for col := 0; col < 2; col++ {
		ch := CharAtColumn(line, col)
		if got := ColumnIndexAtChar(line, ch); got != col {
			t.Errorf("round trip col %d: CharAtColumn=%d maps back to %d", col, ch, got)
		}
	}

	// Out-of-range columns clamp.
	if ch := CharAtColumn(line, 9); ColumnIndexAtChar(line, ch) != 1 {
		t.Errorf("clamped column landed at %d", ch)
	}
	if CharAtColumn("no pipes", 0) != 0 {
		t.Error("non-table line should map to offset 0")
	}
}

func TestCharAtColumnNarrowCell(t *testing.T) {
	line := "||x|"
	// Pipes at 0, 1, 3. Column 0 is zero-width; the offset must still be
	// past its left delimiter.
	ch := CharAtColumn(line, 0)
	if ch != 1 {
		t.Errorf("CharAtColumn = %d, want 1", ch)
	}
}
