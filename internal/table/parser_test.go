package table

import (
	"strings"
	"testing"
)

const sampleTable = "| Name | Age |\n| --- | --- |\n| John | 25 |\n| Jane | 30 |"

func TestLocateParsesTable(t *testing.T) {
	tbl := Locate(sampleTable, 0)
	if tbl == nil {
		t.Fatal("Locate returned nil for a well-formed table")
	}
	if got := tbl.ColumnCount(); got != 2 {
		t.Errorf("ColumnCount = %d, want 2", got)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(tbl.Rows))
	}
	if tbl.Headers.Cells[0].Content != "Name" || tbl.Headers.Cells[1].Content != "Age" {
		t.Errorf("unexpected headers: %+v", tbl.Headers)
	}
	if tbl.Rows[1].Cells[0].Content != "Jane" {
		t.Errorf("row 1 col 0 = %q, want Jane", tbl.Rows[1].Cells[0].Content)
	}
	if tbl.StartLine != 0 || tbl.EndLine != 3 {
		t.Errorf("line range = [%d, %d], want [0, 3]", tbl.StartLine, tbl.EndLine)
	}
}

func TestLocateFromMiddleAndSurroundingText(t *testing.T) {
	text := "Some intro text.\n\n" + sampleTable + "\n\nTrailing text."
	for line := 2; line <= 5; line++ {
		tbl := Locate(text, line)
		if tbl == nil {
			t.Fatalf("Locate(line=%d) = nil, want table", line)
		}
		if tbl.StartLine != 2 || tbl.EndLine != 5 {
			t.Errorf("Locate(line=%d) range = [%d, %d], want [2, 5]", line, tbl.StartLine, tbl.EndLine)
		}
	}
}

func TestLocateLineAboveTable(t *testing.T) {
	text := "Heading\n" + sampleTable
	tbl := Locate(text, 0)
	if tbl == nil {
		t.Fatal("Locate should look one line forward from a non-table line")
	}
	if tbl.StartLine != 1 {
		t.Errorf("StartLine = %d, want 1", tbl.StartLine)
	}
}

func TestLocateRejectsMissingSeparator(t *testing.T) {
	inputs := map[string]string{
		"no separator":        "| Name | Age |\n| John | 25 |",
		"separator elsewhere": "| Name | Age |\n| John | 25 |\n| --- | --- |",
		"bad separator chars": "| Name | Age |\n| -x- | --- |\n| John | 25 |",
		"single line":         "| Name | Age |",
		"plain text":          "not a table\nat all",
	}
	for name, text := range inputs {
		if tbl := Locate(text, 0); tbl != nil {
			t.Errorf("%s: Locate returned a table, want nil", name)
		}
	}
}

func TestLocateOutOfRangeLine(t *testing.T) {
	if Locate(sampleTable, -1) != nil {
		t.Error("negative line should return nil")
	}
	if Locate(sampleTable, 99) != nil {
		t.Error("line past end should return nil")
	}
}

func TestParseRowNaiveSplit(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"| a | b | c |", []string{"a", "b", "c"}},
		{"|  |  |", []string{"", ""}},
		{"  | padded |  ", []string{"padded"}},
		// An embedded pipe splits the cell. Documented format limitation.
		{"| a|b | c |", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		row := ParseRow(tt.line)
		if len(row.Cells) != len(tt.want) {
			t.Errorf("ParseRow(%q) got %d cells, want %d", tt.line, len(row.Cells), len(tt.want))
			continue
		}
		for i, w := range tt.want {
			if row.Cells[i].Content != w {
				t.Errorf("ParseRow(%q) cell %d = %q, want %q", tt.line, i, row.Cells[i].Content, w)
			}
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	inputs := []string{
		sampleTable,
		"| A |\n| --- |",
		"| A | B | C |\n| :---: | ---: | --- |\n|  | x |  |",
	}
	for _, in := range inputs {
		tbl := Locate(in, 0)
		if tbl == nil {
			t.Fatalf("Locate(%q) = nil", in)
		}
		once := tbl.String()
		again := Locate(once, 0)
		if again == nil {
			t.Fatalf("re-parse of %q failed", once)
		}
		if got := again.String(); got != once {
			t.Errorf("round trip not stable:\nfirst:  %q\nsecond: %q", once, got)
		}
	}
}

func TestCreateEmpty(t *testing.T) {
	text := CreateEmpty(2, 3)
	tbl := Locate(text, 0)
	if tbl == nil {
		t.Fatalf("CreateEmpty output did not parse:\n%s", text)
	}
	if tbl.ColumnCount() != 3 {
		t.Errorf("ColumnCount = %d, want 3", tbl.ColumnCount())
	}
	if len(tbl.Rows) != 2 {
		t.Errorf("rows = %d, want 2", len(tbl.Rows))
	}
	for i, h := range tbl.Headers.Cells {
		if !strings.HasPrefix(h.Content, "Header ") {
			t.Errorf("header %d = %q, want generated label", i, h.Content)
		}
	}
	for _, tok := range tbl.Separator {
		if tok != "---" {
			t.Errorf("separator token = %q, want ---", tok)
		}
	}
	for _, row := range tbl.Rows {
		for _, c := range row.Cells {
			if c.Content != "" {
				t.Errorf("data cell = %q, want empty", c.Content)
			}
		}
	}
}

func TestIsSeparatorLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"| --- | --- |", true},
		{"| :---: | ---: |", true},
		{"|---|---|", true},
		{"| abc | --- |", false},
		{"| | |", false},
		{"--- ---", false},
	}
	for _, tt := range tests {
		if got := IsSeparatorLine(tt.line); got != tt.want {
			t.Errorf("IsSeparatorLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
