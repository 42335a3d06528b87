package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	tbl := mustLocate(t, "| Name | N |\n| --- | ---: |\n| Jo | 5 |\n| Miranda | 100 |")
	got := Format(tbl)
	want := "" +
		"| Name    |   N |\n" +
		"| ------- | --: |\n" +
		"| Jo      |   5 |\n" +
		"| Miranda | 100 |"
	if got != want {
		t.Errorf("Format mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatKeepsTableEquivalent(t *testing.T) {
	tbl := mustLocate(t, sampleTable)
	formatted := Format(tbl)
	again := Locate(formatted, 0)
	if again == nil {
		t.Fatalf("formatted output did not parse:\n%s", formatted)
	}
	if again.String() != tbl.String() {
		t.Errorf("formatting changed the table:\n%s\nvs\n%s", again.String(), tbl.String())
	}
}

func TestFormatCenterAlignment(t *testing.T) {
	tbl := mustLocate(t, "| Head |\n| :---: |\n| x |")
	got := Format(tbl)
	want := "" +
		"| Head |\n" +
		"| :--: |\n" +
		"|  x   |"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
