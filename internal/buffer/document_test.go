package buffer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.LineCount() != 3 {
		t.Fatalf("LineCount = %d, want 3", d.LineCount())
	}
	if d.Line(1) != "two" {
		t.Errorf("Line(1) = %q", d.Line(1))
	}

	d.SetLine(1, "TWO")
	if !d.Dirty() {
		t.Error("edit did not mark the document dirty")
	}
	if err := d.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one\nTWO\nthree\n" {
		t.Errorf("saved content = %q", data)
	}
	if d.Dirty() {
		t.Error("Save did not clear dirty")
	}
}

func TestLoadMissingFile(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), "nope.md"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if d.LineCount() != 1 || d.Line(0) != "" {
		t.Errorf("expected empty document, got %d lines", d.LineCount())
	}
}

func TestReplaceRange(t *testing.T) {
	d := New()
	d.InsertLines("a\nb\nc\nd", 0)
	// InsertLines on the initial empty document leaves the empty line at
	// the end; drop down to just the inserted content for clarity.
	d.ReplaceRange("a\nb\nc\nd", 0, d.LineCount()-1)

	d.ReplaceRange("X\nY", 1, 2)
	if got := d.GetValue(); got != "a\nX\nY\nd" {
		t.Errorf("GetValue = %q", got)
	}

	// Replacement may change the line count.
	d.ReplaceRange("Z", 1, 2)
	if got := d.GetValue(); got != "a\nZ\nd" {
		t.Errorf("GetValue = %q", got)
	}
}

func TestReplaceRangeClamps(t *testing.T) {
	d := New()
	d.ReplaceRange("only", -5, 99)
	if got := d.GetValue(); got != "only" {
		t.Errorf("GetValue = %q", got)
	}
}

func TestInsertLines(t *testing.T) {
	d := New()
	d.ReplaceRange("a\nb", 0, 0)
	d.InsertLines("mid", 1)
	if got := d.GetValue(); got != "a\nmid\nb" {
		t.Errorf("GetValue = %q", got)
	}
	d.InsertLines("end", 99)
	if got := d.GetValue(); got != "a\nmid\nb\nend" {
		t.Errorf("GetValue = %q", got)
	}
}

func TestSetCursorClamps(t *testing.T) {
	d := New()
	d.ReplaceRange("hello\nworld", 0, 0)

	d.SetCursor(Pos{Line: 9, Ch: 99})
	got := d.GetCursor()
	if got.Line != 1 || got.Ch != 5 {
		t.Errorf("cursor = %+v, want line 1 ch 5", got)
	}

	d.SetCursor(Pos{Line: -1, Ch: -1})
	got = d.GetCursor()
	if got.Line != 0 || got.Ch != 0 {
		t.Errorf("cursor = %+v, want origin", got)
	}
}
