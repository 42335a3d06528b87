// Package buffer provides the line-oriented text document the editor
// operates on: full-text access, a cursor, and line-range replacement.
package buffer

import (
	"fmt"
	"os"
	"strings"
)

// Pos is a cursor position: a 0-based line and a byte offset in it.
type Pos struct {
	Line int
	Ch   int
}

// Editor is the seam table commands go through to reach text. Document
// implements it; a host with its own buffer can supply something else.
type Editor interface {
	GetCursor() Pos
	SetCursor(Pos)
	GetValue() string
	Line(i int) string
	LineCount() int
	ReplaceRange(text string, from, to int)
	InsertLines(text string, at int)
}

// Document is an in-memory line buffer backed by a file on disk.
type Document struct {
	lines  []string
	cursor Pos
	path   string
	dirty  bool
}

// New creates an empty single-line document not yet tied to a file.
func New() *Document {
	return &Document{lines: []string{""}}
}

// Load reads a document from disk. A missing file yields an empty
// document that will be created on the first save.
func Load(path string) (*Document, error) {
	d := &Document{lines: []string{""}, path: path}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return d, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	d.lines = strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	return d, nil
}

// Save writes the document back to its file.
func (d *Document) Save() error {
	if d.path == "" {
		return fmt.Errorf("document has no file path")
	}
	content := d.GetValue()
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := os.WriteFile(d.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.path, err)
	}
	d.dirty = false
	return nil
}

// Path returns the backing file path, "" for an unsaved document.
func (d *Document) Path() string {
	return d.path
}

// Dirty reports whether the document changed since the last save.
func (d *Document) Dirty() bool {
	return d.dirty
}

// GetValue returns the full buffer text, lines joined by newlines.
func (d *Document) GetValue() string {
	return strings.Join(d.lines, "\n")
}

// LineCount returns the number of lines; a document has at least one.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the text of line i, or "" when i is out of range.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// GetCursor returns the cursor position.
func (d *Document) GetCursor() Pos {
	return d.cursor
}

// SetCursor moves the cursor, clamping it into the document.
func (d *Document) SetCursor(p Pos) {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(d.lines) {
		p.Line = len(d.lines) - 1
	}
	if p.Ch < 0 {
		p.Ch = 0
	}
	if l := len(d.lines[p.Line]); p.Ch > l {
		p.Ch = l
	}
	d.cursor = p
}

// ReplaceRange replaces the inclusive line range [from, to] with the given
// text, split on newlines. The range clamps into the document. The cursor
// keeps its line when possible.
func (d *Document) ReplaceRange(text string, from, to int) {
	if from < 0 {
		from = 0
	}
	if to >= len(d.lines) {
		to = len(d.lines) - 1
	}
	if from > to {
		return
	}
	replacement := strings.Split(text, "\n")
	rest := append([]string(nil), d.lines[to+1:]...)
	d.lines = append(d.lines[:from], append(replacement, rest...)...)
	d.dirty = true
	d.SetCursor(d.cursor)
}

// InsertLines inserts the given text (split on newlines) before line at;
// at past the end appends.
func (d *Document) InsertLines(text string, at int) {
	if at < 0 {
		at = 0
	}
	if at > len(d.lines) {
		at = len(d.lines)
	}
	inserted := strings.Split(text, "\n")
	rest := append([]string(nil), d.lines[at:]...)
	d.lines = append(d.lines[:at], append(inserted, rest...)...)
	d.dirty = true
	d.SetCursor(d.cursor)
}

// SetLine replaces the text of one line.
func (d *Document) SetLine(i int, text string) {
	if i < 0 || i >= len(d.lines) {
		return
	}
	d.lines[i] = text
	d.dirty = true
}
