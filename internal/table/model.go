// Package table implements parsing, validation, and structural editing of
// pipe-delimited markdown tables.
package table

import "regexp"

// Alignment describes how a column aligns its content, as encoded by the
// separator token below the header row.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Token returns the canonical separator token for the alignment.
func (a Alignment) Token() string {
	switch a {
	case AlignCenter:
		return ":---:"
	case AlignRight:
		return "---:"
	default:
		return "---"
	}
}

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// separatorTokenRe matches a well-formed separator token: one or more
// hyphens with an optional colon on either side.
var separatorTokenRe = regexp.MustCompile(`^:?-+:?$`)

// ParseAlignment decodes a separator token. ok is false when the token is
// not a well-formed separator token.
func ParseAlignment(token string) (Alignment, bool) {
	if !separatorTokenRe.MatchString(token) {
		return AlignLeft, false
	}
	left := token[0] == ':'
	right := token[len(token)-1] == ':'
	switch {
	case left && right:
		return AlignCenter, true
	case right:
		return AlignRight, true
	default:
		return AlignLeft, true
	}
}

// Cell is a single table cell. Content is the raw cell text and may embed
// inline styling markup (a span carrying a cell-bg-* class).
type Cell struct {
	Content string
}

// Row is an ordered sequence of cells.
type Row struct {
	Cells []Cell
}

// Table is the in-memory form of one markdown table. Separator holds the
// raw separator tokens so that malformed tokens survive parsing and can be
// reported by Validate. StartLine and EndLine are inclusive 0-based line
// indices into the buffer the table was parsed from; they are a snapshot
// taken at parse time, not a live reference.
type Table struct {
	Headers   Row
	Separator []string
	Rows      []Row
	StartLine int
	EndLine   int
}

// ColumnCount returns the number of header columns.
func (t *Table) ColumnCount() int {
	return len(t.Headers.Cells)
}

// LineCount returns the number of text lines the table occupies when
// serialized: header, separator, and one line per data row.
func (t *Table) LineCount() int {
	return 2 + len(t.Rows)
}

// Clone returns a deep copy of the table. Mutation operations work on
// clones so a failed operation never leaves a shared table half-changed.
func (t *Table) Clone() *Table {
	c := &Table{
		Headers:   cloneRow(t.Headers),
		Separator: append([]string(nil), t.Separator...),
		Rows:      make([]Row, len(t.Rows)),
		StartLine: t.StartLine,
		EndLine:   t.EndLine,
	}
	for i, r := range t.Rows {
		c.Rows[i] = cloneRow(r)
	}
	return c
}

func cloneRow(r Row) Row {
	return Row{Cells: append([]Cell(nil), r.Cells...)}
}

// emptyRow returns a row of n blank cells.
func emptyRow(n int) Row {
	return Row{Cells: make([]Cell, n)}
}
