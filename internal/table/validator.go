package table

import (
	"fmt"
	"strings"
)

// Report is the outcome of validating a table. Errors make the table
// structurally unsound (IsValid false); warnings flag suspicious but
// tolerated content.
type Report struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// Validate checks a parsed table for structural consistency. It never
// mutates the table.
func Validate(t *Table) Report {
	r := Report{IsValid: true}

	if t.ColumnCount() == 0 {
		r.Errors = append(r.Errors, "table has no header columns")
	}

	if len(t.Separator) != t.ColumnCount() {
		r.Errors = append(r.Errors, fmt.Sprintf(
			"separator has %d tokens for %d columns", len(t.Separator), t.ColumnCount()))
	}
	for i, tok := range t.Separator {
		if !separatorTokenRe.MatchString(tok) {
			r.Errors = append(r.Errors, fmt.Sprintf("separator token %d is malformed: %q", i+1, tok))
		}
	}

	seen := make(map[string]int)
	for i, h := range t.Headers.Cells {
		name := strings.TrimSpace(h.Content)
		if name == "" {
			r.Warnings = append(r.Warnings, fmt.Sprintf("header %d is empty", i+1))
			continue
		}
		key := strings.ToLower(name)
		if first, ok := seen[key]; ok {
			r.Warnings = append(r.Warnings, fmt.Sprintf(
				"header %d duplicates header %d (%q)", i+1, first+1, name))
		} else {
			seen[key] = i
		}
	}

	for i, row := range t.Rows {
		if len(row.Cells) != t.ColumnCount() {
			r.Warnings = append(r.Warnings, fmt.Sprintf(
				"row %d has %d cells, expected %d", i+1, len(row.Cells), t.ColumnCount()))
		}
	}

	r.IsValid = len(r.Errors) == 0
	return r
}
