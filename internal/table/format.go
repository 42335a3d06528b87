package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Format serializes the table with every column padded to a shared width
// and separator tokens stretched to match, the way hand-aligned markdown
// tables are written. Re-locating the output yields an equivalent table;
// only inter-cell whitespace differs from String.
func Format(t *Table) string {
	widths := columnWidths(t)
	var sb strings.Builder
	writePaddedRow(&sb, t.Headers, t, widths)
	sb.WriteByte('\n')
	writeSeparator(&sb, t, widths)
	for _, r := range t.Rows {
		sb.WriteByte('\n')
		writePaddedRow(&sb, r, t, widths)
	}
	return sb.String()
}

// columnWidths returns the display width of each column, at least 3 so a
// minimal separator token fits.
func columnWidths(t *Table) []int {
	widths := make([]int, t.ColumnCount())
	for i := range widths {
		widths[i] = 3
	}
	measure := func(r Row) {
		for i, c := range r.Cells {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(c.Content); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Headers)
	for _, r := range t.Rows {
		measure(r)
	}
	return widths
}

func writePaddedRow(sb *strings.Builder, r Row, t *Table, widths []int) {
	sb.WriteString("|")
	for i, c := range r.Cells {
		sb.WriteByte(' ')
		if i < len(widths) {
			sb.WriteString(padCell(c.Content, widths[i], alignmentAt(t, i)))
		} else {
			sb.WriteString(c.Content)
		}
		sb.WriteString(" |")
	}
	if len(r.Cells) == 0 {
		sb.WriteString(" |")
	}
}

func writeSeparator(sb *strings.Builder, t *Table, widths []int) {
	sb.WriteString("|")
	for i := range t.Separator {
		w := 3
		if i < len(widths) {
			w = widths[i]
		}
		sb.WriteByte(' ')
		sb.WriteString(separatorToken(alignmentAt(t, i), w))
		sb.WriteString(" |")
	}
	if len(t.Separator) == 0 {
		sb.WriteString(" --- |")
	}
}

func separatorToken(a Alignment, w int) string {
	switch a {
	case AlignCenter:
		return ":" + strings.Repeat("-", w-2) + ":"
	case AlignRight:
		return strings.Repeat("-", w-1) + ":"
	default:
		return strings.Repeat("-", w)
	}
}

func padCell(content string, w int, a Alignment) string {
	pad := w - runewidth.StringWidth(content)
	if pad <= 0 {
		return content
	}
	switch a {
	case AlignRight:
		return strings.Repeat(" ", pad) + content
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + content + strings.Repeat(" ", pad-left)
	default:
		return content + strings.Repeat(" ", pad)
	}
}

// alignmentAt returns the column's alignment, defaulting to left for
// missing or malformed separator tokens.
func alignmentAt(t *Table, col int) Alignment {
	if col < 0 || col >= len(t.Separator) {
		return AlignLeft
	}
	a, ok := ParseAlignment(t.Separator[col])
	if !ok {
		return AlignLeft
	}
	return a
}
