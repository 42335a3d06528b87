package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mkarren/mdtable/internal/table"
)

// TableView renders a parsed table as a grid. The selected cell is
// addressed in grid coordinates: row -1 selects within the header row.
type TableView struct {
	widths []int
}

// NewTableView creates a new TableView
func NewTableView() *TableView {
	return &TableView{}
}

// layout computes per-column display widths from the stripped cell text.
func (v *TableView) layout(tbl *table.Table) {
	v.widths = make([]int, tbl.ColumnCount())
	for i := range v.widths {
		v.widths[i] = 3
	}
	measure := func(r table.Row) {
		for i, c := range r.Cells {
			if i >= len(v.widths) {
				break
			}
			if w := runewidth.StringWidth(table.StripMarkup(c.Content)); w > v.widths[i] {
				v.widths[i] = w
			}
		}
	}
	measure(tbl.Headers)
	for _, r := range tbl.Rows {
		measure(r)
	}
}

// Render draws the table grid starting at (x, y). selRow/selCol pick the
// highlighted cell, with selRow -1 for the header. Returns the number of
// screen rows used.
func (v *TableView) Render(screen *Screen, x, y int, tbl *table.Table, selRow, selCol int) int {
	v.layout(tbl)

	v.renderRow(screen, x, y, tbl.Headers, true, selRow == -1, selCol)
	v.renderSeparator(screen, x, y+1, tbl)
	for i, r := range tbl.Rows {
		v.renderRow(screen, x, y+2+i, r, false, selRow == i, selCol)
	}
	return tbl.LineCount()
}

func (v *TableView) renderRow(screen *Screen, x, y int, r table.Row, header, selected bool, selCol int) {
	gridStyle := screen.GridLineStyle()
	screen.SetCell(x, y, '|', gridStyle)
	cx := x + 1
	for i, c := range r.Cells {
		w := 3
		if i < len(v.widths) {
			w = v.widths[i]
		}

		style := screen.CellStyle()
		if header {
			style = screen.HeaderStyle()
		}
		if token := table.CellColorToken(c.Content); token != "" {
			style = screen.CellBackgroundStyle(token)
		}
		if selected && i == selCol {
			style = screen.SelectedCellStyle()
		}

		text := runewidth.FillRight(table.StripMarkup(c.Content), w)
		screen.SetCell(cx, y, ' ', style)
		screen.DrawString(cx+1, y, text, style)
		screen.SetCell(cx+1+w, y, ' ', style)
		cx += w + 2
		screen.SetCell(cx, y, '|', gridStyle)
		cx++
	}
}

func (v *TableView) renderSeparator(screen *Screen, x, y int, tbl *table.Table) {
	gridStyle := screen.GridLineStyle()
	var sb strings.Builder
	sb.WriteByte('|')
	for i, tok := range tbl.Separator {
		w := 3
		if i < len(v.widths) {
			w = v.widths[i]
		}
		align, _ := table.ParseAlignment(tok)
		var token string
		switch align {
		case table.AlignCenter:
			token = ":" + strings.Repeat("-", max(w-2, 1)) + ":"
		case table.AlignRight:
			token = strings.Repeat("-", max(w-1, 1)) + ":"
		default:
			token = strings.Repeat("-", w)
		}
		sb.WriteByte(' ')
		sb.WriteString(token)
		sb.WriteString(" |")
	}
	screen.DrawString(x, y, sb.String(), gridStyle)
}

// CellOrigin returns the screen offset, relative to the grid origin, of
// the content area of the cell in the given column, plus its width. Used
// to place the inline cell editor over the cell it edits.
func (v *TableView) CellOrigin(tbl *table.Table, col int) (xoff, width int) {
	v.layout(tbl)
	xoff = 2 // opening pipe and padding space
	for i := 0; i < col && i < len(v.widths); i++ {
		xoff += v.widths[i] + 3
	}
	if col >= 0 && col < len(v.widths) {
		width = v.widths[col]
	} else {
		width = 3
	}
	return xoff, width
}
