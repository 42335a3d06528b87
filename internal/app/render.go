package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/mkarren/mdtable/internal/table"
)

// render draws the whole frame: document lines with the cursor's table
// shown as a grid, any active overlay, and the status line.
func (a *App) render() {
	a.screen.Clear()
	_, height := a.screen.Size()

	viewHeight := height - 2
	if viewHeight < 1 {
		viewHeight = 1
	}
	a.scrollIntoView(viewHeight)

	cur := a.doc.GetCursor()
	tbl := a.cache.Locate(a.doc.GetValue(), cur.Line)
	selRow, selCol := -2, -1
	if tbl != nil {
		selRow, selCol = a.gridPosition(tbl)
	}

	line := a.topLine
	y := 0
	for y < viewHeight && line < a.doc.LineCount() {
		if tbl != nil && line == tbl.StartLine && tbl.StartLine >= a.topLine {
			used := a.tableView.Render(a.screen, 0, y, tbl, selRow, selCol)
			y += used
			line = tbl.EndLine + 1
			continue
		}
		a.renderTextLine(line, y, cur.Line == line, cur.Ch)
		y++
		line++
	}

	if a.mode == "EDIT" && tbl != nil {
		a.renderEditorOverlay(tbl)
	}

	a.prompt.Render(a.screen, height-2)
	a.picker.Render(a.screen, height-2)
	a.renderStatusLine(height - 1)
	a.help.Render(a.screen)

	a.screen.Show()
}

// scrollIntoView adjusts the top line so the cursor stays on screen.
func (a *App) scrollIntoView(viewHeight int) {
	cur := a.doc.GetCursor()
	if cur.Line < a.topLine {
		a.topLine = cur.Line
	}
	if cur.Line >= a.topLine+viewHeight {
		a.topLine = cur.Line - viewHeight + 1
	}
	if a.topLine < 0 {
		a.topLine = 0
	}
}

func (a *App) renderTextLine(line, y int, hasCursor bool, ch int) {
	text := a.doc.Line(line)
	a.screen.DrawString(0, y, text, a.screen.TextLineStyle())
	if hasCursor && a.mode == "NORMAL" {
		r := ' '
		if runes := []rune(text); ch < len(runes) {
			r = runes[ch]
		}
		a.screen.SetCell(ch, y, r, a.screen.SelectedCellStyle())
	}
}

// renderEditorOverlay draws the inline cell editor on top of the cell it
// is editing.
func (a *App) renderEditorOverlay(tbl *table.Table) {
	xoff, width := a.tableView.CellOrigin(tbl, a.editCol)
	cellLine := tbl.StartLine
	if a.editRow >= 0 {
		cellLine = tbl.StartLine + 2 + a.editRow
	}
	y := cellLine - a.topLine
	if y < 0 {
		return
	}
	a.editor.Render(a.screen, xoff, y, width)
}

func (a *App) renderStatusLine(y int) {
	width := a.screen.GetWidth()

	modeLabel := " " + a.mode + " "
	a.screen.DrawString(0, y, modeLabel, a.screen.StatusModeStyle())
	x := len(modeLabel) + 1

	msgStyle := a.screen.StatusMessageStyle()
	if a.statusNotice {
		msgStyle = a.screen.StatusNoticeStyle()
	}
	msg := a.statusMsg
	if time.Since(a.statusTime) > 5*time.Second && !a.statusNotice {
		msg = ""
	}
	a.screen.DrawStringLimited(x, y, msg, width-x-24, msgStyle)

	cur := a.doc.GetCursor()
	right := fmt.Sprintf("%s  %d:%d", filepath.Base(a.doc.Path()), cur.Line+1, cur.Ch+1)
	if a.doc.Dirty() {
		a.screen.DrawString(width-len(right)-4, y, "[+]", a.screen.StatusModifiedStyle())
	}
	a.screen.DrawString(width-len(right), y, right, a.screen.StatusMessageStyle())
}
