package ui

import (
	"github.com/gdamore/tcell/v2"
)

// CellEditor manages inline editing of a single table cell's content.
type CellEditor struct {
	text      string
	cursorPos int
	active    bool
}

// NewCellEditor creates an editor primed with the cell's current content.
func NewCellEditor(content string) *CellEditor {
	return &CellEditor{
		text:      content,
		cursorPos: len(content),
	}
}

// Start starts editing mode
func (e *CellEditor) Start() {
	e.active = true
	e.cursorPos = len(e.text)
}

// Stop stops editing mode and returns the final text
func (e *CellEditor) Stop() string {
	e.active = false
	return e.text
}

// IsActive returns whether the editor is active
func (e *CellEditor) IsActive() bool {
	return e.active
}

// HandleKey handles a key press during editing. It returns false when the
// key ends the edit (Enter confirms, Escape cancels); the caller decides
// which of the two it was from the event.
func (e *CellEditor) HandleKey(ev *tcell.EventKey) bool {
	if !e.active {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		return false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if e.cursorPos > 0 {
			e.text = e.text[:e.cursorPos-1] + e.text[e.cursorPos:]
			e.cursorPos--
		}
	case tcell.KeyDelete:
		if e.cursorPos < len(e.text) {
			e.text = e.text[:e.cursorPos] + e.text[e.cursorPos+1:]
		}
	case tcell.KeyLeft:
		if e.cursorPos > 0 {
			e.cursorPos--
		}
	case tcell.KeyRight:
		if e.cursorPos < len(e.text) {
			e.cursorPos++
		}
	case tcell.KeyHome, tcell.KeyCtrlA:
		e.cursorPos = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		e.cursorPos = len(e.text)
	case tcell.KeyCtrlU:
		// Delete from start to cursor
		e.text = e.text[e.cursorPos:]
		e.cursorPos = 0
	case tcell.KeyCtrlK:
		// Delete from cursor to end
		e.text = e.text[:e.cursorPos]
	default:
		ch := ev.Rune()
		if ch > 0 && ch != '|' { // a raw pipe would split the cell on write-back
			e.text = e.text[:e.cursorPos] + string(ch) + e.text[e.cursorPos:]
			e.cursorPos += len(string(ch))
		}
	}

	return true
}

// Render renders the editor on the screen
func (e *CellEditor) Render(screen *Screen, x, y int, maxWidth int) {
	style := screen.EditorStyle()
	cursorStyle := screen.EditorCursorStyle()

	displayText := e.text
	if len(displayText) > maxWidth {
		// Show portion around cursor
		start := e.cursorPos - maxWidth/2
		if start < 0 {
			start = 0
		}
		if start+maxWidth > len(displayText) {
			start = len(displayText) - maxWidth
		}
		if start < 0 {
			start = 0
		}
		displayText = displayText[start:]
	}

	for i, r := range displayText {
		charStyle := style
		if i == e.cursorPos {
			charStyle = cursorStyle
		}
		screen.SetCell(x+i, y, r, charStyle)
	}

	// Draw cursor at end if needed
	if e.cursorPos >= len(displayText) {
		screen.SetCell(x+e.cursorPos, y, ' ', cursorStyle)
	}

	// Clear remainder
	for i := len(displayText); i < maxWidth; i++ {
		if x+i < screen.GetWidth() {
			screen.SetCell(x+i, y, ' ', style)
		}
	}
}

// GetText returns the current text
func (e *CellEditor) GetText() string {
	return e.text
}

// SetText sets the text
func (e *CellEditor) SetText(text string) {
	e.text = text
	if e.cursorPos > len(e.text) {
		e.cursorPos = len(e.text)
	}
}
