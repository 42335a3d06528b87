package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mkarren/mdtable/internal/theme"
)

// ColorPicker presents the configured palette plus a "remove color" entry
// and lets the user pick a background color for the current cell.
type ColorPicker struct {
	active   bool
	palette  []string
	selected int
}

// NewColorPicker creates a picker over the given palette.
func NewColorPicker(palette []string) *ColorPicker {
	return &ColorPicker{palette: palette}
}

// Start opens the picker.
func (p *ColorPicker) Start() {
	p.active = true
	p.selected = 0
}

// Stop closes the picker.
func (p *ColorPicker) Stop() {
	p.active = false
}

// IsActive returns whether the picker is open
func (p *ColorPicker) IsActive() bool {
	return p.active
}

// HandleKey processes a key press. done is true when the picker closed;
// on a confirmed pick, color holds the chosen hex value ("" for the
// remove-color entry). custom is true when the user asked for free hex
// entry instead.
func (p *ColorPicker) HandleKey(ev *tcell.EventKey) (color string, picked, custom, done bool) {
	entries := len(p.palette) + 1 // trailing remove-color entry
	switch ev.Key() {
	case tcell.KeyEscape:
		p.Stop()
		return "", false, false, true
	case tcell.KeyEnter:
		p.Stop()
		if p.selected == len(p.palette) {
			return "", true, false, true
		}
		return p.palette[p.selected], true, false, true
	case tcell.KeyLeft, tcell.KeyUp:
		p.selected = (p.selected + entries - 1) % entries
	case tcell.KeyRight, tcell.KeyDown:
		p.selected = (p.selected + 1) % entries
	default:
		switch ev.Rune() {
		case 'h', 'k':
			p.selected = (p.selected + entries - 1) % entries
		case 'l', 'j':
			p.selected = (p.selected + 1) % entries
		case '#':
			p.Stop()
			return "", false, true, true
		}
	}
	return "", false, false, false
}

// Render draws the picker as a single row of swatches above the status
// line.
func (p *ColorPicker) Render(screen *Screen, y int) {
	if !p.active {
		return
	}

	borderStyle := screen.PickerBorderStyle()
	selectedStyle := screen.PickerSelectedStyle()

	x := 0
	screen.DrawString(x, y, "Color: ", borderStyle)
	x += 7

	for i, hex := range p.palette {
		swatchStyle := tcell.StyleDefault.Background(theme.HexToColor(hex))
		marker := ' '
		if i == p.selected {
			marker = '>'
		}
		screen.SetCell(x, y, marker, selectedStyle)
		screen.DrawString(x+1, y, "  ", swatchStyle)
		x += 4
	}

	// Remove-color entry.
	marker := ' '
	if p.selected == len(p.palette) {
		marker = '>'
	}
	screen.SetCell(x, y, marker, selectedStyle)
	screen.DrawString(x+1, y, "none", borderStyle)
	x += 6

	screen.DrawString(x+1, y, "(# for custom hex)", StyleDim())
}
