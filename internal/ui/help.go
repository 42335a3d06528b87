package ui

// KeyBindingInfo represents a keybinding for display
type KeyBindingInfo interface {
	GetKey() rune
	GetDescription() string
}

// HelpScreen manages the help display
type HelpScreen struct {
	visible     bool
	keybindings []KeyBindingInfo
}

// NewHelpScreen creates a new HelpScreen
func NewHelpScreen() *HelpScreen {
	return &HelpScreen{
		visible:     false,
		keybindings: []KeyBindingInfo{},
	}
}

// SetKeybindings sets the keybindings to display
func (h *HelpScreen) SetKeybindings(keybindings []KeyBindingInfo) {
	h.keybindings = keybindings
}

// Toggle toggles the help screen visibility
func (h *HelpScreen) Toggle() {
	h.visible = !h.visible
}

// IsVisible returns whether the help screen is visible
func (h *HelpScreen) IsVisible() bool {
	return h.visible
}

// GetKeybindings returns a formatted list of keybindings
func (h *HelpScreen) GetKeybindings() []string {
	var result []string

	result = append(result, "Keybindings:")
	result = append(result, "")

	for _, kb := range h.keybindings {
		result = append(result, "  "+string(kb.GetKey())+"  - "+kb.GetDescription())
	}

	result = append(result, "")
	result = append(result, "Special Keys:")
	result = append(result, "  Ctrl+S      - Save document")
	result = append(result, "  Escape      - Cancel edit/prompt/picker")
	result = append(result, "  Enter       - Edit cell / confirm")
	result = append(result, "  Arrow Keys  - Move between cells")

	return result
}

// Render renders the help screen
func (h *HelpScreen) Render(screen *Screen) {
	if !h.visible {
		return
	}

	contentStyle := screen.HelpStyle()
	borderStyle := screen.HelpBorderStyle()
	titleStyle := screen.HelpTitleStyle()

	// Draw background
	for y := 0; y < screen.GetHeight(); y++ {
		for x := 0; x < screen.GetWidth(); x++ {
			screen.SetCell(x, y, ' ', contentStyle)
		}
	}

	// Draw help box
	startY := 2
	startX := 5
	boxWidth := screen.GetWidth() - 10
	height := screen.GetHeight() - 4

	keybindings := h.GetKeybindings()

	// Draw top border
	screen.SetCell(startX, startY, '┌', borderStyle)
	for i := 1; i < boxWidth-1; i++ {
		screen.SetCell(startX+i, startY, '─', borderStyle)
	}
	screen.SetCell(startX+boxWidth-1, startY, '┐', borderStyle)

	// Draw title with side borders
	title := " Keybindings (? to close) "
	screen.SetCell(startX, startY+1, '│', borderStyle)
	screen.DrawString(startX+2, startY+1, title, titleStyle)
	screen.SetCell(startX+boxWidth-1, startY+1, '│', borderStyle)

	// Draw middle border
	screen.SetCell(startX, startY+2, '├', borderStyle)
	for i := 1; i < boxWidth-1; i++ {
		screen.SetCell(startX+i, startY+2, '─', borderStyle)
	}
	screen.SetCell(startX+boxWidth-1, startY+2, '┤', borderStyle)

	// Draw keybindings with side borders
	y := startY + 3
	for _, binding := range keybindings {
		if y >= startY+height-1 {
			break
		}
		screen.SetCell(startX, y, '│', borderStyle)
		screen.DrawString(startX+2, y, binding, contentStyle)
		screen.SetCell(startX+boxWidth-1, y, '│', borderStyle)
		y++
	}

	// Draw bottom border
	screen.SetCell(startX, y, '└', borderStyle)
	for i := 1; i < boxWidth-1; i++ {
		screen.SetCell(startX+i, y, '─', borderStyle)
	}
	screen.SetCell(startX+boxWidth-1, y, '┘', borderStyle)
}
