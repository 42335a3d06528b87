package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Prompt manages single-line input on the status line: CSV paths, hex
// colors, column names, table dimensions.
type Prompt struct {
	active    bool
	label     string
	input     string
	cursorPos int
}

// NewPrompt creates an inactive prompt.
func NewPrompt() *Prompt {
	return &Prompt{}
}

// Start enters prompt mode with the given label and initial input.
func (p *Prompt) Start(label, initial string) {
	p.active = true
	p.label = label
	p.input = initial
	p.cursorPos = len(initial)
}

// Stop exits prompt mode
func (p *Prompt) Stop() {
	p.active = false
}

// IsActive returns whether the prompt is active
func (p *Prompt) IsActive() bool {
	return p.active
}

// GetInput returns the current input, trimmed
func (p *Prompt) GetInput() string {
	return strings.TrimSpace(p.input)
}

// HandleKey processes a key press in prompt mode. done is true when the
// prompt closed; submitted distinguishes Enter from Escape.
func (p *Prompt) HandleKey(ev *tcell.EventKey) (value string, submitted, done bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		p.Stop()
		return "", false, true
	case tcell.KeyEnter:
		value = p.GetInput()
		p.Stop()
		return value, true, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if p.cursorPos > 0 {
			runes := []rune(p.input[:p.cursorPos])
			newBefore := string(runes[:len(runes)-1])
			deleted := p.cursorPos - len(newBefore)
			p.input = newBefore + p.input[p.cursorPos:]
			p.cursorPos -= deleted
		} else if p.input == "" {
			p.Stop()
			return "", false, true
		}
	case tcell.KeyDelete:
		if p.cursorPos < len(p.input) {
			runes := []rune(p.input[p.cursorPos:])
			deleted := len(string(runes[:1]))
			p.input = p.input[:p.cursorPos] + p.input[p.cursorPos+deleted:]
		}
	case tcell.KeyLeft:
		if p.cursorPos > 0 {
			p.cursorPos--
		}
	case tcell.KeyRight:
		if p.cursorPos < len(p.input) {
			p.cursorPos++
		}
	case tcell.KeyHome, tcell.KeyCtrlA:
		p.cursorPos = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		p.cursorPos = len(p.input)
	case tcell.KeyCtrlU:
		p.input = p.input[p.cursorPos:]
		p.cursorPos = 0
	case tcell.KeyCtrlK:
		p.input = p.input[:p.cursorPos]
	default:
		ch := ev.Rune()
		if ch > 0 {
			s := string(ch)
			p.input = p.input[:p.cursorPos] + s + p.input[p.cursorPos:]
			p.cursorPos += len(s)
		}
	}

	return "", false, false
}

// Render renders the prompt line
func (p *Prompt) Render(screen *Screen, y int) {
	if !p.active {
		return
	}

	labelStyle := screen.PromptLabelStyle()
	textStyle := screen.PromptTextStyle()
	cursorStyle := screen.PromptCursorStyle()
	screenWidth := screen.GetWidth()

	x := 0
	screen.DrawString(x, y, p.label, labelStyle)
	x += len(p.label)

	for i, r := range p.input {
		charStyle := textStyle
		if i == p.cursorPos {
			charStyle = cursorStyle
		}
		if x < screenWidth {
			screen.SetCell(x, y, r, charStyle)
			x++
		}
	}

	if p.cursorPos >= len(p.input) && x < screenWidth {
		screen.SetCell(x, y, ' ', cursorStyle)
		x++
	}

	for x < screenWidth {
		screen.SetCell(x, y, ' ', textStyle)
		x++
	}
}
