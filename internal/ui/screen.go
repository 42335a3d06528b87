package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mkarren/mdtable/internal/theme"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	width       int
	height      int
	Theme       *theme.Theme
}

// NewScreen creates a new Screen instance with a specific theme
func NewScreen(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := tcellScreen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	width, height := tcellScreen.Size()
	return &Screen{
		tcellScreen: tcellScreen,
		width:       width,
		height:      height,
		Theme:       t,
	}, nil
}

// Close closes the screen
func (s *Screen) Close() error {
	s.tcellScreen.Fini()
	return nil
}

// Clear clears the entire screen
func (s *Screen) Clear() {
	s.tcellScreen.Clear()
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws a string at the given position with the given style
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.SetCell(x+i, y, r, style)
	}
}

// DrawStringLimited draws a string, truncating it if it exceeds maxWidth
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	if len(text) > maxWidth {
		text = text[:maxWidth]
	}
	s.DrawString(x, y, text, style)
}

// PollEvent polls for the next event (key press, mouse, etc.)
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	w, h := s.tcellScreen.Size()
	s.width = w
	s.height = h
	return w, h
}

// GetWidth returns the width of the screen
func (s *Screen) GetWidth() int {
	s.width, _ = s.tcellScreen.Size()
	return s.width
}

// GetHeight returns the height of the screen
func (s *Screen) GetHeight() int {
	_, s.height = s.tcellScreen.Size()
	return s.height
}

// DefaultStyle returns the default terminal style
func DefaultStyle() tcell.Style {
	return tcell.StyleDefault
}

// StyleBold returns a bold style
func StyleBold() tcell.Style {
	return tcell.StyleDefault.Bold(true)
}

// StyleReverse returns a reverse video style
func StyleReverse() tcell.Style {
	return tcell.StyleDefault.Reverse(true)
}

// StyleDim returns a dim style
func StyleDim() tcell.Style {
	return tcell.StyleDefault.Dim(true)
}

// Theme-aware style methods

// BackgroundStyle returns the default background style for the application
func (s *Screen) BackgroundStyle() tcell.Style {
	return tcell.StyleDefault.Background(s.Theme.Colors.Background)
}

// HeaderStyle returns the style for the table header row
func (s *Screen) HeaderStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HeaderText, s.Theme.Colors.HeaderBg).Bold(true)
}

// CellStyle returns the style for ordinary table cells
func (s *Screen) CellStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.CellText, s.Theme.Colors.Background)
}

// SelectedCellStyle returns the style for the cell under the cursor
func (s *Screen) SelectedCellStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.SelectedText, s.Theme.Colors.SelectedBg).Bold(true)
}

// GridLineStyle returns the style for the pipes and separator row
func (s *Screen) GridLineStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.GridLine)
}

// TextLineStyle returns the style for non-table document lines
func (s *Screen) TextLineStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.CellText).Dim(true)
}

// EditorStyle returns the style for cell editor text
func (s *Screen) EditorStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.EditorText, s.Theme.Colors.EditorBg)
}

// EditorCursorStyle returns the style for the cell editor cursor
func (s *Screen) EditorCursorStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.EditorBg, s.Theme.Colors.EditorCursor)
}

// PromptLabelStyle returns the style for prompt labels
func (s *Screen) PromptLabelStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.PromptLabel)
}

// PromptTextStyle returns the style for prompt input text
func (s *Screen) PromptTextStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.PromptText)
}

// PromptCursorStyle returns the style for the prompt cursor
func (s *Screen) PromptCursorStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.Background, s.Theme.Colors.PromptCursor)
}

// PickerBorderStyle returns the style for the color picker frame
func (s *Screen) PickerBorderStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.PickerBorder)
}

// PickerSelectedStyle returns the style for the selected swatch
func (s *Screen) PickerSelectedStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.PickerSelected).Bold(true)
}

// HelpStyle returns the style for help background
func (s *Screen) HelpStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HelpContent, s.Theme.Colors.HelpBackground)
}

// HelpBorderStyle returns the style for help borders
func (s *Screen) HelpBorderStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HelpBorder, s.Theme.Colors.HelpBackground)
}

// HelpTitleStyle returns the style for the help title
func (s *Screen) HelpTitleStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HelpTitle, s.Theme.Colors.HelpBackground).Bold(true)
}

// StatusModeStyle returns the style for the mode indicator
func (s *Screen) StatusModeStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.StatusMode, s.Theme.Colors.StatusModeBg).Bold(true)
}

// StatusMessageStyle returns the style for status messages
func (s *Screen) StatusMessageStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusMessage)
}

// StatusNoticeStyle returns the style for refusal notices
func (s *Screen) StatusNoticeStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusNotice).Bold(true)
}

// StatusModifiedStyle returns the style for the modified indicator
func (s *Screen) StatusModifiedStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusModified)
}

// CellBackgroundStyle returns the style for a cell carrying a background
// color class, resolving the sanitized token the same way a stylesheet
// rule for cell-bg-<token> would.
func (s *Screen) CellBackgroundStyle(token string) tcell.Style {
	bg := theme.ClassTokenToColor(token)
	if bg == tcell.ColorDefault {
		return s.CellStyle()
	}
	return theme.ColorPairToStyle(s.Theme.Colors.CellText, bg)
}
