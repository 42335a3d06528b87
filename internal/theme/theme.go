package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	Background tcell.Color

	// Table grid colors
	HeaderText   tcell.Color
	HeaderBg     tcell.Color
	CellText     tcell.Color
	SelectedText tcell.Color
	SelectedBg   tcell.Color
	GridLine     tcell.Color

	// Cell editor colors
	EditorText   tcell.Color
	EditorCursor tcell.Color
	EditorBg     tcell.Color

	// Prompt / command line colors
	PromptLabel  tcell.Color
	PromptText   tcell.Color
	PromptCursor tcell.Color

	// Color picker colors
	PickerBorder   tcell.Color
	PickerSelected tcell.Color

	// Help overlay colors
	HelpBackground tcell.Color
	HelpBorder     tcell.Color
	HelpTitle      tcell.Color
	HelpContent    tcell.Color

	// Status line colors
	StatusMode     tcell.Color
	StatusModeBg   tcell.Color
	StatusMessage  tcell.Color
	StatusNotice   tcell.Color
	StatusModified tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a default theme using terminal defaults
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			Background:     tcell.ColorDefault,
			HeaderText:     tcell.ColorDefault,
			HeaderBg:       tcell.ColorDefault,
			CellText:       tcell.ColorDefault,
			SelectedText:   tcell.ColorDefault,
			SelectedBg:     tcell.ColorDefault,
			GridLine:       tcell.ColorDefault,
			EditorText:     tcell.ColorDefault,
			EditorCursor:   tcell.ColorDefault,
			EditorBg:       tcell.ColorDefault,
			PromptLabel:    tcell.ColorDefault,
			PromptText:     tcell.ColorDefault,
			PromptCursor:   tcell.ColorDefault,
			PickerBorder:   tcell.ColorDefault,
			PickerSelected: tcell.ColorDefault,
			HelpBackground: tcell.ColorDefault,
			HelpBorder:     tcell.ColorDefault,
			HelpTitle:      tcell.ColorDefault,
			HelpContent:    tcell.ColorDefault,
			StatusMode:     tcell.ColorDefault,
			StatusModeBg:   tcell.ColorDefault,
			StatusMessage:  tcell.ColorDefault,
			StatusNotice:   tcell.ColorDefault,
			StatusModified: tcell.ColorDefault,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			Background:     HexToColor("#1a1b26"), // Dark background
			HeaderText:     HexToColor("#bb9af7"), // Magenta
			HeaderBg:       HexToColor("#1a1b26"),
			CellText:       HexToColor("#c0caf5"), // Light gray-blue
			SelectedText:   HexToColor("#1a1b26"),
			SelectedBg:     HexToColor("#7aa2f7"), // Blue
			GridLine:       HexToColor("#565f89"), // Comment gray
			EditorText:     HexToColor("#c0caf5"),
			EditorCursor:   HexToColor("#7aa2f7"),
			EditorBg:       HexToColor("#1a1b26"),
			PromptLabel:    HexToColor("#bb9af7"),
			PromptText:     HexToColor("#c0caf5"),
			PromptCursor:   HexToColor("#7aa2f7"),
			PickerBorder:   HexToColor("#7dcfff"), // Cyan
			PickerSelected: HexToColor("#7aa2f7"),
			HelpBackground: HexToColor("#1a1b26"),
			HelpBorder:     HexToColor("#7dcfff"),
			HelpTitle:      HexToColor("#bb9af7"),
			HelpContent:    HexToColor("#c0caf5"),
			StatusMode:     HexToColor("#1a1b26"),
			StatusModeBg:   HexToColor("#bb9af7"),
			StatusMessage:  HexToColor("#9ece6a"), // Green
			StatusNotice:   HexToColor("#e0af68"), // Yellow
			StatusModified: HexToColor("#f7768e"), // Red
		},
	}
}
