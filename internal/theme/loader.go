package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string `toml:"name"`
	Colors struct {
		Background     string `toml:"background"`
		HeaderText     string `toml:"header_text"`
		HeaderBg       string `toml:"header_bg"`
		CellText       string `toml:"cell_text"`
		SelectedText   string `toml:"selected_text"`
		SelectedBg     string `toml:"selected_bg"`
		GridLine       string `toml:"grid_line"`
		EditorText     string `toml:"editor_text"`
		EditorCursor   string `toml:"editor_cursor"`
		EditorBg       string `toml:"editor_bg"`
		PromptLabel    string `toml:"prompt_label"`
		PromptText     string `toml:"prompt_text"`
		PromptCursor   string `toml:"prompt_cursor"`
		PickerBorder   string `toml:"picker_border"`
		PickerSelected string `toml:"picker_selected"`
		HelpBackground string `toml:"help_background"`
		HelpBorder     string `toml:"help_border"`
		HelpTitle      string `toml:"help_title"`
		HelpContent    string `toml:"help_content"`
		StatusMode     string `toml:"status_mode"`
		StatusModeBg   string `toml:"status_mode_bg"`
		StatusMessage  string `toml:"status_message"`
		StatusNotice   string `toml:"status_notice"`
		StatusModified string `toml:"status_modified"`
	} `toml:"colors"`
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	paths := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mdtable", "themes"))
		paths = append(paths, filepath.Join(home, ".local", "share", "mdtable", "themes"))
	}

	return paths
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	err = toml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme, starting from Tokyo
// Night and overriding whatever the file names.
func configToTheme(config ThemeConfig) *Theme {
	t := TokyoNight()

	if config.Colors.Background != "" {
		t.Colors.Background = ParseColorString(config.Colors.Background)
	}
	if config.Colors.HeaderText != "" {
		t.Colors.HeaderText = ParseColorString(config.Colors.HeaderText)
	}
	if config.Colors.HeaderBg != "" {
		t.Colors.HeaderBg = ParseColorString(config.Colors.HeaderBg)
	}
	if config.Colors.CellText != "" {
		t.Colors.CellText = ParseColorString(config.Colors.CellText)
	}
	if config.Colors.SelectedText != "" {
		t.Colors.SelectedText = ParseColorString(config.Colors.SelectedText)
	}
	if config.Colors.SelectedBg != "" {
		t.Colors.SelectedBg = ParseColorString(config.Colors.SelectedBg)
	}
	if config.Colors.GridLine != "" {
		t.Colors.GridLine = ParseColorString(config.Colors.GridLine)
	}
	if config.Colors.EditorText != "" {
		t.Colors.EditorText = ParseColorString(config.Colors.EditorText)
	}
	if config.Colors.EditorCursor != "" {
		t.Colors.EditorCursor = ParseColorString(config.Colors.EditorCursor)
	}
	if config.Colors.EditorBg != "" {
		t.Colors.EditorBg = ParseColorString(config.Colors.EditorBg)
	}
	if config.Colors.PromptLabel != "" {
		t.Colors.PromptLabel = ParseColorString(config.Colors.PromptLabel)
	}
	if config.Colors.PromptText != "" {
		t.Colors.PromptText = ParseColorString(config.Colors.PromptText)
	}
	if config.Colors.PromptCursor != "" {
		t.Colors.PromptCursor = ParseColorString(config.Colors.PromptCursor)
	}
	if config.Colors.PickerBorder != "" {
		t.Colors.PickerBorder = ParseColorString(config.Colors.PickerBorder)
	}
	if config.Colors.PickerSelected != "" {
		t.Colors.PickerSelected = ParseColorString(config.Colors.PickerSelected)
	}
	if config.Colors.HelpBackground != "" {
		t.Colors.HelpBackground = ParseColorString(config.Colors.HelpBackground)
	}
	if config.Colors.HelpBorder != "" {
		t.Colors.HelpBorder = ParseColorString(config.Colors.HelpBorder)
	}
	if config.Colors.HelpTitle != "" {
		t.Colors.HelpTitle = ParseColorString(config.Colors.HelpTitle)
	}
	if config.Colors.HelpContent != "" {
		t.Colors.HelpContent = ParseColorString(config.Colors.HelpContent)
	}
	if config.Colors.StatusMode != "" {
		t.Colors.StatusMode = ParseColorString(config.Colors.StatusMode)
	}
	if config.Colors.StatusModeBg != "" {
		t.Colors.StatusModeBg = ParseColorString(config.Colors.StatusModeBg)
	}
	if config.Colors.StatusMessage != "" {
		t.Colors.StatusMessage = ParseColorString(config.Colors.StatusMessage)
	}
	if config.Colors.StatusNotice != "" {
		t.Colors.StatusNotice = ParseColorString(config.Colors.StatusNotice)
	}
	if config.Colors.StatusModified != "" {
		t.Colors.StatusModified = ParseColorString(config.Colors.StatusModified)
	}

	if config.Name != "" {
		t.Name = config.Name
	}

	return t
}

// LoadThemeOrDefault loads a theme by name, or falls back to Tokyo Night
func LoadThemeOrDefault(themeName string) *Theme {
	if themeName == "default" {
		return Default()
	}

	theme, err := LoadTheme(themeName)
	if err != nil {
		return TokyoNight()
	}

	return theme
}
