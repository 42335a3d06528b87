package app

// KeyBinding represents a single key binding with its handler
type KeyBinding struct {
	Key         rune
	Description string
	Handler     func(a *App)
}

// GetKey returns the key
func (kb *KeyBinding) GetKey() rune {
	return kb.Key
}

// GetDescription returns the description
func (kb *KeyBinding) GetDescription() string {
	return kb.Description
}

// InitializeKeybindings returns the default normal-mode key bindings
func (a *App) InitializeKeybindings() []KeyBinding {
	return []KeyBinding{
		{
			Key:         'q',
			Description: "Quit",
			Handler:     func(a *App) { a.requestQuit() },
		},
		{
			Key:         'h',
			Description: "Move to previous cell",
			Handler:     func(a *App) { a.moveCursorColumn(-1) },
		},
		{
			Key:         'l',
			Description: "Move to next cell",
			Handler:     func(a *App) { a.moveCursorColumn(1) },
		},
		{
			Key:         'k',
			Description: "Move up a line",
			Handler:     func(a *App) { a.moveCursorLine(-1) },
		},
		{
			Key:         'j',
			Description: "Move down a line",
			Handler:     func(a *App) { a.moveCursorLine(1) },
		},
		{
			Key:         'e',
			Description: "Edit current cell",
			Handler:     func(a *App) { a.editCurrentCell() },
		},
		{
			Key:         'r',
			Description: "Insert row below cursor",
			Handler:     func(a *App) { a.insertRowBelow() },
		},
		{
			Key:         'R',
			Description: "Delete current row",
			Handler:     func(a *App) { a.deleteCurrentRow() },
		},
		{
			Key:         'c',
			Description: "Insert column after cursor",
			Handler:     func(a *App) { a.insertColumnAfter() },
		},
		{
			Key:         'C',
			Description: "Delete current column",
			Handler:     func(a *App) { a.deleteCurrentColumn() },
		},
		{
			Key:         'K',
			Description: "Move row up",
			Handler:     func(a *App) { a.moveRowBy(-1) },
		},
		{
			Key:         'J',
			Description: "Move row down",
			Handler:     func(a *App) { a.moveRowBy(1) },
		},
		{
			Key:         'H',
			Description: "Move column left",
			Handler:     func(a *App) { a.moveColumnBy(-1) },
		},
		{
			Key:         'L',
			Description: "Move column right",
			Handler:     func(a *App) { a.moveColumnBy(1) },
		},
		{
			Key:         's',
			Description: "Sort by current column (toggles direction)",
			Handler:     func(a *App) { a.sortByCursorColumn() },
		},
		{
			Key:         'a',
			Description: "Cycle column alignment",
			Handler:     func(a *App) { a.cycleCurrentAlignment() },
		},
		{
			Key:         'x',
			Description: "Pick cell background color",
			Handler:     func(a *App) { a.openColorPicker() },
		},
		{
			Key:         'X',
			Description: "Remove cell background color",
			Handler:     func(a *App) { a.removeCellColor() },
		},
		{
			Key:         'g',
			Description: "Go to column by name",
			Handler: func(a *App) {
				a.startPrompt("Column: ", "", func(value string) { a.gotoColumn(value) })
			},
		},
		{
			Key:         'n',
			Description: "Insert new table (rows x cols)",
			Handler: func(a *App) {
				a.startPrompt("Size: ", "2x2", func(value string) { a.insertNewTable(value) })
			},
		},
		{
			Key:         'i',
			Description: "Import CSV file as table",
			Handler: func(a *App) {
				a.startPrompt("Import CSV: ", "", func(value string) { a.importCSV(value) })
			},
		},
		{
			Key:         'o',
			Description: "Export table to CSV file",
			Handler: func(a *App) {
				a.startPrompt("Export CSV: ", "", func(value string) { a.exportCSV(value) })
			},
		},
		{
			Key:         'v',
			Description: "Validate table under cursor",
			Handler:     func(a *App) { a.validateTable() },
		},
		{
			Key:         'F',
			Description: "Reformat all tables in document",
			Handler:     func(a *App) { a.formatAllTables() },
		},
		{
			Key:         'w',
			Description: "Save document",
			Handler:     func(a *App) { a.saveDocument() },
		},
		{
			Key:         '?',
			Description: "Toggle help screen",
			Handler:     func(a *App) { a.help.Toggle() },
		},
	}
}
