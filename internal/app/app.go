package app

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gdamore/tcell/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mkarren/mdtable/internal/buffer"
	"github.com/mkarren/mdtable/internal/config"
	"github.com/mkarren/mdtable/internal/table"
	"github.com/mkarren/mdtable/internal/theme"
	"github.com/mkarren/mdtable/internal/ui"
)

// App is the main application controller
type App struct {
	screen *ui.Screen
	doc    *buffer.Document
	engine *table.Engine
	cache  *table.Cache
	cfg    *config.Config

	tableView *ui.TableView
	editor    *ui.CellEditor
	prompt    *ui.Prompt
	picker    *ui.ColorPicker
	help      *ui.HelpScreen
	bindings  []KeyBinding

	// promptAction consumes the submitted prompt value.
	promptAction func(value string)
	// cell being edited inline
	editRow, editCol int
	// cell the color picker applies to
	pickRow, pickCol int

	statusMsg    string
	statusNotice bool
	statusTime   time.Time
	topLine      int
	quit         bool
	quitArmed    bool
	debugMode    bool
	mode         string // "NORMAL", "EDIT", "PROMPT", "PICK"
}

// NewApp creates a new App instance
func NewApp(filePath string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	screen, err := ui.NewScreen(theme.LoadThemeOrDefault(cfg.Theme))
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	doc, err := buffer.Load(filePath)
	if err != nil {
		screen.Close()
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	a := &App{
		screen:    screen,
		doc:       doc,
		engine:    table.NewEngine(),
		cache:     table.NewCache(cfg.CacheTTL(), cfg.CacheSize),
		cfg:       cfg,
		tableView: ui.NewTableView(),
		prompt:    ui.NewPrompt(),
		picker:    ui.NewColorPicker(cfg.Palette),
		help:      ui.NewHelpScreen(),
		statusMsg: "Ready",
		mode:      "NORMAL",
	}

	a.bindings = a.InitializeKeybindings()
	infos := make([]ui.KeyBindingInfo, len(a.bindings))
	for i := range a.bindings {
		infos[i] = &a.bindings[i]
	}
	a.help.SetKeybindings(infos)

	return a, nil
}

// SetDebugMode enables table dumps in the log
func (a *App) SetDebugMode(debug bool) {
	a.debugMode = debug
}

// Run starts the main event loop
func (a *App) Run() error {
	defer a.Close()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			event := a.screen.PollEvent()
			eventChan <- event
			if event == nil {
				break
			}
		}
	}()

	ticker := time.NewTicker(50 * time.Millisecond) // ~20 FPS
	defer ticker.Stop()

	for !a.quit {
		select {
		case ev := <-eventChan:
			if ev != nil {
				a.handleRawEvent(ev)
			}
		case <-ticker.C:
			a.render()
		}
	}

	return nil
}

// Close closes the application
func (a *App) Close() error {
	if a.screen != nil {
		return a.screen.Close()
	}
	return nil
}

// SetStatus shows an informational status message
func (a *App) SetStatus(msg string) {
	a.statusMsg = msg
	a.statusNotice = false
	a.statusTime = time.Now()
}

// Notice shows a refusal/problem notice. Expected failures (no table at
// cursor, refused mutation) all surface here rather than as errors.
func (a *App) Notice(msg string) {
	a.statusMsg = msg
	a.statusNotice = true
	a.statusTime = time.Now()
	log.Printf("notice: %s", msg)
}

// handleRawEvent dispatches one input event. Unexpected panics from a
// command are converted to a generic notice so the host process never
// dies on a bug.
func (a *App) handleRawEvent(ev tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic in command handler: %v", r)
			a.Notice("Internal error (see mdtable.log)")
			a.mode = "NORMAL"
		}
	}()

	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Size()
	case *tcell.EventKey:
		a.handleKey(ev)
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if a.help.IsVisible() {
		a.help.Toggle()
		return
	}

	switch a.mode {
	case "EDIT":
		a.handleEditKey(ev)
		return
	case "PROMPT":
		value, submitted, done := a.prompt.HandleKey(ev)
		if done {
			a.mode = "NORMAL"
			if submitted && a.promptAction != nil {
				a.promptAction(value)
			}
			a.promptAction = nil
		}
		return
	case "PICK":
		color, picked, custom, done := a.picker.HandleKey(ev)
		if done {
			a.mode = "NORMAL"
			if picked {
				a.applyColor(color)
			} else if custom {
				a.startPrompt("Hex color: ", "#", func(value string) {
					a.applyColor(value)
				})
			}
		}
		return
	}

	// NORMAL mode.
	if ev.Key() == tcell.KeyCtrlS {
		a.saveDocument()
		return
	}

	switch ev.Key() {
	case tcell.KeyUp:
		a.moveCursorLine(-1)
		return
	case tcell.KeyDown:
		a.moveCursorLine(1)
		return
	case tcell.KeyLeft:
		a.moveCursorColumn(-1)
		return
	case tcell.KeyRight:
		a.moveCursorColumn(1)
		return
	case tcell.KeyEnter:
		a.editCurrentCell()
		return
	}

	r := ev.Rune()
	if r != 'q' {
		a.quitArmed = false
	}
	for _, kb := range a.bindings {
		if kb.Key == r {
			kb.Handler(a)
			return
		}
	}
}

func (a *App) handleEditKey(ev *tcell.EventKey) {
	if a.editor.HandleKey(ev) {
		return
	}
	a.mode = "NORMAL"
	if ev.Key() == tcell.KeyEscape {
		a.SetStatus("Edit cancelled")
		return
	}
	text := a.editor.Stop()
	a.withTable(func(tbl *table.Table) (bool, error) {
		if a.editRow == -1 {
			if a.editCol >= tbl.ColumnCount() {
				return false, fmt.Errorf("%w: column %d", table.ErrInvalidIndex, a.editCol)
			}
			tbl.Headers.Cells[a.editCol].Content = strings.TrimSpace(text)
			return true, nil
		}
		if a.editRow >= len(tbl.Rows) || a.editCol >= len(tbl.Rows[a.editRow].Cells) {
			return false, fmt.Errorf("%w: cell %d,%d", table.ErrInvalidIndex, a.editRow, a.editCol)
		}
		tbl.Rows[a.editRow].Cells[a.editCol].Content = strings.TrimSpace(text)
		return true, nil
	})
}

// locateAtCursor parses the table under the cursor, going through the
// parse cache. nil means "no table here"; the caller already gets the
// user-facing notice.
func (a *App) locateAtCursor() *table.Table {
	cur := a.doc.GetCursor()
	tbl := a.cache.Locate(a.doc.GetValue(), cur.Line)
	if tbl == nil {
		a.Notice("No table at cursor")
		return nil
	}
	if a.debugMode {
		log.Printf("located table:\n%s", spew.Sdump(tbl))
	}
	return tbl
}

// withTable runs one mutation against the table at the cursor and writes
// the result back over the table's original line range. The operation
// reports refusals via error; refused operations leave the document
// untouched. Returns whether the document changed.
func (a *App) withTable(op func(tbl *table.Table) (bool, error)) bool {
	tbl := a.locateAtCursor()
	if tbl == nil {
		return false
	}
	changed, err := op(tbl)
	if err != nil {
		a.Notice(userMessage(err))
		return false
	}
	if !changed {
		return false
	}
	a.writeBack(tbl)
	return true
}

// writeBack serializes the table over the line range it was parsed from.
func (a *App) writeBack(tbl *table.Table) {
	var text string
	if a.cfg.AlignOnWrite {
		text = table.Format(tbl)
	} else {
		text = tbl.String()
	}
	a.doc.ReplaceRange(text, tbl.StartLine, tbl.EndLine)
}

// userMessage strips error wrapping down to a short notice.
func userMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	if msg == "" {
		return "Operation refused"
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// gridPosition maps the text cursor into grid coordinates for the given
// table. row is -1 on the header or separator line; col is -1 off-table.
func (a *App) gridPosition(tbl *table.Table) (row, col int) {
	cur := a.doc.GetCursor()
	row = table.RowIndexAtLine(tbl, cur.Line)
	col = table.ColumnIndexAtChar(a.doc.Line(cur.Line), cur.Ch)
	return row, col
}

// setCursorToCell puts the text cursor inside the given cell after a
// structural edit shifted lines around. row -1 targets the header line.
func (a *App) setCursorToCell(tbl *table.Table, row, col int) {
	line := tbl.StartLine
	if row >= 0 {
		line = tbl.StartLine + 2 + row
	}
	if line >= a.doc.LineCount() {
		line = a.doc.LineCount() - 1
	}
	ch := table.CharAtColumn(a.doc.Line(line), col)
	a.doc.SetCursor(buffer.Pos{Line: line, Ch: ch})
}

func (a *App) moveCursorLine(delta int) {
	cur := a.doc.GetCursor()
	a.doc.SetCursor(buffer.Pos{Line: cur.Line + delta, Ch: cur.Ch})
}

// moveCursorColumn moves cell-wise on table lines and char-wise off them.
func (a *App) moveCursorColumn(delta int) {
	cur := a.doc.GetCursor()
	lineText := a.doc.Line(cur.Line)
	col := table.ColumnIndexAtChar(lineText, cur.Ch)
	if col < 0 {
		a.doc.SetCursor(buffer.Pos{Line: cur.Line, Ch: cur.Ch + delta})
		return
	}
	a.doc.SetCursor(buffer.Pos{Line: cur.Line, Ch: table.CharAtColumn(lineText, col+delta)})
}

func (a *App) editCurrentCell() {
	tbl := a.locateAtCursor()
	if tbl == nil {
		return
	}
	row, col := a.gridPosition(tbl)
	if col < 0 {
		a.Notice("Cursor is not inside a table cell")
		return
	}
	cur := a.doc.GetCursor()
	if row < 0 && cur.Line != tbl.StartLine {
		a.Notice("Cursor is not on an editable row")
		return
	}
	var content string
	if row < 0 {
		content = cellContent(tbl.Headers, col)
	} else {
		content = cellContent(tbl.Rows[row], col)
	}
	a.editRow, a.editCol = row, col
	a.editor = ui.NewCellEditor(content)
	a.editor.Start()
	a.mode = "EDIT"
}

func cellContent(r table.Row, col int) string {
	if col >= len(r.Cells) {
		return ""
	}
	return r.Cells[col].Content
}

func (a *App) startPrompt(label, initial string, action func(value string)) {
	a.promptAction = action
	a.prompt.Start(label, initial)
	a.mode = "PROMPT"
}

// applyColor colors the cell that was current when the picker opened.
func (a *App) applyColor(color string) {
	row, col := a.pickRow, a.pickCol
	applied := a.withTable(func(tbl *table.Table) (bool, error) {
		if row < 0 || row >= len(tbl.Rows) || col < 0 || col >= len(tbl.Rows[row].Cells) {
			return false, fmt.Errorf("%w: cell %d,%d", table.ErrInvalidIndex, row, col)
		}
		table.ApplyCellColor(&tbl.Rows[row].Cells[col], color)
		return true, nil
	})
	if !applied {
		return
	}
	if color == "" {
		a.SetStatus("Cell color removed")
	} else {
		a.SetStatus("Cell color set to " + color)
	}
}

// gotoColumn fuzzy-matches a header name and moves the cursor into the
// best-matching column.
func (a *App) gotoColumn(query string) {
	tbl := a.locateAtCursor()
	if tbl == nil {
		return
	}
	names := make([]string, tbl.ColumnCount())
	for i, h := range tbl.Headers.Cells {
		names[i] = table.StripMarkup(h.Content)
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) == 0 {
		a.Notice("No column matches " + strconv.Quote(query))
		return
	}
	sort.Sort(ranks)
	best := ranks[0].OriginalIndex
	row, _ := a.gridPosition(tbl)
	a.setCursorToCell(tbl, row, best)
	a.SetStatus("Column: " + names[best])
}

// sortByCursorColumn sorts on the cursor's column, or re-sorts the last
// column when the cursor is off the table columns.
func (a *App) sortByCursorColumn() {
	tbl := a.locateAtCursor()
	if tbl == nil {
		return
	}
	row, col := a.gridPosition(tbl)
	sorted, err := a.engine.Sort(tbl, -1, col)
	if err != nil {
		a.Notice(userMessage(err))
		return
	}
	a.writeBack(tbl)
	a.setCursorToCell(tbl, row, sorted)
	if a.engine.Ascending {
		a.SetStatus("Sorted column " + strconv.Itoa(sorted+1) + " ascending")
	} else {
		a.SetStatus("Sorted column " + strconv.Itoa(sorted+1) + " descending")
	}
}

// moveRowBy moves the cursor's row up or down. Off a data row, the row
// of the previous move is moved again.
func (a *App) moveRowBy(delta int) {
	tbl := a.locateAtCursor()
	if tbl == nil {
		return
	}
	row, col := a.gridPosition(tbl)
	if row < 0 {
		row = a.engine.LastRow
	}
	if row < 0 {
		a.Notice("Cursor is not on a table row")
		return
	}
	to := row + delta
	if err := a.engine.MoveRow(tbl, row, to); err != nil {
		a.Notice(userMessage(err))
		return
	}
	a.writeBack(tbl)
	a.setCursorToCell(tbl, to, max(col, 0))
	a.SetStatus("Row moved")
}

// moveColumnBy moves the cursor's column left or right, falling back to
// the previously moved column.
func (a *App) moveColumnBy(delta int) {
	tbl := a.locateAtCursor()
	if tbl == nil {
		return
	}
	row, col := a.gridPosition(tbl)
	if col < 0 {
		col = a.engine.LastCol
	}
	if col < 0 {
		a.Notice("Cursor is not on a table column")
		return
	}
	to := col + delta
	if err := a.engine.MoveColumn(tbl, col, to); err != nil {
		a.Notice(userMessage(err))
		return
	}
	a.writeBack(tbl)
	a.setCursorToCell(tbl, row, to)
	a.SetStatus("Column moved")
}

func (a *App) validateTable() {
	tbl := a.locateAtCursor()
	if tbl == nil {
		return
	}
	report := table.Validate(tbl)
	switch {
	case !report.IsValid:
		a.Notice("Invalid table: " + strings.Join(report.Errors, "; "))
	case len(report.Warnings) > 0:
		a.Notice("Table OK with warnings: " + strings.Join(report.Warnings, "; "))
	default:
		a.SetStatus("Table OK")
	}
}

// insertNewTable asks for dimensions and inserts a fresh table at the
// cursor line.
func (a *App) insertNewTable(spec string) {
	rows, cols := 2, 2
	parts := strings.FieldsFunc(spec, func(r rune) bool { return r == 'x' || r == 'X' || r == ' ' })
	if len(parts) == 2 {
		var err1, err2 error
		rows, err1 = strconv.Atoi(strings.TrimSpace(parts[0]))
		cols, err2 = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil || rows < 0 || cols < 1 {
			a.Notice("Table size must look like 2x3")
			return
		}
	} else if strings.TrimSpace(spec) != "" {
		a.Notice("Table size must look like 2x3")
		return
	}
	cur := a.doc.GetCursor()
	a.doc.InsertLines(table.CreateEmpty(rows, cols), cur.Line)
	a.doc.SetCursor(buffer.Pos{Line: cur.Line, Ch: 2})
	a.SetStatus(fmt.Sprintf("Inserted %dx%d table", rows, cols))
}

// importCSV reads a CSV file and inserts it as a table at the cursor.
// The file read is the only asynchronous boundary in the editor; the
// insert happens only after the whole file has been read.
func (a *App) importCSV(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		a.Notice("Cannot read " + path + ": " + err.Error())
		return
	}
	tbl, err := table.ImportCSV(string(data))
	if err != nil {
		a.Notice(userMessage(err))
		return
	}
	cur := a.doc.GetCursor()
	a.doc.InsertLines(table.Format(tbl), cur.Line)
	a.SetStatus(fmt.Sprintf("Imported %d rows from %s", len(tbl.Rows), path))
}

func (a *App) exportCSV(path string) {
	tbl := a.locateAtCursor()
	if tbl == nil {
		return
	}
	out, err := table.ExportCSV(tbl)
	if err != nil {
		a.Notice(userMessage(err))
		return
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		a.Notice("Cannot write " + path + ": " + err.Error())
		return
	}
	a.SetStatus("Exported table to " + path)
}

func (a *App) saveDocument() {
	if err := a.doc.Save(); err != nil {
		a.Notice("Failed to save: " + err.Error())
		return
	}
	a.SetStatus("Saved")
}

func (a *App) requestQuit() {
	if a.doc.Dirty() && !a.quitArmed {
		a.quitArmed = true
		a.Notice("Unsaved changes (q again to discard, Ctrl+S to save)")
		return
	}
	a.quit = true
}
