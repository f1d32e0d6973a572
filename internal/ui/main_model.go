package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/mdhtml/internal/config"
	"github.com/gubarz/mdhtml/internal/output"
)

// ============================================================================
// String Builder Pool - reduces GC pressure from rendering
// ============================================================================

var builderPool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

func getBuilder() *strings.Builder {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

func putBuilder(b *strings.Builder) {
	if b.Cap() < 64*1024 { // Don't pool huge builders
		builderPool.Put(b)
	}
}

// ============================================================================
// Debounce
// ============================================================================

// filterMsg triggers filtering after debounce
type filterMsg struct{}

// debounceFilter returns a command that triggers filtering after a delay
func debounceFilter() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return filterMsg{}
	})
}

// ============================================================================
// Main Model - Block Browser
// ============================================================================

// previewMode selects what the preview pane shows
type previewMode int

const (
	showHTML   previewMode = iota // Rendered HTML of the selected block
	showSource                    // Markdown source of the selected block
)

// mainModel is the Bubble Tea model for browsing the blocks of a document
type mainModel struct {
	width     int
	height    int
	textInput textinput.Model
	quitting  bool

	name         string // document display name
	items        []blockItem
	filtered     []blockItem
	cursor       int
	offset       int // viewport scroll offset
	mode         previewMode
	previewLines int
	status       string // one-line feedback, cleared on the next key press

	clipboard output.Clipboard
}

// newMainModel creates a new mainModel for the given document
func newMainModel(name, document string, clip output.Clipboard) mainModel {
	ti := textinput.New()
	ti.Placeholder = "Filter blocks..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	items := loadItems(document)
	return mainModel{
		name:         name,
		items:        items,
		filtered:     items,
		textInput:    ti,
		previewLines: config.GetPreviewLines(),
		clipboard:    clip,
	}
}

// Init implements tea.Model
func (m mainModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 4
	case tea.KeyMsg:
		m.status = ""
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	case filterMsg:
		m.filterItems()
		return m, nil
	}

	prevQuery := m.textInput.Value()
	var tiCmd tea.Cmd
	m.textInput, tiCmd = m.textInput.Update(msg)
	cmds = append(cmds, tiCmd)

	// Only trigger debounced filter if query changed
	if m.textInput.Value() != prevQuery {
		cmds = append(cmds, debounceFilter())
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes keyboard input; handled is false for keys that belong
// to the filter input
func (m *mainModel) handleKey(msg tea.KeyMsg) (cmd tea.Cmd, handled bool) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return tea.Quit, true
	case "tab":
		if m.mode == showHTML {
			m.mode = showSource
		} else {
			m.mode = showHTML
		}
	case "ctrl+y":
		m.copySelected()
	case "up", "ctrl+p":
		m.moveCursor(-1)
	case "down", "ctrl+n":
		m.moveCursor(1)
	case "pgup":
		m.moveCursor(-10)
	case "pgdown":
		m.moveCursor(10)
	case "home", "ctrl+a":
		m.cursor = 0
		m.adjustOffset()
	case "end", "ctrl+e":
		m.cursor = max(0, len(m.filtered)-1)
		m.adjustOffset()
	default:
		return nil, false
	}
	return nil, true
}

// copySelected copies the HTML of the selected block to the clipboard
func (m *mainModel) copySelected() {
	item, ok := m.selectedItem()
	switch {
	case !ok:
		return
	case item.err != nil:
		m.status = fmt.Sprintf("block %d has no HTML", item.index)
	case m.clipboard == nil:
		m.status = "clipboard unavailable"
	default:
		if err := m.clipboard.Copy(item.html); err != nil {
			m.status = "copy failed: " + err.Error()
			return
		}
		m.status = fmt.Sprintf("copied block %d", item.index)
	}
}

// selectedItem returns the block under the cursor
func (m mainModel) selectedItem() (blockItem, bool) {
	if m.cursor < len(m.filtered) {
		return m.filtered[m.cursor], true
	}
	return blockItem{}, false
}

// moveCursor moves the cursor by delta, clamping to valid range
func (m *mainModel) moveCursor(delta int) {
	m.cursor += delta
	m.cursor = clamp(m.cursor, 0, max(0, len(m.filtered)-1))
	m.adjustOffset()
}

// adjustOffset ensures cursor is visible within viewport
func (m *mainModel) adjustOffset() {
	viewHeight := max(m.height-m.previewLines-4, 3) // approximate list height
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+viewHeight {
		m.offset = m.cursor - viewHeight + 1
	}
	maxOffset := max(0, len(m.filtered)-viewHeight)
	m.offset = clamp(m.offset, 0, maxOffset)
}

// filterItems filters the block list based on the search query
func (m *mainModel) filterItems() {
	query := strings.TrimSpace(m.textInput.Value())

	if query == "" {
		m.filtered = m.items
	} else {
		words := strings.Fields(strings.ToLower(query))
		m.filtered = make([]blockItem, 0, len(m.items))
		for i := range m.items {
			if m.items[i].matchesQuery(words) {
				m.filtered = append(m.filtered, m.items[i])
			}
		}
	}

	m.cursor = clamp(m.cursor, 0, max(0, len(m.filtered)-1))
	m.adjustOffset()
}

// View implements tea.Model
func (m mainModel) View() string {
	if m.quitting {
		return ""
	}

	width := max(m.width, 80)
	height := max(m.height, 24)

	preview := m.renderPreview(width)
	previewLines := countLines(preview)

	inputLines := 3 // divider + info + input
	listHeight := max(height-previewLines-inputLines, 3)
	list := m.renderList(listHeight, width)
	listLines := countLines(list)

	padding := max(height-previewLines-listLines-inputLines, 0)

	b := getBuilder()
	defer putBuilder(b)
	b.WriteString(preview)
	b.WriteString(list)
	b.WriteString(strings.Repeat("\n", padding))
	b.WriteString(m.renderInput(width))

	return b.String()
}

// renderPreview renders the preview section for the selected block
func (m mainModel) renderPreview(width int) string {
	b := getBuilder()
	defer putBuilder(b)
	lines := 0
	maxLines := m.previewLines

	if item, ok := m.selectedItem(); ok {
		title := fmt.Sprintf("%s #%d %s", m.name, item.index, item.kind)
		b.WriteString(styles.PreviewTitle.Render(title))
		b.WriteString("\n")
		lines++

		var body string
		var style lipgloss.Style
		switch {
		case m.mode == showSource:
			body, style = item.source, styles.PreviewText
		case item.err != nil:
			body, style = item.err.Error(), styles.Error
		default:
			body, style = item.html, styles.PreviewHTML
		}
		body = truncateLines(body, max(maxLines-lines, 1), 0)
		b.WriteString(style.Render(body))
		b.WriteString("\n")
		lines += countLines(body)
	}

	// Pad to fixed height
	for lines < maxLines {
		b.WriteString("\n")
		lines++
	}

	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	return b.String()
}

// renderList renders the scrollable list of blocks
func (m *mainModel) renderList(maxHeight, width int) string {
	if len(m.filtered) == 0 {
		return ""
	}

	start, end := scrollWindow(m.cursor, len(m.filtered), maxHeight, &m.offset)

	b := getBuilder()
	defer putBuilder(b)
	for i := start; i < end; i++ {
		b.WriteString(m.renderListItem(m.filtered[i], i == m.cursor, width))
		b.WriteString("\n")
	}

	return b.String()
}

// renderListItem renders a single list row: index, type and first source line
func (m mainModel) renderListItem(item blockItem, selected bool, width int) string {
	iStyle, tStyle, xStyle := styles.Index, styles.Type, styles.Text
	if item.err != nil {
		tStyle = styles.Error
	}
	if selected {
		iStyle = styles.WithSelection(iStyle)
		tStyle = styles.WithSelection(tStyle)
		xStyle = styles.WithSelection(xStyle)
	}

	index := fmt.Sprintf("%4d ", item.index)
	kind := fmt.Sprintf("%-15s", item.kind)
	textWidth := max(width-len(index)-len(kind)-4, 10)
	text := truncateString(firstLine(item.source), textWidth)

	line := iStyle.Render(index) + tStyle.Render(kind) + xStyle.Render(text)
	if selected {
		return styles.Cursor.Render("▶ ") + line
	}
	return "  " + line
}

// renderInput renders the input section at the bottom
func (m mainModel) renderInput(width int) string {
	b := getBuilder()
	defer putBuilder(b)
	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render(fmt.Sprintf("  %d/%d", len(m.filtered), len(m.items))))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("Tab html/source"))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("Ctrl+Y copy"))
	b.WriteString(" • ")
	b.WriteString(styles.Dim.Render("ESC exit"))
	if m.status != "" {
		b.WriteString(" • ")
		b.WriteString(styles.Cursor.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	return b.String()
}

// ============================================================================
// Run TUI
// ============================================================================

// getTTY returns file handles for TUI input/output
// Uses /dev/tty to bypass shell pipes and command substitution
func getTTY() (in *os.File, out *os.File, cleanup func()) {
	var closers []func()

	// If stdin or stdout is not a terminal (document piped in, or output
	// captured), use /dev/tty
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		out, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			out = os.Stderr // Last resort fallback
		} else {
			closers = append(closers, func() { out.Close() })
		}

		in, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0)
		if err != nil {
			in = os.Stdin
		} else {
			closers = append(closers, func() { in.Close() })
		}

		// Tell lipgloss to use the TTY for color detection
		lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(out))

		return in, out, func() {
			for _, c := range closers {
				c()
			}
		}
	}

	return os.Stdin, os.Stdout, func() {}
}

// isTerminal reports whether f is a character device
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// Run launches the block browser for a document
func Run(name, document string, clip output.Clipboard) error {
	m := newMainModel(name, document, clip)
	if len(m.items) == 0 {
		return fmt.Errorf("no blocks found in %s", name)
	}

	ttyIn, ttyOut, cleanup := getTTY()
	RefreshStyles() // Refresh after getTTY sets up the renderer
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(ttyOut), tea.WithInput(ttyIn))
	_, err := p.Run()
	cleanup()
	return err
}

// ============================================================================
// Helpers
// ============================================================================

// clamp restricts v to the range [minV, maxV]
func clamp(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// countLines counts the number of lines in a string
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// firstLine returns the first line of a string
func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// scrollWindow calculates the visible range for a scrollable list
func scrollWindow(cursor, total, height int, offset *int) (start, end int) {
	if cursor < *offset {
		*offset = cursor
	}
	if cursor >= *offset+height {
		*offset = cursor - height + 1
	}
	maxOffset := max(0, total-height)
	*offset = clamp(*offset, 0, maxOffset)

	start = *offset
	end = min(start+height, total)
	return
}

// truncateString truncates a string to maxLen with ellipsis
func truncateString(s string, maxLen int) string {
	if maxLen <= 3 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// truncateLines truncates text to maxLines with optional maxLen per content
func truncateLines(text string, maxLines int, maxLen int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > maxLines {
		text = strings.Join(lines[:maxLines], "\n") + "..."
	}
	if maxLen > 0 && len(text) > maxLen {
		text = text[:maxLen-3] + "..."
	}
	return text
}
