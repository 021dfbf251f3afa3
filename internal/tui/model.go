package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/currentcolor/currentcolor/internal/clipboard"
	"github.com/currentcolor/currentcolor/internal/utilities"
)

// copiedMsg reports the result of a clipboard copy
type copiedMsg struct {
	Name string
	Err  error
}

// Model is the palette preview
type Model struct {
	colors []utilities.Color
	opts   utilities.Resolved

	cursor int
	offset int // first visible row
	dark   bool

	width  int
	height int

	status    string
	statusErr bool

	keys KeyMap
	help help.Model

	// copy is swapped out in tests
	copy func(string) error
}

// NewModel builds a preview of colors. dark selects the initial backdrop.
func NewModel(colors []utilities.Color, opts utilities.Resolved, dark bool) Model {
	h := help.New()
	h.ShortSeparator = "  "

	keys := Keys
	if clipboard.Unsupported() {
		keys.Copy.SetEnabled(false)
	}

	return Model{
		colors: colors,
		opts:   opts,
		dark:   dark,
		keys:   keys,
		help:   h,
		copy:   clipboard.CopyText,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the colour under the cursor.
func (m Model) Selected() (utilities.Color, bool) {
	if m.cursor < 0 || m.cursor >= len(m.colors) {
		return utilities.Color{}, false
	}
	return m.colors[m.cursor], true
}

// Dark reports whether the dark backdrop is active.
func (m Model) Dark() bool {
	return m.dark
}

func (m Model) copyCmd(c utilities.Color) tea.Cmd {
	copyFn := m.copy
	text := utilities.ColorRule(c.Name, c.Derived).CSS()
	return func() tea.Msg {
		return copiedMsg{Name: c.Name, Err: copyFn(text)}
	}
}

// visibleRows is how many colour rows fit on screen.
func (m Model) visibleRows() int {
	if m.height <= 0 {
		return len(m.colors)
	}
	rows := m.height - chromeHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// clampOffset keeps the cursor inside the visible window.
func (m *Model) clampOffset() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
