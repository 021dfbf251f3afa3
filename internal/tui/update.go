package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/currentcolor/currentcolor/internal/utils"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampOffset()
		return m, nil

	case copiedMsg:
		if msg.Err != nil {
			utils.Debug("Copy of %s failed: %v", msg.Name, msg.Err)
			m.status = fmt.Sprintf("copy failed: %v", msg.Err)
			m.statusErr = true
		} else {
			m.status = fmt.Sprintf("copied .text-%s", msg.Name)
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.colors)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0

	case key.Matches(msg, m.keys.Bottom):
		if len(m.colors) > 0 {
			m.cursor = len(m.colors) - 1
		}

	case key.Matches(msg, m.keys.Dark):
		m.dark = !m.dark
		utils.Debug("Preview dark mode: %v", m.dark)

	case key.Matches(msg, m.keys.Copy):
		if c, ok := m.Selected(); ok {
			return m, m.copyCmd(c)
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.clampOffset()
	return m, nil
}
