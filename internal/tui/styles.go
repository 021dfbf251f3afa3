package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/currentcolor/currentcolor/internal/palette"
	"github.com/currentcolor/currentcolor/internal/tui/colors"
)

const (
	SwatchWidth  = 8
	MinNameWidth = 12
	// rows taken by title, blank line, status and help
	chromeHeight = 5
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	NameStyle = lipgloss.NewStyle().
			Foreground(colors.Muted)

	SelectedNameStyle = lipgloss.NewStyle().
			Foreground(colors.Highlight).
			Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(colors.Accent).
			Bold(true)

	HexStyle = lipgloss.NewStyle().
			Foreground(colors.Muted)

	StatusStyle = lipgloss.NewStyle().
			Foreground(colors.StatusOK)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colors.StatusError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colors.Border)
)

func lipglossColor(c palette.RGB) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// SwatchStyle paints label text in fg over a bg block.
func SwatchStyle(bg, fg palette.RGB) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipglossColor(bg)).
		Foreground(lipglossColor(fg)).
		Width(SwatchWidth).
		Align(lipgloss.Center)
}

// BackdropStyle is the page background: the low contrast colour when dark,
// the high one otherwise.
func BackdropStyle(pair palette.ContrastPair, dark bool) lipgloss.Style {
	bg, fg := pair[1], pair[0]
	if dark {
		bg, fg = fg, bg
	}
	return lipgloss.NewStyle().
		Background(lipglossColor(bg)).
		Foreground(lipglossColor(fg))
}
