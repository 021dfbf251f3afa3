package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/currentcolor/currentcolor/internal/palette"
	"github.com/currentcolor/currentcolor/internal/utilities"
)

const title = "currentcolor"

// RenderRow renders one colour: name, the colour with its contrast text,
// and the inverted colour with the inverted contrast text.
func RenderRow(c utilities.Color, nameWidth int, selected bool) string {
	d := c.Derived

	cursor := "  "
	nameStyle := NameStyle
	if selected {
		cursor = CursorStyle.Render("> ")
		nameStyle = SelectedNameStyle
	}

	name := nameStyle.Width(nameWidth).Render(c.Name)
	swatch := SwatchStyle(d.Color, d.Contrast).Render("Aa")
	inverted := SwatchStyle(d.Inverted, d.ContrastInverted).Render("Aa")
	hex := HexStyle.Render(fmt.Sprintf("%s  %s", d.Color.Hex(), d.Inverted.Hex()))

	return lipgloss.JoinHorizontal(lipgloss.Top, cursor, name, " ", swatch, " ", inverted, "  ", hex)
}

func nameWidth(colors []utilities.Color) int {
	w := MinNameWidth
	for _, c := range colors {
		if n := lipgloss.Width(c.Name) + 1; n > w {
			w = n
		}
	}
	return w
}

// RenderSwatches renders every colour, one per line, on the backdrop.
func RenderSwatches(colors []utilities.Color, pair palette.ContrastPair, dark bool) string {
	if len(colors) == 0 {
		return BackdropStyle(pair, dark).Render("no hex colors in palette")
	}

	width := nameWidth(colors)
	lines := make([]string, 0, len(colors))
	for _, c := range colors {
		lines = append(lines, RenderRow(c, width, false))
	}
	return BackdropStyle(pair, dark).Render(strings.Join(lines, "\n"))
}

func (m Model) titleView() string {
	start, end := m.opts.Contrast[1], m.opts.Contrast[0]
	if len(m.colors) > 0 {
		start = m.colors[0].Derived.Color
		end = m.colors[len(m.colors)-1].Derived.Color
	}
	mode := "light"
	if m.dark {
		mode = "dark"
	}
	return TitleStyle.Render(ApplyGradient(title, start, end) + HexStyle.Render(fmt.Sprintf("  %d colors · %s", len(m.colors), mode)))
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.titleView())
	b.WriteString("\n")

	if len(m.colors) == 0 {
		b.WriteString(BackdropStyle(m.opts.Contrast, m.dark).Render("no hex colors in palette"))
	} else {
		width := nameWidth(m.colors)
		end := m.offset + m.visibleRows()
		if end > len(m.colors) {
			end = len(m.colors)
		}
		lines := make([]string, 0, end-m.offset)
		for i := m.offset; i < end; i++ {
			lines = append(lines, RenderRow(m.colors[i], width, i == m.cursor))
		}
		b.WriteString(BackdropStyle(m.opts.Contrast, m.dark).Render(strings.Join(lines, "\n")))
	}
	b.WriteString("\n\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(ErrorStyle.Render(m.status))
		} else {
			b.WriteString(StatusStyle.Render(m.status))
		}
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}
