package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/currentcolor/currentcolor/internal/palette"
)

func toColorful(c palette.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// ApplyGradient colours each rune of a single-line string, blending from
// start to end in Lab space.
func ApplyGradient(text string, start, end palette.RGB) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}

	from, to := toColorful(start), toColorful(end)

	var sb strings.Builder
	for i, r := range runes {
		// t in [0, 1]; a single rune gets the start colour
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		hex := from.BlendLab(to, t).Clamped().Hex()
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true).Render(string(r)))
	}
	return sb.String()
}
