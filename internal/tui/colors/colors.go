package colors

import "github.com/charmbracelet/lipgloss"

// === Interface Palette ===
// Chrome colours only. Swatches always use the palette's own colours.
var (
	Accent    = lipgloss.AdaptiveColor{Light: "#5d40c9", Dark: "#bd93f9"}
	Highlight = lipgloss.AdaptiveColor{Light: "#d10074", Dark: "#ff79c6"}
	Border    = lipgloss.AdaptiveColor{Light: "#d0d0d0", Dark: "#44475a"}
	Muted     = lipgloss.AdaptiveColor{
		Light: "#4a4a4a",
		Dark:  "#a9b1d6",
	} // secondary text
)

// === Status Colors ===
var (
	StatusError = lipgloss.AdaptiveColor{Light: "#d32f2f", Dark: "#ff5555"}
	StatusOK    = lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#50fa7b"}
)
