// Package utilities turns a colour palette into the current-colour utility
// rules and the matching theme extension.
package utilities

import "github.com/currentcolor/currentcolor/internal/palette"

// Options are the user-facing generator options.
type Options struct {
	// ContrastColors is the [low, high] contrast pair as hex strings.
	ContrastColors [2]string `json:"contrast_colors"`
}

// DefaultOptions returns black and white contrast colours.
func DefaultOptions() Options {
	return Options{ContrastColors: [2]string{"#000", "#FFF"}}
}

// Resolved holds parsed options shared by Utilities and Theme.
type Resolved struct {
	Contrast palette.ContrastPair
}

// Resolve parses the options. An unset pair falls back to the defaults.
func (o Options) Resolve() (Resolved, error) {
	colors := o.ContrastColors
	if colors == [2]string{} {
		colors = DefaultOptions().ContrastColors
	}
	pair, err := palette.ParseContrastPair(colors[0], colors[1])
	if err != nil {
		return Resolved{}, err
	}
	return Resolved{Contrast: pair}, nil
}
