package utilities

import "fmt"

// AlphaPlaceholder is substituted by the host with the opacity modifier.
const AlphaPlaceholder = "<alpha-value>"

// ThemeColor is one named colour of the theme extension.
type ThemeColor struct {
	Name  string
	Value string
}

// ThemeColors keeps its colours in declaration order when encoded.
type ThemeColors []ThemeColor

func (c ThemeColors) Map() map[string]string {
	out := make(map[string]string, len(c))
	for _, tc := range c {
		out[tc.Name] = tc.Value
	}
	return out
}

func (c ThemeColors) MarshalJSON() ([]byte, error) {
	obj := make(orderedObject, 0, len(c))
	for _, tc := range c {
		obj = append(obj, member{Key: tc.Name, Value: tc.Value})
	}
	return obj.MarshalJSON()
}

// ThemeExtension encodes as {"theme":{"extend":{"colors":{...}}}}.
type ThemeExtension struct {
	Theme struct {
		Extend struct {
			Colors ThemeColors `json:"colors"`
		} `json:"extend"`
	} `json:"theme"`
}

// Colors returns the extension's colours.
func (t ThemeExtension) Colors() ThemeColors {
	return t.Theme.Extend.Colors
}

func varColor(prop, fallback string) string {
	return fmt.Sprintf("rgb(var(%s, %s) / %s)", prop, fallback, AlphaPlaceholder)
}

// Theme builds the theme extension. Fallbacks come from the contrast pair so
// the colours render before any .text-<color> class applies.
func Theme(opts Resolved) ThemeExtension {
	low := opts.Contrast[0].String()
	high := opts.Contrast[1].String()

	var ext ThemeExtension
	ext.Theme.Extend.Colors = ThemeColors{
		{Name: "current!", Value: "currentColor"},
		{Name: "current", Value: varColor(PropColor, low)},
		{Name: "current-contrast", Value: varColor(PropContrast, high)},
		{Name: "current-inverted", Value: varColor(PropInverted, high)},
		{Name: "current-contrast-inverted", Value: varColor(PropContrastInverted, low)},
	}
	return ext
}
