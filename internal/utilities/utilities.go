package utilities

import (
	"fmt"

	"github.com/currentcolor/currentcolor/internal/palette"
	"github.com/currentcolor/currentcolor/internal/utils"
)

// Custom properties set on every .text-<color> rule.
const (
	PropColor            = "--cc-current-color"
	PropInverted         = "--cc-current-color-inverted"
	PropContrast         = "--cc-current-color-contrast"
	PropContrastInverted = "--cc-current-color-contrast-inverted"
)

const (
	SelectorPrefix  = ".text-"
	CurrentSelector = ".text-current"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a selector with its declarations, in output order.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Value returns the value declared for prop.
func (r Rule) Value(prop string) (string, bool) {
	for _, d := range r.Declarations {
		if d.Property == prop {
			return d.Value, true
		}
	}
	return "", false
}

// Stylesheet is an ordered list of rules.
type Stylesheet []Rule

// Rule looks up a rule by selector.
func (s Stylesheet) Rule(selector string) (Rule, bool) {
	for _, r := range s {
		if r.Selector == selector {
			return r, true
		}
	}
	return Rule{}, false
}

func (s Stylesheet) Map() map[string]map[string]string {
	out := make(map[string]map[string]string, len(s))
	for _, r := range s {
		decls := make(map[string]string, len(r.Declarations))
		for _, d := range r.Declarations {
			decls[d.Property] = d.Value
		}
		out[r.Selector] = decls
	}
	return out
}

// CurrentColorRule is the palette-independent .text-current utility.
func CurrentColorRule() Rule {
	return Rule{
		Selector:     CurrentSelector,
		Declarations: []Declaration{{Property: "color", Value: "currentColor"}},
	}
}

// ColorRule builds the .text-<name> rule for a derived colour.
func ColorRule(name string, d palette.Derived) Rule {
	return Rule{
		Selector: SelectorPrefix + name,
		Declarations: []Declaration{
			{Property: PropColor, Value: d.Color.String()},
			{Property: PropInverted, Value: d.Inverted.String()},
			{Property: PropContrast, Value: d.Contrast.String()},
			{Property: PropContrastInverted, Value: d.ContrastInverted.String()},
		},
	}
}

// Color is a palette colour with its derived variants.
type Color struct {
	Name    string
	Derived palette.Derived
}

// Colors derives every hex colour in cfg, in palette order. Values that are
// not hex colours are skipped. A malformed hex value or a non-string leaf
// fails the whole pass. A repeated name replaces the earlier colour in place.
func Colors(cfg palette.Config, opts Resolved) ([]Color, error) {
	var colors []Color
	index := make(map[string]int)

	for _, entry := range palette.Flatten(cfg) {
		raw, ok := entry.Value.(string)
		if !ok {
			return nil, fmt.Errorf("color %q: %w: unsupported value of type %T", entry.Name, palette.ErrInvalidColorFormat, entry.Value)
		}

		rgb, isHex, err := palette.ParseHex(raw)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", entry.Name, err)
		}
		if !isHex {
			utils.Debug("Skipping %s: %q is not a hex color", entry.Name, raw)
			continue
		}

		c := Color{Name: entry.Name, Derived: palette.Derive(rgb, opts.Contrast)}
		if i, seen := index[c.Name]; seen {
			colors[i] = c
			continue
		}
		index[c.Name] = len(colors)
		colors = append(colors, c)
	}
	return colors, nil
}

// Utilities builds the stylesheet: the .text-current rule followed by one
// .text-<name> rule per colour returned by Colors. A colour named "current"
// adds its custom properties to the .text-current rule.
func Utilities(cfg palette.Config, opts Resolved) (Stylesheet, error) {
	colors, err := Colors(cfg, opts)
	if err != nil {
		return nil, err
	}

	sheet := make(Stylesheet, 0, len(colors)+1)
	sheet = append(sheet, CurrentColorRule())
	for _, c := range colors {
		rule := ColorRule(c.Name, c.Derived)
		// a colour named "current" shares the fixed selector; keep color: currentColor
		if rule.Selector == CurrentSelector {
			utils.Debug("Merging color %q into %s", c.Name, CurrentSelector)
			sheet[0].Declarations = append(sheet[0].Declarations, rule.Declarations...)
			continue
		}
		sheet = append(sheet, rule)
	}

	utils.Debug("Generated %d color utilities", len(colors))
	return sheet, nil
}
