package palette

import "fmt"

// LuminanceThreshold splits dark from light colours on the 0-255 scale
// returned by Luminance.
const LuminanceThreshold = 186

// ContrastPair holds the low-luminance and high-luminance contrast colours.
type ContrastPair [2]RGB

// DefaultContrastPair is black and white.
var DefaultContrastPair = ContrastPair{Black, White}

// ParseContrastPair parses two hex colours into a ContrastPair.
func ParseContrastPair(low, high string) (ContrastPair, error) {
	var pair ContrastPair
	for i, s := range [2]string{low, high} {
		c, ok, err := ParseHex(s)
		if err != nil {
			return ContrastPair{}, fmt.Errorf("%w: %w", ErrInvalidContrastColor, err)
		}
		if !ok {
			return ContrastPair{}, fmt.Errorf("%w: %q is not a hex color", ErrInvalidContrastColor, s)
		}
		pair[i] = c
	}
	return pair, nil
}

// Derived is the set of colours computed for one palette colour.
type Derived struct {
	Color            RGB
	Inverted         RGB
	Contrast         RGB
	ContrastInverted RGB
}

// Luminance is the weighted channel sum 0.299R + 0.587G + 0.114B.
func (c RGB) Luminance() float64 {
	return float64(c.R)*0.299 + float64(c.G)*0.587 + float64(c.B)*0.114
}

// Derive computes the inverted colour and picks the contrast colours for c.
// Dark colours (luminance <= LuminanceThreshold) get the pair reversed so
// that Contrast is the high side.
func Derive(c RGB, pair ContrastPair) Derived {
	if c.Luminance() <= LuminanceThreshold {
		pair[0], pair[1] = pair[1], pair[0]
	}
	return Derived{
		Color:            c,
		Inverted:         c.Invert(),
		Contrast:         pair[0],
		ContrastInverted: pair[1],
	}
}
