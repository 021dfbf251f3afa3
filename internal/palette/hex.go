package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a colour with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

var (
	Black = MustParseHex("#000")
	White = MustParseHex("#FFF")
)

// String returns the channels separated by spaces ("255 0 0"), the form
// used inside rgb(var(...) / <alpha-value>).
func (c RGB) String() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

// Hex returns the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Invert returns the componentwise complement of c.
func (c RGB) Invert() RGB {
	return RGB{255 - c.R, 255 - c.G, 255 - c.B}
}

// ParseHex parses "#rgb" or "#rrggbb". ok is false, with a nil error, when s
// does not start with '#': such values are not colours this package handles.
func ParseHex(s string) (c RGB, ok bool, err error) {
	if !strings.HasPrefix(s, "#") {
		return RGB{}, false, nil
	}
	hex := s[1:]

	// #abc -> #aabbcc
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}, false, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, false, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
		channels[i] = uint8(v)
	}
	return RGB{channels[0], channels[1], channels[2]}, true, nil
}

// MustParseHex is like ParseHex but panics unless s is a valid hex colour.
func MustParseHex(s string) RGB {
	c, ok, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	if !ok {
		panic(fmt.Sprintf("palette: %q is not a hex color", s))
	}
	return c
}
