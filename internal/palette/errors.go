package palette

import "errors"

var (
	// ErrInvalidColorFormat is returned for values that start with '#' but
	// are not a 3 or 6 digit hex colour.
	ErrInvalidColorFormat = errors.New("invalid hex color")
	// ErrInvalidContrastColor is returned when a configured contrast colour
	// is not a hex colour.
	ErrInvalidContrastColor = errors.New("invalid contrast color")
)
