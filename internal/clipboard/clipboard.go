package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

var clipboardWriteAll = clipboard.WriteAll

var ErrEmpty = errors.New("nothing to copy")

// CopyText puts text on the system clipboard.
func CopyText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmpty
	}
	return clipboardWriteAll(text)
}

// Unsupported reports whether the platform has no clipboard utility.
func Unsupported() bool {
	return clipboard.Unsupported
}
