// Package source reads colour palettes from JSON or YAML documents.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/currentcolor/currentcolor/internal/palette"
)

type Format string

const (
	FormatUnknown Format = "unknown"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	// FormatSniff means the format is decided from the content (stdin).
	FormatSniff Format = "sniff"
)

// Stdin is the path argument that reads from standard input.
const Stdin = "-"

var ErrUnsupportedFormat = errors.New("unsupported palette format")

func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

// Detect picks the format from the file extension.
func Detect(path string) Format {
	p := Normalize(path)
	if p == Stdin {
		return FormatSniff
	}
	switch strings.ToLower(filepath.Ext(p)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

func IsSupported(path string) bool {
	return Detect(path) != FormatUnknown
}

// Sniff guesses the format from the first non-space byte.
func Sniff(data []byte) Format {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return FormatJSON
	}
	return FormatYAML
}

// Open reads and resolves the palette at path. "-" reads stdin.
func Open(path string, stdin io.Reader) (palette.Config, error) {
	path = Normalize(path)
	format := Detect(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	var r io.Reader
	if path == Stdin {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open palette: %w", err)
		}
		defer f.Close()
		r = bufio.NewReader(f)
	}

	cfg, err := Load(r, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Load decodes a document and returns its palette. A document with a
// top-level "theme" key is treated as a resolved framework config: the
// palette is theme.colors with theme.extend.colors merged over it.
func Load(r io.Reader, format Format) (palette.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if format == FormatSniff {
		format = Sniff(data)
	}

	var doc palette.Config
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		if len(bytes.TrimSpace(data)) == 0 {
			return palette.Config{}, nil
		}
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	return Resolve(doc), nil
}

// Resolve extracts the palette from a decoded document.
func Resolve(doc palette.Config) palette.Config {
	theme, ok := doc.Section("theme")
	if !ok {
		return doc
	}
	colors, _ := theme.Section("colors")
	if extend, ok := theme.Section("extend"); ok {
		if extra, ok := extend.Section("colors"); ok {
			colors = colors.Merge(extra)
		}
	}
	return colors
}
