package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/currentcolor/currentcolor/internal/config"
	"github.com/currentcolor/currentcolor/internal/utilities"
	"github.com/currentcolor/currentcolor/internal/utils"
)

// loadSettings returns the saved settings, or the defaults when they cannot be read
func loadSettings() *config.Settings {
	settings, err := config.LoadSettings()
	if err != nil {
		utils.Debug("Error loading settings, using defaults: %v", err)
		return config.DefaultSettings()
	}
	return settings
}

// parseContrastFlag splits "low,high" into two hex strings
func parseContrastFlag(raw string) ([2]string, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return [2]string{}, fmt.Errorf("--contrast expects two colors separated by a comma, got %q", raw)
	}
	low, high := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if low == "" || high == "" {
		return [2]string{}, fmt.Errorf("--contrast expects two colors separated by a comma, got %q", raw)
	}
	return [2]string{low, high}, nil
}

// resolveOptions merges the --contrast flag over the settings
func resolveOptions(settings *config.Settings, contrast string) (utilities.Resolved, error) {
	opts := settings.ToOptions()
	if contrast != "" {
		pair, err := parseContrastFlag(contrast)
		if err != nil {
			return utilities.Resolved{}, err
		}
		opts.ContrastColors = pair
	}
	return opts.Resolve()
}

// writeOutput renders to stdout when path is empty, otherwise to path via a
// temp file so a failed render never leaves a truncated file behind.
func writeOutput(path string, stdout io.Writer, render func(io.Writer) error) error {
	if path == "" || path == "-" {
		return render(stdout)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tempPath := path + ".tmp"
	f, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(tempPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}
	return os.Rename(tempPath, path)
}

// inputArg returns the palette path argument, defaulting to stdin
func inputArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
