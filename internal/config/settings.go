package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/currentcolor/currentcolor/internal/utilities"
)

// Settings holds all user-configurable application settings organized by category.
type Settings struct {
	General GeneralSettings `json:"general"`
	Output  OutputSettings  `json:"output"`
}

// GeneralSettings contains generator behavior settings.
type GeneralSettings struct {
	ContrastColors    [2]string `json:"contrast_colors"`
	LogRetentionCount int       `json:"log_retention_count"`
}

const (
	FormatCSS  = "css"
	FormatJSON = "json"
)

// OutputSettings controls where and how generated utilities are written.
type OutputSettings struct {
	Format string `json:"format"`
	Path   string `json:"path"` // empty means stdout
}

// SettingMeta provides metadata for a single setting.
type SettingMeta struct {
	Key         string // JSON key name
	Label       string // Human-readable label
	Description string
	Type        string // "string", "int", "pair"
}

// GetSettingsMetadata returns metadata for all settings organized by category.
func GetSettingsMetadata() map[string][]SettingMeta {
	return map[string][]SettingMeta{
		"General": {
			{Key: "contrast_colors", Label: "Contrast Colors", Description: "Low and high contrast colors as hex, e.g. [\"#000\", \"#FFF\"].", Type: "pair"},
			{Key: "log_retention_count", Label: "Log Retention Count", Description: "Number of recent debug logs to keep.", Type: "int"},
		},
		"Output": {
			{Key: "format", Label: "Format", Description: "Output format of generate: css or json.", Type: "string"},
			{Key: "path", Label: "Path", Description: "File written by generate. Leave empty for stdout.", Type: "string"},
		},
	}
}

// CategoryOrder returns the order of categories for display.
func CategoryOrder() []string {
	return []string{"General", "Output"}
}

// DisplayValue formats the value of the setting with the given JSON key.
func (s *Settings) DisplayValue(key string) (string, bool) {
	switch key {
	case "contrast_colors":
		return strings.Join(s.General.ContrastColors[:], ", "), true
	case "log_retention_count":
		return strconv.Itoa(s.General.LogRetentionCount), true
	case "format":
		return s.Output.Format, true
	case "path":
		if s.Output.Path == "" {
			return "(stdout)", true
		}
		return s.Output.Path, true
	}
	return "", false
}

// DefaultSettings returns a new Settings instance with sensible defaults.
func DefaultSettings() *Settings {
	return &Settings{
		General: GeneralSettings{
			ContrastColors:    utilities.DefaultOptions().ContrastColors,
			LogRetentionCount: 5,
		},
		Output: OutputSettings{
			Format: FormatCSS,
		},
	}
}

// Validate reports settings that generate cannot work with.
func (s *Settings) Validate() error {
	if _, err := s.ToOptions().Resolve(); err != nil {
		return err
	}
	switch s.Output.Format {
	case FormatCSS, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q", s.Output.Format)
	}
	if s.General.LogRetentionCount < 0 {
		return fmt.Errorf("log_retention_count must not be negative")
	}
	return nil
}

// GetSettingsPath returns the path to the settings JSON file.
func GetSettingsPath() string {
	return filepath.Join(GetConfigDir(), "settings.json")
}

// LoadSettings loads settings from disk. Returns defaults if file doesn't exist.
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings() // Start with defaults to fill any missing fields
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// SaveSettings saves settings to disk atomically.
func SaveSettings(s *Settings) error {
	path := GetSettingsPath()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	// Atomic write: write to temp file, then rename
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tempPath, path)
}

// ToOptions converts Settings to generator options
func (s *Settings) ToOptions() utilities.Options {
	return utilities.Options{ContrastColors: s.General.ContrastColors}
}
