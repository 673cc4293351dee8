package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"notepad/internal/errors"
	"notepad/internal/log"
)

const (
	// AppDir is the folder created under the user config root
	AppDir = "notepad"
	// FileName is the settings file inside AppDir
	FileName = "config.json"

	MinFontSize = 6
	MaxFontSize = 72
)

// Language is a supported UI language, stored as its two-letter code
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
)

// Languages lists the supported languages in display order.
func Languages() []Language {
	return []Language{English, Spanish, French}
}

// Name returns the language's name in that language.
func (l Language) Name() string {
	switch l {
	case English:
		return "English"
	case Spanish:
		return "Español"
	case French:
		return "Français"
	default:
		return string(l)
	}
}

// Valid reports whether l is one of Languages().
func (l Language) Valid() bool {
	for _, known := range Languages() {
		if l == known {
			return true
		}
	}
	return false
}

// Font names understood by the hosts
const (
	FontDefault   = "Default"
	FontMonospace = "Monospace"
)

// Fonts lists the selectable font names.
func Fonts() []string {
	return []string{FontDefault, FontMonospace}
}

// Settings is the user configuration persisted as config.json.
type Settings struct {
	DarkMode       bool     `json:"dark_mode" yaml:"dark_mode"`               // Dark theme variant
	FontName       string   `json:"font_name" yaml:"font_name"`               // One of Fonts()
	FontSize       float32  `json:"font_size" yaml:"font_size"`               // Editor text size in points
	DefaultPath    string   `json:"default_path" yaml:"default_path"`         // Start folder for file dialogs
	Language       Language `json:"language" yaml:"language"`                 // UI language code
	ConfirmOnClose bool     `json:"confirm_on_close" yaml:"confirm_on_close"` // Prompt before closing the window with unsaved edits
}

// Defaults returns the settings used when nothing is persisted.
func Defaults() Settings {
	return Settings{
		DarkMode:       true,
		FontName:       FontDefault,
		FontSize:       12,
		DefaultPath:    "",
		Language:       English,
		ConfirmOnClose: true,
	}
}

// DefaultPath returns <user config dir>/notepad/config.json.
func DefaultPath() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", errors.NewConfigError("cannot locate user config directory", "", errors.InvalidPath, err)
	}
	return filepath.Join(root, AppDir, FileName), nil
}

// LoadSettings loads settings from the default location.
func LoadSettings() (Settings, error) {
	path, err := DefaultPath()
	if err != nil {
		return Defaults(), err
	}
	return LoadSettingsFile(path)
}

// LoadSettingsFile loads settings from path.
// A missing file yields defaults and no error. Unreadable or malformed content
// yields defaults together with the error so the caller can report it. Fields
// holding invalid values fall back to their defaults one by one; the valid
// ones are kept and the first problem is returned.
func LoadSettingsFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Defaults(), errors.NewConfigError("error reading settings file", path, errors.FileReadFailed, err)
	}

	// Keys absent from the file keep their default values
	s := Defaults()
	if err := json.Unmarshal(data, &s); err != nil {
		return Defaults(), errors.NewConfigError("error parsing settings file", path, errors.MalformedConfig, err)
	}

	return s.Repair()
}

// SaveSettings writes s to path as indented JSON, creating parent directories.
func SaveSettings(s Settings, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewConfigError("failed to create settings directory", path, errors.ConfigWriteFailed, err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.NewConfigError("failed to encode settings", path, errors.ConfigWriteFailed, err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.NewConfigError("failed to write settings file", path, errors.ConfigWriteFailed, err)
	}
	return nil
}

// Validate checks that every field holds a value the hosts can apply.
func (s Settings) Validate() error {
	for _, err := range []error{s.checkLanguage(), s.checkFontSize(), s.checkFontName()} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Repair resets every invalid field to its default and returns the result
// with the first problem found.
func (s Settings) Repair() (Settings, error) {
	d := Defaults()
	var first error
	reset := func(err error, apply func()) {
		if err == nil {
			return
		}
		log.LogWithError(err).Warn("settings field reset to default")
		apply()
		if first == nil {
			first = err
		}
	}

	reset(s.checkLanguage(), func() { s.Language = d.Language })
	reset(s.checkFontSize(), func() { s.FontSize = d.FontSize })
	reset(s.checkFontName(), func() { s.FontName = d.FontName })
	return s, first
}

func (s Settings) checkLanguage() error {
	if s.Language.Valid() {
		return nil
	}
	return errors.NewConfigError("invalid configuration", "language", errors.InvalidConfig,
		fmt.Errorf("unsupported language %q", s.Language))
}

func (s Settings) checkFontSize() error {
	if s.FontSize >= MinFontSize && s.FontSize <= MaxFontSize {
		return nil
	}
	return errors.NewConfigError("invalid configuration", "font_size", errors.InvalidConfig,
		fmt.Errorf("font size %.1f outside [%d, %d]", s.FontSize, MinFontSize, MaxFontSize))
}

func (s Settings) checkFontName() error {
	if knownFont(s.FontName) {
		return nil
	}
	return errors.NewConfigError("invalid configuration", "font_name", errors.InvalidConfig,
		fmt.Errorf("unknown font %q", s.FontName))
}

func knownFont(name string) bool {
	for _, f := range Fonts() {
		if f == name {
			return true
		}
	}
	return false
}
