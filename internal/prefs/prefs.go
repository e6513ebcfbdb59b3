// Package prefs handles sixcities user preferences persistence.
// Preferences are stored in ~/.config/sixcities/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds what the client remembers between runs. Token is the session
// token returned by the last successful login.
type Prefs struct {
	Theme string `toml:"theme"`
	City  string `toml:"city"`
	Sort  string `toml:"sort"`
	Token string `toml:"token,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/sixcities/prefs.toml"
	defaultTheme     = "Nightfox"
	defaultCity      = "Paris"
	defaultSort      = "popular"
)

// Defaults returns the preferences used on first start.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, City: defaultCity, Sort: defaultSort}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Defaults(), nil // Graceful degradation
	}

	var p Prefs
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Defaults(), nil // Graceful degradation
	}
	return p.withDefaults(), nil
}

// Save writes preferences to the given path, creating directories as needed.
// The file is private to the user since it may hold a session token.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p.withDefaults())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o600); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func (p Prefs) withDefaults() Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	p.City = strings.TrimSpace(p.City)
	p.Sort = strings.TrimSpace(p.Sort)
	p.Token = strings.TrimSpace(p.Token)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	if p.City == "" {
		p.City = defaultCity
	}
	if p.Sort == "" {
		p.Sort = defaultSort
	}
	return p
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
