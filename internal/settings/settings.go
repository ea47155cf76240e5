// Package settings persists user preferences in a YAML file.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds user preferences.
type Settings struct {
	Theme   string          `yaml:"theme"`
	Zoom    float64         `yaml:"zoom"`
	Dex     string          `yaml:"dex"`
	Toggles map[string]bool `yaml:"toggles,omitempty"`
}

// Default returns the preferences used when no file exists.
func Default() Settings {
	return Settings{
		Theme:   "system",
		Zoom:    1.0,
		Dex:     "national",
		Toggles: map[string]bool{},
	}
}

// Load reads settings from path. A missing or empty file yields defaults.
func Load(path string) (*Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &s, nil
		}
		return nil, fmt.Errorf("settings: reading %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("settings: parsing %s: %w", path, err)
	}
	if s.Toggles == nil {
		s.Toggles = map[string]bool{}
	}
	return &s, nil
}

// Save writes settings to path, creating its directory.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("settings: create dir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Get returns a preference by key: theme, zoom, dex or toggle.<name>.
func (s *Settings) Get(key string) (string, error) {
	switch {
	case key == "theme":
		return s.Theme, nil
	case key == "zoom":
		return strconv.FormatFloat(s.Zoom, 'f', -1, 64), nil
	case key == "dex":
		return s.Dex, nil
	case strings.HasPrefix(key, "toggle."):
		return strconv.FormatBool(s.Toggles[strings.TrimPrefix(key, "toggle.")]), nil
	}
	return "", fmt.Errorf("unknown setting %q", key)
}

// Set updates a preference by key, validating the value.
func (s *Settings) Set(key, value string) error {
	switch {
	case key == "theme":
		if value != "light" && value != "dark" && value != "system" {
			return fmt.Errorf("invalid theme %q (valid: light, dark, system)", value)
		}
		s.Theme = value
	case key == "zoom":
		z, err := strconv.ParseFloat(value, 64)
		if err != nil || z <= 0 {
			return fmt.Errorf("invalid zoom %q", value)
		}
		s.Zoom = z
	case key == "dex":
		if value == "" {
			return errors.New("dex cannot be empty")
		}
		s.Dex = value
	case strings.HasPrefix(key, "toggle."):
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid toggle value %q", value)
		}
		if s.Toggles == nil {
			s.Toggles = map[string]bool{}
		}
		s.Toggles[strings.TrimPrefix(key, "toggle.")] = b
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// Keys lists every settable key currently known.
func (s *Settings) Keys() []string {
	keys := []string{"theme", "zoom", "dex"}
	var toggles []string
	for name := range s.Toggles {
		toggles = append(toggles, "toggle."+name)
	}
	sort.Strings(toggles)
	return append(keys, toggles...)
}
