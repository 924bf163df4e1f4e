// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tesso57/sanita/internal/application/settings"
	"github.com/tesso57/sanita/internal/application/usecase"
	"gopkg.in/yaml.v3"
)

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// DefaultPath returns ~/.config/sanita/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sanita", "config.yaml"), nil
}

// Load loads the configuration from the specified path or default location.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := settings.Settings{}
	store := &Store{Settings: cfg, configPath: configPath}

	var options []kong.Option

	// Only add configuration loader if file exists
	if _, err := os.Stat(configPath); err == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}

	_, err = parser.Parse([]string{})
	if err != nil {
		return nil, err
	}

	store.Settings = normalize(cfg)

	// Save defaults if new file
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return store, nil
}

func normalize(s settings.Settings) settings.Settings {
	s.API.BaseURL = strings.TrimSpace(s.API.BaseURL)
	s.API.UserAgent = strings.TrimSpace(s.API.UserAgent)
	if s.API.RequestsPerSecond < 0 {
		s.API.RequestsPerSecond = 0
	}
	if s.FeaturedCount <= 0 {
		s.FeaturedCount = usecase.DefaultFeaturedCount
	}
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	s.LogFile = strings.TrimSpace(s.LogFile)
	if s.LogFile == "" {
		s.LogFile = filepath.Join(defaultStateHome(), "sanita", "sanita.log")
	}
	return s
}

func defaultStateHome() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return stateHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		// Both kebab and snake spellings of the flag are accepted.
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := lookupPath(values, name); ok {
				return scalar(v), nil
			}
		}
		return nil, nil
	}
	return f, nil
}

// scalar hands kong yaml scalars as text so its own mappers decode them.
// yaml reads "0" as an int, which kong cannot assign to a float64 field.
func scalar(v any) any {
	switch v.(type) {
	case nil, string, map[string]any, []any:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// lookupPath resolves "a.b.c" against nested yaml maps, falling back to a flat key.
func lookupPath(values map[string]any, name string) (any, bool) {
	if v, ok := values[name]; ok {
		return v, true
	}
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return nil, false
	}
	curr := values
	for i, part := range parts {
		if i == len(parts)-1 {
			v, ok := curr[part]
			return v, ok
		}
		next, ok := curr[part].(map[string]any)
		if !ok {
			return nil, false
		}
		curr = next
	}
	return nil, false
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.configPath
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	f, err := os.Create(s.configPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(s.Settings)
}
