package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/chronica/internal/domain"
)

// Config is the top-level application configuration. It only carries
// viewer defaults; the projection core takes everything explicitly.
type Config struct {
	// DefaultView is the view mode used when none is given on the
	// command line: day, week, month, or year.
	DefaultView string `yaml:"default_view"`

	// ItemsFile is the JSON work item collection loaded by default.
	ItemsFile string `yaml:"items_file"`

	// ICSFiles lists iCalendar files merged in as Task-level items.
	ICSFiles []string `yaml:"ics_files"`
}

// DefaultConfig returns the in-memory defaults used when no config file
// exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultView: string(domain.ViewDay),
	}
}

// DefaultPath returns the standard config location, honoring the
// CHRONICA_CONFIG environment variable.
func DefaultPath() (string, error) {
	if p := os.Getenv("CHRONICA_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".chronica", "config.yaml"), nil
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.DefaultView == "" {
		cfg.DefaultView = string(domain.ViewDay)
	}
	if !domain.ValidViewModes[cfg.DefaultView] {
		return nil, fmt.Errorf("config %s: invalid default_view %q", path, cfg.DefaultView)
	}
	return cfg, nil
}
