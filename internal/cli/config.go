package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ghinfo/pkg/ghrepo"
)

// Output formats accepted by the "format" config key and rendered by the
// get command.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Config holds user-level settings read from config.toml. Every field has
// a working default; the file is optional.
type Config struct {
	// APIBaseURL is the API root, overridable for GitHub Enterprise.
	APIBaseURL string `toml:"api_base_url"`

	// UserAgent replaces the default client identifier sent to the API.
	UserAgent string `toml:"user_agent"`

	// TimeoutSeconds bounds each API request. Zero means the library default.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// Format selects the default output style: "pretty" or "json".
	Format string `toml:"format"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		APIBaseURL: ghrepo.DefaultBaseURL,
		Format:     FormatPretty,
	}
}

// DefaultConfigPath returns the standard config file location
// ($XDG_CONFIG_HOME/ghinfo/config.toml, falling back to ~/.config/ghinfo/).
func DefaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error: defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case FormatPretty, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (expected %q or %q)", c.Format, FormatPretty, FormatJSON)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must be non-negative, got %d", c.TimeoutSeconds)
	}
	return nil
}
