package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the global flags shared by every command. It is embedded into
// the kong CLI struct, so each field is also settable from the environment.
type Config struct {
	Server    string        `help:"Base URL of the meal planner server." env:"MEALPLAN_SERVER" default:"http://localhost:5000"`
	DB        string        `help:"SQLite database path used by 'serve' and 'init'." env:"MEALPLAN_DB" default:"~/.config/mealplan/meal_planner.db"`
	Addr      string        `help:"Listen address for 'serve'." env:"MEALPLAN_ADDR" default:"0.0.0.0:5000"`
	ConfigDir string        `help:"Directory for logs." env:"MEALPLAN_CONFIG_DIR" default:"~/.config/mealplan"`
	Timeout   time.Duration `help:"HTTP request timeout." env:"MEALPLAN_TIMEOUT" default:"10s"`
	LogLevel  string        `help:"Minimum log level." env:"MEALPLAN_LOG_LEVEL" default:"info" enum:"debug,info,warn,error"`
	Debug     bool          `help:"Enable debug logging." env:"MEALPLAN_DEBUG"`
}

// LoadEnv loads .env files into the process environment. Missing files are
// ignored; variables already set win over file values.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Normalize expands "~" in path fields and trims the server URL.
func (c *Config) Normalize() error {
	var err error
	if c.DB, err = ExpandPath(c.DB); err != nil {
		return err
	}
	if c.ConfigDir, err = ExpandPath(c.ConfigDir); err != nil {
		return err
	}
	c.Server = strings.TrimRight(strings.TrimSpace(c.Server), "/")
	return nil
}

// Validate checks the fields the client depends on.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server)
	if err != nil {
		return fmt.Errorf("invalid server URL %q: %w", c.Server, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid server URL %q: scheme must be http or https", c.Server)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid server URL %q: missing host", c.Server)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
