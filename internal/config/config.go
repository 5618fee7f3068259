package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/bitregion/internal/pipeline"
)

var ErrInvalidConfig = errors.New("invalid config")

// RegionTool holds all configuration for the regiontool command.
type RegionTool struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Jobs run concurrently, at most Workers at a time.
	Workers int           `yaml:"workers"`
	Timeout time.Duration `yaml:"timeout"` // whole run deadline; 0 means none

	// Job i draws randomness from PCG(Seed, i).
	Seed uint64 `yaml:"seed"`

	// Rendering
	OnChar  string `yaml:"on_char"`
	OffChar string `yaml:"off_char"`
	Print   bool   `yaml:"print"`

	// Store saves every result to the database.
	Store    bool           `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`

	Jobs []pipeline.Job `yaml:"jobs"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultRegionTool returns RegionTool config with sensible defaults.
func DefaultRegionTool() RegionTool {
	return RegionTool{
		LogLevel: "info",
		Workers:  4,
		Seed:     1,
		OnChar:   "#",
		OffChar:  ".",
		Print:    true,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "bitregion",
			Password: "bitregion",
			DBName:   "bitregion",
			SSLMode:  "disable",
		},
	}
}

// LoadRegionTool loads regiontool config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadRegionTool(path string) (RegionTool, error) {
	cfg := DefaultRegionTool()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the fields the loader cannot type-check.
func (c RegionTool) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", c.Workers, ErrInvalidConfig)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("negative timeout %s: %w", c.Timeout, ErrInvalidConfig)
	}
	if _, _, err := c.Runes(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(c.Jobs))
	for i, j := range c.Jobs {
		if j.Name == "" {
			return fmt.Errorf("job %d has no name: %w", i, ErrInvalidConfig)
		}
		if _, ok := seen[j.Name]; ok {
			return fmt.Errorf("duplicate job %q: %w", j.Name, ErrInvalidConfig)
		}
		seen[j.Name] = struct{}{}
	}
	return nil
}

// Runes returns the render characters for on and off cells.
func (c RegionTool) Runes() (on, off rune, err error) {
	o, f := []rune(c.OnChar), []rune(c.OffChar)
	if len(o) != 1 || len(f) != 1 {
		return 0, 0, fmt.Errorf("on_char %q and off_char %q must be single characters: %w",
			c.OnChar, c.OffChar, ErrInvalidConfig)
	}
	return o[0], f[0], nil
}
