// Package config loads user preferences: defaults, then the YAML file, then
// environment overrides. Command-line flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"foodlist-cli/internal/model"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfig   = "FOODLIST_CONFIG"
	EnvCurrency = "FOODLIST_CURRENCY"
	EnvGlyphs   = "FOODLIST_GLYPHS"
	EnvSpawn    = "FOODLIST_OVERLAY_SPAWN"
	EnvLogLevel = "FOODLIST_LOG_LEVEL"
	EnvLogFmt   = "FOODLIST_LOG_FORMAT"
	EnvLogFile  = "FOODLIST_LOG_FILE"
)

type OverlayConfig struct {
	// EnableSpawn exposes the "pin a floating copy" key. Off by default: the
	// list screen has never offered a way to create floating copies.
	EnableSpawn bool `yaml:"enableSpawn"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type Config struct {
	Currency string        `yaml:"currency"`
	Glyphs   string        `yaml:"glyphs"` // unicode|ascii
	Overlay  OverlayConfig `yaml:"overlay"`
	Logging  LoggingConfig `yaml:"logging"`
}

func Defaults() Config {
	return Config{
		Currency: model.DefaultCurrency,
		Glyphs:   "unicode",
		Logging:  LoggingConfig{Level: "info", Format: "text"},
	}
}

// Path returns the config file location: $FOODLIST_CONFIG, else
// $XDG_CONFIG_HOME/foodlist/config.yaml, else ~/.config/foodlist/config.yaml.
func Path() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return homedir.Expand(p)
	}
	if x := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); x != "" {
		return filepath.Join(x, "foodlist", "config.yaml"), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(home, ".config", "foodlist", "config.yaml"), nil
}

// Load reads path (or Path() when empty). A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config path %s: %w", path, err)
	}

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		var fileCfg Config
		if err := yaml.Unmarshal(b, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		merge(&cfg, fileCfg)
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func (c *Config) Validate() error {
	if f := strings.TrimSpace(c.Logging.File); f != "" {
		expanded, err := homedir.Expand(f)
		if err != nil {
			return fmt.Errorf("log file %s: %w", f, err)
		}
		c.Logging.File = expanded
	}
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if !model.KnownCurrency(c.Currency) {
		return fmt.Errorf("unknown currency: %q", c.Currency)
	}
	switch strings.ToLower(strings.TrimSpace(c.Glyphs)) {
	case "unicode", "ascii":
		c.Glyphs = strings.ToLower(strings.TrimSpace(c.Glyphs))
	default:
		return fmt.Errorf("unknown glyph set: %q (want unicode|ascii)", c.Glyphs)
	}
	return nil
}

func merge(dst *Config, src Config) {
	if strings.TrimSpace(src.Currency) != "" {
		dst.Currency = src.Currency
	}
	if strings.TrimSpace(src.Glyphs) != "" {
		dst.Glyphs = src.Glyphs
	}
	dst.Overlay.EnableSpawn = src.Overlay.EnableSpawn
	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
	if src.Logging.Format != "" {
		dst.Logging.Format = src.Logging.Format
	}
	if src.Logging.File != "" {
		dst.Logging.File = src.Logging.File
	}
}

func applyEnv(c *Config) {
	c.Currency = envOr(EnvCurrency, c.Currency)
	c.Glyphs = envOr(EnvGlyphs, c.Glyphs)
	if v := strings.TrimSpace(os.Getenv(EnvSpawn)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Overlay.EnableSpawn = b
		}
	}
	c.Logging.Level = envOr(EnvLogLevel, c.Logging.Level)
	c.Logging.Format = envOr(EnvLogFmt, c.Logging.Format)
	c.Logging.File = envOr(EnvLogFile, c.Logging.File)
}

func envOr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}
