// Package config loads planboard settings from an optional TOML file with
// PLANBOARD_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/notify"
	"github.com/alexanderramin/planboard/internal/remote"
)

const (
	DefaultDirName        = ".planboard"
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "planboard.db"
)

type APIConfig struct {
	BaseURL   string `toml:"base_url"`
	TimeoutMs int    `toml:"timeout_ms"`
	LogCalls  bool   `toml:"log_calls"`
}

type BoardConfig struct {
	Days              int `toml:"days"`
	DuplicatePriority int `toml:"duplicate_priority"`
}

type NotifyConfig struct {
	TimeoutMs  int `toml:"timeout_ms"`
	MaxVisible int `toml:"max_visible"`
}

type Config struct {
	DBPath   string       `toml:"db_path"`
	LogLevel string       `toml:"log_level"`
	API      APIConfig    `toml:"api"`
	Board    BoardConfig  `toml:"board"`
	Notify   NotifyConfig `toml:"notifications"`
}

// Default returns the built-in settings. dir is the planboard home used for
// the snapshot database.
func Default(dir string) Config {
	rc := remote.DefaultConfig()
	nc := notify.DefaultConfig()
	return Config{
		DBPath:   filepath.Join(dir, DefaultDBName),
		LogLevel: "warn",
		API: APIConfig{
			BaseURL:   rc.BaseURL,
			TimeoutMs: rc.TimeoutMs,
			LogCalls:  rc.LogCalls,
		},
		Board: BoardConfig{
			Days:              4,
			DuplicatePriority: domain.DefaultDuplicatePriority,
		},
		Notify: NotifyConfig{
			TimeoutMs:  int(nc.Timeout / time.Millisecond),
			MaxVisible: nc.MaxVisible,
		},
	}
}

// HomeDir returns PLANBOARD_HOME, or ~/.planboard.
func HomeDir() (string, error) {
	if v := os.Getenv("PLANBOARD_HOME"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, DefaultDirName), nil
}

// ResolvePath returns PLANBOARD_CONFIG, or config.toml inside dir.
func ResolvePath(dir string) string {
	if v := os.Getenv("PLANBOARD_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(dir, DefaultConfigFileName)
}

// Load reads the config file at path over the defaults, then applies the
// environment. A missing file is not an error.
func Load(path, dir string) (Config, error) {
	cfg := Default(dir)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	ApplyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Write stores cfg at path, creating the directory when needed.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ApplyEnv overrides cfg from PLANBOARD_* variables. Unparseable numbers and
// booleans are ignored.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("PLANBOARD_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PLANBOARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PLANBOARD_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("PLANBOARD_API_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.API.TimeoutMs = n
		}
	}
	if v := os.Getenv("PLANBOARD_API_LOG_CALLS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.API.LogCalls = b
		}
	}
	if v := os.Getenv("PLANBOARD_BOARD_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Board.Days = n
		}
	}
}

// Validate rejects settings the board cannot run with.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.Board.Days < 1 || c.Board.Days > 14 {
		return fmt.Errorf("board.days must be between 1 and 14, got %d", c.Board.Days)
	}
	if p := c.Board.DuplicatePriority; p < domain.MinPriority || p > domain.MaxPriority {
		return fmt.Errorf("board.duplicate_priority must be between %d and %d, got %d", domain.MinPriority, domain.MaxPriority, p)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Remote returns the server client settings.
func (c Config) Remote() remote.Config {
	return remote.Config{
		BaseURL:   c.API.BaseURL,
		TimeoutMs: c.API.TimeoutMs,
		LogCalls:  c.API.LogCalls,
	}
}

// Notifications returns the toast settings.
func (c Config) Notifications() notify.Config {
	return notify.Config{
		Timeout:    time.Duration(c.Notify.TimeoutMs) * time.Millisecond,
		MaxVisible: c.Notify.MaxVisible,
	}
}

// ParseLevel maps a level name onto slog.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
