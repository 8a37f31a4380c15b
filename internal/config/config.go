package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
)

// Storage backend names accepted by [storage] backend.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Duration wraps time.Duration so TOML files can spell delays as "3s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds all configuration options for the task manager application
type Config struct {
	Storage       StorageConfig       `toml:"storage"`
	Display       DisplayConfig       `toml:"display"`
	Notifications NotificationsConfig `toml:"notifications"`
	Logging       LoggingConfig       `toml:"logging"`
}

// StorageConfig selects and locates the durable slot backend
type StorageConfig struct {
	Backend string `toml:"backend" env:"TM_BACKEND"`
	Path    string `toml:"path" env:"TM_DB_PATH"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateTimeFormat string `toml:"datetime_format" env:"TM_DATETIME_FORMAT"`
}

// NotificationsConfig controls transient feedback behaviour
type NotificationsConfig struct {
	DismissAfter Duration `toml:"dismiss_after" env:"TM_NOTIFY_DELAY"`
}

// LoggingConfig holds logger construction options
type LoggingConfig struct {
	Level  string `toml:"level" env:"TM_LOG_LEVEL"`
	Format string `toml:"format" env:"TM_LOG_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".task-manager")

	return &Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Path:    filepath.Join(defaultDir, "tasks.db"),
		},
		Display: DisplayConfig{
			DateTimeFormat: domain.DisplayDateTimeFormat,
		},
		Notifications: NotificationsConfig{
			DismissAfter: Duration{3 * time.Second},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultConfigFile returns the conventional config file location
func DefaultConfigFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".task-manager", "config.toml")
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return expandPath(c.Storage.Path)
}

// GetDismissAfter returns how long a notification stays visible
func (c *Config) GetDismissAfter() time.Duration {
	return c.Notifications.DismissAfter.Duration
}

// LoadFromEnvironment loads configuration from TM_* environment variables
func (c *Config) LoadFromEnvironment() {
	if backend := os.Getenv("TM_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if path := os.Getenv("TM_DB_PATH"); path != "" {
		c.Storage.Path = path
	}
	if format := os.Getenv("TM_DATETIME_FORMAT"); format != "" {
		c.Display.DateTimeFormat = format
	}
	if delay := os.Getenv("TM_NOTIFY_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil {
			c.Notifications.DismissAfter = Duration{d}
		}
	}
	if level := os.Getenv("TM_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("TM_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendMemory:
	default:
		return errors.NewConfigurationError(fmt.Sprintf("storage.backend: unknown backend %q (expected sqlite or memory)", c.Storage.Backend))
	}
	if c.Storage.Backend == BackendSQLite && strings.TrimSpace(c.Storage.Path) == "" {
		return errors.NewConfigurationError("storage.path: database path cannot be empty")
	}
	if c.Display.DateTimeFormat == "" {
		return errors.NewConfigurationError("display.datetime_format: display format cannot be empty")
	}
	if c.Notifications.DismissAfter.Duration <= 0 {
		return errors.NewConfigurationError("notifications.dismiss_after: dismiss delay must be positive")
	}
	if !logging.KnownLevel(c.Logging.Level) {
		return errors.NewConfigurationError(fmt.Sprintf("logging.level: unknown log level %q", c.Logging.Level))
	}
	if !logging.KnownFormat(c.Logging.Format) {
		return errors.NewConfigurationError(fmt.Sprintf("logging.format: unknown log format %q", c.Logging.Format))
	}
	return nil
}

// expandPath resolves a leading ~ against the user home directory
func expandPath(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}
