package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	customerrors "github.com/axellelanca/linkboard/internal/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultConfigDir is where LoadConfig looks for config.yaml.
const DefaultConfigDir = "./configs"

// Config represents the main structure mapping the entire application configuration.
// This struct uses mapstructure tags to map YAML keys to Go struct fields.
type Config struct {
	Server struct {
		Port    int    `mapstructure:"port"`     // HTTP server port (default: 8080)
		BaseURL string `mapstructure:"base_url"` // Public base URL of the board
	} `mapstructure:"server"`

	Database DatabaseConfig `mapstructure:"database"`

	// Monitor configuration for link reachability checks
	Monitor struct {
		Enabled         bool `mapstructure:"enabled"`
		IntervalSeconds int  `mapstructure:"interval_seconds"`
	} `mapstructure:"monitor"`

	Log struct {
		Level       string `mapstructure:"level"`       // debug, info, warn, error
		Development bool   `mapstructure:"development"` // console encoder instead of JSON
	} `mapstructure:"log"`
}

// DatabaseConfig selects the storage driver. Name is the SQLite file, DSN the
// Postgres connection string.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	Name   string `mapstructure:"name"`
	DSN    string `mapstructure:"dsn"`
}

// MonitorInterval returns the configured period between reachability checks.
func (c *Config) MonitorInterval() time.Duration {
	return time.Duration(c.Monitor.IntervalSeconds) * time.Second
}

// LoadConfig loads configuration from ./configs/config.yaml, the environment and defaults.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(DefaultConfigDir)
}

// LoadConfigFrom loads the application configuration using Viper.
// Precedence: environment (including a local .env file) > config.yaml in dir > defaults.
func LoadConfigFrom(dir string) (*Config, error) {
	// A missing .env is the normal case outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// e.g., "server.port" becomes "SERVER_PORT"
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.name", "linkboard.db")
	v.SetDefault("database.dsn", "")
	v.SetDefault("monitor.enabled", true)
	v.SetDefault("monitor.interval_seconds", 300)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// Any other error (permissions, malformed YAML, etc.) is fatal
			return nil, customerrors.ErrConfigLoad{Path: dir, Reason: err.Error()}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Name == "" {
			return fmt.Errorf("database.name is required for the sqlite driver")
		}
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("database.driver %q: %w", c.Database.Driver, customerrors.ErrUnsupportedDriver)
	}
	if c.Monitor.Enabled && c.Monitor.IntervalSeconds <= 0 {
		return fmt.Errorf("monitor.interval_seconds must be positive, got %d", c.Monitor.IntervalSeconds)
	}
	return nil
}
