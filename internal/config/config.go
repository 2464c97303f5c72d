package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration options for the timeline tracker application
type Config struct {
	Database    DatabaseConfig
	Source      SourceConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TL_DB_DIR"`
	Filename       string        `env:"TL_DB_FILENAME" envDefault:"tl.db"`
	QueryTimeout   time.Duration `env:"TL_DB_QUERY_TIMEOUT" envDefault:"10s"`
	WriteTimeout   time.Duration `env:"TL_DB_WRITE_TIMEOUT" envDefault:"5s"`
	DirPermissions uint32        `env:"TL_DB_DIR_PERMISSIONS" envDefault:"493"` // 0755
}

// SourceConfig holds schedule import source configuration
type SourceConfig struct {
	CSVPath string `env:"TL_SOURCE_CSV"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TL_APP_TIMEOUT" envDefault:"60s"`
	Verbose bool          `env:"TL_APP_VERBOSE" envDefault:"false"`
}

// Load builds the configuration from defaults overridden by environment
// variables, then validates it. Command line flags are layered on top by
// cobra afterwards.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.Database.Dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, &ConfigError{Field: "database.dir", Message: "cannot resolve home directory: " + err.Error()}
		}
		cfg.Database.Dir = filepath.Join(homeDir, ".tl")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
