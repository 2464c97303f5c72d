package config

import (
	"fmt"
	"os"

	"timeline-tracker/internal/repository/sqlite"
)

// CreateRepository creates the store described by the configuration, making
// sure the database directory exists first.
func CreateRepository(cfg *Config) (*sqlite.SQLiteRepository, error) {
	if err := os.MkdirAll(cfg.Database.Dir, os.FileMode(cfg.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.New(cfg.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}
