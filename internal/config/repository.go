package config

import (
	"fmt"
	"os"

	"say-to-plan/internal/repository"
	"say-to-plan/internal/repository/memory"
	"say-to-plan/internal/repository/sqlite"
)

// CreateRepository opens the sqlite store described by config, creating its directory.
func CreateRepository(config *Config) (repository.Repository, error) {
	if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.NewWithOptions(config.GetDatabasePath(), StorageOptions(config))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}

// CreateTestRepository creates an in-process repository for testing
func CreateTestRepository() (repository.Repository, error) {
	return memory.New(), nil
}

// StorageOptions maps database timeouts onto sqlite options.
func StorageOptions(config *Config) sqlite.Options {
	return sqlite.Options{
		QueryTimeout: config.Database.QueryTimeout,
		WriteTimeout: config.Database.WriteTimeout,
	}
}
