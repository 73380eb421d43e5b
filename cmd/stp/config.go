package main

import (
	"fmt"
	"os"

	"say-to-plan/internal/config"
	"say-to-plan/internal/repository"
	"say-to-plan/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment) *RepositoryFactory {
	return &RepositoryFactory{env: env}
}

// CreateRepository opens the repository for the factory's environment.
func (rf *RepositoryFactory) CreateRepository(cfg *config.Config) (repository.Repository, error) {
	switch rf.env {
	case Development:
		return rf.open("stp.db", cfg)
	case Testing:
		return config.CreateTestRepository()
	default:
		return config.CreateRepository(cfg)
	}
}

// open uses a database path outside the configured directory.
func (rf *RepositoryFactory) open(dbPath string, cfg *config.Config) (repository.Repository, error) {
	repo, err := sqlite.NewWithOptions(dbPath, config.StorageOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s database: %w", rf.env, err)
	}
	return repo, nil
}

// getEnvironment reads STP_ENV, defaulting to production.
func getEnvironment() Environment {
	switch Environment(os.Getenv("STP_ENV")) {
	case Development:
		return Development
	case Testing:
		return Testing
	default:
		return Production
	}
}
