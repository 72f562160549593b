package cmd

import (
	"fmt"

	"monument-catalog/core/config"
	"monument-catalog/core/database"
	"monument-catalog/core/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles what every command needs.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
}

// loadRuntime loads the configuration and builds the logger.
func loadRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &runtime{cfg: cfg, logger: l}, nil
}

// openDatabase connects to the catalog database.
func (r *runtime) openDatabase() (*gorm.DB, error) {
	db, err := database.Connect(r.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
