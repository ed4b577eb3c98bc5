package database

import (
	"fmt"
	"log/slog" // use slog for structured logging

	"journalhub/internal/config"
	"journalhub/internal/http-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and bootstraps the schema. Bootstrap is an
// explicit startup step, never an import-time side effect, and AutoMigrate is
// idempotent so restarts are safe.
func Connect(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	// Verify the connection
	if err := sqlDB.Ping(); err != nil {
		// close the handle if ping fails to avoid a resource leak
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Journal{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	logger.Info("connected to the database", "tables", []string{
		models.User{}.TableName(),
		models.Journal{}.TableName(),
	})
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
