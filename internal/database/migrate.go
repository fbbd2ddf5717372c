package database

import (
	"errors"
	"fmt"

	"myflix/internal/models"
	"myflix/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

// Migrate applies the embedded SQL migrations to the database at databaseURL.
func Migrate(databaseURL string) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// AutoMigrate lets gorm create or alter the schema from the models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Video{}); err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}
	return nil
}
