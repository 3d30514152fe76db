package database

import (
	"fmt"

	"github.com/franciscosanchezn/edu-match/internal/models"
	"gorm.io/gorm"
)

// CreateTables creates the table of every registered model when it is absent.
// It only creates schema and never inserts rows.
func CreateTables(db *gorm.DB) error {
	tables := models.All()
	log.WithField("models", len(tables)).Info("Creating database tables")

	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	log.Info("Database tables ready")
	return nil
}
