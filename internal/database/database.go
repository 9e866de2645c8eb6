// File: internal/database/database.go
package database

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dcastano/go-shopchat/internal/domain"
)

// Open connects to the store described by databaseURL. A postgres:// URL
// selects the postgres driver; anything else is treated as a sqlite file
// path (the default deployment is a local file-backed database).
func Open(databaseURL string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		dialector = postgres.Open(databaseURL)
	default:
		dialector = sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the two tables idempotently at startup.
// There is no versioned migration system.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Product{}, &domain.ChatMessage{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}
