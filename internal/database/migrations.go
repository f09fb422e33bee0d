package database

import (
	"fmt"

	"github.com/google/uuid"

	"realestate/server/internal/models"
)

// RunMigrations creates or updates the catalog tables.
func (d *Database) RunMigrations() error {
	if err := d.db.AutoMigrate(&models.Property{}, &models.ContactInquiry{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// NewTestDB opens an isolated, migrated in-memory database.
func NewTestDB() (*Database, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	d, err := open(dsn)
	if err != nil {
		return nil, err
	}
	if err := d.RunMigrations(); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}
