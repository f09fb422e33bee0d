package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"realestate/server/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// driverName is the go-sqlite3 driver with the catalog's SQL functions
// registered on every connection.
const driverName = "sqlite3_catalog"

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			// SQLite's LOWER only folds ASCII letters.
			return conn.RegisterFunc("fold", strings.ToLower, true)
		},
	})
}

type Database struct {
	db *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	return open("file:" + dbPath + "?_foreign_keys=on")
}

func open(dsn string) (*Database, error) {
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: driverName, DSN: dsn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite serialises writers; a single connection keeps the
	// check-then-insert transaction free of SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	return &Database{db: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateProperty inserts a listing and fills in its assigned ID.
func (d *Database) CreateProperty(ctx context.Context, p *models.Property) error {
	if err := d.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

// SeedProperties inserts all properties in one transaction. Either every
// record is stored or none is.
func (d *Database) SeedProperties(ctx context.Context, properties []models.Property) (int, error) {
	if len(properties) == 0 {
		return 0, nil
	}

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range properties {
			if err := tx.Create(&properties[i]).Error; err != nil {
				return fmt.Errorf("failed to seed property %d (%q): %w", i, properties[i].Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(properties), nil
}

func (d *Database) CountProperties(ctx context.Context) (int64, error) {
	var count int64
	if err := d.db.WithContext(ctx).Model(&models.Property{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return count, nil
}

// FindProperties returns the properties matching every criterion in the
// filter, ordered by ascending id.
func (d *Database) FindProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	query := d.db.WithContext(ctx).Model(&models.Property{})
	for _, p := range compileFilter(filter) {
		query = query.Where(p.sql, p.args...)
	}

	properties := []models.Property{}
	if err := query.Order("id ASC").Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	return properties, nil
}

// FindPropertyByID returns ErrNotFound when no property has the given id.
func (d *Database) FindPropertyByID(ctx context.Context, id int64) (*models.Property, error) {
	var p models.Property
	err := d.db.WithContext(ctx).Where("id = ?", id).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get property %d: %w", id, err)
	}
	return &p, nil
}

// CreateInquiry verifies the referenced property exists and inserts the
// inquiry within the same transaction. It returns ErrNotFound, and writes
// nothing, when the property is missing.
func (d *Database) CreateInquiry(ctx context.Context, inquiry *models.ContactInquiry) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := propertyExists(tx, inquiry.PropertyID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		if err := tx.Create(inquiry).Error; err != nil {
			return fmt.Errorf("failed to insert inquiry: %w", err)
		}
		return nil
	})
}

// ListInquiries returns the inquiries for one property, oldest first.
// ErrNotFound is returned when the property does not exist.
func (d *Database) ListInquiries(ctx context.Context, propertyID int64) ([]models.ContactInquiry, error) {
	inquiries := []models.ContactInquiry{}
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := propertyExists(tx, propertyID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		if err := tx.Where("property_id = ?", propertyID).Order("id ASC").Find(&inquiries).Error; err != nil {
			return fmt.Errorf("failed to list inquiries: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inquiries, nil
}

func propertyExists(tx *gorm.DB, id int64) (bool, error) {
	var count int64
	if err := tx.Model(&models.Property{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check property %d: %w", id, err)
	}
	return count > 0, nil
}
