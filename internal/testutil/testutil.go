// Package testutil provides fixtures shared by the store, service and HTTP
// tests.
package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"realestate/server/internal/database"
	"realestate/server/internal/models"
)

// SetupTestDB opens an isolated in-memory catalog that is closed when the
// test ends.
func SetupTestDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.NewTestDB()
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { db.Close() })
	return db
}

func Float(v float64) *float64 { return &v }

func Int64(v int64) *int64 { return &v }

func Int(v int) *int { return &v }

func String(v string) *string { return &v }

// SampleProperty returns a located house in Austin
func SampleProperty() models.Property {
	return models.Property{
		Title:         "Test House",
		Description:   "A nice test house",
		Price:         500000,
		Address:       "123 Test St",
		City:          "Austin",
		State:         "TX",
		ZipCode:       "78701",
		Bedrooms:      3,
		Bathrooms:     2.0,
		SquareFootage: 1800,
		PropertyType:  models.PropertyTypeHouse,
		ListingStatus: models.ListingStatusActive,
		Photos:        []string{"https://example.com/photo.jpg"},
		Latitude:      Float(30.2672),
		Longitude:     Float(-97.7431),
	}
}

// FilterProperties returns three listings priced 200000, 500000 and
// 2000000, one in Denver and two in Austin.
func FilterProperties() []models.Property {
	return []models.Property{
		{
			Title:         "Cheap Condo",
			Description:   "Small condo downtown",
			Price:         200000,
			Address:       "1 Main St",
			City:          "Denver",
			State:         "CO",
			ZipCode:       "80202",
			Bedrooms:      1,
			Bathrooms:     1.0,
			SquareFootage: 600,
			PropertyType:  models.PropertyTypeCondo,
			ListingStatus: models.ListingStatusActive,
			Photos:        []string{},
		},
		{
			Title:         "Mid-Range House",
			Description:   "Family home in the suburbs",
			Price:         500000,
			Address:       "50 Oak Ave",
			City:          "Austin",
			State:         "TX",
			ZipCode:       "78701",
			Bedrooms:      3,
			Bathrooms:     2.5,
			SquareFootage: 2000,
			PropertyType:  models.PropertyTypeHouse,
			ListingStatus: models.ListingStatusActive,
			Photos:        []string{},
		},
		{
			Title:         "Luxury Penthouse",
			Description:   "Penthouse with skyline views",
			Price:         2000000,
			Address:       "100 Park Ave",
			City:          "Austin",
			State:         "TX",
			ZipCode:       "78702",
			Bedrooms:      4,
			Bathrooms:     3.5,
			SquareFootage: 3500,
			PropertyType:  models.PropertyTypeCondo,
			ListingStatus: models.ListingStatusSold,
			Photos:        []string{},
		},
	}
}

// InsertProperties stores the given properties and returns their ids in order
func InsertProperties(t *testing.T, db *database.Database, properties ...models.Property) []int64 {
	t.Helper()
	ids := make([]int64, len(properties))
	for i := range properties {
		p := properties[i]
		require.NoError(t, db.CreateProperty(context.Background(), &p))
		ids[i] = p.ID
	}
	return ids
}

// MatchesFilter evaluates f against a single property in memory, using the
// same rules the store applies in SQL.
func MatchesFilter(f models.PropertyFilter, p *models.Property) bool {
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.City != "" && !containsFold(p.City, f.City) {
		return false
	}
	if f.State != "" && !containsFold(p.State, f.State) {
		return false
	}
	if f.Bedrooms != nil && p.Bedrooms < *f.Bedrooms {
		return false
	}
	if f.PropertyType != "" && string(p.PropertyType) != f.PropertyType {
		return false
	}
	if f.Search != "" {
		return containsFold(p.Title, f.Search) ||
			containsFold(p.Description, f.Search) ||
			containsFold(p.Address, f.Search) ||
			containsFold(p.City, f.Search)
	}
	return true
}

func containsFold(value, substr string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(substr))
}
