package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"realestate/server/internal/models"
)

func TestMatchesFilter(t *testing.T) {
	p := &models.Property{
		Title:        "Luxury Penthouse",
		Description:  "Penthouse with skyline views",
		Address:      "100 Park Ave",
		City:         "Austin",
		State:        "TX",
		Price:        2000000,
		Bedrooms:     4,
		PropertyType: models.PropertyTypeCondo,
	}

	tests := []struct {
		name    string
		filter  models.PropertyFilter
		matches bool
	}{
		{"empty filter", models.PropertyFilter{}, true},
		{"min price inclusive", models.PropertyFilter{MinPrice: Int64(2000000)}, true},
		{"max price below", models.PropertyFilter{MaxPrice: Int64(1999999)}, false},
		{"city substring", models.PropertyFilter{City: "st"}, true},
		{"state mismatch", models.PropertyFilter{State: "CA"}, false},
		{"too few bedrooms", models.PropertyFilter{Bedrooms: Int(5)}, false},
		{"type exact", models.PropertyFilter{PropertyType: "Condo"}, true},
		{"type case differs", models.PropertyFilter{PropertyType: "CONDO"}, false},
		{"search title", models.PropertyFilter{Search: "luxury"}, true},
		{"search address", models.PropertyFilter{Search: "park"}, true},
		{"search misses state", models.PropertyFilter{Search: "tx"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, MatchesFilter(tt.filter, p))
		})
	}
}
