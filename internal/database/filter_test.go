package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate/server/internal/models"
	"realestate/server/internal/testutil"
)

func propertyIDs(properties []models.Property) []int64 {
	ids := make([]int64, len(properties))
	for i, p := range properties {
		ids[i] = p.ID
	}
	return ids
}

func TestFindProperties(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ids := testutil.InsertProperties(t, db, testutil.FilterProperties()...)
	condo, house, penthouse := ids[0], ids[1], ids[2]

	tests := []struct {
		name     string
		filter   models.PropertyFilter
		expected []int64
	}{
		{
			name:     "no criteria returns everything in id order",
			filter:   models.PropertyFilter{},
			expected: []int64{condo, house, penthouse},
		},
		{
			name:     "price range is inclusive",
			filter:   models.PropertyFilter{MinPrice: testutil.Int64(500000), MaxPrice: testutil.Int64(1000000)},
			expected: []int64{house},
		},
		{
			name:     "min price only",
			filter:   models.PropertyFilter{MinPrice: testutil.Int64(500000)},
			expected: []int64{house, penthouse},
		},
		{
			name:     "max price only",
			filter:   models.PropertyFilter{MaxPrice: testutil.Int64(200000)},
			expected: []int64{condo},
		},
		{
			name:     "city",
			filter:   models.PropertyFilter{City: "Austin"},
			expected: []int64{house, penthouse},
		},
		{
			name:     "city is a case-insensitive substring",
			filter:   models.PropertyFilter{City: "aUs"},
			expected: []int64{house, penthouse},
		},
		{
			name:     "state",
			filter:   models.PropertyFilter{State: "co"},
			expected: []int64{condo},
		},
		{
			name:     "bedrooms means at least",
			filter:   models.PropertyFilter{Bedrooms: testutil.Int(3)},
			expected: []int64{house, penthouse},
		},
		{
			name:     "property type exact match",
			filter:   models.PropertyFilter{PropertyType: "Condo"},
			expected: []int64{condo, penthouse},
		},
		{
			name:     "unknown property type matches nothing",
			filter:   models.PropertyFilter{PropertyType: "Castle"},
			expected: []int64{},
		},
		{
			name:     "property type is not case folded",
			filter:   models.PropertyFilter{PropertyType: "condo"},
			expected: []int64{},
		},
		{
			name:     "search matches title",
			filter:   models.PropertyFilter{Search: "Penthouse"},
			expected: []int64{penthouse},
		},
		{
			name:     "search matches description",
			filter:   models.PropertyFilter{Search: "suburbs"},
			expected: []int64{house},
		},
		{
			name:     "search matches address",
			filter:   models.PropertyFilter{Search: "main st"},
			expected: []int64{condo},
		},
		{
			name:     "search matches city",
			filter:   models.PropertyFilter{Search: "DENVER"},
			expected: []int64{condo},
		},
		{
			name:     "search does not look at state",
			filter:   models.PropertyFilter{Search: "TX"},
			expected: []int64{},
		},
		{
			name:     "criteria combine with AND",
			filter:   models.PropertyFilter{City: "Austin", MaxPrice: testutil.Int64(1000000)},
			expected: []int64{house},
		},
		{
			name:     "search combines with other criteria",
			filter:   models.PropertyFilter{Search: "Ave", PropertyType: "Condo"},
			expected: []int64{penthouse},
		},
		{
			name:     "contradicting criteria",
			filter:   models.PropertyFilter{City: "Denver", Bedrooms: testutil.Int(2)},
			expected: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			properties, err := db.FindProperties(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, propertyIDs(properties))
		})
	}
}

func TestFindProperties_EmptyCatalog(t *testing.T) {
	db := testutil.SetupTestDB(t)

	properties, err := db.FindProperties(context.Background(), models.PropertyFilter{})
	require.NoError(t, err)
	assert.NotNil(t, properties)
	assert.Empty(t, properties)
}

// Every combination of criteria must select exactly the properties the
// in-memory filter accepts, in ascending id order.
func TestFindProperties_AgreesWithInMemoryFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	catalog := append(testutil.FilterProperties(), testutil.SampleProperty())
	extra := testutil.SampleProperty()
	extra.Title = "Downtown Loft"
	extra.Description = "Open plan loft near the river"
	extra.City = "Austin"
	extra.State = "TX"
	extra.Bedrooms = 2
	extra.Price = 750000
	extra.PropertyType = models.PropertyTypeApartment
	catalog = append(catalog, extra)
	chalet := testutil.SampleProperty()
	chalet.Title = "Chalet ÜBER dem See"
	chalet.City = "ZÜRICH"
	chalet.State = "ZH"
	chalet.Bedrooms = 4
	chalet.Price = 1000000
	catalog = append(catalog, chalet)
	testutil.InsertProperties(t, db, catalog...)

	all, err := db.FindProperties(ctx, models.PropertyFilter{})
	require.NoError(t, err)

	minPrices := []*int64{nil, testutil.Int64(300000), testutil.Int64(750000)}
	maxPrices := []*int64{nil, testutil.Int64(500000), testutil.Int64(1000000)}
	cities := []string{"", "austin", "Denver", "zürich"}
	states := []string{"", "tx"}
	bedrooms := []*int{nil, testutil.Int(2), testutil.Int(4)}
	types := []string{"", "Condo", "House", "Land"}
	searches := []string{"", "loft", "ave", "house", "über"}

	checked := 0
	for _, minPrice := range minPrices {
		for _, maxPrice := range maxPrices {
			for _, city := range cities {
				for _, state := range states {
					for _, beds := range bedrooms {
						for _, typ := range types {
							for _, search := range searches {
								filter := models.PropertyFilter{
									MinPrice:     minPrice,
									MaxPrice:     maxPrice,
									City:         city,
									State:        state,
									Bedrooms:     beds,
									PropertyType: typ,
									Search:       search,
								}

								expected := []int64{}
								for i := range all {
									if testutil.MatchesFilter(filter, &all[i]) {
										expected = append(expected, all[i].ID)
									}
								}

								got, err := db.FindProperties(ctx, filter)
								require.NoError(t, err)
								require.Equal(t, expected, propertyIDs(got), "filter %+v", filter)
								checked++
							}
						}
					}
				}
			}
		}
	}
	assert.Equal(t, 3*3*4*2*3*4*5, checked)
}

func TestFindProperties_WildcardsMatchLiterally(t *testing.T) {
	db := testutil.SetupTestDB(t)

	percent := testutil.SampleProperty()
	percent.Title = "100% Financing Available"
	underscore := testutil.SampleProperty()
	underscore.Title = "Move_in Ready"
	plain := testutil.SampleProperty()
	plain.Title = "Quiet Street"
	ids := testutil.InsertProperties(t, db, percent, underscore, plain)

	tests := []struct {
		search   string
		expected []int64
	}{
		{"%", []int64{ids[0]}},
		{"_", []int64{ids[1]}},
		{`\`, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			properties, err := db.FindProperties(context.Background(), models.PropertyFilter{Search: tt.search})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, propertyIDs(properties))
		})
	}
}

func TestFindProperties_FoldsNonASCIICase(t *testing.T) {
	db := testutil.SetupTestDB(t)

	zurich := testutil.SampleProperty()
	zurich.Title = "Château am Fluss"
	zurich.City = "ZÜRICH"
	zurich.State = "ZH"
	austin := testutil.SampleProperty()
	ids := testutil.InsertProperties(t, db, zurich, austin)

	tests := []struct {
		name     string
		filter   models.PropertyFilter
		expected []int64
	}{
		{"lower case city", models.PropertyFilter{City: "zürich"}, []int64{ids[0]}},
		{"mixed case city substring", models.PropertyFilter{City: "Zür"}, []int64{ids[0]}},
		{"upper case search", models.PropertyFilter{Search: "CHÂTEAU"}, []int64{ids[0]}},
		{"search matches city", models.PropertyFilter{Search: "üRiCh"}, []int64{ids[0]}},
		{"accent is not stripped", models.PropertyFilter{City: "zurich"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			properties, err := db.FindProperties(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, propertyIDs(properties))
		})
	}
}
