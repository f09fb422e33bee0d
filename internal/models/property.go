package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "House"
	PropertyTypeCondo      PropertyType = "Condo"
	PropertyTypeTownhouse  PropertyType = "Townhouse"
	PropertyTypeApartment  PropertyType = "Apartment"
	PropertyTypeLand       PropertyType = "Land"
	PropertyTypeCommercial PropertyType = "Commercial"
)

// PropertyTypes lists every property type label in declaration order
var PropertyTypes = []PropertyType{
	PropertyTypeHouse,
	PropertyTypeCondo,
	PropertyTypeTownhouse,
	PropertyTypeApartment,
	PropertyTypeLand,
	PropertyTypeCommercial,
}

func (t PropertyType) Valid() bool {
	for _, known := range PropertyTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t PropertyType) String() string {
	return string(t)
}

type ListingStatus string

const (
	ListingStatusActive  ListingStatus = "Active"
	ListingStatusPending ListingStatus = "Pending"
	ListingStatusSold    ListingStatus = "Sold"
)

var ListingStatuses = []ListingStatus{
	ListingStatusActive,
	ListingStatusPending,
	ListingStatusSold,
}

func (s ListingStatus) Valid() bool {
	for _, known := range ListingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s ListingStatus) String() string {
	return string(s)
}

// Property is a catalog listing. The ID is assigned by the store and never reused.
type Property struct {
	ID            int64         `gorm:"primaryKey" json:"id"`
	Title         string        `gorm:"size:255;not null" json:"title"`
	Description   string        `gorm:"type:text;not null" json:"description"`
	Price         int64         `gorm:"not null;index" json:"price"`
	Address       string        `gorm:"size:500;not null" json:"address"`
	City          string        `gorm:"size:100;not null;index" json:"city"`
	State         string        `gorm:"size:50;not null" json:"state"`
	ZipCode       string        `gorm:"size:10;not null" json:"zip_code"`
	Bedrooms      int           `gorm:"not null" json:"bedrooms"`
	Bathrooms     float64       `gorm:"not null" json:"bathrooms"`
	SquareFootage int           `gorm:"not null" json:"square_footage"`
	PropertyType  PropertyType  `gorm:"size:20;not null;index" json:"property_type"`
	ListingStatus ListingStatus `gorm:"size:20;not null" json:"listing_status"`
	Photos        []string      `gorm:"serializer:json" json:"photos"`
	Latitude      *float64      `json:"latitude"`
	Longitude     *float64      `json:"longitude"`
}

// BeforeCreate defaults the listing status and rejects records that would
// break the catalog invariants.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ListingStatus == "" {
		p.ListingStatus = ListingStatusActive
	}
	if p.Photos == nil {
		p.Photos = []string{}
	}
	return p.Check()
}

// Check reports the first constraint the record violates, if any.
func (p *Property) Check() error {
	required := []struct {
		name  string
		value string
	}{
		{"title", p.Title},
		{"description", p.Description},
		{"address", p.Address},
		{"city", p.City},
		{"state", p.State},
		{"zip_code", p.ZipCode},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("property %s must not be empty", field.name)
		}
	}

	if p.Price < 0 || p.Bedrooms < 0 || p.Bathrooms < 0 || p.SquareFootage < 0 {
		return fmt.Errorf("property %q has a negative price, room count or area", p.Title)
	}
	if !p.PropertyType.Valid() {
		return fmt.Errorf("unknown property type %q", p.PropertyType)
	}
	if !p.ListingStatus.Valid() {
		return fmt.Errorf("unknown listing status %q", p.ListingStatus)
	}
	return nil
}

// HasCoordinates reports whether both latitude and longitude are set
func (p *Property) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// ContactInquiry is a prospective buyer's message about one property.
// Inquiries are append-only.
type ContactInquiry struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	PropertyID int64     `gorm:"not null;index" json:"property_id"`
	Name       string    `gorm:"size:200;not null" json:"name"`
	Email      string    `gorm:"size:200;not null" json:"email"`
	Phone      *string   `gorm:"size:30" json:"phone"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`

	Property *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (ContactInquiry) TableName() string {
	return "contact_inquiries"
}
