package api

import (
	"time"

	"realestate/server/internal/models"
)

// PropertyResponse is the external representation of a listing. Enum fields
// carry their string labels, coordinates are null when unknown and photos is
// always a list.
type PropertyResponse struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ZipCode       string   `json:"zip_code"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     float64  `json:"bathrooms"`
	SquareFootage int      `json:"square_footage"`
	PropertyType  string   `json:"property_type"`
	ListingStatus string   `json:"listing_status"`
	Photos        []string `json:"photos"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

type InquiryResponse struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewPropertyResponse(p *models.Property) PropertyResponse {
	photos := make([]string, len(p.Photos))
	copy(photos, p.Photos)

	return PropertyResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		Address:       p.Address,
		City:          p.City,
		State:         p.State,
		ZipCode:       p.ZipCode,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		SquareFootage: p.SquareFootage,
		PropertyType:  p.PropertyType.String(),
		ListingStatus: p.ListingStatus.String(),
		Photos:        photos,
		Latitude:      copyFloat(p.Latitude),
		Longitude:     copyFloat(p.Longitude),
	}
}

func NewPropertyResponses(properties []models.Property) []PropertyResponse {
	out := make([]PropertyResponse, len(properties))
	for i := range properties {
		out[i] = NewPropertyResponse(&properties[i])
	}
	return out
}

func NewInquiryResponse(inq *models.ContactInquiry) InquiryResponse {
	var phone *string
	if inq.Phone != nil {
		v := *inq.Phone
		phone = &v
	}

	return InquiryResponse{
		ID:         inq.ID,
		PropertyID: inq.PropertyID,
		Name:       inq.Name,
		Email:      inq.Email,
		Phone:      phone,
		Message:    inq.Message,
		CreatedAt:  inq.CreatedAt,
	}
}

func NewInquiryResponses(inquiries []models.ContactInquiry) []InquiryResponse {
	out := make([]InquiryResponse, len(inquiries))
	for i := range inquiries {
		out[i] = NewInquiryResponse(&inquiries[i])
	}
	return out
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
