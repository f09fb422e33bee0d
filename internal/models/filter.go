package models

// PropertyFilter holds the optional listing search criteria. A nil pointer or
// an empty string means the criterion is not applied.
type PropertyFilter struct {
	MinPrice     *int64 `json:"min_price"`
	MaxPrice     *int64 `json:"max_price"`
	City         string `json:"city"`
	State        string `json:"state"`
	Bedrooms     *int   `json:"bedrooms" validate:"omitempty,min=0"`
	PropertyType string `json:"property_type"`
	Search       string `json:"search" validate:"max=200"`
}
