package domain

import "time"

// TourPackage is a bookable tour offered by the agency.
type TourPackage struct {
	ID int64 `json:"id"`

	Title string `json:"title"`
	Slug  string `json:"slug"`
	// DestinationID links the package to a destination; zero means unlinked.
	DestinationID int64  `json:"destinationId,omitempty"`
	Summary       string `json:"summary,omitempty"`
	Description   string `json:"description,omitempty"`
	DurationDays  int    `json:"durationDays"`
	// PriceCents is the starting price per person in the smallest currency unit.
	PriceCents int64    `json:"priceCents"`
	Currency   string   `json:"currency"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	Highlights []string `json:"highlights,omitempty"`

	Featured bool `json:"featured"`
	Active   bool `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TourPackageFilter narrows package listings. Zero values disable a filter.
type TourPackageFilter struct {
	ActiveOnly    bool
	FeaturedOnly  bool
	DestinationID int64
}
