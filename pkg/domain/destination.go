package domain

import "time"

// Destination is a publicly listed travel destination.
type Destination struct {
	// ID is the surrogate key of the destination.
	ID int64 `json:"id"`

	// Name is the display name, e.g. "Bali".
	Name string `json:"name"`
	// Slug is the URL-safe unique identifier used by public pages.
	Slug string `json:"slug"`
	// Country the destination belongs to.
	Country string `json:"country"`
	// Region is an optional sub-national region or area.
	Region string `json:"region,omitempty"`
	// Summary is a short teaser shown on listing cards.
	Summary string `json:"summary,omitempty"`
	// Description is the long form description shown on the detail page.
	Description string `json:"description,omitempty"`
	// ImageURL points to the hero image on the CDN.
	ImageURL string `json:"imageUrl,omitempty"`

	// Featured destinations are highlighted on the home page.
	Featured bool `json:"featured"`
	// Active controls public visibility.
	Active bool `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DestinationFilter narrows destination listings. Zero values disable a filter.
type DestinationFilter struct {
	ActiveOnly   bool
	FeaturedOnly bool
}
