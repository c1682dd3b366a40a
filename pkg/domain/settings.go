package domain

import "time"

// Settings is the site-wide configuration edited from the admin dashboard.
// Exactly one live row exists.
type Settings struct {
	ID int64 `json:"id"`

	SiteName     string `json:"siteName"`
	Tagline      string `json:"tagline,omitempty"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone,omitempty"`
	Address      string `json:"address,omitempty"`
	WhatsApp     string `json:"whatsapp,omitempty"`
	FacebookURL  string `json:"facebookUrl,omitempty"`
	InstagramURL string `json:"instagramUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultSettings returns the values a fresh installation starts with.
func DefaultSettings() Settings {
	return Settings{
		SiteName:     "Wanderlust Travel",
		Tagline:      "Journeys crafted around you",
		ContactEmail: "hello@example.com",
	}
}
