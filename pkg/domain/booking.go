package domain

import "time"

// Booking is a booking request for a tour package.
type Booking struct {
	ID         int64         `json:"id"`
	PackageID  int64         `json:"packageId"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	TravelDate time.Time     `json:"travelDate"`
	Travelers  int           `json:"travelers"`
	Notes      string        `json:"notes,omitempty"`
	Status     RequestStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
