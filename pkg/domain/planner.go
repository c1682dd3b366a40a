package domain

import "time"

// PlannerOptionKind groups the choices offered by the trip planner form.
type PlannerOptionKind string

const (
	PlannerOptionDestination   PlannerOptionKind = "destination"
	PlannerOptionTravelStyle   PlannerOptionKind = "travel_style"
	PlannerOptionInterest      PlannerOptionKind = "interest"
	PlannerOptionAccommodation PlannerOptionKind = "accommodation"
	PlannerOptionBudget        PlannerOptionKind = "budget"
)

// PlannerOption is one selectable choice in the trip planner.
type PlannerOption struct {
	ID       int64             `json:"id"`
	Kind     PlannerOptionKind `json:"kind"`
	Label    string            `json:"label"`
	Value    string            `json:"value"`
	Position int               `json:"position"`
	Active   bool              `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlannerOptionFilter narrows planner option listings.
type PlannerOptionFilter struct {
	Kind       PlannerOptionKind
	ActiveOnly bool
}

// OptionPosition assigns a new position to a planner option.
type OptionPosition struct {
	ID       int64 `json:"id"       validate:"gt=0"`
	Position int   `json:"position" validate:"gte=0"`
}

// RequestStatus is the lifecycle state of inquiries and bookings.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusContacted RequestStatus = "contacted"
	RequestStatusConfirmed RequestStatus = "confirmed"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// Inquiry is a trip planner submission.
type Inquiry struct {
	ID int64 `json:"id"`

	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Adults      int       `json:"adults"`
	Children    int       `json:"children"`
	Budget      string    `json:"budget,omitempty"`
	TravelStyle string    `json:"travelStyle,omitempty"`
	Interests   []string  `json:"interests,omitempty"`
	Notes       string    `json:"notes,omitempty"`

	Status RequestStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
