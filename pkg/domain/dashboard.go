package domain

// DashboardStats aggregates counters shown on the admin dashboard. Inquiries
// and bookings are combined: TotalInquiries counts both kinds of requests.
type DashboardStats struct {
	TotalInquiries   int64 `json:"totalInquiries"`
	PendingInquiries int64 `json:"pendingInquiries"`
	Packages         int64 `json:"packages"`
	Posts            int64 `json:"posts"`
	UnreadContacts   int64 `json:"unreadContacts"`
}
