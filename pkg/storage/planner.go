package storage

import (
	"context"
	"travel/pkg/domain"
)

// PlannerOptionStorage persists trip planner options.
type PlannerOptionStorage interface {
	// PlannerOptions lists options ordered by position ascending, ties broken
	// by newest first.
	PlannerOptions(ctx context.Context, filter domain.PlannerOptionFilter) ([]domain.PlannerOption, error)
	PlannerOptionByID(ctx context.Context, id int64) (*domain.PlannerOption, error)
	StorePlannerOption(ctx context.Context, option domain.PlannerOption) (*domain.PlannerOption, error)
	// UpdatePlannerOption returns nil when the row does not exist.
	UpdatePlannerOption(ctx context.Context, option domain.PlannerOption) (*domain.PlannerOption, error)
	// SetPlannerOptionPosition moves a single option. Missing rows are ignored.
	SetPlannerOptionPosition(ctx context.Context, id int64, position int) error
	// DeletePlannerOption returns nil when the row did not exist.
	DeletePlannerOption(ctx context.Context, id int64) (*domain.PlannerOption, error)
}

// InquiryStorage persists trip planner inquiries.
type InquiryStorage interface {
	StoreInquiry(ctx context.Context, inquiry domain.Inquiry) (*domain.Inquiry, error)
	// Inquiries lists inquiries newest first, optionally filtered by status.
	Inquiries(ctx context.Context, status domain.RequestStatus) ([]domain.Inquiry, error)
	InquiryByID(ctx context.Context, id int64) (*domain.Inquiry, error)
	// UpdateInquiryStatus returns nil when the row does not exist.
	UpdateInquiryStatus(ctx context.Context, id int64, status domain.RequestStatus) (*domain.Inquiry, error)
	// DeleteInquiry returns nil when the row did not exist.
	DeleteInquiry(ctx context.Context, id int64) (*domain.Inquiry, error)
	// CountInquiries counts inquiries; an empty status counts all of them.
	CountInquiries(ctx context.Context, status domain.RequestStatus) (int64, error)
}
