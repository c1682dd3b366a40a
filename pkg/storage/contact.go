package storage

import (
	"context"
	"travel/pkg/domain"
)

// ContactStorage persists contact form submissions.
type ContactStorage interface {
	StoreContact(ctx context.Context, contact domain.ContactSubmission) (*domain.ContactSubmission, error)
	// Contacts lists submissions newest first.
	Contacts(ctx context.Context, unreadOnly bool) ([]domain.ContactSubmission, error)
	ContactByID(ctx context.Context, id int64) (*domain.ContactSubmission, error)
	// MarkContactRead returns nil when the row does not exist.
	MarkContactRead(ctx context.Context, id int64, read bool) (*domain.ContactSubmission, error)
	// DeleteContact returns nil when the row did not exist.
	DeleteContact(ctx context.Context, id int64) (*domain.ContactSubmission, error)
	// CountContacts counts submissions, optionally only the unread ones.
	CountContacts(ctx context.Context, unreadOnly bool) (int64, error)
}
