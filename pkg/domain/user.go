package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies an admin user.
type UserID int64

// User is an administrator allowed into the admin area.
type User struct {
	ID           UserID    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SessionID uniquely identifies an authenticated admin session.
// It wraps uuid.UUID to provide type safety at the domain layer.
type SessionID uuid.UUID

// Session is a server-side record of an issued session token. Deleting the
// row revokes the token even before it expires.
type Session struct {
	ID        SessionID `json:"id"`
	UserID    UserID    `json:"userId"`
	UserAgent string    `json:"userAgent,omitempty"`
	IP        string    `json:"ip,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
