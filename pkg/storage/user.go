package storage

import (
	"context"
	"travel/pkg/domain"
)

// UserStorage persists admin users.
type UserStorage interface {
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByEmail looks a user up by case-insensitive email. Returns nil when
	// not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// SessionStorage persists issued admin sessions.
type SessionStorage interface {
	StoreSession(ctx context.Context, session domain.Session) (*domain.Session, error)
	// SessionByID returns the session when it exists and has not expired.
	SessionByID(ctx context.Context, id domain.SessionID) (*domain.Session, error)
	// DeleteSession revokes a session. Deleting an unknown session is not an error.
	DeleteSession(ctx context.Context, id domain.SessionID) error
	// DeleteExpiredSessions purges sessions past their expiry and returns how many were removed.
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}
