package postgres

import (
	"context"
	"fmt"
	"strings"
	"travel/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable    = "users"
	sessionsTable = "sessions"
)

// StoreUser inserts a user. Emails are stored lower-cased.
func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	in := PgUser{
		Email:        strings.ToLower(strings.TrimSpace(user.Email)),
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
	}

	var out PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(in).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, writeError(err, usersTable, "store")
	}

	return out.ToDomain(), nil
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("email").Eq(strings.ToLower(strings.TrimSpace(email))))
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("id").Eq(int64(id)))
}

func (p *PgSQL) userWhere(ctx context.Context, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CountUsers(ctx context.Context) (int64, error) {
	n, err := p.Builder.From(usersTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count users in pg: %w", err)
	}

	return n, nil
}

// StoreSession inserts a session. A zero ID is replaced by a random one.
func (p *PgSQL) StoreSession(ctx context.Context, session domain.Session) (*domain.Session, error) {
	id := uuid.UUID(session.ID)
	if id == uuid.Nil {
		id = uuid.New()
	}
	in := PgSession{
		ID:        id,
		UserID:    int64(session.UserID),
		UserAgent: session.UserAgent,
		IP:        session.IP,
		ExpiresAt: session.ExpiresAt,
	}

	var out PgSession
	if _, err := p.Builder.Insert(sessionsTable).
		Rows(in).
		Returning(&PgSession{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, writeError(err, sessionsTable, "store")
	}

	return out.ToDomain(), nil
}

// SessionByID returns an unexpired session.
func (p *PgSQL) SessionByID(ctx context.Context, id domain.SessionID) (*domain.Session, error) {
	var row PgSession
	found, err := p.Builder.From(sessionsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("expires_at").Gt(goqu.L("CURRENT_TIMESTAMP")),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch session from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteSession(ctx context.Context, id domain.SessionID) error {
	if _, err := p.Builder.Delete(sessionsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete session in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	res, err := p.Builder.Delete(sessionsTable).
		Where(goqu.I("expires_at").Lte(goqu.L("CURRENT_TIMESTAMP"))).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete expired sessions in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted sessions: %w", err)
	}

	return n, nil
}
