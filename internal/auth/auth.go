// Package auth signs admins in and out. Passwords are stored as bcrypt
// hashes; a signed-in admin holds an RS256 JWT whose jti is the id of a
// server-side session row, so deleting the row revokes the token.
package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/result"
	"travel/pkg/serrors"
	"travel/pkg/storage"
	"travel/pkg/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrNotConfigured is returned by every operation when no signing key is set.
var ErrNotConfigured = serrors.With(serrors.ErrUnavailable, "authentication is not configured")

type Options struct {
	// PrivateKey is the PEM encoded RSA key signing session tokens.
	PrivateKey string
	// SessionTTL is the lifetime of a session.
	SessionTTL time.Duration
	// Issuer is the iss claim of issued tokens.
	Issuer string
	// AllowSignup keeps signup open after the first admin exists.
	AllowSignup bool
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
	// Now defaults to time.Now.
	Now func() time.Time
}

// Service implements admin authentication.
type Service struct {
	storage storage.Storage
	key     *rsa.PrivateKey
	opts    Options
	// dummyHash is compared against when the email is unknown so both
	// branches cost one bcrypt comparison.
	dummyHash []byte
}

// New creates the service. An empty private key yields a service whose
// operations all fail with ErrNotConfigured.
func New(st storage.Storage, opts Options) (*Service, error) {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 7 * 24 * time.Hour
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Service{storage: st, opts: opts}
	if strings.TrimSpace(opts.PrivateKey) == "" {
		return s, nil
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(opts.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}
	s.key = key

	s.dummyHash, err = bcrypt.GenerateFromPassword([]byte(uuid.NewString()), opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("could not prepare password hashing: %w", err)
	}

	return s, nil
}

// Client describes the device a session is issued to.
type Client struct {
	UserAgent string
	IP        string
}

// Session is an issued session token.
type Session struct {
	Token     string      `json:"-"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      domain.User `json:"user"`
}

// SignInInput is the admin login form.
type SignInInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpInput is the admin registration form.
type SignUpInput struct {
	Name     string `json:"name"     validate:"required,max=120"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func invalid(err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return serrors.Wrap(serrors.ErrBadRequest, verrs, "%s", verrs.Error())
	}

	return serrors.Wrap(serrors.ErrBadRequest, err, "invalid input")
}

func (s *Service) SignIn(ctx context.Context, in SignInInput, client Client) result.Result[Session] {
	if s.key == nil {
		return result.Fail[Session](ErrNotConfigured)
	}
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Validate(in); err != nil {
		return result.Fail[Session](invalid(err))
	}

	user, err := s.storage.UserByEmail(ctx, in.Email)
	if err != nil {
		logger.Error(ctx, "could not look up admin", zap.Error(err))

		return result.Fail[Session](serrors.Wrap(serrors.ErrInternal, err, "failed to sign in"))
	}

	hash := s.dummyHash
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(in.Password)); err != nil || user == nil {
		return result.Fail[Session](serrors.With(serrors.ErrUnauthorized, "invalid email or password"))
	}

	session, err := s.issue(ctx, s.storage, *user, client)
	if err != nil {
		logger.Error(ctx, "could not issue session", zap.Int64("userId", int64(user.ID)), zap.Error(err))

		return result.Fail[Session](serrors.Wrap(serrors.ErrInternal, err, "failed to sign in"))
	}

	return result.OK(*session, "signed in")
}

// CanSignUp reports whether the signup form is open: always before the first
// admin exists, afterwards only when AllowSignup is set.
func (s *Service) CanSignUp(ctx context.Context) (bool, error) {
	if s.opts.AllowSignup {
		return true, nil
	}

	n, err := s.storage.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("could not count admins: %w", err)
	}

	return n == 0, nil
}

func (s *Service) SignUp(ctx context.Context, in SignUpInput, client Client) result.Result[Session] {
	if s.key == nil {
		return result.Fail[Session](ErrNotConfigured)
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Validate(in); err != nil {
		return result.Fail[Session](invalid(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.opts.BcryptCost)
	if err != nil {
		return result.Fail[Session](serrors.Wrap(serrors.ErrInternal, err, "failed to sign up"))
	}

	var session *Session
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if !s.opts.AllowSignup {
			n, err := tx.CountUsers(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				return serrors.With(serrors.ErrForbidden, "signup is closed")
			}
		}

		user, err := tx.StoreUser(ctx, domain.User{Name: in.Name, Email: in.Email, PasswordHash: string(hash)})
		if err != nil {
			return err
		}
		session, err = s.issue(ctx, tx, *user, client)

		return err
	})

	var serr *serrors.Error
	switch {
	case err == nil:
		return result.OK(*session, "account created")
	case errors.As(err, &serr):
		return result.Fail[Session](err)
	case storage.IsUniqueViolation(err, "email"):
		return result.Fail[Session](serrors.Wrap(serrors.ErrConflict, err, "email is already registered"))
	default:
		logger.Error(ctx, "could not sign up admin", zap.Error(err))

		return result.Fail[Session](serrors.Wrap(serrors.ErrInternal, err, "failed to sign up"))
	}
}

// CreateAdmin registers an admin regardless of the signup setting. It backs
// the admin CLI and needs no signing key.
func (s *Service) CreateAdmin(ctx context.Context, in SignUpInput) result.Result[domain.User] {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Validate(in); err != nil {
		return result.Fail[domain.User](invalid(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.opts.BcryptCost)
	if err != nil {
		return result.Fail[domain.User](serrors.Wrap(serrors.ErrInternal, err, "failed to create admin"))
	}

	user, err := s.storage.StoreUser(ctx, domain.User{Name: in.Name, Email: in.Email, PasswordHash: string(hash)})
	switch {
	case err == nil:
		return result.OK(*user, "admin created")
	case storage.IsUniqueViolation(err, "email"):
		return result.Fail[domain.User](serrors.Wrap(serrors.ErrConflict, err, "email is already registered"))
	default:
		logger.Error(ctx, "could not create admin", zap.Error(err))

		return result.Fail[domain.User](serrors.Wrap(serrors.ErrInternal, err, "failed to create admin"))
	}
}

// IssueToken opens a session for an existing admin without a password, for
// scripted access to the admin API.
func (s *Service) IssueToken(ctx context.Context, email string, client Client) result.Result[Session] {
	if s.key == nil {
		return result.Fail[Session](ErrNotConfigured)
	}

	user, err := s.storage.UserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return result.Fail[Session](serrors.Wrap(serrors.ErrInternal, err, "failed to look up admin"))
	}
	if user == nil {
		return result.Fail[Session](serrors.With(serrors.ErrNotFound, "admin not found"))
	}

	session, err := s.issue(ctx, s.storage, *user, client)
	if err != nil {
		return result.Fail[Session](serrors.Wrap(serrors.ErrInternal, err, "failed to issue token"))
	}

	return result.OK(*session, "token issued")
}

// SignOut revokes the session behind token. Unknown, expired or malformed
// tokens are treated as already signed out.
func (s *Service) SignOut(ctx context.Context, token string) result.Result[struct{}] {
	if s.key == nil {
		return result.Fail[struct{}](ErrNotConfigured)
	}

	claims, err := s.parse(token)
	if err != nil {
		return result.OK(struct{}{}, "signed out")
	}
	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return result.OK(struct{}{}, "signed out")
	}

	if err := s.storage.DeleteSession(ctx, domain.SessionID(id)); err != nil {
		logger.Error(ctx, "could not delete session", zap.Error(err))

		return result.Fail[struct{}](serrors.Wrap(serrors.ErrInternal, err, "failed to sign out"))
	}

	return result.OK(struct{}{}, "signed out")
}

// Verify resolves a session token to its admin. Any problem with the token
// or its session is reported as UNAUTHORIZED.
func (s *Service) Verify(ctx context.Context, token string) (*domain.User, error) {
	if s.key == nil {
		return nil, ErrNotConfigured
	}

	claims, err := s.parse(token)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session")
	}
	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session")
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid session")
	}

	session, err := s.storage.SessionByID(ctx, domain.SessionID(id))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "failed to verify session")
	}
	if session == nil || session.UserID != domain.UserID(userID) {
		return nil, serrors.With(serrors.ErrUnauthorized, "session expired")
	}

	user, err := s.storage.UserByID(ctx, session.UserID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "failed to verify session")
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "session expired")
	}

	return user, nil
}

// PurgeExpiredSessions removes sessions past their expiry.
func (s *Service) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.storage.DeleteExpiredSessions(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not purge sessions: %w", err)
	}

	return n, nil
}

func (s *Service) issue(ctx context.Context,
	st storage.SessionStorage,
	user domain.User,
	client Client) (*Session, error) {
	now := s.opts.Now()
	stored, err := st.StoreSession(ctx, domain.Session{
		ID:        domain.SessionID(uuid.New()),
		UserID:    user.ID,
		UserAgent: client.UserAgent,
		IP:        client.IP,
		ExpiresAt: now.Add(s.opts.SessionTTL),
	})
	if err != nil {
		return nil, fmt.Errorf("could not store session: %w", err)
	}

	token, err := Sign(s.key, jwt.RegisteredClaims{
		ID:        uuid.UUID(stored.ID).String(),
		Subject:   strconv.FormatInt(int64(user.ID), 10),
		Issuer:    s.opts.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(stored.ExpiresAt),
	})
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, ExpiresAt: stored.ExpiresAt, User: user}, nil
}

func (s *Service) parse(token string) (*jwt.RegisteredClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.opts.Now),
	}
	if s.opts.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.opts.Issuer))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return &s.key.PublicKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not parse token: %w", err)
	}

	return claims, nil
}

// Sign signs claims with RS256.
func Sign(key *rsa.PrivateKey, claims jwt.RegisteredClaims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}
