package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"strconv"
	"testing"
	"time"
	"travel/internal/auth"
	"travel/pkg/domain"
	"travel/pkg/serrors"
	"travel/pkg/storage"
	mockstorage "travel/pkg/storage/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var now = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func genKey(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err)
	der := x509.MarshalPKCS1PrivateKey(priv)

	return priv, string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: der}))
}

func newTestAuth(t *testing.T,
	allowSignup bool) (*gomock.Controller, *mockstorage.MockStorage, *auth.Service, *rsa.PrivateKey) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	priv, pemKey := genKey(t)
	s, err := auth.New(st, auth.Options{
		PrivateKey:  pemKey,
		SessionTTL:  time.Hour,
		Issuer:      "travel",
		AllowSignup: allowSignup,
		BcryptCost:  bcrypt.MinCost,
		Now:         func() time.Time { return now },
	})
	require.NoError(t, err)

	return ctrl, st, s, priv
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(h)
}

func TestNew_InvalidKey(t *testing.T) {
	_, err := auth.New(nil, auth.Options{PrivateKey: "not a key"})
	require.Error(t, err)
}

func TestNotConfigured(t *testing.T) {
	s, err := auth.New(nil, auth.Options{})
	require.NoError(t, err)

	res := s.SignIn(context.Background(), auth.SignInInput{Email: "a@b.co", Password: "x"}, auth.Client{})
	require.ErrorIs(t, res.Err(), serrors.ErrUnavailable)

	_, err = s.Verify(context.Background(), "token")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestSignIn_AndVerify(t *testing.T) {
	_, st, s, _ := newTestAuth(t, false)

	user := &domain.User{ID: 3, Email: "admin@example.com", Name: "Admin", PasswordHash: hash(t, "correct horse")}
	st.EXPECT().UserByEmail(gomock.Any(), "admin@example.com").Return(user, nil)

	var stored domain.Session
	st.EXPECT().StoreSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sess domain.Session) (*domain.Session, error) {
			require.Equal(t, domain.UserID(3), sess.UserID)
			require.Equal(t, now.Add(time.Hour), sess.ExpiresAt)
			require.Equal(t, "curl/8", sess.UserAgent)
			stored = sess

			return &sess, nil
		},
	)

	res := s.SignIn(context.Background(),
		auth.SignInInput{Email: " admin@example.com ", Password: "correct horse"},
		auth.Client{UserAgent: "curl/8", IP: "10.0.0.1"})
	require.True(t, res.Success())
	require.NotEmpty(t, res.Data().Token)

	st.EXPECT().SessionByID(gomock.Any(), stored.ID).Return(&stored, nil)
	st.EXPECT().UserByID(gomock.Any(), domain.UserID(3)).Return(user, nil)

	got, err := s.Verify(context.Background(), res.Data().Token)
	require.NoError(t, err)
	require.Equal(t, domain.UserID(3), got.ID)
}

func TestSignIn_WrongPassword(t *testing.T) {
	_, st, s, _ := newTestAuth(t, false)

	st.EXPECT().UserByEmail(gomock.Any(), "admin@example.com").
		Return(&domain.User{ID: 3, PasswordHash: hash(t, "correct horse")}, nil)

	res := s.SignIn(context.Background(),
		auth.SignInInput{Email: "admin@example.com", Password: "battery staple"}, auth.Client{})
	require.Equal(t, serrors.ErrUnauthorized, res.Kind())
	require.Equal(t, "invalid email or password", res.Envelope().Error)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	_, st, s, _ := newTestAuth(t, false)

	st.EXPECT().UserByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

	res := s.SignIn(context.Background(),
		auth.SignInInput{Email: "ghost@example.com", Password: "whatever"}, auth.Client{})
	require.Equal(t, serrors.ErrUnauthorized, res.Kind())
}

func TestSignIn_Invalid(t *testing.T) {
	_, _, s, _ := newTestAuth(t, false)

	res := s.SignIn(context.Background(), auth.SignInInput{Email: "nope"}, auth.Client{})
	require.Equal(t, serrors.ErrBadRequest, res.Kind())
	require.Equal(t, "Email must be a valid email address", res.Envelope().Error)
}

func expectWithTx(ctrl *gomock.Controller, st *mockstorage.MockStorage, fn func(tx *mockstorage.MockAllStorage)) {
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			fn(tx)

			return cb(tx)
		},
	)
}

func TestSignUp_FirstAdmin(t *testing.T) {
	ctrl, st, s, _ := newTestAuth(t, false)

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CountUsers(gomock.Any()).Return(int64(0), nil)
		tx.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u domain.User) (*domain.User, error) {
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("long enough")))
				u.ID = 1

				return &u, nil
			},
		)
		tx.EXPECT().StoreSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sess domain.Session) (*domain.Session, error) { return &sess, nil },
		)
	})

	res := s.SignUp(context.Background(),
		auth.SignUpInput{Name: "Owner", Email: "owner@example.com", Password: "long enough"}, auth.Client{})
	require.True(t, res.Success())
	require.Equal(t, domain.UserID(1), res.Data().User.ID)
}

func TestSignUp_ClosedAfterFirstAdmin(t *testing.T) {
	ctrl, st, s, _ := newTestAuth(t, false)

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CountUsers(gomock.Any()).Return(int64(1), nil)
	})

	res := s.SignUp(context.Background(),
		auth.SignUpInput{Name: "Eve", Email: "eve@example.com", Password: "long enough"}, auth.Client{})
	require.Equal(t, serrors.ErrForbidden, res.Kind())
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	ctrl, st, s, _ := newTestAuth(t, true)

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreUser(gomock.Any(), gomock.Any()).
			Return(nil, &storage.UniqueViolationError{Table: "users", Field: "email", Err: errors.New("dup")})
	})

	res := s.SignUp(context.Background(),
		auth.SignUpInput{Name: "Eve", Email: "eve@example.com", Password: "long enough"}, auth.Client{})
	require.Equal(t, serrors.ErrConflict, res.Kind())
	require.Equal(t, "email is already registered", res.Envelope().Error)
}

func TestCanSignUp(t *testing.T) {
	_, st, s, _ := newTestAuth(t, false)

	st.EXPECT().CountUsers(gomock.Any()).Return(int64(0), nil)
	ok, err := s.CanSignUp(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	st.EXPECT().CountUsers(gomock.Any()).Return(int64(2), nil)
	ok, err = s.CanSignUp(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func sign(t *testing.T, priv *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := auth.Sign(priv, claims)
	require.NoError(t, err)

	return token
}

func validClaims() jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   strconv.Itoa(3),
		Issuer:    "travel",
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
}

func TestVerify_RejectsBadTokens(t *testing.T) {
	_, _, s, priv := newTestAuth(t, false)
	other, _ := genKey(t)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "someone-else"

	badJTI := validClaims()
	badJTI.ID = "not-a-uuid"

	hs, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims()).SignedString([]byte("secret"))
	require.NoError(t, err)

	tokens := map[string]string{
		"garbage":         "abc.def.ghi",
		"other key":       sign(t, other, validClaims()),
		"expired":         sign(t, priv, expired),
		"wrong issuer":    sign(t, priv, wrongIssuer),
		"invalid jti":     sign(t, priv, badJTI),
		"wrong algorithm": hs,
	}
	for name, token := range tokens {
		t.Run(name, func(t *testing.T) {
			_, err := s.Verify(context.Background(), token)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestVerify_RevokedSession(t *testing.T) {
	_, st, s, priv := newTestAuth(t, false)

	st.EXPECT().SessionByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.Verify(context.Background(), sign(t, priv, validClaims()))
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestSignOut(t *testing.T) {
	_, st, s, priv := newTestAuth(t, false)

	claims := validClaims()
	id := uuid.MustParse(claims.ID)
	st.EXPECT().DeleteSession(gomock.Any(), domain.SessionID(id)).Return(nil)

	require.True(t, s.SignOut(context.Background(), sign(t, priv, claims)).Success())
	// garbage tokens are already signed out
	require.True(t, s.SignOut(context.Background(), "garbage").Success())
}

func TestCreateAdmin_IgnoresClosedSignup(t *testing.T) {
	_, st, s, _ := newTestAuth(t, false)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.User) (*domain.User, error) {
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("long enough")))
			u.ID = 2

			return &u, nil
		})

	res := s.CreateAdmin(context.Background(),
		auth.SignUpInput{Name: " Ops ", Email: "ops@example.com", Password: "long enough"})
	require.True(t, res.Success(), res.Envelope().Error)
	require.Equal(t, "Ops", res.Data().Name)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).
		Return(nil, &storage.UniqueViolationError{Table: "users", Field: "email", Err: errors.New("dup")})
	res = s.CreateAdmin(context.Background(),
		auth.SignUpInput{Name: "Ops", Email: "ops@example.com", Password: "long enough"})
	require.Equal(t, serrors.ErrConflict, res.Kind())
}

func TestIssueToken(t *testing.T) {
	_, st, s, _ := newTestAuth(t, false)

	st.EXPECT().UserByEmail(gomock.Any(), "ops@example.com").
		Return(&domain.User{ID: 2, Email: "ops@example.com"}, nil)
	st.EXPECT().StoreSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, session domain.Session) (*domain.Session, error) {
			return &session, nil
		})

	res := s.IssueToken(context.Background(), "ops@example.com", auth.Client{UserAgent: "cli"})
	require.True(t, res.Success(), res.Envelope().Error)
	require.Equal(t, now.Add(time.Hour), res.Data().ExpiresAt)
	require.NotEmpty(t, res.Data().Token)

	st.EXPECT().UserByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
	require.True(t, s.IssueToken(context.Background(), "nobody@example.com", auth.Client{}).NotFound())
}
