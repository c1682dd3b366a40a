package v1handler_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"
	"travel/internal/api/handler/v1handler"
	"travel/internal/auth"
	"travel/internal/content"
	"travel/pkg/controller"
	"travel/pkg/domain"
	"travel/pkg/logger"
	"travel/pkg/objectstore"
	"travel/pkg/serrors"
	mockstorage "travel/pkg/storage/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Fields  []struct {
		Field string `json:"field"`
	} `json:"fields"`
}

type fakeStore struct {
	uploaded []string
	deleted  []string
	err      error
}

func (f *fakeStore) Upload(_ context.Context,
	folder, name, contentType string, body io.Reader, size int64) (*objectstore.Object, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(body)
	f.uploaded = append(f.uploaded, string(b))
	key := objectstore.Key(folder, contentType)

	return &objectstore.Object{
		Key:         key,
		URL:         objectstore.URL("https://cdn.example", key),
		ContentType: contentType,
		Size:        size,
	}, nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)

	return f.err
}

type testServer struct {
	e       *echo.Echo
	h       *v1handler.Handler
	st      *mockstorage.MockStorage
	key     *rsa.PrivateKey
	objects *fakeStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	return newTestServerWith(t, v1handler.Options{MaxUploadBytes: 1 << 20})
}

func newTestServerWith(t *testing.T, opts v1handler.Options) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})

	authSvc, err := auth.New(st, auth.Options{
		PrivateKey: string(pemKey),
		SessionTTL: time.Hour,
		Issuer:     "travel",
		BcryptCost: bcrypt.MinCost,
	})
	require.NoError(t, err)

	objects := &fakeStore{}
	e := echo.New()
	e.HTTPErrorHandler = v1handler.ErrorHandler
	h := v1handler.New(v1handler.Deps{
		Content: content.New(st),
		Auth:    authSvc,
		Objects: objects,
	}, opts)
	h.Register(e)

	return &testServer{e: e, h: h, st: st, key: priv, objects: objects}
}

func (s *testServer) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

// signIn prepares a valid session for admin 1 and returns its token.
func (s *testServer) signIn(t *testing.T) string {
	t.Helper()

	sid := uuid.New()
	token, err := auth.Sign(s.key, jwt.RegisteredClaims{
		ID:        sid.String(),
		Subject:   "1",
		Issuer:    "travel",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)

	s.st.EXPECT().SessionByID(gomock.Any(), domain.SessionID(sid)).
		Return(&domain.Session{ID: domain.SessionID(sid), UserID: 1}, nil)
	s.st.EXPECT().UserByID(gomock.Any(), domain.UserID(1)).
		Return(&domain.User{ID: 1, Email: "admin@example.com", Name: "Admin"}, nil)

	return token
}

func withSession(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: controller.SessionCookieName, Value: token})

	return req
}

func TestStatusOf(t *testing.T) {
	cases := map[error]int{
		serrors.With(serrors.ErrBadRequest, "x"):   http.StatusBadRequest,
		serrors.With(serrors.ErrNotFound, "x"):     http.StatusNotFound,
		serrors.With(serrors.ErrConflict, "x"):     http.StatusConflict,
		serrors.With(serrors.ErrUnauthorized, "x"): http.StatusUnauthorized,
		serrors.With(serrors.ErrForbidden, "x"):    http.StatusForbidden,
		serrors.With(serrors.ErrUnavailable, "x"):  http.StatusServiceUnavailable,
		serrors.KindOnly(serrors.ErrInternal):      http.StatusInternalServerError,
		errors.New("boom"):                         http.StatusInternalServerError,
	}
	for err, status := range cases {
		require.Equal(t, status, v1handler.StatusOf(err), err.Error())
	}
}

func TestPublic_ListDestinations(t *testing.T) {
	s := newTestServer(t)
	s.st.EXPECT().Destinations(gomock.Any(), domain.DestinationFilter{ActiveOnly: true, FeaturedOnly: true}).
		Return([]domain.Destination{{ID: 1, Name: "Bali", Slug: "bali", Active: true}}, nil)

	rec, env := s.do(t, httptest.NewRequest(http.MethodGet, "/api/destinations?featured=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var got []domain.Destination
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	require.Equal(t, "bali", got[0].Slug)
}

func TestPublic_ListFailureRendersEmptyUncached(t *testing.T) {
	s := newTestServer(t)
	s.st.EXPECT().Destinations(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	rec, env := s.do(t, httptest.NewRequest(http.MethodGet, "/api/destinations", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)
	require.JSONEq(t, `[]`, string(env.Data))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestPublic_InactiveDestinationIsNotFound(t *testing.T) {
	s := newTestServer(t)
	s.st.EXPECT().DestinationBySlug(gomock.Any(), "bali").
		Return(&domain.Destination{ID: 1, Slug: "bali", Active: false}, nil)

	rec, env := s.do(t, httptest.NewRequest(http.MethodGet, "/api/destinations/bali", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.False(t, env.Success)
	require.Equal(t, "NOT_FOUND", env.Code)
	require.Equal(t, "destination not found", env.Error)
}

func TestPublic_PackagesOfUnknownDestinationAreEmpty(t *testing.T) {
	s := newTestServer(t)
	s.st.EXPECT().DestinationBySlug(gomock.Any(), "atlantis").Return(nil, nil)

	rec, env := s.do(t, httptest.NewRequest(http.MethodGet, "/api/packages?destination=atlantis", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, string(env.Data))
}

func TestPublic_ContactRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, jsonRequest(http.MethodPost, "/api/contact", `{"name":`))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "BAD_REQUEST", env.Code)
	require.Equal(t, "invalid request body", env.Error)
}

func TestPublic_ContactValidation(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, jsonRequest(http.MethodPost, "/api/contact",
		`{"name":"Ann","email":"ann@example.com","message":"  "}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Message is required", env.Error)
	require.Len(t, env.Fields, 1)
	require.Equal(t, "message", env.Fields[0].Field)
}

func TestUnknownRouteIsEnvelope(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.False(t, env.Success)
	require.Equal(t, "NOT_FOUND", env.Code)
}

func TestAdmin_RequiresSession(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "UNAUTHORIZED", env.Code)
}

func TestAdmin_InvalidSessionClearsCookie(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, withSession(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), "garbage"))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "invalid session", env.Error)

	requireCookiesCleared(t, rec)
}

// requireCookiesCleared checks that both session cookie names are expired.
func requireCookiesCleared(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	names := make([]string, 0, len(cookies))
	for _, c := range cookies {
		names = append(names, c.Name)
		require.Empty(t, c.Value)
		require.Negative(t, c.MaxAge)
		if c.Name == controller.SecureSessionCookieName {
			require.True(t, c.Secure)
		}
	}
	require.ElementsMatch(t, []string{controller.SessionCookieName, controller.SecureSessionCookieName}, names)
}

func TestAdmin_Dashboard(t *testing.T) {
	s := newTestServer(t)
	token := s.signIn(t)
	s.st.EXPECT().CountInquiries(gomock.Any(), domain.RequestStatus("")).Return(int64(4), nil)
	s.st.EXPECT().CountInquiries(gomock.Any(), domain.RequestStatusPending).Return(int64(2), nil)
	s.st.EXPECT().CountBookings(gomock.Any(), domain.RequestStatus("")).Return(int64(1), nil)
	s.st.EXPECT().CountBookings(gomock.Any(), domain.RequestStatusPending).Return(int64(1), nil)
	s.st.EXPECT().CountTourPackages(gomock.Any()).Return(int64(6), nil)
	s.st.EXPECT().CountPosts(gomock.Any()).Return(int64(9), nil)
	s.st.EXPECT().CountContacts(gomock.Any(), true).Return(int64(3), nil)

	rec, env := s.do(t, withSession(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), token))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t,
		`{"totalInquiries":5,"pendingInquiries":3,"packages":6,"posts":9,"unreadContacts":3}`,
		string(env.Data))
}

func TestAdmin_BearerToken(t *testing.T) {
	s := newTestServer(t)
	token := s.signIn(t)
	s.st.EXPECT().DestinationByID(gomock.Any(), int64(7)).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/destinations/7", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec, env := s.do(t, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "destination not found", env.Error)
}

func TestAdmin_InvalidID(t *testing.T) {
	s := newTestServer(t)
	token := s.signIn(t)

	rec, env := s.do(t, withSession(httptest.NewRequest(http.MethodDelete, "/admin/posts/abc", nil), token))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid id", env.Error)
}

func TestAdmin_ReorderRouteIsNotAnID(t *testing.T) {
	s := newTestServer(t)
	token := s.signIn(t)
	s.st.EXPECT().SetPlannerOptionPosition(gomock.Any(), int64(3), 0).Return(nil)
	s.st.EXPECT().AddJob(gomock.Any(), gomock.AssignableToTypeOf(content.RevalidateArgs{}), gomock.Nil()).
		Return(true, nil)

	rec, env := s.do(t, withSession(jsonRequest(http.MethodPut, "/admin/planner-options/order",
		`{"items":[{"id":3,"position":0}]}`), token))
	require.Equal(t, http.StatusOK, rec.Code, env.Error)
	require.Equal(t, "planner options reordered", env.Message)
}

func TestAuth_LoginSetsCookie(t *testing.T) {
	s := newTestServer(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	s.st.EXPECT().UserByEmail(gomock.Any(), "admin@example.com").
		Return(&domain.User{ID: 1, Email: "admin@example.com", PasswordHash: string(hash)}, nil)
	s.st.EXPECT().StoreSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, session domain.Session) (*domain.Session, error) {
			return &session, nil
		})

	rec, env := s.do(t, jsonRequest(http.MethodPost, "/admin/login",
		`{"email":"admin@example.com","password":"s3cret-pass"}`))
	require.Equal(t, http.StatusOK, rec.Code, env.Error)
	require.Equal(t, "signed in", env.Message)
	require.NotContains(t, string(env.Data), "token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, controller.SessionCookieName, cookies[0].Name)
	require.NotEmpty(t, cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	s := newTestServer(t)
	s.st.EXPECT().UserByEmail(gomock.Any(), "admin@example.com").Return(nil, nil)

	rec, env := s.do(t, jsonRequest(http.MethodPost, "/admin/login",
		`{"email":"admin@example.com","password":"nope"}`))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "invalid email or password", env.Error)
	require.Empty(t, rec.Result().Cookies())
}

func TestAuth_FormReportsSignup(t *testing.T) {
	s := newTestServer(t)
	s.st.EXPECT().CountUsers(gomock.Any()).Return(int64(0), nil)

	rec, env := s.do(t, httptest.NewRequest(http.MethodGet, "/admin/signup", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"canSignUp":true}`, string(env.Data))
}

func TestAuth_LogoutClearsCookie(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, withSession(httptest.NewRequest(http.MethodPost, "/admin/logout", nil), "garbage"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "signed out", env.Message)
	requireCookiesCleared(t, rec)
}

//nolint: gochecknoglobals
var (
	pngBytes  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	jpegBytes = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
)

func multipartUpload(t *testing.T, filename, contentType, folder string, body []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("folder", folder))
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestUpload(t *testing.T) {
	s := newTestServer(t)
	token := s.signIn(t)

	rec, env := s.do(t, withSession(multipartUpload(t, "photo.jpg", "image/jpeg", "packages", jpegBytes), token))
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)
	require.Equal(t, "file uploaded", env.Message)

	var obj objectstore.Object
	require.NoError(t, json.Unmarshal(env.Data, &obj))
	require.True(t, strings.HasPrefix(obj.Key, "packages/"), obj.Key)
	require.True(t, strings.HasSuffix(obj.Key, ".jpg"), obj.Key)
	require.Equal(t, "https://cdn.example/"+obj.Key, obj.URL)
	require.Equal(t, "image/jpeg", obj.ContentType)
	require.Equal(t, []string{string(jpegBytes)}, s.objects.uploaded)
}

func TestUpload_TypeFollowsContent(t *testing.T) {
	s := newTestServer(t)
	token := s.signIn(t)

	rec, env := s.do(t, withSession(multipartUpload(t, "x.html", "application/octet-stream", "", pngBytes), token))
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)

	var obj objectstore.Object
	require.NoError(t, json.Unmarshal(env.Data, &obj))
	require.True(t, strings.HasSuffix(obj.Key, ".png"), obj.Key)
	require.Equal(t, "image/png", obj.ContentType)
}

func TestUpload_RejectsType(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		body        []byte
	}{
		{name: "pdf", filename: "doc.pdf", contentType: "application/pdf", body: []byte("%PDF-1.4\n")},
		{name: "html posing as png", filename: "x.html", contentType: "image/png",
			body: []byte("<html><script>alert(1)</script></html>")},
		{name: "svg", filename: "logo.svg", contentType: "image/svg+xml",
			body: []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			token := s.signIn(t)

			rec, env := s.do(t, withSession(multipartUpload(t, tt.filename, tt.contentType, "", tt.body), token))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "file type is not allowed", env.Error)
			require.Empty(t, s.objects.uploaded)
		})
	}
}

func TestUpload_StoreFailureIsHidden(t *testing.T) {
	s := newTestServer(t)
	token := s.signIn(t)
	s.objects.err = errors.New("s3: access denied")

	rec, env := s.do(t, withSession(multipartUpload(t, "a.png", "image/png", "", pngBytes), token))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "failed to upload file", env.Error)
}

func TestDeleteUpload(t *testing.T) {
	s := newTestServer(t)
	token := s.signIn(t)

	rec, env := s.do(t, withSession(httptest.NewRequest(http.MethodDelete,
		"/admin/uploads?key=packages/a.jpg", nil), token))
	require.Equal(t, http.StatusOK, rec.Code, env.Error)
	require.Equal(t, []string{"packages/a.jpg"}, s.objects.deleted)

	token = s.signIn(t)
	rec, _ = s.do(t, withSession(httptest.NewRequest(http.MethodDelete,
		"/admin/uploads?key=../etc", nil), token))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

