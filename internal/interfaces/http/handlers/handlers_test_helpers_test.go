package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"blood-link.backend/internal/domain/entities"
	domainerrors "blood-link.backend/internal/domain/errors"
	"blood-link.backend/internal/interfaces/http/middleware"
	"blood-link.backend/internal/usecases"
	"blood-link.backend/pkg/jwt"
	"blood-link.backend/pkg/redis"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

type userRepoStub struct {
	byID    map[uuid.UUID]*entities.User
	byEmail map[string]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{
		byID:    map[uuid.UUID]*entities.User{},
		byEmail: map[string]*entities.User{},
	}
}

func (s *userRepoStub) Create(_ context.Context, u *entities.User) error {
	if _, ok := s.byEmail[u.Email]; ok {
		return domainerrors.ErrAlreadyExists
	}
	s.byID[u.ID] = u
	s.byEmail[u.Email] = u
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	if u, ok := s.byEmail[email]; ok {
		return u, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) FindMatches(_ context.Context, bloodGroup string, excludeUserID uuid.UUID) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range s.byID {
		if u.BloodGroup == bloodGroup && u.ID != excludeUserID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *userRepoStub) SetVerified(_ context.Context, id uuid.UUID, verified bool) error {
	u, ok := s.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.Verified = verified
	return nil
}

type sosRepoStub struct {
	byID map[uuid.UUID]*entities.SOSRequest
}

func newSOSRepoStub() *sosRepoStub {
	return &sosRepoStub{byID: map[uuid.UUID]*entities.SOSRequest{}}
}

func (s *sosRepoStub) Create(_ context.Context, req *entities.SOSRequest) error {
	s.byID[req.ID] = req
	return nil
}

func (s *sosRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.SOSRequest, error) {
	if req, ok := s.byID[id]; ok {
		return req, nil
	}
	return nil, domainerrors.ErrNotFound
}

func (s *sosRepoStub) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.SOSRequest, error) {
	var out []*entities.SOSRequest
	for _, req := range s.byID {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

type hospitalRepoStub struct {
	hospitals []*entities.Hospital
}

func (s *hospitalRepoStub) List(_ context.Context) ([]*entities.Hospital, error) {
	return s.hospitals, nil
}

func (s *hospitalRepoStub) GetByEmail(_ context.Context, email string) (*entities.Hospital, error) {
	for _, h := range s.hospitals {
		if h.Email == email {
			return h, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *hospitalRepoStub) Create(_ context.Context, h *entities.Hospital) error {
	s.hospitals = append(s.hospitals, h)
	return nil
}

type dispatcherStub struct {
	sendErr error
	bodies  []string
}

func (s *dispatcherStub) Send(_ context.Context, _, body string) error {
	s.bodies = append(s.bodies, body)
	return s.sendErr
}

type classifierStub struct {
	eligible bool
	err      error
}

func (s *classifierStub) Evaluate(_ context.Context, _ string) (bool, error) {
	return s.eligible, s.err
}

type extractorStub struct{}

func (extractorStub) Extract(_ context.Context, _ string, data []byte) (string, error) {
	return string(data), nil
}

type storeStub struct {
	saved map[string][]byte
}

func newStoreStub() *storeStub {
	return &storeStub{saved: map[string][]byte{}}
}

func (s *storeStub) Save(_ context.Context, key string, r io.Reader, _ int64) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.saved[key] = data
	return nil
}

func (s *storeStub) Open(_ context.Context, _ string) (io.ReadCloser, error) {
	return nil, domainerrors.ErrNotFound
}

// testApp wires the real usecases over stubbed infrastructure, with
// miniredis-backed sessions.
type testApp struct {
	router     *gin.Engine
	users      *userRepoStub
	sosRepo    *sosRepoStub
	hospitals  *hospitalRepoStub
	dispatcher *dispatcherStub
	classifier *classifierStub
	store      *storeStub
	sessions   *redis.SessionStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	sessions, err := redis.NewSessionStore(testKeyHex)
	require.NoError(t, err)

	app := &testApp{
		users:      newUserRepoStub(),
		sosRepo:    newSOSRepoStub(),
		hospitals:  &hospitalRepoStub{},
		dispatcher: &dispatcherStub{},
		classifier: &classifierStub{eligible: true},
		store:      newStoreStub(),
		sessions:   sessions,
	}

	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, time.Hour)
	authUsecase := usecases.NewAuthUsecase(app.users, jwtService)
	reportUsecase := usecases.NewReportUsecase(app.users, extractorStub{}, app.classifier, app.store)
	sosUsecase := usecases.NewSOSUsecase(app.sosRepo, app.users, app.hospitals, app.dispatcher, "+15550001111", "https://bloodlink.example.com")

	authHandler := NewAuthHandler(authUsecase, reportUsecase, sessions, time.Hour)
	sosHandler := NewSOSHandler(sosUsecase)
	reportHandler := NewReportHandler(reportUsecase)

	r := gin.New()
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	authed := r.Group("/", middleware.SessionAuthMiddleware(sessions, jwtService))
	authed.GET("/home", authHandler.Home)
	authed.GET("/sosrequest", sosHandler.Raise)
	authed.GET("/accept/:id", sosHandler.Accept)
	authed.GET("/upload_report", reportHandler.UploadForm)
	authed.POST("/upload_report", reportHandler.Upload)

	app.router = r
	return app
}

func signupForm(email, bloodGroup string) url.Values {
	return url.Values{
		"name":      {strings.SplitN(email, "@", 2)[0]},
		"email":     {email},
		"password":  {"s3cret-pass"},
		"address":   {"12 Hill Road, Pune"},
		"blood_grp": {bloodGroup},
		"age":       {"29"},
		"gender":    {"F"},
		"live_loc":  {"18.5204,73.8567"},
		"phone":     {"+911234567890"},
	}
}

// signup registers a user and returns the session cookie from the response.
func (app *testApp) signup(t *testing.T, email, bloodGroup string) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(signupForm(email, bloodGroup).Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return sessionCookie(t, w)
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

// multipartBody builds a multipart form with the signup fields plus an
// optional report file.
func multipartBody(t *testing.T, fields url.Values, fileField, filename string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, vals := range fields {
		for _, v := range vals {
			require.NoError(t, mw.WriteField(key, v))
		}
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}
