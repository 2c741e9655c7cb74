package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/userhub/internal/apperr"
	"github.com/mkravets/userhub/internal/application"
	"github.com/mkravets/userhub/internal/domain/entity"
	handlers "github.com/mkravets/userhub/internal/interface/http"
	"github.com/mkravets/userhub/internal/interface/middleware"
	"github.com/mkravets/userhub/internal/router/modules"
	"github.com/mkravets/userhub/internal/session"
	"github.com/mkravets/userhub/pkg/helpers"
	"github.com/mkravets/userhub/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init(1900, 13)
	os.Exit(m.Run())
}

// stubRepo is an in-memory repository.UserRepository backing the flow tests.
type stubRepo struct {
	users map[string]*entity.User
	clock time.Time
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		users: make(map[string]*entity.User),
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *stubRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func clone(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func (r *stubRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return apperr.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = r.tick()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = clone(u)
	return nil
}

func (r *stubRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return clone(r.users[id]), nil
}

func (r *stubRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return clone(u), nil
		}
	}
	return nil, nil
}

func (r *stubRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, clone(u))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *stubRepo) SetActive(_ context.Context, id string, active bool) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u.IsActive = active
	u.UpdatedAt = r.tick()
	return clone(u), nil
}

func (r *stubRepo) UpsertAdmin(_ context.Context, u *entity.User) error {
	u.Role = entity.RoleAdmin
	u.IsActive = true
	for _, existing := range r.users {
		if existing.Email == u.Email {
			u.ID = existing.ID
			u.CreatedAt = existing.CreatedAt
			u.UpdatedAt = r.tick()
			r.users[u.ID] = clone(u)
			return nil
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = r.tick()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = clone(u)
	return nil
}

// memStore is an in-memory session.Store.
type memStore struct {
	sessions map[string]session.Session
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]session.Session)}
}

func (s *memStore) Create(_ context.Context, sess session.Session) (string, error) {
	id, err := session.NewID()
	if err != nil {
		return "", err
	}
	s.sessions[id] = sess
	return id, nil
}

func (s *memStore) Get(_ context.Context, id string) (*session.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *memStore) Destroy(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

type testServer struct {
	engine *gin.Engine
	repo   *stubRepo
	store  *memStore
	admin  *application.AdminService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := newStubRepo()
	store := newMemStore()
	cookies := helpers.NewCookie("localhost", false, time.Hour)

	authSvc := application.NewAuthService(repo, logger)
	userSvc := application.NewUserService(repo, logger)

	engine := gin.New()
	engine.Use(middleware.RequestID(), middleware.ErrorHandler(logger, "production"))

	root := engine.Group("/")
	modules.NewAuthModule(handlers.NewAuthHandler(authSvc, store, cookies, logger), store).Register(root)
	modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), store).Register(root)

	return &testServer{
		engine: engine,
		repo:   repo,
		store:  store,
		admin:  application.NewAdminService(repo),
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body any, sessionID string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: sessionID})
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func dataUser(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	data, ok := envelope(t, w)["data"].(map[string]any)
	require.True(t, ok, "body: %s", w.Body.String())
	u, ok := data["user"].(map[string]any)
	require.True(t, ok, "body: %s", w.Body.String())
	return u
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == helpers.SessionCookieName {
			return c
		}
	}
	return nil
}

func registerBody(email string) gin.H {
	return gin.H{
		"fullName":  "Test User",
		"email":     email,
		"password":  "secret123",
		"birthDate": "1990-06-15",
	}
}

// register creates a user over HTTP and returns its id and live session id.
func (ts *testServer) register(t *testing.T, email string) (userID, sessionID string) {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/auth/register", registerBody(email), "")
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	u := dataUser(t, w)
	c := sessionCookie(t, w)
	require.NotNil(t, c)
	return u["id"].(string), c.Value
}

// seedAdmin provisions an admin through the bootstrap path and logs it in.
func (ts *testServer) seedAdmin(t *testing.T) (userID, sessionID string) {
	t.Helper()
	admin, _, err := ts.admin.UpsertAdmin(context.Background(), application.AdminParams{
		Email:     "admin@example.com",
		Password:  "adminpass",
		FullName:  "System Administrator",
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	w := ts.do(t, http.MethodPost, "/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "adminpass",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	c := sessionCookie(t, w)
	require.NotNil(t, c)
	return admin.ID, c.Value
}
