package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	httpadapter "todoapp/internal/adapter/http"
	"todoapp/internal/adapter/http/handlers"
	"todoapp/internal/adapter/http/middleware"
	"todoapp/internal/adapter/http/views"
	"todoapp/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testUserID uint64 = 7
	testToken         = "valid-token"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) Dashboard(ctx context.Context, userID uint64, filter domain.TaskFilter) (domain.Dashboard, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).(domain.Dashboard), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, userID uint64, input domain.TaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.TaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

func (m *taskServiceMock) ToggleTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Login(ctx context.Context, username, password string) (domain.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

type sessionManagerMock struct {
	mock.Mock
}

func (m *sessionManagerMock) Issue(ctx context.Context, userID uint64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *sessionManagerMock) Authenticate(_ context.Context, token string) (uint64, error) {
	if token == testToken {
		return testUserID, nil
	}
	return 0, domain.ErrSessionNotFound
}

func (m *sessionManagerMock) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *sessionManagerMock) TTL() time.Duration {
	return time.Hour
}

type routerDeps struct {
	tasks    *taskServiceMock
	auth     *authServiceMock
	sessions *sessionManagerMock
}

func newDeps() routerDeps {
	return routerDeps{
		tasks:    new(taskServiceMock),
		auth:     new(authServiceMock),
		sessions: new(sessionManagerMock),
	}
}

// newRouter mounts the real route table over mocked services.
func newRouter(t *testing.T, deps routerDeps) *gin.Engine {
	t.Helper()

	templates, err := views.Load()
	require.NoError(t, err)

	router := gin.New()
	router.SetHTMLTemplate(templates)
	httpadapter.RegisterRoutes(router, deps.sessions, middleware.NewRateLimiter(0, 0), httpadapter.Handlers{
		Health: handlers.NewHealthHandler(nil, nil),
		Auth:   handlers.NewAuthHandler(deps.auth, deps.sessions, false),
		Tasks:  handlers.NewTaskHandler(deps.tasks),
	})
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func authenticated(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: testToken})
	return req
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func flashCookie(rec *httptest.ResponseRecorder) string {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "flash" {
			return cookie.Value
		}
	}
	return ""
}
