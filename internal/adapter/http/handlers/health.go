package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"todoapp/internal/adapter/http/middleware"
	"todoapp/internal/core/ports"
)

const (
	StatusOk           = "ok"
	StatusDown         = "down"
	healthCheckTimeout = 2 * time.Second
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Database string `json:"database"`
	Sessions string `json:"sessions"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	DatabaseDriver    string         `json:"database_driver"`
	StoredSessions    *int           `json:"stored_sessions,omitempty"`
	Status            HealthServices `json:"status"`
}

// sessionCounter is implemented by stores that can cheaply count their entries.
type sessionCounter interface {
	Len() int
}

type HealthHandler struct {
	db       *sqlx.DB
	sessions ports.SessionStore
}

func NewHealthHandler(db *sqlx.DB, sessions ports.SessionStore) *HealthHandler {
	return &HealthHandler{db: db, sessions: sessions}
}

// CheckHealth is the liveness probe; it only fails when the database is unreachable.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkDatabase(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           getAppName(),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	ctx := c.Request.Context()

	databaseStatus := StatusDown
	if h.checkDatabase(ctx) {
		databaseStatus = StatusOk
	}
	sessionsStatus := StatusDown
	if h.checkSessions(ctx) {
		sessionsStatus = StatusOk
	}

	var driver string
	if h.db != nil {
		driver = h.db.DriverName()
	}

	report := HealthAdvanced{
		AppName:           getAppName(),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		DatabaseDriver:    driver,
		Status: HealthServices{
			Database: databaseStatus,
			Sessions: sessionsStatus,
		},
	}
	if counter, ok := h.sessions.(sessionCounter); ok {
		stored := counter.Len()
		report.StoredSessions = &stored
	}

	c.JSON(http.StatusOK, report)
}

func (h *HealthHandler) checkDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	// Avoid hanging health checks if the database stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func (h *HealthHandler) checkSessions(ctx context.Context) bool {
	if h.sessions == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	return h.sessions.Ping(timeoutCtx) == nil
}

func getAppName() string {
	name := os.Getenv("APP_NAME")
	if name == "" {
		return "todoapp"
	}
	return name
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
