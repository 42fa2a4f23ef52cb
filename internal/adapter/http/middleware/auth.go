package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
	"todoapp/pkg/apierrors"
)

const (
	SessionCookieName = "session"
	LoginPath         = "/login"
	DashboardPath     = "/"

	userIDKey = "user_id"
)

// RequireAuth resolves the session cookie to a user id and stores it in the
// context. Browsers are redirected to the login page; JSON clients get 401.
func RequireAuth(sessions ports.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := authenticate(c, sessions)
		if err != nil {
			if !isSessionError(err) {
				zap.L().Error("failed to resolve session", zap.Error(err))
				c.AbortWithStatusJSON(
					http.StatusInternalServerError,
					apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, GetLang(c)),
				)
				return
			}

			if !errors.Is(err, http.ErrNoCookie) {
				ClearSessionCookie(c)
			}

			if WantsJSON(c) {
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgAuthenticationRequired, GetLang(c)),
				)
				return
			}

			AddFlash(c, apierrors.MsgLoginRequired)
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// RedirectIfAuthenticated sends users with a live session to the dashboard.
func RedirectIfAuthenticated(sessions ports.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := authenticate(c, sessions); err == nil {
			c.Redirect(http.StatusFound, DashboardPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok
}

func SetSessionCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(ttl.Seconds()), "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

func SessionToken(c *gin.Context) string {
	token, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

func WantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json") ||
		c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

func authenticate(c *gin.Context, sessions ports.SessionManager) (uint64, error) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil {
		return 0, err
	}
	if token == "" {
		return 0, http.ErrNoCookie
	}
	return sessions.Authenticate(c.Request.Context(), token)
}

func isSessionError(err error) bool {
	return errors.Is(err, http.ErrNoCookie) ||
		errors.Is(err, domain.ErrSessionNotFound) ||
		errors.Is(err, domain.ErrInvalidSession)
}
