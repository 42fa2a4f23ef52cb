package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"todoapp/internal/adapter/http/views"
	"todoapp/pkg/apierrors"
)

const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP with a token bucket each.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter allows perMinute requests per client with the given burst.
// A non-positive perMinute disables throttling.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   limit,
		burst:   burst,
		now:     time.Now,
	}
}

func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for k, client := range l.clients {
			if now.Sub(client.lastSeen) > limiterIdleTTL {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	client, exists := l.clients[key]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = client
	}
	client.lastSeen = now

	return client.limiter.AllowN(now, 1)
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			lang := GetLang(c)
			if WantsJSON(c) {
				c.AbortWithStatusJSON(
					http.StatusTooManyRequests,
					apierrors.CreateError(http.StatusTooManyRequests, apierrors.MsgTooManyRequests, lang),
				)
				return
			}

			c.HTML(http.StatusTooManyRequests, "error.html", views.Page{
				Lang:  lang,
				Title: http.StatusText(http.StatusTooManyRequests),
				Data: views.ErrorData{
					Code:    http.StatusTooManyRequests,
					Message: apierrors.GetTransErrorMsg(apierrors.MsgTooManyRequests, lang),
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
