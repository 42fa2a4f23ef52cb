package ports

import (
	"context"
	"time"
)

// SessionStore keeps the live sessions; a missing entry means logged out.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	Find(ctx context.Context, sessionID string) (uint64, error)
	Delete(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
}

type SessionManager interface {
	Issue(ctx context.Context, userID uint64) (string, error)
	Authenticate(ctx context.Context, token string) (uint64, error)
	Revoke(ctx context.Context, token string) error
	TTL() time.Duration
}
