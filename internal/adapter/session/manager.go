package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

const issuer = "todoapp"

// Manager issues signed session tokens. A token is only valid while its
// session id is still present in the store, so Revoke logs the user out even
// before the token expires.
type Manager struct {
	store  ports.SessionStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(store ports.SessionStore, secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) Issue(ctx context.Context, userID uint64) (string, error) {
	sessionID := uuid.NewString()
	if err := m.store.Save(ctx, sessionID, userID, m.ttl); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   strconv.FormatUint(userID, 10),
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return token, nil
}

func (m *Manager) Authenticate(ctx context.Context, token string) (uint64, error) {
	claims, err := m.parse(token)
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidSession
	}

	storedUserID, err := m.store.Find(ctx, claims.ID)
	if err != nil {
		return 0, err
	}
	if storedUserID != userID {
		return 0, domain.ErrInvalidSession
	}

	return userID, nil
}

func (m *Manager) Revoke(ctx context.Context, token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return err
	}
	return m.store.Delete(ctx, claims.ID)
}

func (m *Manager) parse(token string) (*jwt.RegisteredClaims, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid || claims.ID == "" {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, domain.ErrInvalidSession
	}

	return claims, nil
}

var _ ports.SessionManager = (*Manager)(nil)
