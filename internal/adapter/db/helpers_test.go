package db

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"todoapp/internal/core/domain"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := ConnectSQLite("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *sqlx.DB, username string) domain.User {
	t.Helper()

	user, err := NewUserRepository(db).CreateUser(context.Background(), domain.User{
		Username:     username,
		Email:        username + "@x.com",
		PasswordHash: "hash",
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return user
}
