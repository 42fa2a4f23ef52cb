package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

const mysqlErrDuplicateEntry = 1062

const userColumns = `id, username, email, password_hash, created_at`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           uint64    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	result, err := r.db.ExecContext(
		ctx,
		`INSERT INTO users (username, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		if dupErr := duplicateUserError(err); dupErr != nil {
			return domain.User{}, dupErr
		}
		return domain.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	user.ID = uint64(id)

	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT COUNT(*) FROM users WHERE username = ?`, username)
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, email)
}

func (r *UserRepository) getUser(ctx context.Context, query string, arg any) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.UTC(),
	}, nil
}

func (r *UserRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, query, arg); err != nil {
		return false, err
	}
	return count > 0, nil
}

// duplicateUserError maps unique index violations from either driver to the
// matching domain error, or returns nil for any other error.
func duplicateUserError(err error) error {
	var message string

	var mysqlErr *mysql.MySQLError
	var sqliteErr sqlite3.Error
	switch {
	case errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry:
		message = mysqlErr.Message
	case errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique:
		message = sqliteErr.Error()
	default:
		return nil
	}

	if strings.Contains(message, "email") {
		return domain.ErrDuplicateEmail
	}
	return domain.ErrDuplicateUsername
}
