package ports

import (
	"context"

	"todoapp/internal/core/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (domain.User, error)
	Register(ctx context.Context, input domain.RegisterInput) (domain.User, error)
}
