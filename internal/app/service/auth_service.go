package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	bcryptCost     int
}

func NewAuthService(userRepository ports.UserRepository, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{userRepository: userRepository, bcryptCost: bcryptCost}
}

// Login returns ErrInvalidCredentials both for unknown usernames and wrong
// passwords so callers cannot tell the two apart.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("find user: %w", err)
	}

	if !user.CheckPassword(password) {
		zap.L().Info("login rejected", zap.Uint64("user_id", user.ID))
		return domain.User{}, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	exists, err := s.userRepository.UsernameExists(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return domain.User{}, domain.ErrDuplicateUsername
	}

	exists, err = s.userRepository.EmailExists(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return domain.User{}, domain.ErrDuplicateEmail
	}

	user := domain.User{Username: username, Email: email, CreatedAt: time.Now().UTC()}
	if err := user.SetPassword(input.Password, s.bcryptCost); err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) || errors.Is(err, domain.ErrDuplicateEmail) {
			return domain.User{}, err
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}

var _ ports.AuthService = (*AuthService)(nil)
