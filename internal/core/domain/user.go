package domain

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	UsernameMinLength = 4
	UsernameMaxLength = 20
	PasswordMinLength = 6
	EmailMaxLength    = 120
	// bcrypt only hashes the first 72 bytes and rejects longer input.
	PasswordMaxBytes = 72
)

type User struct {
	ID           uint64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// SetPassword stores the bcrypt hash of password; the plaintext is not kept.
func (u *User) SetPassword(password string, cost int) error {
	if len(password) > PasswordMaxBytes {
		return ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u User) CheckPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
