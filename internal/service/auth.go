package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/avoronkov/catalog-api/internal/hash"
	"github.com/avoronkov/catalog-api/internal/logging"
	"github.com/avoronkov/catalog-api/internal/models"
	"github.com/avoronkov/catalog-api/internal/tokens"
)

// The contract distinguishes an unknown username from a wrong password
// (404 vs 401 at the boundary), so the service keeps them apart too.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

type UserRepo interface {
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

type AuthService struct {
	Repo   UserRepo
	Tokens *tokens.Service
}

// Login validates credentials and issues an access token. Stateless: no
// session record is written anywhere.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	user, err := s.Repo.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login failed", "reason", "unknown username")
			return "", ErrUserNotFound
		}
		l.Error("login failed", "error", err)
		return "", err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login failed", "reason", "password mismatch")
		return "", ErrInvalidPassword
	}

	token, err := s.Tokens.Issue(user.Username, user.Role)
	if err != nil {
		l.Error("login failed", "reason", "token signing", "error", err)
		return "", err
	}
	return token, nil
}
