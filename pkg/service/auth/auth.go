// Package auth implements credential verification and session-token
// handling. Identity is carried in a signed JWT; no process-wide
// current-user state exists.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mfadel/papertrade/pkg/config"
	"github.com/mfadel/papertrade/pkg/domain"
	"github.com/mfadel/papertrade/pkg/dto"
	"github.com/mfadel/papertrade/pkg/repository"
	"github.com/mfadel/papertrade/pkg/utils"
)

// dummyHash is compared against when the username is unknown so login
// latency does not reveal whether a username exists.
const dummyHash = "$2a$12$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Service authenticates users and issues session tokens.
type Service struct {
	uow    repository.UnitOfWork
	cfg    config.Jwt
	logger *slog.Logger
}

// New creates an auth service.
func New(
	uow repository.UnitOfWork,
	cfg config.Jwt,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Login verifies a username/password pair. Unknown usernames and wrong
// passwords both return domain.ErrInvalidCredentials.
func (s *Service) Login(
	ctx context.Context,
	username, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Login", "username", username)

	repo, err := s.uow.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository: %w", err)
	}

	u, err = repo.GetByUsername(ctx, username)
	if err != nil {
		log.Error("Login failed", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		// Always check a password hash to keep timing flat.
		_ = utils.CheckPasswordHash(password, dummyHash)
		log.Info("Login rejected", "reason", "unknown username")
		return nil, domain.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, u.HashedPassword) {
		log.Info("Login rejected", "reason", "wrong password")
		return nil, domain.ErrInvalidCredentials
	}
	log.Info("Login successful", "userID", u.ID)
	return u, nil
}

// GenerateToken issues a signed session token for the user.
func (s *Service) GenerateToken(u *dto.UserRead) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = u.Username
	claims["user_id"] = u.ID.String()
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("GenerateToken failed", "userID", u.ID, "error", err)
		return "", err
	}
	return tokenString, nil
}

// CurrentUserID extracts the authenticated user id from a verified
// session token.
func (s *Service) CurrentUserID(token *jwt.Token) (uuid.UUID, error) {
	if token == nil {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	return userID, nil
}
