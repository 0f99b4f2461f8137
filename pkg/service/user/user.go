// Package user implements account registration and lookups over the
// user repository.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mfadel/papertrade/pkg/domain"
	domainuser "github.com/mfadel/papertrade/pkg/domain/user"
	"github.com/mfadel/papertrade/pkg/dto"
	"github.com/mfadel/papertrade/pkg/repository"
	"github.com/mfadel/papertrade/pkg/utils"
	"github.com/shopspring/decimal"
)

// Service creates and manages user accounts.
type Service struct {
	uow          repository.UnitOfWork
	startingCash decimal.Decimal
	logger       *slog.Logger
}

// New creates a user service. New accounts are seeded with startingCash.
func New(
	uow repository.UnitOfWork,
	startingCash decimal.Decimal,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, startingCash: startingCash, logger: logger}
}

// Register creates an account with a hashed password and the seeded
// starting cash. Password/confirmation agreement is the caller's check;
// this method enforces non-empty fields and username uniqueness.
func (s *Service) Register(
	ctx context.Context,
	username, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Register", "username", username)

	entity, err := domainuser.New(username, password, s.startingCash)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("failed to get user repository: %w", err)
		}
		taken, err := repo.ExistsByUsername(ctx, entity.Username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return domain.ErrDuplicateUsername
		}
		return repo.Create(ctx, &dto.UserCreate{
			ID:             entity.ID,
			Username:       entity.Username,
			HashedPassword: entity.HashedPassword,
			Cash:           entity.Cash,
		})
	})
	if err != nil {
		log.Info("Register rejected", "error", err)
		return nil, err
	}

	log.Info("Register successful", "userID", entity.ID)
	return &dto.UserRead{
		ID:             entity.ID,
		Username:       entity.Username,
		HashedPassword: entity.HashedPassword,
		Cash:           entity.Cash,
		CreatedAt:      entity.CreatedAt,
		UpdatedAt:      entity.UpdatedAt,
	}, nil
}

// Get returns a user by id.
func (s *Service) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	repo, err := s.uow.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository: %w", err)
	}
	u, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domainuser.ErrUserNotFound
	}
	return u, nil
}

// GetByUsername returns a user by username.
func (s *Service) GetByUsername(
	ctx context.Context,
	username string,
) (*dto.UserRead, error) {
	repo, err := s.uow.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository: %w", err)
	}
	u, err := repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domainuser.ErrUserNotFound
	}
	return u, nil
}

// ResetPassword replaces the user's password hash. Used by the operator
// CLI only.
func (s *Service) ResetPassword(
	ctx context.Context,
	username, password string,
) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", domain.ErrValidation)
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("failed to get user repository: %w", err)
		}
		u, err := repo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if u == nil {
			return domainuser.ErrUserNotFound
		}
		return repo.UpdatePassword(ctx, u.ID, hashed)
	})
}
