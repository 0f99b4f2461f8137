package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mfadel/papertrade/pkg/dto"
	userrepo "github.com/mfadel/papertrade/pkg/repository/user"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New returns a gorm-backed user repository bound to the given session.
func New(db *gorm.DB) userrepo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) error {
	user := &User{
		ID:             create.ID,
		Username:       create.Username,
		HashedPassword: create.HashedPassword,
		Cash:           create.Cash,
	}
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	var user User
	if err := r.db.WithContext(
		ctx,
	).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&user), nil
}

// GetForUpdate locks the user row until the enclosing transaction ends,
// serializing concurrent buy/sell flows for the same user.
func (r *repository) GetForUpdate(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	var user User
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&user), nil
}

func (r *repository) GetByUsername(
	ctx context.Context,
	username string,
) (*dto.UserRead, error) {
	var user User
	if err := r.db.WithContext(
		ctx,
	).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&user), nil
}

func (r *repository) ExistsByUsername(
	ctx context.Context,
	username string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(
		ctx,
	).Model(&User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) UpdateCash(
	ctx context.Context,
	id uuid.UUID,
	cash decimal.Decimal,
) error {
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Update("cash", cash).Error
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id uuid.UUID,
	hashedPassword string,
) error {
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Update("hashed_password", hashedPassword).Error
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		Username:       u.Username,
		HashedPassword: u.HashedPassword,
		Cash:           u.Cash,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
