package user

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents a user record in the database.
type User struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	Username       string          `gorm:"uniqueIndex;not null;size:50"`
	HashedPassword string          `gorm:"not null"`
	Cash           decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
