package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a persisted ledger entry. Rows are append-only:
// no update or delete path exists in this package. Shares are positive
// for buys and negative for sells; Price is the execution price.
type Transaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Symbol    string          `gorm:"type:varchar(16);not null;index"`
	Shares    int64           `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "history"
}
