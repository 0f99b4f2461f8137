package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/mfadel/papertrade/pkg/domain/trading"
	"github.com/mfadel/papertrade/pkg/dto"
)

// Repository defines persistence operations for the transaction ledger.
// The ledger is append-only: there is no update or delete.
type Repository interface {
	// Record appends one immutable ledger entry.
	Record(ctx context.Context, create *dto.TransactionCreate) error
	// Holdings returns the user's net share count per symbol. Symbols
	// whose net count is zero are filtered out.
	Holdings(ctx context.Context, userID uuid.UUID) ([]trading.Holding, error)
	// HoldingForSymbol returns the user's net share count for one
	// symbol; zero when the symbol was never traded.
	HoldingForSymbol(ctx context.Context, userID uuid.UUID, symbol string) (int64, error)
	// History returns all of the user's ledger entries, oldest first.
	History(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error)
}
