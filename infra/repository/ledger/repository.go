package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/mfadel/papertrade/pkg/domain/trading"
	"github.com/mfadel/papertrade/pkg/dto"
	ledgerrepo "github.com/mfadel/papertrade/pkg/repository/ledger"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New returns a gorm-backed ledger repository bound to the given session.
func New(db *gorm.DB) ledgerrepo.Repository {
	return &repository{db: db}
}

func (r *repository) Record(
	ctx context.Context,
	create *dto.TransactionCreate,
) error {
	tx := &Transaction{
		ID:     create.ID,
		UserID: create.UserID,
		Symbol: create.Symbol,
		Shares: create.Shares,
		Price:  create.Price,
	}
	return r.db.WithContext(ctx).Create(tx).Error
}

// Holdings sums signed share counts per symbol. Symbols that net out to
// zero are filtered here so closed positions never reach the views.
func (r *repository) Holdings(
	ctx context.Context,
	userID uuid.UUID,
) ([]trading.Holding, error) {
	var holdings []trading.Holding
	err := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Select("symbol, SUM(shares) AS shares").
		Where("user_id = ?", userID).
		Group("symbol").
		Having("SUM(shares) <> 0").
		Order("symbol").
		Scan(&holdings).Error
	if err != nil {
		return nil, err
	}
	return holdings, nil
}

func (r *repository) HoldingForSymbol(
	ctx context.Context,
	userID uuid.UUID,
	symbol string,
) (int64, error) {
	var shares int64
	err := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Select("COALESCE(SUM(shares), 0)").
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Scan(&shares).Error
	if err != nil {
		return 0, err
	}
	return shares, nil
}

func (r *repository) History(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.TransactionRead, error) {
	var txs []Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TransactionRead, 0, len(txs))
	for _, tx := range txs {
		result = append(result, mapModelToDTO(&tx))
	}
	return result, nil
}

func mapModelToDTO(tx *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Symbol:    tx.Symbol,
		Shares:    tx.Shares,
		Price:     tx.Price,
		CreatedAt: tx.CreatedAt,
	}
}
