package sqlstore

import (
	"context"

	ledgerDomain "autogiro-backend/internal/domain/ledger"

	"gorm.io/gorm"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

// Append-only: there is no update or delete.
func (r *LedgerRepository) Append(ctx context.Context, e *ledgerDomain.CreditTransaction) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *LedgerRepository) ListByUser(ctx context.Context, userID uint64) ([]ledgerDomain.CreditTransaction, error) {
	var out []ledgerDomain.CreditTransaction
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *LedgerRepository) ListByUserPage(ctx context.Context, userID uint64, page, limit int) ([]ledgerDomain.CreditTransaction, int64, error) {
	var (
		out   []ledgerDomain.CreditTransaction
		total int64
	)
	q := r.db.WithContext(ctx).Model(&ledgerDomain.CreditTransaction{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	res := q.Order("id DESC").Offset((page - 1) * limit).Limit(limit).Find(&out)
	return out, total, res.Error
}
