package ledger

import "context"

type Repository interface {
	Append(ctx context.Context, e *CreditTransaction) error
	// Oldest first
	ListByUser(ctx context.Context, userID uint64) ([]CreditTransaction, error)
	// Newest first
	ListByUserPage(ctx context.Context, userID uint64, page, limit int) ([]CreditTransaction, int64, error)
}
