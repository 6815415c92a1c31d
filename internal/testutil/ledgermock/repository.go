package ledgermock

import (
	"context"
	"sync"

	domain "autogiro-backend/internal/domain/ledger"
)

var _ domain.Repository = (*Repo)(nil)

// Repo records appended entries in memory unless AppendFn overrides it.
type Repo struct {
	AppendFn         func(ctx context.Context, e *domain.CreditTransaction) error
	ListByUserFn     func(ctx context.Context, userID uint64) ([]domain.CreditTransaction, error)
	ListByUserPageFn func(ctx context.Context, userID uint64, page, limit int) ([]domain.CreditTransaction, int64, error)

	mu      sync.Mutex
	Entries []domain.CreditTransaction
}

func (m *Repo) Append(ctx context.Context, e *domain.CreditTransaction) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = uint64(len(m.Entries) + 1)
	m.Entries = append(m.Entries, *e)
	return nil
}

func (m *Repo) ListByUser(ctx context.Context, userID uint64) ([]domain.CreditTransaction, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.CreditTransaction
	for _, e := range m.Entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *Repo) ListByUserPage(ctx context.Context, userID uint64, page, limit int) ([]domain.CreditTransaction, int64, error) {
	if m.ListByUserPageFn != nil {
		return m.ListByUserPageFn(ctx, userID, page, limit)
	}
	return nil, 0, context.Canceled
}
