package vehiclemock

import (
	"context"
	"time"

	domain "autogiro-backend/internal/domain/vehicle"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, v *domain.Vehicle) error
	ListActiveFn            func(ctx context.Context, page, limit int) ([]domain.Vehicle, error)
	CountActiveFn           func(ctx context.Context) (int64, error)
	GetByExternalIDFn       func(ctx context.Context, externalID string) (*domain.Vehicle, error)
	GetActiveByExternalIDFn func(ctx context.Context, externalID string) (*domain.Vehicle, error)
	GetActiveByIDFn         func(ctx context.Context, id uint64) (*domain.Vehicle, error)
	MarkWonFn               func(ctx context.Context, id uint64) error
	DeactivateExpiredFn     func(ctx context.Context, today time.Time) ([]domain.Vehicle, error)
}

func (m *Repo) Create(ctx context.Context, v *domain.Vehicle) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, v)
	}
	return nil
}

func (m *Repo) ListActive(ctx context.Context, page, limit int) ([]domain.Vehicle, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx, page, limit)
	}
	return nil, context.Canceled
}

func (m *Repo) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFn != nil {
		return m.CountActiveFn(ctx)
	}
	return 0, context.Canceled
}

func (m *Repo) GetByExternalID(ctx context.Context, externalID string) (*domain.Vehicle, error) {
	if m.GetByExternalIDFn != nil {
		return m.GetByExternalIDFn(ctx, externalID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetActiveByExternalID(ctx context.Context, externalID string) (*domain.Vehicle, error) {
	if m.GetActiveByExternalIDFn != nil {
		return m.GetActiveByExternalIDFn(ctx, externalID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetActiveByID(ctx context.Context, id uint64) (*domain.Vehicle, error) {
	if m.GetActiveByIDFn != nil {
		return m.GetActiveByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) MarkWon(ctx context.Context, id uint64) error {
	if m.MarkWonFn != nil {
		return m.MarkWonFn(ctx, id)
	}
	return nil
}

func (m *Repo) DeactivateExpired(ctx context.Context, today time.Time) ([]domain.Vehicle, error) {
	if m.DeactivateExpiredFn != nil {
		return m.DeactivateExpiredFn(ctx, today)
	}
	return nil, nil
}
