package devicemock

import (
	"context"

	domain "autogiro-backend/internal/domain/device"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	UpsertFn           func(ctx context.Context, t *domain.DeviceToken) error
	DeleteFn           func(ctx context.Context, userID uint64, token string) error
	ListTokensByUserFn func(ctx context.Context, userID uint64) ([]string, error)
}

func (m *Repo) Upsert(ctx context.Context, t *domain.DeviceToken) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, t)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, userID uint64, token string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, token)
	}
	return nil
}

func (m *Repo) ListTokensByUser(ctx context.Context, userID uint64) ([]string, error) {
	if m.ListTokensByUserFn != nil {
		return m.ListTokensByUserFn(ctx, userID)
	}
	return nil, nil
}
