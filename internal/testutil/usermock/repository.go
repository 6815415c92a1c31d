package usermock

import (
	"context"

	domain "autogiro-backend/internal/domain/user"

	"github.com/shopspring/decimal"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Lookups without a function return context.Canceled; writes succeed.
type Repo struct {
	CreateFn               func(ctx context.Context, u *domain.User) error
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.User, error)
	GetByIDForUpdateFn     func(ctx context.Context, id uint64) (*domain.User, error)
	LockBalanceFn          func(ctx context.Context, id uint64) (*domain.User, error)
	GetByPhoneFn           func(ctx context.Context, phone string) (*domain.User, error)
	ListByApprovalStatusFn func(ctx context.Context, s domain.ApprovalStatus) ([]domain.User, error)
	SaveFn                 func(ctx context.Context, u *domain.User) error
	UpdateCreditsFn        func(ctx context.Context, id uint64, credits decimal.Decimal) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) LockBalance(ctx context.Context, id uint64) (*domain.User, error) {
	if m.LockBalanceFn != nil {
		return m.LockBalanceFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if m.GetByPhoneFn != nil {
		return m.GetByPhoneFn(ctx, phone)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByApprovalStatus(ctx context.Context, s domain.ApprovalStatus) ([]domain.User, error) {
	if m.ListByApprovalStatusFn != nil {
		return m.ListByApprovalStatusFn(ctx, s)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) UpdateCredits(ctx context.Context, id uint64, credits decimal.Decimal) error {
	if m.UpdateCreditsFn != nil {
		return m.UpdateCreditsFn(ctx, id, credits)
	}
	return nil
}
