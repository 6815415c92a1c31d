package uowmock

import (
	"context"
	"errors"

	"autogiro-backend/internal/domain/uow"
	"autogiro-backend/internal/domain/user"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinUserTxFn func(ctx context.Context, userID uint64, fn func(r uow.Repos, u *user.User) error) error
}

// Passthrough runs callbacks directly against r, without a real transaction.
// WithinUserTx resolves the user through r.Users.GetByIDForUpdate.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error { return fn(r) },
		WithinUserTxFn: func(ctx context.Context, userID uint64, fn func(uow.Repos, *user.User) error) error {
			u, err := r.Users.GetByIDForUpdate(ctx, userID)
			if err != nil {
				return user.ErrNotFound
			}
			return fn(r, u)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinUserTx(ctx context.Context, userID uint64, fn func(r uow.Repos, u *user.User) error) error {
	if m.WithinUserTxFn != nil {
		return m.WithinUserTxFn(ctx, userID, fn)
	}
	return errUnimplemented
}
