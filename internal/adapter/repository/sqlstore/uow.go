package sqlstore

import (
	"context"
	"errors"

	"autogiro-backend/internal/domain/uow"
	"autogiro-backend/internal/domain/user"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:     &UserRepository{db: tx},
		Vehicles:  &VehicleRepository{db: tx},
		Proposals: &ProposalRepository{db: tx},
		Ledger:    &LedgerRepository{db: tx},
	}
}

// run wraps begin/commit failures as transient; errors from fn pass through.
func (u *GormUoW) run(ctx context.Context, fn func(tx *gorm.DB) error) error {
	var fnErr error
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(tx)
		return fnErr
	})
	if err != nil && fnErr == nil {
		return uow.Transient(err)
	}
	return err
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.run(ctx, func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func (u *GormUoW) WithinUserTx(ctx context.Context, userID uint64, fn func(r uow.Repos, usr *user.User) error) error {
	return u.run(ctx, func(tx *gorm.DB) error {
		r := repos(tx)
		// lock the user row up-front to prevent races
		usr, err := r.Users.GetByIDForUpdate(ctx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.ErrNotFound
		}
		if err != nil {
			return uow.Transient(err)
		}
		return fn(r, usr)
	})
}
