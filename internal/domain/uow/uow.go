package uow

import (
	"context"
	"errors"
	"fmt"

	"autogiro-backend/internal/domain/ledger"
	"autogiro-backend/internal/domain/proposal"
	"autogiro-backend/internal/domain/user"
	"autogiro-backend/internal/domain/vehicle"
)

// ErrTransient marks store failures that rolled the tx back and are safe to retry.
var ErrTransient = errors.New("transient store failure")

func Transient(err error) error {
	if err == nil || errors.Is(err, ErrTransient) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrTransient, err)
}

// Tx-scoped repositories
type Repos struct {
	Users     user.Repository
	Vehicles  vehicle.Repository
	Proposals proposal.Repository
	Ledger    ledger.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the user row first, then pass it in
	WithinUserTx(ctx context.Context, userID uint64, fn func(r Repos, u *user.User) error) error
}
