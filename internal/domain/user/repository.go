package user

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint64) (*User, error)
	// Row lock (SELECT ... FOR UPDATE); only meaningful inside a tx
	GetByIDForUpdate(ctx context.Context, id uint64) (*User, error)
	// Like GetByIDForUpdate but also matches deactivated accounts; ledger
	// writes go through it so refunds still reach a deleted owner
	LockBalance(ctx context.Context, id uint64) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	ListByApprovalStatus(ctx context.Context, s ApprovalStatus) ([]User, error)
	Save(ctx context.Context, u *User) error
	// Only the ledger writes this column
	UpdateCredits(ctx context.Context, id uint64, credits decimal.Decimal) error
}
