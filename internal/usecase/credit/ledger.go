package credit

import (
	"context"
	"errors"
	"fmt"

	"autogiro-backend/internal/domain/ledger"
	"autogiro-backend/internal/domain/proposal"
	"autogiro-backend/internal/domain/uow"
	"autogiro-backend/internal/domain/user"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// The functions below are the only writers of users.credits. They must run
// inside a unit of work: the user row is locked, the balance is moved and the
// entry is appended, all on the same tx. Deactivated accounts are included.

// Debit removes a positive amount, failing with InsufficientCreditsError
// rather than going negative.
func Debit(ctx context.Context, r uow.Repos, userID uint64, amount decimal.Decimal, proposalID *uint64, description string) (*ledger.CreditTransaction, error) {
	if !amount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}
	return apply(ctx, r, ledger.EntryDebit, userID, amount.Neg(), proposalID, description)
}

// Refund returns a positive amount for a proposal.
func Refund(ctx context.Context, r uow.Repos, userID uint64, amount decimal.Decimal, reason proposal.RefundReason, proposalID *uint64) (*ledger.CreditTransaction, error) {
	if !amount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}
	return apply(ctx, r, ledger.EntryRefund, userID, amount, proposalID, RefundDescription(reason))
}

// Adjust applies an admin grant (positive) or correction (negative).
func Adjust(ctx context.Context, r uow.Repos, userID uint64, delta decimal.Decimal, description string) (*ledger.CreditTransaction, error) {
	return apply(ctx, r, ledger.EntryAdminAdjustment, userID, delta, nil, description)
}

func DebitDescription(vehicleTitle string) string {
	return "Proposal debit - " + vehicleTitle
}

func RefundDescription(reason proposal.RefundReason) string {
	return fmt.Sprintf("Refund - proposal %s", reason)
}

func apply(ctx context.Context, r uow.Repos, typ ledger.EntryType, userID uint64, delta decimal.Decimal, proposalID *uint64, description string) (*ledger.CreditTransaction, error) {
	u, err := r.Users.LockBalance(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, uow.Transient(err)
	}
	e, err := ledger.NewEntry(typ, userID, u.Credits, delta, proposalID, description)
	if err != nil {
		return nil, err
	}
	if err := r.Users.UpdateCredits(ctx, userID, e.BalanceAfter); err != nil {
		return nil, uow.Transient(err)
	}
	if err := r.Ledger.Append(ctx, e); err != nil {
		return nil, uow.Transient(err)
	}
	u.Credits = e.BalanceAfter
	return e, nil
}
