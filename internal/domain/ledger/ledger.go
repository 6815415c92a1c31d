package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NewEntry builds the entry moving a balance by delta (negative for debits).
// It refuses to produce a negative balance.
func NewEntry(typ EntryType, userID uint64, before, delta decimal.Decimal, proposalID *uint64, description string) (*CreditTransaction, error) {
	if delta.IsZero() {
		return nil, ErrInvalidAmount
	}
	after := before.Add(delta)
	if after.IsNegative() {
		return nil, &InsufficientCreditsError{Required: delta.Neg(), Available: before}
	}
	return &CreditTransaction{
		UserID:        userID,
		Type:          typ,
		Amount:        delta,
		BalanceBefore: before,
		BalanceAfter:  after,
		ProposalID:    proposalID,
		Description:   description,
	}, nil
}

// Replay sums the signed amounts of a user's entries.
func Replay(entries []CreditTransaction) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// Verify checks that entries (oldest first) form an unbroken chain starting
// at zero, each one consistent with its own amount.
func Verify(entries []CreditTransaction) error {
	prev := decimal.Zero
	for _, e := range entries {
		if !e.BalanceBefore.Equal(prev) {
			return fmt.Errorf("%w: entry %d starts at %s, previous ended at %s", ErrBrokenChain, e.ID, e.BalanceBefore, prev)
		}
		if !e.BalanceBefore.Add(e.Amount).Equal(e.BalanceAfter) {
			return fmt.Errorf("%w: entry %d does not add up", ErrBrokenChain, e.ID)
		}
		if e.BalanceAfter.IsNegative() {
			return fmt.Errorf("%w: entry %d leaves a negative balance", ErrBrokenChain, e.ID)
		}
		prev = e.BalanceAfter
	}
	return nil
}
