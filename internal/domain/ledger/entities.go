package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrBrokenChain         = errors.New("ledger chain broken")
)

// InsufficientCreditsError carries the numbers the client needs to show.
type InsufficientCreditsError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: required %s, available %s", e.Required.StringFixed(2), e.Available.StringFixed(2))
}

func (e *InsufficientCreditsError) Is(target error) bool { return target == ErrInsufficientCredits }

type EntryType string

const (
	EntryDebit           EntryType = "debit"
	EntryRefund          EntryType = "refund"
	EntryAdminAdjustment EntryType = "admin_adjustment"
)

// Table: credit_transactions (append-only)
type CreditTransaction struct {
	ID            uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID        uint64          `gorm:"column:user_id;not null;index:idx_credit_tx_user" json:"user_id"`
	Type          EntryType       `gorm:"column:type;type:varchar(24);not null" json:"type"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	BalanceBefore decimal.Decimal `gorm:"column:balance_before;type:decimal(18,2);not null" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"column:balance_after;type:decimal(18,2);not null" json:"balance_after"`
	ProposalID    *uint64         `gorm:"column:proposal_id;index" json:"proposal_id,omitempty"`
	Description   string          `gorm:"column:description;type:text" json:"description"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CreditTransaction) TableName() string { return "credit_transactions" }
