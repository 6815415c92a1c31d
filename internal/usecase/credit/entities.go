package credit

import (
	"time"

	"autogiro-backend/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

type BalanceDTO struct {
	Credits decimal.Decimal `json:"credits"`
}

type HistoryQuery struct {
	Page  int
	Limit int
}

type HistoryDTO struct {
	Transactions []ledger.CreditTransaction `json:"transactions"`
	CurrentPage  int                        `json:"currentPage"`
	TotalPages   int                        `json:"totalPages"`
	Total        int64                      `json:"total"`
}

type AdjustInput struct {
	ActorID     uint64
	UserID      uint64
	Amount      decimal.Decimal
	Description string
}

type AdjustDTO struct {
	UserID        uint64          `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ReconcileDTO struct {
	UserID   uint64          `json:"user_id"`
	Stored   decimal.Decimal `json:"stored"`
	Replayed decimal.Decimal `json:"replayed"`
	Entries  int             `json:"entries"`
	Balanced bool            `json:"balanced"`
	ChainOK  bool            `json:"chain_ok"`
	Problem  string          `json:"problem,omitempty"`
}
