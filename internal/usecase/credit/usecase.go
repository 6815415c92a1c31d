package credit

import (
	"context"
	"errors"

	"autogiro-backend/internal/domain/ledger"
	"autogiro-backend/internal/domain/uow"
	"autogiro-backend/internal/domain/user"
	"autogiro-backend/internal/infrastructure/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Usecase struct {
	users  user.Repository
	ledger ledger.Repository
	uow    uow.UnitOfWork
	log    *zap.Logger
}

func NewUsecase(users user.Repository, entries ledger.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{users: users, ledger: entries, uow: tx, log: log}
}

func (u *Usecase) Balance(ctx context.Context, userID uint64) (*BalanceDTO, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, uow.Transient(err)
	}
	return &BalanceDTO{Credits: usr.Credits}, nil
}

func (u *Usecase) History(ctx context.Context, userID uint64, q HistoryQuery) (*HistoryDTO, error) {
	page, limit := Paging(q.Page, q.Limit)
	rows, total, err := u.ledger.ListByUserPage(ctx, userID, page, limit)
	if err != nil {
		return nil, uow.Transient(err)
	}
	if rows == nil {
		rows = []ledger.CreditTransaction{}
	}
	return &HistoryDTO{
		Transactions: rows,
		CurrentPage:  page,
		TotalPages:   TotalPages(total, limit),
		Total:        total,
	}, nil
}

// Adjust is the admin grant/correction path; it goes through the same ledger
// discipline as proposal debits.
func (u *Usecase) Adjust(ctx context.Context, in AdjustInput) (*AdjustDTO, error) {
	var dto *AdjustDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		actor, err := r.Users.GetByID(ctx, in.ActorID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return uow.Transient(err)
		}
		if err != nil || !actor.IsAdmin() {
			return user.ErrForbidden
		}
		e, err := Adjust(ctx, r, in.UserID, in.Amount, in.Description)
		if err != nil {
			return err
		}
		dto = &AdjustDTO{
			UserID:        e.UserID,
			Amount:        e.Amount,
			BalanceBefore: e.BalanceBefore,
			BalanceAfter:  e.BalanceAfter,
			CreatedAt:     e.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.LedgerEntry(string(ledger.EntryAdminAdjustment))
	u.log.Info("credits adjusted",
		zap.Uint64("actor_id", in.ActorID),
		zap.Uint64("user_id", in.UserID),
		zap.String("amount", dto.Amount.String()),
		zap.String("balance_after", dto.BalanceAfter.String()))
	return dto, nil
}

// Reconcile replays a user's ledger and compares it with the stored balance.
func (u *Usecase) Reconcile(ctx context.Context, userID uint64) (*ReconcileDTO, error) {
	var dto *ReconcileDTO
	err := u.uow.WithinUserTx(ctx, userID, func(r uow.Repos, usr *user.User) error {
		entries, err := r.Ledger.ListByUser(ctx, userID)
		if err != nil {
			return uow.Transient(err)
		}
		replayed := ledger.Replay(entries)
		dto = &ReconcileDTO{
			UserID:   userID,
			Stored:   usr.Credits,
			Replayed: replayed,
			Entries:  len(entries),
			Balanced: replayed.Equal(usr.Credits),
			ChainOK:  true,
		}
		if err := ledger.Verify(entries); err != nil {
			dto.ChainOK = false
			dto.Problem = err.Error()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !dto.Balanced || !dto.ChainOK {
		u.log.Warn("ledger mismatch",
			zap.Uint64("user_id", userID),
			zap.String("stored", dto.Stored.String()),
			zap.String("replayed", dto.Replayed.String()),
			zap.String("problem", dto.Problem))
	}
	return dto, nil
}

// Paging clamps page/limit to sane defaults.
func Paging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
