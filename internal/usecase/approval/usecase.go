package approval

import (
	"context"
	"errors"
	"time"

	"autogiro-backend/internal/domain/uow"
	"autogiro-backend/internal/domain/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Notifier interface {
	NotifyUser(ctx context.Context, userID uint64, title, body string, data map[string]string)
}

type Usecase struct {
	users    user.Repository
	uow      uow.UnitOfWork
	notifier Notifier
	log      *zap.Logger
	now      func() time.Time
}

func NewUsecase(users user.Repository, tx uow.UnitOfWork, n Notifier, log *zap.Logger) *Usecase {
	return &Usecase{
		users:    users,
		uow:      tx,
		notifier: n,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Decide moves a pending account to approved or rejected. Only one decision
// is ever recorded per account.
func (u *Usecase) Decide(ctx context.Context, actorID, userID uint64, d Decision) (*DecisionDTO, error) {
	next, err := d.status()
	if err != nil {
		return nil, err
	}

	var dto *DecisionDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		actor, err := r.Users.GetByID(ctx, actorID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return uow.Transient(err)
		}
		if err != nil || !actor.IsAdmin() {
			return user.ErrForbidden
		}

		target, err := r.Users.GetByIDForUpdate(ctx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.ErrNotFound
		}
		if err != nil {
			return uow.Transient(err)
		}
		if target.ApprovalStatus != user.ApprovalPending {
			return user.ErrAlreadyProcessed
		}

		now := u.now()
		target.ApprovalStatus = next
		target.ApprovedAt = &now
		target.ApprovedBy = &actorID
		if err := r.Users.Save(ctx, target); err != nil {
			return uow.Transient(err)
		}
		dto = &DecisionDTO{UserID: target.ID, ApprovalStatus: next, ApprovedAt: now, ApprovedBy: actorID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("account decision",
		zap.Uint64("user_id", userID),
		zap.Uint64("actor_id", actorID),
		zap.String("status", string(next)))

	title, body := "Conta aprovada", "Sua conta foi aprovada. Você já pode enviar propostas."
	if next == user.ApprovalRejected {
		title, body = "Conta recusada", "Sua conta não foi aprovada."
	}
	u.notifier.NotifyUser(ctx, userID, title, body, map[string]string{
		"type":   "account_approval",
		"status": string(next),
	})
	return dto, nil
}

func (u *Usecase) ListPending(ctx context.Context) ([]PendingUserDTO, error) {
	rows, err := u.users.ListByApprovalStatus(ctx, user.ApprovalPending)
	if err != nil {
		return nil, uow.Transient(err)
	}
	out := make([]PendingUserDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, PendingUserDTO{
			ID:        r.ID,
			Name:      r.Name,
			Phone:     r.Phone,
			Email:     r.Email,
			CPF:       r.CPF,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}
