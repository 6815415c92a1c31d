package proposal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autogiro-backend/internal/domain/ledger"
	domain "autogiro-backend/internal/domain/proposal"
	"autogiro-backend/internal/domain/uow"
	"autogiro-backend/internal/domain/user"
	"autogiro-backend/internal/domain/vehicle"
	"autogiro-backend/internal/infrastructure/metrics"
	"autogiro-backend/internal/usecase/credit"
	"autogiro-backend/pkg/id"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Notifier interface {
	NotifyUser(ctx context.Context, userID uint64, title, body string, data map[string]string)
}

type Usecase struct {
	proposals domain.Repository
	users     user.Repository
	uow       uow.UnitOfWork
	notifier  Notifier
	log       *zap.Logger
	now       func() time.Time
}

func NewUsecase(proposals domain.Repository, users user.Repository, tx uow.UnitOfWork, n Notifier, log *zap.Logger) *Usecase {
	return &Usecase{
		proposals: proposals,
		users:     users,
		uow:       tx,
		notifier:  n,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Submit debits one credit and creates a pending proposal, all or nothing.
func (u *Usecase) Submit(ctx context.Context, userID uint64, in SubmitInput) (*SubmitResult, error) {
	var out *SubmitResult

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		v, err := r.Vehicles.GetActiveByExternalID(ctx, in.VehicleExternalID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return vehicle.ErrNotFound
		}
		if err != nil {
			return uow.Transient(err)
		}

		// Lock the balance before anything is written
		usr, err := r.Users.GetByIDForUpdate(ctx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.ErrNotFound
		}
		if err != nil {
			return uow.Transient(err)
		}
		if !usr.IsApproved() {
			return user.ErrNotApproved
		}
		if usr.Credits.LessThan(domain.CreditsPerProposal) {
			return &ledger.InsufficientCreditsError{Required: domain.CreditsPerProposal, Available: usr.Credits}
		}

		now := u.now()
		p := &domain.Proposal{
			ProposalID:        id.NewID32(),
			VehicleID:         v.ID,
			VehicleExternalID: v.ExternalID,
			UserID:            userID,
			CustomerName:      in.CustomerName,
			CustomerPhone:     in.CustomerPhone,
			CustomerEmail:     in.CustomerEmail,
			ProposalAmount:    in.Amount,
			CreditsUsed:       domain.CreditsPerProposal,
			Status:            domain.StatusPending,
			VehicleInfo: datatypes.NewJSONType(domain.VehicleSnapshot{
				Title: v.Title,
				Brand: v.Brand,
				Model: v.Model,
				Year:  v.Year,
				Price: v.Price,
			}),
			StatusUpdatedAt: now,
		}
		if err := r.Proposals.Create(ctx, p); err != nil {
			return uow.Transient(err)
		}

		entry, err := credit.Debit(ctx, r, userID, p.CreditsUsed, &p.ID, credit.DebitDescription(v.Title))
		if err != nil {
			return err
		}

		out = &SubmitResult{Proposal: toDTO(p), RemainingCredits: entry.BalanceAfter}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ProposalSubmitted()
	metrics.LedgerEntry(string(ledger.EntryDebit))
	u.log.Info("proposal submitted",
		zap.String("proposal_id", out.Proposal.ProposalID),
		zap.Uint64("user_id", userID),
		zap.String("vehicle_external_id", out.Proposal.VehicleExternalID),
		zap.String("remaining_credits", out.RemainingCredits.String()))
	return out, nil
}

// UpdateStatus moves a proposal along the transition table, applying the
// refund and vehicle side effects of the (old, new) pair in the same tx.
func (u *Usecase) UpdateStatus(ctx context.Context, actorID uint64, in UpdateStatusInput) (*StatusChange, error) {
	var (
		out     *StatusChange
		ownerID uint64
	)

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Proposals.GetByProposalIDForUpdate(ctx, in.ProposalID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		if err != nil {
			return uow.Transient(err)
		}

		if err := ownerOrAdmin(ctx, r.Users, actorID, p.UserID); err != nil {
			return err
		}

		next, err := domain.ParseStatus(in.Status)
		if err != nil {
			return err
		}

		old := p.Status
		eff, err := domain.Transition(old, next)
		if err != nil {
			return err
		}

		refund := decimal.Zero
		if eff.Refund {
			if _, err := credit.Refund(ctx, r, p.UserID, p.CreditsUsed, eff.RefundReason, &p.ID); err != nil {
				return err
			}
			refund = p.CreditsUsed
		}

		if eff.MarkVehicleWon {
			if err := r.Vehicles.MarkWon(ctx, p.VehicleID); err != nil {
				return uow.Transient(err)
			}
		}

		if next == domain.StatusWon && in.FinalAmount != nil {
			fa := *in.FinalAmount
			p.FinalAmount = &fa
		}
		p.Status = next
		p.StatusUpdatedAt = u.now()
		if err := r.Proposals.Save(ctx, p); err != nil {
			return uow.Transient(err)
		}

		ownerID = p.UserID
		out = &StatusChange{
			Refunded:     eff.Refund,
			RefundAmount: refund,
			OldStatus:    old,
			NewStatus:    next,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ProposalTransition(string(out.OldStatus), string(out.NewStatus))
	if out.Refunded {
		metrics.LedgerEntry(string(ledger.EntryRefund))
	}
	u.log.Info("proposal status changed",
		zap.String("proposal_id", in.ProposalID),
		zap.Uint64("actor_id", actorID),
		zap.String("from", string(out.OldStatus)),
		zap.String("to", string(out.NewStatus)),
		zap.Bool("refunded", out.Refunded))

	if actorID != ownerID && out.OldStatus != out.NewStatus {
		title, body := statusMessage(out)
		u.notifier.NotifyUser(ctx, ownerID, title, body, map[string]string{
			"type":        "proposal_status",
			"proposal_id": in.ProposalID,
			"status":      string(out.NewStatus),
		})
	}
	return out, nil
}

func (u *Usecase) ListMine(ctx context.Context, userID uint64) ([]ProposalDTO, error) {
	rows, err := u.proposals.ListByUser(ctx, userID)
	if err != nil {
		return nil, uow.Transient(err)
	}
	return toDTOs(rows), nil
}

// Get is visible to the owner and to admins.
func (u *Usecase) Get(ctx context.Context, actorID uint64, proposalID string) (*ProposalDTO, error) {
	p, err := u.proposals.GetByProposalID(ctx, proposalID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, uow.Transient(err)
	}
	if err := ownerOrAdmin(ctx, u.users, actorID, p.UserID); err != nil {
		return nil, err
	}
	dto := toDTO(p)
	return &dto, nil
}

func (u *Usecase) ListAll(ctx context.Context, q ListQuery) (*PageDTO, error) {
	page, limit := credit.Paging(q.Page, q.Limit)
	f := domain.ListFilter{Page: page, Limit: limit}
	if q.Status != "" {
		st, err := domain.ParseStatus(q.Status)
		if err != nil {
			return nil, err
		}
		f.Status = &st
	}
	rows, total, err := u.proposals.List(ctx, f)
	if err != nil {
		return nil, uow.Transient(err)
	}
	return &PageDTO{
		Proposals:   toDTOs(rows),
		CurrentPage: page,
		TotalPages:  credit.TotalPages(total, limit),
		Total:       total,
	}, nil
}

var statusLabels = map[domain.Status]string{
	domain.StatusPending:      "pendente",
	domain.StatusAccepted:     "aceita",
	domain.StatusRejected:     "recusada",
	domain.StatusOutbid:       "superada",
	domain.StatusWon:          "vencedora",
	domain.StatusAwaitingBank: "aguardando banco",
	domain.StatusBankApproved: "aprovada pelo banco",
	domain.StatusBankRejected: "recusada pelo banco",
	domain.StatusInWithdrawal: "em retirada",
	domain.StatusCompleted:    "concluída",
}

// statusMessage builds the pt-BR push shown to the proposal owner.
func statusMessage(c *StatusChange) (string, string) {
	switch c.NewStatus {
	case domain.StatusWon:
		return "Você venceu o leilão!", "Sua proposta foi a vencedora."
	case domain.StatusAccepted:
		return "Proposta aceita", "Sua proposta foi aceita."
	}
	body := fmt.Sprintf("Sua proposta agora está %s.", statusLabels[c.NewStatus])
	if c.Refunded {
		body += fmt.Sprintf(" %s crédito(s) devolvido(s).", c.RefundAmount.StringFixed(2))
	}
	return "Proposta atualizada", body
}

// ownerOrAdmin reads the actor's role from the store, not from the token.
func ownerOrAdmin(ctx context.Context, users user.Repository, actorID, ownerID uint64) error {
	if actorID == ownerID {
		return nil
	}
	actor, err := users.GetByID(ctx, actorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.ErrForbidden
	}
	if err != nil {
		return uow.Transient(err)
	}
	if !actor.IsAdmin() {
		return user.ErrForbidden
	}
	return nil
}
