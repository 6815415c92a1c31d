package proposal

import (
	"time"

	domain "autogiro-backend/internal/domain/proposal"

	"github.com/shopspring/decimal"
)

type SubmitInput struct {
	VehicleExternalID string
	Amount            decimal.Decimal
	CustomerName      string
	CustomerPhone     string
	CustomerEmail     *string
}

type UpdateStatusInput struct {
	ProposalID  string
	Status      string
	FinalAmount *decimal.Decimal
}

type ListQuery struct {
	Status string
	Page   int
	Limit  int
}

type ProposalDTO struct {
	ProposalID        string                 `json:"proposal_id"`
	UserID            uint64                 `json:"user_id"`
	VehicleExternalID string                 `json:"vehicle_external_id"`
	CustomerName      string                 `json:"customer_name"`
	CustomerPhone     string                 `json:"customer_phone"`
	CustomerEmail     *string                `json:"customer_email,omitempty"`
	ProposalAmount    decimal.Decimal        `json:"proposal_amount"`
	FinalAmount       *decimal.Decimal       `json:"final_amount,omitempty"`
	CreditsUsed       decimal.Decimal        `json:"credits_used"`
	Status            domain.Status          `json:"status"`
	VehicleInfo       domain.VehicleSnapshot `json:"vehicle_info"`
	StatusUpdatedAt   time.Time              `json:"status_updated_at"`
	CreatedAt         time.Time              `json:"created_at"`
}

type SubmitResult struct {
	Proposal         ProposalDTO     `json:"proposal"`
	RemainingCredits decimal.Decimal `json:"remaining_credits"`
}

// StatusChange is the full response contract of a transition.
type StatusChange struct {
	Refunded     bool            `json:"refunded"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
	OldStatus    domain.Status   `json:"old_status"`
	NewStatus    domain.Status   `json:"new_status"`
}

type PageDTO struct {
	Proposals   []ProposalDTO `json:"proposals"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
	Total       int64         `json:"total"`
}

func toDTO(p *domain.Proposal) ProposalDTO {
	return ProposalDTO{
		ProposalID:        p.ProposalID,
		UserID:            p.UserID,
		VehicleExternalID: p.VehicleExternalID,
		CustomerName:      p.CustomerName,
		CustomerPhone:     p.CustomerPhone,
		CustomerEmail:     p.CustomerEmail,
		ProposalAmount:    p.ProposalAmount,
		FinalAmount:       p.FinalAmount,
		CreditsUsed:       p.CreditsUsed,
		Status:            p.Status,
		VehicleInfo:       p.VehicleInfo.Data(),
		StatusUpdatedAt:   p.StatusUpdatedAt,
		CreatedAt:         p.CreatedAt,
	}
}

func toDTOs(rows []domain.Proposal) []ProposalDTO {
	out := make([]ProposalDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	return out
}
