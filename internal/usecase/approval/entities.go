package approval

import (
	"errors"
	"time"

	"autogiro-backend/internal/domain/user"
)

var ErrInvalidDecision = errors.New("invalid decision")

type Decision string

const (
	Approve Decision = "approve"
	Reject  Decision = "reject"
)

func (d Decision) status() (user.ApprovalStatus, error) {
	switch d {
	case Approve:
		return user.ApprovalApproved, nil
	case Reject:
		return user.ApprovalRejected, nil
	}
	return "", ErrInvalidDecision
}

type DecisionDTO struct {
	UserID         uint64              `json:"user_id"`
	ApprovalStatus user.ApprovalStatus `json:"approval_status"`
	ApprovedAt     time.Time           `json:"approved_at"`
	ApprovedBy     uint64              `json:"approved_by"`
}

type PendingUserDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	CPF       *string   `json:"cpf,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
