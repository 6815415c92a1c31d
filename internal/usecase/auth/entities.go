package auth

import (
	"errors"
	"time"

	"autogiro-backend/internal/domain/user"

	"github.com/shopspring/decimal"
)

var (
	ErrNothingToUpdate = errors.New("nothing to update")
	ErrWeakPassword    = errors.New("password must be at least 6 characters")
)

const minPasswordLen = 6

type RegisterInput struct {
	Name     string
	Phone    string
	Email    *string
	Password string
}

type LoginInput struct {
	Phone    string
	Password string
}

type ProfileInput struct {
	Name  *string
	Email *string
	CPF   *string
}

type ChangePasswordInput struct {
	Current string
	New     string
}

type UserDTO struct {
	ID              uint64              `json:"id"`
	Name            string              `json:"name"`
	Phone           string              `json:"phone"`
	Email           *string             `json:"email,omitempty"`
	CPF             *string             `json:"cpf,omitempty"`
	Role            user.Role           `json:"role"`
	ApprovalStatus  user.ApprovalStatus `json:"approval_status"`
	Credits         decimal.Decimal     `json:"credits"`
	TermsAccepted   bool                `json:"terms_accepted"`
	TermsAcceptedAt *time.Time          `json:"terms_accepted_at"`
	CreatedAt       time.Time           `json:"created_at"`
}

type SessionDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserDTO   `json:"user"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:              u.ID,
		Name:            u.Name,
		Phone:           u.Phone,
		Email:           u.Email,
		CPF:             u.CPF,
		Role:            u.Role,
		ApprovalStatus:  u.ApprovalStatus,
		Credits:         u.Credits,
		TermsAccepted:   u.TermsAccepted,
		TermsAcceptedAt: u.TermsAcceptedAt,
		CreatedAt:       u.CreatedAt,
	}
}
