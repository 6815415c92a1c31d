package user

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrNotApproved        = errors.New("account not approved")
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyProcessed   = errors.New("user already processed")
	ErrPhoneTaken         = errors.New("phone already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Table: users. Credits is the materialized balance; the credit_transactions
// ledger is authoritative and Credits must always equal its replay.
type User struct {
	ID              uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Phone           string          `gorm:"column:phone;size:20;not null;uniqueIndex:ux_users_phone" json:"phone"`
	Name            string          `gorm:"column:name;size:120;not null" json:"name"`
	Email           *string         `gorm:"column:email;size:160" json:"email,omitempty"`
	CPF             *string         `gorm:"column:cpf;size:14" json:"cpf,omitempty"`
	PasswordHash    string          `gorm:"column:password_hash;size:100;not null" json:"-"`
	Role            Role            `gorm:"column:role;type:varchar(16);not null" json:"role"`
	ApprovalStatus  ApprovalStatus  `gorm:"column:approval_status;type:varchar(16);not null;index:idx_users_approval_status" json:"approval_status"`
	ApprovedAt      *time.Time      `gorm:"column:approved_at" json:"approved_at,omitempty"`
	ApprovedBy      *uint64         `gorm:"column:approved_by" json:"approved_by,omitempty"`
	Credits         decimal.Decimal `gorm:"column:credits;type:decimal(18,2);not null" json:"credits"`
	TermsAccepted   bool            `gorm:"column:terms_accepted;not null" json:"terms_accepted"`
	TermsAcceptedAt *time.Time      `gorm:"column:terms_accepted_at" json:"terms_accepted_at"`
	IsActive        bool            `gorm:"column:is_active;not null" json:"-"`
	LastLoginAt     *time.Time      `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool    { return u.Role == RoleAdmin }
func (u *User) IsApproved() bool { return u.ApprovalStatus == ApprovalApproved }
