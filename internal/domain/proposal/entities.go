package proposal

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

var (
	ErrNotFound = errors.New("proposal not found")
)

// CreditsPerProposal is debited on submit and is the refund unit.
var CreditsPerProposal = decimal.NewFromInt(1)

// VehicleSnapshot freezes the display attributes at submission time.
type VehicleSnapshot struct {
	Title string          `json:"title"`
	Brand string          `json:"brand"`
	Model string          `json:"model"`
	Year  int             `json:"year"`
	Price decimal.Decimal `json:"price"`
}

// Table: proposals
type Proposal struct {
	ID                uint64                              `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ProposalID        string                              `gorm:"column:proposal_id;type:char(32);not null;uniqueIndex:ux_proposals_proposal_id" json:"proposal_id"`
	VehicleID         uint64                              `gorm:"column:vehicle_id;not null;index" json:"-"`
	VehicleExternalID string                              `gorm:"column:vehicle_external_id;size:64;not null" json:"vehicle_external_id"`
	UserID            uint64                              `gorm:"column:user_id;not null;index:idx_proposals_user" json:"user_id"`
	CustomerName      string                              `gorm:"column:customer_name;size:120;not null" json:"customer_name"`
	CustomerPhone     string                              `gorm:"column:customer_phone;size:20;not null" json:"customer_phone"`
	CustomerEmail     *string                             `gorm:"column:customer_email;size:160" json:"customer_email,omitempty"`
	ProposalAmount    decimal.Decimal                     `gorm:"column:proposal_amount;type:decimal(18,2);not null" json:"proposal_amount"`
	FinalAmount       *decimal.Decimal                    `gorm:"column:final_amount;type:decimal(18,2)" json:"final_amount,omitempty"`
	CreditsUsed       decimal.Decimal                     `gorm:"column:credits_used;type:decimal(18,2);not null" json:"credits_used"`
	Status            Status                              `gorm:"column:status;type:varchar(24);not null;index:idx_proposals_status" json:"status"`
	VehicleInfo       datatypes.JSONType[VehicleSnapshot] `gorm:"column:vehicle_info" json:"vehicle_info"`
	StatusUpdatedAt   time.Time                           `gorm:"column:status_updated_at" json:"status_updated_at"`
	CreatedAt         time.Time                           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time                           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Proposal) TableName() string { return "proposals" }
