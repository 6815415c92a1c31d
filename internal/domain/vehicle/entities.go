package vehicle

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

var (
	ErrNotFound = errors.New("vehicle not found")
)

// Table: vehicles. HasWinningProposal implies !IsActive and is never cleared.
type Vehicle struct {
	ID                 uint64                      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ExternalID         string                      `gorm:"column:external_id;size:64;not null;uniqueIndex:ux_vehicles_external_id" json:"external_id"`
	Title              string                      `gorm:"column:title;size:255;not null" json:"title"`
	Brand              string                      `gorm:"column:brand;size:80" json:"brand"`
	Model              string                      `gorm:"column:model;size:120" json:"model"`
	Year               int                         `gorm:"column:year" json:"year"`
	Price              decimal.Decimal             `gorm:"column:price;type:decimal(18,2)" json:"price"`
	FipePrice          *decimal.Decimal            `gorm:"column:fipe_price;type:decimal(18,2)" json:"fipe_price,omitempty"`
	Mileage            *int                        `gorm:"column:mileage" json:"mileage,omitempty"`
	FuelType           string                      `gorm:"column:fuel_type;size:40" json:"fuel_type"`
	Transmission       string                      `gorm:"column:transmission;size:40" json:"transmission"`
	Color              string                      `gorm:"column:color;size:40" json:"color"`
	Description        string                      `gorm:"column:description;type:text" json:"description"`
	Category           string                      `gorm:"column:category;size:60" json:"category"`
	Location           string                      `gorm:"column:location;size:120" json:"location"`
	DealerName         string                      `gorm:"column:dealer_name;size:120" json:"dealer_name"`
	DealerPhone        string                      `gorm:"column:dealer_phone;size:20" json:"dealer_phone"`
	Images             datatypes.JSONSlice[string] `gorm:"column:images" json:"images"`
	EventDate          *time.Time                  `gorm:"column:event_date;index:idx_vehicles_event_date" json:"event_date,omitempty"`
	BatchDate          *time.Time                  `gorm:"column:batch_date" json:"batch_date,omitempty"`
	IsActive           bool                        `gorm:"column:is_active;not null;index:idx_vehicles_active" json:"is_active"`
	HasWinningProposal bool                        `gorm:"column:has_winning_proposal;not null" json:"has_winning_proposal"`
	DeactivatedAt      *time.Time                  `gorm:"column:deactivated_at" json:"deactivated_at,omitempty"`
	CreatedAt          time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Vehicle) TableName() string { return "vehicles" }
