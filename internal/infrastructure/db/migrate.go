package db

import (
	"autogiro-backend/internal/domain/device"
	"autogiro-backend/internal/domain/ledger"
	"autogiro-backend/internal/domain/proposal"
	"autogiro-backend/internal/domain/user"
	"autogiro-backend/internal/domain/vehicle"

	"gorm.io/gorm"
)

func Models() []any {
	return []any{
		&user.User{},
		&vehicle.Vehicle{},
		&proposal.Proposal{},
		&ledger.CreditTransaction{},
		&device.DeviceToken{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
