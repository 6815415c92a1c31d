package sqlstore

import (
	"context"
	"testing"
	"time"

	"autogiro-backend/internal/domain/proposal"
	"autogiro-backend/internal/domain/user"
	"autogiro-backend/internal/domain/vehicle"
	"autogiro-backend/internal/infrastructure/db"
	"autogiro-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB returns a migrated in-memory sqlite DB pinned to one connection,
// so every statement sees the same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedUser(t *testing.T, gdb *gorm.DB, phone string, credits string) *user.User {
	t.Helper()
	u := &user.User{
		Phone:          phone,
		Name:           "User " + phone,
		PasswordHash:   "x",
		Role:           user.RoleCustomer,
		ApprovalStatus: user.ApprovalApproved,
		Credits:        dec(credits),
		IsActive:       true,
	}
	if err := NewUserRepository(gdb).Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedVehicle(t *testing.T, gdb *gorm.DB, externalID string, active bool, batch *time.Time) *vehicle.Vehicle {
	t.Helper()
	v := &vehicle.Vehicle{
		ExternalID: externalID,
		Title:      "Car " + externalID,
		Brand:      "Fiat",
		Model:      "Uno",
		Year:       2019,
		Price:      dec("30000"),
		Images:     datatypes.JSONSlice[string]{"https://img/1.jpg"},
		BatchDate:  batch,
		IsActive:   true,
	}
	if err := NewVehicleRepository(gdb).Create(context.Background(), v); err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	if !active {
		// a false bool is a zero value, so flip it with an explicit update
		if err := gdb.Model(v).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate vehicle: %v", err)
		}
		v.IsActive = false
	}
	return v
}

func makeProposal(userID uint64, v *vehicle.Vehicle) *proposal.Proposal {
	return &proposal.Proposal{
		ProposalID:        id.NewID32(),
		VehicleID:         v.ID,
		VehicleExternalID: v.ExternalID,
		UserID:            userID,
		CustomerName:      "Ana",
		CustomerPhone:     "11999990000",
		ProposalAmount:    dec("15000"),
		CreditsUsed:       proposal.CreditsPerProposal,
		Status:            proposal.StatusPending,
		VehicleInfo: datatypes.NewJSONType(proposal.VehicleSnapshot{
			Title: v.Title, Brand: v.Brand, Model: v.Model, Year: v.Year, Price: v.Price,
		}),
		StatusUpdatedAt: time.Now().UTC(),
	}
}
