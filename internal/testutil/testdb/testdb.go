package testdb

import (
	"context"
	"testing"
	"time"

	"autogiro-backend/internal/domain/user"
	"autogiro-backend/internal/domain/vehicle"
	"autogiro-backend/internal/infrastructure/db"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open returns a migrated in-memory sqlite DB pinned to a single connection.
// Callers inside a transaction must only use the tx handle.
func Open(t testing.TB) *gorm.DB {
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
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

// User inserts an active user. Credits are written directly, so callers that
// check ledger replay should start from zero and grant through the ledger.
func User(t testing.TB, gdb *gorm.DB, phone string, role user.Role, status user.ApprovalStatus, credits string) *user.User {
	t.Helper()
	u := &user.User{
		Phone:          phone,
		Name:           "User " + phone,
		PasswordHash:   "x",
		Role:           role,
		ApprovalStatus: status,
		Credits:        decimal.RequireFromString(credits),
		IsActive:       true,
	}
	if err := gdb.WithContext(context.Background()).Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func Vehicle(t testing.TB, gdb *gorm.DB, externalID string) *vehicle.Vehicle {
	t.Helper()
	v := &vehicle.Vehicle{
		ExternalID: externalID,
		Title:      "Fiat Uno " + externalID,
		Brand:      "Fiat",
		Model:      "Uno",
		Year:       2019,
		Price:      decimal.NewFromInt(30000),
		IsActive:   true,
	}
	if err := gdb.Create(v).Error; err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	return v
}
