package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autogiro-backend/internal/adapter/repository/sqlstore"
	"autogiro-backend/internal/config"
	"autogiro-backend/internal/domain/user"
	"autogiro-backend/internal/infrastructure/db"
	"autogiro-backend/internal/infrastructure/security"
	"autogiro-backend/pkg/logger"
)

// create-admin creates an approved admin account, or promotes an existing
// account with the same phone.
func main() {
	phone := flag.String("phone", "", "admin phone number")
	name := flag.String("name", "Administrador", "display name")
	password := flag.String("password", "", "password (min 6 chars)")
	flag.Parse()

	if *phone == "" || len(*password) < 6 {
		flag.Usage()
		os.Exit(2)
	}

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.Load()
	log, err := logger.New(logger.Config{Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	if cfg.DBAutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			log.Fatal("migrate", zap.Error(err))
		}
	}

	hash, err := security.NewBcryptHasher().Hash(*password)
	if err != nil {
		log.Fatal("hash password", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	u, created, err := upsertAdmin(ctx, sqlstore.NewUserRepository(gdb), *phone, *name, hash, time.Now())
	if err != nil {
		log.Fatal("create admin", zap.Error(err))
	}
	log.Info("admin ready",
		zap.Uint64("user_id", u.ID),
		zap.String("phone", u.Phone),
		zap.Bool("created", created))
}

func upsertAdmin(ctx context.Context, users user.Repository, phone, name, hash string, now time.Time) (*user.User, bool, error) {
	u, err := users.GetByPhone(ctx, phone)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		u = &user.User{
			Phone:          phone,
			Name:           name,
			PasswordHash:   hash,
			Role:           user.RoleAdmin,
			ApprovalStatus: user.ApprovalApproved,
			ApprovedAt:     &now,
			Credits:        decimal.Zero,
			IsActive:       true,
		}
		if err := users.Create(ctx, u); err != nil {
			return nil, false, err
		}
		return u, true, nil
	case err != nil:
		return nil, false, err
	}

	u.Role = user.RoleAdmin
	u.ApprovalStatus = user.ApprovalApproved
	u.PasswordHash = hash
	u.IsActive = true
	if u.ApprovedAt == nil {
		u.ApprovedAt = &now
	}
	if err := users.Save(ctx, u); err != nil {
		return nil, false, err
	}
	return u, false, nil
}
