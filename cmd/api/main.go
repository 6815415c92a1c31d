package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "autogiro-backend/internal/adapter/http"
	"autogiro-backend/internal/adapter/notifier"
	"autogiro-backend/internal/adapter/repository/sqlstore"
	"autogiro-backend/internal/config"
	"autogiro-backend/internal/infrastructure/cache"
	"autogiro-backend/internal/infrastructure/db"
	"autogiro-backend/internal/infrastructure/metrics"
	"autogiro-backend/internal/infrastructure/scheduler"
	"autogiro-backend/internal/infrastructure/security"
	"autogiro-backend/internal/usecase/approval"
	"autogiro-backend/internal/usecase/auth"
	"autogiro-backend/internal/usecase/credit"
	"autogiro-backend/internal/usecase/notification"
	"autogiro-backend/internal/usecase/proposal"
	"autogiro-backend/internal/usecase/vehicle"
	"autogiro-backend/pkg/logger"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		panic(err)
	}
	cfg := config.Load()

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Filename: cfg.LogFile})
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal("open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatal("database handle", zap.Error(err))
	}
	defer sqlDB.Close()
	if cfg.DBAutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			log.Fatal("migrate", zap.Error(err))
		}
	}

	rdb, err := cache.OpenRedis(cache.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatal("open redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	defer rdb.Close()

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sender := newSender(rootCtx, cfg, log)

	// repositories
	users := sqlstore.NewUserRepository(gdb)
	vehicles := sqlstore.NewVehicleRepository(gdb)
	tx := sqlstore.NewGormUoW(gdb)

	// usecases
	jwtSvc := security.NewJWTService(cfg.JWTSecret, cfg.JWTExpiresIn)
	dispatcher := notification.NewDispatcher(sqlstore.NewDeviceRepository(gdb), sender, log, cfg.NotifyTimeout)
	vehicleUC := vehicle.NewUsecase(vehicles, log, time.UTC)

	routes := httpadp.Routes{
		Health:        httpadp.NewHandler(sqlDB),
		Auth:          httpadp.NewAuthHandler(auth.NewUsecase(users, security.NewBcryptHasher(), jwtSvc, log), log),
		Vehicles:      httpadp.NewVehicleHandler(vehicleUC, log),
		Proposals:     httpadp.NewProposalHandler(proposal.NewUsecase(sqlstore.NewProposalRepository(gdb), users, tx, dispatcher, log), log),
		Credits:       httpadp.NewCreditHandler(credit.NewUsecase(users, sqlstore.NewLedgerRepository(gdb), tx, log), log),
		Admin:         httpadp.NewAdminHandler(approval.NewUsecase(users, tx, dispatcher, log), log),
		Notifications: httpadp.NewNotificationHandler(dispatcher, log),
		Tokens:        jwtSvc,
		Redis:         rdb,
		IdempTTL:      time.Duration(cfg.IdempTTLSecs) * time.Second,
		Log:           log,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.HTTPErrorHandler = httpadp.HTTPErrorHandler(log)
	e.Use(
		middleware.Recover(),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogMethod:    true,
			LogURI:       true,
			LogStatus:    true,
			LogLatency:   true,
			LogRemoteIP:  true,
			LogRoutePath: true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				log.Info("request",
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.String("route", v.RoutePath),
					zap.Int("status", v.Status),
					zap.Duration("latency", v.Latency),
					zap.String("remote_ip", v.RemoteIP))
				return nil
			},
		}),
		metrics.Middleware(),
	)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	httpadp.Register(e, routes)

	cron := scheduler.New(log, 5*time.Minute)
	if err := cron.Register("deactivate-expired-vehicles", cfg.DeactivationCron, func(ctx context.Context) error {
		_, err := vehicleUC.DeactivateExpired(ctx, time.Now())
		return err
	}); err != nil {
		log.Fatal("schedule deactivation", zap.Error(err))
	}
	cron.Start()

	addr := ":" + cfg.AppPort
	go func() {
		log.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server", zap.Error(err))
		}
	}()

	<-rootCtx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
	cron.Stop(shutdownCtx)
	dispatcher.Wait()
}

// newSender falls back to a logging sender when no Firebase credentials are configured.
func newSender(ctx context.Context, cfg *config.Config, log *zap.Logger) notification.Sender {
	creds, err := cfg.FirebaseCredentialsJSON()
	if err != nil {
		log.Warn("firebase credentials unreadable, push disabled", zap.Error(err))
		return notifier.NewLogSender(log)
	}
	if len(creds) == 0 {
		log.Info("firebase credentials not set, push disabled")
		return notifier.NewLogSender(log)
	}
	fcm, err := notifier.NewFCMSender(ctx, creds)
	if err != nil {
		log.Warn("firebase init failed, push disabled", zap.Error(err))
		return notifier.NewLogSender(log)
	}
	return fcm
}
