package http

import (
	"time"

	"autogiro-backend/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Routes struct {
	Health        *Handler
	Auth          *AuthHandler
	Vehicles      *VehicleHandler
	Proposals     *ProposalHandler
	Credits       *CreditHandler
	Admin         *AdminHandler
	Notifications *NotificationHandler

	Tokens   middleware.TokenVerifier
	Redis    redis.Cmdable
	IdempTTL time.Duration
	Log      *zap.Logger
}

func Register(e *echo.Echo, r Routes) {
	jwt := middleware.RequireJWT(r.Tokens)
	admin := middleware.RequireAdmin()
	idemp := middleware.Idempotency(r.Redis, r.IdempTTL, r.Log)

	e.GET("/health", r.Health.Health)

	api := e.Group("/api")

	a := api.Group("/auth")
	a.POST("/register", r.Auth.Register)
	a.POST("/login", r.Auth.Login)
	a.POST("/logout", r.Auth.Logout)
	a.GET("/me", r.Auth.Me, jwt)
	a.POST("/accept-terms", r.Auth.AcceptTerms, jwt)
	a.PATCH("/update-profile", r.Auth.UpdateProfile, jwt)
	a.PATCH("/change-password", r.Auth.ChangePassword, jwt)
	a.DELETE("/delete-account", r.Auth.DeleteAccount, jwt)

	v := api.Group("/vehicles")
	v.GET("", r.Vehicles.List)
	v.GET("/by-external-id/:external_id", r.Vehicles.GetByExternalID)
	v.GET("/:id", r.Vehicles.GetByID)

	p := api.Group("/proposals", jwt)
	p.POST("", r.Proposals.Submit, idemp)
	p.GET("/my", r.Proposals.ListMine)
	p.GET("/:id", r.Proposals.Get)
	p.PATCH("/:id/status", r.Proposals.UpdateStatus)

	cr := api.Group("/credits", jwt)
	cr.GET("/balance", r.Credits.Balance)
	cr.GET("/transactions", r.Credits.History)

	ad := api.Group("/admin", jwt, admin)
	ad.GET("/users/pending", r.Admin.ListPending)
	ad.POST("/users/:id/approve", r.Admin.Approve)
	ad.POST("/users/:id/reject", r.Admin.Reject)
	ad.POST("/users/:id/credits", r.Credits.Adjust)
	ad.GET("/users/:id/reconcile", r.Credits.Reconcile)
	ad.GET("/proposals", r.Proposals.ListAll)

	n := api.Group("/notifications", jwt)
	n.POST("/save-token", r.Notifications.SaveToken)
	n.DELETE("/remove-token", r.Notifications.RemoveToken)
	n.POST("/test", r.Notifications.Test)
}
