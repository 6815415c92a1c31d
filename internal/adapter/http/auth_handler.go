package http

import (
	"net/http"

	"autogiro-backend/internal/adapter/middleware"
	"autogiro-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthHandler struct {
	uc  *auth.Usecase
	log *zap.Logger
}

func NewAuthHandler(uc *auth.Usecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

type registerReq struct {
	Name     string  `json:"name" validate:"required,max=120"`
	Phone    string  `json:"phone" validate:"required,phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password string  `json:"password" validate:"required,min=6"`
}

type loginReq struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type profileReq struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=120"`
	Email *string `json:"email" validate:"omitempty,email"`
	CPF   *string `json:"cpf" validate:"omitempty,max=14"`
}

type changePasswordReq struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.Register(c.Request().Context(), auth.RegisterInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusCreated, echo.Map{
		"user":    dto,
		"message": "registration received; your account is pending approval",
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	sess, err := h.uc.Login(c.Request().Context(), auth.LoginInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"token": sess.Token, "expires_at": sess.ExpiresAt, "user": sess.User})
}

// Logout is client-side; tokens are stateless.
func (h *AuthHandler) Logout(c echo.Context) error {
	return respond(c, http.StatusOK, echo.Map{"message": "logged out"})
}

func (h *AuthHandler) Me(c echo.Context) error {
	dto, err := h.uc.Me(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"user": dto})
}

func (h *AuthHandler) AcceptTerms(c echo.Context) error {
	dto, err := h.uc.AcceptTerms(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"user": dto})
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.UpdateProfile(c.Request().Context(), middleware.UserID(c), auth.ProfileInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"user": dto})
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	err := h.uc.ChangePassword(c.Request().Context(), middleware.UserID(c), auth.ChangePasswordInput{
		Current: req.CurrentPassword,
		New:     req.NewPassword,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "password changed"})
}

func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	if err := h.uc.DeleteAccount(c.Request().Context(), middleware.UserID(c)); err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "account deleted"})
}
