package http

import (
	"net/http"

	"autogiro-backend/internal/adapter/middleware"
	"autogiro-backend/internal/usecase/notification"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	d   *notification.Dispatcher
	log *zap.Logger
}

func NewNotificationHandler(d *notification.Dispatcher, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{d: d, log: log}
}

type saveTokenReq struct {
	FCMToken string `json:"fcm_token" validate:"required,max=512"`
	Platform string `json:"platform" validate:"omitempty,oneof=android ios web"`
}

type removeTokenReq struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

func (h *NotificationHandler) SaveToken(c echo.Context) error {
	var req saveTokenReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	err := h.d.SaveToken(c.Request().Context(), notification.SaveTokenInput{
		UserID:   middleware.UserID(c),
		Token:    req.FCMToken,
		Platform: req.Platform,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "token saved"})
}

func (h *NotificationHandler) RemoveToken(c echo.Context) error {
	var req removeTokenReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	if err := h.d.RemoveToken(c.Request().Context(), middleware.UserID(c), req.FCMToken); err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "token removed"})
}

func (h *NotificationHandler) Test(c echo.Context) error {
	res, err := h.d.SendTest(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"result": res})
}
