package http

import (
	"net/http"

	"autogiro-backend/internal/adapter/middleware"
	"autogiro-backend/internal/usecase/approval"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AdminHandler struct {
	uc  *approval.Usecase
	log *zap.Logger
}

func NewAdminHandler(uc *approval.Usecase, log *zap.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, log: log}
}

func (h *AdminHandler) ListPending(c echo.Context) error {
	rows, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"users": rows})
}

func (h *AdminHandler) Approve(c echo.Context) error { return h.decide(c, approval.Approve) }

func (h *AdminHandler) Reject(c echo.Context) error { return h.decide(c, approval.Reject) }

func (h *AdminHandler) decide(c echo.Context, d approval.Decision) error {
	userID, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	out, err := h.uc.Decide(c.Request().Context(), middleware.UserID(c), userID, d)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"user": out})
}
