package http

import (
	"net/http"

	"autogiro-backend/internal/adapter/middleware"
	"autogiro-backend/internal/usecase/credit"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreditHandler struct {
	uc  *credit.Usecase
	log *zap.Logger
}

func NewCreditHandler(uc *credit.Usecase, log *zap.Logger) *CreditHandler {
	return &CreditHandler{uc: uc, log: log}
}

type adjustReq struct {
	Amount      decimal.Decimal `json:"amount" validate:"ne=0,dec2"`
	Description string          `json:"description" validate:"max=255"`
}

func (h *CreditHandler) Balance(c echo.Context) error {
	b, err := h.uc.Balance(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"credits": b.Credits})
}

func (h *CreditHandler) History(c echo.Context) error {
	var q pageQuery
	if err := c.Bind(&q); err != nil {
		return badRequest(c, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return validationFailed(c, err)
	}
	out, err := h.uc.History(c.Request().Context(), middleware.UserID(c), credit.HistoryQuery{Page: q.Page, Limit: q.Limit})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"data": out})
}

// Adjust is the admin grant/correction entry point (admin_adjustment).
func (h *CreditHandler) Adjust(c echo.Context) error {
	userID, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	var req adjustReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	out, err := h.uc.Adjust(c.Request().Context(), credit.AdjustInput{
		ActorID:     middleware.UserID(c),
		UserID:      userID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"transaction": out})
}

func (h *CreditHandler) Reconcile(c echo.Context) error {
	userID, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	out, err := h.uc.Reconcile(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"reconciliation": out})
}
