package http

import (
	"net/http"

	"autogiro-backend/internal/adapter/middleware"
	"autogiro-backend/internal/usecase/proposal"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProposalHandler struct {
	uc  *proposal.Usecase
	log *zap.Logger
}

func NewProposalHandler(uc *proposal.Usecase, log *zap.Logger) *ProposalHandler {
	return &ProposalHandler{uc: uc, log: log}
}

type submitProposalReq struct {
	VehicleExternalID string          `json:"vehicle_external_id" validate:"required,max=64"`
	ProposalAmount    decimal.Decimal `json:"proposal_amount" validate:"gt=0,dec2"`
	CustomerName      string          `json:"customer_name" validate:"required,max=120"`
	CustomerPhone     string          `json:"customer_phone" validate:"required,phone"`
	CustomerEmail     *string         `json:"customer_email" validate:"omitempty,email"`
}

type updateStatusReq struct {
	Status      string           `json:"status" validate:"required"`
	FinalAmount *decimal.Decimal `json:"final_amount" validate:"omitempty,gt=0,dec2"`
}

type adminProposalQuery struct {
	Status string `query:"status" validate:"omitempty,proposal_status"`
	Page   int    `query:"page" validate:"gte=0"`
	Limit  int    `query:"limit" validate:"gte=0"`
}

func (h *ProposalHandler) Submit(c echo.Context) error {
	var req submitProposalReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	res, err := h.uc.Submit(c.Request().Context(), middleware.UserID(c), proposal.SubmitInput{
		VehicleExternalID: req.VehicleExternalID,
		Amount:            req.ProposalAmount,
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		CustomerEmail:     req.CustomerEmail,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusCreated, echo.Map{
		"proposal":          res.Proposal,
		"remaining_credits": res.RemainingCredits,
	})
}

func (h *ProposalHandler) ListMine(c echo.Context) error {
	rows, err := h.uc.ListMine(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"proposals": rows})
}

func (h *ProposalHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if !reHex32.MatchString(id) {
		return badRequest(c, "invalid id")
	}
	dto, err := h.uc.Get(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"proposal": dto})
}

func (h *ProposalHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")
	if !reHex32.MatchString(id) {
		return badRequest(c, "invalid id")
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	res, err := h.uc.UpdateStatus(c.Request().Context(), middleware.UserID(c), proposal.UpdateStatusInput{
		ProposalID:  id,
		Status:      req.Status,
		FinalAmount: req.FinalAmount,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{
		"refunded":      res.Refunded,
		"refund_amount": res.RefundAmount,
		"old_status":    res.OldStatus,
		"new_status":    res.NewStatus,
	})
}

func (h *ProposalHandler) ListAll(c echo.Context) error {
	var q adminProposalQuery
	if err := c.Bind(&q); err != nil {
		return badRequest(c, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return validationFailed(c, err)
	}
	page, err := h.uc.ListAll(c.Request().Context(), proposal.ListQuery(q))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"data": page})
}
