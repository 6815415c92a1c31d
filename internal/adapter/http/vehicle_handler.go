package http

import (
	"net/http"

	"autogiro-backend/internal/usecase/vehicle"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type VehicleHandler struct {
	uc  *vehicle.Usecase
	log *zap.Logger
}

func NewVehicleHandler(uc *vehicle.Usecase, log *zap.Logger) *VehicleHandler {
	return &VehicleHandler{uc: uc, log: log}
}

type pageQuery struct {
	Page  int `query:"page" validate:"gte=0"`
	Limit int `query:"limit" validate:"gte=0"`
}

func (h *VehicleHandler) List(c echo.Context) error {
	var q pageQuery
	if err := c.Bind(&q); err != nil {
		return badRequest(c, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return validationFailed(c, err)
	}
	page, err := h.uc.List(c.Request().Context(), vehicle.ListQuery{Page: q.Page, Limit: q.Limit})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"data": page})
}

func (h *VehicleHandler) GetByExternalID(c echo.Context) error {
	v, err := h.uc.GetByExternalID(c.Request().Context(), c.Param("external_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"vehicle": v})
}

func (h *VehicleHandler) GetByID(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	v, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return respond(c, http.StatusOK, echo.Map{"vehicle": v})
}
