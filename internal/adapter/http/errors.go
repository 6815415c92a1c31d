package http

import (
	"errors"
	"net/http"

	"autogiro-backend/internal/domain/device"
	"autogiro-backend/internal/domain/ledger"
	"autogiro-backend/internal/domain/proposal"
	"autogiro-backend/internal/domain/uow"
	"autogiro-backend/internal/domain/user"
	"autogiro-backend/internal/domain/vehicle"
	"autogiro-backend/internal/usecase/approval"
	"autogiro-backend/internal/usecase/auth"
	"autogiro-backend/internal/usecase/notification"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type mapped struct {
	code int
	msg  string
}

var errorTable = []struct {
	err error
	mapped
}{
	{vehicle.ErrNotFound, mapped{http.StatusNotFound, "vehicle not found"}},
	{proposal.ErrNotFound, mapped{http.StatusNotFound, "proposal not found"}},
	{user.ErrNotFound, mapped{http.StatusNotFound, "user not found"}},
	{device.ErrNotFound, mapped{http.StatusNotFound, "device token not found"}},
	{notification.ErrNoDevices, mapped{http.StatusNotFound, "no registered devices"}},
	{proposal.ErrInvalidStatus, mapped{http.StatusBadRequest, "invalid status"}},
	{proposal.ErrInvalidTransition, mapped{http.StatusConflict, "invalid status transition"}},
	{ledger.ErrInvalidAmount, mapped{http.StatusBadRequest, "invalid amount"}},
	{approval.ErrInvalidDecision, mapped{http.StatusBadRequest, "invalid decision"}},
	{auth.ErrNothingToUpdate, mapped{http.StatusBadRequest, "nothing to update"}},
	{auth.ErrWeakPassword, mapped{http.StatusBadRequest, auth.ErrWeakPassword.Error()}},
	{notification.ErrInvalidToken, mapped{http.StatusBadRequest, "invalid device token"}},
	{user.ErrForbidden, mapped{http.StatusForbidden, "forbidden"}},
	{user.ErrNotApproved, mapped{http.StatusForbidden, "account not approved"}},
	{user.ErrAlreadyProcessed, mapped{http.StatusConflict, "account already processed"}},
	{user.ErrPhoneTaken, mapped{http.StatusConflict, "phone already registered"}},
	{user.ErrInvalidCredentials, mapped{http.StatusUnauthorized, "invalid phone or password"}},
	{notification.ErrNotConfigured, mapped{http.StatusServiceUnavailable, "push notifications not configured"}},
	{uow.ErrTransient, mapped{http.StatusServiceUnavailable, "temporary failure, retry"}},
}

// writeError renders err with the shared envelope. Unknown errors are logged
// and collapse to 500.
func writeError(c echo.Context, log *zap.Logger, err error) error {
	var ic *ledger.InsufficientCreditsError
	if errors.As(err, &ic) {
		return c.JSON(http.StatusForbidden, map[string]any{
			"success":   false,
			"error":     "insufficient credits",
			"required":  ic.Required,
			"available": ic.Available,
		})
	}
	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			if e.code >= http.StatusInternalServerError {
				log.Warn("request failed", zap.String("route", c.Path()), zap.Error(err))
			}
			return c.JSON(e.code, ErrorResponse{Error: e.msg})
		}
	}
	log.Error("unhandled error", zap.String("route", c.Path()), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
}

// HTTPErrorHandler keeps echo's own errors (404 route, 405) inside the envelope.
func HTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := http.StatusText(he.Code)
			if s, ok := he.Message.(string); ok {
				msg = s
			}
			_ = c.JSON(he.Code, ErrorResponse{Error: msg})
			return
		}
		_ = writeError(c, log, err)
	}
}
