package middleware

import (
	"errors"
	"net/http"
	"strings"

	"autogiro-backend/internal/domain/user"
	"autogiro-backend/internal/infrastructure/security"

	"github.com/labstack/echo/v4"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
	ctxPhone  = "phone"
)

type TokenVerifier interface {
	Verify(raw string) (*security.Claims, error)
}

// RequireJWT accepts "Authorization: Bearer <token>" and puts the caller on the context.
func RequireJWT(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return fail(c, http.StatusUnauthorized, "unauthenticated")
			}
			claims, err := v.Verify(raw)
			if err != nil {
				msg := "invalid or expired token"
				if errors.Is(err, security.ErrExpiredToken) {
					msg = "token expired"
				}
				return fail(c, http.StatusUnauthorized, msg)
			}
			c.Set(ctxUserID, claims.UserID)
			c.Set(ctxRole, claims.Role)
			c.Set(ctxPhone, claims.Phone)
			return next(c)
		}
	}
}

// RequireAdmin must run after RequireJWT. Usecases re-check the role against
// the store before any write.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Role(c) != user.RoleAdmin {
				return fail(c, http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

func UserID(c echo.Context) uint64 {
	id, _ := c.Get(ctxUserID).(uint64)
	return id
}

func Role(c echo.Context) user.Role {
	r, _ := c.Get(ctxRole).(user.Role)
	return r
}

func bearer(h string) (string, bool) {
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(h[len(prefix):])
	return tok, tok != ""
}

func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]any{"success": false, "error": msg})
}
