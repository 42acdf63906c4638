// File: internal/middleware/middleware.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"resumerag/internal/apperr"
	"resumerag/internal/database"
	"resumerag/internal/model"
	"resumerag/internal/service"
	"resumerag/internal/store"
)

const ContextUserKey = "user"

const (
	msgMissingToken = "Access denied. No token provided."
	msgInvalidToken = "Invalid token."
	msgUnknownUser  = "Invalid token or user not found."
	msgAdminOnly    = "Access denied. Admin role required."
)

var findUserByID = store.FindUserByID

// bearerToken 從 Authorization 標頭取出 Bearer 令牌
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", apperr.ErrMissingToken
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", apperr.ErrMissingToken
	}
	return strings.TrimSpace(parts[1]), nil
}

// RequireAuth 驗證令牌、載入使用者並放進 context
// 令牌過期與偽造回傳相同訊息，原因只寫在 debug 日誌
func RequireAuth(tokens service.TokenVerifier, db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, msgMissingToken)
			}

			subject, err := tokens.Verify(raw)
			if err != nil {
				c.Logger().Debugf("auth gate: %v", err)
				return echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
			}

			user, err := findUserByID(c.Request().Context(), db, subject)
			switch {
			case errors.Is(err, apperr.ErrNotFound):
				return echo.NewHTTPError(http.StatusUnauthorized, msgUnknownUser)
			case err != nil:
				return err
			case !user.IsActive:
				return echo.NewHTTPError(http.StatusUnauthorized, msgUnknownUser)
			}

			user.PasswordHash = ""
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireRole 必須放在 RequireAuth 之後
func RequireRole(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, msgMissingToken)
			}
			if !user.HasRole(role) {
				if role == model.RoleAdmin {
					return echo.NewHTTPError(http.StatusForbidden, msgAdminOnly)
				}
				return echo.NewHTTPError(http.StatusForbidden, "Access denied.")
			}
			return next(c)
		}
	}
}

// CurrentUser 取得 RequireAuth 放入的使用者
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok && user != nil
}
