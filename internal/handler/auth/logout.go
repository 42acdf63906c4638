// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resumerag/internal/dto"
	"resumerag/internal/middleware"
	"resumerag/internal/model"
	"resumerag/internal/service"
)

// LogoutHandler 只回傳確認訊息；令牌無伺服器端狀態，到期前仍然有效
// @Summary     Logout
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Failure     401 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /auth/logout [post]
func LogoutHandler(audit *service.AuditRecorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		if user, ok := middleware.CurrentUser(c); ok {
			audit.Record(model.AuthEventLogout, user.ID, user.Email, c.RealIP())
		}
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
	}
}
