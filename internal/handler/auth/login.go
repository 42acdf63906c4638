// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"resumerag/internal/apperr"
	"resumerag/internal/database"
	"resumerag/internal/dto"
	"resumerag/internal/model"
	"resumerag/internal/service"
)

const msgInvalidCredentials = "Invalid email or password"

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// 帳號不存在、停用或密碼錯誤都回傳同一個 401
// @Summary     登入使用者
// @Description 驗證 email 與密碼，成功時更新最後登入時間並回傳存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.LoginRequest true "登入資料"
// @Success     200  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     429  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB, tokens service.TokenIssuer, audit *service.AuditRecorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		req.Email = service.NormalizeEmail(req.Email)
		if req.Email == "" || req.Password == "" {
			return badRequest(c, "Email and password are required")
		}

		user, err := findUserByEmail(c.Request().Context(), db, req.Email)
		if errors.Is(err, apperr.ErrNotFound) {
			audit.Record(model.AuthEventLoginFailed, "", req.Email, c.RealIP())
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: msgInvalidCredentials})
		}
		if err != nil {
			return internalError(c, "Failed to login", err)
		}

		if err := authenticateUser(*user, req.Password); err != nil {
			audit.Record(model.AuthEventLoginFailed, user.ID, req.Email, c.RealIP())
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: msgInvalidCredentials})
		}

		err = markLogin(c, db, user)
		if errors.Is(err, apperr.ErrNotFound) {
			// 比對密碼後帳號才被停用
			audit.Record(model.AuthEventLoginFailed, user.ID, req.Email, c.RealIP())
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: msgInvalidCredentials})
		}
		if err != nil {
			return internalError(c, "Failed to login", err)
		}

		resp, err := issueSession(tokens, user, "Login successful")
		if err != nil {
			return internalError(c, "Failed to login", err)
		}
		audit.Record(model.AuthEventLogin, user.ID, user.Email, c.RealIP())
		return c.JSON(http.StatusOK, resp)
	}
}
