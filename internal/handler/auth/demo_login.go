// File: internal/handler/auth/demo_login.go
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

const msgInvalidDemo = "Invalid demo credentials"

// DemoLoginHandler 以展示帳號登入，首次使用時建立對應的使用者
// 已存在的帳號仍須通過儲存的密碼比對，避免借展示清單登入他人帳號
// @Summary     Demo login
// @Description 比對設定中的展示帳號清單；首次登入時自動建立使用者
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.DemoLoginRequest true "展示帳號"
// @Success     200  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     429  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/demo-login [post]
func DemoLoginHandler(db database.DB, tokens service.TokenIssuer, accounts []model.DemoAccount, audit *service.AuditRecorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.DemoLoginRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		req.Email = service.NormalizeEmail(req.Email)
		if req.Email == "" || req.Password == "" {
			return badRequest(c, "Email and password are required")
		}

		acc, ok := service.MatchDemoAccount(accounts, req.Email, req.Password)
		if !ok {
			audit.Record(model.AuthEventLoginFailed, "", req.Email, c.RealIP())
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: msgInvalidDemo})
		}

		ctx := c.Request().Context()
		user, err := findUserByEmail(ctx, db, req.Email)
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			user, err = createDemoUser(c, db, acc)
			if err != nil {
				return internalError(c, "Failed to login with demo credentials", err)
			}
		case err != nil:
			return internalError(c, "Failed to login with demo credentials", err)
		}

		if err := authenticateUser(*user, req.Password); err != nil {
			audit.Record(model.AuthEventLoginFailed, user.ID, req.Email, c.RealIP())
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: msgInvalidDemo})
		}

		err = markLogin(c, db, user)
		if errors.Is(err, apperr.ErrNotFound) {
			// 比對密碼後帳號才被停用
			audit.Record(model.AuthEventLoginFailed, user.ID, req.Email, c.RealIP())
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: msgInvalidDemo})
		}
		if err != nil {
			return internalError(c, "Failed to login with demo credentials", err)
		}

		resp, err := issueSession(tokens, user, "Demo login successful")
		if err != nil {
			return internalError(c, "Failed to login with demo credentials", err)
		}
		audit.Record(model.AuthEventDemoLogin, user.ID, user.Email, c.RealIP())
		return c.JSON(http.StatusOK, resp)
	}
}

// createDemoUser 建立展示帳號；同時有另一個請求先建立時改讀既有紀錄
func createDemoUser(c echo.Context, db database.DB, acc model.DemoAccount) (*model.User, error) {
	hash, err := hashPassword(acc.Password)
	if err != nil {
		return nil, err
	}
	ctx := c.Request().Context()
	user, err := createUser(ctx, db, &model.User{
		Name:         acc.Name,
		Email:        service.NormalizeEmail(acc.Email),
		PasswordHash: hash,
		Role:         acc.Role,
	})
	if errors.Is(err, apperr.ErrDuplicateEmail) {
		return findUserByEmail(ctx, db, service.NormalizeEmail(acc.Email))
	}
	return user, err
}
