// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"resumerag/internal/apperr"
	"resumerag/internal/database"
	"resumerag/internal/dto"
	"resumerag/internal/handler"
	"resumerag/internal/model"
	"resumerag/internal/service"
)

// RegisterHandler 建立帳號並直接回傳存取令牌
// @Summary     Register a new user
// @Description 建立使用者，email 不分大小寫且不可重複；role 僅接受 user 或 demo
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.RegisterRequest true "註冊資料"
// @Success     201  {object} dto.AuthResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     429  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, tokens service.TokenIssuer, audit *service.AuditRecorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Email = service.NormalizeEmail(req.Email)
		req.Role = strings.TrimSpace(req.Role)

		if req.Name == "" || req.Email == "" || req.Password == "" {
			return badRequest(c, "Name, email, and password are required")
		}
		if len(req.Password) < service.MinPasswordLength {
			return badRequest(c, "Password must be at least 6 characters long")
		}
		if err := c.Validate(&req); err != nil {
			return badRequest(c, handler.ValidationMessage(err))
		}

		role := model.RoleUser
		if req.Role != "" {
			role = model.Role(req.Role)
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return internalError(c, "Failed to register user", err)
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         role,
		})
		if errors.Is(err, apperr.ErrDuplicateEmail) {
			return badRequest(c, "User with this email already exists")
		}
		if err != nil {
			return internalError(c, "Failed to register user", err)
		}

		resp, err := issueSession(tokens, user, "User registered successfully")
		if err != nil {
			return internalError(c, "Failed to register user", err)
		}
		audit.Record(model.AuthEventRegister, user.ID, user.Email, c.RealIP())
		return c.JSON(http.StatusCreated, resp)
	}
}
