// File: internal/handler/auth/profile.go
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
	"resumerag/internal/middleware"
	"resumerag/internal/service"
)

// GetProfileHandler 回傳目前登入者的公開資料
// @Summary     Get current user profile
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.ProfileResponse
// @Failure     401 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /auth/profile [get]
func GetProfileHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Access denied. No token provided."})
		}
		return c.JSON(http.StatusOK, dto.ProfileResponse{User: dto.NewUserResponse(*user)})
	}
}

// UpdateProfileHandler 修改名稱或 email；已核發的令牌不受影響
// 只寫入有提供的欄位，role 與 is_active 以資料庫現值為準
// @Summary     Update current user profile
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.UpdateProfileRequest true "要修改的欄位"
// @Success     200  {object} dto.ProfileResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /auth/profile [put]
func UpdateProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		current, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Access denied. No token provided."})
		}

		var req dto.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return badRequest(c, "Name cannot be empty")
			}
			req.Name = &name
		}
		if req.Email != nil {
			email := service.NormalizeEmail(*req.Email)
			req.Email = &email
		}
		if err := c.Validate(&req); err != nil {
			return badRequest(c, handler.ValidationMessage(err))
		}

		updated, err := updateProfile(c.Request().Context(), db, current.ID, req.Name, req.Email)
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			// 驗證通過後帳號才被停用
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Invalid token or user not found."})
		case errors.Is(err, apperr.ErrDuplicateEmail):
			return badRequest(c, "Email is already in use")
		case err != nil:
			return internalError(c, "Failed to update profile", err)
		}

		return c.JSON(http.StatusOK, dto.ProfileResponse{
			Message: "Profile updated successfully",
			User:    dto.NewUserResponse(*updated),
		})
	}
}
