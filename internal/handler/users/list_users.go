// File: internal/handler/users/list_users.go
package users

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resumerag/internal/database"
	"resumerag/internal/dto"
	"resumerag/internal/store"
)

var listUsers = store.ListUsers

// ListUsersHandler 列出所有使用者（限 admin）
// @Summary     List users
// @Description 依建立時間新到舊列出所有使用者，回應不含密碼
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.UsersResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /auth/users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			c.Logger().Errorf("list users: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to fetch users"})
		}

		resp := dto.UsersResponse{Users: make([]dto.UserResponse, 0, len(users))}
		for _, u := range users {
			resp.Users = append(resp.Users, dto.NewUserResponse(u))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
