// File: internal/handler/auth/auth.go
package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumerag/internal/database"
	"resumerag/internal/dto"
	"resumerag/internal/model"
	"resumerag/internal/service"
	"resumerag/internal/store"
)

// 測試時可替換
var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	findUserByEmail  = store.FindUserByEmail
	createUser       = store.CreateUser
	touchLastLogin   = store.TouchLastLogin
	updateProfile    = store.UpdateProfile
	timeNow          = time.Now
)

// issueSession 簽發令牌並組出 AuthResponse
func issueSession(tokens service.TokenIssuer, user *model.User, message string) (dto.AuthResponse, error) {
	token, expiresAt, err := tokens.Issue(user.ID)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	return dto.AuthResponse{
		Message:   message,
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.NewUserResponse(*user),
	}, nil
}

// markLogin 只寫入最後登入時間；帳號在驗證後被停用時回傳 apperr.ErrNotFound
func markLogin(c echo.Context, db database.DB, user *model.User) error {
	now := timeNow().UTC()
	if err := touchLastLogin(c.Request().Context(), db, user.ID, now); err != nil {
		return err
	}
	user.LastLoginAt = &now
	return nil
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msg})
}

func internalError(c echo.Context, msg string, err error) error {
	c.Logger().Errorf("%s: %v", msg, err)
	return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: msg})
}
