// File: internal/service/authentication.go
package service

import (
	"crypto/subtle"
	"strings"

	"resumerag/internal/apperr"
	"resumerag/internal/model"
)

// AuthenticateUser 檢查帳號是否啟用並比對密碼
// 停用帳號與密碼錯誤回傳同一個錯誤，避免洩漏是哪個欄位有誤
func AuthenticateUser(user model.User, password string) error {
	if !user.IsActive {
		return apperr.ErrAuthenticationFailed
	}
	if user.PasswordHash == "" {
		return apperr.ErrAuthenticationFailed
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return apperr.ErrAuthenticationFailed
	}
	return nil
}

// NormalizeEmail 去除空白並轉小寫
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MatchDemoAccount 在展示帳號清單中尋找 email 與密碼皆相符的項目
func MatchDemoAccount(accounts []model.DemoAccount, email, password string) (model.DemoAccount, bool) {
	email = NormalizeEmail(email)
	for _, acc := range accounts {
		if NormalizeEmail(acc.Email) != email {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(acc.Password), []byte(password)) == 1 {
			return acc, true
		}
		return model.DemoAccount{}, false
	}
	return model.DemoAccount{}, false
}
