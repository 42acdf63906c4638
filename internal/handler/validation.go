// File: internal/handler/validation.go
package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidationMessage 把 validator 錯誤轉成給使用者看的訊息，只取第一個失敗欄位
// 非 validator 錯誤一律回 "Invalid request"，不外洩內部錯誤字串
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "email":
		return "Invalid email format"
	case "min":
		if fe.Field() == "Password" {
			return "Password must be at least " + fe.Param() + " characters long"
		}
		return fe.Field() + " is too short"
	case "max":
		return fe.Field() + " is too long"
	case "oneof":
		return "Role must be one of: " + fe.Param()
	case "required":
		return fe.Field() + " is required"
	}
	return "Invalid " + fe.Field()
}
