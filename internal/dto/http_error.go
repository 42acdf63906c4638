// File: internal/dto/http_error.go
package dto

// HTTPError 全域錯誤響應模型
// swagger:model dto.HTTPError
type HTTPError struct {
	// error 錯誤描述
	Error string `json:"error" example:"Invalid email or password"`
}

// MessageResponse 僅含訊息的回應
// swagger:model dto.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Logout successful"`
}
