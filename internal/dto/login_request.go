// File: internal/dto/login_request.go
package dto

// swagger:model dto.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"ann@x.com"`
	Password string `json:"password" validate:"required" example:"secret1"`
}

// DemoLoginRequest 與 LoginRequest 欄位相同，但只比對展示帳號清單
// swagger:model dto.DemoLoginRequest
type DemoLoginRequest struct {
	Email    string `json:"email" validate:"required" example:"demo@resumerag.com"`
	Password string `json:"password" validate:"required" example:"demo123"`
}
