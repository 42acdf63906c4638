// File: internal/dto/register_request.go
package dto

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Ann"`
	Email    string `json:"email" validate:"required,email" example:"ann@x.com"`
	Password string `json:"password" validate:"required,min=6" example:"secret1"`
	// role 可省略，預設 user；僅接受 user 或 demo
	Role string `json:"role,omitempty" validate:"omitempty,oneof=user demo" example:"user"`
}
