// File: internal/dto/update_profile_request.go
package dto

// UpdateProfileRequest 欄位皆可省略，省略者不變更
// swagger:model dto.UpdateProfileRequest
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100" example:"Ann Lee"`
	Email *string `json:"email,omitempty" validate:"omitempty,email" example:"ann.lee@x.com"`
}
