// File: internal/dto/user_response.go
package dto

import (
	"time"

	"resumerag/internal/model"
)

// UserResponse 公開的使用者資料，不含密碼
// swagger:model dto.UserResponse
type UserResponse struct {
	ID          string     `json:"id" example:"0b7d2a8e-7c2f-4d38-9f3e-5c1f0f6f4a11"`
	Name        string     `json:"name" example:"Ann"`
	Email       string     `json:"email" example:"ann@x.com"`
	Role        model.Role `json:"role" example:"user"`
	IsActive    bool       `json:"is_active" example:"true"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// swagger:model dto.AuthResponse
type AuthResponse struct {
	Message   string       `json:"message" example:"Login successful"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// swagger:model dto.ProfileResponse
type ProfileResponse struct {
	Message string       `json:"message,omitempty" example:"Profile updated successfully"`
	User    UserResponse `json:"user"`
}

// swagger:model dto.UsersResponse
type UsersResponse struct {
	Users []UserResponse `json:"users"`
}
