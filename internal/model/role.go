// File: internal/model/role.go
package model

// Role 使用者角色
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleDemo  Role = "demo"
)

// Valid 回傳角色是否為已知值
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleDemo:
		return true
	}
	return false
}
