// File: internal/model/demo_account.go
package model

// DemoAccount 是可免註冊登入的展示帳號，由設定注入
type DemoAccount struct {
	Email    string
	Password string
	Name     string
	Role     Role
}
