// File: internal/model/auth_event.go
package model

import "time"

type AuthEventKind string

const (
	AuthEventRegister    AuthEventKind = "register"
	AuthEventLogin       AuthEventKind = "login"
	AuthEventLoginFailed AuthEventKind = "login_failed"
	AuthEventDemoLogin   AuthEventKind = "demo_login"
	AuthEventLogout      AuthEventKind = "logout"
)

type AuthEvent struct {
	ID        string        `db:"id" json:"id"`
	UserID    *string       `db:"user_id" json:"user_id,omitempty"`
	Email     string        `db:"email" json:"email"`
	Kind      AuthEventKind `db:"kind" json:"kind"`
	IP        string        `db:"ip" json:"ip"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}
