// File: internal/store/auth_event.go
package store

import (
	"context"
	"fmt"

	"resumerag/internal/database"
	"resumerag/internal/model"
)

// InsertAuthEvent 寫入一筆登入稽核紀錄
func InsertAuthEvent(ctx context.Context, db database.DB, ev *model.AuthEvent) error {
	ev.ID = newID()
	if _, err := db.Exec(ctx,
		`INSERT INTO auth_events (id, user_id, email, kind, ip)
		 VALUES ($1, $2, $3, $4, $5)`,
		ev.ID,
		ev.UserID,
		ev.Email,
		ev.Kind,
		ev.IP,
	); err != nil {
		return fmt.Errorf("InsertAuthEvent: %w", err)
	}
	return nil
}
