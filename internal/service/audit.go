// File: internal/service/audit.go
package service

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"resumerag/internal/database"
	"resumerag/internal/model"
	"resumerag/internal/store"
	"resumerag/internal/worker"
)

const auditWriteTimeout = 5 * time.Second

var insertAuthEvent = store.InsertAuthEvent

// AuditRecorder 透過 worker pool 非同步寫入登入稽核紀錄
// 寫入失敗或佇列已滿只記錄日誌，不影響請求結果
type AuditRecorder struct {
	db     database.DB
	pool   worker.Pool
	logger echo.Logger
}

func NewAuditRecorder(db database.DB, pool worker.Pool, logger echo.Logger) *AuditRecorder {
	return &AuditRecorder{db: db, pool: pool, logger: logger}
}

// Record 排入一筆稽核事件，userID 可為空 (例如登入失敗)
func (r *AuditRecorder) Record(kind model.AuthEventKind, userID, email, ip string) {
	if r == nil {
		return
	}
	ev := &model.AuthEvent{Email: email, Kind: kind, IP: ip}
	if userID != "" {
		ev.UserID = &userID
	}
	queued := r.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		if err := insertAuthEvent(ctx, r.db, ev); err != nil {
			r.logger.Errorf("audit: %s for %s: %v", kind, email, err)
		}
	})
	if !queued {
		r.logger.Warnf("audit: queue full, dropped %s for %s", kind, email)
	}
}
