// File: internal/handler/health.go
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumerag/internal/cache"
	"resumerag/internal/database"
	"resumerag/internal/dto"
)

var timeNow = time.Now

// HealthHandler 健康檢查（不需認證）
// 資料庫無法連線時回 503；Redis 只影響頻率限制與快取，失敗僅記錄
// @Summary     Health Check
// @Description 回傳服務狀態、啟動至今秒數與執行環境
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.HealthResponse
// @Failure     503 {object} dto.HealthResponse
// @Router      /health [get]
func HealthHandler(db database.DB, rdb cache.Cache, env string, startedAt time.Time) echo.HandlerFunc {
	return func(c echo.Context) error {
		now := timeNow()
		resp := dto.HealthResponse{
			Status:      "OK",
			Timestamp:   now.UTC(),
			Uptime:      now.Sub(startedAt).Seconds(),
			Environment: env,
		}

		ctx := c.Request().Context()
		if rdb != nil {
			if err := rdb.Ping(ctx).Err(); err != nil {
				c.Logger().Warnf("health: redis ping: %v", err)
			}
		}
		if err := db.Ping(ctx); err != nil {
			c.Logger().Errorf("health: database ping: %v", err)
			resp.Status = "DEGRADED"
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
