// File: internal/middleware/ratelimit.go
package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"resumerag/internal/cache"
)

const rateLimitPrefix = "ratelimit"

var rateNow = time.Now

// RateLimit 以 Redis 固定視窗限制每個來源 IP 的請求數
// Redis 出錯時放行並記錄日誌
func RateLimit(c cache.Cache, limit int, window time.Duration) echo.MiddlewareFunc {
	if window <= 0 {
		window = time.Minute
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			if limit <= 0 || c == nil {
				return next(ec)
			}
			ctx := ec.Request().Context()
			bucket := rateNow().UnixNano() / int64(window)
			key := fmt.Sprintf("%s:%s:%s:%d", rateLimitPrefix, ec.Path(), ec.RealIP(), bucket)

			count, err := c.Incr(ctx, key).Result()
			if err != nil {
				ec.Logger().Warnf("rate limit: %v", err)
				return next(ec)
			}
			if count == 1 {
				if err := c.Expire(ctx, key, window).Err(); err != nil {
					ec.Logger().Warnf("rate limit: expire %s: %v", key, err)
				}
			}
			if count > int64(limit) {
				ec.Response().Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, please try again later.")
			}
			return next(ec)
		}
	}
}
