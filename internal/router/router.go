// File: internal/router/router.go
package router

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumerag/internal/apperr"
	"resumerag/internal/cache"
	"resumerag/internal/database"
	"resumerag/internal/dto"
	"resumerag/internal/handler"
	"resumerag/internal/handler/auth"
	"resumerag/internal/handler/resumes"
	"resumerag/internal/handler/users"
	"resumerag/internal/middleware"
	"resumerag/internal/model"
	"resumerag/internal/service"
)

// Tokens 同時能簽發與驗證令牌，*service.TokenService 即是
type Tokens interface {
	service.TokenIssuer
	service.TokenVerifier
}

// Deps 路由需要的所有相依物件
type Deps struct {
	DB             database.DB
	Cache          cache.Cache
	Tokens         Tokens
	Audit          *service.AuditRecorder
	Search         resumes.Searcher
	DemoAccounts   []model.DemoAccount
	LoginRateLimit int
	Env            string
	StartedAt      time.Time
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	e.HTTPErrorHandler = HTTPErrorHandler
	if e.IPExtractor == nil {
		// 限流鍵取自連線來源，轉送標頭可由用戶端任意偽造
		e.IPExtractor = echo.ExtractIPDirect()
	}

	e.GET("/health", handler.HealthHandler(d.DB, d.Cache, d.Env, d.StartedAt))

	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(d.Tokens, d.DB)

	// 帳號憑證相關端點依來源 IP 限流
	limit := middleware.RateLimit(d.Cache, d.LoginRateLimit, time.Minute)
	api.POST("/auth/register", auth.RegisterHandler(d.DB, d.Tokens, d.Audit), limit)
	api.POST("/auth/login", auth.LoginHandler(d.DB, d.Tokens, d.Audit), limit)
	api.POST("/auth/demo-login", auth.DemoLoginHandler(d.DB, d.Tokens, d.DemoAccounts, d.Audit), limit)

	// 需登入
	api.GET("/auth/profile", auth.GetProfileHandler(), requireAuth)
	api.PUT("/auth/profile", auth.UpdateProfileHandler(d.DB), requireAuth)
	api.POST("/auth/logout", auth.LogoutHandler(d.Audit), requireAuth)

	// 管理員專屬
	api.GET("/auth/users", users.ListUsersHandler(d.DB), requireAuth, middleware.RequireRole(model.RoleAdmin))

	apiResumes := api.Group("/resumes", requireAuth)
	apiResumes.GET("", resumes.ListResumesHandler(d.DB))
	apiResumes.POST("", resumes.CreateResumeHandler(d.DB, d.Search))
	apiResumes.POST("/search", resumes.SearchResumesHandler(d.Search))
}

// HTTPErrorHandler 將錯誤統一輸出成 {"error": "..."}；未分類錯誤只記錄，回應不帶細節
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		if code < http.StatusInternalServerError {
			msg = fmt.Sprint(he.Message)
		} else {
			c.Logger().Error(err)
		}
	case apperr.Status(err) != http.StatusInternalServerError:
		code = apperr.Status(err)
		msg = http.StatusText(code)
	default:
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, dto.HTTPError{Error: msg})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
