// @title        ResumeRAG API
// @version      1.0
// @description  ResumeRAG 履歷上傳、搜尋與帳號驗證 API
// @host         localhost:8000
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	glog "github.com/labstack/gommon/log"

	"resumerag/internal/cache"
	"resumerag/internal/config"
	"resumerag/internal/database"
	"resumerag/internal/router"
	"resumerag/internal/service"
	"resumerag/internal/worker"

	_ "resumerag/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	auditQueueSize  = 256
	shutdownTimeout = 10 * time.Second
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(e *echo.Echo, ctx context.Context) error { return e.Shutdown(ctx) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	// 關閉順序：HTTP server 先停，再等 worker 寫完稽核紀錄，最後才關 Redis 與 DB
	wp := newWorkerPool(cfg.WorkerCount, auditQueueSize)
	defer wp.Stop()

	e := newEcho(cfg)
	if cfg.InsecureSecret {
		e.Logger.Warn("JWT_SECRET 未設定，使用內建的不安全預設值；僅限本機開發")
	}

	router.Setup(e, router.Deps{
		DB:             db,
		Cache:          rdb,
		Tokens:         service.NewTokenService(cfg.JWTSecret),
		Audit:          service.NewAuditRecorder(db, wp, e.Logger),
		Search:         service.NewResumeSearch(db, rdb, cfg.SearchCacheTTL, e.Logger),
		DemoAccounts:   cfg.DemoAccounts,
		LoginRateLimit: cfg.LoginRateLimit,
		Env:            cfg.Env,
		StartedAt:      time.Now(),
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return serve(e, cfg.HTTPAddress())
}

func newEcho(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 30 * time.Second
	// 頻率限制以連線來源 IP 為準，不信任 X-Forwarded-For / X-Real-IP
	e.IPExtractor = echo.ExtractIPDirect()
	if cfg.IsProduction() {
		e.Logger.SetLevel(glog.INFO)
	} else {
		e.Debug = true
		e.Logger.SetLevel(glog.DEBUG)
	}

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	return e
}

// serve 啟動 HTTP server，收到 SIGINT/SIGTERM 時優雅關閉
func serve(e *echo.Echo, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, addr) }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	e.Logger.Info("收到結束訊號，關閉 HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return shutdownServer(e, shutdownCtx)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
