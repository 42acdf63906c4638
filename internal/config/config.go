// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"resumerag/internal/model"
)

// FallbackJWTSecret 僅供本機開發使用，正式環境禁止
const FallbackJWTSecret = "resumerag_secret_key_2024"

const EnvProduction = "production"

// Config 由環境變數組成的執行期設定
type Config struct {
	Env            string
	Port           string
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	JWTSecret      string
	InsecureSecret bool
	WorkerCount    int
	CORSOrigins    []string
	LoginRateLimit int
	SearchCacheTTL time.Duration
	DemoAccounts   []model.DemoAccount
}

// DefaultDemoAccounts 展示帳號預設清單
func DefaultDemoAccounts() []model.DemoAccount {
	return []model.DemoAccount{
		{Email: "admin@mail.com", Password: "admin123", Name: "Admin User", Role: model.RoleAdmin},
		{Email: "demo@resumerag.com", Password: "demo123", Name: "Demo User", Role: model.RoleDemo},
		{Email: "hr@company.com", Password: "hr123", Name: "HR Manager", Role: model.RoleUser},
	}
}

var loadDotenv = func() error { return godotenv.Load() }

// Load 先嘗試載入 .env，再從環境變數組出設定並做基本驗證
func Load() (Config, error) {
	// .env 不存在時直接沿用環境變數
	_ = loadDotenv()

	cfg := Config{
		Env:           fallback(os.Getenv("APP_ENV"), "development"),
		Port:          fallback(os.Getenv("PORT"), "8000"),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
		CORSOrigins:   parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "http://localhost:3000")),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.RedisAddr == "" {
		return Config{}, errors.New("REDIS_ADDR is required")
	}

	var err error
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.WorkerCount, err = intEnv("WORKER_COUNT", 1); err != nil || cfg.WorkerCount <= 0 {
		return Config{}, fmt.Errorf("invalid WORKER_COUNT: %q", os.Getenv("WORKER_COUNT"))
	}
	if cfg.LoginRateLimit, err = intEnv("LOGIN_RATE_LIMIT", 20); err != nil || cfg.LoginRateLimit <= 0 {
		return Config{}, fmt.Errorf("invalid LOGIN_RATE_LIMIT: %q", os.Getenv("LOGIN_RATE_LIMIT"))
	}
	cfg.SearchCacheTTL, err = time.ParseDuration(fallback(os.Getenv("SEARCH_CACHE_TTL"), "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SEARCH_CACHE_TTL: %w", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return Config{}, errors.New("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = FallbackJWTSecret
		cfg.InsecureSecret = true
	}

	cfg.DemoAccounts = DefaultDemoAccounts()
	if raw := strings.TrimSpace(os.Getenv("DEMO_ACCOUNTS")); raw != "" {
		if cfg.DemoAccounts, err = ParseDemoAccounts(raw); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// IsProduction 是否為正式環境
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, EnvProduction)
}

// HTTPAddress 回傳 HTTP 伺服器綁定位址
func (c Config) HTTPAddress() string {
	return ":" + c.Port
}

// ParseDemoAccounts 解析 "email|password|name|role" 以逗號分隔的清單
func ParseDemoAccounts(raw string) ([]model.DemoAccount, error) {
	var out []model.DemoAccount
	for _, entry := range parseCSV(raw) {
		parts := strings.Split(entry, "|")
		if len(parts) != 4 {
			return nil, fmt.Errorf("invalid DEMO_ACCOUNTS entry %q", entry)
		}
		acc := model.DemoAccount{
			Email:    strings.ToLower(strings.TrimSpace(parts[0])),
			Password: parts[1],
			Name:     strings.TrimSpace(parts[2]),
			Role:     model.Role(strings.TrimSpace(parts[3])),
		}
		if acc.Email == "" || acc.Password == "" || !acc.Role.Valid() {
			return nil, fmt.Errorf("invalid DEMO_ACCOUNTS entry %q", entry)
		}
		out = append(out, acc)
	}
	return out, nil
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
