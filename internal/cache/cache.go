package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 定義快取操作介面，*redis.Client 直接實作
// 用於搜尋結果快取與登入頻率限制
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type FakeCache struct {
	GetFn    func(ctx context.Context, key string) *redis.StringCmd
	SetFn    func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	DelFn    func(ctx context.Context, keys ...string) *redis.IntCmd
	IncrFn   func(ctx context.Context, key string) *redis.IntCmd
	ExpireFn func(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	PingFn   func(ctx context.Context) *redis.StatusCmd
	CloseFn  func() error
}

// Get 執行 Fake 設定或 panic
func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

// Set 執行 Fake 設定或 panic
func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

func (f *FakeCache) Incr(ctx context.Context, key string) *redis.IntCmd {
	if f.IncrFn != nil {
		return f.IncrFn(ctx, key)
	}
	panic("unexpected Incr")
}

func (f *FakeCache) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	if f.ExpireFn != nil {
		return f.ExpireFn(ctx, key, expiration)
	}
	panic("unexpected Expire")
}

// Ping 未設定時視為健康
func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return redis.NewStatusResult("PONG", nil)
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
