// File: internal/database/db.go
package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB 是 store 層所需的最小資料庫介面，*pgxpool.Pool 直接實作
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(context.Context) error
	Close()
}

var _ DB = (*FakeDB)(nil)

// FakeDB 供測試注入，未設定的方法被呼叫時 panic
// panic 訊息帶上 SQL，方便找出是哪個 store 函式多打了一次查詢
type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func()
}

// Exec 執行 Fake 設定或 panic
func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn == nil {
		panic("FakeDB: unexpected Exec: " + sql)
	}
	return f.ExecFn(ctx, sql, args...)
}

// Query 執行 Fake 設定或 panic
func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn == nil {
		panic("FakeDB: unexpected Query: " + sql)
	}
	return f.QueryFn(ctx, sql, args...)
}

// QueryRow 執行 Fake 設定或 panic
func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn == nil {
		panic("FakeDB: unexpected QueryRow: " + sql)
	}
	return f.QueryRowFn(ctx, sql, args...)
}

// Ping 未設定時 panic；健康檢查測試需明確指定結果
func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn == nil {
		panic("FakeDB: unexpected Ping")
	}
	return f.PingFn(ctx)
}

// Close 執行 Fake 設定或 no-op
func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
