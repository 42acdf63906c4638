// File: internal/store/user.go
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"resumerag/internal/apperr"
	"resumerag/internal/database"
	"resumerag/internal/model"
)

const uniqueViolation = "23505"

const userColumns = `id, name, email, password_hash, role, is_active, last_login_at, created_at, updated_at`

var newID = uuid.NewString

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.LastLoginAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

// mapError 將 pgx 錯誤轉成 apperr 分類
func mapError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, apperr.ErrDuplicateEmail)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func FindUserByID(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("FindUserByID: %w", apperr.ErrNotFound)
	}
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	))
	if err != nil {
		return nil, mapError("FindUserByID", err)
	}
	return u, nil
}

func FindUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	))
	if err != nil {
		return nil, mapError("FindUserByEmail", err)
	}
	return u, nil
}

// CreateUser 寫入新使用者；email 重複時由唯一索引拒絕並回傳 apperr.ErrDuplicateEmail
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	u.ID = newID()
	u.IsActive = true
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.IsActive,
	)
	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapError("CreateUser", err)
	}
	return u, nil
}

// TouchLastLogin 只寫入最後登入時間；帳號已停用或不存在時回傳 apperr.ErrNotFound
func TouchLastLogin(ctx context.Context, db database.DB, userID string, at time.Time) error {
	var updatedAt time.Time
	row := db.QueryRow(ctx,
		`UPDATE users
		 SET last_login_at = $1, updated_at = NOW()
		 WHERE id = $2 AND is_active
		 RETURNING updated_at`,
		at,
		userID,
	)
	if err := row.Scan(&updatedAt); err != nil {
		return mapError("TouchLastLogin", err)
	}
	return nil
}

// UpdateProfile 只改有提供的 name/email，其餘欄位以資料庫現值為準
// 回傳更新後的完整紀錄；帳號已停用或不存在時回傳 apperr.ErrNotFound
func UpdateProfile(ctx context.Context, db database.DB, userID string, name, email *string) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`UPDATE users
		 SET name = COALESCE($1, name), email = COALESCE($2, email), updated_at = NOW()
		 WHERE id = $3 AND is_active
		 RETURNING `+userColumns,
		name,
		email,
		userID,
	))
	if err != nil {
		return nil, mapError("UpdateProfile", err)
	}
	return u, nil
}

// ListUsers 依建立時間新到舊列出所有使用者，不讀取密碼欄位
func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, email, role, is_active, last_login_at, created_at, updated_at
		 FROM users
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.Role,
			&u.IsActive,
			&u.LastLoginAt,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}
