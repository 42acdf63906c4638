package store

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"resumerag/internal/model"
)

/* ---------- 假實作 ---------- */

// fakeUserRow 依 dest 數量模擬不同查詢：
// 9 → 完整 user / UpdateProfile；8 → ListUsers（無密碼）；2 → CreateUser；1 → TouchLastLogin
type fakeUserRow struct {
	scanErr error
	user    model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 9:
		*dest[0].(*string) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*model.Role) = u.Role
		*dest[5].(*bool) = u.IsActive
		*dest[6].(**time.Time) = u.LastLoginAt
		*dest[7].(*time.Time) = u.CreatedAt
		*dest[8].(*time.Time) = u.UpdatedAt
	case 8:
		*dest[0].(*string) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*model.Role) = u.Role
		*dest[4].(*bool) = u.IsActive
		*dest[5].(**time.Time) = u.LastLoginAt
		*dest[6].(*time.Time) = u.CreatedAt
		*dest[7].(*time.Time) = u.UpdatedAt
	case 2:
		*dest[0].(*time.Time) = u.CreatedAt
		*dest[1].(*time.Time) = u.UpdatedAt
	case 1:
		*dest[0].(*time.Time) = u.UpdatedAt
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeResumeRow 8 → 履歷；9 → 履歷 + hits；1 → created_at
type fakeResumeRow struct {
	scanErr error
	resume  model.Resume
	hits    int
}

func (r *fakeResumeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	v := r.resume
	if len(dest) == 1 {
		*dest[0].(*time.Time) = v.CreatedAt
		return nil
	}
	if len(dest) != 8 && len(dest) != 9 {
		panic("fakeResumeRow.Scan: unexpected dest count")
	}
	*dest[0].(*string) = v.ID
	*dest[1].(*string) = v.OwnerID
	*dest[2].(*string) = v.Name
	*dest[3].(*string) = v.Title
	*dest[4].(*string) = v.Email
	*dest[5].(*[]string) = v.Skills
	*dest[6].(*string) = v.Summary
	*dest[7].(*time.Time) = v.CreatedAt
	if len(dest) == 9 {
		*dest[8].(*int) = r.hits
	}
	return nil
}

// fakeRows 以 pgx.Row 清單模擬多筆結果
type fakeRows struct {
	rows []pgx.Row
	idx  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.rows) }
func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.idx]
	r.idx++
	return row.Scan(dest...)
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }
