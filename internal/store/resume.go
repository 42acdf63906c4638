// File: internal/store/resume.go
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"resumerag/internal/database"
	"resumerag/internal/model"
)

const resumeColumns = `id, owner_id, name, title, email, skills, summary, created_at`

func scanResume(row pgx.Row, extra ...any) (model.Resume, error) {
	var r model.Resume
	dest := append([]any{
		&r.ID,
		&r.OwnerID,
		&r.Name,
		&r.Title,
		&r.Email,
		&r.Skills,
		&r.Summary,
		&r.CreatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return model.Resume{}, err
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	return r, nil
}

func CreateResume(ctx context.Context, db database.DB, r *model.Resume) (*model.Resume, error) {
	r.ID = newID()
	if r.Skills == nil {
		r.Skills = []string{}
	}
	row := db.QueryRow(ctx,
		`INSERT INTO resumes (id, owner_id, name, title, email, skills, summary, text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`,
		r.ID,
		r.OwnerID,
		r.Name,
		r.Title,
		r.Email,
		r.Skills,
		r.Summary,
		r.Text,
	)
	if err := row.Scan(&r.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateResume: %w", err)
	}
	return r, nil
}

// ListResumes 依建立時間新到舊列出履歷
func ListResumes(ctx context.Context, db database.DB) ([]model.Resume, error) {
	rows, err := db.Query(ctx,
		`SELECT `+resumeColumns+` FROM resumes ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListResumes: %w", err)
	}
	defer rows.Close()

	out := []model.Resume{}
	for rows.Next() {
		r, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("ListResumes: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListResumes: %w", err)
	}
	return out, nil
}

// SearchResumes 以關鍵字比對 name/title/summary/skills，回傳每筆履歷命中的關鍵字數
func SearchResumes(ctx context.Context, db database.DB, terms []string, limit int) ([]model.ResumeMatch, error) {
	patterns := make([]string, len(terms))
	for i, t := range terms {
		patterns[i] = "%" + escapeLike(t) + "%"
	}

	rows, err := db.Query(ctx,
		`SELECT `+resumeColumns+`, hits FROM (
		     SELECT r.*, (
		         SELECT COUNT(*) FROM unnest($1::text[]) AS q(pattern)
		         WHERE r.name ILIKE q.pattern
		            OR r.title ILIKE q.pattern
		            OR r.summary ILIKE q.pattern
		            OR EXISTS (SELECT 1 FROM unnest(r.skills) AS s(skill) WHERE s.skill ILIKE q.pattern)
		     ) AS hits
		     FROM resumes r
		 ) m
		 WHERE hits > 0
		 ORDER BY hits DESC, created_at DESC
		 LIMIT $2`,
		patterns,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("SearchResumes: %w", err)
	}
	defer rows.Close()

	out := []model.ResumeMatch{}
	for rows.Next() {
		var hits int
		r, err := scanResume(rows, &hits)
		if err != nil {
			return nil, fmt.Errorf("SearchResumes: %w", err)
		}
		out = append(out, model.ResumeMatch{Resume: r, Hits: hits})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SearchResumes: %w", err)
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
