// File: internal/model/resume.go
package model

import "time"

type Resume struct {
	ID        string    `db:"id" json:"id"`
	OwnerID   string    `db:"owner_id" json:"owner_id"`
	Name      string    `db:"name" json:"name"`
	Title     string    `db:"title" json:"title"`
	Email     string    `db:"email" json:"email"`
	Skills    []string  `db:"skills" json:"skills"`
	Summary   string    `db:"summary" json:"summary"`
	Text      string    `db:"text" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ResumeMatch 關鍵字搜尋結果，Hits 為命中的關鍵字數
type ResumeMatch struct {
	Resume
	Hits int `json:"hits"`
}
