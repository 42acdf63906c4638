// File: internal/dto/resume.go
package dto

import "resumerag/internal/model"

// swagger:model dto.CreateResumeRequest
type CreateResumeRequest struct {
	Name    string   `json:"name" validate:"required,max=200" example:"John Doe"`
	Title   string   `json:"title" validate:"max=200" example:"Backend Engineer"`
	Email   string   `json:"email" validate:"omitempty,email" example:"john@example.com"`
	Skills  []string `json:"skills" validate:"max=50,dive,required" example:"Go,PostgreSQL"`
	Summary string   `json:"summary" example:"Seven years building APIs"`
	Text    string   `json:"text"`
}

// swagger:model dto.ResumeResponse
type ResumeResponse struct {
	Message string       `json:"message" example:"Resume uploaded successfully"`
	Resume  model.Resume `json:"resume"`
}

// swagger:model dto.ResumesResponse
type ResumesResponse struct {
	Resumes []model.Resume `json:"resumes"`
}

// swagger:model dto.SearchRequest
type SearchRequest struct {
	Query string `json:"query" validate:"required,max=500" example:"python django"`
}

// swagger:model dto.SearchCandidate
type SearchCandidate struct {
	ID         string   `json:"id"`
	Name       string   `json:"name" example:"John Doe"`
	Title      string   `json:"title" example:"Backend Engineer"`
	Skills     []string `json:"skills"`
	MatchScore int      `json:"match_score" example:"100"`
	Summary    string   `json:"summary"`
}

// swagger:model dto.SearchResponse
type SearchResponse struct {
	Query           string            `json:"query" example:"python django"`
	TotalCandidates int               `json:"total_candidates" example:"2"`
	TopCandidates   []SearchCandidate `json:"top_candidates"`
	Summary         string            `json:"summary" example:"Found 2 candidates matching \"python django\""`
}
