// File: internal/handler/resumes/resumes.go
package resumes

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"resumerag/internal/database"
	"resumerag/internal/dto"
	"resumerag/internal/handler"
	"resumerag/internal/middleware"
	"resumerag/internal/model"
	"resumerag/internal/service"
	"resumerag/internal/store"
)

var (
	listResumes  = store.ListResumes
	createResume = store.CreateResume
)

// Searcher 由 service.ResumeSearch 實作
type Searcher interface {
	Search(ctx context.Context, query string) (*service.SearchResult, error)
	Invalidate(ctx context.Context) error
}

// ListResumesHandler 依上傳時間新到舊列出履歷
// @Summary     List resumes
// @Tags        resumes
// @Produce     json
// @Success     200 {object} dto.ResumesResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /resumes [get]
func ListResumesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		resumes, err := listResumes(c.Request().Context(), db)
		if err != nil {
			c.Logger().Errorf("list resumes: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to fetch resumes"})
		}
		return c.JSON(http.StatusOK, dto.ResumesResponse{Resumes: resumes})
	}
}

// CreateResumeHandler 儲存履歷中繼資料與文字，並讓搜尋快取失效
// @Summary     Upload resume
// @Tags        resumes
// @Accept      json
// @Produce     json
// @Param       body body     dto.CreateResumeRequest true "履歷內容"
// @Success     201  {object} dto.ResumeResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /resumes [post]
func CreateResumeHandler(db database.DB, search Searcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Access denied. No token provided."})
		}

		var req dto.CreateResumeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid request body"})
		}
		req.Name = strings.TrimSpace(req.Name)
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: handler.ValidationMessage(err)})
		}

		skills := make([]string, 0, len(req.Skills))
		for _, s := range req.Skills {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}

		ctx := c.Request().Context()
		resume, err := createResume(ctx, db, &model.Resume{
			OwnerID: user.ID,
			Name:    req.Name,
			Title:   strings.TrimSpace(req.Title),
			Email:   strings.TrimSpace(req.Email),
			Skills:  skills,
			Summary: strings.TrimSpace(req.Summary),
			Text:    req.Text,
		})
		if err != nil {
			c.Logger().Errorf("create resume: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to upload resume"})
		}

		// 快取失效失敗時舊結果會在 TTL 後自然過期
		if err := search.Invalidate(ctx); err != nil {
			c.Logger().Warnf("invalidate search cache: %v", err)
		}
		return c.JSON(http.StatusCreated, dto.ResumeResponse{Message: "Resume uploaded successfully", Resume: *resume})
	}
}

// SearchResumesHandler 關鍵字搜尋履歷
// @Summary     Search resumes
// @Description 依關鍵字比對姓名、職稱、摘要與技能，回傳分數最高的 10 筆
// @Tags        resumes
// @Accept      json
// @Produce     json
// @Param       body body     dto.SearchRequest true "查詢字串"
// @Success     200  {object} dto.SearchResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /resumes/search [post]
func SearchResumesHandler(search Searcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SearchRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid request body"})
		}
		req.Query = strings.TrimSpace(req.Query)
		if req.Query == "" {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Query is required"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: handler.ValidationMessage(err)})
		}

		result, err := search.Search(c.Request().Context(), req.Query)
		if err != nil {
			c.Logger().Errorf("search resumes: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Failed to search resumes"})
		}

		resp := dto.SearchResponse{
			Query:           result.Query,
			TotalCandidates: len(result.Candidates),
			TopCandidates:   make([]dto.SearchCandidate, 0, len(result.Candidates)),
			Summary:         fmt.Sprintf("Found %d candidates matching %q", len(result.Candidates), result.Query),
		}
		for _, cand := range result.Candidates {
			resp.TopCandidates = append(resp.TopCandidates, dto.SearchCandidate{
				ID:         cand.Resume.ID,
				Name:       cand.Resume.Name,
				Title:      cand.Resume.Title,
				Skills:     cand.Resume.Skills,
				MatchScore: cand.MatchScore,
				Summary:    cand.Resume.Summary,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
