// File: internal/service/resume_search.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"resumerag/internal/cache"
	"resumerag/internal/database"
	"resumerag/internal/model"
	"resumerag/internal/store"
)

const (
	// SearchLimit 搜尋最多回傳的候選人數
	SearchLimit = 10

	searchVersionKey = "resumes:search:version"
	searchKeyPrefix  = "resumes:search"
)

var searchResumes = store.SearchResumes

// Candidate 搜尋結果中的單一候選人
type Candidate struct {
	Resume     model.Resume
	MatchScore int
}

// SearchResult 關鍵字搜尋結果
type SearchResult struct {
	Query      string
	Terms      []string
	Candidates []Candidate
}

// ResumeSearch 以 Redis 快取包裝資料庫關鍵字搜尋
// 新增履歷時遞增版本號，使舊快取自然失效
type ResumeSearch struct {
	db     database.DB
	cache  cache.Cache
	ttl    time.Duration
	logger echo.Logger
}

func NewResumeSearch(db database.DB, c cache.Cache, ttl time.Duration, logger echo.Logger) *ResumeSearch {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ResumeSearch{db: db, cache: c, ttl: ttl, logger: logger}
}

// SearchTerms 將查詢字串切成小寫、去重的關鍵字
func SearchTerms(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';'
	})
	seen := make(map[string]struct{}, len(fields))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		terms = append(terms, f)
	}
	return terms
}

// Search 先查快取，未命中時查資料庫並寫回快取；快取錯誤只記錄不中斷
func (s *ResumeSearch) Search(ctx context.Context, query string) (*SearchResult, error) {
	terms := SearchTerms(query)
	result := &SearchResult{Query: strings.TrimSpace(query), Terms: terms, Candidates: []Candidate{}}
	if len(terms) == 0 {
		return result, nil
	}

	key := s.cacheKey(ctx, terms)
	if key != "" {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var cached []Candidate
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				result.Candidates = cached
				return result, nil
			}
			s.logger.Warnf("resume search: discard corrupt cache entry %s", key)
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warnf("resume search: cache get: %v", err)
		}
	}

	matches, err := searchResumes(ctx, s.db, terms, SearchLimit)
	if err != nil {
		return nil, err
	}
	for _, m := range matches {
		result.Candidates = append(result.Candidates, Candidate{
			Resume:     m.Resume,
			MatchScore: m.Hits * 100 / len(terms),
		})
	}

	if key != "" {
		if payload, err := json.Marshal(result.Candidates); err == nil {
			if err := s.cache.Set(ctx, key, payload, s.ttl).Err(); err != nil {
				s.logger.Warnf("resume search: cache set: %v", err)
			}
		}
	}
	return result, nil
}

// Invalidate 使所有已快取的搜尋結果失效
func (s *ResumeSearch) Invalidate(ctx context.Context) error {
	return s.cache.Incr(ctx, searchVersionKey).Err()
}

// cacheKey 回傳空字串代表無法取得版本號，本次不使用快取
func (s *ResumeSearch) cacheKey(ctx context.Context, terms []string) string {
	version, err := s.cache.Get(ctx, searchVersionKey).Result()
	switch {
	case errors.Is(err, redis.Nil):
		version = "0"
	case err != nil:
		s.logger.Warnf("resume search: cache version: %v", err)
		return ""
	}
	return fmt.Sprintf("%s:v%s:%s", searchKeyPrefix, version, strings.Join(terms, " "))
}
