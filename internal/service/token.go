// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"resumerag/internal/apperr"
)

// AccessTokenTTL 存取令牌固定有效期
const AccessTokenTTL = 24 * time.Hour

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
	newTokenID      = func() string { return uuid.NewString() }
)

// TokenIssuer 發行存取令牌
type TokenIssuer interface {
	Issue(subject string) (string, time.Time, error)
}

// TokenVerifier 驗證存取令牌並回傳 subject
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// TokenService 以 HS256 簽發與驗證 JWT，密鑰於建構後唯讀
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var (
	_ TokenIssuer   = (*TokenService)(nil)
	_ TokenVerifier = (*TokenService)(nil)
)

// NewTokenService 建立 TokenService
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    AccessTokenTTL,
		now:    func() time.Time { return timeNow() },
	}
}

// Issue 產生 {sub, iat, exp = iat + 24h, jti} 的簽章令牌
func (s *TokenService) Issue(subject string) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errors.New("empty subject")
	}
	// NumericDate 只保留到秒，回傳的到期時間須與令牌內的 exp 一致
	now := s.now().Truncate(time.Second)
	claims := jwt.RegisteredClaims{
		ID:        newTokenID(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims.ExpiresAt.Time, nil
}

// Verify 驗證令牌並回傳 subject
// 所有失敗都包裝成 apperr.ErrInvalidToken，底層原因僅供伺服器端記錄
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := parseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrInvalidToken, err)
	}
	if token == nil || !token.Valid {
		return "", fmt.Errorf("%w: token not valid", apperr.ErrInvalidToken)
	}

	// exp 為排他上界：到達 exp 當下即失效
	if claims.ExpiresAt == nil || !s.now().Before(claims.ExpiresAt.Time) {
		return "", fmt.Errorf("%w: token expired", apperr.ErrInvalidToken)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", apperr.ErrInvalidToken)
	}
	return claims.Subject, nil
}
