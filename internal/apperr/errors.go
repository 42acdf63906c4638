// File: internal/apperr/errors.go
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrValidation            = errors.New("validation failed")
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrAuthenticationFailed  = errors.New("invalid email or password")
	ErrMissingToken          = errors.New("missing token")
	ErrInvalidToken          = errors.New("invalid token")
	ErrInactiveOrUnknownUser = errors.New("inactive or unknown user")
	ErrForbidden             = errors.New("forbidden")
	ErrNotFound              = errors.New("not found")
	ErrRateLimited           = errors.New("too many requests")
	ErrInternal              = errors.New("internal server error")
)

// Status 將錯誤對應到 HTTP 狀態碼，未知錯誤一律視為 500
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation), errors.Is(err, ErrDuplicateEmail):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthenticationFailed),
		errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrInactiveOrUnknownUser):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}
