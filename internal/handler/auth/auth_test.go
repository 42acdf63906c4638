package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"resumerag/internal/apperr"
	"resumerag/internal/database"
	"resumerag/internal/dto"
	"resumerag/internal/middleware"
	"resumerag/internal/model"
	"resumerag/internal/service"
	"resumerag/internal/store"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

type realValidator struct{ v *validator.Validate }

func (r *realValidator) Validate(i interface{}) error { return r.v.Struct(i) }

type stubIssuer struct {
	subject string
	err     error
}

func (s *stubIssuer) Issue(subject string) (string, time.Time, error) {
	s.subject = subject
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	return "tok-" + subject, time.Unix(86400, 0).UTC(), nil
}

var fixedNow = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func restore() {
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	findUserByEmail = store.FindUserByEmail
	createUser = store.CreateUser
	touchLastLogin = store.TouchLastLogin
	updateProfile = store.UpdateProfile
	timeNow = time.Now
}

func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestRegisterHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &realValidator{v: validator.New()}

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPost, "{")
		require.NoError(t, RegisterHandler(nil, &stubIssuer{}, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Ann","email":"ann@x.com"}`)
		require.NoError(t, RegisterHandler(nil, &stubIssuer{}, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Name, email, and password are required", decodeError(t, rec))
	})

	t.Run("short password", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Ann","email":"ann@x.com","password":"12345"}`)
		require.NoError(t, RegisterHandler(nil, &stubIssuer{}, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Password must be at least 6 characters long", decodeError(t, rec))
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Ann","email":"not-an-email","password":"secret1"}`)
		require.NoError(t, RegisterHandler(nil, &stubIssuer{}, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Invalid email format", decodeError(t, rec))
	})

	t.Run("admin role rejected", func(t *testing.T) {
		t.Cleanup(restore)
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			t.Fatal("must not create")
			return nil, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Ann","email":"ann@x.com","password":"secret1","role":"admin"}`)
		require.NoError(t, RegisterHandler(nil, &stubIssuer{}, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, decodeError(t, rec), "Role must be one of")
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, apperr.ErrDuplicateEmail
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Ann","email":"ann@x.com","password":"secret1"}`)
		require.NoError(t, RegisterHandler(nil, &stubIssuer{}, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "User with this email already exists", decodeError(t, rec))
	})

	t.Run("create error hides details", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, errors.New("pq: connection refused on 10.0.0.3")
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Ann","email":"ann@x.com","password":"secret1"}`)
		require.NoError(t, RegisterHandler(nil, &stubIssuer{}, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "10.0.0.3")
	})

	t.Run("issue error", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			u.ID = "u1"
			return u, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"Ann","email":"ann@x.com","password":"secret1"}`)
		require.NoError(t, RegisterHandler(nil, &stubIssuer{err: errors.New("sign")}, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(p string) (string, error) { require.Equal(t, "secret1", p); return "hashed", nil }
		var got model.User
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			got = *u
			u.ID = "u1"
			u.IsActive = true
			return u, nil
		}
		issuer := &stubIssuer{}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":" Ann ","email":"Ann@X.com","password":"secret1"}`)
		require.NoError(t, RegisterHandler(nil, issuer, nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "ann@x.com", got.Email)
		require.Equal(t, "Ann", got.Name)
		require.Equal(t, "hashed", got.PasswordHash)
		require.Equal(t, model.RoleUser, got.Role)
		require.Equal(t, "u1", issuer.subject)

		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "tok-u1", resp.Token)
		require.Equal(t, "ann@x.com", resp.User.Email)
		require.NotContains(t, rec.Body.String(), "hashed")
		require.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("demo role accepted", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			require.Equal(t, model.RoleDemo, u.Role)
			u.ID = "u2"
			return u, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"name":"D","email":"d@x.com","password":"secret1","role":"demo"}`)
		require.NoError(t, RegisterHandler(nil, &stubIssuer{}, nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &stubValidator{}
	body := `{"email":"Ann@x.com","password":"secret1"}`

	t.Run("missing fields", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"email":"ann@x.com"}`)
		require.NoError(t, LoginHandler(nil, &stubIssuer{}, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Email and password are required", decodeError(t, rec))
	})

	t.Run("unknown and wrong password look the same", func(t *testing.T) {
		t.Cleanup(restore)
		findUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, apperr.ErrNotFound
		}
		ctx, unknown := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, LoginHandler(nil, &stubIssuer{}, nil)(ctx))

		findUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: "u1", IsActive: true, PasswordHash: "h"}, nil
		}
		authenticateUser = func(model.User, string) error { return apperr.ErrAuthenticationFailed }
		ctx, wrong := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, LoginHandler(nil, &stubIssuer{}, nil)(ctx))

		require.Equal(t, http.StatusUnauthorized, unknown.Code)
		require.Equal(t, unknown.Code, wrong.Code)
		require.Equal(t, unknown.Body.String(), wrong.Body.String())
		require.Equal(t, "Invalid email or password", decodeError(t, wrong))
	})

	t.Run("inactive user rejected with real check", func(t *testing.T) {
		t.Cleanup(restore)
		hash, err := service.HashPassword("secret1")
		require.NoError(t, err)
		findUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: "u1", IsActive: false, PasswordHash: hash}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, LoginHandler(nil, &stubIssuer{}, nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		findUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("db down")
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, LoginHandler(nil, &stubIssuer{}, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "Failed to login", decodeError(t, rec))
	})

	t.Run("save error", func(t *testing.T) {
		t.Cleanup(restore)
		findUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: "u1", IsActive: true}, nil
		}
		authenticateUser = func(model.User, string) error { return nil }
		touchLastLogin = func(context.Context, database.DB, string, time.Time) error { return errors.New("s") }
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, LoginHandler(nil, &stubIssuer{}, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("disabled between lookup and write", func(t *testing.T) {
		t.Cleanup(restore)
		findUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: "u1", IsActive: true}, nil
		}
		authenticateUser = func(model.User, string) error { return nil }
		touchLastLogin = func(context.Context, database.DB, string, time.Time) error {
			return apperr.ErrNotFound
		}
		issuer := &stubIssuer{}
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, LoginHandler(nil, issuer, nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid email or password", decodeError(t, rec))
		require.Empty(t, issuer.subject)
	})

	t.Run("success updates last login", func(t *testing.T) {
		t.Cleanup(restore)
		timeNow = func() time.Time { return fixedNow }
		var lookedUp string
		findUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
			lookedUp = email
			return &model.User{ID: "u1", Email: "ann@x.com", IsActive: true, PasswordHash: "h"}, nil
		}
		authenticateUser = func(u model.User, p string) error {
			require.Equal(t, "secret1", p)
			return nil
		}
		var touchedID string
		var touchedAt time.Time
		touchLastLogin = func(_ context.Context, _ database.DB, id string, at time.Time) error {
			touchedID, touchedAt = id, at
			return nil
		}

		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, LoginHandler(nil, &stubIssuer{}, nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "ann@x.com", lookedUp)
		require.Equal(t, "u1", touchedID)
		require.Equal(t, fixedNow, touchedAt)

		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Login successful", resp.Message)
		require.Equal(t, "tok-u1", resp.Token)
		require.NotNil(t, resp.User.LastLoginAt)
	})
}

func TestDemoLoginHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &stubValidator{}
	accounts := []model.DemoAccount{
		{Email: "demo@resumerag.com", Password: "demo123", Name: "Demo User", Role: model.RoleDemo},
	}
	body := `{"email":"demo@resumerag.com","password":"demo123"}`

	t.Run("not in allow-list", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"email":"demo@resumerag.com","password":"nope"}`)
		require.NoError(t, DemoLoginHandler(nil, &stubIssuer{}, accounts, nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid demo credentials", decodeError(t, rec))
	})

	t.Run("first use creates user", func(t *testing.T) {
		t.Cleanup(restore)
		timeNow = func() time.Time { return fixedNow }
		findUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, apperr.ErrNotFound
		}
		hashPassword = func(p string) (string, error) { require.Equal(t, "demo123", p); return "h", nil }
		var created model.User
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			u.ID = "d1"
			u.IsActive = true
			created = *u
			return u, nil
		}
		authenticateUser = func(u model.User, p string) error {
			require.Equal(t, "h", u.PasswordHash)
			return nil
		}
		touchLastLogin = func(context.Context, database.DB, string, time.Time) error { return nil }

		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, DemoLoginHandler(nil, &stubIssuer{}, accounts, nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "Demo User", created.Name)
		require.Equal(t, model.RoleDemo, created.Role)
		require.Contains(t, rec.Body.String(), "Demo login successful")
	})

	t.Run("concurrent creation falls back to lookup", func(t *testing.T) {
		t.Cleanup(restore)
		calls := 0
		findUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			calls++
			if calls == 1 {
				return nil, apperr.ErrNotFound
			}
			return &model.User{ID: "d1", IsActive: true, PasswordHash: "h"}, nil
		}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, apperr.ErrDuplicateEmail
		}
		authenticateUser = func(model.User, string) error { return nil }
		touchLastLogin = func(context.Context, database.DB, string, time.Time) error { return nil }

		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, DemoLoginHandler(nil, &stubIssuer{}, accounts, nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 2, calls)
	})

	t.Run("existing account with different password", func(t *testing.T) {
		t.Cleanup(restore)
		findUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: "d1", IsActive: true, PasswordHash: "other"}, nil
		}
		authenticateUser = func(model.User, string) error { return apperr.ErrAuthenticationFailed }
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, DemoLoginHandler(nil, &stubIssuer{}, accounts, nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid demo credentials", decodeError(t, rec))
	})

	t.Run("disabled between lookup and write", func(t *testing.T) {
		t.Cleanup(restore)
		findUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: "d1", IsActive: true, PasswordHash: "h"}, nil
		}
		authenticateUser = func(model.User, string) error { return nil }
		touchLastLogin = func(context.Context, database.DB, string, time.Time) error {
			return apperr.ErrNotFound
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, DemoLoginHandler(nil, &stubIssuer{}, accounts, nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid demo credentials", decodeError(t, rec))
	})

	t.Run("create error", func(t *testing.T) {
		t.Cleanup(restore)
		findUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, apperr.ErrNotFound
		}
		hashPassword = func(string) (string, error) { return "", errors.New("bcrypt") }
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, DemoLoginHandler(nil, &stubIssuer{}, accounts, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func withUser(ctx echo.Context, u *model.User) echo.Context {
	ctx.Set(middleware.ContextUserKey, u)
	return ctx
}

func TestGetProfileHandler(t *testing.T) {
	e := echo.New()

	ctx, rec := newJSONCtx(e, http.MethodGet, "")
	require.NoError(t, GetProfileHandler()(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	ctx, rec = newJSONCtx(e, http.MethodGet, "")
	withUser(ctx, &model.User{ID: "u1", Email: "ann@x.com", Role: model.RoleUser, IsActive: true})
	require.NoError(t, GetProfileHandler()(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ann@x.com", resp.User.Email)
	require.NotContains(t, rec.Body.String(), "password")
}

func TestUpdateProfileHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &realValidator{v: validator.New()}
	current := func() *model.User {
		return &model.User{ID: "u1", Name: "Ann", Email: "ann@x.com", Role: model.RoleUser, IsActive: true}
	}

	t.Run("empty name", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPut, `{"name":"  "}`)
		require.NoError(t, UpdateProfileHandler(nil)(withUser(ctx, current())))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPut, `{"email":"nope"}`)
		require.NoError(t, UpdateProfileHandler(nil)(withUser(ctx, current())))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Invalid email format", decodeError(t, rec))
	})

	t.Run("email taken", func(t *testing.T) {
		t.Cleanup(restore)
		updateProfile = func(context.Context, database.DB, string, *string, *string) (*model.User, error) {
			return nil, apperr.ErrDuplicateEmail
		}
		ctx, rec := newJSONCtx(e, http.MethodPut, `{"email":"bob@x.com"}`)
		require.NoError(t, UpdateProfileHandler(nil)(withUser(ctx, current())))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("persistence failure", func(t *testing.T) {
		t.Cleanup(restore)
		updateProfile = func(context.Context, database.DB, string, *string, *string) (*model.User, error) {
			return nil, errors.New("db")
		}
		ctx, rec := newJSONCtx(e, http.MethodPut, `{"name":"Ann Lee"}`)
		require.NoError(t, UpdateProfileHandler(nil)(withUser(ctx, current())))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "Failed to update profile", decodeError(t, rec))
	})

	t.Run("disabled after authentication", func(t *testing.T) {
		t.Cleanup(restore)
		updateProfile = func(context.Context, database.DB, string, *string, *string) (*model.User, error) {
			return nil, apperr.ErrNotFound
		}
		ctx, rec := newJSONCtx(e, http.MethodPut, `{"name":"Ann Lee"}`)
		require.NoError(t, UpdateProfileHandler(nil)(withUser(ctx, current())))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid token or user not found.", decodeError(t, rec))
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		var gotID string
		var gotName, gotEmail *string
		updateProfile = func(_ context.Context, _ database.DB, id string, name, email *string) (*model.User, error) {
			gotID, gotName, gotEmail = id, name, email
			// 資料庫現值為準：role 由資料庫回傳，不取自請求當下的快照
			return &model.User{ID: id, Name: *name, Email: *email, Role: model.RoleAdmin, IsActive: true}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPut, `{"name":"Ann Lee","email":" ANN.LEE@x.com "}`)
		require.NoError(t, UpdateProfileHandler(nil)(withUser(ctx, current())))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "u1", gotID)
		require.Equal(t, "Ann Lee", *gotName)
		require.Equal(t, "ann.lee@x.com", *gotEmail)
		require.Contains(t, rec.Body.String(), "Profile updated successfully")

		var resp dto.ProfileResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, model.RoleAdmin, resp.User.Role)
	})

	t.Run("name only leaves email untouched", func(t *testing.T) {
		t.Cleanup(restore)
		var gotEmail *string
		updateProfile = func(_ context.Context, _ database.DB, id string, name, email *string) (*model.User, error) {
			gotEmail = email
			return &model.User{ID: id, Name: *name, Email: "ann@x.com", Role: model.RoleUser, IsActive: true}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPut, `{"name":"Ann Lee"}`)
		require.NoError(t, UpdateProfileHandler(nil)(withUser(ctx, current())))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Nil(t, gotEmail)
	})
}

func TestLogoutHandler(t *testing.T) {
	e := echo.New()
	ctx, rec := newJSONCtx(e, http.MethodPost, "")
	withUser(ctx, &model.User{ID: "u1"})
	require.NoError(t, LogoutHandler(nil)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Logout successful")
}
