package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/gophertalk/internal/service"
	"github.com/MKhiriev/gophertalk/internal/store"
	"github.com/MKhiriev/gophertalk/internal/validators"
	"github.com/MKhiriev/gophertalk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPair = models.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

func decodePair(t *testing.T, body []byte) models.TokenPair {
	t.Helper()
	var pair models.TokenPair
	require.NoError(t, json.Unmarshal(body, &pair))
	return pair
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Created(t *testing.T) {
	fakes := newFakeServices()
	var got models.RegisterRequest
	fakes.auth.registerFn = func(_ context.Context, req models.RegisterRequest) (models.TokenPair, error) {
		got = req
		return testPair, nil
	}
	router := newTestRouter(t, fakes)

	body := `{"user_name":"gopher","password":"p@ss1","password_confirm":"p@ss1","first_name":"Rob"}`
	rec := doRequest(t, router, http.MethodPost, "/auth/register", body, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, testPair, decodePair(t, rec.Body.Bytes()))

	assert.Equal(t, "gopher", got.UserName)
	require.NotNil(t, got.FirstName)
	assert.Equal(t, "Rob", *got.FirstName)
	assert.Nil(t, got.LastName)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "user name taken",
			body:       `{"user_name":"gopher"}`,
			serviceErr: store.ErrUserAlreadyExists,
			wantStatus: http.StatusBadRequest,
			wantDetail: store.ErrUserAlreadyExists.Error(),
		},
		{
			name:       "unknown failure falls back to 400",
			body:       `{"user_name":"gopher"}`,
			serviceErr: errors.New("boom"),
			wantStatus: http.StatusBadRequest,
			wantDetail: http.StatusText(http.StatusBadRequest),
		},
		{
			name:       "hashing failure is internal",
			body:       `{"user_name":"gopher"}`,
			serviceErr: service.ErrPasswordHashingFailed,
			wantStatus: http.StatusInternalServerError,
			wantDetail: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakes := newFakeServices()
			fakes.auth.registerFn = func(context.Context, models.RegisterRequest) (models.TokenPair, error) {
				return models.TokenPair{}, tt.serviceErr
			}

			rec := doRequest(t, newTestRouter(t, fakes), http.MethodPost, "/auth/register", tt.body, "")

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
		})
	}
}

func TestRegister_ValidationError(t *testing.T) {
	fakes := newFakeServices()
	fakes.auth.registerFn = func(context.Context, models.RegisterRequest) (models.TokenPair, error) {
		return models.TokenPair{}, validators.ValidationErrors{
			validators.NewFieldError(validators.LocBody, validators.FieldUserName, "Must start with a letter", validators.TypeValueError),
		}
	}

	rec := doRequest(t, newTestRouter(t, fakes), http.MethodPost, "/auth/register", `{"user_name":"1gopher"}`, "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	verrs := decodeValidation(t, rec)
	assert.Equal(t, []string{"body", "user_name"}, verrs[0].Loc)
	assert.Equal(t, validators.TypeValueError, verrs[0].Type)
}

func TestRegister_MalformedJSON(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, newFakeServices()), http.MethodPost, "/auth/register", `{"user_name":`, "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	verrs := decodeValidation(t, rec)
	assert.Equal(t, "json_invalid", verrs[0].Type)
	assert.Equal(t, []string{"body"}, verrs[0].Loc)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{name: "wrong password", serviceErr: service.ErrWrongPassword, wantStatus: http.StatusUnauthorized},
		{name: "store failure", serviceErr: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError},
		{name: "unknown failure", serviceErr: errors.New("boom"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakes := newFakeServices()
			fakes.auth.loginFn = func(_ context.Context, req models.LoginRequest) (models.TokenPair, error) {
				assert.Equal(t, models.LoginRequest{UserName: "gopher", Password: "p@ss1"}, req)
				return testPair, tt.serviceErr
			}

			rec := doRequest(t, newTestRouter(t, fakes), http.MethodPost, "/auth/login", `{"user_name":"gopher","password":"p@ss1"}`, "")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.serviceErr == nil {
				assert.Equal(t, testPair, decodePair(t, rec.Body.Bytes()))
			}
		})
	}
}

func TestLogin_WrongPasswordDetail(t *testing.T) {
	fakes := newFakeServices()
	fakes.auth.loginFn = func(context.Context, models.LoginRequest) (models.TokenPair, error) {
		return models.TokenPair{}, service.ErrWrongPassword
	}

	rec := doRequest(t, newTestRouter(t, fakes), http.MethodPost, "/auth/login", `{}`, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "incorrect username or password", decodeDetail(t, rec))
}

// ─────────────────────────────────────────────
// refresh
// ─────────────────────────────────────────────

func TestRefresh(t *testing.T) {
	t.Run("new pair", func(t *testing.T) {
		fakes := newFakeServices()
		fakes.auth.refreshFn = func(_ context.Context, refreshToken string) (models.TokenPair, error) {
			assert.Equal(t, "old-refresh", refreshToken)
			return testPair, nil
		}

		rec := doRequest(t, newTestRouter(t, fakes), http.MethodPost, "/auth/refresh", "", "old-refresh")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, testPair, decodePair(t, rec.Body.Bytes()))
	})

	t.Run("missing header", func(t *testing.T) {
		rec := doRequest(t, newTestRouter(t, newFakeServices()), http.MethodPost, "/auth/refresh", "", "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, detailMissingToken, decodeDetail(t, rec))
	})

	t.Run("rejected token", func(t *testing.T) {
		fakes := newFakeServices()
		fakes.auth.refreshFn = func(context.Context, string) (models.TokenPair, error) {
			return models.TokenPair{}, service.ErrTokenIsExpiredOrInvalid
		}

		rec := doRequest(t, newTestRouter(t, fakes), http.MethodPost, "/auth/refresh", "", testAccessToken)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("user lookup failure", func(t *testing.T) {
		fakes := newFakeServices()
		fakes.auth.refreshFn = func(context.Context, string) (models.TokenPair, error) {
			return models.TokenPair{}, store.ErrExecutingQuery
		}

		rec := doRequest(t, newTestRouter(t, fakes), http.MethodPost, "/auth/refresh", "", "r")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
