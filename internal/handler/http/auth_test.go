package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Martinsschnee/pbweb/internal/service"
	"github.com/Martinsschnee/pbweb/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	services := testServices(func(s *service.Services) {
		s.AuthService = &mockAuthService{
			loginFn: func(_ context.Context, creds models.LoginRequest, client models.ClientInfo) (models.User, error) {
				assert.Equal(t, "alice", creds.Username)
				assert.NotEmpty(t, client.IP)
				return models.User{ID: "u-alice", Username: "alice", Role: models.RoleUser}, nil
			},
		}
	})
	router := newTestHandler(services).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"alice","password":"pw"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "u-alice", body.User.UserID)

	cookie := findCookie(t, rec, authCookieName)
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.Equal(t, "issued-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int(time.Hour/time.Second), cookie.MaxAge)
	assert.Equal(t, "/", cookie.Path)
}

func TestLogin_InvalidJSON(t *testing.T) {
	router := newTestHandler(testServices()).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	services := testServices(func(s *service.Services) {
		s.AuthService = &mockAuthService{
			loginFn: func(_ context.Context, _ models.LoginRequest, _ models.ClientInfo) (models.User, error) {
				return models.User{}, service.ErrInvalidCredentials
			},
		}
	})
	router := newTestHandler(services).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"alice","password":"bad"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, findCookie(t, rec, authCookieName), "failed logins must not set a cookie")
}

func TestLogin_RateLimited(t *testing.T) {
	services := testServices(func(s *service.Services) {
		s.AuthService = &mockAuthService{
			loginFn: func(_ context.Context, _ models.LoginRequest, _ models.ClientInfo) (models.User, error) {
				return models.User{}, &service.RateLimitError{RetryAfter: 10 * time.Minute}
			},
		}
	})
	router := newTestHandler(services).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"alice","password":"pw"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Too many failed attempts. Try again later.", body.Error)
	assert.Equal(t, 600, body.RetryAfterSeconds)
}

func TestLogin_VerbMismatch(t *testing.T) {
	router := newTestHandler(testServices()).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/login", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_ClearsCookie(t *testing.T) {
	router := newTestHandler(testServices()).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, authCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge, "logout must expire the cookie")
}

func TestLogout_RequiresNoSession(t *testing.T) {
	// Logout is reachable without a valid cookie: it only clears state.
	router := newTestHandler(testServices()).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: authCookieName, Value: "long-expired"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
