package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skillsync/backend/internal/security"
	"github.com/stretchr/testify/assert"
)

func okHandler(capturedUser *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if username, ok := UsernameFromContext(r.Context()); ok {
			*capturedUser = username
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	jm := security.NewJWTManager("test-secret", 15*time.Minute, time.Hour)
	token, err := jm.GenerateAccessToken("alice", "mentor")
	assert.NoError(t, err)

	var gotUser string
	h := Auth(jm)(okHandler(&gotUser))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", gotUser)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	jm := security.NewJWTManager("test-secret", 15*time.Minute, time.Hour)

	var gotUser string
	h := Auth(jm)(okHandler(&gotUser))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, gotUser)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	jm := security.NewJWTManager("test-secret", 15*time.Minute, time.Hour)

	var gotUser string
	h := Auth(jm)(okHandler(&gotUser))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

type fakeLimiter struct {
	keys    []string
	allowed bool
	err     error
}

func (f *fakeLimiter) Allow(ctx context.Context, key string) (bool, int, time.Time, error) {
	f.keys = append(f.keys, key)
	return f.allowed, 5, time.Now().Add(time.Minute), f.err
}

func TestRateLimitKeysByUsernameAfterAuth(t *testing.T) {
	jm := security.NewJWTManager("test-secret", 15*time.Minute, time.Hour)
	token, err := jm.GenerateAccessToken("alice", "mentor")
	assert.NoError(t, err)

	limiter := &fakeLimiter{allowed: true}
	var gotUser string
	// same ordering as the router: Auth first, then RateLimit
	h := Auth(jm)(RateLimit(limiter)(okHandler(&gotUser)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.RemoteAddr = "192.0.2.1:4242"
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"alice"}, limiter.keys)
}

func TestRateLimitKeysByRemoteAddrWithoutAuth(t *testing.T) {
	limiter := &fakeLimiter{allowed: true}
	var gotUser string
	h := RateLimit(limiter)(okHandler(&gotUser))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.RemoteAddr = "192.0.2.1:4242"
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"192.0.2.1:4242"}, limiter.keys)
}

func TestRateLimitOverBudget(t *testing.T) {
	limiter := &fakeLimiter{allowed: false}
	var gotUser string
	h := RateLimit(limiter)(okHandler(&gotUser))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitFailsOpenOnBackendError(t *testing.T) {
	limiter := &fakeLimiter{err: errors.New("connection refused")}
	var gotUser string
	h := RateLimit(limiter)(okHandler(&gotUser))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	issuer := security.NewJWTManager("other-secret", 15*time.Minute, time.Hour)
	token, err := issuer.GenerateAccessToken("alice", "mentor")
	assert.NoError(t, err)

	jm := security.NewJWTManager("test-secret", 15*time.Minute, time.Hour)
	var gotUser string
	h := Auth(jm)(okHandler(&gotUser))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
