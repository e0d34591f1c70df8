package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "middleware-test-secret"

func protectedHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_MissingToken(t *testing.T) {
	called := false
	handler := Authenticate(testSecret, zap.NewNop())(protectedHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/user/stores", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	// Rejected before the handler runs
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Secret1!", "Bearer", "Basic abc123", "Bearer a b"} {
		called := false
		handler := Authenticate(testSecret, zap.NewNop())(protectedHandler(&called))

		req := httptest.NewRequest(http.MethodGet, "/api/user/stores", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.False(t, called, "header %q", header)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	called := false
	handler := Authenticate(testSecret, zap.NewNop())(protectedHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/user/stores", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken(uuid.New(), "USER", testSecret, -time.Minute)
	require.NoError(t, err)

	called := false
	handler := Authenticate(testSecret, zap.NewNop())(protectedHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/user/stores", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	userID := uuid.New()
	token, err := utils.GenerateToken(userID, "USER", testSecret, time.Hour)
	require.NoError(t, err)

	var gotUserID uuid.UUID
	var gotRole string
	handler := Authenticate(testSecret, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		gotRole, _ = utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/user/stores", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, "USER", gotRole)
}

func TestRequireRole_Mismatch(t *testing.T) {
	userID := uuid.New()
	token, err := utils.GenerateToken(userID, "USER", testSecret, time.Hour)
	require.NoError(t, err)

	called := false
	chain := Authenticate(testSecret, zap.NewNop())(
		RequireRole("ADMIN", zap.NewNop())(protectedHandler(&called)))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	chain.ServeHTTP(rec, req)

	// Authenticated but the wrong role is a 403
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireRole_Match(t *testing.T) {
	token, err := utils.GenerateToken(uuid.New(), "ADMIN", testSecret, time.Hour)
	require.NoError(t, err)

	called := false
	chain := Authenticate(testSecret, zap.NewNop())(
		RequireRole("ADMIN", zap.NewNop())(protectedHandler(&called)))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRequireRole_NoAuthContext(t *testing.T) {
	called := false
	handler := RequireRole("ADMIN", zap.NewNop())(protectedHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}
