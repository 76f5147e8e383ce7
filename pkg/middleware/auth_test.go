package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "middleware-secret"

func identityEcho(t *testing.T, seen *utils.Identity, found *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen, *found = utils.GetIdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthJWT(t *testing.T) {
	identity := utils.Identity{UserID: 7, Name: "Bob", Email: "bob@example.com"}
	token, _, err := utils.GenerateToken(testSecret, time.Hour, identity)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"no token", "Bearer", http.StatusUnauthorized},
		{"bad token", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				seen  utils.Identity
				found bool
			)
			h := AuthJWT(testSecret, zap.NewNop())(identityEcho(t, &seen, &found))

			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, found)
				assert.Equal(t, identity, seen)
			} else {
				assert.Contains(t, rec.Body.String(), `"status":false`)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	identity := utils.Identity{UserID: 7, Name: "Bob", Email: "bob@example.com"}
	token, _, err := utils.GenerateToken(testSecret, time.Hour, identity)
	require.NoError(t, err)

	t.Run("anonymous", func(t *testing.T) {
		var (
			seen  utils.Identity
			found bool
		)
		h := OptionalAuth(testSecret, zap.NewNop())(identityEcho(t, &seen, &found))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/feedback", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, found)
	})

	t.Run("invalid token stays anonymous", func(t *testing.T) {
		var (
			seen  utils.Identity
			found bool
		)
		h := OptionalAuth(testSecret, zap.NewNop())(identityEcho(t, &seen, &found))
		req := httptest.NewRequest(http.MethodPost, "/api/feedback", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, found)
	})

	t.Run("valid token", func(t *testing.T) {
		var (
			seen  utils.Identity
			found bool
		)
		h := OptionalAuth(testSecret, zap.NewNop())(identityEcho(t, &seen, &found))
		req := httptest.NewRequest(http.MethodPost, "/api/feedback", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.True(t, found)
		assert.Equal(t, identity, seen)
	})
}
