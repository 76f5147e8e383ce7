package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *chi.Mux {
	r := chi.NewRouter()
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed(r))

	r.Get("/api/room-service", okHandler)
	r.Post("/api/room-service", okHandler)
	r.Delete("/api/room-service", okHandler)
	r.Post("/api/booking", okHandler)
	return r
}

func TestAllowedMethods(t *testing.T) {
	r := newTestRouter()

	assert.Equal(t, "GET, POST, DELETE", AllowedMethods(r, "/api/room-service"))
	assert.Equal(t, "POST", AllowedMethods(r, "/api/booking"))
	assert.Empty(t, AllowedMethods(r, "/api/unknown"))
}

func TestMethodNotAllowed(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/booking", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST", rec.Header().Get("Allow"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["status"])
}

func TestNotFound(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Resource not found")
}
