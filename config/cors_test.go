package config

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func corsRequest(t *testing.T, method, origin string) *httptest.ResponseRecorder {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, "/menu", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	CORSMiddleware(next).ServeHTTP(rec, req)
	return rec
}

func TestCORSMiddlewareAllowsListedOrigin(t *testing.T) {
	rec := corsRequest(t, http.MethodGet, "https://admin.sitecms.vn")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://admin.sitecms.vn", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSMiddlewareRejectsUnknownOrigin(t *testing.T) {
	rec := corsRequest(t, http.MethodGet, "https://evil.example.com")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddlewareAnswersPreflight(t *testing.T) {
	rec := corsRequest(t, http.MethodOptions, "http://localhost:5173")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Login")
}

func TestCORSMiddlewarePassesRequestsWithoutOrigin(t *testing.T) {
	rec := corsRequest(t, http.MethodGet, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
