package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanOrigin(t *testing.T) {
	tests := map[string]string{
		"https://gradients.example.com":       "gradients.example.com",
		"http://localhost:5173/some/page?x=1": "localhost:5173",
		"wss://gradients.example.com/socket":  "gradients.example.com",
		"gradients.example.com":               "gradients.example.com",
	}
	for in, want := range tests {
		assert.Equal(t, want, cleanOrigin(in), in)
	}
}

func TestIsAllowedOrigin(t *testing.T) {
	allowed := []string{"https://gradients.example.com", " http://localhost:3000"}

	assert.True(t, isAllowedOrigin("https://gradients.example.com", allowed, false))
	assert.True(t, isAllowedOrigin("http://localhost:3000/app", allowed, false))
	assert.False(t, isAllowedOrigin("http://localhost:4000", allowed, false))
	assert.True(t, isAllowedOrigin("http://localhost:4000", allowed, true))
	assert.False(t, isAllowedOrigin("https://evil.example.com", allowed, true))
}

func TestCorsAndOrigins(t *testing.T) {
	app := newTestApp(t)
	handler := app.BuildRoutes(http.NewServeMux())

	req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
	req.Header.Set("Origin", "https://gradients.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://gradients.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/stats", nil)
	req.Header.Set("Origin", "https://gradients.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)

	req = httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "origin not allowed: evil.example.com", rec.Body.String())
}

func TestRequestID(t *testing.T) {
	handler := newTestApp(t).BuildRoutes(http.NewServeMux())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(requestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "trace-123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get(requestIDHeader))
}

func TestStatusRecorder(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	rec.WriteHeader(http.StatusTeapot)
	n, err := rec.Write([]byte("short and stout"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, rec.status)
	assert.Equal(t, n, rec.bytes)
}
