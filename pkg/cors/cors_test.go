package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Resolve(t *testing.T) {
	prod := NewPolicy("https://jobiq.example.com", false)
	dev := NewPolicy("https://jobiq.example.com", true)

	tests := []struct {
		name   string
		policy Policy
		origin string
		want   string
	}{
		{"no origin header", prod, "", ""},
		{"app url allowed in prod", prod, "https://jobiq.example.com", "https://jobiq.example.com"},
		{"app url allowed in dev", dev, "https://jobiq.example.com", "https://jobiq.example.com"},
		{"extension origin allowed", prod, "chrome-extension://abcdefghijklmnop", "chrome-extension://abcdefghijklmnop"},
		{"localhost denied in prod", prod, "http://localhost:3000", ""},
		{"localhost allowed in dev", dev, "http://localhost:3000", "http://localhost:3000"},
		{"loopback ip allowed in dev", dev, "http://127.0.0.1:3000", "http://127.0.0.1:3000"},
		{"unknown origin denied", prod, "https://evil.example.com", ""},
		{"unknown origin denied in dev", dev, "https://evil.example.com", ""},
		{"https localhost denied in dev", dev, "https://localhost:3000", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Resolve(tt.origin))
		})
	}
}

func TestHeaders(t *testing.T) {
	origin := "chrome-extension://abcdefghijklmnop"

	h1 := Headers(origin)
	h2 := Headers(origin)
	assert.Equal(t, h1, h2, "same origin yields identical headers")

	assert.Equal(t, origin, h1["Access-Control-Allow-Origin"])
	assert.Equal(t, "GET, POST, OPTIONS", h1["Access-Control-Allow-Methods"])
	assert.Equal(t, "Content-Type, Authorization", h1["Access-Control-Allow-Headers"])
	assert.Equal(t, "true", h1["Access-Control-Allow-Credentials"])
}

func TestPolicy_Middleware(t *testing.T) {
	policy := NewPolicy("https://jobiq.example.com", false)
	handler := policy.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("approved origin gets headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", http.NoBody)
		req.Header.Set("Origin", "chrome-extension://abcdefghijklmnop")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "chrome-extension://abcdefghijklmnop", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("denied origin gets no headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", http.NoBody)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/jobs", http.NoBody)
		req.Header.Set("Origin", "https://jobiq.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://jobiq.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
