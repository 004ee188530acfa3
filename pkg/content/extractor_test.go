package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPExtractor_Extract(t *testing.T) {
	t.Run("extracts page text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotEmpty(t, r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Acme Corp</title></head>
<body>
<article>
<h1>About Acme Corp</h1>
<p>Acme Corp builds infrastructure software for logistics companies. We are
headquartered in Denver and have been hiring engineers since 2012. Our team
works across three continents and ships production systems used by hundreds
of freight operators every day.</p>
<p>We are always looking for talented people to join our engineering,
operations, and support teams. Check our open positions below.</p>
</article>
</body>
</html>`))
		}))
		defer server.Close()

		extractor := NewHTTPExtractor(10*time.Second, "JobIQ/1.0")
		text, err := extractor.Extract(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Contains(t, text, "Acme Corp builds infrastructure software")
		assert.NotContains(t, text, "<p>")
	})

	t.Run("rejects invalid url", func(t *testing.T) {
		extractor := NewHTTPExtractor(time.Second, "")
		_, err := extractor.Extract(context.Background(), "not-a-url")
		require.Error(t, err)
	})

	t.Run("non-200 status fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		extractor := NewHTTPExtractor(time.Second, "")
		_, err := extractor.Extract(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code 404")
	})

	t.Run("context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(2 * time.Second)
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		extractor := NewHTTPExtractor(10*time.Second, "")
		_, err := extractor.Extract(ctx, server.URL)
		require.Error(t, err)
	})
}
