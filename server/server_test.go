package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobiq/jobiq/pkg/cors"
	"github.com/jobiq/jobiq/pkg/domain"
	"github.com/jobiq/jobiq/server/mocks"
)

func testServer(t *testing.T, jobs JobStore, users UserStore, digester Digester, cronSecret string) *httptest.Server {
	t.Helper()

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":0", 30 * time.Second },
	}
	policy := cors.NewPolicy("https://app.example.com", false)
	srv := New(cfg, jobs, users, digester, policy, cronSecret, "test", false)

	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_Status(t *testing.T) {
	ts := testServer(t, &mocks.JobStoreMock{}, &mocks.UserStoreMock{}, &mocks.DigesterMock{}, "")

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestServer_Ping(t *testing.T) {
	ts := testServer(t, &mocks.JobStoreMock{}, &mocks.UserStoreMock{}, &mocks.DigesterMock{}, "")

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_DigestRun(t *testing.T) {
	newDigester := func(result domain.DigestResult) *mocks.DigesterMock {
		return &mocks.DigesterMock{
			RunFunc: func(ctx context.Context) domain.DigestResult { return result },
		}
	}

	t.Run("valid secret runs digest", func(t *testing.T) {
		digester := newDigester(domain.DigestResult{
			Success: true,
			Stats:   domain.DigestStats{UsersProcessed: 2, EmailsSent: 2},
		})
		ts := testServer(t, &mocks.JobStoreMock{}, &mocks.UserStoreMock{}, digester, "s3cret")

		req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/v1/digest/run", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("X-Cron-Secret", "s3cret")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result domain.DigestResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.True(t, result.Success)
		assert.Equal(t, 2, result.Stats.UsersProcessed)
		assert.Equal(t, 2, result.Stats.EmailsSent)
		assert.Len(t, digester.RunCalls(), 1)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		digester := newDigester(domain.DigestResult{Success: true})
		ts := testServer(t, &mocks.JobStoreMock{}, &mocks.UserStoreMock{}, digester, "s3cret")

		req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/v1/digest/run", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("X-Cron-Secret", "wrong")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Empty(t, digester.RunCalls())
	})

	t.Run("missing secret rejected", func(t *testing.T) {
		digester := newDigester(domain.DigestResult{Success: true})
		ts := testServer(t, &mocks.JobStoreMock{}, &mocks.UserStoreMock{}, digester, "s3cret")

		resp, err := http.Post(ts.URL+"/api/v1/digest/run", "application/json", http.NoBody)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Empty(t, digester.RunCalls())
	})

	t.Run("unconfigured secret rejects everyone", func(t *testing.T) {
		digester := newDigester(domain.DigestResult{Success: true})
		ts := testServer(t, &mocks.JobStoreMock{}, &mocks.UserStoreMock{}, digester, "")

		req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/v1/digest/run", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("X-Cron-Secret", "")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Empty(t, digester.RunCalls())
	})

	t.Run("top-level failure returns 500 with stats", func(t *testing.T) {
		digester := newDigester(domain.DigestResult{
			Success: false,
			Error:   "list users: database is locked",
		})
		ts := testServer(t, &mocks.JobStoreMock{}, &mocks.UserStoreMock{}, digester, "s3cret")

		req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/v1/digest/run", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("X-Cron-Secret", "s3cret")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		var result domain.DigestResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "database is locked")
		assert.Zero(t, result.Stats.UsersProcessed)
	})
}

func TestServer_CORS(t *testing.T) {
	ts := testServer(t, &mocks.JobStoreMock{
		ListActiveFunc: func(ctx context.Context, jobType string, limit int) ([]*domain.Job, error) {
			return nil, nil
		},
	}, &mocks.UserStoreMock{}, &mocks.DigesterMock{}, "")

	t.Run("extension origin gets headers", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/jobs", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Origin", "chrome-extension://abcdef")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "chrome-extension://abcdef", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	})

	t.Run("app origin gets headers", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/jobs", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Origin", "https://app.example.com")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin gets none", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/jobs", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Origin", "https://evil.example.com")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight answered directly", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/v1/jobs", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Origin", "chrome-extension://abcdef")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, "chrome-extension://abcdef", resp.Header.Get("Access-Control-Allow-Origin"))
	})
}

func TestServer_RunShutdown(t *testing.T) {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 30 * time.Second },
	}
	srv := New(cfg, &mocks.JobStoreMock{}, &mocks.UserStoreMock{}, &mocks.DigesterMock{},
		cors.NewPolicy("", false), "", "test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRenderError(t *testing.T) {
	rec := httptest.NewRecorder()
	renderError(rec, nil, errors.New("boom"), http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "boom"))
}
