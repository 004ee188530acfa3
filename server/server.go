// Package server exposes the HTTP API: the cron-triggered digest run,
// job listings, saved jobs, and user preferences. Cross-origin requests
// from the browser extension are filtered by the cors policy.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/jobiq/jobiq/pkg/cors"
	"github.com/jobiq/jobiq/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/job_store.go -pkg mocks -skip-ensure -fmt goimports . JobStore
//go:generate moq -out mocks/user_store.go -pkg mocks -skip-ensure -fmt goimports . UserStore
//go:generate moq -out mocks/digester.go -pkg mocks -skip-ensure -fmt goimports . Digester

// Server represents HTTP server instance
type Server struct {
	config     ConfigProvider
	jobs       JobStore
	users      UserStore
	digester   Digester
	corsPolicy cors.Policy
	cronSecret string
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// JobStore is the job persistence interface for API reads
type JobStore interface {
	GetJob(ctx context.Context, id int64) (*domain.Job, error)
	ListActive(ctx context.Context, jobType string, limit int) ([]*domain.Job, error)
}

// UserStore is the user persistence interface for API operations
type UserStore interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdatePreferences(ctx context.Context, userID string, prefs []byte) error
	SaveJob(ctx context.Context, userID string, jobID int64) error
	RemoveSavedJob(ctx context.Context, userID string, jobID int64) error
	GetSavedJobs(ctx context.Context, userID string) ([]*domain.Job, error)
}

// Digester runs a full digest pass on demand
type Digester interface {
	Run(ctx context.Context) domain.DigestResult
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, jobs JobStore, users UserStore, digester Digester, corsPolicy cors.Policy, cronSecret, version string, debug bool) *Server {
	s := &Server{
		config:     cfg,
		jobs:       jobs,
		users:      users,
		digester:   digester,
		corsPolicy: corsPolicy,
		cronSecret: cronSecret,
		version:    version,
		debug:      debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("jobiq", "jobiq", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		// every API route may be called cross-origin by the extension
		r.Use(s.corsPolicy.Middleware)

		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /digest/run", s.digestRunHandler)

		r.HandleFunc("GET /jobs", s.listJobsHandler)
		r.HandleFunc("GET /jobs/{id}", s.getJobHandler)

		r.HandleFunc("GET /users/{id}", s.getUserHandler)
		r.HandleFunc("PUT /users/{id}/preferences", s.updatePreferencesHandler)

		r.HandleFunc("GET /users/{id}/saved-jobs", s.listSavedJobsHandler)
		r.HandleFunc("POST /users/{id}/saved-jobs/{jobID}", s.saveJobHandler)
		r.HandleFunc("DELETE /users/{id}/saved-jobs/{jobID}", s.removeSavedJobHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
