// Package scheduler runs the periodic background work: feed ingestion,
// job scoring, and company verification. The weekly digest is normally
// triggered over HTTP by an external cron, but the scheduler can run it
// on a timer too when configured.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/jobiq/jobiq/pkg/domain"
)

//go:generate moq -out mocks/ingester.go -pkg mocks -skip-ensure -fmt goimports . Ingester
//go:generate moq -out mocks/scorer.go -pkg mocks -skip-ensure -fmt goimports . Scorer
//go:generate moq -out mocks/verifier.go -pkg mocks -skip-ensure -fmt goimports . Verifier
//go:generate moq -out mocks/digester.go -pkg mocks -skip-ensure -fmt goimports . Digester

// Ingester pulls postings from all configured feeds
type Ingester interface {
	Run(ctx context.Context) domain.IngestStats
}

// Scorer rates one batch of unscored jobs
type Scorer interface {
	Run(ctx context.Context) (int, error)
}

// Verifier checks one batch of pending companies
type Verifier interface {
	Run(ctx context.Context) (int, error)
}

// Digester sends the weekly digest to all eligible users
type Digester interface {
	Run(ctx context.Context) domain.DigestResult
}

// Config holds scheduler configuration
type Config struct {
	IngestInterval time.Duration
	ScoreInterval  time.Duration
	VerifyInterval time.Duration
	DigestInterval time.Duration // zero disables the built-in digest timer
}

// Scheduler manages the background workers
type Scheduler struct {
	ingester Ingester
	scorer   Scorer
	verifier Verifier
	digester Digester
	cfg      Config
	wg       sync.WaitGroup
	cancel   context.CancelFunc
}

// NewScheduler creates a new scheduler instance. Nil components skip
// their worker.
func NewScheduler(ingester Ingester, scorer Scorer, verifier Verifier, digester Digester, cfg Config) *Scheduler {
	if cfg.IngestInterval == 0 {
		cfg.IngestInterval = 30 * time.Minute
	}
	if cfg.ScoreInterval == 0 {
		cfg.ScoreInterval = 10 * time.Minute
	}
	if cfg.VerifyInterval == 0 {
		cfg.VerifyInterval = time.Hour
	}

	return &Scheduler{
		ingester: ingester,
		scorer:   scorer,
		verifier: verifier,
		digester: digester,
		cfg:      cfg,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	if s.ingester != nil {
		s.wg.Add(1)
		go s.ingestWorker(ctx)
	}

	if s.scorer != nil {
		s.wg.Add(1)
		go s.scoreWorker(ctx)
	}

	if s.verifier != nil {
		s.wg.Add(1)
		go s.verifyWorker(ctx)
	}

	if s.digester != nil && s.cfg.DigestInterval > 0 {
		s.wg.Add(1)
		go s.digestWorker(ctx)
	}

	lgr.Printf("[INFO] scheduler started, ingest every %v, score every %v, verify every %v",
		s.cfg.IngestInterval, s.cfg.ScoreInterval, s.cfg.VerifyInterval)
}

// IngestNow runs one ingestion pass outside the timer
func (s *Scheduler) IngestNow(ctx context.Context) domain.IngestStats {
	if s.ingester == nil {
		return domain.IngestStats{}
	}
	return s.ingester.Run(ctx)
}

// RunDigestNow runs one digest pass outside the timer
func (s *Scheduler) RunDigestNow(ctx context.Context) domain.DigestResult {
	if s.digester == nil {
		return domain.DigestResult{Success: false, Error: "digest is not configured"}
	}
	return s.digester.Run(ctx)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// ingestWorker periodically pulls all feeds, first run is immediate
func (s *Scheduler) ingestWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.IngestInterval)
	defer ticker.Stop()

	s.ingester.Run(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ingester.Run(ctx)
		}
	}
}

// scoreWorker periodically scores unscored jobs
func (s *Scheduler) scoreWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.ScoreInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.scorer.Run(ctx); err != nil {
				lgr.Printf("[ERROR] scoring pass failed: %v", err)
			}
		}
	}
}

// verifyWorker periodically verifies pending companies
func (s *Scheduler) verifyWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.VerifyInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.verifier.Run(ctx); err != nil {
				lgr.Printf("[ERROR] verification pass failed: %v", err)
			}
		}
	}
}

// digestWorker runs the digest on the built-in timer
func (s *Scheduler) digestWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.DigestInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result := s.digester.Run(ctx)
			if !result.Success {
				lgr.Printf("[ERROR] scheduled digest run failed: %s", result.Error)
			}
		}
	}
}
