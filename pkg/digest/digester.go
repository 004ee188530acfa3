// Package digest implements the weekly digest pipeline: list candidate
// users, filter by preference, match recent jobs, and send one email per
// user with matches. Per-user failures are isolated; only a failure to list
// candidates aborts a run.
package digest

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/jobiq/jobiq/pkg/domain"
)

//go:generate moq -out mocks/user_store.go -pkg mocks -skip-ensure -fmt goimports . UserStore
//go:generate moq -out mocks/job_store.go -pkg mocks -skip-ensure -fmt goimports . JobStore
//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender

// UserStore lists digest candidates
type UserStore interface {
	GetDigestCandidates(ctx context.Context) ([]*domain.User, error)
}

// JobStore matches jobs for a single user's digest
type JobStore interface {
	GetDigestJobs(ctx context.Context, since time.Time, jobTypes []string, limit int) ([]*domain.Job, error)
}

// Sender delivers one digest email or fails
type Sender interface {
	Send(ctx context.Context, address, displayName string, jobs []*domain.Job) error
}

// Config holds digest pipeline configuration
type Config struct {
	Window  time.Duration // trailing window for job matching
	MaxJobs int           // cap per digest email
	Timeout time.Duration // wall-clock bound for a whole run
}

// Digester drives the per-user digest loop
type Digester struct {
	users  UserStore
	jobs   JobStore
	sender Sender

	window  time.Duration
	maxJobs int
	timeout time.Duration
}

// New creates a digester, applying defaults for unset config values
func New(users UserStore, jobs JobStore, sender Sender, cfg Config) *Digester {
	if cfg.Window == 0 {
		cfg.Window = 7 * 24 * time.Hour
	}
	if cfg.MaxJobs == 0 {
		cfg.MaxJobs = 10
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Minute
	}

	return &Digester{
		users:   users,
		jobs:    jobs,
		sender:  sender,
		window:  cfg.Window,
		maxJobs: cfg.MaxJobs,
		timeout: cfg.Timeout,
	}
}

// Run executes one digest run. Users are handled strictly sequentially; the
// run is bounded by the configured timeout. The returned result always
// carries the stats accumulated so far, even on top-level failure.
func (d *Digester) Run(ctx context.Context) domain.DigestResult {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	result := domain.DigestResult{}

	users, err := d.users.GetDigestCandidates(ctx)
	if err != nil {
		// the one non-isolated failure: nothing processed, run aborts
		lgr.Printf("[ERROR] digest run aborted, can't list users: %v", err)
		result.Error = err.Error()
		return result
	}

	since := time.Now().Add(-d.window)
	lgr.Printf("[INFO] digest run started, %d candidates, window since %s", len(users), since.Format(time.RFC3339))

	for _, user := range users {
		switch d.processUser(ctx, user, since, &result.Stats) {
		case domain.DigestSent:
			result.Stats.EmailsSent++
		case domain.DigestFailed:
			result.Stats.Errors++
		case domain.DigestSkipped:
		}
	}

	result.Success = true
	lgr.Printf("[INFO] digest run completed: processed=%d sent=%d errors=%d",
		result.Stats.UsersProcessed, result.Stats.EmailsSent, result.Stats.Errors)
	return result
}

// processUser runs the filter → match → send chain for one user and returns
// the terminal outcome. UsersProcessed is incremented here as soon as the
// eligibility check passes, before the job query runs, so an eligible user
// with no matches still counts as processed.
func (d *Digester) processUser(ctx context.Context, user *domain.User, since time.Time, stats *domain.DigestStats) domain.DigestOutcome {
	prefs, err := ParsePreferences(user.Preferences)
	if err != nil {
		lgr.Printf("[WARN] digest failed for user %s: %v", user.ID, err)
		return domain.DigestFailed
	}

	if !prefs.WeeklyDigest {
		return domain.DigestSkipped
	}

	stats.UsersProcessed++

	jobs, err := d.jobs.GetDigestJobs(ctx, since, prefs.JobTypes, d.maxJobs)
	if err != nil {
		// query failures deliberately fold into "no jobs": skip, don't count
		lgr.Printf("[WARN] job query failed for user %s, skipping: %v", user.ID, err)
		return domain.DigestSkipped
	}
	if len(jobs) == 0 {
		lgr.Printf("[DEBUG] no matching jobs for user %s", user.ID)
		return domain.DigestSkipped
	}

	if err := d.sender.Send(ctx, user.Email, user.DisplayName, jobs); err != nil {
		lgr.Printf("[WARN] digest send failed for user %s: %v", user.ID, err)
		return domain.DigestFailed
	}

	return domain.DigestSent
}
