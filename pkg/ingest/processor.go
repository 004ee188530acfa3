package ingest

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/jobiq/jobiq/pkg/domain"
)

//go:generate moq -out mocks/feed_parser.go -pkg mocks -skip-ensure -fmt goimports . FeedParser

// JobStore is the job persistence interface needed by the processor
type JobStore interface {
	FindJobID(ctx context.Context, url, title, company string) (int64, error)
	CreateJob(ctx context.Context, job *domain.Job) error
	BumpRepost(ctx context.Context, jobID int64) error
	DeactivateStale(ctx context.Context, cutoff time.Time) (int64, error)
}

// CompanyStore records employers seen in postings
type CompanyStore interface {
	UpsertCompany(ctx context.Context, name, website string) error
}

// FeedParser fetches and parses a job feed
type FeedParser interface {
	Parse(ctx context.Context, url string) ([]ParsedPosting, error)
}

// Feed is a single configured job-board feed
type Feed struct {
	Name string
	URL  string
}

// Processor fans out over configured feeds, normalizes postings, and
// stores new jobs. A failing feed is logged and skipped, never fails
// the whole run.
type Processor struct {
	parser     FeedParser
	jobs       JobStore
	companies  CompanyStore
	feeds      []Feed
	maxWorkers int
	staleAfter time.Duration
}

// NewProcessor creates an ingestion processor over the given feeds
func NewProcessor(parser FeedParser, jobs JobStore, companies CompanyStore, feeds []Feed, maxWorkers int, staleAfter time.Duration) *Processor {
	if maxWorkers <= 0 {
		maxWorkers = 5
	}
	return &Processor{
		parser:     parser,
		jobs:       jobs,
		companies:  companies,
		feeds:      feeds,
		maxWorkers: maxWorkers,
		staleAfter: staleAfter,
	}
}

// Run ingests all configured feeds concurrently and reports combined
// stats. Per-feed failures count toward Errors.
func (p *Processor) Run(ctx context.Context) domain.IngestStats {
	var stats domain.IngestStats
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxWorkers)

	for _, feed := range p.feeds {
		g.Go(func() error {
			feedStats, err := p.processFeed(gctx, feed)
			mu.Lock()
			defer mu.Unlock()
			stats.Found += feedStats.Found
			stats.Imported += feedStats.Imported
			stats.Duplicates += feedStats.Duplicates
			if err != nil {
				stats.Errors++
				lgr.Printf("[WARN] feed %s failed: %v", feed.Name, err)
			}
			return nil // feed failures are isolated
		})
	}
	_ = g.Wait()

	if p.staleAfter > 0 {
		cutoff := time.Now().Add(-p.staleAfter)
		if n, err := p.jobs.DeactivateStale(ctx, cutoff); err != nil {
			lgr.Printf("[WARN] failed to deactivate stale jobs: %v", err)
		} else if n > 0 {
			lgr.Printf("[INFO] deactivated %d stale jobs", n)
		}
	}

	lgr.Printf("[INFO] ingest complete: found %d, imported %d, duplicates %d, errors %d",
		stats.Found, stats.Imported, stats.Duplicates, stats.Errors)
	return stats
}

// processFeed handles one feed end to end
func (p *Processor) processFeed(ctx context.Context, feed Feed) (domain.IngestStats, error) {
	var stats domain.IngestStats

	postings, err := p.parser.Parse(ctx, feed.URL)
	if err != nil {
		return stats, fmt.Errorf("parse %s: %w", feed.URL, err)
	}
	stats.Found = len(postings)

	now := time.Now()
	for _, posting := range postings {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		job := Normalize(posting, feed.Name, now)
		if job.Title == "" || job.URL == "" {
			continue // unusable posting
		}

		existingID, err := p.jobs.FindJobID(ctx, job.URL, job.Title, job.Company)
		if err != nil {
			lgr.Printf("[WARN] dedup lookup failed for %q: %v", job.Title, err)
			stats.Errors++
			continue
		}
		if existingID > 0 {
			stats.Duplicates++
			if err := p.jobs.BumpRepost(ctx, existingID); err != nil {
				lgr.Printf("[WARN] failed to bump repost for job %d: %v", existingID, err)
			}
			continue
		}

		if err := p.jobs.CreateJob(ctx, job); err != nil {
			lgr.Printf("[WARN] failed to store job %q from %s: %v", job.Title, feed.Name, err)
			stats.Errors++
			continue
		}
		stats.Imported++

		if job.Company != "" {
			if err := p.companies.UpsertCompany(ctx, job.Company, websiteFromURL(job.URL)); err != nil {
				lgr.Printf("[WARN] failed to record company %q: %v", job.Company, err)
			}
		}
	}

	lgr.Printf("[DEBUG] feed %s: found %d, imported %d, duplicates %d",
		feed.Name, stats.Found, stats.Imported, stats.Duplicates)
	return stats, nil
}

// websiteFromURL derives the posting host as a best-effort company
// website candidate, refined later by verification
func websiteFromURL(jobURL string) string {
	u, err := url.Parse(jobURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
