package scoring

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/jobiq/jobiq/pkg/domain"
)

//go:generate moq -out mocks/job_store.go -pkg mocks -skip-ensure -fmt goimports . JobStore
//go:generate moq -out mocks/job_scorer.go -pkg mocks -skip-ensure -fmt goimports . JobScorer

// JobStore is the persistence interface needed by the runner
type JobStore interface {
	GetUnscoredJobs(ctx context.Context, limit int) ([]*domain.Job, error)
	UpdateJobScore(ctx context.Context, score domain.JobScore) error
}

// JobScorer rates a batch of jobs
type JobScorer interface {
	Score(ctx context.Context, jobs []*domain.Job) ([]domain.JobScore, error)
}

// Runner pulls unscored jobs in batches and persists their scores.
// With no scorer, or when the scorer fails, it falls back to the
// heuristic so jobs never stay unscored.
type Runner struct {
	store     JobStore
	scorer    JobScorer // nil means heuristic only
	batchSize int
}

// NewRunner creates a scoring runner. Pass a nil scorer to run on the
// heuristic alone.
func NewRunner(store JobStore, scorer JobScorer, batchSize int) *Runner {
	if batchSize <= 0 {
		batchSize = 20
	}
	return &Runner{store: store, scorer: scorer, batchSize: batchSize}
}

// Run scores one batch of unscored jobs, returns the number scored
func (r *Runner) Run(ctx context.Context) (int, error) {
	jobs, err := r.store.GetUnscoredJobs(ctx, r.batchSize)
	if err != nil {
		return 0, fmt.Errorf("get unscored jobs: %w", err)
	}
	if len(jobs) == 0 {
		return 0, nil
	}

	scores := r.scoreBatch(ctx, jobs)

	saved := 0
	for _, score := range scores {
		if err := r.store.UpdateJobScore(ctx, score); err != nil {
			lgr.Printf("[WARN] failed to save score for job %d: %v", score.JobID, err)
			continue
		}
		saved++
	}

	lgr.Printf("[INFO] scored %d of %d jobs", saved, len(jobs))
	return saved, nil
}

// scoreBatch tries the LLM first, covers the gaps with the heuristic
func (r *Runner) scoreBatch(ctx context.Context, jobs []*domain.Job) []domain.JobScore {
	now := time.Now()

	var scores []domain.JobScore
	if r.scorer != nil {
		llmScores, err := r.scorer.Score(ctx, jobs)
		if err != nil {
			lgr.Printf("[WARN] llm scoring failed, falling back to heuristic: %v", err)
		} else {
			scores = llmScores
		}
	}

	scored := make(map[int64]bool, len(scores))
	for _, s := range scores {
		scored[s.JobID] = true
	}
	for _, job := range jobs {
		if !scored[job.ID] {
			scores = append(scores, HeuristicScore(job, now))
		}
	}
	return scores
}
