package scoring

import (
	"time"

	"github.com/jobiq/jobiq/pkg/domain"
)

// HeuristicScore rates a job without an LLM. Deterministic, used when
// scoring is disabled or the LLM call fails, so the digest ordering
// never waits on an external service.
func HeuristicScore(job *domain.Job, now time.Time) domain.JobScore {
	quality := 5.0
	ghost := 2.0

	// a real salary range is the strongest quality signal
	if job.SalaryMin > 0 {
		quality += 2
	} else {
		ghost += 2
	}

	// substantial descriptions read as real roles
	switch {
	case len(job.Description) >= 600:
		quality += 1.5
	case len(job.Description) < 100:
		quality -= 2
		ghost += 1
	}

	if job.Location != "" {
		quality += 0.5
	}

	// reposts are the classic ghost-posting tell
	if job.RepostCount > 0 {
		ghost += float64(job.RepostCount) * 1.5
		quality -= float64(job.RepostCount) * 0.5
	}

	// postings that linger past a month are suspect
	if !job.PostedAt.IsZero() && now.Sub(job.PostedAt) > 30*24*time.Hour {
		ghost += 2
	}

	return domain.JobScore{
		JobID:       job.ID,
		Quality:     clampScore(quality),
		GhostRisk:   clampScore(ghost),
		Explanation: "heuristic score",
		ScoredAt:    now,
	}
}
