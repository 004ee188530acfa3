package domain

import "time"

// canonical job-type tags
const (
	JobTypeFullTime  = "full_time"
	JobTypePartTime  = "part_time"
	JobTypeContract  = "contract"
	JobTypeFreelance = "freelance"
)

// Job represents a job posting. Postings are created and updated by the
// ingestion pipeline and read by the digest matcher and the API.
type Job struct {
	ID           int64
	URL          string
	Title        string
	Company      string
	Description  string
	Location     string
	SalaryMin    int64
	SalaryMax    int64
	Currency     string
	JobType      string
	Source       string
	Active       bool
	QualityScore float64 // 0-10, higher is better, orders digest candidates
	GhostScore   float64 // 0-10, higher means more likely fake or stale
	RepostCount  int     // times the same posting was seen again
	PostedAt     time.Time
	FetchedAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// JobScore holds scoring results for a single posting.
type JobScore struct {
	JobID       int64
	Quality     float64
	GhostRisk   float64
	Explanation string
	ScoredAt    time.Time
}
