package domain

// DigestOutcome is the terminal state of a single user within a digest run.
type DigestOutcome string

const (
	DigestSkipped DigestOutcome = "skipped" // ineligible or no matching jobs
	DigestSent    DigestOutcome = "sent"
	DigestFailed  DigestOutcome = "failed"
)

// DigestStats aggregates counters for one digest run. A user counts as
// processed once the eligibility check passes, before the job query runs.
type DigestStats struct {
	UsersProcessed int `json:"usersProcessed"`
	EmailsSent     int `json:"emailsSent"`
	Errors         int `json:"errors"`
}

// DigestResult is the overall outcome of a digest run. Success is false only
// when the initial candidate listing fails; per-user failures are absorbed
// into Stats.Errors.
type DigestResult struct {
	Success bool        `json:"success"`
	Stats   DigestStats `json:"stats"`
	Error   string      `json:"error,omitempty"`
}

// IngestStats aggregates counters for one ingestion run.
type IngestStats struct {
	Found      int `json:"found"`
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
}
