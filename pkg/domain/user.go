package domain

import "time"

// User represents a registered job seeker. Accounts are created at signup
// by the web frontend; this backend treats them as read-mostly.
type User struct {
	ID          string
	Email       string
	DisplayName string
	Preferences []byte // raw preference blob as stored, parsed at the boundary
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Preferences is the typed form of the stored preference blob.
// Unknown or malformed blobs parse to the zero value (digest disabled).
type Preferences struct {
	WeeklyDigest bool     `json:"weekly_digest"`
	JobTypes     []string `json:"job_types,omitempty"`
}

// SavedJob links a user to a job posting they bookmarked.
type SavedJob struct {
	UserID  string
	JobID   int64
	SavedAt time.Time
}
