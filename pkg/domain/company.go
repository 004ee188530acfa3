package domain

import "time"

// Company represents an employer referenced by job postings. Companies are
// upserted during ingestion and verified by the verification sweep.
type Company struct {
	ID          int64
	Name        string
	Website     string
	Verified    bool
	VerifiedAt  time.Time
	VerifyError string
	LastChecked time.Time
	CreatedAt   time.Time
}
