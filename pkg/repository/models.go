package repository

import (
	"database/sql"
	"time"

	"github.com/jobiq/jobiq/pkg/domain"
)

// userRow is the database representation of a user
type userRow struct {
	ID          string         `db:"id"`
	Email       sql.NullString `db:"email"`
	DisplayName string         `db:"display_name"`
	Preferences sql.NullString `db:"preferences"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (u *userRow) toDomain() *domain.User {
	user := &domain.User{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
	if u.Email.Valid {
		user.Email = u.Email.String
	}
	if u.Preferences.Valid {
		user.Preferences = []byte(u.Preferences.String)
	}
	return user
}

// jobRow is the database representation of a job posting
type jobRow struct {
	ID           int64        `db:"id"`
	URL          string       `db:"url"`
	Title        string       `db:"title"`
	Company      string       `db:"company"`
	Description  string       `db:"description"`
	Location     string       `db:"location"`
	SalaryMin    int64        `db:"salary_min"`
	SalaryMax    int64        `db:"salary_max"`
	Currency     string       `db:"currency"`
	JobType      string       `db:"job_type"`
	Source       string       `db:"source"`
	Active       bool         `db:"active"`
	QualityScore float64      `db:"quality_score"`
	GhostScore   float64      `db:"ghost_score"`
	RepostCount  int          `db:"repost_count"`
	ScoredAt     sql.NullTime `db:"scored_at"`
	PostedAt     time.Time    `db:"posted_at"`
	FetchedAt    time.Time    `db:"fetched_at"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

func (j *jobRow) toDomain() *domain.Job {
	return &domain.Job{
		ID:           j.ID,
		URL:          j.URL,
		Title:        j.Title,
		Company:      j.Company,
		Description:  j.Description,
		Location:     j.Location,
		SalaryMin:    j.SalaryMin,
		SalaryMax:    j.SalaryMax,
		Currency:     j.Currency,
		JobType:      j.JobType,
		Source:       j.Source,
		Active:       j.Active,
		QualityScore: j.QualityScore,
		GhostScore:   j.GhostScore,
		RepostCount:  j.RepostCount,
		PostedAt:     j.PostedAt,
		FetchedAt:    j.FetchedAt,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}

// companyRow is the database representation of a company
type companyRow struct {
	ID          int64        `db:"id"`
	Name        string       `db:"name"`
	Website     string       `db:"website"`
	Verified    bool         `db:"verified"`
	VerifiedAt  sql.NullTime `db:"verified_at"`
	VerifyError string       `db:"verify_error"`
	LastChecked sql.NullTime `db:"last_checked"`
	CreatedAt   time.Time    `db:"created_at"`
}

func (c *companyRow) toDomain() *domain.Company {
	company := &domain.Company{
		ID:          c.ID,
		Name:        c.Name,
		Website:     c.Website,
		Verified:    c.Verified,
		VerifyError: c.VerifyError,
		CreatedAt:   c.CreatedAt,
	}
	if c.VerifiedAt.Valid {
		company.VerifiedAt = c.VerifiedAt.Time
	}
	if c.LastChecked.Valid {
		company.LastChecked = c.LastChecked.Time
	}
	return company
}
