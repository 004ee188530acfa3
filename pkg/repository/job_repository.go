package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/jobiq/jobiq/pkg/domain"
)

// JobRepository handles job-related database operations
type JobRepository struct {
	db *sqlx.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *sqlx.DB) *JobRepository {
	return &JobRepository{db: db}
}

// CreateJob inserts a new job posting
func (r *JobRepository) CreateJob(ctx context.Context, job *domain.Job) error {
	row := &jobRow{
		URL:         job.URL,
		Title:       job.Title,
		Company:     job.Company,
		Description: job.Description,
		Location:    job.Location,
		SalaryMin:   job.SalaryMin,
		SalaryMax:   job.SalaryMax,
		Currency:    job.Currency,
		JobType:     job.JobType,
		Source:      job.Source,
		Active:      job.Active,
		PostedAt:    job.PostedAt,
		FetchedAt:   job.FetchedAt,
	}
	if row.Currency == "" {
		row.Currency = "USD"
	}
	if row.JobType == "" {
		row.JobType = domain.JobTypeFullTime
	}
	if row.PostedAt.IsZero() {
		row.PostedAt = time.Now()
	}
	if row.FetchedAt.IsZero() {
		row.FetchedAt = time.Now()
	}

	query := `
		INSERT INTO jobs (
			url, title, company, description, location, salary_min, salary_max,
			currency, job_type, source, active, posted_at, fetched_at
		) VALUES (
			:url, :title, :company, :description, :location, :salary_min, :salary_max,
			:currency, :job_type, :source, :active, :posted_at, :fetched_at
		)
	`
	result, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("create job: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	job.ID = id
	return nil
}

// GetJob retrieves a job by ID
func (r *JobRepository) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	var row jobRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM jobs WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("job not found")
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return row.toDomain(), nil
}

// GetDigestJobs retrieves active postings created within the trailing window,
// ordered by quality score descending and capped at limit. A non-empty
// jobTypes set restricts results to those types.
func (r *JobRepository) GetDigestJobs(ctx context.Context, since time.Time, jobTypes []string, limit int) ([]*domain.Job, error) {
	query := `
		SELECT * FROM jobs
		WHERE active = 1 AND posted_at >= ?
		ORDER BY quality_score DESC
		LIMIT ?
	`
	args := []interface{}{since, limit}

	if len(jobTypes) > 0 {
		var err error
		query, args, err = sqlx.In(`
			SELECT * FROM jobs
			WHERE active = 1 AND posted_at >= ? AND job_type IN (?)
			ORDER BY quality_score DESC
			LIMIT ?
		`, since, jobTypes, limit)
		if err != nil {
			return nil, fmt.Errorf("build digest query: %w", err)
		}
		query = r.db.Rebind(query)
	}

	var rows []jobRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get digest jobs: %w", err)
	}

	jobs := make([]*domain.Job, len(rows))
	for i, row := range rows {
		jobs[i] = row.toDomain()
	}
	return jobs, nil
}

// ListActive retrieves active jobs for the API, newest first
func (r *JobRepository) ListActive(ctx context.Context, jobType string, limit int) ([]*domain.Job, error) {
	query := `SELECT * FROM jobs WHERE active = 1 ORDER BY posted_at DESC LIMIT ?`
	args := []interface{}{limit}
	if jobType != "" {
		query = `SELECT * FROM jobs WHERE active = 1 AND job_type = ? ORDER BY posted_at DESC LIMIT ?`
		args = []interface{}{jobType, limit}
	}

	var rows []jobRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list active jobs: %w", err)
	}

	jobs := make([]*domain.Job, len(rows))
	for i, row := range rows {
		jobs[i] = row.toDomain()
	}
	return jobs, nil
}

// FindJobID looks up an existing posting by URL first, then by title+company.
// Returns 0 when no match exists.
func (r *JobRepository) FindJobID(ctx context.Context, url, title, company string) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, "SELECT id FROM jobs WHERE url = ?", url)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("find job by url: %w", err)
	}

	err = r.db.GetContext(ctx, &id, "SELECT id FROM jobs WHERE title = ? AND company = ?", title, company)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("find job by title and company: %w", err)
	}
	return id, nil
}

// BumpRepost increments the repost counter for a posting seen again
func (r *JobRepository) BumpRepost(ctx context.Context, jobID int64) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE jobs
			SET repost_count = repost_count + 1,
			    fetched_at = datetime('now'),
			    updated_at = datetime('now')
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, jobID)
		if err != nil {
			if isBusyErr(err) {
				return err // retry
			}
			return &fatalErr{err: fmt.Errorf("bump repost: %w", err)}
		}
		return nil
	})
}

// GetUnscoredJobs retrieves active jobs that have no quality score yet
func (r *JobRepository) GetUnscoredJobs(ctx context.Context, limit int) ([]*domain.Job, error) {
	query := `
		SELECT * FROM jobs
		WHERE active = 1 AND scored_at IS NULL
		ORDER BY posted_at DESC
		LIMIT ?
	`
	var rows []jobRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("get unscored jobs: %w", err)
	}

	jobs := make([]*domain.Job, len(rows))
	for i, row := range rows {
		jobs[i] = row.toDomain()
	}
	return jobs, nil
}

// UpdateJobScore stores scoring results for a posting
func (r *JobRepository) UpdateJobScore(ctx context.Context, score domain.JobScore) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE jobs
			SET quality_score = ?,
			    ghost_score = ?,
			    scored_at = datetime('now'),
			    updated_at = datetime('now')
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, score.Quality, score.GhostRisk, score.JobID)
		if err != nil {
			if isBusyErr(err) {
				return err // retry
			}
			return &fatalErr{err: fmt.Errorf("update job score: %w", err)}
		}
		return nil
	})
}

// DeactivateStale marks postings not seen since the cutoff as inactive.
// Returns the number of postings deactivated.
func (r *JobRepository) DeactivateStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE jobs SET active = 0, updated_at = datetime('now') WHERE active = 1 AND fetched_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("deactivate stale jobs: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return n, nil
}
