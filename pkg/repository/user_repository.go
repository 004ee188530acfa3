package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jobiq/jobiq/pkg/domain"
)

// UserRepository handles user-related database operations
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user, generating an ID when absent
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	row := &userRow{
		ID:          user.ID,
		DisplayName: user.DisplayName,
	}
	if user.Email != "" {
		row.Email = sql.NullString{String: user.Email, Valid: true}
	}
	if len(user.Preferences) > 0 {
		row.Preferences = sql.NullString{String: string(user.Preferences), Valid: true}
	}

	query := `
		INSERT INTO users (id, email, display_name, preferences)
		VALUES (:id, :email, :display_name, :preferences)
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID
func (r *UserRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM users WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return row.toDomain(), nil
}

// GetDigestCandidates retrieves users that can receive a digest at all.
// Users without a contact address never enter the digest loop; eligibility
// by preference is decided by the caller.
func (r *UserRepository) GetDigestCandidates(ctx context.Context) ([]*domain.User, error) {
	var rows []userRow
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM users WHERE email IS NOT NULL ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("get digest candidates: %w", err)
	}

	users := make([]*domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, nil
}

// UpdatePreferences replaces the stored preference blob for a user
func (r *UserRepository) UpdatePreferences(ctx context.Context, userID string, prefs []byte) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE users
			SET preferences = ?, updated_at = datetime('now')
			WHERE id = ?
		`
		result, err := r.db.ExecContext(ctx, query, string(prefs), userID)
		if err != nil {
			if isBusyErr(err) {
				return err // retry
			}
			return &fatalErr{err: fmt.Errorf("update preferences: %w", err)}
		}
		n, err := result.RowsAffected()
		if err != nil {
			return &fatalErr{err: fmt.Errorf("get rows affected: %w", err)}
		}
		if n == 0 {
			return &fatalErr{err: fmt.Errorf("user not found")}
		}
		return nil
	})
}

// SaveJob bookmarks a job for a user, idempotent on repeat saves
func (r *UserRepository) SaveJob(ctx context.Context, userID string, jobID int64) error {
	query := `
		INSERT INTO saved_jobs (user_id, job_id)
		VALUES (?, ?)
		ON CONFLICT(user_id, job_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID, jobID); err != nil {
		return fmt.Errorf("save job: %w", err)
	}
	return nil
}

// RemoveSavedJob deletes a bookmark
func (r *UserRepository) RemoveSavedJob(ctx context.Context, userID string, jobID int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM saved_jobs WHERE user_id = ? AND job_id = ?", userID, jobID); err != nil {
		return fmt.Errorf("remove saved job: %w", err)
	}
	return nil
}

// GetSavedJobs retrieves the jobs a user bookmarked, most recent first
func (r *UserRepository) GetSavedJobs(ctx context.Context, userID string) ([]*domain.Job, error) {
	query := `
		SELECT j.* FROM jobs j
		JOIN saved_jobs s ON s.job_id = j.id
		WHERE s.user_id = ?
		ORDER BY s.saved_at DESC
	`
	var rows []jobRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("get saved jobs: %w", err)
	}

	jobs := make([]*domain.Job, len(rows))
	for i, row := range rows {
		jobs[i] = row.toDomain()
	}
	return jobs, nil
}
