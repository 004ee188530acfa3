package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/jobiq/jobiq/pkg/domain"
)

// CompanyRepository handles company-related database operations
type CompanyRepository struct {
	db *sqlx.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *sqlx.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// UpsertCompany inserts a company by name if it does not exist yet; an
// existing row keeps its verification state but picks up a website when
// one was missing.
func (r *CompanyRepository) UpsertCompany(ctx context.Context, name, website string) error {
	query := `
		INSERT INTO companies (name, website)
		VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET website = excluded.website
		WHERE companies.website = ''
	`
	if _, err := r.db.ExecContext(ctx, query, name, website); err != nil {
		return fmt.Errorf("upsert company: %w", err)
	}
	return nil
}

// GetCompaniesToVerify retrieves unverified companies with a known website,
// oldest check first
func (r *CompanyRepository) GetCompaniesToVerify(ctx context.Context, limit int) ([]*domain.Company, error) {
	query := `
		SELECT * FROM companies
		WHERE verified = 0 AND website != ''
		ORDER BY last_checked IS NOT NULL, last_checked
		LIMIT ?
	`
	var rows []companyRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("get companies to verify: %w", err)
	}

	companies := make([]*domain.Company, len(rows))
	for i, row := range rows {
		companies[i] = row.toDomain()
	}
	return companies, nil
}

// MarkVerified records a successful verification
func (r *CompanyRepository) MarkVerified(ctx context.Context, companyID int64) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE companies
			SET verified = 1,
			    verified_at = datetime('now'),
			    verify_error = '',
			    last_checked = datetime('now')
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, companyID)
		if err != nil {
			if isBusyErr(err) {
				return err // retry
			}
			return &fatalErr{err: fmt.Errorf("mark verified: %w", err)}
		}
		return nil
	})
}

// MarkVerifyError records a failed verification attempt
func (r *CompanyRepository) MarkVerifyError(ctx context.Context, companyID int64, errMsg string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE companies
			SET verify_error = ?,
			    last_checked = datetime('now')
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, errMsg, companyID)
		if err != nil {
			if isBusyErr(err) {
				return err // retry
			}
			return &fatalErr{err: fmt.Errorf("mark verify error: %w", err)}
		}
		return nil
	})
}

// GetCompany retrieves a company by name
func (r *CompanyRepository) GetCompany(ctx context.Context, name string) (*domain.Company, error) {
	var row companyRow
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM companies WHERE name = ?", name); err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	return row.toDomain(), nil
}
