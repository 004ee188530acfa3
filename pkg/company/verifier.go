// Package company verifies that employers seen in job postings have a
// real web presence. A company passes when its website's extracted text
// actually mentions the company name.
package company

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/jobiq/jobiq/pkg/domain"
)

//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// Extractor pulls readable text from a web page
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// CompanyStore is the persistence interface needed by the verifier
type CompanyStore interface {
	GetCompaniesToVerify(ctx context.Context, limit int) ([]*domain.Company, error)
	MarkVerified(ctx context.Context, companyID int64) error
	MarkVerifyError(ctx context.Context, companyID int64, errMsg string) error
}

// Verifier checks pending companies against their websites
type Verifier struct {
	extractor     Extractor
	store         CompanyStore
	batchSize     int
	maxConcurrent int
	rateLimit     time.Duration
	minTextLength int
}

// NewVerifier creates a company verifier
func NewVerifier(extractor Extractor, store CompanyStore, batchSize, maxConcurrent int, rateLimit time.Duration, minTextLength int) *Verifier {
	if batchSize <= 0 {
		batchSize = 10
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}
	return &Verifier{
		extractor:     extractor,
		store:         store,
		batchSize:     batchSize,
		maxConcurrent: maxConcurrent,
		rateLimit:     rateLimit,
		minTextLength: minTextLength,
	}
}

// Run verifies one batch of pending companies, returns how many passed
func (v *Verifier) Run(ctx context.Context) (int, error) {
	companies, err := v.store.GetCompaniesToVerify(ctx, v.batchSize)
	if err != nil {
		return 0, fmt.Errorf("get companies to verify: %w", err)
	}
	if len(companies) == 0 {
		return 0, nil
	}

	var verified atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.maxConcurrent)

	ticker := time.NewTicker(nonZeroRate(v.rateLimit))
	defer ticker.Stop()

	for _, company := range companies {
		select {
		case <-gctx.Done():
			return int(verified.Load()), gctx.Err()
		case <-ticker.C:
		}

		g.Go(func() error {
			if v.verifyOne(gctx, company) {
				verified.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	lgr.Printf("[INFO] verification pass done: %d of %d companies verified", verified.Load(), len(companies))
	return int(verified.Load()), nil
}

// verifyOne checks a single company and records the outcome
func (v *Verifier) verifyOne(ctx context.Context, company *domain.Company) bool {
	text, err := v.extractor.Extract(ctx, company.Website)
	if err != nil {
		v.markError(ctx, company, fmt.Sprintf("fetch failed: %v", err))
		return false
	}

	if len(text) < v.minTextLength {
		v.markError(ctx, company, fmt.Sprintf("page too thin: %d chars", len(text)))
		return false
	}

	if !strings.Contains(strings.ToLower(text), strings.ToLower(company.Name)) {
		v.markError(ctx, company, "site does not mention company name")
		return false
	}

	if err := v.store.MarkVerified(ctx, company.ID); err != nil {
		lgr.Printf("[WARN] failed to mark company %d verified: %v", company.ID, err)
		return false
	}
	lgr.Printf("[DEBUG] verified company %s via %s", company.Name, company.Website)
	return true
}

func (v *Verifier) markError(ctx context.Context, company *domain.Company, msg string) {
	if err := v.store.MarkVerifyError(ctx, company.ID, msg); err != nil {
		lgr.Printf("[WARN] failed to record verify error for company %d: %v", company.ID, err)
	}
}

func nonZeroRate(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Millisecond
	}
	return d
}
