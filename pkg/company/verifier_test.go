package company_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobiq/jobiq/pkg/company"
	"github.com/jobiq/jobiq/pkg/company/mocks"
	"github.com/jobiq/jobiq/pkg/repository"
)

func setupRepos(t *testing.T) *repository.Repositories {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "company-test-*.db")
	require.NoError(t, err)
	tmpFile.Close()

	repos, err := repository.NewRepositories(context.Background(), repository.Config{
		DSN: "file:" + tmpFile.Name() + "?mode=rwc",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		repos.Close()
		os.Remove(tmpFile.Name())
	})
	return repos
}

func TestVerifier_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("site mentioning company passes", func(t *testing.T) {
		repos := setupRepos(t)
		require.NoError(t, repos.Company.UpsertCompany(ctx, "Acme Corp", "https://acme.example.com"))

		extractor := &mocks.ExtractorMock{
			ExtractFunc: func(ctx context.Context, url string) (string, error) {
				return "Acme Corp builds infrastructure software. " + strings.Repeat("More text. ", 20), nil
			},
		}

		verifier := company.NewVerifier(extractor, repos.Company, 10, 2, time.Millisecond, 100)
		n, err := verifier.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		got, err := repos.Company.GetCompany(ctx, "Acme Corp")
		require.NoError(t, err)
		assert.True(t, got.Verified)
		assert.Empty(t, got.VerifyError)
	})

	t.Run("site without company name fails", func(t *testing.T) {
		repos := setupRepos(t)
		require.NoError(t, repos.Company.UpsertCompany(ctx, "Ghost Inc", "https://ghost.example.com"))

		extractor := &mocks.ExtractorMock{
			ExtractFunc: func(ctx context.Context, url string) (string, error) {
				return "This domain is for sale. " + strings.Repeat("Contact us. ", 20), nil
			},
		}

		verifier := company.NewVerifier(extractor, repos.Company, 10, 2, time.Millisecond, 100)
		n, err := verifier.Run(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		got, err := repos.Company.GetCompany(ctx, "Ghost Inc")
		require.NoError(t, err)
		assert.False(t, got.Verified)
		assert.Contains(t, got.VerifyError, "does not mention")
	})

	t.Run("fetch failure recorded", func(t *testing.T) {
		repos := setupRepos(t)
		require.NoError(t, repos.Company.UpsertCompany(ctx, "Downtown LLC", "https://down.example.com"))

		extractor := &mocks.ExtractorMock{
			ExtractFunc: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		verifier := company.NewVerifier(extractor, repos.Company, 10, 2, time.Millisecond, 100)
		n, err := verifier.Run(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		got, err := repos.Company.GetCompany(ctx, "Downtown LLC")
		require.NoError(t, err)
		assert.Contains(t, got.VerifyError, "fetch failed")
	})

	t.Run("thin page rejected", func(t *testing.T) {
		repos := setupRepos(t)
		require.NoError(t, repos.Company.UpsertCompany(ctx, "Thin Co", "https://thin.example.com"))

		extractor := &mocks.ExtractorMock{
			ExtractFunc: func(ctx context.Context, url string) (string, error) {
				return "Thin Co", nil
			},
		}

		verifier := company.NewVerifier(extractor, repos.Company, 10, 2, time.Millisecond, 100)
		n, err := verifier.Run(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		got, err := repos.Company.GetCompany(ctx, "Thin Co")
		require.NoError(t, err)
		assert.Contains(t, got.VerifyError, "too thin")
	})

	t.Run("match is case insensitive", func(t *testing.T) {
		repos := setupRepos(t)
		require.NoError(t, repos.Company.UpsertCompany(ctx, "ACME CORP", "https://acme.example.com"))

		extractor := &mocks.ExtractorMock{
			ExtractFunc: func(ctx context.Context, url string) (string, error) {
				return "Welcome to acme corp, we make things. " + strings.Repeat("Things! ", 20), nil
			},
		}

		verifier := company.NewVerifier(extractor, repos.Company, 10, 2, time.Millisecond, 100)
		n, err := verifier.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("nothing pending", func(t *testing.T) {
		repos := setupRepos(t)
		extractor := &mocks.ExtractorMock{}

		verifier := company.NewVerifier(extractor, repos.Company, 10, 2, time.Millisecond, 100)
		n, err := verifier.Run(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, extractor.ExtractCalls())
	})
}
