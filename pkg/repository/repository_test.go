package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()

	// create temp file for test database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	require.NoError(t, err)
	tmpFile.Close()

	repos, err := NewRepositories(context.Background(), Config{
		DSN: "file:" + tmpFile.Name() + "?mode=rwc",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		repos.Close()
		os.Remove(tmpFile.Name())
	})

	return repos
}

func TestNewRepositories_InitSchema(t *testing.T) {
	repos := setupTestRepos(t)

	// schema should already be initialized by NewRepositories
	var count int
	err := repos.DB.Get(&count, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name IN ('users', 'jobs', 'companies', 'saved_jobs')
	`)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestNewRepositories_Ping(t *testing.T) {
	repos := setupTestRepos(t)
	require.NoError(t, repos.DB.PingContext(context.Background()))
}
