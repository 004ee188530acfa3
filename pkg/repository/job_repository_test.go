package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobiq/jobiq/pkg/domain"
)

func TestJobRepository_CreateAndGet(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	job := &domain.Job{
		URL:     "https://example.com/jobs/1",
		Title:   "Backend Engineer",
		Company: "Acme",
		JobType: domain.JobTypeFullTime,
		Active:  true,
	}
	err := repos.Job.CreateJob(ctx, job)
	require.NoError(t, err)
	assert.NotZero(t, job.ID)

	retrieved, err := repos.Job.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", retrieved.Title)
	assert.Equal(t, "Acme", retrieved.Company)
	assert.Equal(t, "USD", retrieved.Currency)
	assert.True(t, retrieved.Active)

	_, err = repos.Job.GetJob(ctx, 99999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestJobRepository_GetDigestJobs(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	now := time.Now()

	mkJob := func(i int, score float64, jobType string, postedAt time.Time, active bool) {
		job := &domain.Job{
			URL:      fmt.Sprintf("https://example.com/jobs/%d", i),
			Title:    fmt.Sprintf("Job %d", i),
			Company:  "Acme",
			JobType:  jobType,
			Active:   active,
			PostedAt: postedAt,
		}
		require.NoError(t, repos.Job.CreateJob(ctx, job))
		require.NoError(t, repos.Job.UpdateJobScore(ctx, domain.JobScore{JobID: job.ID, Quality: score}))
	}

	// 12 recent active engineering jobs with increasing score
	for i := 0; i < 12; i++ {
		mkJob(i, float64(i), domain.JobTypeFullTime, now.Add(-24*time.Hour), true)
	}
	// outside the window
	mkJob(100, 9.9, domain.JobTypeFullTime, now.Add(-8*24*time.Hour), true)
	// inactive
	mkJob(101, 9.8, domain.JobTypeFullTime, now.Add(-24*time.Hour), false)
	// different type
	mkJob(102, 9.7, domain.JobTypeContract, now.Add(-24*time.Hour), true)

	since := now.Add(-7 * 24 * time.Hour)

	t.Run("ordered by score and capped", func(t *testing.T) {
		jobs, err := repos.Job.GetDigestJobs(ctx, since, nil, 10)
		require.NoError(t, err)
		require.Len(t, jobs, 10)
		// top score first, strictly descending
		assert.InDelta(t, 9.7, jobs[0].QualityScore, 0.001)
		for i := 1; i < len(jobs); i++ {
			assert.GreaterOrEqual(t, jobs[i-1].QualityScore, jobs[i].QualityScore)
		}
	})

	t.Run("type filter", func(t *testing.T) {
		jobs, err := repos.Job.GetDigestJobs(ctx, since, []string{domain.JobTypeContract}, 10)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, domain.JobTypeContract, jobs[0].JobType)
	})

	t.Run("window excludes old postings", func(t *testing.T) {
		jobs, err := repos.Job.GetDigestJobs(ctx, since, nil, 100)
		require.NoError(t, err)
		for _, j := range jobs {
			assert.True(t, j.PostedAt.After(since) || j.PostedAt.Equal(since))
		}
	})

	t.Run("empty result", func(t *testing.T) {
		jobs, err := repos.Job.GetDigestJobs(ctx, now.Add(time.Hour), nil, 10)
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})
}

func TestJobRepository_FindJobIDAndBumpRepost(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	job := &domain.Job{
		URL:     "https://example.com/jobs/dup",
		Title:   "Data Engineer",
		Company: "Globex",
		Active:  true,
	}
	require.NoError(t, repos.Job.CreateJob(ctx, job))

	t.Run("find by url", func(t *testing.T) {
		id, err := repos.Job.FindJobID(ctx, "https://example.com/jobs/dup", "other", "other")
		require.NoError(t, err)
		assert.Equal(t, job.ID, id)
	})

	t.Run("find by title and company", func(t *testing.T) {
		id, err := repos.Job.FindJobID(ctx, "https://elsewhere.com/x", "Data Engineer", "Globex")
		require.NoError(t, err)
		assert.Equal(t, job.ID, id)
	})

	t.Run("no match", func(t *testing.T) {
		id, err := repos.Job.FindJobID(ctx, "https://elsewhere.com/x", "Nothing", "Nobody")
		require.NoError(t, err)
		assert.Zero(t, id)
	})

	t.Run("bump repost", func(t *testing.T) {
		require.NoError(t, repos.Job.BumpRepost(ctx, job.ID))
		require.NoError(t, repos.Job.BumpRepost(ctx, job.ID))
		retrieved, err := repos.Job.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, retrieved.RepostCount)
	})
}

func TestJobRepository_UnscoredAndScore(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	job := &domain.Job{URL: "https://example.com/jobs/s1", Title: "QA", Company: "Acme", Active: true}
	require.NoError(t, repos.Job.CreateJob(ctx, job))

	unscored, err := repos.Job.GetUnscoredJobs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, unscored, 1)

	err = repos.Job.UpdateJobScore(ctx, domain.JobScore{JobID: job.ID, Quality: 7.5, GhostRisk: 2.0})
	require.NoError(t, err)

	unscored, err = repos.Job.GetUnscoredJobs(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, unscored)

	retrieved, err := repos.Job.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, retrieved.QualityScore, 0.001)
	assert.InDelta(t, 2.0, retrieved.GhostScore, 0.001)
}

func TestJobRepository_DeactivateStale(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	now := time.Now()

	fresh := &domain.Job{URL: "https://example.com/jobs/f", Title: "A", Company: "C", Active: true, FetchedAt: now}
	stale := &domain.Job{URL: "https://example.com/jobs/o", Title: "B", Company: "C", Active: true, FetchedAt: now.Add(-60 * 24 * time.Hour)}
	require.NoError(t, repos.Job.CreateJob(ctx, fresh))
	require.NoError(t, repos.Job.CreateJob(ctx, stale))

	n, err := repos.Job.DeactivateStale(ctx, now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	retrieved, err := repos.Job.GetJob(ctx, stale.ID)
	require.NoError(t, err)
	assert.False(t, retrieved.Active)

	retrieved, err = repos.Job.GetJob(ctx, fresh.ID)
	require.NoError(t, err)
	assert.True(t, retrieved.Active)
}
