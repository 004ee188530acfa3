package digest

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobiq/jobiq/pkg/digest/mocks"
	"github.com/jobiq/jobiq/pkg/domain"
	"github.com/jobiq/jobiq/pkg/repository"
)

// end-to-end digest run against a real sqlite store: A has the digest
// disabled, B filters on engineering jobs, C takes the top 10 of 12.
func TestDigester_EndToEnd(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "test-*.db")
	require.NoError(t, err)
	tmpFile.Close()

	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: "file:" + tmpFile.Name() + "?mode=rwc"})
	require.NoError(t, err)
	t.Cleanup(func() {
		repos.Close()
		os.Remove(tmpFile.Name())
	})

	userA := &domain.User{Email: "a@example.com", DisplayName: "A", Preferences: []byte(`{"weekly_digest":false}`)}
	userB := &domain.User{Email: "b@example.com", DisplayName: "B", Preferences: []byte(`{"weekly_digest":true,"job_types":["engineering"]}`)}
	userC := &domain.User{Email: "c@example.com", DisplayName: "C", Preferences: []byte(`{"weekly_digest":true}`)}
	for _, u := range []*domain.User{userA, userB, userC} {
		require.NoError(t, repos.User.CreateUser(ctx, u))
	}

	// 12 active jobs inside the window, scores 1..12, two of them engineering
	now := time.Now()
	for i := 1; i <= 12; i++ {
		jobType := "design"
		if i <= 2 {
			jobType = "engineering"
		}
		job := &domain.Job{
			URL:      fmt.Sprintf("https://example.com/jobs/%d", i),
			Title:    fmt.Sprintf("Job %d", i),
			Company:  "Acme",
			JobType:  jobType,
			Active:   true,
			PostedAt: now.Add(-48 * time.Hour),
		}
		require.NoError(t, repos.Job.CreateJob(ctx, job))
		require.NoError(t, repos.Job.UpdateJobScore(ctx, domain.JobScore{JobID: job.ID, Quality: float64(i)}))
	}

	sent := map[string][]*domain.Job{}
	sender := &mocks.SenderMock{
		SendFunc: func(ctx context.Context, address, displayName string, jobs []*domain.Job) error {
			sent[address] = jobs
			return nil
		},
	}

	res := New(repos.User, repos.Job, sender, Config{}).Run(ctx)

	require.True(t, res.Success)
	assert.Equal(t, domain.DigestStats{UsersProcessed: 2, EmailsSent: 2, Errors: 0}, res.Stats)

	require.NotContains(t, sent, "a@example.com")

	bJobs := sent["b@example.com"]
	require.Len(t, bJobs, 2, "B gets exactly the engineering jobs")
	for _, j := range bJobs {
		assert.Equal(t, "engineering", j.JobType)
	}

	cJobs := sent["c@example.com"]
	require.Len(t, cJobs, 10, "C gets the top 10 of 12")
	assert.InDelta(t, 12.0, cJobs[0].QualityScore, 0.001)
	for i := 1; i < len(cJobs); i++ {
		assert.GreaterOrEqual(t, cJobs[i-1].QualityScore, cJobs[i].QualityScore)
	}
	// the two lowest-scoring postings fall off the cap
	assert.InDelta(t, 3.0, cJobs[len(cJobs)-1].QualityScore, 0.001)
}
