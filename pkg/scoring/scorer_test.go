package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobiq/jobiq/pkg/config"
	"github.com/jobiq/jobiq/pkg/domain"
)

func TestScorer_Score(t *testing.T) {
	// create test server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{
					Message: openai.ChatCompletionMessage{
						Content: `Here are the scores:

[
  {"id": 1, "quality": 8.5, "ghost_risk": 1.0, "explanation": "clear role with salary range"},
  {"id": 2, "quality": 2.0, "ghost_risk": 9.0, "explanation": "vague, reposted many times"},
  {"id": 99, "quality": 5.0, "ghost_risk": 5.0, "explanation": "unknown posting"}
]`,
					},
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	}))
	defer server.Close()

	cfg := config.LLMConfig{
		Endpoint:    server.URL + "/v1",
		APIKey:      "test-key",
		Model:       "gpt-4",
		Temperature: 0.3,
		MaxTokens:   500,
	}
	scorer := NewScorer(cfg)

	jobs := []*domain.Job{
		{ID: 1, Title: "Go Engineer", Company: "Acme", SalaryMin: 120000, SalaryMax: 150000, Currency: "USD"},
		{ID: 2, Title: "Rockstar Ninja", Company: "Mystery Inc", RepostCount: 5},
	}

	scores, err := scorer.Score(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, scores, 2, "score for unknown job id must be dropped")

	assert.Equal(t, int64(1), scores[0].JobID)
	assert.InEpsilon(t, 8.5, scores[0].Quality, 0.001)
	assert.InEpsilon(t, 1.0, scores[0].GhostRisk, 0.001)
	assert.Equal(t, "clear role with salary range", scores[0].Explanation)
	assert.False(t, scores[0].ScoredAt.IsZero())

	assert.Equal(t, int64(2), scores[1].JobID)
	assert.InEpsilon(t, 9.0, scores[1].GhostRisk, 0.001)
}

func TestScorer_Score_EmptyInput(t *testing.T) {
	scorer := NewScorer(config.LLMConfig{APIKey: "test-key"})
	scores, err := scorer.Score(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestScorer_Score_JSONMode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, req.ResponseFormat.Type)

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{
					Message: openai.ChatCompletionMessage{
						Content: `{"scores": [{"id": 1, "quality": 15, "ghost_risk": -2, "explanation": "out of range"}]}`,
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	}))
	defer server.Close()

	cfg := config.LLMConfig{
		Endpoint:    server.URL + "/v1",
		APIKey:      "test-key",
		Model:       "gpt-4",
		UseJSONMode: true,
	}
	scorer := NewScorer(cfg)

	scores, err := scorer.Score(context.Background(), []*domain.Job{{ID: 1, Title: "Engineer"}})
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.InEpsilon(t, 10.0, scores[0].Quality, 0.001, "quality clamped to 10")
	assert.Zero(t, scores[0].GhostRisk, "ghost risk clamped to 0")
}

func TestScorer_Score_RetriesOnBadJSON(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		content := "no json here at all"
		if n >= 2 {
			content = `[{"id": 1, "quality": 7, "ghost_risk": 2, "explanation": "ok"}]`
		}
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: content}}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	}))
	defer server.Close()

	cfg := config.LLMConfig{Endpoint: server.URL + "/v1", APIKey: "test-key", Model: "gpt-4"}
	scorer := NewScorer(cfg)

	scores, err := scorer.Score(context.Background(), []*domain.Job{{ID: 1, Title: "Engineer"}})
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestHeuristicScore(t *testing.T) {
	now := time.Now()

	t.Run("salary and long description score high", func(t *testing.T) {
		job := &domain.Job{
			ID:          1,
			SalaryMin:   100000,
			Location:    "Remote",
			Description: make600(),
			PostedAt:    now.AddDate(0, 0, -2),
		}
		score := HeuristicScore(job, now)
		assert.Equal(t, int64(1), score.JobID)
		assert.GreaterOrEqual(t, score.Quality, 8.0)
		assert.LessOrEqual(t, score.GhostRisk, 3.0)
	})

	t.Run("reposted stale posting without salary scores as ghost", func(t *testing.T) {
		job := &domain.Job{
			ID:          2,
			RepostCount: 4,
			PostedAt:    now.AddDate(0, -2, 0),
			Description: "short",
		}
		score := HeuristicScore(job, now)
		assert.GreaterOrEqual(t, score.GhostRisk, 8.0)
		assert.LessOrEqual(t, score.Quality, 3.0)
	})

	t.Run("deterministic", func(t *testing.T) {
		job := &domain.Job{ID: 3, SalaryMin: 90000}
		assert.Equal(t, HeuristicScore(job, now), HeuristicScore(job, now))
	})
}

func make600() string {
	b := make([]byte, 600)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
