// Package scoring rates stored job postings with an LLM: a quality
// score that orders digest candidates and a ghost score estimating how
// likely the posting is fake or stale. When the LLM is disabled or
// fails, a deterministic heuristic takes over so every job still gets
// scored.
package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/jobiq/jobiq/pkg/config"
	"github.com/jobiq/jobiq/pkg/domain"
)

// Scorer uses LLM to score job postings
type Scorer struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewScorer creates a new LLM scorer
func NewScorer(cfg config.LLMConfig) *Scorer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Scorer{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// default system prompt for job scoring
const defaultSystemPrompt = `You are an AI assistant that evaluates job postings for quality and authenticity.

For each posting produce:
- id: the posting's numeric ID, unchanged
- quality: 0-10 where 0-3 is a low-effort or spammy posting, 4-6 is average,
  7-8 is a well-written posting with clear responsibilities and compensation,
  9-10 is an exceptional posting (specific role, salary range, concrete requirements)
- ghost_risk: 0-10 where 0 means certainly a real open role and 10 means almost
  certainly a ghost posting. Signals of ghosting: vague evergreen wording, no
  salary, reposted many times, very old posting date
- explanation: brief reason for the scores (max 100 chars)

Score every posting you are given, even obviously bad ones.`

// scoreItem is a single scoring result in the LLM response
type scoreItem struct {
	ID          int64   `json:"id"`
	Quality     float64 `json:"quality"`
	GhostRisk   float64 `json:"ghost_risk"`
	Explanation string  `json:"explanation"`
}

// Score rates a batch of jobs. The response must cover IDs from the
// request; scores for unknown IDs are dropped.
func (s *Scorer) Score(ctx context.Context, jobs []*domain.Job) ([]domain.JobScore, error) {
	if len(jobs) == 0 {
		return []domain.JobScore{}, nil
	}

	prompt := s.buildPrompt(jobs)

	// retry up to 3 times if we get invalid JSON
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		chatReq := openai.ChatCompletionRequest{
			Model:       s.config.Model,
			Temperature: float32(s.config.Temperature),
			MaxTokens:   s.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: s.systemMsg,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		}

		// add JSON response format if enabled
		if s.config.UseJSONMode {
			chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			}
		}

		resp, err := s.client.CreateChatCompletion(ctx, chatReq)
		if err != nil {
			return nil, fmt.Errorf("llm request failed: %w", err)
		}

		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no response from llm")
		}

		content := resp.Choices[0].Message.Content
		scores, err := s.parseResponse(content, jobs)
		if err == nil {
			return scores, nil
		}

		lastErr = err

		// if this was a JSON parsing error, retry
		if strings.Contains(err.Error(), "failed to parse json") || strings.Contains(err.Error(), "no json array found") {
			continue
		}

		return nil, err
	}

	return nil, fmt.Errorf("failed after 3 attempts: %w", lastErr)
}

// buildPrompt creates the prompt for the LLM
func (s *Scorer) buildPrompt(jobs []*domain.Job) string {
	var sb strings.Builder

	sb.WriteString("Score these job postings:\n\n")
	for i, job := range jobs {
		sb.WriteString(fmt.Sprintf("%d. ID: %d\n", i+1, job.ID))
		sb.WriteString(fmt.Sprintf("   Title: %s\n", job.Title))
		sb.WriteString(fmt.Sprintf("   Company: %s\n", job.Company))
		if job.SalaryMin > 0 {
			sb.WriteString(fmt.Sprintf("   Salary: %d-%d %s\n", job.SalaryMin, job.SalaryMax, job.Currency))
		}
		if job.RepostCount > 0 {
			sb.WriteString(fmt.Sprintf("   Reposted: %d times\n", job.RepostCount))
		}
		if !job.PostedAt.IsZero() {
			sb.WriteString(fmt.Sprintf("   Posted: %s\n", job.PostedAt.Format("2006-01-02")))
		}
		if job.Description != "" {
			// limit description to first 500 chars
			desc := job.Description
			if len(desc) > 500 {
				desc = desc[:500] + "..."
			}
			sb.WriteString(fmt.Sprintf("   Description: %s\n", desc))
		}
		sb.WriteString("\n")
	}

	if s.config.UseJSONMode {
		sb.WriteString("Respond with a JSON object containing a 'scores' array of score objects.")
	} else {
		sb.WriteString("Respond with a JSON array of score objects.")
	}
	return sb.String()
}

// parseResponse parses the LLM response into job scores
func (s *Scorer) parseResponse(content string, jobs []*domain.Job) ([]domain.JobScore, error) {
	var items []scoreItem

	if s.config.UseJSONMode {
		// parse as JSON object with scores array
		var resp struct {
			Scores []scoreItem `json:"scores"`
		}
		if err := json.Unmarshal([]byte(content), &resp); err != nil {
			return nil, fmt.Errorf("failed to parse json object response: %w", err)
		}
		items = resp.Scores
	} else {
		// parse as JSON array (backward compatible)
		start := strings.Index(content, "[")
		end := strings.LastIndex(content, "]")
		if start == -1 || end == -1 || start >= end {
			return nil, fmt.Errorf("no json array found in response")
		}

		jsonStr := content[start : end+1]
		if err := json.Unmarshal([]byte(jsonStr), &items); err != nil {
			return nil, fmt.Errorf("failed to parse json array response: %w", err)
		}
	}

	// validate we got scores for known jobs only
	idMap := make(map[int64]bool)
	for _, job := range jobs {
		idMap[job.ID] = true
	}

	now := time.Now()
	var valid []domain.JobScore
	for _, item := range items {
		if !idMap[item.ID] {
			continue
		}
		valid = append(valid, domain.JobScore{
			JobID:       item.ID,
			Quality:     clampScore(item.Quality),
			GhostRisk:   clampScore(item.GhostRisk),
			Explanation: item.Explanation,
			ScoredAt:    now,
		})
	}

	return valid, nil
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
