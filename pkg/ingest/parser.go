// Package ingest pulls job postings from configured job-board feeds,
// normalizes them, and stores new ones with URL and title+company
// deduplication. Duplicates bump the posting's repost counter.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// ParsedPosting is a raw job posting straight out of a feed
type ParsedPosting struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Author      string
	Published   time.Time
}

// Parser fetches and parses job-board RSS/Atom feeds
type Parser struct {
	client    *http.Client
	userAgent string
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Parse fetches and parses a feed from the given URL
func (p *Parser) Parse(ctx context.Context, url string) ([]ParsedPosting, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parser := gofeed.NewParser()
	feed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	postings := make([]ParsedPosting, 0, len(feed.Items))
	for _, item := range feed.Items {
		posting := ParsedPosting{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
		}
		if posting.Description == "" {
			posting.Description = item.Content
		}

		// set GUID
		if item.GUID != "" {
			posting.GUID = item.GUID
		} else if item.Link != "" {
			posting.GUID = item.Link
		} else {
			posting.GUID = fmt.Sprintf("%s-%s", feed.Title, item.Title)
		}

		// job feeds commonly put the employer in the author field
		if item.Author != nil {
			posting.Author = item.Author.Name
		}

		if item.PublishedParsed != nil {
			posting.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			posting.Published = *item.UpdatedParsed
		}

		postings = append(postings, posting)
	}

	return postings, nil
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return resp.Body, nil
}
