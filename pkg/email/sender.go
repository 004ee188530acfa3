// Package email renders and delivers digest emails. The shipped sender is a
// console sink; a real provider implements the same Sender contract.
package email

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/jobiq/jobiq/pkg/domain"
)

// Sender delivers a weekly digest to a single recipient or fails
type Sender interface {
	Send(ctx context.Context, address, displayName string, jobs []*domain.Job) error
}

// ConsoleSender writes rendered digests to the log instead of delivering
// them. Stands in for a real transport in development and tests.
type ConsoleSender struct {
	renderer *Renderer
}

// NewConsoleSender creates a console sink with the given renderer
func NewConsoleSender(renderer *Renderer) *ConsoleSender {
	return &ConsoleSender{renderer: renderer}
}

// Send renders the digest and logs it
func (s *ConsoleSender) Send(ctx context.Context, address, displayName string, jobs []*domain.Job) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}

	text, err := s.renderer.RenderText(displayName, jobs)
	if err != nil {
		return fmt.Errorf("render digest: %w", err)
	}

	lgr.Printf("[INFO] digest email to %s (%d jobs)\n%s", address, len(jobs), text)
	return nil
}
