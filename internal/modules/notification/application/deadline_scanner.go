package application

import (
	"context"
	"log"
	"time"

	boarddomain "github.com/Michaelmpofo/helpmate-lite/internal/modules/board/domain"
)

// RequestSource yields the requests still eligible for reminders.
type RequestSource interface {
	ListActive(ctx context.Context) ([]boarddomain.HelpRequest, error)
}

// DeadlineScanner periodically walks active requests and emits one
// deadline reminder per request once its deadline enters the window.
// Idempotency is keyed on an existing stored reminder, so a reminder that
// has been cleared will be reissued while the request is still inside the
// window.
type DeadlineScanner struct {
	requests RequestSource
	notifs   *NotificationService
	interval time.Duration
	window   time.Duration
	now      func() time.Time
}

func NewDeadlineScanner(requests RequestSource, notifs *NotificationService, interval, window time.Duration) *DeadlineScanner {
	return &DeadlineScanner{
		requests: requests,
		notifs:   notifs,
		interval: interval,
		window:   window,
		now:      time.Now,
	}
}

// Run blocks, scanning on every tick until the context is cancelled.
func (s *DeadlineScanner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("[Deadline Scanner] started, interval=%s window=%s", s.interval, s.window)
	for {
		select {
		case <-ctx.Done():
			log.Println("[Deadline Scanner] stopped")
			return
		case <-ticker.C:
			if err := s.Scan(ctx); err != nil {
				log.Printf("[Deadline Scanner] scan failed: %v", err)
			}
		}
	}
}

// Scan performs a single pass. Expired requests are skipped rather than
// reminded; the window is half-open: 0 < remaining <= window.
func (s *DeadlineScanner) Scan(ctx context.Context) error {
	requests, err := s.requests.ListActive(ctx)
	if err != nil {
		return err
	}

	now := s.now()
	for _, request := range requests {
		left := request.Deadline.Sub(now)
		if left <= 0 || left > s.window {
			continue
		}

		exists, err := s.notifs.HasReminder(ctx, request.ID)
		if err != nil {
			log.Printf("[Deadline Scanner] reminder lookup failed for request %d: %v", request.ID, err)
			continue
		}
		if exists {
			continue
		}

		if err := s.notifs.NotifyDeadlineReminder(ctx, request.ID, request.Name, request.UserID, left); err != nil {
			log.Printf("[Deadline Scanner] reminder failed for request %d: %v", request.ID, err)
		}
	}
	return nil
}
