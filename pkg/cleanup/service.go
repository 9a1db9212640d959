// Package cleanup provides background retention for the events outbox.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/behavelab/parley/pkg/config"
	"github.com/behavelab/parley/pkg/store"
)

// Service periodically enforces event retention:
//   - Removes events of sessions completed longer than the grace window ago
//   - Removes any event rows past their TTL (sessions abandoned mid-run)
//
// Sessions and their experiment data are permanent records and never touched;
// only the event rows backing WebSocket catchup are pruned. All operations
// are idempotent and safe to run from multiple pods.
type Service struct {
	config config.RetentionConfig
	events *store.EventStore

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg config.RetentionConfig, events *store.EventStore) *Service {
	return &Service{
		config: cfg,
		events: events,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"completed_grace", s.config.CompletedGrace,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.cleanupCompletedEvents(ctx)
	s.cleanupExpiredEvents(ctx)
}

// The passes use a fresh context so an in-flight DELETE finishes cleanly
// when Stop cancels the loop.

func (s *Service) cleanupCompletedEvents(_ context.Context) {
	count, err := s.events.CleanupCompletedEvents(context.Background(), s.config.CompletedGrace)
	if err != nil {
		slog.Error("Retention: completed-session event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned events of completed sessions", "count", count)
	}
}

func (s *Service) cleanupExpiredEvents(_ context.Context) {
	count, err := s.events.CleanupExpiredEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: expired event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned expired events", "count", count)
	}
}
