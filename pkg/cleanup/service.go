// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/codeready-toolchain/chatstream/pkg/config"
)

// EventCleaner deletes persisted broadcast events.
// Implemented by *services.EventService.
type EventCleaner interface {
	CleanupExpiredEvents(ctx context.Context, ttl time.Duration) (int, error)
	CleanupScopeEvents(ctx context.Context, scopeID string) (int, error)
}

// Service periodically enforces retention policies:
//   - Removes Event rows past their TTL
//   - Purges the events of completed interactions after a grace period
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config       *config.RetentionConfig
	eventCleaner EventCleaner

	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.Mutex
	pending map[string]*time.Timer
	stopped bool
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, eventCleaner EventCleaner) *Service {
	return &Service{
		config:       cfg,
		eventCleaner: eventCleaner,
		pending:      make(map[string]*time.Timer),
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
		"event_ttl", s.config.EventTTL,
		"completed_event_grace", s.config.CompletedEventGrace,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
// Scheduled interaction purges that have not fired yet are dropped; the TTL
// pass picks those events up later.
func (s *Service) Stop() {
	s.mu.Lock()
	s.stopped = true
	for id, timer := range s.pending {
		timer.Stop()
		delete(s.pending, id)
	}
	s.mu.Unlock()

	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

// ScheduleInteractionPurge removes the events of a completed interaction
// once the grace period has passed. Scheduling the same interaction twice
// keeps the first timer.
func (s *Service) ScheduleInteractionPurge(interactionID string) {
	if s.config.CompletedEventGrace <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if _, ok := s.pending[interactionID]; ok {
		return
	}
	s.pending[interactionID] = time.AfterFunc(s.config.CompletedEventGrace, func() {
		s.mu.Lock()
		delete(s.pending, interactionID)
		s.mu.Unlock()
		s.purgeInteraction(interactionID)
	})
}

// PendingPurges returns the number of scheduled, not yet executed purges.
func (s *Service) PendingPurges() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
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
	s.cleanupExpiredEvents(ctx)
}

func (s *Service) cleanupExpiredEvents(ctx context.Context) {
	count, err := s.eventCleaner.CleanupExpiredEvents(ctx, s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up expired events", "count", count)
	}
}

func (s *Service) purgeInteraction(interactionID string) {
	count, err := s.eventCleaner.CleanupScopeEvents(context.Background(), interactionID)
	if err != nil {
		slog.Error("Retention: interaction event purge failed",
			"interaction_id", interactionID, "error", err)
		return
	}
	slog.Debug("Retention: purged interaction events",
		"interaction_id", interactionID, "count", count)
}
