package expiry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/partycards-go/internal/model"
	"github.com/mcoot/partycards-go/internal/storage"
)

// Scheduler arms deferred deletion of idle games. Each Arm call for a
// game id supersedes any pending deletion for that id, so there is at
// most one active timer per game at any time.
type Scheduler struct {
	storage storage.Storage
	ttl     time.Duration
	logger  *slog.Logger

	mu     sync.Mutex
	timers map[model.GameID]*time.Timer
}

// Config holds configuration for the expiry scheduler
type Config struct {
	// TTL is the inactivity window after which a game is deleted
	TTL time.Duration
}

// DefaultConfig returns default expiry configuration
func DefaultConfig() Config {
	return Config{
		TTL: 30 * time.Minute,
	}
}

// New creates a new expiry scheduler
func New(storage storage.Storage, cfg Config, logger *slog.Logger) *Scheduler {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultConfig().TTL
	}
	return &Scheduler{
		storage: storage,
		ttl:     cfg.TTL,
		logger:  logger,
		timers:  make(map[model.GameID]*time.Timer),
	}
}

// Arm schedules deletion of the game after the inactivity window,
// replacing any deletion already pending for the same id. Best effort:
// callers never observe a failure.
func (s *Scheduler) Arm(id model.GameID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
	}

	s.timers[id] = time.AfterFunc(s.ttl, func() {
		s.expire(id)
	})
}

// Cancel drops any pending deletion for the game
func (s *Scheduler) Cancel(id model.GameID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

// Stop cancels all pending deletions. Used on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// expire runs when a game's timer fires
func (s *Scheduler) expire(id model.GameID) {
	s.mu.Lock()
	delete(s.timers, id)
	s.mu.Unlock()

	if err := s.storage.DeleteGame(context.Background(), id); err != nil {
		s.logger.Error("failed to delete expired game",
			slog.String("game_id", string(id)),
			slog.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("game expired", slog.String("game_id", string(id)))
}

// pending returns the number of active timers
func (s *Scheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
