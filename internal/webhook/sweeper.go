package webhook

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Sweeper periodically evicts records older than MaxAge from the store.
// Start and Stop are explicit so tests can drive Run directly instead of
// waiting on the wall clock.
type Sweeper struct {
	Store    *Store
	MaxAge   time.Duration
	Interval time.Duration

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

// Start schedules the sweep. Safe to call once; subsequent calls are no-ops
// until Stop.
func (s *Sweeper) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	c := cron.New()
	spec := fmt.Sprintf("@every %s", s.Interval)
	if _, err := c.AddFunc(spec, s.Run); err != nil {
		return fmt.Errorf("failed to schedule sweep %q: %w", spec, err)
	}
	c.Start()

	s.cron = c
	s.running = true

	log.Info().
		Dur("interval", s.Interval).
		Dur("max_age", s.MaxAge).
		Msg("Cleanup sweep scheduled")
	return nil
}

// Stop halts the schedule and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron = nil
	s.running = false
	log.Info().Msg("Cleanup sweep stopped")
}

// Run executes one sweep pass immediately.
func (s *Sweeper) Run() {
	if n := s.Store.Sweep(time.Now().UTC(), s.MaxAge); n > 0 {
		log.Info().Int("evicted", n).Msg("Cleaned up expired webhook entries")
	}
}
